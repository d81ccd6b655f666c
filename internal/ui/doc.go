// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view workflow over the in-memory address book:
//  1. [ContactListView] : Browse and filter contacts
//  2. [DetailView] : Inspect one contact's phones, birthday, and days to the next birthday
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern. The book
// is read-only from the TUI's perspective; all mutation happens through the CLI commands.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help
// displayed via charmbracelet/bubbles/help.
package ui
