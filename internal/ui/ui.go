package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/rolo/internal/book"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ContactListView ViewState = iota
	DetailView
)

// Model represents the TUI application state.
type Model struct {
	view        ViewState
	book        *book.AddressBook
	contactList list.Model
	selected    *book.Record
	width       int
	height      int
	help        help.Model
	keys        keyMap
}

// NewModel creates a new TUI model over the given address book.
func NewModel(b *book.AddressBook) *Model {
	records := b.Records()
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = contactItem{record: r}
	}

	contactList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	contactList.Title = fmt.Sprintf("Contacts (%d)", b.Len())

	return &Model{
		view:        ContactListView,
		book:        b,
		contactList: contactList,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Run starts the TUI and blocks until the user quits.
func Run(b *book.AddressBook) error {
	if _, err := tea.NewProgram(NewModel(b), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.contactList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ContactListView:
			return m.handleContactListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}
	}

	var cmd tea.Cmd
	m.contactList, cmd = m.contactList.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case ContactListView:
		return m.renderContactList()
	case DetailView:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m *Model) handleContactListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Let the list consume keys while its filter input is active.
	if m.contactList.FilterState() != list.Filtering {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if selected := m.contactList.SelectedItem(); selected != nil {
				if item, ok := selected.(contactItem); ok {
					m.selected = item.record
					m.view = DetailView
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.contactList, cmd = m.contactList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = ContactListView
		m.selected = nil
	}
	return m, nil
}

func (m *Model) renderContactList() string {
	return "\n" + m.contactList.View()
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styles.title.Render(m.selected.Name().String()) + "\n\n")

	phones := m.selected.Phones()
	if len(phones) == 0 {
		sb.WriteString(styles.warn.Render("No phone numbers") + "\n")
	}
	for _, p := range phones {
		sb.WriteString(fmt.Sprintf("  %s\n", p))
	}

	if bd, ok := m.selected.Birthday(); ok {
		sb.WriteString(fmt.Sprintf("\nBirthday: %s", bd))
		if days, ok := m.selected.DaysToBirthday(time.Now()); ok {
			if days == 0 {
				sb.WriteString(" " + styles.ok.Render("(today!)"))
			} else {
				sb.WriteString(fmt.Sprintf(" (in %d days)", days))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + m.help.View(m.keys))
	return sb.String()
}
