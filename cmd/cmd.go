// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// fileFlag overrides the address book path from config.
func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Path to the address book JSON file",
	}
}

// addCommand adds a contact or merges phones into an existing one
func addCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a contact, or another phone to an existing contact",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name"},
			&cli.StringArg{Name: "phone"},
		},
		Flags: []cli.Flag{
			fileFlag(),
			&cli.StringFlag{
				Name:    "birthday",
				Aliases: []string{"b"},
				Usage:   "Birthday as YYYY-MM-DD (ignored when the contact already exists)",
			},
		},
		Action: r.Add,
	}
}

// deleteCommand removes a contact
func deleteCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "delete",
		Aliases: []string{"del", "rm"},
		Usage:   "Delete a contact",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name"},
		},
		Flags:  []cli.Flag{fileFlag()},
		Action: r.Delete,
	}
}

// changeCommand replaces one phone number with another
func changeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "change",
		Usage: "Replace a contact's phone number",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name"},
			&cli.StringArg{Name: "old"},
			&cli.StringArg{Name: "new"},
		},
		Flags:  []cli.Flag{fileFlag()},
		Action: r.Change,
	}
}

// phoneCommand lists a contact's phone numbers
func phoneCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "phone",
		Usage: "Show a contact's phone numbers",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name"},
		},
		Flags:  []cli.Flag{fileFlag()},
		Action: r.Phone,
	}
}

// birthdayCommand reports days until a contact's next birthday
func birthdayCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "birthday",
		Aliases: []string{"bday"},
		Usage:   "Show days until a contact's next birthday",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name"},
		},
		Flags:  []cli.Flag{fileFlag()},
		Action: r.Birthday,
	}
}

// showCommand lists contacts page by page
func showCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "show",
		Aliases: []string{"ls"},
		Usage:   "List contacts",
		Flags: []cli.Flag{
			fileFlag(),
			&cli.IntFlag{
				Name:    "page",
				Aliases: []string{"p"},
				Usage:   "Page number to display",
				Value:   1,
			},
			&cli.IntFlag{
				Name:  "first",
				Usage: "Show only the first N contacts instead of a page",
			},
		},
		Action: r.Show,
	}
}

// searchCommand finds contacts by name or phone substring
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search contacts by name or phone substring",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags:  []cli.Flag{fileFlag()},
		Action: r.Search,
	}
}

// exportCommand writes the book out in an interchange format
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the address book as CSV, Markdown, or plain text",
		Flags: []cli.Flag{
			fileFlag(),
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: csv, markdown, or text",
				Value: "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
		},
		Action: r.Export,
	}
}

// archiveCommand manages book snapshots in the local database
func archiveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "archive",
		Usage: "Snapshot the address book to the local database",
		Commands: []*cli.Command{
			{
				Name:  "save",
				Usage: "Store the current book as a new snapshot",
				Flags: []cli.Flag{
					fileFlag(),
					&cli.StringFlag{
						Name:    "label",
						Aliases: []string{"l"},
						Usage:   "Optional label for the snapshot",
					},
				},
				Action: r.ArchiveSave,
			},
			{
				Name:   "list",
				Usage:  "List stored snapshots, newest first",
				Action: r.ArchiveList,
			},
			{
				Name:  "restore",
				Usage: "Overwrite the address book file from a snapshot",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  []cli.Flag{fileFlag()},
				Action: r.ArchiveRestore,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and the archive database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a starter config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path for the configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize the archive database and run migrations",
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive contact browser",
		Flags:   []cli.Flag{fileFlag()},
		Action:  r.TUI,
	}
}
