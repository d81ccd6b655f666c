package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/rolo/internal/shared"
	"github.com/urfave/cli/v3"
)

// testConfig returns a config pointing at throwaway book and database files.
func testConfig(t *testing.T) *shared.Config {
	t.Helper()

	dir := t.TempDir()
	config := shared.DefaultConfig()
	config.Book.Path = filepath.Join(dir, "book.json")
	config.Database.Path = filepath.Join(dir, "rolo.db")
	return config
}

// runCommand executes one CLI invocation against a fresh Runner sharing
// config, output buffer, and clock.
func runCommand(t *testing.T, config *shared.Config, out *bytes.Buffer, now func() time.Time, args ...string) {
	t.Helper()

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: shared.NewLogger(io.Discard),
		Output: out,
		Now:    now,
	})
	app := &cli.Command{Name: "rolo", Commands: runner.register()}

	if err := app.Run(context.Background(), append([]string{"rolo"}, args...)); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil clock uses wall time", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.now == nil {
				t.Error("expected default clock to be set")
			}
		})
	})

	t.Run("fail renders the error line", func(t *testing.T) {
		out := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: out, Logger: shared.NewLogger(io.Discard)})

		if err := runner.fail(shared.ErrContactNotFound); err == nil {
			t.Error("expected a non-nil exit error")
		}
		if !strings.Contains(out.String(), "Error: contact not found") {
			t.Errorf("expected rendered error line, got %q", out.String())
		}
	})
}

func TestCommands(t *testing.T) {
	now := func() time.Time {
		return time.Date(2023, time.June, 15, 12, 0, 0, 0, time.Local)
	}

	t.Run("contact lifecycle", func(t *testing.T) {
		config := testConfig(t)
		out := &bytes.Buffer{}

		runCommand(t, config, out, now, "add", "--birthday", "1990-06-15", "Alice", "1234567890")
		if !strings.Contains(out.String(), "Contact Alice added with phone 1234567890") {
			t.Errorf("unexpected add output: %q", out.String())
		}

		out.Reset()
		runCommand(t, config, out, now, "phone", "alice")
		if !strings.Contains(out.String(), "Phone numbers for Alice: 1234567890") {
			t.Errorf("unexpected phone output: %q", out.String())
		}

		out.Reset()
		runCommand(t, config, out, now, "change", "Alice", "1234567890", "0987654321")
		if !strings.Contains(out.String(), "Phone number for Alice changed to 0987654321") {
			t.Errorf("unexpected change output: %q", out.String())
		}

		out.Reset()
		runCommand(t, config, out, now, "birthday", "Alice")
		if !strings.Contains(out.String(), "Days to Alice's birthday: 0 days") {
			t.Errorf("unexpected birthday output: %q", out.String())
		}

		out.Reset()
		runCommand(t, config, out, now, "search", "0987")
		if !strings.Contains(out.String(), "Contact name: Alice, phones: 0987654321, birthday: 1990-06-15") {
			t.Errorf("unexpected search output: %q", out.String())
		}

		out.Reset()
		runCommand(t, config, out, now, "delete", "ALICE")
		runCommand(t, config, out, now, "show")
		if !strings.Contains(out.String(), "The address book is empty.") {
			t.Errorf("unexpected show output after delete: %q", out.String())
		}
	})

	t.Run("add merges phones for an existing name", func(t *testing.T) {
		config := testConfig(t)
		out := &bytes.Buffer{}

		runCommand(t, config, out, now, "add", "Alice", "1234567890")
		runCommand(t, config, out, now, "add", "alice", "5550001111")

		out.Reset()
		runCommand(t, config, out, now, "phone", "Alice")
		if !strings.Contains(out.String(), "Phone numbers for Alice: 1234567890, 5550001111") {
			t.Errorf("unexpected merged phones: %q", out.String())
		}
	})

	t.Run("show paginates", func(t *testing.T) {
		config := testConfig(t)
		out := &bytes.Buffer{}

		for _, c := range []struct{ name, phone string }{
			{"C1", "5550000001"}, {"C2", "5550000002"}, {"C3", "5550000003"},
			{"C4", "5550000004"}, {"C5", "5550000005"}, {"C6", "5550000006"},
			{"C7", "5550000007"},
		} {
			runCommand(t, config, out, now, "add", c.name, c.phone)
		}

		out.Reset()
		runCommand(t, config, out, now, "show", "--page", "2")
		text := out.String()
		if !strings.Contains(text, "Page 2:") {
			t.Errorf("expected page header, got %q", text)
		}
		if !strings.Contains(text, "C6") || !strings.Contains(text, "C7") || strings.Contains(text, "C5") {
			t.Errorf("unexpected page contents: %q", text)
		}

		out.Reset()
		runCommand(t, config, out, now, "show", "--first", "2")
		text = out.String()
		if !strings.Contains(text, "C1") || !strings.Contains(text, "C2") || strings.Contains(text, "C3") {
			t.Errorf("unexpected first-N contents: %q", text)
		}

		out.Reset()
		runCommand(t, config, out, now, "show", "--page", "50")
		if !strings.Contains(out.String(), "(no contacts on this page)") {
			t.Errorf("expected empty page notice, got %q", out.String())
		}
	})

	t.Run("export writes csv", func(t *testing.T) {
		config := testConfig(t)
		out := &bytes.Buffer{}

		runCommand(t, config, out, now, "add", "--birthday", "1990-06-15", "Alice", "1234567890")

		target := filepath.Join(t.TempDir(), "contacts.csv")
		out.Reset()
		runCommand(t, config, out, now, "export", "--format", "csv", "-o", target)

		data, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if !strings.Contains(string(data), "Alice,1990-06-15,1234567890") {
			t.Errorf("unexpected CSV contents: %q", string(data))
		}
	})

	t.Run("archive save list restore", func(t *testing.T) {
		config := testConfig(t)
		out := &bytes.Buffer{}

		runCommand(t, config, out, now, "add", "Alice", "1234567890")

		out.Reset()
		runCommand(t, config, out, now, "archive", "save", "--label", "checkpoint")
		saved := out.String()
		if !strings.Contains(saved, "Snapshot #1 saved (1 contacts)") {
			t.Errorf("unexpected archive save output: %q", saved)
		}

		out.Reset()
		runCommand(t, config, out, now, "archive", "list")
		if !strings.Contains(out.String(), "checkpoint") {
			t.Errorf("expected label in list output, got %q", out.String())
		}

		// Extract the snapshot id from the save line.
		fields := strings.Fields(strings.TrimSpace(saved))
		id := fields[len(fields)-1]

		runCommand(t, config, out, now, "delete", "Alice")
		out.Reset()
		runCommand(t, config, out, now, "archive", "restore", id)
		if !strings.Contains(out.String(), "Restored 1 contacts") {
			t.Errorf("unexpected restore output: %q", out.String())
		}

		out.Reset()
		runCommand(t, config, out, now, "phone", "Alice")
		if !strings.Contains(out.String(), "1234567890") {
			t.Errorf("expected Alice back after restore, got %q", out.String())
		}
	})

	t.Run("setup config writes a starter file", func(t *testing.T) {
		config := testConfig(t)
		out := &bytes.Buffer{}
		target := filepath.Join(t.TempDir(), "config.toml")

		runCommand(t, config, out, now, "setup", "config", "--config", target)

		if _, err := os.Stat(target); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}
		loaded, err := shared.LoadConfig(target)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}
		if loaded.Book.PageSize != 5 {
			t.Errorf("expected default page size 5, got %d", loaded.Book.PageSize)
		}
	})
}
