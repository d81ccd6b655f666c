package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/rolo/internal/book"
	"github.com/desertthunder/rolo/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer
	now    func() time.Time
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
	Now    func() time.Time
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
		now:    opts.Now,
	}
}

// SetLogger swaps the runner's logger, e.g. to a file logger while a TUI
// owns the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		addCommand, deleteCommand, changeCommand, phoneCommand, birthdayCommand,
		showCommand, searchCommand, exportCommand, archiveCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// bookPath resolves the address book path: --file flag first, then config.
func (r *Runner) bookPath(cmd *cli.Command) string {
	if path := cmd.String("file"); path != "" {
		return path
	}
	return r.config.Book.Path
}

// loadBook reads the book at path. A missing file starts an empty book
// with an informational log line; anything else malformed is an error.
func (r *Runner) loadBook(path string) (*book.AddressBook, error) {
	b, err := book.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Infof("no address book at %s, starting empty", path)
		b = book.NewAddressBook()
	} else if err != nil {
		return nil, err
	}

	b.SetPageSize(r.config.Book.PageSize)
	return b, nil
}

// fail renders a domain error the way the shell surface promises
// ("Error: <message>") and converts it into a silent non-zero exit.
func (r *Runner) fail(err error) error {
	r.writePlainln("Error: %v", err)
	return cli.Exit("", 1)
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
