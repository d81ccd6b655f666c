package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/rolo/internal/shared"
	"github.com/desertthunder/rolo/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive contact browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/rolo-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	b, err := r.loadBook(r.bookPath(cmd))
	if err != nil {
		return err
	}

	return ui.Run(b)
}
