package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/rolo/internal/formatter"
	"github.com/desertthunder/rolo/internal/shared"
	"github.com/urfave/cli/v3"
)

// Export writes the book in the requested interchange format to a file or
// stdout.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	b, err := r.loadBook(r.bookPath(cmd))
	if err != nil {
		return err
	}

	var data []byte
	format := cmd.String("format")
	switch format {
	case "csv":
		data, err = formatter.ExportToCSV(b)
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown(b)
	case "text", "txt":
		data, err = formatter.ExportToText(b)
	default:
		return r.fail(fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format))
	}
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	if output := cmd.String("output"); output != "" {
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		r.logger.Infof("exported %d contacts as %s", b.Len(), format)
		return r.writePlainln("Exported to %s", output)
	}

	return r.writePlain("%s", data)
}
