package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/rolo/internal/shared"
	"github.com/urfave/cli/v3"
)

// Show lists contacts a page at a time, or the first N with --first.
func (r *Runner) Show(ctx context.Context, cmd *cli.Command) error {
	b, err := r.loadBook(r.bookPath(cmd))
	if err != nil {
		return err
	}

	if b.Len() == 0 {
		return r.writePlainln("The address book is empty.")
	}

	if first := int(cmd.Int("first")); first > 0 {
		r.writePlainln("%d records:", first)
		for _, line := range b.FirstN(first) {
			r.writePlainln("%s", line)
		}
		return nil
	}

	page := int(cmd.Int("page"))
	if page < 1 {
		return r.fail(fmt.Errorf("%w: page must be positive", shared.ErrInvalidFlag))
	}

	records := b.Page(page)
	r.writePlainln("Page %d:", page)
	for _, rec := range records {
		r.writePlainln("%s", rec.String())
	}
	if len(records) == 0 {
		r.writePlainln("(no contacts on this page)")
	}

	return nil
}

// Search prints every contact whose name or phone contains the query.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return r.fail(fmt.Errorf("%w: search <query>", shared.ErrMissingArgument))
	}

	b, err := r.loadBook(r.bookPath(cmd))
	if err != nil {
		return err
	}

	results := b.Search(query)
	if len(results) == 0 {
		return r.writePlainln("No results found for '%s'.", query)
	}

	r.writePlainln("Search results for '%s':", query)
	for _, line := range results {
		r.writePlainln("%s", line)
	}
	return nil
}
