package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/rolo/internal/book"
	"github.com/desertthunder/rolo/internal/shared"
	"github.com/urfave/cli/v3"
)

// Add creates a contact with one phone, or merges another phone into an
// existing contact of the same (case-insensitive) name. A birthday passed
// alongside an existing name is ignored; birthdays are fixed at creation.
func (r *Runner) Add(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	phone := cmd.StringArg("phone")
	if name == "" || phone == "" {
		return r.fail(fmt.Errorf("%w: add <name> <phone>", shared.ErrMissingArgument))
	}

	path := r.bookPath(cmd)
	b, err := r.loadBook(path)
	if err != nil {
		return err
	}

	rec, err := book.NewRecord(name, cmd.String("birthday"))
	if err != nil {
		return r.fail(err)
	}
	if err := rec.AddPhone(phone); err != nil {
		return r.fail(err)
	}
	b.AddRecord(rec)

	if err := book.SaveFile(b, path); err != nil {
		return err
	}

	r.logger.Debugf("saved %d contacts to %s", b.Len(), path)
	return r.writePlainln("Contact %s added with phone %s", name, phone)
}

// Delete removes a contact by name. Deleting an absent contact succeeds
// silently, matching the book's no-op semantics.
func (r *Runner) Delete(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return r.fail(fmt.Errorf("%w: delete <name>", shared.ErrMissingArgument))
	}

	path := r.bookPath(cmd)
	b, err := r.loadBook(path)
	if err != nil {
		return err
	}

	b.Delete(name)

	if err := book.SaveFile(b, path); err != nil {
		return err
	}

	return r.writePlainln("Contact %s deleted", name)
}

// Change replaces one of a contact's phone numbers with a new one.
func (r *Runner) Change(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	oldPhone := cmd.StringArg("old")
	newPhone := cmd.StringArg("new")
	if name == "" || oldPhone == "" || newPhone == "" {
		return r.fail(fmt.Errorf("%w: change <name> <old> <new>", shared.ErrMissingArgument))
	}

	path := r.bookPath(cmd)
	b, err := r.loadBook(path)
	if err != nil {
		return err
	}

	if err := b.ChangePhone(name, oldPhone, newPhone); err != nil {
		return r.fail(err)
	}

	if err := book.SaveFile(b, path); err != nil {
		return err
	}

	return r.writePlainln("Phone number for %s changed to %s", name, newPhone)
}

// Phone lists a contact's phone numbers.
func (r *Runner) Phone(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return r.fail(fmt.Errorf("%w: phone <name>", shared.ErrMissingArgument))
	}

	b, err := r.loadBook(r.bookPath(cmd))
	if err != nil {
		return err
	}

	rec, ok := b.Find(name)
	if !ok {
		return r.fail(fmt.Errorf("%w: %q", shared.ErrContactNotFound, name))
	}

	phones := rec.Phones()
	if len(phones) == 0 {
		return r.writePlainln("%s has no phone numbers.", rec.Name())
	}

	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return r.writePlainln("Phone numbers for %s: %s", rec.Name(), strings.Join(parts, ", "))
}

// Birthday reports the days until a contact's next birthday.
func (r *Runner) Birthday(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return r.fail(fmt.Errorf("%w: birthday <name>", shared.ErrMissingArgument))
	}

	b, err := r.loadBook(r.bookPath(cmd))
	if err != nil {
		return err
	}

	rec, ok := b.Find(name)
	if !ok {
		return r.fail(fmt.Errorf("%w: %q", shared.ErrContactNotFound, name))
	}

	days, ok := rec.DaysToBirthday(r.now())
	if !ok {
		return r.writePlainln("%s doesn't have a birthday set.", rec.Name())
	}

	return r.writePlainln("Days to %s's birthday: %d days", rec.Name(), days)
}
