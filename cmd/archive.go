package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/rolo/internal/archive"
	"github.com/desertthunder/rolo/internal/book"
	"github.com/desertthunder/rolo/internal/shared"
	"github.com/urfave/cli/v3"
)

// openArchive opens the configured archive database with migrations applied.
func (r *Runner) openArchive() (*sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// ArchiveSave stores the current book as a new snapshot.
func (r *Runner) ArchiveSave(ctx context.Context, cmd *cli.Command) error {
	b, err := r.loadBook(r.bookPath(cmd))
	if err != nil {
		return err
	}

	db, err := r.openArchive()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := archive.NewRepository(db).Save(b, cmd.String("label"))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	r.logger.Infof("snapshot #%d stored as %s", snap.Sequence, snap.ID)
	return r.writePlainln("Snapshot #%d saved (%d contacts): %s", snap.Sequence, snap.ContactCount, snap.ID)
}

// ArchiveList prints stored snapshots, newest first.
func (r *Runner) ArchiveList(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openArchive()
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := archive.NewRepository(db).List()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		return r.writePlainln("No snapshots stored.")
	}

	for _, s := range snapshots {
		label := s.Label
		if label == "" {
			label = "(no label)"
		}
		r.writePlainln("#%d  %s  %s  %d contacts  %s",
			s.Sequence, s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.ContactCount, label)
	}
	return nil
}

// ArchiveRestore overwrites the address book file with a stored snapshot.
func (r *Runner) ArchiveRestore(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return r.fail(fmt.Errorf("%w: archive restore <id>", shared.ErrMissingArgument))
	}

	db, err := r.openArchive()
	if err != nil {
		return err
	}
	defer db.Close()

	restored, err := archive.NewRepository(db).Restore(id)
	if err != nil {
		return r.fail(err)
	}

	path := r.bookPath(cmd)
	if err := book.SaveFile(restored, path); err != nil {
		return err
	}

	r.logger.Infof("restored snapshot %s to %s", id, path)
	return r.writePlainln("Restored %d contacts to %s", restored.Len(), path)
}
