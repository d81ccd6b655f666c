package main

import (
	"context"

	"github.com/desertthunder/rolo/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes a starter config.toml from the embedded example.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Infof("wrote config to %s", path)
	return r.writePlainln("Created %s. Edit it to change the book path or page size.", path)
}

// SetupDatabase initializes the archive database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openArchive()
	if err != nil {
		return err
	}
	defer db.Close()

	r.logger.Infof("archive database ready at %s", r.config.Database.Path)
	return r.writePlainln("Archive database initialized at %s", r.config.Database.Path)
}
