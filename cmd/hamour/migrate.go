// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"hamour/internal/config"
	"hamour/internal/database"
	"hamour/internal/logging"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and create the settings row",
		Long:  `Bring the hosted PostgreSQL schema up to date and insert the default settings row when it is missing.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logging.Setup(cfg.LogFormat, cfg.LogLevel)

			db, err := database.Connect(cfg.DSN())
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer db.Close()

			return prepareDatabase(db)
		},
	}
}

// prepareDatabase runs pending migrations and seeds the settings row.
func prepareDatabase(db *sql.DB) error {
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if err := database.Seed(db); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	return nil
}
