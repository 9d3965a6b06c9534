package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hostel-management-backend/internal/db"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and ledger indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := loadConfig(logger)
			if err != nil {
				return err
			}

			gormDB, err := db.Open(&cfg.Database)
			if err != nil {
				return err
			}
			if err := db.Migrate(gormDB); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			logger.Println("migration complete")
			return nil
		},
	}
}
