package main

import (
	"github.com/spf13/cobra"

	"hostel-management-backend/internal/db"
	"hostel-management-backend/internal/seed"
	"hostel-management-backend/internal/store"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the admin user and demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := loadConfig(logger)
			if err != nil {
				return err
			}

			gormDB, err := db.Init(&cfg.Database)
			if err != nil {
				return err
			}
			return seed.Run(cmd.Context(), store.NewGormStore(gormDB), cfg.Seed, logger)
		},
	}
}
