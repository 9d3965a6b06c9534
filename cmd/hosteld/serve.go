package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hostel-management-backend/internal/api"
	"hostel-management-backend/internal/db"
	"hostel-management-backend/internal/overdue"
	"hostel-management-backend/internal/store"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := loadConfig(logger)
			if err != nil {
				return err
			}

			// Initialize database
			gormDB, err := db.Init(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			logger.Println("database initialized successfully")

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			appStore := store.NewGormStore(gormDB)

			// Flag overdue payments in the background
			sweeper := overdue.NewService(cfg.Overdue, appStore, logger)
			go sweeper.Run(ctx)

			router := api.NewRouter(appStore, cfg.Server, logger)
			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
				Handler: router,
			}

			serveErr := make(chan error, 1)
			go func() {
				logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			select {
			case <-stop:
				logger.Println("Shutdown signal received, stopping services...")
			case err := <-serveErr:
				return fmt.Errorf("HTTP server ListenAndServe: %w", err)
			}
			cancel()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("HTTP server Shutdown: %w", err)
			}

			logger.Println("Server gracefully stopped")
			return nil
		},
	}
}
