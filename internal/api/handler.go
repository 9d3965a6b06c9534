package api

import (
	"log"
	"os"

	"hostel-management-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store  store.Store
	logger *log.Logger
}

// NewHandler creates a new API handler. A nil logger writes to stderr.
func NewHandler(s store.Store, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(os.Stderr, "api ", log.LstdFlags)
	}
	return &Handler{
		store:  s,
		logger: logger,
	}
}
