// Package overdue periodically flags pending payments whose due date has passed.
package overdue

import (
	"context"
	"log"
	"time"

	"hostel-management-backend/config"
)

// Marker is the store capability the sweeper needs.
type Marker interface {
	MarkOverduePayments(ctx context.Context) (int64, error)
}

// Service runs the overdue sweep on a timer.
type Service struct {
	cfg    config.OverdueConfig
	store  Marker
	logger *log.Logger
}

// NewService creates a sweeper. A nil logger uses the standard logger.
func NewService(cfg config.OverdueConfig, store Marker, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{cfg: cfg, store: store, logger: logger}
}

// Run sweeps once immediately and then every configured interval until ctx
// is cancelled.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Enabled {
		s.logger.Println("Overdue sweep is disabled. Not starting.")
		return
	}
	if s.cfg.Interval <= 0 {
		s.logger.Printf("Overdue sweep interval %v is not positive. Not starting.", s.cfg.Interval)
		return
	}
	s.logger.Println("Starting overdue sweep...")

	s.SweepOnce(ctx)

	timer := time.NewTimer(s.cfg.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Println("Overdue sweep shutting down.")
			return
		case <-timer.C:
			s.SweepOnce(ctx)
			timer.Reset(s.cfg.Interval)
		}
	}
}

// SweepOnce performs a single sweep and reports how many payments changed.
func (s *Service) SweepOnce(ctx context.Context) int64 {
	n, err := s.store.MarkOverduePayments(ctx)
	if err != nil {
		s.logger.Printf("Error marking overdue payments: %v", err)
		return 0
	}
	if n > 0 {
		s.logger.Printf("Marked %d payment(s) overdue", n)
	}
	return n
}
