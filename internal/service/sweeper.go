package service

import (
	"context"
	"log"
	"time"
)

type AbandonedOrderSweeper interface {
	SweepAbandoned(ctx context.Context, ttl time.Duration) (int64, error)
}

type DueScheduleRunner interface {
	MaterializeDue(ctx context.Context) (int, error)
}

// Sweeper runs the periodic order and schedule housekeeping.
type Sweeper struct {
	Orders     AbandonedOrderSweeper
	Schedules  DueScheduleRunner
	PendingTTL time.Duration
}

func (s *Sweeper) RunOnce(ctx context.Context) {
	if _, err := s.Orders.SweepAbandoned(ctx, s.PendingTTL); err != nil {
		log.Printf("[worker] %v", err)
	}
	placed, err := s.Schedules.MaterializeDue(ctx)
	if err != nil {
		log.Printf("[worker] %v", err)
		return
	}
	if placed > 0 {
		log.Printf("[worker] placed %d scheduled orders", placed)
	}
}

func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}
