package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic price re-sync cycles for a single shop.
type Scheduler struct {
	cron     *cron.Cron
	importer *Importer
	shop     string
	interval time.Duration
	batch    int
	log      *slog.Logger
}

// NewScheduler creates a Scheduler that re-syncs prices every interval.
func NewScheduler(
	imp *Importer,
	shop string,
	interval time.Duration,
	batch int,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:     c,
		importer: imp,
		shop:     shop,
		interval: interval,
		batch:    batch,
		log:      log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), s.runSync); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("price sync scheduler started", "interval", s.interval)
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("price sync scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runSync() {
	ctx := context.Background()
	s.log.Info("scheduled price sync starting", "shop", s.shop)
	if err := s.importer.SyncPrices(ctx, s.shop, s.interval, s.batch); err != nil {
		s.log.Error("scheduled price sync failed", "error", err)
	}
}
