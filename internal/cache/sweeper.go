package cache

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Sweeper periodically deletes expired snapshot rows on a cron schedule.
// Redis raw entries carry their own TTL and need no sweep.
type Sweeper struct {
	store    *SnapshotStore
	schedule string
	cron     *cron.Cron
}

// NewSweeper creates a sweeper; schedule is a cron expression such as
// "@hourly".
func NewSweeper(store *SnapshotStore, schedule string) *Sweeper {
	return &Sweeper{
		store:    store,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the sweep job and starts the scheduler.
func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		deleted, err := s.store.SweepExpired(ctx)
		if err != nil {
			logrus.WithError(err).Warn("Snapshot sweep failed")
			return
		}
		if deleted > 0 {
			logrus.WithField("deleted", deleted).Info("Swept expired wrapped snapshots")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logrus.WithField("schedule", s.schedule).Info("Cache sweeper started")
	return nil
}

// Stop halts the scheduler, waiting for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logrus.Info("Cache sweeper stopped")
}
