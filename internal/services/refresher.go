package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/finwrapped/finwrapped-go/internal/registry"
)

// Refresher rebuilds wrapped snapshots for the whole registry, paced by an
// inter-request interval so bulk refreshes respect upstream rate limits.
type Refresher struct {
	assembler *Assembler
	registry  *registry.Registry
	limiter   *rate.Limiter
}

// NewRefresher creates a bulk refresher with one assembly per interval.
func NewRefresher(assembler *Assembler, reg *registry.Registry, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = time.Second
	}
	return &Refresher{
		assembler: assembler,
		registry:  reg,
		limiter:   rate.NewLimiter(rate.Every(interval), 1),
	}
}

// RefreshAll force-rebuilds every covered company for the given calendar
// year. Per-company failures are logged and skipped; the refresh continues.
// Returns the number of companies refreshed successfully.
func (r *Refresher) RefreshAll(ctx context.Context, calendarYear int) (int, error) {
	refreshed := 0

	for _, ticker := range r.registry.Tickers() {
		if err := r.limiter.Wait(ctx); err != nil {
			return refreshed, err
		}

		if _, err := r.assembler.GetWrapped(ctx, ticker, calendarYear, true); err != nil {
			logrus.WithError(err).WithField("ticker", ticker).Warn("Refresh failed for company")
			continue
		}
		refreshed++
	}

	logrus.WithFields(logrus.Fields{
		"refreshed": refreshed,
		"total":     r.registry.Len(),
		"year":      calendarYear,
	}).Info("Bulk refresh finished")

	return refreshed, nil
}
