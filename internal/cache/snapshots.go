package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/finwrapped/finwrapped-go/internal/models"
)

// DBTX is the subset of pgxpool.Pool the snapshot store uses; satisfied by
// pgxmock in tests.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SnapshotStore is the computed-result cache: finished wrapped records keyed
// by (ticker, year, period), each an opaque JSON snapshot with an absolute
// expiry. A refresh replaces the row wholesale; there is no partial update.
type SnapshotStore struct {
	db  DBTX
	ttl time.Duration
}

// NewSnapshotStore creates a Postgres-backed snapshot store with the given
// default TTL.
func NewSnapshotStore(db DBTX, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{db: db, ttl: ttl}
}

// Get returns the unexpired snapshot for (ticker, year, period), or false
// when none exists. Store failures degrade to a miss.
func (s *SnapshotStore) Get(ctx context.Context, ticker string, year int, period string) (*models.WrappedData, bool) {
	if s == nil || s.db == nil {
		return nil, false
	}

	var data []byte
	err := s.db.QueryRow(ctx,
		`SELECT data FROM wrapped_cache
		 WHERE ticker = $1 AND year = $2 AND period = $3 AND expires_at > NOW()`,
		ticker, year, period,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		logrus.WithError(err).WithField("ticker", ticker).Warn("Snapshot cache read failed")
		return nil, false
	}

	var wrapped models.WrappedData
	if err := json.Unmarshal(data, &wrapped); err != nil {
		logrus.WithError(err).WithField("ticker", ticker).Warn("Error deserializing wrapped snapshot")
		return nil, false
	}

	return &wrapped, true
}

// Put upserts the snapshot for (ticker, year, period), fully replacing any
// previous payload and resetting its expiry.
func (s *SnapshotStore) Put(ctx context.Context, ticker string, year int, period string, wrapped *models.WrappedData) error {
	if s == nil || s.db == nil {
		return errors.New("snapshot store is not available")
	}

	data, err := json.Marshal(wrapped)
	if err != nil {
		return fmt.Errorf("failed to marshal wrapped snapshot: %w", err)
	}

	expiresAt := time.Now().Add(s.ttl)

	_, err = s.db.Exec(ctx,
		`INSERT INTO wrapped_cache (ticker, year, period, data, expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (ticker, year, period) DO UPDATE SET
		   data = EXCLUDED.data,
		   expires_at = EXCLUDED.expires_at,
		   created_at = NOW()`,
		ticker, year, period, data, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store wrapped snapshot: %w", err)
	}

	return nil
}

// SweepExpired deletes rows past their expiry. Correctness does not depend
// on this; Get already treats expired rows as absent.
func (s *SnapshotStore) SweepExpired(ctx context.Context) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM wrapped_cache WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired snapshots: %w", err)
	}
	return tag.RowsAffected(), nil
}
