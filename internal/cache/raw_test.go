package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRawCache(t *testing.T) (*RawCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRawCache(client), mr
}

func TestRawCache_SetGet(t *testing.T) {
	c, _ := newTestRawCache(t)
	ctx := context.Background()

	payload := []byte(`{"cik":320193}`)
	c.Set(ctx, "sec", "0000320193", "companyfacts", payload, time.Hour)

	got, ok := c.Get(ctx, "sec", "0000320193", "companyfacts")
	require.True(t, ok)
	assert.JSONEq(t, string(payload), string(got))

	stats := c.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Sets)
}

func TestRawCache_Miss(t *testing.T) {
	c, _ := newTestRawCache(t)

	_, ok := c.Get(context.Background(), "sec", "unknown", "companyfacts")
	assert.False(t, ok)
	assert.Equal(t, int64(1), c.GetStats().Misses)
}

func TestRawCache_ExpiryCheckedAtRead(t *testing.T) {
	c, _ := newTestRawCache(t)
	ctx := context.Background()

	c.Set(ctx, "polygon", "NVDA", "aggs:2024", []byte(`{}`), time.Hour)

	// Entry still in Redis but past its own expiry: treated as a miss.
	c.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, ok := c.Get(ctx, "polygon", "NVDA", "aggs:2024")
	assert.False(t, ok)
}

func TestRawCache_SetReplacesAndResetsExpiry(t *testing.T) {
	c, _ := newTestRawCache(t)
	ctx := context.Background()

	c.Set(ctx, "sec", "X", "companyfacts", []byte(`{"v":1}`), time.Hour)
	c.Set(ctx, "sec", "X", "companyfacts", []byte(`{"v":2}`), time.Hour)

	got, ok := c.Get(ctx, "sec", "X", "companyfacts")
	require.True(t, ok)
	assert.JSONEq(t, `{"v":2}`, string(got))
}

func TestRawCache_KeyIsolation(t *testing.T) {
	c, _ := newTestRawCache(t)
	ctx := context.Background()

	c.Set(ctx, "polygon", "NVDA", "aggs:2024", []byte(`{"y":2024}`), time.Hour)
	c.Set(ctx, "polygon", "NVDA", "aggs:2023", []byte(`{"y":2023}`), time.Hour)
	c.Set(ctx, "sec", "NVDA", "aggs:2024", []byte(`{"src":"sec"}`), time.Hour)

	got, ok := c.Get(ctx, "polygon", "NVDA", "aggs:2023")
	require.True(t, ok)
	assert.JSONEq(t, `{"y":2023}`, string(got))
}

func TestRawCache_NilClientDegrades(t *testing.T) {
	c := NewRawCache(nil)
	ctx := context.Background()

	_, ok := c.Get(ctx, "sec", "X", "companyfacts")
	assert.False(t, ok)
	assert.NotPanics(t, func() {
		c.Set(ctx, "sec", "X", "companyfacts", []byte(`{}`), time.Hour)
	})
}
