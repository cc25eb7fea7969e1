package polygon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwrapped/finwrapped-go/internal/cache"
	"github.com/finwrapped/finwrapped-go/internal/config"
)

func newTestPolygonClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	cfg := config.PolygonConfig{BaseURL: serverURL, APIKey: "test-key", Timeout: 5}
	return NewClient(cfg, cache.NewRawCache(redisClient), time.Hour, 24*time.Hour)
}

func TestGetDailyBars_ParsesAndCaches(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v2/aggs/ticker/NVDA/range/1/day/2023-12-15/2024-12-31", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "true", r.URL.Query().Get("adjusted"))
		_, _ = w.Write([]byte(`{
			"ticker": "NVDA",
			"status": "OK",
			"results": [
				{"t": 1704171600000, "o": 49.1, "h": 49.5, "l": 47.5, "c": 48.2, "v": 411254400},
				{"t": 1735621200000, "o": 138.0, "h": 138.1, "l": 133.8, "c": 134.3, "v": 223444756}
			]
		}`))
	}))
	defer server.Close()

	c := newTestPolygonClient(t, server.URL)
	ctx := context.Background()

	bars, err := c.GetDailyBars(ctx, "NVDA", 2024)
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, 2024, bars[0].Date.Year())
	assert.Equal(t, "48.2", bars[0].Close.String())

	_, err = c.GetDailyBars(ctx, "NVDA", 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.Load(), "second read must come from cache")
}

func TestGetTickerDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/reference/tickers/AAPL", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"results": {
				"ticker": "AAPL",
				"name": "Apple Inc.",
				"market_cap": 3440000000000,
				"weighted_shares_outstanding": 15100000000,
				"total_employees": 161000
			}
		}`))
	}))
	defer server.Close()

	c := newTestPolygonClient(t, server.URL)

	details, err := c.GetTickerDetails(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 3.44e12, details.MarketCap)
	assert.Equal(t, 161000, details.Employees)
	assert.Equal(t, 1.51e10, details.SharesOutstanding)
}

func TestGetSplitsAndDividends(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v3/reference/splits":
			assert.Equal(t, "NVDA", r.URL.Query().Get("ticker"))
			assert.Equal(t, "2024-01-01", r.URL.Query().Get("execution_date.gte"))
			_, _ = w.Write([]byte(`{"results":[{"execution_date":"2024-06-07","split_from":1,"split_to":10}]}`))
		case "/v3/reference/dividends":
			_, _ = w.Write([]byte(`{"results":[{"ex_dividend_date":"2024-03-05","cash_amount":0.04}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := newTestPolygonClient(t, server.URL)
	ctx := context.Background()

	splits, err := c.GetSplits(ctx, "NVDA", 2024)
	require.NoError(t, err)
	require.Len(t, splits, 1)
	assert.Equal(t, 10.0, splits[0].To)
	assert.Equal(t, "2024-06-07", splits[0].ExecutionDate)

	dividends, err := c.GetDividends(ctx, "NVDA", 2024)
	require.NoError(t, err)
	require.Len(t, dividends, 1)
	assert.Equal(t, 0.04, dividends[0].CashAmount)
}

func TestClientError_NotRetried(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := newTestPolygonClient(t, server.URL)

	_, err := c.GetDailyBars(context.Background(), "NVDA", 2024)
	require.Error(t, err)
	assert.Equal(t, int64(1), calls.Load())
}
