package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/finwrapped/finwrapped-go/internal/cache"
	"github.com/finwrapped/finwrapped-go/internal/config"
	"github.com/finwrapped/finwrapped-go/internal/models"
)

const sourceName = "polygon"

// Client fetches market data from the Polygon.io REST API: daily aggregate
// bars, ticker reference details, splits and dividends. Responses are served
// from the raw cache when fresh; price data turns over faster than reference
// data, so the two carry separate TTLs.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	raw        *cache.RawCache
	priceTTL   time.Duration
	refTTL     time.Duration
}

// NewClient creates a Polygon client.
func NewClient(cfg config.PolygonConfig, raw *cache.RawCache, priceTTL, refTTL time.Duration) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		raw:        raw,
		priceTTL:   priceTTL,
		refTTL:     refTTL,
	}
}

type aggsResponse struct {
	Ticker  string `json:"ticker"`
	Status  string `json:"status"`
	Results []struct {
		Timestamp int64           `json:"t"`
		Open      decimal.Decimal `json:"o"`
		High      decimal.Decimal `json:"h"`
		Low       decimal.Decimal `json:"l"`
		Close     decimal.Decimal `json:"c"`
		Volume    decimal.Decimal `json:"v"`
	} `json:"results"`
}

// GetDailyBars returns split-adjusted daily bars for a calendar year. The
// fetch window opens on December 15 of the prior year so the year's first
// trading day always has a preceding bar for return calculations.
func (c *Client) GetDailyBars(ctx context.Context, ticker string, year int) ([]models.PriceBar, error) {
	from := fmt.Sprintf("%d-12-15", year-1)
	to := fmt.Sprintf("%d-12-31", year)

	endpoint := fmt.Sprintf("aggs:%d", year)
	path := fmt.Sprintf("/v2/aggs/ticker/%s/range/1/day/%s/%s", url.PathEscape(ticker), from, to)
	params := url.Values{"adjusted": {"true"}, "sort": {"asc"}, "limit": {"50000"}}

	body, err := c.cachedFetch(ctx, ticker, endpoint, path, params, c.priceTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily bars for %s: %w", ticker, err)
	}

	var resp aggsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal aggregates for %s: %w", ticker, err)
	}

	bars := make([]models.PriceBar, 0, len(resp.Results))
	for _, r := range resp.Results {
		bars = append(bars, models.PriceBar{
			Date:   time.UnixMilli(r.Timestamp).UTC(),
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Volume,
		})
	}

	return bars, nil
}

// GetTickerDetails returns the reference snapshot for a ticker.
func (c *Client) GetTickerDetails(ctx context.Context, ticker string) (*models.TickerDetails, error) {
	path := "/v3/reference/tickers/" + url.PathEscape(ticker)

	body, err := c.cachedFetch(ctx, ticker, "details", path, nil, c.refTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ticker details for %s: %w", ticker, err)
	}

	var resp struct {
		Results models.TickerDetails `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticker details for %s: %w", ticker, err)
	}

	return &resp.Results, nil
}

// GetSplits returns splits executed within the calendar year.
func (c *Client) GetSplits(ctx context.Context, ticker string, year int) ([]models.Split, error) {
	params := url.Values{
		"ticker":             {ticker},
		"execution_date.gte": {fmt.Sprintf("%d-01-01", year)},
		"execution_date.lte": {fmt.Sprintf("%d-12-31", year)},
		"limit":              {"10"},
	}

	body, err := c.cachedFetch(ctx, ticker, fmt.Sprintf("splits:%d", year), "/v3/reference/splits", params, c.refTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch splits for %s: %w", ticker, err)
	}

	var resp struct {
		Results []models.Split `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal splits for %s: %w", ticker, err)
	}

	return resp.Results, nil
}

// GetDividends returns cash dividends with an ex-date within the calendar year.
func (c *Client) GetDividends(ctx context.Context, ticker string, year int) ([]models.Dividend, error) {
	params := url.Values{
		"ticker":               {ticker},
		"ex_dividend_date.gte": {fmt.Sprintf("%d-01-01", year)},
		"ex_dividend_date.lte": {fmt.Sprintf("%d-12-31", year)},
		"limit":                {"50"},
	}

	body, err := c.cachedFetch(ctx, ticker, fmt.Sprintf("dividends:%d", year), "/v3/reference/dividends", params, c.refTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dividends for %s: %w", ticker, err)
	}

	var resp struct {
		Results []models.Dividend `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dividends for %s: %w", ticker, err)
	}

	return resp.Results, nil
}

// cachedFetch serves from the raw cache when fresh, otherwise performs one
// authenticated GET with retry on transient failures and stores the result.
func (c *Client) cachedFetch(ctx context.Context, ticker, endpoint, path string, params url.Values, ttl time.Duration) ([]byte, error) {
	if payload, ok := c.raw.Get(ctx, sourceName, ticker, endpoint); ok {
		return payload, nil
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("apiKey", c.apiKey)
	fullURL := c.baseURL + path + "?" + params.Encode()

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to make request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logrus.WithError(err).Warn("Error closing response body")
			}
		}()

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("polygon API error (%d)", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("polygon API error (%d)", resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	c.raw.Set(ctx, sourceName, ticker, endpoint, body, ttl)

	return body, nil
}
