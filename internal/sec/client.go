package sec

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/finwrapped/finwrapped-go/internal/cache"
	"github.com/finwrapped/finwrapped-go/internal/config"
	"github.com/finwrapped/finwrapped-go/internal/models"
)

const sourceName = "sec"

// Client fetches XBRL companyfacts documents from SEC EDGAR. Requests carry
// the mandatory identifying User-Agent and are paced by a token bucket to
// stay under the SEC's ~10 req/s fair-access limit. Responses are served
// from the raw cache when fresh.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	raw        *cache.RawCache
	filingTTL  time.Duration
}

// NewClient creates an EDGAR client. The raw cache may be nil, in which case
// every call hits the network.
func NewClient(cfg config.SECConfig, raw *cache.RawCache, filingTTL time.Duration) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	rps := cfg.RatePerSecond
	if rps <= 0 {
		rps = 10
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		raw:        raw,
		filingTTL:  filingTTL,
	}
}

// GetCompanyFacts retrieves the full companyfacts document for a CIK.
// Cache-first: at most one fresh fetch per CIK per filing TTL.
func (c *Client) GetCompanyFacts(ctx context.Context, cik string) (*models.CompanyFacts, error) {
	const endpoint = "companyfacts"

	if payload, ok := c.raw.Get(ctx, sourceName, cik, endpoint); ok {
		var facts models.CompanyFacts
		if err := json.Unmarshal(payload, &facts); err == nil {
			return &facts, nil
		}
		logrus.WithField("cik", cik).Warn("Corrupt cached companyfacts entry, refetching")
	}

	path := fmt.Sprintf("/api/xbrl/companyfacts/CIK%s.json", cik)
	body, err := c.fetch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch companyfacts for CIK %s: %w", cik, err)
	}

	var facts models.CompanyFacts
	if err := json.Unmarshal(body, &facts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal companyfacts for CIK %s: %w", cik, err)
	}

	c.raw.Set(ctx, sourceName, cik, endpoint, body, c.filingTTL)

	return &facts, nil
}

// fetch performs one rate-limited GET with retry on transient failures.
// Client errors (4xx) are permanent and not retried.
func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	var body []byte

	operation := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", c.userAgent)
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
			return fmt.Errorf("SEC API error (%d)", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("SEC API error (%d)", resp.StatusCode))
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

	return body, nil
}
