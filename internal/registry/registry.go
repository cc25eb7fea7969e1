package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/finwrapped/finwrapped-go/internal/models"
)

// Registry is the immutable ticker -> company table, built once at startup
// and injected into the pipeline. Lookups never mutate it.
type Registry struct {
	companies map[string]models.Company
}

// New builds a registry from a company list. Later duplicates win, which
// lets callers layer overrides over the built-in table.
func New(companies []models.Company) *Registry {
	m := make(map[string]models.Company, len(companies))
	for _, c := range companies {
		m[normalize(c.Ticker)] = c
	}
	return &Registry{companies: m}
}

// Default returns the registry for the built-in company table.
func Default() *Registry {
	return New(Companies())
}

// Get returns the company for a ticker, case-insensitive. Dashes and dots in
// share-class tickers (BRK-B, BRK.B) are equivalent.
func (r *Registry) Get(ticker string) (models.Company, bool) {
	c, ok := r.companies[normalize(ticker)]
	return c, ok
}

// All returns every covered company ordered by ticker.
func (r *Registry) All() []models.Company {
	out := make([]models.Company, 0, len(r.companies))
	for _, c := range r.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out
}

// Tickers returns every covered ticker symbol, ordered.
func (r *Registry) Tickers() []string {
	all := r.All()
	out := make([]string, len(all))
	for i, c := range all {
		out[i] = c.Ticker
	}
	return out
}

// Len returns the number of covered companies.
func (r *Registry) Len() int {
	return len(r.companies)
}

func normalize(ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	t = strings.ReplaceAll(t, "-", "_")
	return strings.ReplaceAll(t, ".", "_")
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Seed upserts the registry into the companies table so the reference data
// is queryable alongside cached snapshots. Best-effort per row.
func (r *Registry) Seed(ctx context.Context, db execer) error {
	for _, c := range r.All() {
		theme, err := json.Marshal(c.Theme)
		if err != nil {
			return fmt.Errorf("failed to marshal theme for %s: %w", c.Ticker, err)
		}

		_, err = db.Exec(ctx,
			`INSERT INTO companies (ticker, name, cik, sector, fiscal_year_end, theme, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, NOW())
			 ON CONFLICT (ticker) DO UPDATE SET
			   name = EXCLUDED.name,
			   cik = EXCLUDED.cik,
			   sector = EXCLUDED.sector,
			   fiscal_year_end = EXCLUDED.fiscal_year_end,
			   theme = EXCLUDED.theme,
			   updated_at = NOW()`,
			c.Ticker, c.Name, c.CIK, c.Sector, c.FiscalYearEnd, theme,
		)
		if err != nil {
			return fmt.Errorf("failed to seed company %s: %w", c.Ticker, err)
		}
	}

	logrus.WithField("companies", r.Len()).Info("Company registry seeded")
	return nil
}
