package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/finwrapped/finwrapped-go/internal/cache"
	"github.com/finwrapped/finwrapped-go/internal/enrichment"
	"github.com/finwrapped/finwrapped-go/internal/models"
	"github.com/finwrapped/finwrapped-go/internal/polygon"
	"github.com/finwrapped/finwrapped-go/internal/registry"
	"github.com/finwrapped/finwrapped-go/internal/sec"
)

// benchmarkTicker is the reference index proxy for vs-market comparison.
const benchmarkTicker = "SPY"

var (
	// ErrUnknownCompany indicates the ticker is not in the registry.
	ErrUnknownCompany = errors.New("company not covered")
	// ErrDataUnavailable indicates every upstream fetch failed and nothing
	// could be assembled.
	ErrDataUnavailable = errors.New("data unavailable")
)

// FactsProvider fetches filing facts documents.
type FactsProvider interface {
	GetCompanyFacts(ctx context.Context, cik string) (*models.CompanyFacts, error)
}

// MarketProvider fetches price series, reference details and corporate
// actions.
type MarketProvider interface {
	GetDailyBars(ctx context.Context, ticker string, year int) ([]models.PriceBar, error)
	GetTickerDetails(ctx context.Context, ticker string) (*models.TickerDetails, error)
	GetSplits(ctx context.Context, ticker string, year int) ([]models.Split, error)
	GetDividends(ctx context.Context, ticker string, year int) ([]models.Dividend, error)
}

// Assembler orchestrates the wrapped pipeline: resolve the company, fetch
// filings and market data concurrently, extract and analyze, merge curated
// enrichment, and write through to the snapshot cache.
type Assembler struct {
	registry  *registry.Registry
	facts     FactsProvider
	market    MarketProvider
	snapshots *cache.SnapshotStore
	now       func() time.Time
}

// NewAssembler wires the pipeline. The snapshot store may be nil; caching is
// then skipped entirely.
func NewAssembler(reg *registry.Registry, facts FactsProvider, market MarketProvider, snapshots *cache.SnapshotStore) *Assembler {
	return &Assembler{
		registry:  reg,
		facts:     facts,
		market:    market,
		snapshots: snapshots,
		now:       time.Now,
	}
}

// GetWrapped returns the wrapped record for (ticker, calendarYear),
// cache-first unless refresh is set. Freshly built records are written
// through best-effort.
func (a *Assembler) GetWrapped(ctx context.Context, ticker string, calendarYear int, refresh bool) (*models.WrappedData, error) {
	company, ok := a.registry.Get(ticker)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompany, ticker)
	}

	if !refresh {
		if cached, ok := a.snapshots.Get(ctx, company.Ticker, calendarYear, "FY"); ok {
			return cached, nil
		}
	}

	wrapped, err := a.build(ctx, company, calendarYear)
	if err != nil {
		return nil, err
	}

	if err := a.snapshots.Put(ctx, company.Ticker, calendarYear, "FY", wrapped); err != nil {
		logrus.WithError(err).WithField("ticker", company.Ticker).Warn("Failed to cache wrapped snapshot")
	}

	return wrapped, nil
}

// fetched carries the outcome of the concurrent sub-fetches. Each field is
// independently optional; a failed fetch leaves its field zero.
type fetched struct {
	facts         *models.CompanyFacts
	bars          []models.PriceBar
	benchmarkBars []models.PriceBar
	details       *models.TickerDetails
	splits        []models.Split
	dividends     []models.Dividend
}

func (a *Assembler) fetchAll(ctx context.Context, company models.Company, year int) *fetched {
	out := &fetched{}
	var wg sync.WaitGroup

	run := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"ticker": company.Ticker,
					"fetch":  name,
				}).Warn("Sub-fetch failed, continuing without it")
			}
		}()
	}

	run("filings", func() error {
		facts, err := a.facts.GetCompanyFacts(ctx, company.CIK)
		if err == nil {
			out.facts = facts
		}
		return err
	})
	run("prices", func() error {
		bars, err := a.market.GetDailyBars(ctx, company.Ticker, year)
		if err == nil {
			out.bars = bars
		}
		return err
	})
	run("benchmark", func() error {
		bars, err := a.market.GetDailyBars(ctx, benchmarkTicker, year)
		if err == nil {
			out.benchmarkBars = bars
		}
		return err
	})
	run("details", func() error {
		details, err := a.market.GetTickerDetails(ctx, company.Ticker)
		if err == nil {
			out.details = details
		}
		return err
	})
	run("splits", func() error {
		splits, err := a.market.GetSplits(ctx, company.Ticker, year)
		if err == nil {
			out.splits = splits
		}
		return err
	})
	run("dividends", func() error {
		dividends, err := a.market.GetDividends(ctx, company.Ticker, year)
		if err == nil {
			out.dividends = dividends
		}
		return err
	})

	wg.Wait()
	return out
}

func (a *Assembler) build(ctx context.Context, company models.Company, calendarYear int) (*models.WrappedData, error) {
	fiscalYear := FiscalYearFor(calendarYear, company.FiscalYearEnd)

	logrus.WithFields(logrus.Fields{
		"ticker":        company.Ticker,
		"calendar_year": calendarYear,
		"fiscal_year":   fiscalYear,
	}).Info("Building wrapped record")

	in := a.fetchAll(ctx, company, calendarYear)

	var (
		fin     models.KeyFinancials
		usedFY  = fiscalYear
		fb      bool
		perf    *models.StockPerformance
		perfErr = polygon.ErrNoBars
	)
	if in.facts != nil {
		fin, usedFY, fb = sec.ExtractWithFallback(in.facts, fiscalYear)
	}
	if len(in.bars) > 0 {
		perf, perfErr = polygon.AnalyzeYear(in.bars, calendarYear, in.splits, in.dividends)
	}
	if in.facts == nil && perfErr != nil {
		return nil, fmt.Errorf("%w: %s %d", ErrDataUnavailable, company.Ticker, calendarYear)
	}

	stock := buildStock(perf, in.benchmarkBars, in.details, calendarYear)
	financials := buildFinancials(fin, in.details)
	split := stock.Split

	wrapped := &models.WrappedData{
		Meta: models.MetaData{
			Ticker:             company.Ticker,
			Name:               company.Name,
			CalendarYear:       calendarYear,
			FiscalYear:         usedFY,
			FiscalYearLabel:    FiscalYearLabel(company.FiscalYearEnd, usedFY),
			FiscalYearFallback: fb,
			Theme:              company.Theme,
		},
		Stock:      stock,
		Financials: financials,
		Segments:   []models.SegmentData{},
		Geographic: []models.GeographicData{},
		Quarterly:  buildQuarterly(in.facts, usedFY),
		CashFlow:   buildCashFlow(fin, in.facts, usedFY, perf, in.details),
		Valuation:  buildValuation(stock, fin),
		Insiders: models.InsiderData{
			NetActivity:  "neutral",
			CEOName:      company.CEO,
			Transactions: []models.InsiderTransaction{},
		},
		Events: []models.EventData{},
		Competitive: models.CompetitiveData{
			Competitors: []models.CompetitorData{},
		},
		Personality: ClassifyPersonality(stock.ReturnYTD, financials.RevenueGrowth, financials.NetMargin),
		GeneratedAt: a.now().UTC(),
	}
	wrapped.Summary = BuildSummary(company.Name, calendarYear, stock, fin, split)

	if patch, ok := enrichment.For(company.Ticker, calendarYear); ok {
		enrichment.Merge(wrapped, patch)
	}

	return wrapped, nil
}

// buildStock zero-defaults the display record from whatever the analyzer and
// reference fetches produced.
func buildStock(perf *models.StockPerformance, benchmarkBars []models.PriceBar, details *models.TickerDetails, year int) models.StockData {
	stock := models.StockData{Percentile: 50}

	if perf != nil {
		stock.ReturnYTD = perf.ReturnYTD
		stock.StartPrice = perf.StartPrice
		stock.EndPrice = perf.EndPrice
		stock.High52W = perf.High52W
		stock.Low52W = perf.Low52W
		stock.Volatility = perf.Volatility
		stock.Percentile = ReturnPercentile(perf.ReturnYTD)

		if benchmark, err := polygon.AnalyzeYear(benchmarkBars, year, nil, nil); err == nil {
			stock.VsSPX = perf.ReturnYTD - benchmark.ReturnYTD
		}

		if len(perf.Splits) > 0 {
			s := perf.Splits[0]
			stock.Split = &models.SplitInfo{
				Ratio: fmt.Sprintf("%g:%g", s.To, s.From),
				Date:  s.ExecutionDate,
			}
		}
	}

	if details != nil {
		stock.MarketCap = details.MarketCap
	}

	return stock
}

func buildFinancials(fin models.KeyFinancials, details *models.TickerDetails) models.FinancialData {
	out := models.FinancialData{
		Revenue:         fin.Revenue.OrZero(),
		RevenueGrowth:   fin.RevenueGrowth.OrZero(),
		GrossProfit:     fin.GrossProfit.OrZero(),
		GrossMargin:     fin.GrossMargin.OrZero(),
		OperatingIncome: fin.OperatingIncome.OrZero(),
		OperatingMargin: fin.OperatingMargin.OrZero(),
		NetIncome:       fin.NetIncome.OrZero(),
		NetMargin:       fin.NetMargin.OrZero(),
		EPS:             fin.EPS.OrZero(),
		EPSGrowth:       fin.EPSGrowth.OrZero(),
	}

	if details != nil && details.Employees > 0 {
		out.Employees = details.Employees
		headcount := float64(details.Employees)
		if fin.Revenue.Valid {
			out.RevenuePerEmployee = fin.Revenue.Value / headcount
		}
		if fin.NetIncome.Valid {
			out.ProfitPerEmployee = fin.NetIncome.Value / headcount
		}
	}

	return out
}

// buildQuarterly derives the quarterly revenue ramp from 10-Q filings.
// Quarter-over-quarter growth only; year-over-year needs prior-year quarters
// which comparative 10-Qs do not reliably carry.
func buildQuarterly(facts *models.CompanyFacts, fiscalYear int) []models.QuarterlyData {
	out := []models.QuarterlyData{}
	if facts == nil {
		return out
	}

	var quarters []models.FactObservation
	for _, concept := range []string{"Revenues", "RevenueFromContractWithCustomerExcludingAssessedTax", "SalesRevenueNet"} {
		quarters = sec.ResolveQuarterly(facts, concept, fiscalYear)
		if len(quarters) > 0 {
			break
		}
	}

	for i, q := range quarters {
		entry := models.QuarterlyData{
			Quarter: fmt.Sprintf("%s FY%d", q.Period, fiscalYear%100),
			Revenue: q.Value,
		}
		if i > 0 && quarters[i-1].Value != 0 {
			entry.QoQGrowth = (q.Value - quarters[i-1].Value) / quarters[i-1].Value
		}
		out = append(out, entry)
	}

	return out
}

func buildCashFlow(fin models.KeyFinancials, facts *models.CompanyFacts, fiscalYear int, perf *models.StockPerformance, details *models.TickerDetails) models.CashFlowData {
	out := models.CashFlowData{
		OperatingCashFlow: fin.OperatingCashFlow.OrZero(),
		FreeCashFlow:      fin.FreeCashFlow.OrZero(),
		CapEx:             fin.CapEx.OrZero(),
		RDSpend:           fin.RDExpense.OrZero(),
	}

	if facts != nil {
		out.Buybacks = sec.ResolveAnnual(facts, "PaymentsForRepurchaseOfCommonStock", fiscalYear).OrZero()
	}

	// Total cash dividends approximated as per-share sum times share count.
	if perf != nil && details != nil && details.SharesOutstanding > 0 {
		out.Dividends = perf.DividendPerShare * details.SharesOutstanding
	}

	return out
}

func buildValuation(stock models.StockData, fin models.KeyFinancials) models.ValuationData {
	out := models.ValuationData{
		PESectorAvg: 25,
		PSSectorAvg: 5,
	}

	// P/E only makes sense for profitable issuers.
	if fin.EPS.Positive() && stock.EndPrice > 0 {
		out.PERatio = stock.EndPrice / fin.EPS.Value
	}
	if fin.Revenue.Positive() && stock.MarketCap > 0 {
		out.PSRatio = stock.MarketCap / fin.Revenue.Value
	}

	return out
}
