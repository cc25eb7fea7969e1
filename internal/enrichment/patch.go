package enrichment

import (
	"strings"

	"github.com/finwrapped/finwrapped-go/internal/models"
)

// Patch is a curated overlay for one (company, calendar year). Overlapping
// sub-objects are merged field-by-field with the curated value winning only
// where one is present; curated-only sections (buzzwords, quotes,
// achievements, customer concentration) are appended wholesale.
type Patch struct {
	Stock        *StockPatch
	Financials   *FinancialsPatch
	CashFlow     *CashFlowPatch
	Valuation    *ValuationPatch
	Segments     []models.SegmentData
	Geographic   []models.GeographicData
	Quarterly    []models.QuarterlyData
	Events       []models.EventData
	Competitive  *models.CompetitiveData
	Insiders     *models.InsiderData
	Personality  *models.PersonalityData
	Summary      string
	Buzzwords    []models.Buzzword
	CEOQuote     *models.Quote
	Achievements []models.Achievement
	Customers    *models.CustomerConcentration
}

// StockPatch overrides individual stock fields. Absent fields leave the
// computed value untouched.
type StockPatch struct {
	ReturnYTD  models.Float
	StartPrice models.Float
	EndPrice   models.Float
	High52W    models.Float
	Low52W     models.Float
	MarketCap  models.Float
	VsSPX      models.Float
	Percentile *int
	Split      *models.SplitInfo
}

type FinancialsPatch struct {
	Revenue            models.Float
	RevenueGrowth      models.Float
	GrossProfit        models.Float
	GrossMargin        models.Float
	OperatingIncome    models.Float
	OperatingMargin    models.Float
	NetIncome          models.Float
	NetMargin          models.Float
	EPS                models.Float
	EPSGrowth          models.Float
	Employees          *int
	RevenuePerEmployee models.Float
	ProfitPerEmployee  models.Float
}

type CashFlowPatch struct {
	OperatingCashFlow models.Float
	FreeCashFlow      models.Float
	CapEx             models.Float
	RDSpend           models.Float
	Buybacks          models.Float
	Dividends         models.Float
}

type ValuationPatch struct {
	PERatio     models.Float
	PESectorAvg models.Float
	PSRatio     models.Float
	PSSectorAvg models.Float
}

// For returns the curated patch for a ticker and calendar year, if any.
func For(ticker string, year int) (*Patch, bool) {
	key := strings.ToUpper(strings.TrimSpace(ticker))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, ".", "_")

	byYear, ok := patches[key]
	if !ok {
		return nil, false
	}
	p, ok := byYear[year]
	return p, ok
}

func override(dst *float64, src models.Float) {
	if src.Valid {
		*dst = src.Value
	}
}

// Merge applies a patch to an assembled record in place.
func Merge(w *models.WrappedData, p *Patch) {
	if w == nil || p == nil {
		return
	}

	if s := p.Stock; s != nil {
		override(&w.Stock.ReturnYTD, s.ReturnYTD)
		override(&w.Stock.StartPrice, s.StartPrice)
		override(&w.Stock.EndPrice, s.EndPrice)
		override(&w.Stock.High52W, s.High52W)
		override(&w.Stock.Low52W, s.Low52W)
		override(&w.Stock.MarketCap, s.MarketCap)
		override(&w.Stock.VsSPX, s.VsSPX)
		if s.Percentile != nil {
			w.Stock.Percentile = *s.Percentile
		}
		if s.Split != nil {
			w.Stock.Split = s.Split
		}
	}

	if f := p.Financials; f != nil {
		override(&w.Financials.Revenue, f.Revenue)
		override(&w.Financials.RevenueGrowth, f.RevenueGrowth)
		override(&w.Financials.GrossProfit, f.GrossProfit)
		override(&w.Financials.GrossMargin, f.GrossMargin)
		override(&w.Financials.OperatingIncome, f.OperatingIncome)
		override(&w.Financials.OperatingMargin, f.OperatingMargin)
		override(&w.Financials.NetIncome, f.NetIncome)
		override(&w.Financials.NetMargin, f.NetMargin)
		override(&w.Financials.EPS, f.EPS)
		override(&w.Financials.EPSGrowth, f.EPSGrowth)
		if f.Employees != nil {
			w.Financials.Employees = *f.Employees
		}
		override(&w.Financials.RevenuePerEmployee, f.RevenuePerEmployee)
		override(&w.Financials.ProfitPerEmployee, f.ProfitPerEmployee)
	}

	if c := p.CashFlow; c != nil {
		override(&w.CashFlow.OperatingCashFlow, c.OperatingCashFlow)
		override(&w.CashFlow.FreeCashFlow, c.FreeCashFlow)
		override(&w.CashFlow.CapEx, c.CapEx)
		override(&w.CashFlow.RDSpend, c.RDSpend)
		override(&w.CashFlow.Buybacks, c.Buybacks)
		override(&w.CashFlow.Dividends, c.Dividends)
	}

	if v := p.Valuation; v != nil {
		override(&w.Valuation.PERatio, v.PERatio)
		override(&w.Valuation.PESectorAvg, v.PESectorAvg)
		override(&w.Valuation.PSRatio, v.PSRatio)
		override(&w.Valuation.PSSectorAvg, v.PSSectorAvg)
	}

	if len(p.Segments) > 0 {
		w.Segments = p.Segments
	}
	if len(p.Geographic) > 0 {
		w.Geographic = p.Geographic
	}
	if len(p.Quarterly) > 0 {
		w.Quarterly = p.Quarterly
	}
	if len(p.Events) > 0 {
		w.Events = p.Events
	}
	if p.Competitive != nil {
		w.Competitive = *p.Competitive
	}
	if p.Insiders != nil {
		w.Insiders = *p.Insiders
	}
	if p.Personality != nil {
		w.Personality = *p.Personality
	}
	if p.Summary != "" {
		w.Summary = p.Summary
	}

	// Curated-only sections.
	w.Buzzwords = p.Buzzwords
	w.CEOQuote = p.CEOQuote
	w.Achievements = p.Achievements
	w.Customers = p.Customers
}
