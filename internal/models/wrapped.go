package models

import "time"

// WrappedData is the assembled per-company, per-year summary record. It is
// persisted as an opaque snapshot in the computed-result cache and replaced
// wholesale on refresh, never mutated in place.
type WrappedData struct {
	Meta        MetaData         `json:"meta"`
	Stock       StockData        `json:"stock"`
	Financials  FinancialData    `json:"financials"`
	Segments    []SegmentData    `json:"segments"`
	Geographic  []GeographicData `json:"geographic"`
	Quarterly   []QuarterlyData  `json:"quarterly"`
	CashFlow    CashFlowData     `json:"cashFlow"`
	Valuation   ValuationData    `json:"valuation"`
	Insiders    InsiderData      `json:"insiders"`
	Events      []EventData      `json:"events"`
	Competitive CompetitiveData  `json:"competitive"`
	Personality PersonalityData  `json:"personality"`
	Summary     string           `json:"summary"`
	// Enrichment extras, present only for curated companies.
	Buzzwords    []Buzzword             `json:"buzzwords,omitempty"`
	CEOQuote     *Quote                 `json:"ceoQuote,omitempty"`
	Achievements []Achievement          `json:"achievements,omitempty"`
	Customers    *CustomerConcentration `json:"customers,omitempty"`
	GeneratedAt  time.Time              `json:"generatedAt"`
}

// MetaData labels the record. Stock figures always cover CalendarYear;
// financial figures cover FiscalYear, which may differ for off-cycle filers.
type MetaData struct {
	Ticker       string `json:"ticker"`
	Name         string `json:"name"`
	CalendarYear int    `json:"calendarYear"`
	FiscalYear   int    `json:"fiscalYear"`
	// FiscalYearLabel is the human-readable close, e.g. "September 2024".
	FiscalYearLabel string `json:"fiscalYearEnd"`
	// FiscalYearFallback is set when the requested fiscal year had no filed
	// data and the prior year's figures were substituted.
	FiscalYearFallback bool  `json:"fiscalYearFallback,omitempty"`
	Theme              Theme `json:"theme"`
}

type StockData struct {
	ReturnYTD  float64    `json:"returnYTD"`
	StartPrice float64    `json:"startPrice"`
	EndPrice   float64    `json:"endPrice"`
	High52W    float64    `json:"high52w"`
	Low52W     float64    `json:"low52w"`
	Volatility float64    `json:"volatility"`
	MarketCap  float64    `json:"marketCap"`
	VsSPX      float64    `json:"vsSpx"`
	Percentile int        `json:"percentile"`
	Split      *SplitInfo `json:"split,omitempty"`
}

// SplitInfo renders a split for display, e.g. ratio "10:1".
type SplitInfo struct {
	Ratio string `json:"ratio"`
	Date  string `json:"date"`
}

type FinancialData struct {
	Revenue            float64 `json:"revenue"`
	RevenueGrowth      float64 `json:"revenueGrowth"`
	GrossProfit        float64 `json:"grossProfit"`
	GrossMargin        float64 `json:"grossMargin"`
	OperatingIncome    float64 `json:"operatingIncome"`
	OperatingMargin    float64 `json:"operatingMargin"`
	NetIncome          float64 `json:"netIncome"`
	NetMargin          float64 `json:"netMargin"`
	EPS                float64 `json:"eps"`
	EPSGrowth          float64 `json:"epsGrowth"`
	Employees          int     `json:"employees,omitempty"`
	RevenuePerEmployee float64 `json:"revenuePerEmployee,omitempty"`
	ProfitPerEmployee  float64 `json:"profitPerEmployee,omitempty"`
}

type SegmentData struct {
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
	Growth     float64 `json:"growth"`
	Color      string  `json:"color,omitempty"`
}

type GeographicData struct {
	Region     string  `json:"region"`
	Percentage float64 `json:"percentage"`
	Growth     float64 `json:"growth,omitempty"`
	Color      string  `json:"color,omitempty"`
}

type QuarterlyData struct {
	Quarter   string  `json:"quarter"`
	Revenue   float64 `json:"revenue"`
	QoQGrowth float64 `json:"qoqGrowth"`
	YoYGrowth float64 `json:"yoyGrowth"`
}

type CashFlowData struct {
	OperatingCashFlow float64 `json:"operatingCashFlow"`
	FreeCashFlow      float64 `json:"freeCashFlow"`
	CapEx             float64 `json:"capex"`
	RDSpend           float64 `json:"rdSpend"`
	Buybacks          float64 `json:"buybacks"`
	Dividends         float64 `json:"dividends"`
}

type ValuationData struct {
	PERatio     float64 `json:"peRatio"`
	PESectorAvg float64 `json:"peSectorAvg"`
	PSRatio     float64 `json:"psRatio"`
	PSSectorAvg float64 `json:"psSectorAvg"`
}

type InsiderData struct {
	TotalSales   float64              `json:"totalSales"`
	TotalBuys    float64              `json:"totalBuys"`
	NetActivity  string               `json:"netActivity"`
	CEOName      string               `json:"ceoName,omitempty"`
	Transactions []InsiderTransaction `json:"transactions"`
}

type InsiderTransaction struct {
	Date   string  `json:"date"`
	Name   string  `json:"name"`
	Title  string  `json:"title"`
	Type   string  `json:"type"`
	Shares float64 `json:"shares"`
	Value  float64 `json:"value"`
}

type EventData struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Color       string `json:"color,omitempty"`
}

type CompetitiveData struct {
	MarketShare      float64          `json:"marketShare,omitempty"`
	MarketShareLabel string           `json:"marketShareLabel,omitempty"`
	Moat             string           `json:"moat,omitempty"`
	Competitors      []CompetitorData `json:"competitors"`
}

type CompetitorData struct {
	Name   string  `json:"name"`
	Ticker string  `json:"ticker,omitempty"`
	Share  float64 `json:"share,omitempty"`
	Metric string  `json:"metric,omitempty"`
	Color  string  `json:"color,omitempty"`
}

type PersonalityData struct {
	Type        string   `json:"type"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
}

type Buzzword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
	Size  string `json:"size"`
}

type Quote struct {
	Quote string `json:"quote"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

type Achievement struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type CustomerConcentration struct {
	Top4Percentage float64  `json:"top4Percentage"`
	Top4Label      string   `json:"top4Label"`
	Customers      []string `json:"customers"`
	Risk           string   `json:"risk"`
}
