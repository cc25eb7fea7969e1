package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceBar is one trading day of OHLCV data for a ticker. Bars are immutable
// once fetched and ordered ascending by date before analysis.
type PriceBar struct {
	Date   time.Time       `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume decimal.Decimal `json:"volume"`
}

// Split is a corporate split action: To new shares for From old shares.
type Split struct {
	ExecutionDate string  `json:"execution_date"`
	From          float64 `json:"split_from"`
	To            float64 `json:"split_to"`
}

// Dividend is one cash dividend record.
type Dividend struct {
	ExDividendDate  string  `json:"ex_dividend_date"`
	CashAmount      float64 `json:"cash_amount"`
	DeclarationDate string  `json:"declaration_date"`
	PayDate         string  `json:"pay_date"`
}

// TickerDetails is the reference snapshot for a ticker: market cap, share
// count and headcount as reported by the price provider.
type TickerDetails struct {
	Ticker            string  `json:"ticker"`
	Name              string  `json:"name"`
	MarketCap         float64 `json:"market_cap"`
	SharesOutstanding float64 `json:"weighted_shares_outstanding"`
	Employees         int     `json:"total_employees"`
	Description       string  `json:"description"`
	ListDate          string  `json:"list_date"`
	SICDescription    string  `json:"sic_description"`
}

// StockPerformance is the analyzer output for one ticker over one calendar
// year.
type StockPerformance struct {
	ReturnYTD  float64 `json:"returnYTD"`
	StartPrice float64 `json:"startPrice"`
	EndPrice   float64 `json:"endPrice"`
	High52W    float64 `json:"high52w"`
	Low52W     float64 `json:"low52w"`
	Volatility float64 `json:"volatility"`
	Splits     []Split `json:"splits,omitempty"`
	// DividendPerShare is the sum of cash dividends with an ex-date inside
	// the year.
	DividendPerShare float64 `json:"dividendPerShare"`
}
