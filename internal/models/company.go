package models

// Theme carries the display colors for a company. Presentation concern,
// passed through untouched.
type Theme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Company is one covered issuer from the static registry. Read-only at
// request time; the pipeline never mutates it.
type Company struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	// CIK is the SEC filing-registry identifier, 10 digits zero-padded.
	CIK    string `json:"cik"`
	Sector string `json:"sector"`
	// FiscalYearEnd is the month (1-12) the company's fiscal year closes.
	FiscalYearEnd int    `json:"fiscal_year_end"`
	CEO           string `json:"ceo,omitempty"`
	Theme         Theme  `json:"theme"`
}
