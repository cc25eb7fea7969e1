package models

// CompanyFacts is the EDGAR companyfacts document for one issuer: every
// tagged numeric fact the company has filed, grouped by taxonomy and concept.
type CompanyFacts struct {
	CIK        int64                   `json:"cik"`
	EntityName string                  `json:"entityName"`
	Facts      map[string]ConceptGroup `json:"facts"`
}

// ConceptGroup maps concept name (e.g. "Revenues") to its tagged fact data
// within one taxonomy ("us-gaap", "dei").
type ConceptGroup map[string]Concept

// Concept is one tagged fact: a label plus observations grouped by unit type.
type Concept struct {
	Label       string                       `json:"label"`
	Description string                       `json:"description"`
	Units       map[string][]FactObservation `json:"units"`
}

// FactObservation is a single reported value of a concept. Comparative
// filings restate prior years, so several observations may share the same
// (fiscal year, form, period tag) and differ only in period-end date.
type FactObservation struct {
	Start     string  `json:"start,omitempty"`
	End       string  `json:"end"`
	Value     float64 `json:"val"`
	Accession string  `json:"accn"`
	FiscalYr  int     `json:"fy"`
	Period    string  `json:"fp"`
	Form      string  `json:"form"`
	Filed     string  `json:"filed"`
}

// GAAP returns the us-gaap concept group, nil when the document carries none.
func (f *CompanyFacts) GAAP() ConceptGroup {
	if f == nil {
		return nil
	}
	return f.Facts["us-gaap"]
}

// KeyFinancials is the canonical resolved bundle for one fiscal year. Every
// field is independently optional; an absent underlying fact degrades that
// field only.
type KeyFinancials struct {
	Revenue           Float `json:"revenue"`
	RevenueGrowth     Float `json:"revenueGrowth"`
	GrossProfit       Float `json:"grossProfit"`
	GrossMargin       Float `json:"grossMargin"`
	OperatingIncome   Float `json:"operatingIncome"`
	OperatingMargin   Float `json:"operatingMargin"`
	NetIncome         Float `json:"netIncome"`
	NetMargin         Float `json:"netMargin"`
	EPS               Float `json:"eps"`
	EPSGrowth         Float `json:"epsGrowth"`
	TotalAssets       Float `json:"totalAssets"`
	TotalLiabilities  Float `json:"totalLiabilities"`
	Equity            Float `json:"equity"`
	OperatingCashFlow Float `json:"operatingCashFlow"`
	CapEx             Float `json:"capex"`
	FreeCashFlow      Float `json:"freeCashFlow"`
	RDExpense         Float `json:"rdExpense"`
}
