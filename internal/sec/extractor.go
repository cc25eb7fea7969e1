package sec

import "github.com/finwrapped/finwrapped-go/internal/models"

// Concept alternates, tried in order. Filers moved between the legacy revenue
// tags and the ASC 606 contract-revenue tags across years, so the list spans
// both generations.
var (
	revenueConcepts = []string{
		"Revenues",
		"RevenueFromContractWithCustomerExcludingAssessedTax",
		"SalesRevenueNet",
		"RevenueFromContractWithCustomerIncludingAssessedTax",
		"SalesRevenueGoodsNet",
		"SalesRevenueServicesNet",
	}
	operatingIncomeConcepts = []string{
		"OperatingIncomeLoss",
		"IncomeLossFromContinuingOperationsBeforeIncomeTaxesExtraordinaryItemsNoncontrollingInterest",
	}
	netIncomeConcepts = []string{"NetIncomeLoss", "ProfitLoss"}
	epsConcepts       = []string{"EarningsPerShareDiluted", "EarningsPerShareBasic"}
	equityConcepts    = []string{
		"StockholdersEquity",
		"StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest",
	}
	capexConcepts = []string{
		"PaymentsToAcquirePropertyPlantAndEquipment",
		"PaymentsToAcquireProductiveAssets",
	}
)

// resolveFirst tries concept alternates in order and returns the first
// present value.
func resolveFirst(facts *models.CompanyFacts, concepts []string, fiscalYear int) models.Float {
	for _, concept := range concepts {
		if v := ResolveAnnual(facts, concept, fiscalYear); v.Valid {
			return v
		}
	}
	return models.Absent
}

// Extract resolves the canonical financial bundle for one fiscal year. Each
// metric degrades independently; derived metrics are absent whenever an
// operand is absent, never coerced to zero.
func Extract(facts *models.CompanyFacts, fiscalYear int) models.KeyFinancials {
	revenue := resolveFirst(facts, revenueConcepts, fiscalYear)
	priorRevenue := resolveFirst(facts, revenueConcepts, fiscalYear-1)

	grossProfit := ResolveAnnual(facts, "GrossProfit", fiscalYear)
	operatingIncome := resolveFirst(facts, operatingIncomeConcepts, fiscalYear)
	netIncome := resolveFirst(facts, netIncomeConcepts, fiscalYear)

	eps := resolveFirst(facts, epsConcepts, fiscalYear)
	priorEPS := resolveFirst(facts, epsConcepts, fiscalYear-1)

	ocf := ResolveAnnual(facts, "NetCashProvidedByUsedInOperatingActivities", fiscalYear)
	capex := resolveFirst(facts, capexConcepts, fiscalYear)

	return models.KeyFinancials{
		Revenue:           revenue,
		RevenueGrowth:     models.Growth(revenue, priorRevenue),
		GrossProfit:       grossProfit,
		GrossMargin:       models.Ratio(grossProfit, revenue),
		OperatingIncome:   operatingIncome,
		OperatingMargin:   models.Ratio(operatingIncome, revenue),
		NetIncome:         netIncome,
		NetMargin:         models.Ratio(netIncome, revenue),
		EPS:               eps,
		EPSGrowth:         models.GrowthAbs(eps, priorEPS),
		TotalAssets:       ResolveAnnual(facts, "Assets", fiscalYear),
		TotalLiabilities:  ResolveAnnual(facts, "Liabilities", fiscalYear),
		Equity:            resolveFirst(facts, equityConcepts, fiscalYear),
		OperatingCashFlow: ocf,
		CapEx:             capex,
		FreeCashFlow:      models.Sub(ocf, capex),
		RDExpense:         ResolveAnnual(facts, "ResearchAndDevelopmentExpense", fiscalYear),
	}
}

// ExtractWithFallback extracts for the requested fiscal year, falling back to
// the prior year when the requested one has no revenue on file yet (the 10-K
// for a just-closed year typically lands months after year end). Returns the
// fiscal year actually used and whether the fallback fired.
func ExtractWithFallback(facts *models.CompanyFacts, fiscalYear int) (models.KeyFinancials, int, bool) {
	financials := Extract(facts, fiscalYear)
	if financials.Revenue.Valid {
		return financials, fiscalYear, false
	}

	prior := Extract(facts, fiscalYear-1)
	if prior.Revenue.Valid {
		return prior, fiscalYear - 1, true
	}

	return financials, fiscalYear, false
}
