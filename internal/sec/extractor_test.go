package sec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwrapped/finwrapped-go/internal/models"
)

func annual(year int, value float64) models.FactObservation {
	end := "2099-12-31"
	switch year {
	case 2022:
		end = "2022-12-31"
	case 2023:
		end = "2023-12-31"
	case 2024:
		end = "2024-12-31"
	}
	return models.FactObservation{End: end, Value: value, FiscalYr: year, Period: "FY", Form: "10-K"}
}

func fullFacts() *models.CompanyFacts {
	usd := func(obs ...models.FactObservation) models.Concept {
		return models.Concept{Units: map[string][]models.FactObservation{"USD": obs}}
	}
	perShare := func(obs ...models.FactObservation) models.Concept {
		return models.Concept{Units: map[string][]models.FactObservation{"USD/shares": obs}}
	}

	return &models.CompanyFacts{
		Facts: map[string]models.ConceptGroup{
			"us-gaap": {
				"RevenueFromContractWithCustomerExcludingAssessedTax": usd(annual(2023, 100e9), annual(2024, 130e9)),
				"GrossProfit":             usd(annual(2024, 91e9)),
				"OperatingIncomeLoss":     usd(annual(2024, 52e9)),
				"NetIncomeLoss":           usd(annual(2024, 39e9)),
				"EarningsPerShareDiluted": perShare(annual(2023, -0.5), annual(2024, 1.5)),
				"Assets":                  usd(annual(2024, 200e9)),
				"Liabilities":             usd(annual(2024, 80e9)),
				"StockholdersEquity":      usd(annual(2024, 120e9)),
				"NetCashProvidedByUsedInOperatingActivities": usd(annual(2024, 60e9)),
				"PaymentsToAcquirePropertyPlantAndEquipment": usd(annual(2024, 10e9)),
				"ResearchAndDevelopmentExpense":              usd(annual(2024, 8e9)),
			},
		},
	}
}

func TestExtract_FullBundle(t *testing.T) {
	fin := Extract(fullFacts(), 2024)

	assert.Equal(t, 130e9, fin.Revenue.Value)
	assert.InDelta(t, 0.30, fin.RevenueGrowth.Value, 1e-9)
	assert.InDelta(t, 0.70, fin.GrossMargin.Value, 1e-9)
	assert.InDelta(t, 0.40, fin.OperatingMargin.Value, 1e-9)
	assert.InDelta(t, 0.30, fin.NetMargin.Value, 1e-9)
	assert.Equal(t, 50e9, fin.FreeCashFlow.Value)
	assert.Equal(t, 8e9, fin.RDExpense.Value)
}

func TestExtract_EPSGrowthUsesAbsolutePriorDenominator(t *testing.T) {
	fin := Extract(fullFacts(), 2024)

	// From -0.50 to 1.50: (1.5 - (-0.5)) / |-0.5| = +4.0, a positive swing.
	require.True(t, fin.EPSGrowth.Valid)
	assert.InDelta(t, 4.0, fin.EPSGrowth.Value, 1e-9)
}

func TestExtract_AbsentOperandsStayAbsent(t *testing.T) {
	facts := factsWith("NetIncomeLoss", "USD", annual(2024, 5e9))

	fin := Extract(facts, 2024)

	require.True(t, fin.NetIncome.Valid)
	assert.False(t, fin.Revenue.Valid)
	assert.False(t, fin.NetMargin.Valid, "margin must be absent without revenue, not zero")
	assert.False(t, fin.RevenueGrowth.Valid)
	assert.False(t, fin.FreeCashFlow.Valid)
}

func TestExtract_RevenueConceptFallbackOrder(t *testing.T) {
	// Revenues is present but only for an older year; the contract-revenue
	// tag carries the requested year.
	facts := &models.CompanyFacts{
		Facts: map[string]models.ConceptGroup{
			"us-gaap": {
				"Revenues": models.Concept{Units: map[string][]models.FactObservation{
					"USD": {annual(2022, 50e9)},
				}},
				"SalesRevenueNet": models.Concept{Units: map[string][]models.FactObservation{
					"USD": {annual(2024, 70e9)},
				}},
			},
		},
	}

	fin := Extract(facts, 2024)
	require.True(t, fin.Revenue.Valid)
	assert.Equal(t, 70e9, fin.Revenue.Value)
}

func TestExtractWithFallback(t *testing.T) {
	facts := factsWith("Revenues", "USD", annual(2023, 100e9))

	fin, used, fellBack := ExtractWithFallback(facts, 2024)
	assert.True(t, fellBack)
	assert.Equal(t, 2023, used)
	assert.Equal(t, 100e9, fin.Revenue.Value)

	fin, used, fellBack = ExtractWithFallback(facts, 2023)
	assert.False(t, fellBack)
	assert.Equal(t, 2023, used)
	assert.Equal(t, 100e9, fin.Revenue.Value)

	// Two consecutive empty years return the requested year unresolved.
	_, used, fellBack = ExtractWithFallback(facts, 2026)
	assert.False(t, fellBack)
	assert.Equal(t, 2026, used)
}
