package sec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwrapped/finwrapped-go/internal/models"
)

func factsWith(concept, unit string, observations ...models.FactObservation) *models.CompanyFacts {
	return &models.CompanyFacts{
		CIK:        320193,
		EntityName: "Test Corp",
		Facts: map[string]models.ConceptGroup{
			"us-gaap": {
				concept: models.Concept{
					Units: map[string][]models.FactObservation{
						unit: observations,
					},
				},
			},
		},
	}
}

func TestResolveAnnual_PicksMatchingObservation(t *testing.T) {
	facts := factsWith("Revenues", "USD",
		models.FactObservation{End: "2023-12-31", Value: 100e9, FiscalYr: 2023, Period: "FY", Form: "10-K"},
		models.FactObservation{End: "2024-12-31", Value: 130e9, FiscalYr: 2024, Period: "FY", Form: "10-K"},
	)

	v := ResolveAnnual(facts, "Revenues", 2024)
	require.True(t, v.Valid)
	assert.Equal(t, 130e9, v.Value)
}

func TestResolveAnnual_LatestRestatementWins(t *testing.T) {
	// A comparative filing restated FY2023 with a later period end; the
	// restated figure must win regardless of slice order.
	facts := factsWith("Revenues", "USD",
		models.FactObservation{End: "2024-01-28", Value: 61e9, FiscalYr: 2023, Period: "FY", Form: "10-K"},
		models.FactObservation{End: "2023-01-29", Value: 27e9, FiscalYr: 2023, Period: "FY", Form: "10-K"},
	)

	v := ResolveAnnual(facts, "Revenues", 2023)
	require.True(t, v.Valid)
	assert.Equal(t, 61e9, v.Value)
}

func TestResolveAnnual_FiltersFormAndPeriod(t *testing.T) {
	facts := factsWith("Revenues", "USD",
		models.FactObservation{End: "2024-03-31", Value: 10e9, FiscalYr: 2024, Period: "Q1", Form: "10-Q"},
		models.FactObservation{End: "2024-12-31", Value: 40e9, FiscalYr: 2024, Period: "FY", Form: "10-K/A"},
	)

	assert.False(t, ResolveAnnual(facts, "Revenues", 2024).Valid)
}

func TestResolveAnnual_UnitPreferenceOrder(t *testing.T) {
	facts := &models.CompanyFacts{
		Facts: map[string]models.ConceptGroup{
			"us-gaap": {
				"EarningsPerShareDiluted": models.Concept{
					Units: map[string][]models.FactObservation{
						"shares": {
							{End: "2024-12-31", Value: 999, FiscalYr: 2024, Period: "FY", Form: "10-K"},
						},
						"USD/shares": {
							{End: "2024-12-31", Value: 2.53, FiscalYr: 2024, Period: "FY", Form: "10-K"},
						},
					},
				},
			},
		},
	}

	v := ResolveAnnual(facts, "EarningsPerShareDiluted", 2024)
	require.True(t, v.Valid)
	assert.Equal(t, 2.53, v.Value)
}

func TestResolveAnnual_MissingConcept(t *testing.T) {
	facts := factsWith("Revenues", "USD")

	assert.False(t, ResolveAnnual(facts, "GrossProfit", 2024).Valid)
	assert.False(t, ResolveAnnual(&models.CompanyFacts{}, "Revenues", 2024).Valid)
}

func TestResolveQuarterly_OrderedAndDeduped(t *testing.T) {
	facts := factsWith("Revenues", "USD",
		models.FactObservation{End: "2024-09-30", Value: 30, FiscalYr: 2024, Period: "Q3", Form: "10-Q"},
		models.FactObservation{End: "2024-03-31", Value: 10, FiscalYr: 2024, Period: "Q1", Form: "10-Q"},
		// Restated Q1 with a later period end wins.
		models.FactObservation{End: "2024-04-02", Value: 11, FiscalYr: 2024, Period: "Q1", Form: "10-Q"},
		models.FactObservation{End: "2024-06-30", Value: 20, FiscalYr: 2024, Period: "Q2", Form: "10-Q"},
		models.FactObservation{End: "2024-12-31", Value: 100, FiscalYr: 2024, Period: "FY", Form: "10-K"},
	)

	quarters := ResolveQuarterly(facts, "Revenues", 2024)
	require.Len(t, quarters, 3)
	assert.Equal(t, "Q1", quarters[0].Period)
	assert.Equal(t, 11.0, quarters[0].Value)
	assert.Equal(t, "Q2", quarters[1].Period)
	assert.Equal(t, "Q3", quarters[2].Period)
}
