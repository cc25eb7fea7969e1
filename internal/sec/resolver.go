package sec

import (
	"sort"

	"github.com/finwrapped/finwrapped-go/internal/models"
)

// unitPreference orders the unit buckets a concept may report under. The
// first bucket with a matching observation wins; monetary facts dominate.
var unitPreference = []string{"USD", "USD/shares", "pure", "shares"}

// ResolveAnnual returns the value of one us-gaap concept for one fiscal year
// from annual filings. Comparative filings restate prior years, so several
// observations can share the (fy, form, fp) triple; the one with the
// lexicographically greatest period-end date is the most recent restatement
// and wins. Absent when the concept is missing or no observation matches.
func ResolveAnnual(facts *models.CompanyFacts, concept string, fiscalYear int) models.Float {
	gaap := facts.GAAP()
	if gaap == nil {
		return models.Absent
	}
	c, ok := gaap[concept]
	if !ok {
		return models.Absent
	}

	for _, unit := range unitPreference {
		observations, ok := c.Units[unit]
		if !ok {
			continue
		}

		var best *models.FactObservation
		for i := range observations {
			o := &observations[i]
			if o.FiscalYr != fiscalYear || o.Form != "10-K" || o.Period != "FY" {
				continue
			}
			if best == nil || o.End > best.End {
				best = o
			}
		}
		if best != nil {
			return models.F(best.Value)
		}
	}

	return models.Absent
}

// ResolveQuarterly returns the four 10-Q observations of a concept for one
// fiscal year, ordered Q1..Q4. Years with missing quarters return what exists.
func ResolveQuarterly(facts *models.CompanyFacts, concept string, fiscalYear int) []models.FactObservation {
	gaap := facts.GAAP()
	if gaap == nil {
		return nil
	}
	c, ok := gaap[concept]
	if !ok {
		return nil
	}

	var out []models.FactObservation
	for _, unit := range unitPreference {
		observations, ok := c.Units[unit]
		if !ok {
			continue
		}

		// Dedup restatements per quarter tag, keeping the latest period end.
		byQuarter := make(map[string]models.FactObservation)
		for _, o := range observations {
			if o.FiscalYr != fiscalYear || o.Form != "10-Q" {
				continue
			}
			if o.Period != "Q1" && o.Period != "Q2" && o.Period != "Q3" && o.Period != "Q4" {
				continue
			}
			if prev, ok := byQuarter[o.Period]; !ok || o.End > prev.End {
				byQuarter[o.Period] = o
			}
		}
		if len(byQuarter) == 0 {
			continue
		}

		for _, o := range byQuarter {
			out = append(out, o)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
		return out
	}

	return nil
}
