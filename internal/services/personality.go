package services

import "github.com/finwrapped/finwrapped-go/internal/models"

// ClassifyPersonality maps the year's numbers to a qualitative label via an
// ordered decision table; the first matching row wins. Inputs are
// zero-defaulted display values, so all-zero data lands in a middling bucket
// rather than producing no label.
func ClassifyPersonality(returnYTD, revenueGrowth, netMargin float64) models.PersonalityData {
	switch {
	case returnYTD > 1.0 && revenueGrowth > 0.5:
		return models.PersonalityData{
			Type:        "The Unstoppable Force",
			Emoji:       "🦾",
			Description: "An absolute juggernaut. Every quarter dominated, every doubter silenced. This was a company that couldn't be stopped.",
			Traits:      []string{"Hypergrowth", "Market Leader", "Momentum"},
		}
	case returnYTD > 0.5 && netMargin > 0.2:
		return models.PersonalityData{
			Type:        "The Profit Machine",
			Emoji:       "💰",
			Description: "A lean, mean profit-generating machine. Strong returns backed by exceptional profitability.",
			Traits:      []string{"High Margins", "Efficient", "Cash Rich"},
		}
	case returnYTD > 0.3:
		return models.PersonalityData{
			Type:        "The Steady Climber",
			Emoji:       "📈",
			Description: "Consistent outperformance without the drama. A reliable wealth builder that delivered solid gains.",
			Traits:      []string{"Consistent", "Reliable", "Outperformer"},
		}
	case returnYTD > 0 && revenueGrowth > 0.1:
		return models.PersonalityData{
			Type:        "The Growth Story",
			Emoji:       "🌱",
			Description: "Revenue growing faster than the stock price. The market hasn't caught up yet.",
			Traits:      []string{"Growth Mode", "Expanding", "Undervalued"},
		}
	case returnYTD > 0:
		return models.PersonalityData{
			Type:        "The Quiet Performer",
			Emoji:       "🎯",
			Description: "No fireworks, just steady execution. Beat the bank and did its job.",
			Traits:      []string{"Stable", "Modest Growth", "Defensive"},
		}
	case returnYTD > -0.2 && netMargin > 0.1:
		return models.PersonalityData{
			Type:        "The Turnaround Story",
			Emoji:       "🔄",
			Description: "A rough year on the stock, but fundamentals suggest better days ahead.",
			Traits:      []string{"Oversold", "Fundamentals OK", "Patience Required"},
		}
	case returnYTD > -0.3:
		return models.PersonalityData{
			Type:        "The Rebuilder",
			Emoji:       "🏗️",
			Description: "Taking its lumps while laying groundwork for the future.",
			Traits:      []string{"Restructuring", "Challenged", "Rebuilding"},
		}
	default:
		return models.PersonalityData{
			Type:        "The Fallen Giant",
			Emoji:       "📉",
			Description: "A tough year. Investors are questioning the path forward.",
			Traits:      []string{"Struggling", "Uncertain", "High Risk"},
		}
	}
}

// ReturnPercentile approximates where a yearly return lands against the
// historical S&P 500 single-name distribution.
func ReturnPercentile(returnYTD float64) int {
	switch {
	case returnYTD > 1.0:
		return 99
	case returnYTD > 0.5:
		return 95
	case returnYTD > 0.3:
		return 85
	case returnYTD > 0.2:
		return 75
	case returnYTD > 0.1:
		return 60
	case returnYTD > 0:
		return 50
	case returnYTD > -0.1:
		return 35
	case returnYTD > -0.2:
		return 20
	default:
		return 10
	}
}
