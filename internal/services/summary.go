package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/finwrapped/finwrapped-go/internal/models"
)

// BuildSummary renders the short narrative for a wrapped record. Clauses
// whose figures are absent are omitted entirely rather than rendered with
// placeholders.
func BuildSummary(name string, calendarYear int, stock models.StockData, fin models.KeyFinancials, split *models.SplitInfo) string {
	var b strings.Builder

	direction := "gained"
	if stock.ReturnYTD < 0 {
		direction = "lost"
	}
	fmt.Fprintf(&b, "In %d, %s stock %s %.0f%%. ", calendarYear, name, direction, math.Abs(stock.ReturnYTD*100))

	if fin.Revenue.Valid {
		fmt.Fprintf(&b, "Revenue reached $%.1fB", fin.Revenue.Value/1e9)
		if fin.RevenueGrowth.Valid {
			growthDir := "up"
			if fin.RevenueGrowth.Value < 0 {
				growthDir = "down"
			}
			fmt.Fprintf(&b, " (%s %.0f%% YoY)", growthDir, math.Abs(fin.RevenueGrowth.Value*100))
		}
		b.WriteString(". ")
	}

	if fin.NetIncome.Valid && fin.NetMargin.Valid {
		fmt.Fprintf(&b, "Net income was $%.1fB with a %.0f%% net margin. ",
			fin.NetIncome.Value/1e9, fin.NetMargin.Value*100)
	}

	if split != nil {
		fmt.Fprintf(&b, "The company executed a %s stock split in %s. ", split.Ratio, split.Date)
	}

	return strings.TrimSpace(b.String())
}
