package polygon

import (
	"errors"
	"math"
	"sort"

	"github.com/finwrapped/finwrapped-go/internal/models"
)

// tradingDaysPerYear annualizes daily return volatility.
const tradingDaysPerYear = 252

// ErrNoBars indicates the fetch window contained no trading days for the
// requested year.
var ErrNoBars = errors.New("no price bars in requested year")

// AnalyzeYear computes the performance summary for one calendar year from
// daily bars. Bars outside the year (the fetch buffer) are discarded before
// analysis. Dividends and splits are attached as-is.
func AnalyzeYear(bars []models.PriceBar, year int, splits []models.Split, dividends []models.Dividend) (*models.StockPerformance, error) {
	inYear := make([]models.PriceBar, 0, len(bars))
	for _, b := range bars {
		if b.Date.Year() == year {
			inYear = append(inYear, b)
		}
	}
	if len(inYear) == 0 {
		return nil, ErrNoBars
	}

	sort.Slice(inYear, func(i, j int) bool { return inYear[i].Date.Before(inYear[j].Date) })

	first := inYear[0]
	last := inYear[len(inYear)-1]

	startPrice, _ := first.Close.Float64()
	endPrice, _ := last.Close.Float64()

	var returnYTD float64
	if startPrice != 0 {
		returnYTD = (endPrice - startPrice) / startPrice
	}

	high := inYear[0].High
	low := inYear[0].Low
	for _, b := range inYear[1:] {
		if b.High.GreaterThan(high) {
			high = b.High
		}
		if b.Low.LessThan(low) {
			low = b.Low
		}
	}
	high52w, _ := high.Float64()
	low52w, _ := low.Float64()

	var dividendPerShare float64
	for _, d := range dividends {
		dividendPerShare += d.CashAmount
	}

	return &models.StockPerformance{
		ReturnYTD:        returnYTD,
		StartPrice:       startPrice,
		EndPrice:         endPrice,
		High52W:          high52w,
		Low52W:           low52w,
		Volatility:       annualizedVolatility(inYear),
		Splits:           splits,
		DividendPerShare: dividendPerShare,
	}, nil
}

// annualizedVolatility is the standard deviation of daily close-to-close
// percentage returns scaled by sqrt(252). Zero with fewer than two bars.
func annualizedVolatility(bars []models.PriceBar) float64 {
	if len(bars) < 2 {
		return 0
	}

	returns := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev, _ := bars[i-1].Close.Float64()
		cur, _ := bars[i].Close.Float64()
		if prev == 0 {
			continue
		}
		returns = append(returns, (cur-prev)/prev)
	}
	if len(returns) < 2 {
		return 0
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns))

	return math.Sqrt(variance) * math.Sqrt(tradingDaysPerYear)
}
