package polygon

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwrapped/finwrapped-go/internal/models"
)

func bar(date string, open, high, low, close float64) models.PriceBar {
	d, _ := time.Parse("2006-01-02", date)
	return models.PriceBar{
		Date:   d,
		Open:   decimal.NewFromFloat(open),
		High:   decimal.NewFromFloat(high),
		Low:    decimal.NewFromFloat(low),
		Close:  decimal.NewFromFloat(close),
		Volume: decimal.NewFromInt(1_000_000),
	}
}

func TestAnalyzeYear_ReturnAndRange(t *testing.T) {
	bars := []models.PriceBar{
		// Buffer bars from the prior December must be ignored.
		bar("2023-12-15", 95, 96, 94, 95),
		bar("2023-12-29", 98, 99, 97, 98),
		bar("2024-01-02", 100, 102, 99, 100),
		bar("2024-06-14", 130, 140, 128, 138),
		bar("2024-12-31", 148, 152, 90, 150),
	}

	perf, err := AnalyzeYear(bars, 2024, nil, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, perf.ReturnYTD, 1e-9)
	assert.Equal(t, 100.0, perf.StartPrice)
	assert.Equal(t, 150.0, perf.EndPrice)
	assert.Equal(t, 152.0, perf.High52W)
	assert.Equal(t, 90.0, perf.Low52W)
}

func TestAnalyzeYear_SortsUnorderedBars(t *testing.T) {
	bars := []models.PriceBar{
		bar("2024-12-31", 148, 152, 146, 150),
		bar("2024-01-02", 100, 102, 99, 100),
	}

	perf, err := AnalyzeYear(bars, 2024, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 100.0, perf.StartPrice)
	assert.Equal(t, 150.0, perf.EndPrice)
}

func TestAnalyzeYear_NoBarsInYear(t *testing.T) {
	bars := []models.PriceBar{bar("2023-06-01", 10, 11, 9, 10)}

	_, err := AnalyzeYear(bars, 2024, nil, nil)
	assert.ErrorIs(t, err, ErrNoBars)
}

func TestAnalyzeYear_DividendSum(t *testing.T) {
	bars := []models.PriceBar{
		bar("2024-01-02", 100, 102, 99, 100),
		bar("2024-12-31", 148, 152, 146, 150),
	}
	dividends := []models.Dividend{
		{ExDividendDate: "2024-02-09", CashAmount: 0.24},
		{ExDividendDate: "2024-05-10", CashAmount: 0.25},
	}

	perf, err := AnalyzeYear(bars, 2024, nil, dividends)
	require.NoError(t, err)
	assert.InDelta(t, 0.49, perf.DividendPerShare, 1e-9)
}

func TestAnnualizedVolatility(t *testing.T) {
	// Constant price: zero volatility.
	flat := []models.PriceBar{
		bar("2024-01-02", 100, 100, 100, 100),
		bar("2024-01-03", 100, 100, 100, 100),
		bar("2024-01-04", 100, 100, 100, 100),
	}
	assert.Equal(t, 0.0, annualizedVolatility(flat))

	// Alternating +/-1% daily moves have a known stddev of ~1% per day.
	moves := []models.PriceBar{
		bar("2024-01-02", 100, 100, 100, 100),
		bar("2024-01-03", 101, 101, 101, 101),
		bar("2024-01-04", 99.99, 99.99, 99.99, 99.99),
		bar("2024-01-05", 100.99, 100.99, 100.99, 100.99),
	}
	v := annualizedVolatility(moves)
	assert.Greater(t, v, 0.10)
	assert.Less(t, v, 0.30)

	assert.Equal(t, 0.0, annualizedVolatility(flat[:1]))
}
