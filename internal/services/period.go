package services

import (
	"fmt"
	"time"
)

// FiscalYearFor maps a calendar year to the issuer's fiscal year label. When
// the fiscal year closes in the first half of the calendar year, the fiscal
// year covering most of calendarYear carries next year's label: NVIDIA's
// fiscal 2025 closed January 2025 but spans mostly calendar 2024.
func FiscalYearFor(calendarYear, fiscalYearEndMonth int) int {
	if fiscalYearEndMonth <= 6 {
		return calendarYear + 1
	}
	return calendarYear
}

// FiscalYearLabel renders the human-readable fiscal close, e.g. "September 2024".
func FiscalYearLabel(fiscalYearEndMonth, fiscalYear int) string {
	return fmt.Sprintf("%s %d", time.Month(fiscalYearEndMonth), fiscalYear)
}
