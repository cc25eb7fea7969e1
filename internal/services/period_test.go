package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiscalYearFor(t *testing.T) {
	tests := []struct {
		name         string
		calendarYear int
		fyEndMonth   int
		want         int
	}{
		{"january close maps forward", 2024, 1, 2025},
		{"june close maps forward", 2024, 6, 2025},
		{"july close stays", 2024, 7, 2024},
		{"september close stays", 2024, 9, 2024},
		{"december close stays", 2024, 12, 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FiscalYearFor(tt.calendarYear, tt.fyEndMonth))
		})
	}
}

func TestFiscalYearLabel(t *testing.T) {
	assert.Equal(t, "January 2025", FiscalYearLabel(1, 2025))
	assert.Equal(t, "September 2024", FiscalYearLabel(9, 2024))
}
