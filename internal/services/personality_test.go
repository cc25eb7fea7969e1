package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPersonality_FirstMatchWins(t *testing.T) {
	tests := []struct {
		name          string
		returnYTD     float64
		revenueGrowth float64
		netMargin     float64
		wantType      string
	}{
		{"hypergrowth", 1.71, 1.14, 0.56, "The Unstoppable Force"},
		{"high margin", 0.6, 0.1, 0.25, "The Profit Machine"},
		{"steady outperformer", 0.31, 0.02, 0.24, "The Steady Climber"},
		{"growth story", 0.1, 0.2, 0.05, "The Growth Story"},
		{"modest", 0.05, 0.0, 0.0, "The Quiet Performer"},
		{"turnaround", -0.1, 0.0, 0.15, "The Turnaround Story"},
		{"rebuilder", -0.25, 0.0, 0.05, "The Rebuilder"},
		{"distressed", -0.5, -0.1, -0.05, "The Fallen Giant"},
		// A huge return without matching growth falls through to the plain
		// return buckets, not the hypergrowth one.
		{"return only", 1.2, 0.1, 0.1, "The Steady Climber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ClassifyPersonality(tt.returnYTD, tt.revenueGrowth, tt.netMargin)
			assert.Equal(t, tt.wantType, p.Type)
			assert.NotEmpty(t, p.Description)
			assert.NotEmpty(t, p.Traits)
		})
	}
}

func TestClassifyPersonality_AllZeroStillLabels(t *testing.T) {
	p := ClassifyPersonality(0, 0, 0)
	assert.Equal(t, "The Rebuilder", p.Type)
}

func TestReturnPercentile(t *testing.T) {
	assert.Equal(t, 99, ReturnPercentile(1.71))
	assert.Equal(t, 95, ReturnPercentile(0.6))
	assert.Equal(t, 85, ReturnPercentile(0.31))
	assert.Equal(t, 50, ReturnPercentile(0.005))
	assert.Equal(t, 35, ReturnPercentile(-0.05))
	assert.Equal(t, 10, ReturnPercentile(-0.5))
}
