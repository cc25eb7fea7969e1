package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat_ZeroIsAbsentButFZeroIsPresent(t *testing.T) {
	assert.False(t, Float{}.Valid)
	assert.True(t, F(0).Valid, "an explicit zero metric is data, not absence")
	assert.False(t, F(0).Positive())
	assert.True(t, F(0.1).Positive())
}

func TestRatio(t *testing.T) {
	assert.Equal(t, F(0.5), Ratio(F(50), F(100)))
	assert.False(t, Ratio(F(50), Absent).Valid)
	assert.False(t, Ratio(Absent, F(100)).Valid)
	assert.False(t, Ratio(F(50), F(0)).Valid, "zero denominator is absent, not Inf")
}

func TestGrowth(t *testing.T) {
	assert.Equal(t, F(0.25), Growth(F(125), F(100)))
	assert.False(t, Growth(F(125), F(0)).Valid)
	assert.False(t, Growth(Absent, F(100)).Valid)
}

func TestGrowthAbs_NegativePrior(t *testing.T) {
	// -2 -> 1 is an improvement; plain growth would flip the sign.
	g := GrowthAbs(F(1), F(-2))
	require.True(t, g.Valid)
	assert.InDelta(t, 1.5, g.Value, 1e-9)
}

func TestFloat_JSONRoundTrip(t *testing.T) {
	type payload struct {
		Revenue Float `json:"revenue"`
		Margin  Float `json:"margin"`
	}

	data, err := json.Marshal(payload{Revenue: F(100e9)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"revenue":100000000000,"margin":null}`, string(data))

	var back payload
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Revenue.Valid)
	assert.False(t, back.Margin.Valid)
}
