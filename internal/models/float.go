package models

import (
	"encoding/json"
	"math"
)

// Float is an optional float64. The zero value is absent, which keeps a
// legitimately zero metric (e.g. a 0% net margin) distinct from "no data".
type Float struct {
	Value float64
	Valid bool
}

// F wraps a concrete value as a present Float.
func F(v float64) Float {
	return Float{Value: v, Valid: true}
}

// Absent is the canonical missing value.
var Absent = Float{}

// Or returns f when present, otherwise the alternative.
func (f Float) Or(alt Float) Float {
	if f.Valid {
		return f
	}
	return alt
}

// OrZero returns the value for display output, zero when absent.
func (f Float) OrZero() float64 {
	if f.Valid {
		return f.Value
	}
	return 0
}

// Positive reports whether the value is present and strictly greater than zero.
func (f Float) Positive() bool {
	return f.Valid && f.Value > 0
}

// Ratio divides f by d. Absent when either operand is absent or the
// denominator is zero.
func Ratio(f, d Float) Float {
	if !f.Valid || !d.Valid || d.Value == 0 {
		return Absent
	}
	return F(f.Value / d.Value)
}

// Growth computes (current - prior) / prior. Absent unless both are present
// and prior is nonzero.
func Growth(current, prior Float) Float {
	if !current.Valid || !prior.Valid || prior.Value == 0 {
		return Absent
	}
	return F((current.Value - prior.Value) / prior.Value)
}

// GrowthAbs computes (current - prior) / |prior|, so a swing from a negative
// to a positive figure still carries a meaningful sign. Used for EPS growth.
func GrowthAbs(current, prior Float) Float {
	if !current.Valid || !prior.Valid || prior.Value == 0 {
		return Absent
	}
	return F((current.Value - prior.Value) / math.Abs(prior.Value))
}

// Sub computes current - other, absent when either operand is absent.
func Sub(a, b Float) Float {
	if !a.Valid || !b.Valid {
		return Absent
	}
	return F(a.Value - b.Value)
}

// MarshalJSON encodes an absent Float as null.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON decodes null as absent.
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = F(v)
	return nil
}
