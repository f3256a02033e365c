package utils

import (
	"math"
	"strconv"
	"strings"
)

// MoneyEpsilon is the tolerance for comparing persisted monetary totals.
const MoneyEpsilon = 0.01

// Round rounds half away from zero.
func Round(v float64) float64 {
	return math.Round(v)
}

// Round2 rounds to the cent, half away from zero. Apply once at the point of
// combination, not after every intermediate step.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseMoney coerces a money-like form field. Empty or unparseable input is 0,
// negatives are clamped to 0; NaN never escapes.
func ParseMoney(raw string) float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return ClampMoney(v)
}

// ClampMoney normalizes a numeric amount: never negative, never NaN/Inf.
func ClampMoney(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// NearlyEqual compares two amounts within MoneyEpsilon. Float totals from two
// write paths are never compared exactly.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < MoneyEpsilon
}
