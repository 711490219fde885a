package flowcast

import (
	"math"
	"testing"
)

const epsilon = 1e-9

// eq compares two floats with the package test precision.
func eq(a, b float64) bool { return math.Abs(a-b) < epsilon }

// seriesEqual compares two series element-wise with the test precision.
func seriesEqual(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("series length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !eq(got[i], want[i]) {
			t.Errorf("series[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// qtrly is the standard 3-year quarterly test configuration.
func qtrly() Config { return Config{YearsInModel: 3, PeriodsInYear: 4} }

// fte returns a pointer to a year's headcount override.
func fte(v float64) *float64 { return &v }

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }
