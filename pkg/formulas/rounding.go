package formulas

import (
	"math"
	"math/big"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Round rounds to the nearest integer with halves going toward positive
// infinity (2.5 -> 3, -2.5 -> -2). All allocation and sizing arithmetic
// depends on this tie rule; math.Round would move halves away from zero.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f := math.Floor(x)
	// x-f is exact for any float64, so the comparison sees the true fraction
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// RoundTo rounds x to the given number of decimal places using Round.
// Formula: Round(x × 10^places) / 10^places
func RoundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return Round(x*scale) / scale
}

// RoundToStep rounds x to the nearest multiple of step.
// Formula: Round(x / step) × step
func RoundToStep(x, step float64) float64 {
	if step == 0 {
		return x
	}
	return Round(x/step) * step
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// ClampInt bounds x to [lo, hi].
func ClampInt(x, lo, hi int) int {
	return max(lo, min(hi, x))
}

// FormatFixed formats x with exactly digits decimal places. Ties on the
// exact binary value resolve to the larger magnitude, which is where it
// differs from strconv (round-half-even).
func FormatFixed(x float64, digits int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) || digits < 0 {
		return strconv.FormatFloat(x, 'f', digits, 64)
	}

	s := strconv.FormatFloat(x, 'f', digits, 64)
	if !isExactTie(math.Abs(x), digits) {
		return s
	}

	// Exact tie: step one unit in the last place away from zero.
	scale := math.Pow(10, float64(digits))
	rounded := math.Floor(math.Abs(x)*scale+0.5) / scale
	return strconv.FormatFloat(math.Copysign(rounded, x), 'f', digits, 64)
}

// isExactTie reports whether x × 10^digits lands exactly on .5.
func isExactTie(x float64, digits int) bool {
	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil))
	scaled := new(big.Float).SetPrec(2048).Mul(new(big.Float).SetFloat64(x), scale)

	whole, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(2048).Sub(scaled, new(big.Float).SetInt(whole))
	return frac.Cmp(big.NewFloat(0.5)) == 0
}

// Sum returns the sum of data, or 0 for an empty slice.
func Sum(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return floats.Sum(data)
}

// ArgMax returns the index of the largest value, or -1 for an empty slice.
// The first occurrence wins on ties.
func ArgMax(data []float64) int {
	if len(data) == 0 {
		return -1
	}
	return floats.MaxIdx(data)
}
