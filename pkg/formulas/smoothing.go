package formulas

import (
	"math"

	"github.com/markcheno/go-talib"
)

// MovingAverage returns the trailing simple moving average of data over
// period samples. The first period-1 entries have no full window and are
// returned as NaN, matching go-talib's lookback convention.
//
// Returns nil when period is not positive or exceeds len(data).
func MovingAverage(data []float64, period int) []float64 {
	if period <= 0 || period > len(data) {
		return nil
	}
	if period == 1 {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}

	sma := talib.Sma(data, period)
	for i := 0; i < period-1 && i < len(sma); i++ {
		sma[i] = math.NaN()
	}
	return sma
}

// MaxWindow finds the trailing window of period samples with the highest
// average. It returns the index of the window's first sample and the
// average, or (-1, 0) when no full window exists.
func MaxWindow(data []float64, period int) (int, float64) {
	sma := MovingAverage(data, period)
	if sma == nil {
		return -1, 0
	}

	best := -1
	bestAvg := 0.0
	for i := period - 1; i < len(sma); i++ {
		if math.IsNaN(sma[i]) {
			continue
		}
		if best == -1 || sma[i] > bestAvg {
			best = i - period + 1
			bestAvg = sma[i]
		}
	}
	return best, bestAvg
}
