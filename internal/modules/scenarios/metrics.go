// Package scenarios scores percentage splits and builds the comparison scenarios.
package scenarios

import (
	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/pkg/formulas"
)

// Per-asset coefficients, applied per percentage point
const (
	solarReturn   = 7.2
	batteryReturn = 5.8
	windReturn    = 6.8

	autonomyBase    = 40.0
	solarAutonomy   = 0.4
	batteryAutonomy = 0.6
	windAutonomy    = 0.2

	solarCO2   = 0.035
	batteryCO2 = 0.025
	windCO2    = 0.045
)

// CalculateScenarioMetrics projects return, autonomy and CO₂ for a split.
//
// Formulas:
//
//	return   = (solar×7.2 + battery×5.8 + wind×6.8) / 100      (1 decimal)
//	autonomy = 40 + solar×0.4 + battery×0.6 + wind×0.2          (integer)
//	co2      = solar×0.035 + battery×0.025 + wind×0.045         (1 decimal)
//
// The percentages are not required to sum to 100.
func CalculateScenarioMetrics(solarPct, batteryPct, windPct float64) domain.ScenarioMetrics {
	// Explicit conversions keep each product rounded on its own; the
	// compiler may otherwise fuse multiply-add and change the last bit.
	avgReturn := (float64(solarPct*solarReturn) + float64(batteryPct*batteryReturn) + float64(windPct*windReturn)) / 100
	autonomy := autonomyBase + float64(solarPct*solarAutonomy) + float64(batteryPct*batteryAutonomy) + float64(windPct*windAutonomy)
	co2 := float64(solarPct*solarCO2) + float64(batteryPct*batteryCO2) + float64(windPct*windCO2)

	return domain.ScenarioMetrics{
		Return:   formulas.RoundTo(avgReturn, 1),
		Autonomy: int(formulas.Round(autonomy)),
		CO2:      formulas.RoundTo(co2, 1),
	}
}

// MetricsForAllocation scores the percentages of an allocation
func MetricsForAllocation(a domain.PortfolioAllocation) domain.ScenarioMetrics {
	s, b, w := a.Percentages()
	return CalculateScenarioMetrics(float64(s), float64(b), float64(w))
}
