package scenarios

import (
	"fmt"

	"github.com/aristath/greenmix/internal/domain"
)

// Scenario names, in presentation order
const (
	NameCurrent         = "Current Recommendation"
	NameMaxReturn       = "Max Return"
	NameMaxAutonomy     = "Max Autonomy"
	NameMostSustainable = "Most Sustainable"
)

type fixedSplit struct {
	name                 string
	solar, battery, wind int
}

var alternatives = []fixedSplit{
	{NameMaxReturn, 60, 20, 20},
	{NameMaxAutonomy, 45, 40, 15},
	{NameMostSustainable, 35, 25, 40},
}

// GenerateAlternativeScenarios returns the current recommendation followed
// by the three fixed alternatives, each scored with CalculateScenarioMetrics.
// The order is fixed: index 0 is always the live recommendation.
//
// budget does not affect the metrics; it is accepted so callers can pass
// the same arguments they use for the allocation.
func GenerateAlternativeScenarios(current domain.PortfolioAllocation, budget float64) []domain.Scenario {
	s, b, w := current.Percentages()
	out := make([]domain.Scenario, 0, len(alternatives)+1)
	out = append(out, newScenario(NameCurrent, s, b, w))
	for _, alt := range alternatives {
		out = append(out, newScenario(alt.name, alt.solar, alt.battery, alt.wind))
	}
	return out
}

func newScenario(name string, solar, battery, wind int) domain.Scenario {
	return domain.Scenario{
		Name:            name,
		Solar:           solar,
		Battery:         battery,
		Wind:            wind,
		ScenarioMetrics: CalculateScenarioMetrics(float64(solar), float64(battery), float64(wind)),
	}
}

// Criterion selects the metric BestScenario ranks by
type Criterion string

const (
	CriterionReturn   Criterion = "return"
	CriterionAutonomy Criterion = "autonomy"
	CriterionCO2      Criterion = "co2"
)

// ParseCriterion converts a string to a Criterion
func ParseCriterion(s string) (Criterion, error) {
	switch c := Criterion(s); c {
	case CriterionReturn, CriterionAutonomy, CriterionCO2:
		return c, nil
	}
	return "", domain.NewValidationError("criterion", fmt.Sprintf("unknown criterion %q", s))
}

// BestScenario returns the scenario with the highest value for the
// criterion. Earlier scenarios win ties. ok is false for an empty slice.
func BestScenario(scenarios []domain.Scenario, criterion Criterion) (best domain.Scenario, ok bool) {
	var bestValue float64
	for i, sc := range scenarios {
		v := criterionValue(sc.ScenarioMetrics, criterion)
		if i == 0 || v > bestValue {
			best, bestValue, ok = sc, v, true
		}
	}
	return best, ok
}

func criterionValue(m domain.ScenarioMetrics, c Criterion) float64 {
	switch c {
	case CriterionAutonomy:
		return float64(m.Autonomy)
	case CriterionCO2:
		return m.CO2
	default:
		return m.Return
	}
}
