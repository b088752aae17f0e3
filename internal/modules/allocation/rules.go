package allocation

import "github.com/aristath/greenmix/internal/domain"

// Shift is an additive change to the three percentages
type Shift struct {
	Solar   int `json:"solar"`
	Battery int `json:"battery"`
	Wind    int `json:"wind"`
}

func (s Shift) apply(split Split) Split {
	return Split{
		Solar:   split.Solar + s.Solar,
		Battery: split.Battery + s.Battery,
		Wind:    split.Wind + s.Wind,
	}
}

// Bounds is an inclusive percentage range
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether pct lies inside the bounds
func (b Bounds) Contains(pct int) bool {
	return pct >= b.Min && pct <= b.Max
}

// Rules holds every constant that drives the allocator
type Rules struct {
	Baseline     Split
	Objectives   map[domain.Objective]Shift
	RiskAppetite map[domain.RiskAppetite]Shift
	Solar        Bounds
	Battery      Bounds
	Wind         Bounds
}

// objectiveOrder fixes the order objective shifts are applied in
var objectiveOrder = []domain.Objective{
	domain.ObjectiveMaximizeReturn,
	domain.ObjectiveEnergyAutonomy,
	domain.ObjectiveSustainability,
}

// DefaultRules returns the allocation rule set
func DefaultRules() Rules {
	return Rules{
		Baseline: Split{Solar: 50, Battery: 30, Wind: 20},
		Objectives: map[domain.Objective]Shift{
			domain.ObjectiveMaximizeReturn: {Solar: 10, Battery: -15, Wind: 5},
			domain.ObjectiveEnergyAutonomy: {Solar: 5, Battery: 15, Wind: -20},
			domain.ObjectiveSustainability: {Solar: -15, Battery: 5, Wind: 10},
		},
		RiskAppetite: map[domain.RiskAppetite]Shift{
			domain.RiskConservative: {Solar: 5, Battery: 10, Wind: -15},
			domain.RiskModerate:     {},
			domain.RiskAggressive:   {Solar: 5, Battery: -15, Wind: 10},
		},
		Solar:   Bounds{Min: 30, Max: 65},
		Battery: Bounds{Min: 15, Max: 45},
		Wind:    Bounds{Min: 10, Max: 40},
	}
}

// Per-unit installed costs used to express investments as capacity
const (
	SolarCostPerKWc   = 1111.0
	BatteryCostPerKWh = 625.0
	WindCostPerKW     = 2500.0
)
