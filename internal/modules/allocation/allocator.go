// Package allocation splits an investment budget across solar, battery and wind.
package allocation

import (
	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/pkg/formulas"
)

// Split is a solar/battery/wind percentage triple
type Split struct {
	Solar   int `json:"solar"`
	Battery int `json:"battery"`
	Wind    int `json:"wind"`
}

// Total returns the sum of the three percentages
func (s Split) Total() int {
	return s.Solar + s.Battery + s.Wind
}

// Trace records the split after each allocation stage
type Trace struct {
	Adjusted   Split `json:"adjusted"`   // baseline plus objective and risk shifts
	Normalized Split `json:"normalized"` // scaled to 100
	Clamped    Split `json:"clamped"`    // bounded per asset class
	Final      Split `json:"final"`      // scaled to 100 again
}

// Allocator computes portfolio allocations from a rule set. It holds no
// mutable state and is safe for concurrent use.
type Allocator struct {
	rules Rules
}

// NewAllocator creates an allocator for the given rules
func NewAllocator(rules Rules) *Allocator {
	return &Allocator{rules: rules}
}

var defaultAllocator = NewAllocator(DefaultRules())

// CalculatePortfolioAllocation allocates profile.Budget using DefaultRules
func CalculatePortfolioAllocation(profile domain.UserProfile) domain.PortfolioAllocation {
	return defaultAllocator.Allocate(profile)
}

// Rules returns the allocator's rule set
func (a *Allocator) Rules() Rules {
	return a.rules
}

// Allocate computes the percentage split for the profile and distributes
// the budget across it.
func (a *Allocator) Allocate(profile domain.UserProfile) domain.PortfolioAllocation {
	return Distribute(a.Trace(profile).Final, profile.Budget)
}

// Distribute spreads budget across a percentage split. Investments always
// sum to the budget exactly; wind absorbs the rounding remainder.
func Distribute(split Split, budget float64) domain.PortfolioAllocation {
	solarInvestment := formulas.Round(budget * (float64(split.Solar) / 100))
	batteryInvestment := formulas.Round(budget * (float64(split.Battery) / 100))
	windInvestment := budget - solarInvestment - batteryInvestment

	return domain.PortfolioAllocation{
		Solar: domain.AssetAllocation{
			Percentage: split.Solar,
			Investment: solarInvestment,
			Capacity:   formulas.FormatFixed(solarInvestment/SolarCostPerKWc, 1) + " kWc",
		},
		Battery: domain.AssetAllocation{
			Percentage: split.Battery,
			Investment: batteryInvestment,
			Capacity:   formulas.FormatFixed(batteryInvestment/BatteryCostPerKWh, 0) + " kWh",
		},
		Wind: domain.AssetAllocation{
			Percentage: split.Wind,
			Investment: windInvestment,
			Capacity:   formulas.FormatFixed(windInvestment/WindCostPerKW, 1) + " kW",
		},
	}
}

// Trace runs the percentage stages of the allocation and returns each
// intermediate split.
//
// The final split is not clamped a second time, so extreme shift
// combinations can leave a percentage outside its bounds (for example
// energy-autonomy with conservative risk ends at wind 9). WithinBounds
// reports this.
func (a *Allocator) Trace(profile domain.UserProfile) Trace {
	p := profile.Normalized()

	adjusted := a.rules.Baseline
	for _, objective := range objectiveOrder {
		if p.HasObjective(objective) {
			adjusted = a.rules.Objectives[objective].apply(adjusted)
		}
	}
	adjusted = a.rules.RiskAppetite[p.RiskAppetite].apply(adjusted)

	normalized := normalize(adjusted)
	clamped := Split{
		Solar:   formulas.ClampInt(normalized.Solar, a.rules.Solar.Min, a.rules.Solar.Max),
		Battery: formulas.ClampInt(normalized.Battery, a.rules.Battery.Min, a.rules.Battery.Max),
		Wind:    formulas.ClampInt(normalized.Wind, a.rules.Wind.Min, a.rules.Wind.Max),
	}

	return Trace{
		Adjusted:   adjusted,
		Normalized: normalized,
		Clamped:    clamped,
		Final:      normalize(clamped),
	}
}

// WithinBounds reports whether every percentage of split lies inside the
// allocator's per-asset bounds.
func (a *Allocator) WithinBounds(split Split) bool {
	return a.rules.Solar.Contains(split.Solar) &&
		a.rules.Battery.Contains(split.Battery) &&
		a.rules.Wind.Contains(split.Wind)
}

// normalize scales split to sum to exactly 100. Solar and battery are
// rounded independently; wind takes the remainder. A split with a
// non-positive total is returned unchanged.
func normalize(split Split) Split {
	total := float64(split.Total())
	if total <= 0 {
		return split
	}

	solar := int(formulas.Round(float64(split.Solar) / total * 100))
	battery := int(formulas.Round(float64(split.Battery) / total * 100))
	return Split{
		Solar:   solar,
		Battery: battery,
		Wind:    100 - solar - battery,
	}
}
