// Package sizing recommends an investment amount from annual energy consumption.
package sizing

import (
	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/pkg/formulas"
)

// Luxembourg-specific sizing parameters
const (
	// SelfConsumptionRate is the share of consumption the installation targets
	SelfConsumptionRate = 0.65
	// YieldPerKWc is the annual production of one installed kWc, in kWh
	YieldPerKWc = 950.0
	// CostPerKWc is the installed cost of one kWc, in EUR
	CostPerKWc = 1111.0

	// InvestmentStep is the granularity of recommended amounts, in EUR
	InvestmentStep = 250.0
	// MinInvestment and MaxInvestment bound every recommended amount
	MinInvestment = 250.0
	MaxInvestment = 50000.0

	rangeLow  = 0.7
	rangeHigh = 1.3
)

// CalculateOptimalInvestment sizes an investment that covers
// SelfConsumptionRate of annualConsumption with solar production.
//
// Formula:
//
//	capacity = consumption × 0.65 / 950       (kWc)
//	raw      = capacity × 1111                (EUR)
//	optimal  = round(raw, 250), min = round(raw × 0.7, 250), max = round(raw × 1.3, 250)
//
// Each amount is clamped independently to [250, 50000]. Non-positive
// consumption yields the 250 floor for all three amounts.
func CalculateOptimalInvestment(annualConsumption float64) domain.OptimalInvestment {
	raw := rawInvestment(annualConsumption)

	return domain.OptimalInvestment{
		Optimal:             sizeAmount(raw),
		Min:                 sizeAmount(raw * rangeLow),
		Max:                 sizeAmount(raw * rangeHigh),
		SelfConsumptionRate: SelfConsumptionRate,
		AnnualConsumption:   annualConsumption,
	}
}

// RequiredCapacity returns the installed solar capacity (kWc, 1 decimal)
// needed to cover SelfConsumptionRate of annualConsumption.
func RequiredCapacity(annualConsumption float64) float64 {
	if annualConsumption <= 0 {
		return 0
	}
	return formulas.RoundTo(annualConsumption*SelfConsumptionRate/YieldPerKWc, 1)
}

// Recommendation pairs the investment range with the capacity it buys
type Recommendation struct {
	domain.OptimalInvestment
	CapacityKWc float64 `json:"capacity_kwc"`
}

// RecommendedRange returns CalculateOptimalInvestment plus the implied capacity
func RecommendedRange(annualConsumption float64) Recommendation {
	return Recommendation{
		OptimalInvestment: CalculateOptimalInvestment(annualConsumption),
		CapacityKWc:       RequiredCapacity(annualConsumption),
	}
}

func rawInvestment(annualConsumption float64) float64 {
	targetProduction := annualConsumption * SelfConsumptionRate
	capacity := targetProduction / YieldPerKWc
	return capacity * CostPerKWc
}

func sizeAmount(raw float64) float64 {
	return formulas.Clamp(formulas.RoundToStep(raw, InvestmentStep), MinInvestment, MaxInvestment)
}
