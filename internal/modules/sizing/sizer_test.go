package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOptimalInvestment(t *testing.T) {
	tests := []struct {
		name        string
		consumption float64
		optimal     float64
		min         float64
		max         float64
	}{
		{"average household", 3500, 2750, 1750, 3500},
		{"small apartment", 1000, 750, 500, 1000},
		{"zero consumption hits floor", 0, 250, 250, 250},
		{"negative consumption hits floor", -500, 250, 250, 250},
		{"huge consumption hits ceiling", 100000, 50000, 50000, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateOptimalInvestment(tt.consumption)

			assert.Equal(t, tt.optimal, result.Optimal)
			assert.Equal(t, tt.min, result.Min)
			assert.Equal(t, tt.max, result.Max)
			assert.Equal(t, 0.65, result.SelfConsumptionRate)
			assert.Equal(t, tt.consumption, result.AnnualConsumption)
		})
	}
}

func TestCalculateOptimalInvestment_RangeInvariant(t *testing.T) {
	for consumption := 100.0; consumption <= 120000; consumption += 137 {
		result := CalculateOptimalInvestment(consumption)

		assert.LessOrEqual(t, result.Min, result.Optimal, "consumption %v", consumption)
		assert.LessOrEqual(t, result.Optimal, result.Max, "consumption %v", consumption)
		for _, amount := range []float64{result.Min, result.Optimal, result.Max} {
			assert.GreaterOrEqual(t, amount, MinInvestment)
			assert.LessOrEqual(t, amount, MaxInvestment)
			assert.Zero(t, int(amount)%int(InvestmentStep), "amount %v is not a multiple of 250", amount)
		}
	}
}

func TestCalculateOptimalInvestment_Deterministic(t *testing.T) {
	assert.Equal(t, CalculateOptimalInvestment(4200), CalculateOptimalInvestment(4200))
}

func TestRequiredCapacity(t *testing.T) {
	assert.Equal(t, 2.4, RequiredCapacity(3500))
	assert.Equal(t, 0.0, RequiredCapacity(0))
	assert.Equal(t, 0.0, RequiredCapacity(-10))
}

func TestRecommendedRange(t *testing.T) {
	r := RecommendedRange(3500)
	assert.Equal(t, 2750.0, r.Optimal)
	assert.Equal(t, 2.4, r.CapacityKWc)
}
