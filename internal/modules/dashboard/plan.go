package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/pkg/formulas"
)

// PlanType is how the investment is paid
type PlanType string

const (
	PlanMonthly PlanType = "monthly"
	PlanUpfront PlanType = "upfront"
)

// Monthly plan terms
const (
	DefaultPlanMonths = 60
	MaxPlanMonths     = 360
)

// ParsePlanType parses a plan type. Empty means monthly.
func ParsePlanType(s string) (PlanType, error) {
	switch t := PlanType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return PlanMonthly, nil
	case PlanMonthly, PlanUpfront:
		return t, nil
	default:
		return "", domain.NewValidationError("type", fmt.Sprintf("unknown plan type %q", s))
	}
}

// PlanPortfolio is the amount paid into each asset class
type PlanPortfolio struct {
	Solar   float64 `json:"solar"`
	Battery float64 `json:"battery"`
	Wind    float64 `json:"wind"`
}

// Plan is the invoice view of an investment: how it is paid and what it
// returns on the energy bill
type Plan struct {
	Type           PlanType      `json:"type"`
	TotalAmount    float64       `json:"total_amount"`
	MonthlyPayment float64       `json:"monthly_payment,omitempty"`
	Months         int           `json:"months,omitempty"`
	Portfolio      PlanPortfolio `json:"portfolio"`
	Benefits       Benefits      `json:"benefits"`
	AnnualBenefit  float64       `json:"annual_benefit"`
}

// BuildPlan spreads totalInvestment over months for a monthly plan, or
// bills it once for an upfront plan. months <= 0 selects
// DefaultPlanMonths and is ignored for upfront plans. A non-positive total
// falls back to the default portfolio, as in Build.
func BuildPlan(totalInvestment float64, portfolio domain.PortfolioAllocation, planType PlanType, months int) (Plan, error) {
	if totalInvestment <= 0 || math.IsNaN(totalInvestment) {
		totalInvestment = DefaultTotalInvestment
		portfolio = DefaultAllocation()
	}

	benefits := BuildBenefits(totalInvestment)
	plan := Plan{
		Type:        planType,
		TotalAmount: totalInvestment,
		Portfolio: PlanPortfolio{
			Solar:   portfolio.Solar.Investment,
			Battery: portfolio.Battery.Investment,
			Wind:    portfolio.Wind.Investment,
		},
		Benefits:      benefits,
		AnnualBenefit: benefits.AnnualSavings + benefits.AnnualRevenue,
	}

	switch planType {
	case PlanUpfront:
		return plan, nil
	case PlanMonthly:
		if months <= 0 {
			months = DefaultPlanMonths
		}
		if months > MaxPlanMonths {
			return Plan{}, domain.NewValidationError("months", fmt.Sprintf("plan term must be at most %d months", MaxPlanMonths))
		}
		plan.Months = months
		plan.MonthlyPayment = formulas.RoundTo(totalInvestment/float64(months), 2)
		return plan, nil
	default:
		return Plan{}, domain.NewValidationError("type", fmt.Sprintf("unknown plan type %q", planType))
	}
}
