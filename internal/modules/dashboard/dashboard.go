// Package dashboard projects returns, benefits and holdings for a confirmed
// portfolio.
package dashboard

import (
	"fmt"
	"math"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/internal/modules/allocation"
	"github.com/aristath/greenmix/pkg/formulas"
)

// ErrInvalidSellPercentage is returned for a sell percentage outside (0, 100]
var ErrInvalidSellPercentage = domain.NewValidationError("percentage", "sell percentage must be greater than 0 and at most 100")

// DefaultTotalInvestment is shown when no portfolio has been confirmed
const DefaultTotalInvestment = 5000.0

const (
	averageReturn     = 0.065
	returnPercentage  = 6.5
	co2PerThousandEUR = 0.9 // tons per year
	defaultAutonomy   = 65

	// annual benefits are capped at 10% of the investment; the weights
	// below describe the seasonal shape for a cap of 500 EUR
	benefitCap     = 0.10
	weightCapTotal = 500.0
)

var months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var (
	savingsWeights = [12]float64{19, 21, 24, 27, 30, 32, 33, 31, 28, 25, 22, 20}
	revenueWeights = [12]float64{12, 13, 15, 17, 19, 21, 22, 20, 17, 15, 13, 12}
)

// Summary is the portfolio overview
type Summary struct {
	TotalValue       float64 `json:"total_value"`
	TotalReturn      float64 `json:"total_return"`
	ReturnPercentage float64 `json:"return_percentage"`
	CO2Saved         float64 `json:"co2_saved"`
	Autonomy         int     `json:"autonomy"`
}

// MonthlyBenefit is one month of projected savings and feed-in revenue
type MonthlyBenefit struct {
	Month   string  `json:"month"`
	Savings float64 `json:"savings"`
	Revenue float64 `json:"revenue"`
}

// Benefits is the monthly projection with annual totals
type Benefits struct {
	Months        []MonthlyBenefit `json:"months"`
	AnnualSavings float64          `json:"annual_savings"`
	AnnualRevenue float64          `json:"annual_revenue"`
}

// Holding is the owned share of one asset class
type Holding struct {
	AssetClass   domain.AssetClass `json:"type"`
	Capacity     string            `json:"capacity"`
	Percentage   int               `json:"percentage"`
	Amount       float64           `json:"amount"`
	CurrentPrice float64           `json:"current_price"`
	PriceChange  float64           `json:"price_change"` // percent
}

// Position is an active stake in a catalog project
type Position struct {
	ProjectID      int64             `json:"project_id"`
	Name           string            `json:"name"`
	AssetClass     domain.AssetClass `json:"type"`
	Capacity       string            `json:"capacity"`
	Invested       float64           `json:"invested"`
	CurrentValue   float64           `json:"current_value"`
	Gain           float64           `json:"gain"`
	GainPercentage float64           `json:"gain_percentage"`
	ExpectedReturn float64           `json:"expected_return"`
	Status         string            `json:"status"`
}

// Advisory is a portfolio hint shown next to the holdings
type Advisory struct {
	Type     string `json:"type"` // increase, opportunity or optimize
	Message  string `json:"message"`
	Priority string `json:"priority"` // high, medium or low
}

// Dashboard is the full projection
type Dashboard struct {
	Confirmed  bool                       `json:"confirmed"`
	Portfolio  domain.PortfolioAllocation `json:"portfolio"`
	Summary    Summary                    `json:"summary"`
	Benefits   Benefits                   `json:"benefits"`
	Holdings   []Holding                  `json:"holdings"`
	Positions  []Position                 `json:"positions"`
	Advisories []Advisory                 `json:"advisories"`
}

// holdingDrift is the fixed price movement shown per asset class
var holdingDrift = map[domain.AssetClass]struct {
	factor, change float64
	unitCost       float64
	unit           string
}{
	domain.AssetSolar:   {1.04, 4.20, allocation.SolarCostPerKWc, "kWc"},
	domain.AssetBattery: {0.98, -1.80, allocation.BatteryCostPerKWh, "kWh"},
	domain.AssetWind:    {1.025, 2.50, allocation.WindCostPerKW, "kW"},
}

// positionTemplates are the demo stakes taken in the first catalog projects
var positionTemplates = []struct {
	projectID      int64
	name           string
	asset          domain.AssetClass
	share          float64 // fraction of the asset class investment
	growth         float64
	expectedReturn float64
}{
	{1, "Luxembourg Solar Park Phase 2", domain.AssetSolar, 0.6, 1.07, 7.2},
	{2, "Community Battery Storage", domain.AssetBattery, 0.5, 1.06, 6.0},
	{3, "Northern Wind Farm", domain.AssetWind, 0.6, 1.065, 6.5},
}

// DefaultAllocation is the split shown when no portfolio has been confirmed
func DefaultAllocation() domain.PortfolioAllocation {
	return allocation.CalculatePortfolioAllocation(domain.UserProfile{Budget: DefaultTotalInvestment})
}

// Build projects the dashboard for a portfolio. A non-positive total
// falls back to DefaultTotalInvestment with DefaultAllocation.
func Build(totalInvestment float64, portfolio domain.PortfolioAllocation) Dashboard {
	if totalInvestment <= 0 || math.IsNaN(totalInvestment) {
		totalInvestment = DefaultTotalInvestment
		portfolio = DefaultAllocation()
	}

	return Dashboard{
		Portfolio:  portfolio,
		Summary:    BuildSummary(totalInvestment),
		Benefits:   BuildBenefits(totalInvestment),
		Holdings:   BuildHoldings(portfolio),
		Positions:  BuildPositions(portfolio),
		Advisories: BuildAdvisories(portfolio),
	}
}

// BuildSummary computes the overview figures
func BuildSummary(totalInvestment float64) Summary {
	return Summary{
		TotalValue:       totalInvestment,
		TotalReturn:      formulas.Round(totalInvestment * averageReturn),
		ReturnPercentage: returnPercentage,
		CO2Saved:         totalInvestment / 1000 * co2PerThousandEUR,
		Autonomy:         defaultAutonomy,
	}
}

// BuildBenefits scales the seasonal weights to the investment
func BuildBenefits(totalInvestment float64) Benefits {
	multiplier := totalInvestment * benefitCap / weightCapTotal

	b := Benefits{Months: make([]MonthlyBenefit, len(months))}
	for i, m := range months {
		savings := formulas.Round(savingsWeights[i] * multiplier)
		revenue := formulas.Round(revenueWeights[i] * multiplier)
		b.Months[i] = MonthlyBenefit{Month: m, Savings: savings, Revenue: revenue}
		b.AnnualSavings += savings
		b.AnnualRevenue += revenue
	}
	return b
}

// BuildHoldings lists the owned capacity per asset class
func BuildHoldings(portfolio domain.PortfolioAllocation) []Holding {
	out := make([]Holding, 0, 3)
	for _, asset := range domain.AssetClasses() {
		a := portfolio.Get(asset)
		d := holdingDrift[asset]
		out = append(out, Holding{
			AssetClass:   asset,
			Capacity:     formulas.FormatFixed(a.Investment/d.unitCost, 2) + " " + d.unit,
			Percentage:   a.Percentage,
			Amount:       a.Investment,
			CurrentPrice: formulas.Round(a.Investment * d.factor),
			PriceChange:  d.change,
		})
	}
	return out
}

// BuildPositions lists the active project stakes
func BuildPositions(portfolio domain.PortfolioAllocation) []Position {
	out := make([]Position, 0, len(positionTemplates))
	for _, tpl := range positionTemplates {
		investment := portfolio.Get(tpl.asset).Investment
		d := holdingDrift[tpl.asset]

		invested := formulas.Round(investment * tpl.share)
		current := formulas.Round(investment * tpl.share * tpl.growth)
		gain := current - invested

		var gainPct float64
		if invested != 0 {
			gainPct = formulas.RoundTo(gain/invested*100, 1)
		}

		out = append(out, Position{
			ProjectID:      tpl.projectID,
			Name:           tpl.name,
			AssetClass:     tpl.asset,
			Capacity:       formulas.FormatFixed(investment/d.unitCost/2, 2) + " " + d.unit,
			Invested:       invested,
			CurrentValue:   current,
			Gain:           gain,
			GainPercentage: gainPct,
			ExpectedReturn: tpl.expectedReturn,
			Status:         "active",
		})
	}
	return out
}

// Advisory thresholds, in percent of the portfolio
const (
	batteryAdvisoryBelow = 35
	solarOpportunityFrom = 40
	windAdvisoryBelow    = 25
)

// BuildAdvisories derives the portfolio hints from the split. The default
// 50/30/20 portfolio gets all three.
func BuildAdvisories(portfolio domain.PortfolioAllocation) []Advisory {
	out := make([]Advisory, 0, 3)
	if portfolio.Battery.Percentage < batteryAdvisoryBelow {
		out = append(out, Advisory{
			Type:     "increase",
			Message:  "Consider increasing battery storage by 15% to optimize energy autonomy",
			Priority: "medium",
		})
	}
	if portfolio.Solar.Percentage >= solarOpportunityFrom {
		out = append(out, Advisory{
			Type:     "opportunity",
			Message:  "New solar project available matching your profile - 8.2% expected return",
			Priority: "high",
		})
	}
	if portfolio.Wind.Percentage < windAdvisoryBelow {
		out = append(out, Advisory{
			Type:     "optimize",
			Message:  "Your wind energy allocation could be increased for better diversification",
			Priority: "low",
		})
	}
	return out
}

// SellQuote returns the proceeds of selling percentage of a position worth
// currentValue. percentage must lie in (0, 100].
func SellQuote(currentValue, percentage float64) (float64, error) {
	if math.IsNaN(percentage) || percentage <= 0 || percentage > 100 {
		return 0, ErrInvalidSellPercentage
	}
	if math.IsNaN(currentValue) || math.IsInf(currentValue, 0) || currentValue < 0 {
		return 0, domain.NewValidationError("current_value", fmt.Sprintf("invalid position value %v", currentValue))
	}
	return currentValue * percentage / 100, nil
}
