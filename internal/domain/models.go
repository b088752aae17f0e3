// Package domain provides core domain models and types.
package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// AssetClass represents one of the three renewable asset classes a budget is split across
type AssetClass string

const (
	AssetSolar   AssetClass = "solar"
	AssetBattery AssetClass = "battery"
	AssetWind    AssetClass = "wind"
)

// AssetClasses returns the asset classes in allocation order
func AssetClasses() []AssetClass {
	return []AssetClass{AssetSolar, AssetBattery, AssetWind}
}

// ParseAssetClass converts a string to an AssetClass
func ParseAssetClass(s string) (AssetClass, error) {
	switch a := AssetClass(strings.ToLower(strings.TrimSpace(s))); a {
	case AssetSolar, AssetBattery, AssetWind:
		return a, nil
	}
	return "", NewValidationError("asset_class", fmt.Sprintf("unknown asset class %q", s))
}

// Objective represents an investor goal that shifts the allocation
type Objective string

const (
	ObjectiveMaximizeReturn Objective = "maximize-return"
	ObjectiveEnergyAutonomy Objective = "energy-autonomy"
	ObjectiveSustainability Objective = "sustainability"
)

// ParseObjective converts a string to an Objective
func ParseObjective(s string) (Objective, error) {
	switch o := Objective(strings.ToLower(strings.TrimSpace(s))); o {
	case ObjectiveMaximizeReturn, ObjectiveEnergyAutonomy, ObjectiveSustainability:
		return o, nil
	}
	return "", NewValidationError("objectives", fmt.Sprintf("unknown objective %q", s))
}

// RiskAppetite represents how much volatility the investor accepts
type RiskAppetite string

const (
	RiskConservative RiskAppetite = "conservative"
	RiskModerate     RiskAppetite = "moderate"
	RiskAggressive   RiskAppetite = "aggressive"
)

// ParseRiskAppetite converts a string to a RiskAppetite. Empty means moderate.
func ParseRiskAppetite(s string) (RiskAppetite, error) {
	r := RiskAppetite(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case "":
		return RiskModerate, nil
	case RiskConservative, RiskModerate, RiskAggressive:
		return r, nil
	}
	return "", NewValidationError("risk_appetite", fmt.Sprintf("unknown risk appetite %q", s))
}

// UserProfile is the investor input collected by the wizard
type UserProfile struct {
	Budget            float64      `json:"budget" msgpack:"budget"`
	Objectives        []Objective  `json:"objectives" msgpack:"objectives"`
	RiskAppetite      RiskAppetite `json:"risk_appetite" msgpack:"risk_appetite"`
	AnnualConsumption *float64     `json:"annual_consumption,omitempty" msgpack:"annual_consumption,omitempty"`
	HousingType       *string      `json:"housing_type,omitempty" msgpack:"housing_type,omitempty"`
	Tariff            *string      `json:"tariff,omitempty" msgpack:"tariff,omitempty"`
}

// HasObjective reports whether the profile lists the objective
func (p UserProfile) HasObjective(o Objective) bool {
	for _, existing := range p.Objectives {
		if existing == o {
			return true
		}
	}
	return false
}

// Validate checks the profile before it reaches the calculators
func (p UserProfile) Validate() error {
	if math.IsNaN(p.Budget) || math.IsInf(p.Budget, 0) {
		return NewValidationError("budget", "budget must be a finite number")
	}
	if p.Budget <= 0 {
		return NewValidationError("budget", "budget must be greater than zero")
	}
	for _, o := range p.Objectives {
		if _, err := ParseObjective(string(o)); err != nil {
			return err
		}
	}
	if _, err := ParseRiskAppetite(string(p.RiskAppetite)); err != nil {
		return err
	}
	if p.AnnualConsumption != nil {
		c := *p.AnnualConsumption
		// Non-positive consumption sizes to the minimum investment.
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return NewValidationError("annual_consumption", "annual consumption must be a finite number")
		}
	}
	return nil
}

// Normalized returns a copy with objectives deduplicated and sorted and an
// explicit risk appetite. Unknown values are kept so Validate still sees them.
func (p UserProfile) Normalized() UserProfile {
	out := p

	seen := make(map[Objective]bool, len(p.Objectives))
	objectives := make([]Objective, 0, len(p.Objectives))
	for _, o := range p.Objectives {
		o = Objective(strings.ToLower(strings.TrimSpace(string(o))))
		if seen[o] {
			continue
		}
		seen[o] = true
		objectives = append(objectives, o)
	}
	sort.Slice(objectives, func(i, j int) bool { return objectives[i] < objectives[j] })
	out.Objectives = objectives

	if r, err := ParseRiskAppetite(string(p.RiskAppetite)); err == nil {
		out.RiskAppetite = r
	}
	return out
}

// Key returns a canonical string identifying the inputs that drive the allocation
func (p UserProfile) Key() string {
	n := p.Normalized()
	parts := make([]string, 0, len(n.Objectives))
	for _, o := range n.Objectives {
		parts = append(parts, string(o))
	}

	consumption := "-"
	if n.AnnualConsumption != nil {
		consumption = strconv.FormatFloat(*n.AnnualConsumption, 'g', -1, 64)
	}

	return strings.Join([]string{
		strconv.FormatFloat(n.Budget, 'g', -1, 64),
		strings.Join(parts, ","),
		string(n.RiskAppetite),
		consumption,
	}, "|")
}

// OptimalInvestment is the recommended investment sizing for a consumption level
type OptimalInvestment struct {
	Optimal             float64 `json:"optimal"`
	Min                 float64 `json:"min"`
	Max                 float64 `json:"max"`
	SelfConsumptionRate float64 `json:"self_consumption_rate"`
	AnnualConsumption   float64 `json:"annual_consumption"`
}

// AssetAllocation is one asset class's share of a portfolio
type AssetAllocation struct {
	Percentage int     `json:"percentage" msgpack:"percentage"`
	Investment float64 `json:"investment" msgpack:"investment"`
	Capacity   string  `json:"capacity" msgpack:"capacity"`
}

// PortfolioAllocation is the solar/battery/wind split of a budget
type PortfolioAllocation struct {
	Solar   AssetAllocation `json:"solar" msgpack:"solar"`
	Battery AssetAllocation `json:"battery" msgpack:"battery"`
	Wind    AssetAllocation `json:"wind" msgpack:"wind"`
}

// Get returns the allocation for a single asset class
func (a PortfolioAllocation) Get(asset AssetClass) AssetAllocation {
	switch asset {
	case AssetSolar:
		return a.Solar
	case AssetBattery:
		return a.Battery
	case AssetWind:
		return a.Wind
	}
	return AssetAllocation{}
}

// Percentages returns the solar, battery and wind percentages
func (a PortfolioAllocation) Percentages() (int, int, int) {
	return a.Solar.Percentage, a.Battery.Percentage, a.Wind.Percentage
}

// TotalPercentage returns the sum of the three percentages
func (a PortfolioAllocation) TotalPercentage() int {
	return a.Solar.Percentage + a.Battery.Percentage + a.Wind.Percentage
}

// TotalInvestment returns the sum of the three investment amounts
func (a PortfolioAllocation) TotalInvestment() float64 {
	return a.Solar.Investment + a.Battery.Investment + a.Wind.Investment
}

// ScenarioMetrics are the projected outcomes of a percentage split
type ScenarioMetrics struct {
	Return   float64 `json:"return"`   // percent per year, 1 decimal
	Autonomy int     `json:"autonomy"` // percent
	CO2      float64 `json:"co2"`      // tons per year, 1 decimal
}

// Scenario is a named percentage split with its metrics
type Scenario struct {
	Name    string `json:"name"`
	Solar   int    `json:"solar"`
	Battery int    `json:"battery"`
	Wind    int    `json:"wind"`
	ScenarioMetrics
}

// LoadProfilePoint is one hour of a daily load profile, in kW
type LoadProfilePoint struct {
	Hour        string  `json:"hour"`
	Solar       float64 `json:"solar"`
	Wind        float64 `json:"wind"`
	Battery     float64 `json:"battery"`
	Consumption float64 `json:"consumption"`
}

// ProfileType identifies a customer load profile template
type ProfileType string

const (
	ProfileFamily       ProfileType = "family"
	ProfileSingleParent ProfileType = "single-parent"
	ProfileBusiness     ProfileType = "business"
	ProfileSinglePerson ProfileType = "single-person"
)

// Label returns the human-readable name of the profile type
func (p ProfileType) Label() string {
	switch p {
	case ProfileFamily:
		return "Family"
	case ProfileSingleParent:
		return "Single Parent"
	case ProfileBusiness:
		return "Business"
	case ProfileSinglePerson:
		return "Single Person"
	}
	return ""
}
