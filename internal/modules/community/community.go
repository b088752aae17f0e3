// Package community serves the investor community overview and an
// investor's share of it.
package community

import (
	_ "embed"
	"fmt"
	"math"
	"sort"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/internal/modules/allocation"
	"github.com/aristath/greenmix/internal/modules/dashboard"
	"github.com/aristath/greenmix/pkg/formulas"
	"gopkg.in/yaml.v3"
)

//go:embed community.yaml
var seedYAML []byte

// Stats are the community-wide totals
type Stats struct {
	Investors  int     `yaml:"investors" json:"investors"`
	CapacityMW float64 `yaml:"capacity_mw" json:"capacity_mw"`
	CO2Avoided float64 `yaml:"co2_avoided" json:"co2_avoided"` // tons
	Projects   int     `yaml:"projects" json:"projects"`
}

// Region is the community footprint in one region
type Region struct {
	Name       string  `yaml:"name" json:"name"`
	Investors  int     `yaml:"investors" json:"investors"`
	CapacityMW float64 `yaml:"capacity_mw" json:"capacity_mw"`
	CO2Avoided float64 `yaml:"co2_avoided" json:"co2_avoided"`
}

// Milestone is a community target. Reached is derived from Stats.
type Milestone struct {
	Year       int     `yaml:"year" json:"year"`
	Title      string  `yaml:"title" json:"title"`
	Investors  int     `yaml:"investors" json:"investors"`
	CapacityMW float64 `yaml:"capacity_mw" json:"capacity_mw"`
	Reached    bool    `yaml:"-" json:"reached"`
}

// Overview is everything the community page shows
type Overview struct {
	Version    string      `yaml:"version" json:"-"`
	Stats      Stats       `yaml:"stats" json:"stats"`
	Regions    []Region    `yaml:"regions" json:"regions"`
	Milestones []Milestone `yaml:"milestones" json:"milestones"`
}

// Parse decodes and validates a community overview. Regions are ranked by
// investor count.
func Parse(data []byte) (*Overview, error) {
	var o Overview
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("decode community overview: %w", err)
	}
	if o.Version == "" {
		return nil, fmt.Errorf("community overview version is required")
	}
	if o.Stats.Investors < 0 || o.Stats.CapacityMW < 0 {
		return nil, fmt.Errorf("community totals cannot be negative")
	}
	for _, r := range o.Regions {
		if r.Name == "" {
			return nil, fmt.Errorf("region name is required")
		}
	}

	sort.SliceStable(o.Regions, func(i, j int) bool {
		return o.Regions[i].Investors > o.Regions[j].Investors
	})
	for i := range o.Milestones {
		m := &o.Milestones[i]
		m.Reached = o.Stats.Investors >= m.Investors && o.Stats.CapacityMW >= m.CapacityMW
	}
	return &o, nil
}

// Default returns the built-in overview
func Default() (*Overview, error) {
	return Parse(seedYAML)
}

// Contribution is one investor's share of the community
type Contribution struct {
	Investment     float64 `json:"investment"`
	CapacityKW     float64 `json:"capacity_kw"`     // generating capacity, storage excluded
	CommunityShare float64 `json:"community_share"` // percent of funded capacity
	CO2PerYear     float64 `json:"co2_per_year"`    // tons
}

// Contribution sizes an investment on the baseline split and compares it
// with the community's funded capacity
func (o *Overview) Contribution(investment float64) (Contribution, error) {
	if math.IsNaN(investment) || math.IsInf(investment, 0) || investment <= 0 {
		return Contribution{}, domain.NewValidationError("investment", "investment must be a positive number")
	}

	split := allocation.CalculatePortfolioAllocation(domain.UserProfile{Budget: investment})
	kw := split.Solar.Investment/allocation.SolarCostPerKWc + split.Wind.Investment/allocation.WindCostPerKW

	c := Contribution{
		Investment: investment,
		CapacityKW: formulas.RoundTo(kw, 2),
		CO2PerYear: formulas.RoundTo(dashboard.BuildSummary(investment).CO2Saved, 2),
	}
	if o.Stats.CapacityMW > 0 {
		c.CommunityShare = formulas.RoundTo(kw/(o.Stats.CapacityMW*1000)*100, 4)
	}
	return c, nil
}
