// Package projects holds the catalog of renewable projects open for investment.
package projects

import (
	"fmt"
	"strings"

	"github.com/aristath/greenmix/internal/domain"
)

// ErrProjectNotFound is returned when no project has the requested id
var ErrProjectNotFound = fmt.Errorf("project %w", domain.ErrNotFound)

// Availability describes how many shares of a project remain
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityLow       Availability = "low"
	AvailabilityWaitlist  Availability = "waitlist"
)

// Project is one investable installation
type Project struct {
	ID             int64             `json:"id" yaml:"id"`
	AssetClass     domain.AssetClass `json:"type" yaml:"asset_class"`
	Name           string            `json:"name" yaml:"name"`
	Location       string            `json:"location" yaml:"location"`
	Capacity       string            `json:"capacity" yaml:"capacity"`
	Price          float64           `json:"price" yaml:"price"`
	ExpectedReturn float64           `json:"expected_return" yaml:"expected_return"`
	CO2Offset      float64           `json:"co2_offset" yaml:"co2_offset"`
	Availability   Availability      `json:"availability" yaml:"availability"`
}

// Validate checks a project before it is stored
func (p Project) Validate() error {
	if p.ID <= 0 {
		return domain.NewValidationError("id", "id must be positive")
	}
	if _, err := domain.ParseAssetClass(string(p.AssetClass)); err != nil {
		return err
	}
	if strings.TrimSpace(p.Name) == "" {
		return domain.NewValidationError("name", "name is required")
	}
	if p.Price <= 0 {
		return domain.NewValidationError("price", "price must be greater than zero")
	}
	switch p.Availability {
	case AvailabilityAvailable, AvailabilityLow, AvailabilityWaitlist:
	default:
		return domain.NewValidationError("availability", fmt.Sprintf("unknown availability %q", p.Availability))
	}
	return nil
}

// FilterAll selects every asset class in List
const FilterAll = "all"

// ParseFilter converts a type filter to an asset class. Empty and "all"
// return "" which matches every project.
func ParseFilter(s string) (domain.AssetClass, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == FilterAll {
		return "", nil
	}
	asset, err := domain.ParseAssetClass(s)
	if err != nil {
		return "", domain.NewValidationError("type", fmt.Sprintf("unknown project type %q", s))
	}
	return asset, nil
}
