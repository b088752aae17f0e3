// Package sessions stores the profile and allocation a user carries from the
// wizard through confirmation to the dashboard.
package sessions

import (
	"fmt"
	"time"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session has the requested id
var ErrSessionNotFound = fmt.Errorf("session %w", domain.ErrNotFound)

// SessionContext is an immutable snapshot of one user's wizard state.
// Methods that change it return a modified copy.
type SessionContext struct {
	ID              uuid.UUID                  `json:"id"`
	Profile         domain.UserProfile         `json:"profile"`
	Allocation      domain.PortfolioAllocation `json:"allocation"`
	TotalInvestment float64                    `json:"total_investment"`
	PodNumber       string                     `json:"pod_number,omitempty"`
	Confirmed       bool                       `json:"confirmed"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

// WithConfirmed returns a copy marked as confirmed at t
func (s SessionContext) WithConfirmed(t time.Time) SessionContext {
	out := s
	out.Profile.Objectives = append([]domain.Objective(nil), s.Profile.Objectives...)
	out.Confirmed = true
	out.UpdatedAt = t
	return out
}

// payload is the msgpack-encoded part of a stored session
type payload struct {
	Profile    domain.UserProfile         `msgpack:"profile"`
	Allocation domain.PortfolioAllocation `msgpack:"allocation"`
}
