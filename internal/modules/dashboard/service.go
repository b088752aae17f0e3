package dashboard

import (
	"context"

	"github.com/aristath/greenmix/internal/modules/sessions"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionReader loads session contexts
type SessionReader interface {
	Get(ctx context.Context, id uuid.UUID) (sessions.SessionContext, error)
}

// Service builds dashboards for stored sessions
type Service struct {
	sessions SessionReader
	log      zerolog.Logger
}

// NewService creates a dashboard service
func NewService(reader SessionReader, log zerolog.Logger) *Service {
	return &Service{
		sessions: reader,
		log:      log.With().Str("service", "dashboard").Logger(),
	}
}

// Default returns the dashboard shown before any portfolio is confirmed
func (s *Service) Default() Dashboard {
	return Build(0, DefaultAllocation())
}

// DefaultPlan returns the payment plan for the default portfolio
func (s *Service) DefaultPlan(planType PlanType, months int) (Plan, error) {
	return BuildPlan(0, DefaultAllocation(), planType, months)
}

// PlanForSession returns the payment plan for a session's portfolio.
// Unconfirmed sessions get the default plan.
func (s *Service) PlanForSession(ctx context.Context, id uuid.UUID, planType PlanType, months int) (Plan, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return Plan{}, err
	}
	if !session.Confirmed {
		return s.DefaultPlan(planType, months)
	}
	return BuildPlan(session.TotalInvestment, session.Allocation, planType, months)
}

// ForSession returns the dashboard for a session. Sessions that have not
// been confirmed yet get the default projection.
func (s *Service) ForSession(ctx context.Context, id uuid.UUID) (Dashboard, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return Dashboard{}, err
	}

	if !session.Confirmed {
		s.log.Debug().Str("session_id", id.String()).Msg("Session not confirmed, showing default portfolio")
		return s.Default(), nil
	}

	d := Build(session.TotalInvestment, session.Allocation)
	d.Confirmed = true
	return d, nil
}
