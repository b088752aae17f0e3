package sessions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/internal/modules/allocation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store is the persistence the session service needs
type Store interface {
	Save(ctx context.Context, s SessionContext) error
	Get(ctx context.Context, id uuid.UUID) (SessionContext, error)
	Delete(ctx context.Context, id uuid.UUID) error
	PurgeOlderThan(ctx context.Context, t time.Time) (int64, error)
}

// Service creates and advances session contexts
type Service struct {
	store     Store
	allocator *allocation.Allocator
	ttl       time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

// NewService creates a session service. Sessions not updated within ttl
// are treated as missing and removed by PurgeExpired.
func NewService(store Store, allocator *allocation.Allocator, ttl time.Duration, log zerolog.Logger) *Service {
	return &Service{
		store:     store,
		allocator: allocator,
		ttl:       ttl,
		now:       time.Now,
		log:       log.With().Str("service", "sessions").Logger(),
	}
}

// Create validates the profile, allocates its budget and stores a new session
func (s *Service) Create(ctx context.Context, profile domain.UserProfile, podNumber string) (SessionContext, error) {
	if err := profile.Validate(); err != nil {
		return SessionContext{}, err
	}
	profile = profile.Normalized()

	now := s.now().UTC().Truncate(time.Second)
	session := SessionContext{
		ID:              uuid.New(),
		Profile:         profile,
		Allocation:      s.allocator.Allocate(profile),
		TotalInvestment: profile.Budget,
		PodNumber:       strings.TrimSpace(podNumber),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.Save(ctx, session); err != nil {
		return SessionContext{}, err
	}

	s.log.Info().
		Str("session_id", session.ID.String()).
		Float64("budget", profile.Budget).
		Str("risk_appetite", string(profile.RiskAppetite)).
		Msg("Session created")

	return session, nil
}

// Get returns a live session. Expired sessions are reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (SessionContext, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return SessionContext{}, err
	}
	if s.expired(session) {
		return SessionContext{}, ErrSessionNotFound
	}
	return session, nil
}

// Confirm marks the session's portfolio as confirmed. Confirming twice is
// allowed and refreshes the update time.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (SessionContext, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return SessionContext{}, err
	}

	confirmed := session.WithConfirmed(s.now().UTC().Truncate(time.Second))
	if err := s.store.Save(ctx, confirmed); err != nil {
		return SessionContext{}, err
	}

	s.log.Info().Str("session_id", id.String()).Msg("Portfolio confirmed")
	return confirmed, nil
}

// Delete removes a session
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// PurgeExpired removes every session older than the ttl
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.store.PurgeOlderThan(ctx, s.now().Add(-s.ttl))
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}
	return n, nil
}

func (s *Service) expired(session SessionContext) bool {
	return s.ttl > 0 && session.UpdatedAt.Before(s.now().Add(-s.ttl))
}

// ParseID parses a session id, returning a validation error for bad input
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "invalid session id")
	}
	return id, nil
}
