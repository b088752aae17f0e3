package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// Repository persists session contexts.
// Database: cache.db (sessions table). Profile and allocation are stored
// together as a msgpack blob.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new session repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "sessions").Logger(),
	}
}

// Save inserts or replaces a session
func (r *Repository) Save(ctx context.Context, s SessionContext) error {
	blob, err := msgpack.Marshal(payload{Profile: s.Profile, Allocation: s.Allocation})
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", s.ID, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, pod_number, total_investment, confirmed, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			pod_number = excluded.pod_number,
			total_investment = excluded.total_investment,
			confirmed = excluded.confirmed,
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, s.ID.String(), s.PodNumber, s.TotalInvestment, boolToInt(s.Confirmed), blob,
		s.CreatedAt.Unix(), s.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", s.ID, err)
	}
	return nil
}

// Get returns the session or ErrSessionNotFound
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (SessionContext, error) {
	var (
		podNumber            string
		total                float64
		confirmed            int
		blob                 []byte
		createdAt, updatedAt int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT pod_number, total_investment, confirmed, payload, created_at, updated_at
		FROM sessions WHERE id = ?
	`, id.String()).Scan(&podNumber, &total, &confirmed, &blob, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionContext{}, ErrSessionNotFound
	}
	if err != nil {
		return SessionContext{}, fmt.Errorf("failed to get session %s: %w", id, err)
	}

	var p payload
	if err := msgpack.Unmarshal(blob, &p); err != nil {
		return SessionContext{}, fmt.Errorf("failed to decode session %s: %w", id, err)
	}

	return SessionContext{
		ID:              id,
		Profile:         p.Profile,
		Allocation:      p.Allocation,
		TotalInvestment: total,
		PodNumber:       podNumber,
		Confirmed:       confirmed != 0,
		CreatedAt:       time.Unix(createdAt, 0).UTC(),
		UpdatedAt:       time.Unix(updatedAt, 0).UTC(),
	}, nil
}

// Delete removes a session. Deleting a missing session returns ErrSessionNotFound.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// PurgeOlderThan deletes sessions last updated before t and returns how
// many were removed
func (r *Repository) PurgeOlderThan(ctx context.Context, t time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE updated_at < ?`, t.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	if n > 0 {
		r.log.Debug().Int64("count", n).Time("before", t).Msg("Purged sessions")
	}
	return n, nil
}

// Count returns the number of stored sessions
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
