package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aristath/greenmix/internal/database"
	"github.com/aristath/greenmix/internal/domain"
	"github.com/rs/zerolog"
)

const projectColumns = `id, asset_class, name, location, capacity, price, expected_return, co2_offset, availability`

// Repository handles project catalog operations.
// Database: catalog.db (projects table)
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new project repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "projects").Logger(),
	}
}

// Seed upserts the given projects in a single transaction
func (r *Repository) Seed(ctx context.Context, projects []Project) error {
	now := time.Now().Unix()

	err := database.WithTransaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO projects (`+projectColumns+`, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				asset_class = excluded.asset_class,
				name = excluded.name,
				location = excluded.location,
				capacity = excluded.capacity,
				price = excluded.price,
				expected_return = excluded.expected_return,
				co2_offset = excluded.co2_offset,
				availability = excluded.availability,
				updated_at = excluded.updated_at
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, p := range projects {
			if _, err := stmt.ExecContext(ctx,
				p.ID, string(p.AssetClass), p.Name, p.Location, p.Capacity,
				p.Price, p.ExpectedReturn, p.CO2Offset, string(p.Availability), now,
			); err != nil {
				return fmt.Errorf("project %d: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed projects: %w", err)
	}

	r.log.Debug().Int("count", len(projects)).Msg("Seeded project catalog")
	return nil
}

// List returns projects ordered by id. filter is an asset class, "all" or
// empty; anything else is a validation error.
func (r *Repository) List(ctx context.Context, filter string) ([]Project, error) {
	asset, err := ParseFilter(filter)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + projectColumns + ` FROM projects`
	var args []interface{}
	if asset != "" {
		query += ` WHERE asset_class = ?`
		args = append(args, string(asset))
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

// Get returns a single project or ErrProjectNotFound
func (r *Repository) Get(ctx context.Context, id int64) (*Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return &p, nil
}

// Count returns the number of projects in the catalog
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(s scanner) (Project, error) {
	var p Project
	var asset, availability string
	err := s.Scan(&p.ID, &asset, &p.Name, &p.Location, &p.Capacity,
		&p.Price, &p.ExpectedReturn, &p.CO2Offset, &availability)
	if err != nil {
		return Project{}, err
	}
	p.AssetClass = domain.AssetClass(asset)
	p.Availability = Availability(availability)
	return p, nil
}
