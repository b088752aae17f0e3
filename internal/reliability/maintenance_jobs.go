// Package reliability keeps the application databases compact and healthy.
package reliability

import (
	"context"
	"fmt"
	"time"

	"github.com/aristath/greenmix/internal/database"
	"github.com/rs/zerolog"
)

const maintenanceTimeout = 5 * time.Minute

// MaintenanceJob runs an integrity check on every database, then VACUUMs
// the cache-profile databases (sessions churn there) and refreshes planner
// statistics on the rest.
type MaintenanceJob struct {
	databases []*database.DB
	log       zerolog.Logger
}

// NewMaintenanceJob creates the maintenance job. Nil entries are skipped.
func NewMaintenanceJob(log zerolog.Logger, dbs ...*database.DB) *MaintenanceJob {
	return &MaintenanceJob{
		databases: dbs,
		log:       log.With().Str("job", "database_maintenance").Logger(),
	}
}

// Name returns the job name for scheduler
func (j *MaintenanceJob) Name() string {
	return "database_maintenance"
}

// Run executes the maintenance job. An integrity failure stops the run.
func (j *MaintenanceJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceTimeout)
	defer cancel()

	j.log.Info().Msg("Starting database maintenance")
	startTime := time.Now()

	for _, db := range j.databases {
		if db == nil {
			continue
		}

		if err := db.HealthCheck(ctx); err != nil {
			j.log.Error().
				Str("database", db.Name()).
				Err(err).
				Msg("Integrity check failed")
			return fmt.Errorf("maintenance aborted: %w", err)
		}

		if db.Profile() == database.ProfileCache {
			if err := j.vacuumDatabase(ctx, db); err != nil {
				// Continue with other databases
				j.log.Error().Str("database", db.Name()).Err(err).Msg("VACUUM failed")
			}
			continue
		}

		if _, err := db.Conn().ExecContext(ctx, "PRAGMA optimize"); err != nil {
			j.log.Warn().Str("database", db.Name()).Err(err).Msg("PRAGMA optimize failed")
		}
	}

	j.log.Info().
		Dur("duration_ms", time.Since(startTime)).
		Msg("Database maintenance completed")

	return nil
}

// vacuumDatabase rebuilds the database file and logs the space reclaimed
func (j *MaintenanceJob) vacuumDatabase(ctx context.Context, db *database.DB) error {
	before, err := pageBytes(ctx, db)
	if err != nil {
		return err
	}

	if _, err := db.Conn().ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("VACUUM failed for %s: %w", db.Name(), err)
	}

	after, err := pageBytes(ctx, db)
	if err != nil {
		return err
	}

	j.log.Info().
		Str("database", db.Name()).
		Int64("size_before_bytes", before).
		Int64("size_after_bytes", after).
		Int64("reclaimed_bytes", before-after).
		Msg("VACUUM completed")

	return nil
}

func pageBytes(ctx context.Context, db *database.DB) (int64, error) {
	var pageCount, pageSize int64
	if err := db.Conn().QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount); err != nil {
		return 0, fmt.Errorf("failed to read page count for %s: %w", db.Name(), err)
	}
	if err := db.Conn().QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize); err != nil {
		return 0, fmt.Errorf("failed to read page size for %s: %w", db.Name(), err)
	}
	return pageCount * pageSize, nil
}
