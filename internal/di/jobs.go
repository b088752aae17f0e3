package di

import (
	"fmt"

	"github.com/aristath/greenmix/internal/config"
	"github.com/aristath/greenmix/internal/modules/sessions"
	"github.com/aristath/greenmix/internal/reliability"
	"github.com/aristath/greenmix/internal/scheduler"
	"github.com/rs/zerolog"
)

// RegisterJobs creates the background jobs and adds them to the scheduler.
// The scheduler is not started here.
func RegisterJobs(container *Container, cfg *config.Config, log zerolog.Logger) (*JobInstances, error) {
	jobs := &JobInstances{
		PurgeSessions: sessions.NewPurgeJob(container.SessionService, container.Metrics, log),
		WALCheckpoint: scheduler.NewWALCheckpointJob(log, container.Databases()...),
		Maintenance:   reliability.NewMaintenanceJob(log, container.Databases()...),
	}

	if err := container.Scheduler.AddJob(cfg.SessionPurgeSchedule, jobs.PurgeSessions); err != nil {
		return nil, fmt.Errorf("failed to register session purge job: %w", err)
	}
	if err := container.Scheduler.AddJob(cfg.WALCheckpointSchedule, jobs.WALCheckpoint); err != nil {
		return nil, fmt.Errorf("failed to register WAL checkpoint job: %w", err)
	}
	if err := container.Scheduler.AddJob(cfg.MaintenanceSchedule, jobs.Maintenance); err != nil {
		return nil, fmt.Errorf("failed to register maintenance job: %w", err)
	}

	return jobs, nil
}
