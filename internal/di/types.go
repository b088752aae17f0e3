// Package di provides dependency injection wiring and initialization.
package di

import (
	"errors"

	"github.com/aristath/greenmix/internal/database"
	"github.com/aristath/greenmix/internal/metrics"
	"github.com/aristath/greenmix/internal/modules/allocation"
	"github.com/aristath/greenmix/internal/modules/community"
	"github.com/aristath/greenmix/internal/modules/dashboard"
	"github.com/aristath/greenmix/internal/modules/projects"
	"github.com/aristath/greenmix/internal/modules/recommendation"
	"github.com/aristath/greenmix/internal/modules/sessions"
	"github.com/aristath/greenmix/internal/reliability"
	"github.com/aristath/greenmix/internal/scheduler"
	"github.com/prometheus/client_golang/prometheus"
)

// Container holds all dependencies for the application.
// It is created by Wire() and handed to the HTTP server.
type Container struct {
	// Databases
	CacheDB   *database.DB // sessions (ephemeral)
	CatalogDB *database.DB // investable projects

	// Observability
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	// Repositories
	ProjectRepo *projects.Repository
	SessionRepo *sessions.Repository

	// Services
	Allocator             *allocation.Allocator
	SessionService        *sessions.Service
	DashboardService      *dashboard.Service
	RecommendationService *recommendation.Service
	Community             *community.Overview

	Scheduler *scheduler.Scheduler
}

// JobInstances holds the registered background jobs
type JobInstances struct {
	PurgeSessions *sessions.PurgeJob
	WALCheckpoint *scheduler.WALCheckpointJob
	Maintenance   *reliability.MaintenanceJob
}

// Databases returns the open databases in initialization order
func (c *Container) Databases() []*database.DB {
	var dbs []*database.DB
	for _, db := range []*database.DB{c.CacheDB, c.CatalogDB} {
		if db != nil {
			dbs = append(dbs, db)
		}
	}
	return dbs
}

// Close closes every open database
func (c *Container) Close() error {
	var errs []error
	for _, db := range c.Databases() {
		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
