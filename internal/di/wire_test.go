package di

import (
	"context"
	"testing"
	"time"

	"github.com/aristath/greenmix/internal/config"
	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/internal/modules/projects"
	"github.com/aristath/greenmix/internal/modules/recommendation"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		DataDir:                 t.TempDir(),
		Port:                    8001,
		SessionTTL:              time.Hour,
		RecommendationCacheSize: 16,
		SessionPurgeSchedule:    "@hourly",
		WALCheckpointSchedule:   "0 */30 * * * *",
		MaintenanceSchedule:     "0 0 3 * * 0",
	}
}

func TestWire(t *testing.T) {
	container, jobs, err := Wire(testConfig(t), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	assert.NotNil(t, container.CacheDB)
	assert.NotNil(t, container.CatalogDB)
	assert.NotNil(t, container.Registry)
	assert.NotNil(t, container.Metrics)
	assert.NotNil(t, container.SessionService)
	assert.NotNil(t, container.DashboardService)
	assert.NotNil(t, container.RecommendationService)
	assert.NotNil(t, container.Community)
	assert.NotNil(t, container.Scheduler)
	assert.Len(t, container.Databases(), 2)

	require.NotNil(t, jobs)
	assert.NotNil(t, jobs.PurgeSessions)
	assert.NotNil(t, jobs.WALCheckpoint)
	assert.NotNil(t, jobs.Maintenance)
}

func TestWire_SeedsCatalog(t *testing.T) {
	container, _, err := Wire(testConfig(t), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	seed, err := projects.DefaultSeed()
	require.NoError(t, err)

	n, err := container.ProjectRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(seed), n)
}

func TestWire_Idempotent(t *testing.T) {
	cfg := testConfig(t)

	first, _, err := Wire(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, _, err := Wire(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	seed, _ := projects.DefaultSeed()
	n, err := second.ProjectRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(seed), n)
}

func TestWire_ServicesAreConnected(t *testing.T) {
	container, jobs, err := Wire(testConfig(t), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	ctx := context.Background()
	profile := domain.UserProfile{
		Budget:       5000,
		RiskAppetite: domain.RiskModerate,
		Objectives:   []domain.Objective{domain.ObjectiveEnergyAutonomy},
	}

	session, err := container.SessionService.Create(ctx, profile, "LU0001")
	require.NoError(t, err)

	_, err = container.SessionService.Confirm(ctx, session.ID)
	require.NoError(t, err)

	d, err := container.DashboardService.ForSession(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, d.Confirmed)

	rec, err := container.RecommendationService.Recommend(ctx, recommendation.Request{Profile: profile})
	require.NoError(t, err)
	assert.Equal(t, 100, rec.Allocation.TotalPercentage())

	require.NoError(t, container.Scheduler.RunNow(jobs.PurgeSessions))
	require.NoError(t, container.Scheduler.RunNow(jobs.WALCheckpoint))
	require.NoError(t, container.Scheduler.RunNow(jobs.Maintenance))
}

func TestContainer_CloseEmpty(t *testing.T) {
	assert.NoError(t, (&Container{}).Close())
}
