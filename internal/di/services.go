package di

import (
	"fmt"

	"github.com/aristath/greenmix/internal/config"
	"github.com/aristath/greenmix/internal/metrics"
	"github.com/aristath/greenmix/internal/modules/allocation"
	"github.com/aristath/greenmix/internal/modules/community"
	"github.com/aristath/greenmix/internal/modules/dashboard"
	"github.com/aristath/greenmix/internal/modules/recommendation"
	"github.com/aristath/greenmix/internal/modules/sessions"
	"github.com/aristath/greenmix/internal/scheduler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

// InitializeServices creates metrics and every service. Repositories must
// already be initialized.
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	container.Registry = reg
	container.Metrics = m

	container.Allocator = allocation.NewAllocator(allocation.DefaultRules())
	container.SessionService = sessions.NewService(container.SessionRepo, container.Allocator, cfg.SessionTTL, log)
	container.DashboardService = dashboard.NewService(container.SessionService, log)

	container.RecommendationService, err = recommendation.NewService(container.Allocator, cfg.RecommendationCacheSize, m, log)
	if err != nil {
		return fmt.Errorf("failed to create recommendation service: %w", err)
	}

	container.Community, err = community.Default()
	if err != nil {
		return fmt.Errorf("failed to load community overview: %w", err)
	}

	container.Scheduler = scheduler.New(m, log)

	log.Debug().Msg("Services initialized")
	return nil
}
