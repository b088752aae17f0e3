package sessions

import (
	"context"
	"time"

	"github.com/aristath/greenmix/internal/metrics"
	"github.com/rs/zerolog"
)

const purgeTimeout = 30 * time.Second

// PurgeJob removes expired sessions on a schedule
type PurgeJob struct {
	service *Service
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewPurgeJob creates the purge job. m may be nil.
func NewPurgeJob(service *Service, m *metrics.Metrics, log zerolog.Logger) *PurgeJob {
	return &PurgeJob{
		service: service,
		metrics: m,
		log:     log.With().Str("job", "purge_expired_sessions").Logger(),
	}
}

// Name returns the job name
func (j *PurgeJob) Name() string {
	return "purge_expired_sessions"
}

// Run executes the purge
func (j *PurgeJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	n, err := j.service.PurgeExpired(ctx)
	if err != nil {
		return err
	}

	j.metrics.AddSessionsPurged(n)
	if n > 0 {
		j.log.Info().Int64("purged", n).Msg("Expired sessions removed")
	}
	return nil
}
