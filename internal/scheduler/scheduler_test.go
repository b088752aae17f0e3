package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aristath/greenmix/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name string
	runs atomic.Int32
	err  error
}

func (j *countingJob) Run() error {
	j.runs.Add(1)
	return j.err
}

func (j *countingJob) Name() string {
	return j.name
}

func TestRunNow(t *testing.T) {
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	s := New(m, zerolog.Nop())

	ok := &countingJob{name: "ok"}
	require.NoError(t, s.RunNow(ok))
	assert.Equal(t, int32(1), ok.runs.Load())

	failing := &countingJob{name: "failing", err: errors.New("boom")}
	assert.EqualError(t, s.RunNow(failing), "boom")
}

func TestAddJob_InvalidSchedule(t *testing.T) {
	s := New(nil, zerolog.Nop())
	err := s.AddJob("not a schedule", &countingJob{name: "bad"})
	assert.Error(t, err)
}

func TestValidateSpec_MatchesAddJob(t *testing.T) {
	specs := []string{"@hourly", "@every 10m", "0 */30 * * * *", "0 0 3 * * 0", "0 3 * * 0", "", "nonsense"}
	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			s := New(nil, zerolog.Nop())
			addErr := s.AddJob(spec, &countingJob{name: "spec_check"})
			assert.Equal(t, addErr == nil, ValidateSpec(spec) == nil)
		})
	}
	assert.Error(t, ValidateSpec("0 3 * * 0"))
}

func TestAddJob_RunsOnSchedule(t *testing.T) {
	s := New(nil, zerolog.Nop())
	job := &countingJob{name: "fast"}
	require.NoError(t, s.AddJob("@every 1s", job))

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return job.runs.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)
}
