package recommendation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/internal/metrics"
	"github.com/aristath/greenmix/internal/modules/allocation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, cacheSize int) *Service {
	t.Helper()
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	svc, err := NewService(allocation.NewAllocator(allocation.DefaultRules()), cacheSize, m, zerolog.Nop())
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestRecommend_Baseline(t *testing.T) {
	svc := newTestService(t, 16)

	rec, err := svc.Recommend(context.Background(), Request{
		Profile: domain.UserProfile{Budget: 5000, RiskAppetite: domain.RiskModerate},
	})
	require.NoError(t, err)

	assert.Equal(t, 2500.0, rec.Allocation.Solar.Investment)
	assert.Equal(t, 1500.0, rec.Allocation.Battery.Investment)
	assert.Equal(t, 1000.0, rec.Allocation.Wind.Investment)
	assert.True(t, rec.WithinBounds)
	assert.Equal(t, domain.ScenarioMetrics{Return: 6.7, Autonomy: 82, CO2: 3.4}, rec.Metrics)
	require.Len(t, rec.Scenarios, 4)
	assert.Equal(t, "Current Recommendation", rec.Scenarios[0].Name)
	assert.Nil(t, rec.Optimal)
	assert.Nil(t, rec.LoadProfile)
	assert.Nil(t, rec.Summary)
	assert.Empty(t, rec.ProfileType)
}

func TestRecommend_WithConsumptionAndPod(t *testing.T) {
	svc := newTestService(t, 16)
	consumption := 3500.0

	rec, err := svc.Recommend(context.Background(), Request{
		Profile:   domain.UserProfile{Budget: 5000, AnnualConsumption: &consumption},
		PodNumber: "LU000000000000002",
	})
	require.NoError(t, err)

	require.NotNil(t, rec.Optimal)
	assert.Equal(t, 2750.0, rec.Optimal.Optimal)
	assert.Equal(t, 1750.0, rec.Optimal.Min)
	assert.Equal(t, 3500.0, rec.Optimal.Max)
	assert.Equal(t, domain.ProfileSingleParent, rec.ProfileType)
	assert.Len(t, rec.LoadProfile, 24)
	require.NotNil(t, rec.Summary)
	assert.Equal(t, "Single Parent", rec.Summary.Label)
}

func TestRecommend_NegativeConsumptionSizesToFloor(t *testing.T) {
	svc := newTestService(t, 16)
	consumption := -200.0

	rec, err := svc.Recommend(context.Background(), Request{
		Profile: domain.UserProfile{Budget: 5000, AnnualConsumption: &consumption},
	})
	require.NoError(t, err)
	require.NotNil(t, rec.Optimal)
	assert.Equal(t, 250.0, rec.Optimal.Optimal)
	assert.Equal(t, 250.0, rec.Optimal.Min)
	assert.Equal(t, 250.0, rec.Optimal.Max)
}

func TestRecommend_OutOfBoundsIsReported(t *testing.T) {
	svc := newTestService(t, 16)

	rec, err := svc.Recommend(context.Background(), Request{
		Profile: domain.UserProfile{
			Budget:       1000,
			Objectives:   []domain.Objective{domain.ObjectiveEnergyAutonomy},
			RiskAppetite: domain.RiskConservative,
		},
	})
	require.NoError(t, err)

	assert.False(t, rec.WithinBounds)
	assert.Equal(t, 100, rec.Allocation.TotalPercentage())
	assert.Equal(t, 1000.0, rec.Allocation.TotalInvestment())
}

func TestRecommend_Validation(t *testing.T) {
	svc := newTestService(t, 16)

	_, err := svc.Recommend(context.Background(), Request{Profile: domain.UserProfile{Budget: -1}})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, 0, svc.CacheLen())
}

func TestRecommend_CancelledContext(t *testing.T) {
	svc := newTestService(t, 16)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Recommend(ctx, Request{Profile: domain.UserProfile{Budget: 5000}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommend_MemoizesByCanonicalKey(t *testing.T) {
	svc := newTestService(t, 16)
	ctx := context.Background()

	first, err := svc.Recommend(ctx, Request{Profile: domain.UserProfile{
		Budget:     5000,
		Objectives: []domain.Objective{domain.ObjectiveSustainability, domain.ObjectiveMaximizeReturn},
	}})
	require.NoError(t, err)

	second, err := svc.Recommend(ctx, Request{Profile: domain.UserProfile{
		Budget:       5000,
		Objectives:   []domain.Objective{domain.ObjectiveMaximizeReturn, domain.ObjectiveSustainability},
		RiskAppetite: domain.RiskModerate,
	}})
	require.NoError(t, err)

	assert.Equal(t, 1, svc.CacheLen())
	assert.Equal(t, first, second)

	// PODs selecting the same template share an entry
	_, err = svc.Recommend(ctx, Request{Profile: domain.UserProfile{Budget: 5000}, PodNumber: "LU01"})
	require.NoError(t, err)
	_, err = svc.Recommend(ctx, Request{Profile: domain.UserProfile{Budget: 5000}, PodNumber: "LU08"})
	require.NoError(t, err)
	assert.Equal(t, 2, svc.CacheLen())
}

func TestRecommend_ResultsAreIndependentCopies(t *testing.T) {
	svc := newTestService(t, 16)
	ctx := context.Background()
	consumption := 4500.0
	req := Request{Profile: domain.UserProfile{Budget: 5000, AnnualConsumption: &consumption}, PodNumber: "LU01"}

	first, err := svc.Recommend(ctx, req)
	require.NoError(t, err)
	want := *first.Optimal
	first.Scenarios[0].Name = "mutated"
	first.LoadProfile[0].Consumption = 99
	first.Optimal.Optimal = -1
	first.Summary.PeakHour = 99

	second, err := svc.Recommend(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Current Recommendation", second.Scenarios[0].Name)
	assert.Equal(t, 0.6, second.LoadProfile[0].Consumption)
	assert.Equal(t, want, *second.Optimal)
	assert.Equal(t, 18, second.Summary.PeakHour)
}

func TestRecommend_RiskLabelIsBounded(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	svc, err := NewService(allocation.NewAllocator(allocation.DefaultRules()), 16, m, zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := svc.Recommend(ctx, Request{Profile: domain.UserProfile{
			Budget:       5000,
			RiskAppetite: domain.RiskAppetite(fmt.Sprintf("bogus-%d", i)),
		}})
		require.Error(t, err)
	}
	_, err = svc.Recommend(ctx, Request{Profile: domain.UserProfile{Budget: 5000}})
	require.NoError(t, err)
	_, err = svc.Recommend(ctx, Request{Profile: domain.UserProfile{Budget: 5000}})
	require.NoError(t, err)

	labels := gatherLabels(t, reg, "greenmix_recommendation_requests_total", "risk_appetite")
	assert.ElementsMatch(t, []string{"invalid", "moderate"}, labels)

	lookups := gatherCounters(t, reg, "greenmix_recommendation_cache_lookups_total", "result")
	assert.Equal(t, map[string]float64{"hit": 1, "miss": 1}, lookups)
}

func TestRecommend_NoCacheLookupsWhenDisabled(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	svc, err := NewService(allocation.NewAllocator(allocation.DefaultRules()), 0, m, zerolog.Nop())
	require.NoError(t, err)

	_, err = svc.Recommend(context.Background(), Request{Profile: domain.UserProfile{Budget: 5000}})
	require.NoError(t, err)

	assert.Empty(t, gatherCounters(t, reg, "greenmix_recommendation_cache_lookups_total", "result"))
}

func gatherLabels(t *testing.T, reg *prometheus.Registry, name, label string) []string {
	t.Helper()
	var out []string
	for l := range gatherCounters(t, reg, name, label) {
		out = append(out, l)
	}
	return out
}

func gatherCounters(t *testing.T, reg *prometheus.Registry, name, label string) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]float64)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == label {
					out[lp.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}
	return out
}

func TestRecommend_CacheDisabled(t *testing.T) {
	svc := newTestService(t, 0)

	a, err := svc.Recommend(context.Background(), Request{Profile: domain.UserProfile{Budget: 5000}})
	require.NoError(t, err)
	b, err := svc.Recommend(context.Background(), Request{Profile: domain.UserProfile{Budget: 5000}})
	require.NoError(t, err)

	assert.Equal(t, 0, svc.CacheLen())
	assert.Equal(t, a, b)
}
