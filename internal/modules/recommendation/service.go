// Package recommendation composes sizing, allocation, scenarios and load
// profiles into a single answer for one investor profile.
package recommendation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/internal/metrics"
	"github.com/aristath/greenmix/internal/modules/allocation"
	"github.com/aristath/greenmix/internal/modules/loadprofiles"
	"github.com/aristath/greenmix/internal/modules/scenarios"
	"github.com/aristath/greenmix/internal/modules/sizing"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// riskInvalid labels requests rejected before the risk appetite is known
const riskInvalid = "invalid"

// Request is the input to Recommend
type Request struct {
	Profile   domain.UserProfile `json:"profile"`
	PodNumber string             `json:"pod_number,omitempty"`
}

// Recommendation is everything the wizard shows for one profile
type Recommendation struct {
	Profile      domain.UserProfile         `json:"profile"`
	Optimal      *sizing.Recommendation     `json:"optimal,omitempty"`
	Allocation   domain.PortfolioAllocation `json:"allocation"`
	WithinBounds bool                       `json:"within_bounds"`
	Metrics      domain.ScenarioMetrics     `json:"metrics"`
	Scenarios    []domain.Scenario          `json:"scenarios"`
	ProfileType  domain.ProfileType         `json:"profile_type,omitempty"`
	LoadProfile  []domain.LoadProfilePoint  `json:"load_profile,omitempty"`
	Summary      *loadprofiles.Summary      `json:"load_summary,omitempty"`
	GeneratedAt  time.Time                  `json:"generated_at"`
}

func (r *Recommendation) clone() *Recommendation {
	out := *r
	out.Profile.Objectives = append([]domain.Objective(nil), r.Profile.Objectives...)
	out.Scenarios = append([]domain.Scenario(nil), r.Scenarios...)
	if r.LoadProfile != nil {
		out.LoadProfile = append([]domain.LoadProfilePoint(nil), r.LoadProfile...)
	}
	if r.Optimal != nil {
		optimal := *r.Optimal
		out.Optimal = &optimal
	}
	if r.Summary != nil {
		summary := *r.Summary
		out.Summary = &summary
	}
	return &out
}

// Service computes recommendations and memoizes them by canonical profile key
type Service struct {
	allocator *allocation.Allocator
	cache     *lru.Cache[string, *Recommendation]
	metrics   *metrics.Metrics
	now       func() time.Time
	log       zerolog.Logger
}

// NewService creates a recommendation service. cacheSize <= 0 disables
// memoization. m may be nil.
func NewService(allocator *allocation.Allocator, cacheSize int, m *metrics.Metrics, log zerolog.Logger) (*Service, error) {
	s := &Service{
		allocator: allocator,
		metrics:   m,
		now:       time.Now,
		log:       log.With().Str("service", "recommendation").Logger(),
	}

	if cacheSize > 0 {
		cache, err := lru.New[string, *Recommendation](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create recommendation cache: %w", err)
		}
		s.cache = cache
	}

	return s, nil
}

// Recommend validates the profile and returns the full recommendation.
// Identical inputs return identical results.
func (s *Service) Recommend(ctx context.Context, req Request) (rec *Recommendation, err error) {
	start := time.Now()
	cached := false
	risk := riskInvalid
	defer func() {
		s.metrics.ObserveRecommendation(risk, cached, err, time.Since(start))
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Profile.Validate(); err != nil {
		return nil, err
	}

	profile := req.Profile.Normalized()
	risk = string(profile.RiskAppetite)
	pod := strings.TrimSpace(req.PodNumber)
	key := cacheKey(profile, pod)

	if s.cache != nil {
		hit, ok := s.cache.Get(key)
		s.metrics.ObserveCacheLookup(ok)
		if ok {
			cached = true
			out := hit.clone()
			out.Profile = profile
			return out, nil
		}
	}

	rec = s.compute(profile, pod)
	if s.cache != nil {
		s.cache.Add(key, rec)
	}
	return rec.clone(), nil
}

// CacheLen returns the number of memoized recommendations
func (s *Service) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

func (s *Service) compute(profile domain.UserProfile, pod string) *Recommendation {
	trace := s.allocator.Trace(profile)
	alloc := allocation.Distribute(trace.Final, profile.Budget)

	rec := &Recommendation{
		Profile:      profile,
		Allocation:   alloc,
		WithinBounds: s.allocator.WithinBounds(trace.Final),
		Metrics:      scenarios.MetricsForAllocation(alloc),
		Scenarios:    scenarios.GenerateAlternativeScenarios(alloc, profile.Budget),
		GeneratedAt:  s.now().UTC(),
	}

	if !rec.WithinBounds {
		s.metrics.IncOutOfBounds()
		s.log.Warn().
			Str("profile", profile.Key()).
			Int("solar", trace.Final.Solar).
			Int("battery", trace.Final.Battery).
			Int("wind", trace.Final.Wind).
			Msg("Final split outside per-asset bounds")
	}

	if profile.AnnualConsumption != nil {
		optimal := sizing.RecommendedRange(*profile.AnnualConsumption)
		rec.Optimal = &optimal
	}

	if pod != "" {
		profileType := loadprofiles.ProfileTypeForPod(pod)
		points := loadprofiles.Template(profileType)
		summary := loadprofiles.Summarize(profileType, points)
		rec.ProfileType = profileType
		rec.LoadProfile = points
		rec.Summary = &summary
	}

	return rec
}

// cacheKey identifies a recommendation. Only the template a POD selects
// matters, so PODs sharing a template share an entry.
func cacheKey(profile domain.UserProfile, pod string) string {
	if pod == "" {
		return profile.Key() + "|-"
	}
	return profile.Key() + "|" + string(loadprofiles.ProfileTypeForPod(pod))
}
