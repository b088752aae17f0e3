package server

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/aristath/greenmix/internal/database"
	"github.com/aristath/greenmix/internal/di"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const healthCheckTimeout = 5 * time.Second

// SystemHandlers serves health, status and database statistics
type SystemHandlers struct {
	container *di.Container
	startedAt time.Time
	log       zerolog.Logger

	// sampleSystem returns CPU and RAM usage percentages
	sampleSystem func() (float64, float64)
}

// NewSystemHandlers creates the system handlers
func NewSystemHandlers(container *di.Container, log zerolog.Logger) *SystemHandlers {
	h := &SystemHandlers{
		container: container,
		startedAt: time.Now(),
		log:       log.With().Str("handler", "system").Logger(),
	}
	h.sampleSystem = h.getSystemStats
	return h
}

// HealthResponse is returned by /health
type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Databases map[string]string `json:"databases"`
}

// SystemStatusResponse is returned by /api/system/status
type SystemStatusResponse struct {
	Status             string  `json:"status"`
	UptimeSeconds      int64   `json:"uptime_seconds"`
	CPUPercent         float64 `json:"cpu_percent"`
	RAMPercent         float64 `json:"ram_percent"`
	Goroutines         int     `json:"goroutines"`
	GoVersion          string  `json:"go_version"`
	Sessions           int     `json:"sessions"`
	Projects           int     `json:"projects"`
	RecommendationsLRU int     `json:"recommendation_cache_entries"`
	LastChecked        string  `json:"last_checked"`
}

// DatabaseStatsResponse is returned by /api/system/database-stats
type DatabaseStatsResponse struct {
	Databases   []database.Stats `json:"databases"`
	TotalSizeMB float64          `json:"total_size_mb"`
	LastChecked string           `json:"last_checked"`
}

// HandleHealth checks every database and reports 503 when one is unhealthy
func (h *SystemHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Service:   "greenmix",
		Databases: make(map[string]string),
	}
	status := http.StatusOK

	for _, db := range h.container.Databases() {
		if err := db.HealthCheck(ctx); err != nil {
			h.log.Error().Err(err).Str("database", db.Name()).Msg("Database health check failed")
			response.Databases[db.Name()] = err.Error()
			response.Status = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		response.Databases[db.Name()] = "ok"
	}

	h.writeJSON(w, status, response)
}

// HandleSystemStatus returns uptime, resource usage and record counts
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cpuPercent, ramPercent := h.sampleSystem()

	response := SystemStatusResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		CPUPercent:    cpuPercent,
		RAMPercent:    ramPercent,
		Goroutines:    runtime.NumGoroutine(),
		GoVersion:     runtime.Version(),
		LastChecked:   time.Now().Format(time.RFC3339),
	}

	if h.container.SessionRepo != nil {
		n, err := h.container.SessionRepo.Count(ctx)
		if err != nil {
			h.log.Warn().Err(err).Msg("Failed to count sessions")
			response.Status = "degraded"
		}
		response.Sessions = n
	}
	if h.container.ProjectRepo != nil {
		n, err := h.container.ProjectRepo.Count(ctx)
		if err != nil {
			h.log.Warn().Err(err).Msg("Failed to count projects")
			response.Status = "degraded"
		}
		response.Projects = n
	}
	if h.container.RecommendationService != nil {
		response.RecommendationsLRU = h.container.RecommendationService.CacheLen()
	}

	h.writeJSON(w, http.StatusOK, response)
}

// HandleDatabaseStats returns size and page statistics for every database
func (h *SystemHandlers) HandleDatabaseStats(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting database stats")

	response := DatabaseStatsResponse{
		Databases:   []database.Stats{},
		LastChecked: time.Now().Format(time.RFC3339),
	}

	for _, db := range h.container.Databases() {
		stats, err := db.GetStats()
		if err != nil {
			h.log.Warn().Err(err).Str("database", db.Name()).Msg("Failed to get database stats")
			continue
		}
		response.Databases = append(response.Databases, *stats)
		response.TotalSizeMB += float64(stats.SizeBytes+stats.WALSizeBytes) / 1024 / 1024
	}

	h.writeJSON(w, http.StatusOK, response)
}

// getSystemStats calculates CPU and RAM usage percentages.
// CPU is sampled over 100ms to keep the endpoint responsive.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}

// writeJSON writes a JSON response
func (h *SystemHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
