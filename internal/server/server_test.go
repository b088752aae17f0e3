package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aristath/greenmix/internal/config"
	"github.com/aristath/greenmix/internal/di"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *di.Container) {
	t.Helper()

	cfg := &config.Config{
		DataDir:                 t.TempDir(),
		Port:                    8001,
		DevMode:                 true,
		SessionTTL:              time.Hour,
		RecommendationCacheSize: 8,
		SessionPurgeSchedule:    "@hourly",
		WALCheckpointSchedule:   "0 */30 * * * *",
		MaintenanceSchedule:     "0 0 3 * * 0",
		CORSAllowedOrigins:      []string{"http://localhost:5173"},
	}
	log := zerolog.New(nil).Level(zerolog.Disabled)

	container, _, err := di.Wire(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	s := New(Config{Log: log, Config: cfg, Container: container})
	s.systemHandlers.sampleSystem = func() (float64, float64) { return 12.5, 40 }
	return s, container
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "greenmix", resp.Service)
	assert.Equal(t, map[string]string{"cache": "ok", "catalog": "ok"}, resp.Databases)
}

func TestServer_HealthReportsClosedDatabase(t *testing.T) {
	s, container := newTestServer(t)
	require.NoError(t, container.CacheDB.Close())

	w := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.NotEqual(t, "ok", resp.Databases["cache"])
	assert.Equal(t, "ok", resp.Databases["catalog"])
}

func TestServer_SystemStatus(t *testing.T) {
	s, _ := newTestServer(t)

	do(t, s, http.MethodPost, "/api/sessions", `{"profile":{"budget":5000}}`)

	w := do(t, s, http.MethodGet, "/api/system/status", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SystemStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 12.5, resp.CPUPercent)
	assert.Equal(t, 40.0, resp.RAMPercent)
	assert.Equal(t, 1, resp.Sessions)
	assert.Equal(t, 6, resp.Projects)
	assert.NotEmpty(t, resp.GoVersion)
	assert.Positive(t, resp.Goroutines)
}

func TestServer_DatabaseStats(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/system/database-stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp DatabaseStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Databases, 2)
	assert.Equal(t, "cache", resp.Databases[0].Name)
	assert.Equal(t, "catalog", resp.Databases[1].Name)
	assert.Positive(t, resp.Databases[1].PageCount)
}

func TestServer_APIRoutesAreMounted(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		method, path, body string
		expected           int
	}{
		{http.MethodPost, "/api/investment/optimal", `{"annual_consumption":4000}`, http.StatusOK},
		{http.MethodPost, "/api/allocation", `{"budget":5000}`, http.StatusOK},
		{http.MethodGet, "/api/allocation/rules", "", http.StatusOK},
		{http.MethodPost, "/api/scenarios/metrics", `{"solar":50,"battery":30,"wind":20}`, http.StatusOK},
		{http.MethodGet, "/api/load-profiles", "", http.StatusOK},
		{http.MethodGet, "/api/load-profiles/LU0002/summary", "", http.StatusOK},
		{http.MethodPost, "/api/recommendations", `{"profile":{"budget":5000}}`, http.StatusOK},
		{http.MethodPost, "/api/recommendations", `{"profile":{"budget":0}}`, http.StatusBadRequest},
		{http.MethodGet, "/api/projects", "", http.StatusOK},
		{http.MethodGet, "/api/projects/999", "", http.StatusNotFound},
		{http.MethodGet, "/api/dashboard", "", http.StatusOK},
		{http.MethodGet, "/api/dashboard/plan?type=upfront", "", http.StatusOK},
		{http.MethodGet, "/api/community", "", http.StatusOK},
		{http.MethodGet, "/api/community/contribution?investment=5000", "", http.StatusOK},
		{http.MethodGet, "/api/community/contribution?investment=0", "", http.StatusBadRequest},
		{http.MethodGet, "/api/sessions/not-a-uuid", "", http.StatusBadRequest},
		{http.MethodGet, "/api/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(t, s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.expected, w.Code, w.Body.String())
		})
	}
}

func TestServer_SessionFlow(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/sessions", `{"profile":{"budget":8000,"risk_appetite":"aggressive"},"pod_number":"LU0003"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	w = do(t, s, http.MethodPost, "/api/sessions/"+created.Data.ID+"/confirm", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, s, http.MethodGet, "/api/dashboard/"+created.Data.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"confirmed":true`)

	w = do(t, s, http.MethodDelete, "/api/sessions/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, s, http.MethodGet, "/api/sessions/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_MetricsRecordRoutePatterns(t *testing.T) {
	s, _ := newTestServer(t)

	do(t, s, http.MethodGet, "/api/projects/1", "")
	do(t, s, http.MethodPost, "/api/recommendations", `{"profile":{"budget":5000}}`)

	w := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `greenmix_http_requests_total{code="200",method="GET",route="/api/projects/{id}"} 1`)
	assert.Contains(t, body, "greenmix_recommendation_requests_total")
	assert.Contains(t, body, "go_goroutines")
}

func TestServer_CORSPreflight(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/recommendations", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RequestIDHeaderAccepted(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/load-profiles/LU0001", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
