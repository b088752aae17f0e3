package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleOptimal(t *testing.T) {
	handler := NewHandler(zerolog.New(nil).Level(zerolog.Disabled))

	tests := []struct {
		consumption float64
		optimal     float64
		min         float64
		max         float64
		capacity    float64
	}{
		{3500, 2750, 1750, 3500, 2.4},
		{1000, 750, 500, 1000, 0.7},
		{0, 250, 250, 250, 0},
		{100000, 50000, 50000, 50000, 68.4},
	}

	for _, tt := range tests {
		body, _ := json.Marshal(map[string]interface{}{"annual_consumption": tt.consumption})
		req := httptest.NewRequest("POST", "/api/investment/optimal", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleOptimal(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

		data := response["data"].(map[string]interface{})
		assert.Equal(t, tt.optimal, data["optimal"])
		assert.Equal(t, tt.min, data["min"])
		assert.Equal(t, tt.max, data["max"])
		assert.Equal(t, 0.65, data["self_consumption_rate"])
		assert.Equal(t, tt.consumption, data["annual_consumption"])
		assert.Equal(t, tt.capacity, data["capacity_kwc"])
	}
}

func TestHandleOptimal_InvalidBody(t *testing.T) {
	handler := NewHandler(zerolog.New(nil).Level(zerolog.Disabled))

	req := httptest.NewRequest("POST", "/api/investment/optimal", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	handler.HandleOptimal(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRoutes(t *testing.T) {
	handler := NewHandler(zerolog.Nop())
	router := chi.NewRouter()
	require.NotPanics(t, func() {
		handler.RegisterRoutes(router)
	})

	req := httptest.NewRequest("POST", "/investment/optimal", bytes.NewReader([]byte(`{"annual_consumption":3500}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
