package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aristath/greenmix/internal/modules/projects"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	projects []projects.Project
	err      error
}

func (f *fakeStore) List(_ context.Context, filter string) ([]projects.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	asset, err := projects.ParseFilter(filter)
	if err != nil {
		return nil, err
	}
	out := make([]projects.Project, 0)
	for _, p := range f.projects {
		if asset == "" || p.AssetClass == asset {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, id int64) (*projects.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, projects.ErrProjectNotFound
}

func setupRouter(t *testing.T, store ProjectStore) chi.Router {
	t.Helper()
	router := chi.NewRouter()
	NewHandler(store, zerolog.New(nil).Level(zerolog.Disabled)).RegisterRoutes(router)
	return router
}

func seededStore(t *testing.T) *fakeStore {
	t.Helper()
	seed, err := projects.DefaultSeed()
	require.NoError(t, err)
	return &fakeStore{projects: seed}
}

func serve(router chi.Router, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleList(t *testing.T) {
	router := setupRouter(t, seededStore(t))

	tests := []struct {
		path  string
		count int
	}{
		{"/projects", 6},
		{"/projects?type=all", 6},
		{"/projects?type=solar", 2},
		{"/projects?type=wind", 2},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(router, tt.path)
			require.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Len(t, response["data"], tt.count)
		})
	}
}

func TestHandleList_UnknownType(t *testing.T) {
	w := serve(setupRouter(t, seededStore(t)), "/projects?type=coal")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGet(t *testing.T) {
	router := setupRouter(t, seededStore(t))

	w := serve(router, "/projects/2")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Community Battery Storage", data["name"])
	assert.Equal(t, "battery", data["type"])
	assert.Equal(t, "low", data["availability"])

	assert.Equal(t, http.StatusNotFound, serve(router, "/projects/42").Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, "/projects/abc").Code)
}

func TestHandleGet_StoreFailure(t *testing.T) {
	router := setupRouter(t, &fakeStore{err: errors.New("disk on fire")})

	w := serve(router, "/projects/1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk on fire")

	assert.Equal(t, http.StatusInternalServerError, serve(router, "/projects").Code)
}
