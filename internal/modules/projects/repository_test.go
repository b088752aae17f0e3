package projects

import (
	"context"
	"testing"

	"github.com/aristath/greenmix/internal/domain"
	testingpkg "github.com/aristath/greenmix/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) *Repository {
	t.Helper()
	db, cleanup := testingpkg.NewTestDB(t, "catalog")
	t.Cleanup(cleanup)

	repo := NewRepository(db.Conn(), zerolog.Nop())
	seed, err := DefaultSeed()
	require.NoError(t, err)
	require.NoError(t, repo.Seed(context.Background(), seed))
	return repo
}

func TestDefaultSeed(t *testing.T) {
	seed, err := DefaultSeed()
	require.NoError(t, err)
	require.Len(t, seed, 6)

	first := seed[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, domain.AssetSolar, first.AssetClass)
	assert.Equal(t, "Luxembourg Solar Park Phase 2", first.Name)
	assert.Equal(t, "Bettembourg, Luxembourg", first.Location)
	assert.Equal(t, "2.5 kWc", first.Capacity)
	assert.Equal(t, 1250.0, first.Price)
	assert.Equal(t, 7.2, first.ExpectedReturn)
	assert.Equal(t, 1.8, first.CO2Offset)
	assert.Equal(t, AvailabilityAvailable, first.Availability)

	assert.Equal(t, AvailabilityWaitlist, seed[4].Availability)
	assert.Equal(t, "Belgium Coast (shared)", seed[5].Location)
}

func TestParseSeed_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "projects: [\n"},
		{"missing version", "projects: []\n"},
		{"bad asset class", `version: "1"
projects:
  - {id: 1, asset_class: coal, name: x, price: 1, availability: low}
`},
		{"bad availability", `version: "1"
projects:
  - {id: 1, asset_class: solar, name: x, price: 1, availability: soon}
`},
		{"duplicate id", `version: "1"
projects:
  - {id: 1, asset_class: solar, name: x, price: 1, availability: low}
  - {id: 1, asset_class: wind, name: y, price: 1, availability: low}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 6)
	for i, p := range all {
		assert.Equal(t, int64(i+1), p.ID)
	}

	all, err = repo.List(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	tests := []struct {
		filter string
		ids    []int64
	}{
		{"solar", []int64{1, 4}},
		{"battery", []int64{2, 5}},
		{"wind", []int64{3, 6}},
		{"WIND", []int64{3, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			list, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			ids := make([]int64, len(list))
			for i, p := range list {
				ids[i] = p.ID
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestRepository_List_UnknownFilter(t *testing.T) {
	repo := setupRepository(t)

	_, err := repo.List(context.Background(), "geothermal")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestRepository_Get(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	p, err := repo.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Northern Wind Farm Expansion", p.Name)
	assert.Equal(t, domain.AssetWind, p.AssetClass)
	assert.Equal(t, 2.1, p.CO2Offset)

	_, err = repo.Get(ctx, 99)
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.True(t, domain.IsNotFound(err))
}

func TestRepository_SeedIsIdempotent(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	seed, err := DefaultSeed()
	require.NoError(t, err)
	seed[0].Availability = AvailabilityLow
	require.NoError(t, repo.Seed(ctx, seed))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	p, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, AvailabilityLow, p.Availability)
}
