package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/internal/modules/allocation"
	testingpkg "github.com/aristath/greenmix/internal/testing"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) *Repository {
	t.Helper()
	db, cleanup := testingpkg.NewTestDB(t, "cache")
	t.Cleanup(cleanup)
	return NewRepository(db.Conn(), zerolog.Nop())
}

func sampleSession(updated time.Time) SessionContext {
	consumption := 3500.0
	profile := domain.UserProfile{
		Budget:            5000,
		Objectives:        []domain.Objective{domain.ObjectiveMaximizeReturn},
		RiskAppetite:      domain.RiskAggressive,
		AnnualConsumption: &consumption,
	}
	return SessionContext{
		ID:              uuid.New(),
		Profile:         profile,
		Allocation:      allocation.CalculatePortfolioAllocation(profile),
		TotalInvestment: 5000,
		PodNumber:       "LU000000000000002",
		CreatedAt:       updated,
		UpdatedAt:       updated,
	}
}

func TestRepository_SaveAndGet(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	session := sampleSession(now)
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.PodNumber, got.PodNumber)
	assert.Equal(t, 5000.0, got.TotalInvestment)
	assert.False(t, got.Confirmed)
	assert.True(t, now.Equal(got.CreatedAt))
	assert.Equal(t, session.Allocation, got.Allocation)
	assert.Equal(t, session.Profile.Objectives, got.Profile.Objectives)
	assert.Equal(t, domain.RiskAggressive, got.Profile.RiskAppetite)
	require.NotNil(t, got.Profile.AnnualConsumption)
	assert.Equal(t, 3500.0, *got.Profile.AnnualConsumption)
	assert.Nil(t, got.Profile.HousingType)
}

func TestRepository_SaveUpserts(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	session := sampleSession(now)
	require.NoError(t, repo.Save(ctx, session))
	require.NoError(t, repo.Save(ctx, session.WithConfirmed(now.Add(time.Minute))))

	got, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, got.Confirmed)
	assert.True(t, now.Equal(got.CreatedAt))
	assert.True(t, now.Add(time.Minute).Equal(got.UpdatedAt))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := setupRepository(t)

	_, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.True(t, domain.IsNotFound(err))
}

func TestRepository_Delete(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	session := sampleSession(time.Now())
	require.NoError(t, repo.Save(ctx, session))
	require.NoError(t, repo.Delete(ctx, session.ID))

	_, err := repo.Get(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, session.ID), ErrSessionNotFound)
}

func TestRepository_PurgeOlderThan(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	now := time.Now()

	old := sampleSession(now.Add(-48 * time.Hour))
	fresh := sampleSession(now)
	require.NoError(t, repo.Save(ctx, old))
	require.NoError(t, repo.Save(ctx, fresh))

	n, err := repo.PurgeOlderThan(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = repo.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestWithConfirmed_DoesNotMutateOriginal(t *testing.T) {
	now := time.Now().UTC()
	session := sampleSession(now)

	confirmed := session.WithConfirmed(now.Add(time.Hour))
	confirmed.Profile.Objectives[0] = domain.ObjectiveSustainability

	assert.False(t, session.Confirmed)
	assert.Equal(t, now, session.UpdatedAt)
	assert.Equal(t, domain.ObjectiveMaximizeReturn, session.Profile.Objectives[0])
}
