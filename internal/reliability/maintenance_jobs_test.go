package reliability

import (
	"testing"

	testingutil "github.com/aristath/greenmix/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceJob_Run(t *testing.T) {
	cacheDB, cleanupCache := testingutil.NewTestDB(t, "cache")
	defer cleanupCache()
	catalogDB, cleanupCatalog := testingutil.NewTestDB(t, "catalog")
	defer cleanupCatalog()

	_, err := cacheDB.Conn().Exec(
		`INSERT INTO sessions (id, pod_number, total_investment, confirmed, payload, created_at, updated_at)
		 VALUES ('a', '', 100, 0, x'00', 0, 0)`)
	require.NoError(t, err)
	_, err = cacheDB.Conn().Exec(`DELETE FROM sessions`)
	require.NoError(t, err)

	job := NewMaintenanceJob(zerolog.Nop(), cacheDB, nil, catalogDB)
	assert.Equal(t, "database_maintenance", job.Name())
	require.NoError(t, job.Run())
}

func TestMaintenanceJob_ClosedDatabaseAborts(t *testing.T) {
	cacheDB, cleanup := testingutil.NewTestDB(t, "cache")
	defer cleanup()
	require.NoError(t, cacheDB.Close())

	err := NewMaintenanceJob(zerolog.Nop(), cacheDB).Run()
	assert.Error(t, err)
}
