package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_Reapply(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	// Already applied in TestMain; a second run is a no-op.
	require.NoError(t, RunMigrations(ctx, testDSN))

	var version int64
	err := pool.QueryRow(ctx, `SELECT MAX(version_id) FROM goose_db_version WHERE is_applied`).Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestRunMigrations_BadDSN(t *testing.T) {
	t.Parallel()

	err := RunMigrations(context.Background(), "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	assert.Error(t, err)
}
