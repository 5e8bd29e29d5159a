package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/grofast/portal-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVBlobRepository_SetGetDelete(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewKVBlobRepository(setup.DB)

	_, err := repo.Get(ctx, "grofast_data")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)

	require.NoError(t, repo.Set(ctx, "grofast_data", []byte(`{"teams":[]}`), 0))
	require.NoError(t, repo.Set(ctx, "grofast_data", []byte(`{"teams":null}`), 0))

	got, err := repo.Get(ctx, "grofast_data")
	require.NoError(t, err)
	assert.JSONEq(t, `{"teams":null}`, string(got))

	require.NoError(t, repo.Delete(ctx, "grofast_data"))
	_, err = repo.Get(ctx, "grofast_data")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestKVBlobRepository_ExpiredValueIsMissing(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewKVBlobRepository(setup.DB)
	require.NoError(t, repo.Set(ctx, "geocode:1,2", []byte("x"), time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, err := repo.Get(ctx, "geocode:1,2")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestWithTransaction_RollsBack(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewKVBlobRepository(setup.DB)
	boom := errors.New("boom")

	err := postgresql.WithTransaction(ctx, setup.DB, func(ctx context.Context) error {
		require.NoError(t, repo.Set(ctx, "k", []byte("v"), 0))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.Get(ctx, "k")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}
