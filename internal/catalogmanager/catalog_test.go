package catalogmanager

import (
	"context"
	"os"
	"testing"

	"github.com/mugiliam/contentcatalog/internal/db"
	"github.com/mugiliam/contentcatalog/internal/db/dbmanager"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageUnavailable(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	err := WithConn(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	_, err = LoadResource(ctx, "operators")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestSaveAndLoadResource(t *testing.T) {
	dsn := os.Getenv("CATALOG_TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("CATALOG_TEST_DATABASE_DSN not set")
	}
	ctx := log.Logger.WithContext(context.Background())
	require.NoError(t, db.Init(ctx, dbmanager.Config{DSN: dsn, MaxConns: 2}))
	t.Cleanup(db.Shutdown)

	err := WithConn(ctx, func(ctx context.Context) error {
		require.NoError(t, db.DB(ctx).Migrate(ctx))
		defer DeleteResource(ctx, "stored")

		rm, err := NewResource(ctx, []byte(namedDoc("stored", "first")))
		require.NoError(t, err)
		hash, changed, err := SaveResource(ctx, rm)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Len(t, hash, 128)

		again, changed, err := SaveResource(ctx, rm)
		require.NoError(t, err)
		assert.False(t, changed, "identical document")
		assert.Equal(t, hash, again)

		rm2, err := NewResource(ctx, []byte(namedDoc("stored", "second")))
		require.NoError(t, err)
		_, changed, err = SaveResource(ctx, rm2)
		require.NoError(t, err)
		assert.True(t, changed)

		loaded, err := LoadResource(ctx, "stored")
		require.NoError(t, err)
		assert.Equal(t, "postgresql", loaded.Source())
		r, ok := loaded.Catalog().Get(1)
		require.True(t, ok)
		assert.Equal(t, "second", r.PrimaryText)

		require.NoError(t, DeleteResource(ctx, "stored"))
		_, err = LoadResource(ctx, "stored")
		assert.ErrorIs(t, err, ErrCatalogNotFound)
		assert.ErrorIs(t, DeleteResource(ctx, "stored"), ErrCatalogNotFound)
		return nil
	})
	require.NoError(t, err)
}
