package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bangsearch/internal/domain/entity"
	"github.com/bnema/bangsearch/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bangsearch/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestOverrideRepository_RoundTrip(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "bangsearch.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewOverrideRepository(db)

	got, err := repo.GetOverrides(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	first := map[string]string{
		"!a":  "https://a.example/?q=",
		"!gh": "https://github.com/search?q=%s",
	}
	require.NoError(t, repo.SetOverrides(ctx, first))

	got, err = repo.GetOverrides(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	// Set replaces, it does not merge.
	second := map[string]string{"!b": "https://b.example/{q}"}
	require.NoError(t, repo.SetOverrides(ctx, second))

	got, err = repo.GetOverrides(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	require.NoError(t, repo.SetOverrides(ctx, map[string]string{}))
	got, err = repo.GetOverrides(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOverrideRepository_PersistsAcrossConnections(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "bangsearch.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewOverrideRepository(db).SetOverrides(ctx, map[string]string{"!x": "https://x.example/?q="}))
	require.NoError(t, db.Close())

	db, err = sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	got, err := sqlite.NewOverrideRepository(db).GetOverrides(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"!x": "https://x.example/?q="}, got)
}

func TestLookupRepository_CountsOutcomes(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "bangsearch.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewLookupRepository(db)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, "!w", entity.OutcomeResolved, base))
	require.NoError(t, repo.Record(ctx, "!w", entity.OutcomeResolved, base.Add(time.Minute)))
	require.NoError(t, repo.Record(ctx, "!w", entity.OutcomeResolved, base.Add(2*time.Minute)))
	require.NoError(t, repo.Record(ctx, "!zz", entity.OutcomeNotFound, base))
	require.NoError(t, repo.Record(ctx, "!w", entity.OutcomeNotFound, base))

	stats, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, "!w", stats[0].Token)
	assert.Equal(t, entity.OutcomeResolved, stats[0].Outcome)
	assert.Equal(t, int64(3), stats[0].Count)
	assert.True(t, stats[0].LastSeenAt.Equal(base.Add(2*time.Minute)))

	limited, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "!w", limited[0].Token)
}
