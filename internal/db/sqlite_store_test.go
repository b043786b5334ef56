package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "smartnotes-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	texts := []string{"The wait was too long", "Very clean room", "Great service"}
	for _, text := range texts {
		_, err := store.Append(ctx, text)
		require.NoError(t, err)
	}

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, texts[i], item.Text)
		assert.NotEmpty(t, item.ID)
		assert.False(t, item.SubmittedAt.IsZero())
	}
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	appended, err := store.Append(ctx, "Friendly nurses")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, appended.ID, items[0].ID)
	assert.True(t, appended.SubmittedAt.Equal(items[0].SubmittedAt))
}

func TestSQLiteStoreRejectsBlankFeedback(t *testing.T) {
	_, err := newTestSQLiteStore(t).Append(context.Background(), "\n\t")
	assert.ErrorIs(t, err, ErrEmptyFeedback)
}
