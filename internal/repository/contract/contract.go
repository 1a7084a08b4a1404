// Package contract holds the behaviour every item.Repository must share, so
// the fallback store and the real stores are interchangeable.
package contract

import (
	"context"
	"testing"

	"github.com/rpggio/itemboard/internal/domain/item"
	"github.com/rpggio/itemboard/internal/repository"
	"github.com/stretchr/testify/require"
)

// Run exercises repo against the shared contract. newRepo must return an
// empty repository each time it is called.
func Run(t *testing.T, newRepo func(t *testing.T) item.Repository) {
	t.Helper()

	t.Run("CreateAssignsFreshIDs", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		seen := map[string]bool{}
		for _, title := range []string{"one", "two", "three"} {
			it, err := repo.Create(ctx, item.Draft{Title: title, Description: title + " desc"})
			require.NoError(t, err)
			require.NotEmpty(t, it.ID)
			require.False(t, seen[it.ID], "id %s reused", it.ID)
			require.False(t, it.CreatedAt.IsZero())
			seen[it.ID] = true
		}

		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		for _, it := range items {
			require.True(t, seen[it.ID])
			require.Equal(t, it.Title+" desc", it.Description)
		}
	})

	t.Run("UpdateReplacesFields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Create(ctx, item.Draft{Title: "A", Description: "first"})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, item.Draft{Title: "B", Description: ""})
		require.NoError(t, err)
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, "B", updated.Title)
		require.Equal(t, "", updated.Description)
		require.True(t, created.CreatedAt.Equal(updated.CreatedAt), "created_at must not change")

		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, "B", items[0].Title)
		require.Equal(t, "", items[0].Description)
	})

	t.Run("UpdateUnknown", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Update(context.Background(), "does-not-exist", item.Draft{Title: "x"})
		require.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("DeleteTwice", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		keep, err := repo.Create(ctx, item.Draft{Title: "keep"})
		require.NoError(t, err)
		gone, err := repo.Create(ctx, item.Draft{Title: "gone"})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, gone.ID))
		require.ErrorIs(t, repo.Delete(ctx, gone.ID), repository.ErrNotFound)

		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, keep.ID, items[0].ID)
	})

	t.Run("ListEmpty", func(t *testing.T) {
		repo := newRepo(t)
		items, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Empty(t, items)
	})
}
