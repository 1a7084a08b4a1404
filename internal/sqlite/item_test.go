package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/itemboard/internal/domain/item"
	"github.com/rpggio/itemboard/internal/repository"
	"github.com/rpggio/itemboard/internal/repository/contract"
	"github.com/stretchr/testify/require"
)

func TestItemRepository_Contract(t *testing.T) {
	contract.Run(t, func(t *testing.T) item.Repository {
		return NewItemRepository(NewTestDB(t))
	})
}

func TestItemRepository_Create(t *testing.T) {
	db := NewTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()

	it, err := repo.Create(ctx, item.Draft{Title: "Test Item", Description: "A test item"})
	require.NoError(t, err)
	require.NotEmpty(t, it.ID)

	// Verify it was stored
	var title, description string
	err = db.QueryRowContext(ctx, `SELECT title, description FROM items WHERE id = ?`, it.ID).Scan(&title, &description)
	require.NoError(t, err)
	require.Equal(t, "Test Item", title)
	require.Equal(t, "A test item", description)
}

func TestItemRepository_ListOrder(t *testing.T) {
	db := NewTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, item.Draft{Title: "first"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, item.Draft{Title: "second"})
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Should be ordered by created_at ASC (oldest first)
	require.Equal(t, first.ID, items[0].ID)
	require.Equal(t, second.ID, items[1].ID)
}

func TestItemRepository_DeleteNonexistent(t *testing.T) {
	db := NewTestDB(t)
	repo := NewItemRepository(db)

	err := repo.Delete(context.Background(), "nonexistent")
	require.Equal(t, repository.ErrNotFound, err)
}
