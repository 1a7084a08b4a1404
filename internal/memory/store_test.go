package memory

import (
	"context"
	"testing"

	"github.com/rpggio/itemboard/internal/domain/item"
	"github.com/rpggio/itemboard/internal/repository/contract"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	contract.Run(t, func(t *testing.T) item.Repository {
		return NewStore()
	})
}

func TestStore_ListKeepsInsertionOrder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"c", "a", "b"} {
		it, err := store.Create(ctx, item.Draft{Title: title})
		require.NoError(t, err)
		ids = append(ids, it.ID)
	}
	require.NoError(t, store.Delete(ctx, ids[1]))

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, ids[0], items[0].ID)
	require.Equal(t, ids[2], items[1].ID)
	require.Equal(t, 2, store.Len())
}

func TestStore_ListReturnsCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Create(ctx, item.Draft{Title: "original"})
	require.NoError(t, err)

	items, err := store.List(ctx)
	require.NoError(t, err)
	items[0].Title = "mutated"

	again, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "original", again[0].Title)
}
