package controller_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/itemboard/internal/controller"
	"github.com/rpggio/itemboard/internal/domain/item"
	"github.com/rpggio/itemboard/internal/memory"
	"github.com/rpggio/itemboard/internal/repository/mocks"
)

func newLocal() *controller.Controller {
	return controller.New(item.NewService(memory.NewStore(), nil), nil)
}

func TestNew_InitialState(t *testing.T) {
	c := newLocal()

	s := c.Snapshot()
	require.True(t, s.Loading)
	require.NotNil(t, s.Items)
	require.Empty(t, s.Items)
	require.False(t, s.ModalOpen)
	require.Nil(t, s.Editing)
}

func TestScenario_CreateEditDelete(t *testing.T) {
	ctx := context.Background()
	c := newLocal()
	require.NoError(t, c.Load(ctx))
	require.False(t, c.Snapshot().Loading)

	c.OpenCreate()
	require.True(t, c.Snapshot().ModalOpen)
	require.NoError(t, c.Save(ctx, item.Draft{Title: "Milk", Description: "2L"}))

	s := c.Snapshot()
	require.False(t, s.ModalOpen)
	require.Len(t, s.Items, 1)
	milk := s.Items[0]
	require.Equal(t, "Milk", milk.Title)

	c.OpenEdit(milk)
	s = c.Snapshot()
	require.True(t, s.ModalOpen)
	require.NotNil(t, s.Editing)
	require.Equal(t, milk.ID, s.Editing.ID)

	require.NoError(t, c.Save(ctx, item.Draft{Title: "Oat milk", Description: "2L"}))
	s = c.Snapshot()
	require.False(t, s.ModalOpen)
	require.Nil(t, s.Editing)
	require.Len(t, s.Items, 1)
	require.Equal(t, milk.ID, s.Items[0].ID)
	require.Equal(t, "Oat milk", s.Items[0].Title)

	c.RequestDelete(s.Items[0])
	require.NotNil(t, c.Snapshot().PendingDelete)
	require.NoError(t, c.ConfirmDelete(ctx))

	s = c.Snapshot()
	require.Nil(t, s.PendingDelete)
	require.Empty(t, s.Items)
}

func TestSearch_DoesNotMutateItems(t *testing.T) {
	ctx := context.Background()
	c := newLocal()
	for _, d := range []item.Draft{
		{Title: "Milk", Description: "2L"},
		{Title: "Bread", Description: "whole grain"},
		{Title: "Eggs", Description: "free range MILKY white"},
	} {
		c.OpenCreate()
		require.NoError(t, c.Save(ctx, d))
	}

	c.SetSearch("  milk ")
	visible := c.Visible()
	require.Len(t, visible, 2)
	require.Equal(t, "Milk", visible[0].Title)
	require.Equal(t, "Eggs", visible[1].Title)

	s := c.Snapshot()
	require.Equal(t, "  milk ", s.SearchQuery)
	require.Len(t, s.Items, 3)

	c.SetSearch("")
	require.Len(t, c.Visible(), 3)
}

func TestLoad_FailureKeepsPreviousItems(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.ItemRepository{}
	previous := []item.Item{{ID: "1", Title: "Milk"}}
	gw.On("List", mock.Anything).Return(previous, nil).Once()
	gw.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	c := controller.New(gw, nil)
	require.NoError(t, c.Load(ctx))
	require.Error(t, c.Load(ctx))

	s := c.Snapshot()
	require.False(t, s.Loading)
	require.Equal(t, previous, s.Items)
	require.Contains(t, s.LastError, "connection refused")
	gw.AssertExpectations(t)
}

func TestSave_FailureKeepsModalOpen(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.ItemRepository{}
	draft := item.Draft{Title: "Milk"}
	gw.On("Create", mock.Anything, draft).Return(nil, errors.New("timeout"))

	c := controller.New(gw, nil)
	c.OpenCreate()
	err := c.Save(ctx, draft)
	require.Error(t, err)

	s := c.Snapshot()
	require.True(t, s.ModalOpen)
	require.Contains(t, s.LastError, "timeout")
	gw.AssertNotCalled(t, "List", mock.Anything)
}

func TestSave_EditingCallsUpdate(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.ItemRepository{}
	existing := item.Item{ID: "42", Title: "Old"}
	draft := item.Draft{Title: "New", Description: "d"}
	updated := item.Item{ID: "42", Title: "New", Description: "d"}
	gw.On("Update", mock.Anything, "42", draft).Return(&updated, nil)
	gw.On("List", mock.Anything).Return([]item.Item{updated}, nil)

	c := controller.New(gw, nil)
	c.OpenEdit(existing)
	require.NoError(t, c.Save(ctx, draft))

	require.Equal(t, []item.Item{updated}, c.Snapshot().Items)
	gw.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	gw.AssertExpectations(t)
}

func TestConfirmDelete_NotFoundRecorded(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.ItemRepository{}
	gw.On("Delete", mock.Anything, "gone").Return(item.ErrItemNotFound)

	c := controller.New(gw, nil)
	c.RequestDelete(item.Item{ID: "gone"})
	err := c.ConfirmDelete(ctx)
	require.ErrorIs(t, err, item.ErrItemNotFound)

	s := c.Snapshot()
	require.Nil(t, s.PendingDelete)
	require.NotEmpty(t, s.LastError)
}

func TestConfirmDelete_NothingPending(t *testing.T) {
	c := newLocal()
	require.ErrorIs(t, c.ConfirmDelete(context.Background()), controller.ErrNothingToDelete)
}

func TestCancelDelete(t *testing.T) {
	c := newLocal()
	c.RequestDelete(item.Item{ID: "1"})
	c.CancelDelete()
	require.Nil(t, c.Snapshot().PendingDelete)
}

func TestSnapshot_IsACopy(t *testing.T) {
	ctx := context.Background()
	c := newLocal()
	c.OpenCreate()
	require.NoError(t, c.Save(ctx, item.Draft{Title: "Milk"}))

	s := c.Snapshot()
	s.Items[0].Title = "changed"
	require.Equal(t, "Milk", c.Snapshot().Items[0].Title)
}

func TestCloseModal(t *testing.T) {
	c := newLocal()
	c.OpenEdit(item.Item{ID: "1", Title: "A"})
	c.CloseModal()

	s := c.Snapshot()
	require.False(t, s.ModalOpen)
	require.Nil(t, s.Editing)
}

func TestLoading_OnlyBeforeFirstLoad(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.ItemRepository{}
	var c *controller.Controller
	var loadingDuringFetch []bool
	gw.On("List", mock.Anything).Run(func(mock.Arguments) {
		loadingDuringFetch = append(loadingDuringFetch, c.Snapshot().Loading)
	}).Return([]item.Item{}, nil)
	gw.On("Create", mock.Anything, item.Draft{Title: "Milk"}).Return(&item.Item{ID: "1", Title: "Milk"}, nil)

	c = controller.New(gw, nil)
	require.True(t, c.Snapshot().Loading)
	require.NoError(t, c.Load(ctx))
	require.False(t, c.Snapshot().Loading)

	c.OpenCreate()
	require.NoError(t, c.Save(ctx, item.Draft{Title: "Milk"}))

	require.Equal(t, []bool{true, false}, loadingDuringFetch)
	require.False(t, c.Snapshot().Loading)
}
