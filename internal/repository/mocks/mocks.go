package mocks

import (
	"context"

	"github.com/rpggio/itemboard/internal/domain/item"
	"github.com/stretchr/testify/mock"
)

// ItemRepository is a mock for item.Repository.
type ItemRepository struct {
	mock.Mock
}

func (m *ItemRepository) List(ctx context.Context) ([]item.Item, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]item.Item); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ItemRepository) Create(ctx context.Context, draft item.Draft) (*item.Item, error) {
	args := m.Called(ctx, draft)
	if it, ok := args.Get(0).(*item.Item); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ItemRepository) Update(ctx context.Context, id string, draft item.Draft) (*item.Item, error) {
	args := m.Called(ctx, id, draft)
	if it, ok := args.Get(0).(*item.Item); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ItemRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
