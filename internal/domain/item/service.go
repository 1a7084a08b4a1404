package item

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpggio/itemboard/internal/repository"
)

// Service handles item operations on top of a Repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new item service. A nil logger discards output.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// List returns every stored item. The result is never nil.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list items failed", "error", err)
		return nil, fmt.Errorf("listing items: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// Create validates and stores a new item.
func (s *Service) Create(ctx context.Context, draft Draft) (*Item, error) {
	if err := ValidateDraft(draft); err != nil {
		s.logger.Warn("rejected item create", "error", err)
		return nil, err
	}

	it, err := s.repo.Create(ctx, draft)
	if err != nil {
		s.logger.Error("create item failed", "error", err)
		return nil, fmt.Errorf("creating item: %w", err)
	}
	s.logger.Debug("item created", "id", it.ID)
	return it, nil
}

// Update replaces title and description of an existing item.
func (s *Service) Update(ctx context.Context, id string, draft Draft) (*Item, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrItemNotFound
	}
	if err := ValidateDraft(draft); err != nil {
		s.logger.Warn("rejected item update", "id", id, "error", err)
		return nil, err
	}

	it, err := s.repo.Update(ctx, id, draft)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("update of unknown item", "id", id)
			return nil, ErrItemNotFound
		}
		s.logger.Error("update item failed", "id", id, "error", err)
		return nil, fmt.Errorf("updating item: %w", err)
	}
	return it, nil
}

// Delete removes an item. Deleting an unknown id reports ErrItemNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrItemNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("delete of unknown item", "id", id)
			return ErrItemNotFound
		}
		s.logger.Error("delete item failed", "id", id, "error", err)
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}
