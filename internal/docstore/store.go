// Package docstore stores items as documents in a Cloud Firestore collection.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rpggio/itemboard/internal/domain/item"
	"github.com/rpggio/itemboard/internal/repository"
)

// DefaultCollection is the collection items live in unless configured.
const DefaultCollection = "items"

var _ item.Repository = (*Store)(nil)

// document is the stored shape of an item. The id is the document id.
type document struct {
	Title       string    `firestore:"title"`
	Description string    `firestore:"description"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

// Store implements item.Repository on a Firestore collection.
type Store struct {
	client     *firestore.Client
	collection string
}

// New creates a Firestore client for projectID. Connection setup is lazy, so
// a nil error does not prove the project is reachable.
func New(ctx context.Context, projectID, collection string, opts ...option.ClientOption) (*Store, error) {
	if projectID == "" {
		return nil, errors.New("firestore: project id is required")
	}
	if collection == "" {
		collection = DefaultCollection
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: new client: %w", err)
	}
	return &Store{client: client, collection: collection}, nil
}

// Close releases the underlying client.
func (s *Store) Close() error { return s.client.Close() }

func (s *Store) col() *firestore.CollectionRef {
	return s.client.Collection(s.collection)
}

// List returns every document in the collection in store order.
func (s *Store) List(ctx context.Context) ([]item.Item, error) {
	iter := s.col().Documents(ctx)
	defer iter.Stop()

	items := []item.Item{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore: list: %w", err)
		}
		it, err := fromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// Create adds a document with an auto-generated id.
func (s *Store) Create(ctx context.Context, draft item.Draft) (*item.Item, error) {
	ref := s.col().NewDoc()
	doc := document{
		Title:       draft.Title,
		Description: draft.Description,
		// Firestore timestamps keep microseconds.
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if _, err := ref.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("firestore: create: %w", err)
	}
	return &item.Item{
		ID:          ref.ID,
		Title:       doc.Title,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt,
	}, nil
}

// Update replaces title and description. Firestore rejects updates of
// missing documents, which maps to repository.ErrNotFound.
func (s *Store) Update(ctx context.Context, id string, draft item.Draft) (*item.Item, error) {
	ref := s.col().Doc(id)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "title", Value: draft.Title},
		{Path: "description", Value: draft.Description},
	})
	if err != nil {
		return nil, mapError("update", err)
	}
	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, mapError("reload", err)
	}
	it, err := fromSnapshot(snap)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Delete removes a document, failing when it does not exist.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.col().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return mapError("delete", err)
	}
	return nil
}

func fromSnapshot(snap *firestore.DocumentSnapshot) (item.Item, error) {
	var doc document
	if err := snap.DataTo(&doc); err != nil {
		return item.Item{}, fmt.Errorf("firestore: decode %s: %w", snap.Ref.ID, err)
	}
	return item.Item{
		ID:          snap.Ref.ID,
		Title:       doc.Title,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt.UTC(),
	}, nil
}

func mapError(op string, err error) error {
	if status.Code(err) == codes.NotFound {
		return repository.ErrNotFound
	}
	return fmt.Errorf("firestore: %s: %w", op, err)
}
