// Package postgres provides a Postgres-backed item repository using pgx
// through database/sql.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	"github.com/rpggio/itemboard/internal/domain/item"
	"github.com/rpggio/itemboard/internal/repository"
	"github.com/rpggio/itemboard/migrations"
)

var _ item.Repository = (*Store)(nil)

const defaultDSN = "postgres://localhost/itemboard?sslmode=disable"

// Store persists items in a Postgres table.
type Store struct {
	db *sql.DB
}

// Open connects to Postgres, verifies the connection and applies the schema.
// An empty dsn uses a local default.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	schema, err := migrations.Postgres()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// List returns all items, oldest first.
func (s *Store) List(ctx context.Context) ([]item.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, created_at FROM items ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []item.Item{}
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.CreatedAt = it.CreatedAt.UTC()
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Create inserts a new item with a generated id.
func (s *Store) Create(ctx context.Context, draft item.Draft) (*item.Item, error) {
	it := item.Item{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		// Postgres keeps microseconds; truncate so the returned value matches a reload.
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (id, title, description, created_at) VALUES ($1, $2, $3, $4)`,
		it.ID, it.Title, it.Description, it.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return &it, nil
}

// Update replaces title and description of an existing item.
func (s *Store) Update(ctx context.Context, id string, draft item.Draft) (*item.Item, error) {
	var it item.Item
	err := s.db.QueryRowContext(ctx,
		`UPDATE items SET title = $1, description = $2 WHERE id = $3
		 RETURNING id, title, description, created_at`,
		draft.Title, draft.Description, id,
	).Scan(&it.ID, &it.Title, &it.Description, &it.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	it.CreatedAt = it.CreatedAt.UTC()
	return &it, nil
}

// Delete removes an item.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
