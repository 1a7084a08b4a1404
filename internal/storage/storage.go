// Package storage selects and constructs the item store for the process.
//
// Open never fails. When the configured store cannot be built it logs a
// warning and returns an in-memory store instead (fallback mode), which keeps
// the same external contract but loses its contents on restart.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"github.com/rpggio/itemboard/internal/config"
	"github.com/rpggio/itemboard/internal/docstore"
	"github.com/rpggio/itemboard/internal/domain/item"
	"github.com/rpggio/itemboard/internal/memory"
	"github.com/rpggio/itemboard/internal/postgres"
	"github.com/rpggio/itemboard/internal/sqlite"
)

// Mode identifies the store backing a Backend.
type Mode string

const (
	ModeFirestore Mode = "firestore"
	ModeSQLite    Mode = "sqlite"
	ModePostgres  Mode = "postgres"
	ModeMemory    Mode = "memory"
)

const (
	driverAuto     = "auto"
	datastoreScope = "https://www.googleapis.com/auth/datastore"

	serviceAccountType = "service_account"
)

// openFirestoreFn is swapped in tests.
var openFirestoreFn = openFirestore

// ErrConnection marks a store that could not be initialised. It only appears
// during Open, where it triggers fallback mode.
var ErrConnection = errors.New("store unavailable")

// Backend is the constructed store plus what the process needs to know about it.
type Backend struct {
	Items item.Repository
	Mode  Mode
	// Err is the initialisation failure that caused fallback mode, if any.
	Err      error
	fallback bool
	closeFn  func() error
}

// Fallback reports whether the backend is the in-memory substitute.
func (b *Backend) Fallback() bool { return b.fallback }

// Close releases the store's resources.
func (b *Backend) Close() error {
	if b.closeFn == nil {
		return nil
	}
	return b.closeFn()
}

// Open builds the store named by cfg.Driver. It always returns a usable
// backend.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (backend *Backend) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: panic during init: %v", ErrConnection, r)
			logger.Warn("error initializing store", "error", err)
			backend = fallback(logger, err)
		}
	}()

	var (
		b   *Backend
		err error
	)
	switch cfg.Driver {
	case "", driverAuto:
		if cfg.Credentials == "" {
			logger.Warn(config.EnvCredentials + " not set; using in-memory fallback mode")
			return fallback(logger, nil)
		}
		b, err = openFirestoreFn(ctx, cfg)
	case string(ModeFirestore):
		if cfg.Credentials == "" {
			err = fmt.Errorf("%w: %s not set", ErrConnection, config.EnvCredentials)
			break
		}
		b, err = openFirestoreFn(ctx, cfg)
	case string(ModeSQLite):
		b, err = openSQLite(cfg.SQLite.Path)
	case string(ModePostgres):
		b, err = openPostgres(ctx, cfg.Postgres.DSN)
	case string(ModeMemory):
		return &Backend{Items: memory.NewStore(), Mode: ModeMemory}
	default:
		err = fmt.Errorf("%w: unknown storage driver %q", ErrConnection, cfg.Driver)
	}

	if err != nil {
		logger.Warn("error initializing store", "driver", cfg.Driver, "error", err)
		return fallback(logger, err)
	}
	logger.Info("store ready", "mode", b.Mode)
	return b
}

func fallback(logger *slog.Logger, cause error) *Backend {
	logger.Warn("using in-memory fallback mode; items will not survive a restart")
	return &Backend{
		Items:    memory.NewStore(),
		Mode:     ModeMemory,
		Err:      cause,
		fallback: true,
	}
}

// serviceAccount is the subset of a service-account key checked before
// handing it to the credentials parser.
type serviceAccount struct {
	Type      string `json:"type"`
	ProjectID string `json:"project_id"`
}

func openFirestore(ctx context.Context, cfg config.StorageConfig) (*Backend, error) {
	raw := []byte(cfg.Credentials)
	var sa serviceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, fmt.Errorf("%w: credentials are not valid JSON: %v", ErrConnection, err)
	}
	if sa.Type != serviceAccountType {
		return nil, fmt.Errorf("%w: credentials are not a service account key (type %q)", ErrConnection, sa.Type)
	}

	creds, err := google.CredentialsFromJSON(ctx, raw, datastoreScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse credentials: %v", ErrConnection, err)
	}

	projectID := cfg.Firestore.Project
	if projectID == "" {
		projectID = creds.ProjectID
	}
	if projectID == "" {
		projectID = sa.ProjectID
	}
	if projectID == "" {
		return nil, fmt.Errorf("%w: credentials carry no project_id", ErrConnection)
	}

	store, err := docstore.New(ctx, projectID, cfg.Firestore.Collection, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return &Backend{Items: store, Mode: ModeFirestore, closeFn: store.Close}, nil
}

func openSQLite(path string) (*Backend, error) {
	if err := ensureDBDir(path); err != nil {
		return nil, fmt.Errorf("%w: prepare database path: %v", ErrConnection, err)
	}
	db, err := sqlite.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if err := db.RunMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return &Backend{Items: sqlite.NewItemRepository(db), Mode: ModeSQLite, closeFn: db.Close}, nil
}

func openPostgres(ctx context.Context, dsn string) (*Backend, error) {
	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return &Backend{Items: store, Mode: ModePostgres, closeFn: store.Close}, nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
