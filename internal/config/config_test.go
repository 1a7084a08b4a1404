package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ITEMBOARD_CONFIG_PATH", "ITEMBOARD_SERVER_HOST", "ITEMBOARD_SERVER_PORT",
		"ITEMBOARD_TRANSPORT_MODE", "ITEMBOARD_STORAGE_DRIVER", EnvCredentials,
		"ITEMBOARD_FIRESTORE_PROJECT", "ITEMBOARD_FIRESTORE_COLLECTION",
		"ITEMBOARD_SQLITE_PATH", "ITEMBOARD_POSTGRES_DSN", "ITEMBOARD_LOG_LEVEL",
		"ITEMBOARD_LOG_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, "auto", cfg.Storage.Driver)
	require.Equal(t, "items", cfg.Storage.Firestore.Collection)
	require.Empty(t, cfg.Storage.Credentials)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "itemboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
storage:
  driver: sqlite
  sqlite:
    path: /tmp/items.db
log:
  level: debug
`), 0o644))

	t.Setenv("ITEMBOARD_CONFIG_PATH", path)
	t.Setenv("ITEMBOARD_SERVER_PORT", "9100")
	t.Setenv(EnvCredentials, `{"type":"service_account"}`)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Storage.Driver)
	require.Equal(t, "/tmp/items.db", cfg.Storage.SQLite.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, `{"type":"service_account"}`, cfg.Storage.Credentials)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	t.Setenv("ITEMBOARD_SERVER_PORT", "not-a-number")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("ITEMBOARD_SERVER_PORT", "")
	t.Setenv("ITEMBOARD_TRANSPORT_MODE", "carrier-pigeon")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("ITEMBOARD_TRANSPORT_MODE", "")
	t.Setenv("ITEMBOARD_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = Load()
	require.Error(t, err)
}
