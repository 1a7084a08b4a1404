package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/rpggio/itemboard/internal/domain/item"
	"github.com/rpggio/itemboard/internal/repository/contract"
	"github.com/stretchr/testify/require"
)

const envTestDSN = "ITEMBOARD_TEST_POSTGRES_DSN"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv(envTestDSN)
	if dsn == "" {
		t.Skipf("%s not set; skipping postgres tests", envTestDSN)
	}
	ctx := context.Background()
	store, err := Open(ctx, dsn)
	require.NoError(t, err)
	_, err = store.DB().ExecContext(ctx, `TRUNCATE items`)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_Contract(t *testing.T) {
	contract.Run(t, func(t *testing.T) item.Repository {
		return newTestStore(t)
	})
}

func TestOpen_Unreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Open(ctx, "postgres://127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	require.Error(t, err)
}
