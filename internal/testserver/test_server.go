// Package testserver runs the full HTTP stack in-process for tests.
package testserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/itemboard/internal/domain/item"
	"github.com/rpggio/itemboard/internal/mcp"
	"github.com/rpggio/itemboard/internal/memory"
	"github.com/rpggio/itemboard/internal/sqlite"
	"github.com/rpggio/itemboard/internal/transport"
)

type TestServer struct {
	Server  *httptest.Server
	URL     string
	Items   *item.Service
	Metrics *transport.Metrics
}

// New starts a server over the fallback memory store.
func New(t *testing.T) *TestServer {
	t.Helper()
	return NewWithRepository(t, memory.NewStore())
}

// NewSQLite starts a server over a fresh in-memory SQLite database.
func NewSQLite(t *testing.T) *TestServer {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	return NewWithRepository(t, sqlite.NewItemRepository(db))
}

// NewWithRepository starts a server over repo with the REST routes, metrics
// and the MCP endpoint mounted the same way cmd/server does.
func NewWithRepository(t *testing.T, repo item.Repository) *TestServer {
	t.Helper()

	svc := item.NewService(repo, nil)
	metrics := transport.NewMetrics()
	mcpServer := mcp.NewServer(mcp.Config{Items: svc})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{Stateless: true},
	)

	server := httptest.NewServer(transport.NewServer(svc,
		transport.WithMetrics(metrics),
		transport.WithMCP(mcpHandler),
	))
	t.Cleanup(server.Close)

	return &TestServer{
		Server:  server,
		URL:     server.URL,
		Items:   svc,
		Metrics: metrics,
	}
}
