package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/itemboard/internal/domain/item"
)

// ItemService defines item operations needed by MCP.
type ItemService interface {
	List(ctx context.Context) ([]item.Item, error)
	Create(ctx context.Context, draft item.Draft) (*item.Item, error)
	Update(ctx context.Context, id string, draft item.Draft) (*item.Item, error)
	Delete(ctx context.Context, id string) error
}

// Config contains server configuration.
type Config struct {
	Items   ItemService
	Version string
	Logger  *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Version == "" {
		cfg.Version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "itemboard",
		Version: cfg.Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Items)

	return server
}
