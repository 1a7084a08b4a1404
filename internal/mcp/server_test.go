package mcp

import (
	"context"
	"encoding/json"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/itemboard/internal/domain/item"
	"github.com/rpggio/itemboard/internal/memory"
)

func connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := NewServer(Config{Items: item.NewService(memory.NewStore(), nil)})
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func callTool[T any](t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) (T, *sdkmcp.CallToolResult) {
	t.Helper()
	var out T

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	if res.IsError {
		return out, res
	}

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out))
	return out, res
}

func errorText(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.True(t, res.IsError)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestTools_Listed(t *testing.T) {
	session := connect(t)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{"list_items", "create_item", "update_item", "delete_item"}, names)
}

func TestTools_Lifecycle(t *testing.T) {
	session := connect(t)

	list, _ := callTool[ListItemsOutput](t, session, "list_items", map[string]any{})
	require.Equal(t, 0, list.Count)

	created, res := callTool[ItemOutput](t, session, "create_item", map[string]any{"title": "A"})
	require.False(t, res.IsError)
	require.NotEmpty(t, created.Item.ID)
	require.Equal(t, "A", created.Item.Title)
	require.NotEmpty(t, created.Item.CreatedAt)

	updated, res := callTool[ItemOutput](t, session, "update_item", map[string]any{
		"id":          created.Item.ID,
		"title":       "B",
		"description": "d",
	})
	require.False(t, res.IsError)
	require.Equal(t, created.Item.ID, updated.Item.ID)
	require.Equal(t, "B", updated.Item.Title)
	require.Equal(t, "d", updated.Item.Description)
	require.Equal(t, created.Item.CreatedAt, updated.Item.CreatedAt)

	list, _ = callTool[ListItemsOutput](t, session, "list_items", map[string]any{})
	require.Equal(t, 1, list.Count)
	require.Equal(t, "B", list.Items[0].Title)

	deleted, res := callTool[DeleteItemOutput](t, session, "delete_item", map[string]any{"id": created.Item.ID})
	require.False(t, res.IsError)
	require.True(t, deleted.Deleted)

	_, res = callTool[DeleteItemOutput](t, session, "delete_item", map[string]any{"id": created.Item.ID})
	require.Contains(t, errorText(t, res), "NOT_FOUND")
}

func TestTools_BlankTitle(t *testing.T) {
	session := connect(t)

	_, res := callTool[ItemOutput](t, session, "create_item", map[string]any{"title": "   "})
	require.Contains(t, errorText(t, res), "INVALID_INPUT")
}

func TestResources_Guide(t *testing.T) {
	session := connect(t)

	res, err := session.ReadResource(context.Background(), &sdkmcp.ReadResourceParams{URI: "itemboard://guide"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	require.Contains(t, res.Contents[0].Text, "delete_item")
}
