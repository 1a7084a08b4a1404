package mcp

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/itemboard/internal/domain/item"
)

// ItemView is the tool representation of an item. CreatedAt is RFC 3339.
type ItemView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

func viewOf(it item.Item) ItemView {
	return ItemView{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		CreatedAt:   it.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

type ListItemsInput struct{}

type ListItemsOutput struct {
	Items []ItemView `json:"items"`
	Count int        `json:"count"`
}

type CreateItemInput struct {
	Title       string `json:"title" jsonschema:"item title, must not be blank"`
	Description string `json:"description,omitempty" jsonschema:"optional free text"`
}

type UpdateItemInput struct {
	ID          string `json:"id" jsonschema:"id of the item to replace"`
	Title       string `json:"title" jsonschema:"new title, must not be blank"`
	Description string `json:"description,omitempty" jsonschema:"new description; omitted means empty"`
}

type ItemOutput struct {
	Item ItemView `json:"item"`
}

type DeleteItemInput struct {
	ID string `json:"id" jsonschema:"id of the item to delete"`
}

type DeleteItemOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func registerTools(server *sdkmcp.Server, items ItemService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_items",
		Description: "List every item in store order",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListItemsInput) (*sdkmcp.CallToolResult, ListItemsOutput, error) {
		list, err := items.List(ctx)
		if err != nil {
			return nil, ListItemsOutput{}, toolError(err)
		}
		out := ListItemsOutput{Items: make([]ItemView, 0, len(list)), Count: len(list)}
		for _, it := range list {
			out.Items = append(out.Items, viewOf(it))
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_item",
		Description: "Create an item with a title and optional description",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateItemInput) (*sdkmcp.CallToolResult, ItemOutput, error) {
		created, err := items.Create(ctx, item.Draft{Title: in.Title, Description: in.Description})
		if err != nil {
			return nil, ItemOutput{}, toolError(err)
		}
		return nil, ItemOutput{Item: viewOf(*created)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_item",
		Description: "Replace the title and description of an existing item",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateItemInput) (*sdkmcp.CallToolResult, ItemOutput, error) {
		updated, err := items.Update(ctx, in.ID, item.Draft{Title: in.Title, Description: in.Description})
		if err != nil {
			return nil, ItemOutput{}, toolError(err)
		}
		return nil, ItemOutput{Item: viewOf(*updated)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_item",
		Description: "Delete an item by id",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteItemInput) (*sdkmcp.CallToolResult, DeleteItemOutput, error) {
		if err := items.Delete(ctx, in.ID); err != nil {
			return nil, DeleteItemOutput{}, toolError(err)
		}
		return nil, DeleteItemOutput{ID: in.ID, Deleted: true}, nil
	})
}
