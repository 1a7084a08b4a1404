package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `itemboard keeps a flat list of items. Each item has an id, a required title,
an optional description and a creation timestamp.

Use list_items to see everything, then create_item, update_item or delete_item.
update_item replaces both title and description, so pass the current description
when only the title should change. Unknown ids fail with NOT_FOUND.`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "itemboard://guide",
		Name:        "guide",
		Title:       "itemboard guide",
		Description: "How the item tools behave",
		Content: `# itemboard

## Tools

- list_items: every item in store order.
- create_item: title is required and may not be blank. The id and createdAt are assigned by the server.
- update_item: replaces title and description of the item with the given id. createdAt never changes.
- delete_item: removes the item. Deleting an id twice reports NOT_FOUND the second time.

## Errors

Tool errors carry a code:
- INVALID_INPUT: blank title.
- NOT_FOUND: no item with that id.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
