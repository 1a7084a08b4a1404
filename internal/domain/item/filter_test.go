package item

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	items := []Item{
		{ID: "1", Title: "Alice Smith", Description: "Backend engineer"},
		{ID: "2", Title: "Bob", Description: "Designs the FRONTEND"},
		{ID: "3", Title: "Carol", Description: ""},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "blank query keeps all", query: "  ", want: []string{"1", "2", "3"}},
		{name: "title match ignores case", query: "alice", want: []string{"1"}},
		{name: "description match ignores case", query: "frontend", want: []string{"2"}},
		{name: "substring in both fields", query: "end", want: []string{"1", "2"}},
		{name: "query is trimmed", query: "  carol ", want: []string{"3"}},
		{name: "no match", query: "zed", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, tt.query)
			ids := make([]string, 0, len(got))
			for _, it := range got {
				ids = append(ids, it.ID)
			}
			require.Equal(t, tt.want, ids)
		})
	}

	require.Len(t, items, 3, "filter must not modify its input")
	require.Equal(t, "Alice Smith", items[0].Title)
}
