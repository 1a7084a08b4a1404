package tui

import (
	"strings"

	"github.com/rpggio/itemboard/internal/domain/item"
)

const minCardWidth = 20

// renderCard draws one item. It has no behavior of its own; selection and
// actions live on the list screen.
func renderCard(it item.Item, selected bool, width int, th Theme) string {
	style := th.Card
	if selected {
		style = th.Selected
	}
	if width >= minCardWidth {
		style = style.Width(width - style.GetHorizontalBorderSize())
	}

	lines := []string{th.CardHead.Render(it.Title)}
	if desc := strings.TrimSpace(it.Description); desc != "" {
		lines = append(lines, th.CardBody.Render(desc))
	}
	return style.Render(strings.Join(lines, "\n"))
}
