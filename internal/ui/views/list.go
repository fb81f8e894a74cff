package views

import (
	"slices"
	"strings"

	"selectkit/internal/widget"
)

// ListRenderer draws the visible part of a scroll area
type ListRenderer struct {
	items *ItemRenderer
}

// NewListRenderer creates a new list renderer
func NewListRenderer(items *ItemRenderer) *ListRenderer {
	return &ListRenderer{items: items}
}

// Render returns one line per row of the area's frame.
func (r *ListRenderer) Render(area *widget.ScrollArea, focused bool) []string {
	loc, ok := area.Location()
	if !ok {
		return nil
	}
	width, rows := loc.Right-loc.Left, loc.Bottom-loc.Top
	scroll := area.ScrollPosition()

	if area.Orientation() == widget.Horizontal {
		lines := make([]string, rows)
		lines[0] = r.renderRow(area.Items(), scroll.X, width, focused)
		return lines
	}

	byRow := make(map[int]*widget.Item)
	for _, it := range area.Items() {
		if it.Visible {
			byRow[it.Bounds().Top] = it
		}
	}
	lines := make([]string, rows)
	for i := range lines {
		if it, ok := byRow[scroll.Y+i]; ok {
			lines[i] = r.items.RenderRow(it, width, focused)
		}
	}
	return lines
}

// renderRow lays out the fully visible items of a horizontal list.
func (r *ListRenderer) renderRow(items []*widget.Item, offset, width int, focused bool) string {
	visible := slices.DeleteFunc(slices.Clone(items), func(it *widget.Item) bool {
		b := it.Bounds()
		return !it.Visible || b.Left < offset || b.Right > offset+width
	})

	var row strings.Builder
	col := 0
	for _, it := range visible {
		b := it.Bounds()
		row.WriteString(strings.Repeat(" ", b.Left-offset-col))
		row.WriteString(r.items.RenderCell(it, focused))
		col = b.Right - offset
	}
	return row.String()
}
