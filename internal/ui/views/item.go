package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selectkit/internal/widget"
)

// ItemRenderer handles rendering of list items
type ItemRenderer struct {
	styles *Styles
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles) *ItemRenderer {
	return &ItemRenderer{styles: styles}
}

// style combines the item's state styles
func (r *ItemRenderer) style(it *widget.Item, focused bool) lipgloss.Style {
	s := r.styles.Item
	switch {
	case !it.Enabled:
		s = r.styles.Disabled
	case it.Selected():
		s = r.styles.Selected
	}
	if it.Anchor() && !it.Selected() {
		s = s.Inherit(r.styles.Anchor)
	}
	if it.Lead() && focused {
		s = s.Inherit(r.styles.Lead)
	}
	return s
}

// RenderRow renders an item as a full-width row of a vertical list
func (r *ItemRenderer) RenderRow(it *widget.Item, width int, focused bool) string {
	marker := "  "
	if it.Lead() {
		marker = "▸ "
	}
	label := it.Label
	if it.Anchor() {
		label += " ◆"
	}
	row := marker + r.style(it, focused).Render(label)
	return lipgloss.NewStyle().MaxWidth(width).Render(pad(row, width))
}

// RenderCell renders an item as a cell of a horizontal list
func (r *ItemRenderer) RenderCell(it *widget.Item, focused bool) string {
	return r.style(it, focused).Render(it.Label)
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
