package views

import (
	"fmt"

	"selectkit/internal/widget"
)

// SelectBoxRenderer handles the select box header and its drop-down
type SelectBoxRenderer struct {
	styles *Styles
	list   *ListRenderer
}

// NewSelectBoxRenderer creates a new select box renderer
func NewSelectBoxRenderer(styles *Styles, list *ListRenderer) *SelectBoxRenderer {
	return &SelectBoxRenderer{styles: styles, list: list}
}

// RenderHeader renders the committed item with an open/closed marker
func (r *SelectBoxRenderer) RenderHeader(label string, box *widget.SelectBox, focused bool) string {
	arrow := "▾"
	if box.IsOpen() {
		arrow = "▴"
	}
	value := "(none)"
	if item, ok := box.Selected(); ok {
		value = item.Label
	}
	name := r.styles.Label.Render(label + ":")
	if focused {
		name = r.styles.Focused.Render(label + ":")
	}
	return fmt.Sprintf("%s %s", name, r.styles.Box.Render(fmt.Sprintf(" %s %s ", value, arrow)))
}

// RenderPopup renders the drop-down rows, or nothing when closed
func (r *SelectBoxRenderer) RenderPopup(box *widget.SelectBox) []string {
	if !box.IsOpen() {
		return nil
	}
	return r.list.Render(box.List().ScrollArea, true)
}
