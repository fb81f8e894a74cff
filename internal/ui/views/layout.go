package views

import "selectkit/internal/selection"

// ListTop is the screen row of the list's first line.
const ListTop = 2

// MaxPopupRows caps the height of an open select box.
const MaxPopupRows = 6

// Layout places the widgets on screen. The model feeds the rectangles to
// the containers so mouse coordinates and rendering agree.
type Layout struct {
	List      selection.Rect
	BoxHeader int
	Popup     selection.Rect
	Status    int
	Help      int
}

// ComputeLayout arranges a list of listHeight rows (one row when
// horizontal) above a select box with boxItems entries in a window of
// width x height cells.
func ComputeLayout(width, height, listHeight, boxItems int, horizontal bool) Layout {
	width = max(width, 1)
	popupRows := min(max(boxItems, 1), MaxPopupRows)

	// title, gap, list, gap, box header, popup, gap, status, help
	reserved := ListTop + 1 + 1 + popupRows + 1 + 1 + 1
	rows := max(listHeight, 1)
	if horizontal {
		rows = 1
	} else if height > 0 {
		rows = max(min(rows, height-reserved), 1)
	}

	var l Layout
	l.List = selection.Rect{Left: 0, Top: ListTop, Right: width, Bottom: ListTop + rows}
	l.BoxHeader = l.List.Bottom + 1
	l.Popup = selection.Rect{Left: 0, Top: l.BoxHeader + 1, Right: min(width, 30), Bottom: l.BoxHeader + 1 + popupRows}
	l.Status = l.Popup.Bottom + 1
	l.Help = l.Status + 1
	return l
}
