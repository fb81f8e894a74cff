package widget

import (
	"fmt"

	"selectkit/internal/selection"
)

// Adapter connects a Container to the selection engine. Items that are
// not visible are never selectable; disabled items are selectable only
// by program calls, not by user gestures.
type Adapter struct {
	c               *Container
	userInteraction bool
}

var _ selection.Adapter[*Item] = (*Adapter)(nil)

// NewAdapter returns an Adapter over c.
func NewAdapter(c *Container) *Adapter {
	return &Adapter{c: c}
}

func (a *Adapter) itemSelectable(item *Item) bool {
	if a.userInteraction {
		return item.Visible && item.Enabled
	}
	return item.Visible
}

// IsSelectable implements selection.Collection.
func (a *Adapter) IsSelectable(item *Item) bool {
	return a.c.Contains(item) && a.itemSelectable(item)
}

// KeyOf implements selection.Collection.
func (a *Adapter) KeyOf(item *Item) string { return item.ID }

// Resolve implements selection.Collection.
func (a *Adapter) Resolve(key string) (*Item, bool) { return a.c.ItemByID(key) }

// Selectables implements selection.Collection. Without all, items are
// filtered as if a user gesture were in progress.
func (a *Adapter) Selectables(all bool) []*Item {
	saved := a.userInteraction
	if !all {
		a.userInteraction = true
	}
	defer func() { a.userInteraction = saved }()

	var out []*Item
	for _, it := range a.c.items {
		if a.itemSelectable(it) {
			out = append(out, it)
		}
	}
	return out
}

// SelectableRange implements selection.Collection.
func (a *Adapter) SelectableRange(from, to *Item) ([]*Item, error) {
	i, j := a.c.IndexOf(from), a.c.IndexOf(to)
	if i < 0 || j < 0 {
		return nil, fmt.Errorf("range %s..%s outside container: %w", from.ID, to.ID, selection.ErrAdapterContract)
	}
	if i > j {
		i, j = j, i
	}
	var out []*Item
	for _, it := range a.c.items[i : j+1] {
		if a.itemSelectable(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

// FirstSelectable implements selection.Collection.
func (a *Adapter) FirstSelectable() (*Item, bool) {
	for _, it := range a.c.items {
		if a.itemSelectable(it) {
			return it, true
		}
	}
	return nil, false
}

// LastSelectable implements selection.Collection. The scan includes the
// first child.
func (a *Adapter) LastSelectable() (*Item, bool) {
	for i := len(a.c.items) - 1; i >= 0; i-- {
		if it := a.c.items[i]; a.itemSelectable(it) {
			return it, true
		}
	}
	return nil, false
}

// RelatedSelectable implements selection.Collection. Only the relations
// along the container's axis lead anywhere.
func (a *Adapter) RelatedSelectable(item *Item, rel selection.Relation) (*Item, bool) {
	vertical := a.c.orientation == Vertical
	step := 0
	switch {
	case vertical && rel == selection.RelationAbove, !vertical && rel == selection.RelationLeft:
		step = -1
	case vertical && rel == selection.RelationUnder, !vertical && rel == selection.RelationRight:
		step = 1
	default:
		return nil, false
	}
	idx := a.c.IndexOf(item)
	if idx < 0 {
		return nil, false
	}
	for i := idx + step; i >= 0 && i < len(a.c.items); i += step {
		if it := a.c.items[i]; a.itemSelectable(it) {
			return it, true
		}
	}
	return nil, false
}

// Page implements selection.Collection. A container without scrolling
// pages straight to its first or last item.
func (a *Adapter) Page(item *Item, up bool) (*Item, bool, error) {
	if up {
		first, ok := a.FirstSelectable()
		return first, ok, nil
	}
	last, ok := a.LastSelectable()
	return last, ok, nil
}

// Location implements selection.Geometry.
func (a *Adapter) Location() (selection.Rect, bool) { return a.c.Location() }

// Dimension implements selection.Geometry.
func (a *Adapter) Dimension() selection.Size { return a.c.InnerSize() }

// ItemBoundsX implements selection.Geometry.
func (a *Adapter) ItemBoundsX(item *Item) (selection.Span, bool) {
	if !a.c.Contains(item) {
		return selection.Span{}, false
	}
	return selection.Span{Start: item.bounds.Left, End: item.bounds.Right}, true
}

// ItemBoundsY implements selection.Geometry.
func (a *Adapter) ItemBoundsY(item *Item) (selection.Span, bool) {
	if !a.c.Contains(item) {
		return selection.Span{}, false
	}
	return selection.Span{Start: item.bounds.Top, End: item.bounds.Bottom}, true
}

// Scroll implements selection.Geometry.
func (a *Adapter) Scroll() selection.Point { return selection.Point{} }

// ScrollBy implements selection.Geometry.
func (a *Adapter) ScrollBy(dx, dy int) {}

// ScrollItemIntoView implements selection.Geometry.
func (a *Adapter) ScrollItemIntoView(item *Item) {}

// StyleItem implements selection.Host.
func (a *Adapter) StyleItem(item *Item, kind selection.StyleKind, on bool) {
	item.setState(kind, on)
}

// SetUserInteraction implements selection.Host.
func (a *Adapter) SetUserInteraction(on bool) { a.userInteraction = on }

// Capture implements selection.Host.
func (a *Adapter) Capture() { a.c.captured = true }

// ReleaseCapture implements selection.Host.
func (a *Adapter) ReleaseCapture() { a.c.captured = false }
