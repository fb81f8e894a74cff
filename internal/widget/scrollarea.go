package widget

import (
	"fmt"

	"selectkit/internal/selection"
)

// ScrollArea is a Container whose content can be larger than its frame.
// The frame shows the content starting at the scroll offset.
type ScrollArea struct {
	*Container
	scroll selection.Point
}

// NewScrollArea returns an empty scroll area.
func NewScrollArea(o Orientation) *ScrollArea {
	return &ScrollArea{Container: NewContainer(o)}
}

// ScrollPosition returns the current scroll offset.
func (s *ScrollArea) ScrollPosition() selection.Point { return s.scroll }

// MaxScroll is the largest offset that still fills the frame.
func (s *ScrollArea) MaxScroll() selection.Point {
	content, inner := s.ContentSize(), s.InnerSize()
	return selection.Point{
		X: max(content.Width-inner.Width, 0),
		Y: max(content.Height-inner.Height, 0),
	}
}

// ScrollTo moves to p, clamped to the scrollable range.
func (s *ScrollArea) ScrollTo(p selection.Point) {
	limit := s.MaxScroll()
	s.scroll = selection.Point{
		X: min(max(p.X, 0), limit.X),
		Y: min(max(p.Y, 0), limit.Y),
	}
}

// ScrollBy moves the offset by dx, dy.
func (s *ScrollArea) ScrollBy(dx, dy int) {
	s.ScrollTo(selection.Point{X: s.scroll.X + dx, Y: s.scroll.Y + dy})
}

// ScrollChildIntoView scrolls the least distance that makes item fully
// visible, or aligns its start edge if it is larger than the frame.
func (s *ScrollArea) ScrollChildIntoView(item *Item) {
	if !s.Contains(item) {
		return
	}
	inner := s.InnerSize()
	b := item.bounds
	s.ScrollTo(selection.Point{
		X: intoView(s.scroll.X, inner.Width, b.Left, b.Right),
		Y: intoView(s.scroll.Y, inner.Height, b.Top, b.Bottom),
	})
}

func intoView(offset, size, start, end int) int {
	switch {
	case start < offset:
		return start
	case end > offset+size:
		return max(end-size, 0)
	}
	return offset
}

// ItemTop is the top edge of item in content coordinates.
func (s *ScrollArea) ItemTop(item *Item) int { return item.bounds.Top }

// ItemBottom is the exclusive bottom edge of item in content coordinates.
func (s *ScrollArea) ItemBottom(item *Item) int { return item.bounds.Bottom }

// ItemAt returns the visible item under the screen cell (x, y).
func (s *ScrollArea) ItemAt(x, y int) (*Item, bool) {
	loc, ok := s.Location()
	if !ok || x < loc.Left || x >= loc.Right || y < loc.Top || y >= loc.Bottom {
		return nil, false
	}
	cx, cy := x-loc.Left+s.scroll.X, y-loc.Top+s.scroll.Y
	for _, it := range s.items {
		b := it.bounds
		if it.Visible && cx >= b.Left && cx < b.Right && cy >= b.Top && cy < b.Bottom {
			return it, true
		}
	}
	return nil, false
}

// ScrollAdapter connects a ScrollArea to the selection engine. It adds
// scrolling and viewport-aware paging to Adapter.
type ScrollAdapter struct {
	*Adapter
	area *ScrollArea
}

var _ selection.Adapter[*Item] = (*ScrollAdapter)(nil)

// NewScrollAdapter returns a ScrollAdapter over area.
func NewScrollAdapter(area *ScrollArea) *ScrollAdapter {
	return &ScrollAdapter{Adapter: NewAdapter(area.Container), area: area}
}

// Scroll implements selection.Geometry.
func (a *ScrollAdapter) Scroll() selection.Point { return a.area.scroll }

// ScrollBy implements selection.Geometry.
func (a *ScrollAdapter) ScrollBy(dx, dy int) { a.area.ScrollBy(dx, dy) }

// ScrollItemIntoView implements selection.Geometry.
func (a *ScrollAdapter) ScrollItemIntoView(item *Item) { a.area.ScrollChildIntoView(item) }

// Page implements selection.Collection. Paging down moves to the last
// item that is fully visible below item; if item already is that one the
// view is advanced by the distance from the viewport top to item, so the
// old lead stays visible. Paging up mirrors this. At the edge of the
// list, when item already is the first or last selectable, ok is false.
func (a *ScrollAdapter) Page(item *Item, up bool) (*Item, bool, error) {
	selectables := a.Selectables(false)
	start := -1
	for i, it := range selectables {
		if it == item {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, false, fmt.Errorf("page from %s: not a selectable item: %w", item.ID, selection.ErrAdapterContract)
	}

	top := a.area.scroll.Y
	height := a.area.InnerSize().Height

	if up {
		limit := top
		i := start
		for {
			found, hit := 0, false
			for ; i >= 0; i-- {
				if a.area.ItemTop(selectables[i]) < limit {
					found, hit = i+1, true
					break
				}
			}
			if !hit {
				first, ok := a.FirstSelectable()
				if !ok || first == item {
					return nil, false, nil
				}
				return first, true, nil
			}
			if found >= start {
				limit -= max(height+top-a.area.ItemBottom(item), 1)
				continue
			}
			return selectables[found], true, nil
		}
	}

	limit := top + height
	i := start
	for {
		found, hit := 0, false
		for ; i < len(selectables); i++ {
			if a.area.ItemBottom(selectables[i]) > limit {
				found, hit = i-1, true
				break
			}
		}
		if !hit {
			last, ok := a.LastSelectable()
			if !ok || last == item {
				return nil, false, nil
			}
			return last, true, nil
		}
		if found <= start {
			limit += max(a.area.ItemTop(item)-top, 1)
			continue
		}
		return selectables[found], true, nil
	}
}
