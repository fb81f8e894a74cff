package selection

import (
	"fmt"
	"time"

	"selectkit/internal/clock"
)

// testItem is a one-row entry in a vertical test list.
type testItem struct {
	id      string
	enabled bool
	visible bool
}

// testAdapter is a vertical list where item i occupies row i of the
// content and the frame shows size.Height rows starting at frame.Top.
type testAdapter struct {
	items       []*testItem
	interactive bool
	styles      map[string]map[StyleKind]bool
	captures    int
	releases    int
	captured    bool
	scroll      Point
	frame       Rect
	size        Size
	scrolledTo  []string
}

func newTestAdapter(n int) *testAdapter {
	a := &testAdapter{
		styles: make(map[string]map[StyleKind]bool),
		frame:  Rect{Left: 0, Top: 0, Right: 10, Bottom: n},
		size:   Size{Width: 10, Height: n},
	}
	for i := 0; i < n; i++ {
		a.items = append(a.items, &testItem{id: fmt.Sprintf("item%d", i), enabled: true, visible: true})
	}
	return a
}

func (a *testAdapter) item(i int) *testItem { return a.items[i] }

func (a *testAdapter) index(item *testItem) int {
	for i, it := range a.items {
		if it == item {
			return i
		}
	}
	return -1
}

func (a *testAdapter) itemSelectable(item *testItem) bool {
	if a.interactive {
		return item.visible && item.enabled
	}
	return item.visible
}

func (a *testAdapter) IsSelectable(item *testItem) bool {
	return item != nil && a.index(item) >= 0 && a.itemSelectable(item)
}

func (a *testAdapter) KeyOf(item *testItem) string { return item.id }

func (a *testAdapter) Resolve(key string) (*testItem, bool) {
	for _, it := range a.items {
		if it.id == key {
			return it, true
		}
	}
	return nil, false
}

func (a *testAdapter) Selectables(all bool) []*testItem {
	saved := a.interactive
	if !all {
		a.interactive = true
	}
	defer func() { a.interactive = saved }()

	var out []*testItem
	for _, it := range a.items {
		if a.itemSelectable(it) {
			out = append(out, it)
		}
	}
	return out
}

func (a *testAdapter) SelectableRange(x, y *testItem) ([]*testItem, error) {
	i, j := a.index(x), a.index(y)
	if i < 0 || j < 0 {
		return nil, fmt.Errorf("range endpoint missing: %w", ErrAdapterContract)
	}
	if i > j {
		i, j = j, i
	}
	var out []*testItem
	for _, it := range a.items[i : j+1] {
		if a.itemSelectable(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (a *testAdapter) FirstSelectable() (*testItem, bool) {
	for _, it := range a.items {
		if a.itemSelectable(it) {
			return it, true
		}
	}
	return nil, false
}

func (a *testAdapter) LastSelectable() (*testItem, bool) {
	for i := len(a.items) - 1; i >= 0; i-- {
		if a.itemSelectable(a.items[i]) {
			return a.items[i], true
		}
	}
	return nil, false
}

func (a *testAdapter) RelatedSelectable(item *testItem, rel Relation) (*testItem, bool) {
	idx := a.index(item)
	switch rel {
	case RelationAbove:
		for i := idx - 1; i >= 0; i-- {
			if a.itemSelectable(a.items[i]) {
				return a.items[i], true
			}
		}
	case RelationUnder:
		for i := idx + 1; i < len(a.items); i++ {
			if a.itemSelectable(a.items[i]) {
				return a.items[i], true
			}
		}
	}
	return nil, false
}

func (a *testAdapter) Page(item *testItem, up bool) (*testItem, bool, error) {
	if up {
		first, ok := a.FirstSelectable()
		return first, ok, nil
	}
	last, ok := a.LastSelectable()
	return last, ok, nil
}

func (a *testAdapter) Location() (Rect, bool) { return a.frame, true }
func (a *testAdapter) Dimension() Size        { return a.size }

func (a *testAdapter) ItemBoundsX(item *testItem) (Span, bool) {
	return Span{Start: 0, End: a.size.Width}, a.index(item) >= 0
}

func (a *testAdapter) ItemBoundsY(item *testItem) (Span, bool) {
	i := a.index(item)
	return Span{Start: i, End: i + 1}, i >= 0
}

func (a *testAdapter) Scroll() Point { return a.scroll }

func (a *testAdapter) ScrollBy(dx, dy int) {
	maxY := len(a.items) - a.size.Height
	a.scroll.Y = clamp(a.scroll.Y+dy, 0, max(maxY, 0))
}

func (a *testAdapter) ScrollItemIntoView(item *testItem) {
	a.scrolledTo = append(a.scrolledTo, item.id)
	i := a.index(item)
	if i < a.scroll.Y {
		a.scroll.Y = i
	} else if i >= a.scroll.Y+a.size.Height {
		a.scroll.Y = i - a.size.Height + 1
	}
}

func (a *testAdapter) StyleItem(item *testItem, kind StyleKind, on bool) {
	if a.styles[item.id] == nil {
		a.styles[item.id] = make(map[StyleKind]bool)
	}
	a.styles[item.id][kind] = on
}

func (a *testAdapter) styled(i int, kind StyleKind) bool {
	return a.styles[a.items[i].id][kind]
}

func (a *testAdapter) SetUserInteraction(on bool) { a.interactive = on }

func (a *testAdapter) Capture() {
	a.captures++
	a.captured = true
}

func (a *testAdapter) ReleaseCapture() {
	if a.captured {
		a.releases++
	}
	a.captured = false
}

// fixture bundles a Manager over a testAdapter with recorded changes.
type fixture struct {
	m       *Manager[*testItem]
	a       *testAdapter
	clock   *clock.FakeClock
	changes []Change[*testItem]
}

func newFixture(n int, opts ...Option) *fixture {
	f := &fixture{
		a:     newTestAdapter(n),
		clock: clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	opts = append([]Option{WithScheduler(ClockScheduler{Clock: f.clock}), WithMetaAsCtrl(false)}, opts...)
	f.m = New[*testItem](f.a, opts...)
	f.m.Subscribe(func(c Change[*testItem]) { f.changes = append(f.changes, c) })
	return f
}

func (f *fixture) item(i int) *testItem { return f.a.item(i) }

func (f *fixture) items(idx ...int) []*testItem {
	out := make([]*testItem, 0, len(idx))
	for _, i := range idx {
		out = append(out, f.a.item(i))
	}
	return out
}

func (f *fixture) at(i int, mods Modifiers) MouseEvent[*testItem] {
	return MouseEvent[*testItem]{Target: f.item(i), HasTarget: true, X: 1, Y: i - f.a.scroll.Y, Modifiers: mods}
}

func (f *fixture) pointer(x, y int) MouseEvent[*testItem] {
	return MouseEvent[*testItem]{X: x, Y: y}
}

func (f *fixture) key(k Key, mods Modifiers) bool {
	consumed, err := f.m.HandleKeyPress(KeyEvent{Key: k, Modifiers: mods})
	if err != nil {
		panic(err)
	}
	return consumed
}

func ids(items []*testItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.id)
	}
	return out
}

// detach removes item i from the list without telling the Manager.
func (a *testAdapter) detach(i int) *testItem {
	item := a.items[i]
	a.items = append(a.items[:i:i], a.items[i+1:]...)
	return item
}
