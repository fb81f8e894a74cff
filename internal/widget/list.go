package widget

import (
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"selectkit/internal/clock"
	"selectkit/internal/selection"
)

// TypeAheadTimeout is how long typed characters are collected into one
// search string.
const TypeAheadTimeout = time.Second

// List is a scrollable container of items driven by a selection Manager.
type List struct {
	*ScrollArea

	adapter *ScrollAdapter
	sel     *selection.Manager[*Item]
	clock   clock.Clock

	typed     string
	lastTyped time.Time
}

// NewList returns an empty list. opts configure its selection Manager.
func NewList(o Orientation, clk clock.Clock, opts ...selection.Option) *List {
	area := NewScrollArea(o)
	adapter := NewScrollAdapter(area)
	return &List{
		ScrollArea: area,
		adapter:    adapter,
		sel:        selection.New[*Item](adapter, opts...),
		clock:      clk,
	}
}

// Selection returns the list's selection Manager.
func (l *List) Selection() *selection.Manager[*Item] { return l.sel }

// Add appends items and lets the selection react to them.
func (l *List) Add(items ...*Item) {
	l.ScrollArea.Add(items...)
	for _, it := range items {
		l.sel.HandleAddItem(it)
	}
}

// AddLabels appends one new item per label and returns them.
func (l *List) AddLabels(labels ...string) []*Item {
	items := make([]*Item, 0, len(labels))
	for _, label := range labels {
		items = append(items, NewItem(label))
	}
	l.Add(items...)
	return items
}

// Remove detaches item and drops it from the selection.
func (l *List) Remove(item *Item) bool {
	if !l.ScrollArea.Remove(item) {
		return false
	}
	l.ScrollTo(l.scroll)
	l.sel.HandleRemoveItem(item)
	return true
}

// SetItemVisible shows or hides item and lays the list out again.
// A hidden item leaves the selection.
func (l *List) SetItemVisible(item *Item, visible bool) {
	if item.Visible == visible || !l.Contains(item) {
		return
	}
	item.Visible = visible
	l.Layout()
	l.ScrollTo(l.scroll)
	if !visible {
		l.sel.RemoveItem(item)
	}
}

// FindItem returns the enabled visible item whose label starts with
// text, ignoring case. Without a prefix match the best fuzzy match wins.
func (l *List) FindItem(text string) (*Item, bool) {
	if text == "" {
		return nil, false
	}
	candidates := l.adapter.Selectables(false)
	for _, it := range candidates {
		if strings.HasPrefix(strings.ToLower(it.Label), strings.ToLower(text)) {
			return it, true
		}
	}

	labels := make([]string, len(candidates))
	for i, it := range candidates {
		labels[i] = it.Label
	}
	matches := fuzzy.Find(text, labels)
	if len(matches) == 0 {
		return nil, false
	}
	return candidates[matches[0].Index], true
}

// TypeAhead adds r to the search string and selects the matching item.
// Characters typed more than TypeAheadTimeout apart start a new search.
// It only acts in single and one mode.
func (l *List) TypeAhead(r rune) bool {
	mode := l.sel.Mode()
	if mode != selection.ModeSingle && mode != selection.ModeOne {
		return false
	}
	now := l.clock.Now()
	if now.Sub(l.lastTyped) > TypeAheadTimeout {
		l.typed = ""
	}
	l.typed += string(r)
	l.lastTyped = now

	item, ok := l.FindItem(l.typed)
	if !ok {
		return false
	}
	l.sel.SelectItem(item)
	return true
}

// Search returns the pending type-ahead string.
func (l *List) Search() string { return l.typed }

// MouseEvent resolves the screen cell (x, y) to a selection event.
func (l *List) MouseEvent(x, y int, mods selection.Modifiers) selection.MouseEvent[*Item] {
	item, ok := l.ItemAt(x, y)
	return selection.MouseEvent[*Item]{Target: item, HasTarget: ok, X: x, Y: y, Modifiers: mods}
}
