package selection

import (
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"selectkit/internal/clock"
)

// Manager is the selection state machine for one container. It owns the
// selection set and the lead and anchor references; hosts mutate them
// only through its methods.
type Manager[T any] struct {
	adapter Adapter[T]
	sched   Scheduler
	log     zerolog.Logger

	mode       Mode
	drag       bool
	quick      bool
	metaAsCtrl bool
	interval   time.Duration

	selection *itemSet[T]
	leadKey   string
	anchorKey string
	modified  bool
	context   Context
	lastFired []T

	listeners []listener[T]
	nextID    int

	// Mouse-down on an already selected item defers to mouse-up.
	pendingKey string

	// Scroll offset recorded by keyboard navigation; the next hover is
	// ignored if scrolling moved the content under a still pointer.
	oldScrollTop *int

	dragState dragState
}

type listener[T any] struct {
	id int
	fn func(Change[T])
}

// Option configures a Manager.
type Option func(*options)

type options struct {
	mode       Mode
	drag       bool
	quick      bool
	metaAsCtrl bool
	interval   time.Duration
	sched      Scheduler
	log        zerolog.Logger
}

// WithMode sets the initial mode. The default is ModeSingle.
func WithMode(m Mode) Option { return func(o *options) { o.mode = m } }

// WithDrag enables rubber-band drag selection in multi and additive mode.
func WithDrag(on bool) Option { return func(o *options) { o.drag = on } }

// WithQuick enables hover selection in single and one mode.
func WithQuick(on bool) Option { return func(o *options) { o.quick = on } }

// WithMetaAsCtrl treats the Meta key as Ctrl. Defaults to true on macOS.
func WithMetaAsCtrl(on bool) Option { return func(o *options) { o.metaAsCtrl = on } }

// WithScheduler sets the scheduler for drag auto-scroll.
func WithScheduler(s Scheduler) Option { return func(o *options) { o.sched = s } }

// WithAutoScrollInterval sets the drag auto-scroll period.
func WithAutoScrollInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.log = l } }

// New creates a Manager over adapter. The adapter is required; a nil
// adapter is a programming error and panics.
func New[T any](adapter Adapter[T], opts ...Option) *Manager[T] {
	if adapter == nil {
		panic("selection: nil adapter")
	}
	o := options{
		mode:       ModeSingle,
		metaAsCtrl: runtime.GOOS == "darwin",
		interval:   DefaultAutoScrollInterval,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.interval <= 0 {
		o.interval = DefaultAutoScrollInterval
	}
	if o.sched == nil {
		o.sched = ClockScheduler{Clock: clock.Real()}
	}

	m := &Manager[T]{
		adapter:    adapter,
		sched:      o.sched,
		log:        o.log,
		mode:       o.mode,
		drag:       o.drag,
		quick:      o.quick,
		metaAsCtrl: o.metaAsCtrl,
		interval:   o.interval,
		selection:  newItemSet[T](),
	}
	if m.mode == ModeOne {
		m.applyDefaultSelection(true)
	}
	return m
}

// Mode returns the current mode.
func (m *Manager[T]) Mode() Mode { return m.mode }

// SetMode switches the mode. Selection, lead and anchor are cleared; in
// one mode the first selectable item is selected.
func (m *Manager[T]) SetMode(mode Mode) {
	if mode == m.mode {
		return
	}
	m.log.Debug().Str("from", string(m.mode)).Str("to", string(mode)).Msg("selection mode changed")
	m.mode = mode
	m.setLead(nil)
	m.setAnchor(nil)
	m.clear()
	if mode == ModeOne {
		m.applyDefaultSelection(true)
	}
	m.fireChange(ContextNone)
}

// Drag reports whether drag selection is enabled.
func (m *Manager[T]) Drag() bool { return m.drag }

// SetDrag enables or disables drag selection.
func (m *Manager[T]) SetDrag(on bool) { m.drag = on }

// Quick reports whether hover selection is enabled.
func (m *Manager[T]) Quick() bool { return m.quick }

// SetQuick enables or disables hover selection.
func (m *Manager[T]) SetQuick(on bool) { m.quick = on }

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (m *Manager[T]) Subscribe(fn func(Change[T])) func() {
	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, listener[T]{id: id, fn: fn})
	return func() {
		for i, l := range m.listeners {
			if l.id == id {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// SelectAll selects every selectable item.
func (m *Manager[T]) SelectAll() error {
	if m.mode.singular() {
		return fmt.Errorf("select all in %s mode: %w", m.mode, ErrInvalidMode)
	}
	m.selectAll()
	m.fireChange(ContextNone)
	return nil
}

// SelectItem replaces the selection with item. Outside single and one
// mode lead and anchor move to item as well.
func (m *Manager[T]) SelectItem(item T) {
	m.setSelectedItem(item)
	if !m.mode.singular() {
		m.setLead(&item)
		m.setAnchor(&item)
	}
	m.adapter.ScrollItemIntoView(item)
	m.fireChange(ContextNone)
}

// AddItem adds item to the selection. In single and one mode this
// replaces the selection.
func (m *Manager[T]) AddItem(item T) {
	if m.mode.singular() {
		m.setSelectedItem(item)
	} else {
		if _, ok := m.AnchorItem(); !ok {
			m.setAnchor(&item)
		}
		m.setLead(&item)
		m.addToSelection(item)
	}
	m.adapter.ScrollItemIntoView(item)
	m.fireChange(ContextNone)
}

// RemoveItem removes item from the selection and drops lead and anchor
// references to it. In one mode an emptied selection falls back to the
// first selectable item; if that is item itself nothing changed and no
// notification is sent.
func (m *Manager[T]) RemoveItem(item T) {
	key := m.adapter.KeyOf(item)
	removed := m.removeFromSelection(item)

	if m.mode == ModeOne && m.selection.len() == 0 {
		if first, ok := m.adapter.FirstSelectable(); ok {
			if removed && m.adapter.KeyOf(first) == key {
				m.addToSelection(item)
				m.modified = false
				return
			}
			m.setSelectedItem(first)
			m.adapter.ScrollItemIntoView(first)
		}
	}

	if m.leadKey == key {
		m.setLead(nil)
	}
	if m.anchorKey == key {
		m.setAnchor(nil)
	}
	m.fireChange(ContextNone)
}

// SelectItemRange replaces the selection with the items between begin
// and end. Anchor becomes begin and lead becomes end.
func (m *Manager[T]) SelectItemRange(begin, end T) error {
	if m.mode.singular() {
		return fmt.Errorf("select range in %s mode: %w", m.mode, ErrInvalidMode)
	}
	rng, err := m.adapter.SelectableRange(begin, end)
	if err != nil {
		return fmt.Errorf("select range: %w", err)
	}
	m.applyRange(rng, false)
	m.setAnchor(&begin)
	m.setLead(&end)
	m.adapter.ScrollItemIntoView(end)
	m.fireChange(ContextNone)
	return nil
}

// ClearSelection empties the selection. In one mode the first selectable
// item is selected instead, unless there is none.
func (m *Manager[T]) ClearSelection() {
	if m.mode == ModeOne {
		if _, ok := m.applyDefaultSelection(true); ok {
			return
		}
	}
	m.clear()
	m.setLead(nil)
	m.setAnchor(nil)
	m.fireChange(ContextNone)
}

// ReplaceSelection makes the selectable ones among items the selection.
// Items already selected stay untouched; lead and anchor move to the
// first accepted item.
func (m *Manager[T]) ReplaceSelection(items []T) error {
	if m.mode.singular() {
		switch len(items) {
		case 0:
			m.ClearSelection()
		case 1:
			m.SelectItem(items[0])
		default:
			return fmt.Errorf("replace selection with %d items in %s mode: %w", len(items), m.mode, ErrInvalidMode)
		}
		return nil
	}

	incoming := newItemSet[T]()
	var accepted []T
	for _, item := range items {
		if !m.adapter.IsSelectable(item) {
			continue
		}
		if incoming.add(m.adapter.KeyOf(item), item) {
			accepted = append(accepted, item)
		}
	}
	for _, key := range m.selection.keys() {
		if incoming.has(key) {
			incoming.remove(key)
			continue
		}
		item, _ := m.selection.remove(key)
		m.adapter.StyleItem(item, StyleSelected, false)
		m.modified = true
	}
	for _, item := range incoming.values() {
		m.selection.add(m.adapter.KeyOf(item), item)
		m.adapter.StyleItem(item, StyleSelected, true)
		m.modified = true
	}
	if !m.modified {
		return nil
	}

	if len(accepted) == 0 {
		m.setLead(nil)
		m.setAnchor(nil)
	} else {
		first, last := accepted[0], accepted[len(accepted)-1]
		m.adapter.ScrollItemIntoView(last)
		m.setLead(&first)
		m.setAnchor(&first)
	}
	m.fireChange(ContextNone)
	return nil
}

// SelectedItem returns the selected item in single and one mode.
func (m *Manager[T]) SelectedItem() (T, bool, error) {
	if !m.mode.singular() {
		var zero T
		return zero, false, fmt.Errorf("selected item in %s mode: %w", m.mode, ErrInvalidMode)
	}
	item, ok := m.selection.first()
	return item, ok, nil
}

// Selection returns the selected items. The order carries no meaning.
func (m *Manager[T]) Selection() []T {
	return m.selection.values()
}

// SortedSelection returns the selected items in container order.
func (m *Manager[T]) SortedSelection() []T {
	order := make(map[string]int)
	for i, item := range m.adapter.Selectables(true) {
		order[m.adapter.KeyOf(item)] = i
	}
	keys := m.selection.keys()
	rank := func(k string) int {
		if i, ok := order[k]; ok {
			return i
		}
		return len(order)
	}
	slices.SortStableFunc(keys, func(a, b string) int { return rank(a) - rank(b) })

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.selection.items[k])
	}
	return out
}

// IsItemSelected reports whether item is in the selection.
func (m *Manager[T]) IsItemSelected(item T) bool {
	return m.selection.has(m.adapter.KeyOf(item))
}

// IsSelectionEmpty reports whether nothing is selected.
func (m *Manager[T]) IsSelectionEmpty() bool {
	return m.selection.len() == 0
}

// InvertSelection toggles every selectable item.
func (m *Manager[T]) InvertSelection() error {
	if m.mode.singular() {
		return fmt.Errorf("invert selection in %s mode: %w", m.mode, ErrInvalidMode)
	}
	for _, item := range m.adapter.Selectables(false) {
		m.toggleInSelection(item)
	}
	m.fireChange(ContextNone)
	return nil
}

// LeadItem returns the most recently touched item.
func (m *Manager[T]) LeadItem() (T, bool) { return m.resolve(m.leadKey) }

// SetLeadItem moves the lead to item.
func (m *Manager[T]) SetLeadItem(item T) { m.setLead(&item) }

// AnchorItem returns the start of the next range operation.
func (m *Manager[T]) AnchorItem() (T, bool) { return m.resolve(m.anchorKey) }

// SetAnchorItem moves the anchor to item.
func (m *Manager[T]) SetAnchorItem(item T) { m.setAnchor(&item) }

// SelectionContext returns the gesture that produced the last change.
func (m *Manager[T]) SelectionContext() Context { return m.context }

// HandleAddItem is called by the container after item was added. In one
// mode an empty selection picks the new item up.
func (m *Manager[T]) HandleAddItem(item T) {
	if m.mode == ModeOne && m.IsSelectionEmpty() {
		m.AddItem(item)
	}
}

// HandleRemoveItem is called by the container after item was detached.
func (m *Manager[T]) HandleRemoveItem(item T) {
	m.RemoveItem(item)
}

// Capturing reports whether a drag gesture currently holds capture.
func (m *Manager[T]) Capturing() bool { return m.dragState.capturing }
