// Package single tracks exactly one selected item for widgets that show a
// single choice, such as a select box.
package single

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// ErrInvalidItem is returned when an item is not one of the current items
// of the provider.
var ErrInvalidItem = errors.New("item is not one of the provider's items")

// Provider exposes the items a Manager chooses from.
type Provider[T comparable] interface {
	Items() []T
	IsItemSelectable(item T) bool
	IsItemEnabled(item T) bool
}

// Change reports a new selected item. Has flags are false for "none".
type Change[T comparable] struct {
	Old    T
	HasOld bool
	New    T
	HasNew bool
}

// Manager holds the selected item of a Provider.
type Manager[T comparable] struct {
	provider   Provider[T]
	log        zerolog.Logger
	allowEmpty bool

	selected    T
	hasSelected bool

	listeners []func(Change[T])
}

// New returns a Manager that allows an empty selection.
func New[T comparable](provider Provider[T], log zerolog.Logger) *Manager[T] {
	return &Manager[T]{provider: provider, log: log, allowEmpty: true}
}

// Subscribe registers fn for changes of the selected item.
func (m *Manager[T]) Subscribe(fn func(Change[T])) {
	m.listeners = append(m.listeners, fn)
}

// Selected returns the selected item.
func (m *Manager[T]) Selected() (T, bool) { return m.selected, m.hasSelected }

// SetSelected selects item. It fails if item is not one of the
// provider's current items.
func (m *Manager[T]) SetSelected(item T) error {
	if !m.isMember(item) {
		return fmt.Errorf("set selected %v: %w", item, ErrInvalidItem)
	}
	m.set(item, true)
	return nil
}

// ResetSelected clears the selection, or selects the first selectable
// item when empty selection is not allowed.
func (m *Manager[T]) ResetSelected() {
	var zero T
	m.set(zero, false)
}

// IsSelected reports whether item is the selected item.
func (m *Manager[T]) IsSelected(item T) bool {
	return m.hasSelected && m.selected == item
}

// IsSelectionEmpty reports whether no item is selected.
func (m *Manager[T]) IsSelectionEmpty() bool { return !m.hasSelected }

// Selectables returns the selectable items in provider order. Unless all
// is set, disabled items are left out.
func (m *Manager[T]) Selectables(all bool) []T {
	var out []T
	for _, item := range m.provider.Items() {
		if !m.provider.IsItemSelectable(item) {
			continue
		}
		if !all && !m.provider.IsItemEnabled(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// AllowEmptySelection reports whether the Manager may hold no item.
func (m *Manager[T]) AllowEmptySelection() bool { return m.allowEmpty }

// SetAllowEmptySelection changes the empty-selection policy. Disallowing
// it selects the first selectable item if nothing is selected.
func (m *Manager[T]) SetAllowEmptySelection(allow bool) {
	if allow == m.allowEmpty {
		return
	}
	m.allowEmpty = allow
	if !allow {
		m.set(m.selected, m.hasSelected)
	}
}

func (m *Manager[T]) isMember(item T) bool {
	return slices.Contains(m.provider.Items(), item)
}

func (m *Manager[T]) set(item T, has bool) {
	if !has && !m.allowEmpty {
		if first := m.Selectables(true); len(first) > 0 {
			item, has = first[0], true
		}
	}
	if has == m.hasSelected && (!has || item == m.selected) {
		return
	}

	change := Change[T]{Old: m.selected, HasOld: m.hasSelected, New: item, HasNew: has}
	m.selected, m.hasSelected = item, has
	if !has {
		var zero T
		m.selected = zero
	}

	m.log.Debug().Bool("empty", !has).Msg("selected item changed")
	for _, fn := range slices.Clone(m.listeners) {
		fn(change)
	}
}
