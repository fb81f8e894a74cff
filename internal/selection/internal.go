package selection

func (m *Manager[T]) resolve(key string) (T, bool) {
	if key == "" {
		var zero T
		return zero, false
	}
	return m.adapter.Resolve(key)
}

// interact marks the adapter as processing a user gesture until the
// returned function is called.
func (m *Manager[T]) interact() func() {
	m.adapter.SetUserInteraction(true)
	return func() { m.adapter.SetUserInteraction(false) }
}

func (m *Manager[T]) ctrlPressed(mods Modifiers) bool {
	return mods.Ctrl || (m.metaAsCtrl && mods.Meta)
}

// target returns the event's item if it is selectable.
func (m *Manager[T]) target(ev MouseEvent[T]) (T, bool) {
	if !ev.HasTarget || !m.adapter.IsSelectable(ev.Target) {
		var zero T
		return zero, false
	}
	return ev.Target, true
}

func (m *Manager[T]) setLead(item *T) {
	m.leadKey = m.restyle(m.leadKey, item, StyleLead)
}

func (m *Manager[T]) setAnchor(item *T) {
	m.anchorKey = m.restyle(m.anchorKey, item, StyleAnchor)
}

// restyle moves a lead or anchor marker from the item under oldKey to
// item and returns the new key. A nil item clears the marker.
func (m *Manager[T]) restyle(oldKey string, item *T, kind StyleKind) string {
	newKey := ""
	if item != nil {
		newKey = m.adapter.KeyOf(*item)
	}
	if oldKey == newKey {
		return newKey
	}
	if old, ok := m.resolve(oldKey); ok {
		m.adapter.StyleItem(old, kind, false)
	}
	if item != nil {
		m.adapter.StyleItem(*item, kind, true)
	}
	return newKey
}

// setSelectedItem makes item the only selected item.
func (m *Manager[T]) setSelectedItem(item T) {
	if !m.adapter.IsSelectable(item) {
		return
	}
	key := m.adapter.KeyOf(item)
	if m.selection.len() == 1 && m.selection.has(key) {
		return
	}
	m.clear()
	m.addToSelection(item)
}

func (m *Manager[T]) addToSelection(item T) bool {
	key := m.adapter.KeyOf(item)
	if m.selection.has(key) || !m.adapter.IsSelectable(item) {
		return false
	}
	m.selection.add(key, item)
	m.adapter.StyleItem(item, StyleSelected, true)
	m.modified = true
	return true
}

func (m *Manager[T]) removeFromSelection(item T) bool {
	removed, ok := m.selection.remove(m.adapter.KeyOf(item))
	if !ok {
		return false
	}
	m.adapter.StyleItem(removed, StyleSelected, false)
	m.modified = true
	return true
}

func (m *Manager[T]) toggleInSelection(item T) {
	if !m.removeFromSelection(item) {
		m.addToSelection(item)
	}
}

func (m *Manager[T]) clear() {
	for _, key := range m.selection.keys() {
		item, _ := m.selection.remove(key)
		m.adapter.StyleItem(item, StyleSelected, false)
		m.modified = true
	}
}

func (m *Manager[T]) selectAll() {
	for _, item := range m.adapter.Selectables(false) {
		m.addToSelection(item)
	}
}

// applyRange makes rng the selection. With extend the current selection
// is kept and rng is added to it.
func (m *Manager[T]) applyRange(rng []T, extend bool) {
	if !extend {
		keep := make(map[string]bool, len(rng))
		for _, item := range rng {
			keep[m.adapter.KeyOf(item)] = true
		}
		for _, key := range m.selection.keys() {
			if keep[key] {
				continue
			}
			item, _ := m.selection.remove(key)
			m.adapter.StyleItem(item, StyleSelected, false)
			m.modified = true
		}
	}
	for _, item := range rng {
		m.addToSelection(item)
	}
}

func (m *Manager[T]) deselectRange(rng []T) {
	for _, item := range rng {
		m.removeFromSelection(item)
	}
}

// applyDefaultSelection selects the first selectable item when forced or
// when one mode finds the selection empty.
func (m *Manager[T]) applyDefaultSelection(force bool) (T, bool) {
	if force || (m.mode == ModeOne && m.IsSelectionEmpty()) {
		first, ok := m.adapter.FirstSelectable()
		if ok {
			m.SelectItem(first)
		}
		return first, ok
	}
	var zero T
	return zero, false
}

// fireChange notifies subscribers if the selection was modified since the
// last notification.
func (m *Manager[T]) fireChange(ctx Context) {
	if !m.modified {
		return
	}
	m.modified = false
	m.context = ctx

	change := Change[T]{Old: m.lastFired, New: m.selection.values(), Context: ctx}
	m.lastFired = append([]T(nil), change.New...)

	m.log.Debug().
		Str("mode", string(m.mode)).
		Str("context", string(ctx)).
		Int("selected", len(change.New)).
		Msg("selection changed")

	for _, l := range append([]listener[T](nil), m.listeners...) {
		l.fn(change)
	}
}
