package selection

import "fmt"

// HandleMouseOver implements quick selection: in single and one mode with
// Quick enabled, hovering an item selects it.
func (m *Manager[T]) HandleMouseOver(ev MouseEvent[T]) error {
	// Scrolling by keyboard moves content under a resting pointer, which
	// hosts report as a hover. Ignore that one.
	if m.oldScrollTop != nil {
		moved := *m.oldScrollTop != m.adapter.Scroll().Y
		m.oldScrollTop = nil
		if moved {
			return nil
		}
	}
	if !m.quick || !m.mode.singular() {
		return nil
	}
	defer m.interact()()

	item, ok := m.target(ev)
	if !ok {
		return nil
	}
	m.setSelectedItem(item)
	m.fireChange(ContextQuick)
	return nil
}

// HandleMouseDown applies the click protocol for the current mode and,
// with Drag enabled in multi or additive mode, starts a drag gesture.
func (m *Manager[T]) HandleMouseDown(ev MouseEvent[T]) error {
	defer m.interact()()

	item, ok := m.target(ev)
	if !ok {
		return nil
	}
	ctrl, shift := m.ctrlPressed(ev.Modifiers), ev.Shift

	// A plain click on a selected item acts on release so that the
	// press can still turn into something else.
	if m.IsItemSelected(item) && !shift && !ctrl && !m.drag {
		m.pendingKey = m.adapter.KeyOf(item)
		return nil
	}
	m.pendingKey = ""

	var rng []T
	if m.mode == ModeMulti && shift {
		anchor, hasAnchor := m.AnchorItem()
		if !hasAnchor {
			var ok bool
			if anchor, ok = m.adapter.FirstSelectable(); !ok {
				return fmt.Errorf("shift click without anchor: no first selectable: %w", ErrAdapterContract)
			}
		}
		var err error
		if rng, err = m.adapter.SelectableRange(anchor, item); err != nil {
			return fmt.Errorf("shift click: %w", err)
		}
		if !hasAnchor {
			m.setAnchor(&anchor)
		}
	}

	m.adapter.ScrollItemIntoView(item)

	switch m.mode {
	case ModeSingle, ModeOne:
		m.setSelectedItem(item)
	case ModeAdditive:
		m.setLead(&item)
		m.setAnchor(&item)
		m.toggleInSelection(item)
	case ModeMulti:
		m.setLead(&item)
		switch {
		case shift:
			m.applyRange(rng, ctrl)
		case ctrl:
			m.setAnchor(&item)
			m.toggleInSelection(item)
		default:
			m.setAnchor(&item)
			m.setSelectedItem(item)
		}
	}

	if m.drag && !m.mode.singular() && !shift && !ctrl {
		m.beginDrag(ev)
	}
	m.fireChange(ContextClick)
	return nil
}

// HandleMouseMove drives an active drag gesture. It does nothing unless
// the Manager holds capture; hosts should stop propagating the event
// while Capturing reports true.
func (m *Manager[T]) HandleMouseMove(ev MouseEvent[T]) error {
	if !m.dragState.capturing {
		return nil
	}
	defer m.interact()()

	m.dragState.track(ev.X, ev.Y)
	if m.dragState.ticker == nil {
		m.dragState.ticker = m.sched.Every(m.interval, m.onInterval)
	}
	return m.autoSelect()
}

// HandleMouseUp completes a click deferred by HandleMouseDown and ends
// any drag gesture.
func (m *Manager[T]) HandleMouseUp(ev MouseEvent[T]) error {
	defer m.interact()()

	ctrl, shift := m.ctrlPressed(ev.Modifiers), ev.Shift
	if !ctrl && !shift && m.pendingKey != "" {
		item, ok := m.target(ev)
		if ok && m.adapter.KeyOf(item) == m.pendingKey && m.IsItemSelected(item) {
			if m.mode == ModeAdditive {
				m.removeFromSelection(item)
			} else {
				m.setSelectedItem(item)
				if m.mode == ModeMulti {
					m.setLead(&item)
					m.setAnchor(&item)
				}
			}
		}
	}
	m.pendingKey = ""
	m.cleanup()
	return nil
}

// HandleLoseCapture ends a drag gesture when the host takes capture away.
func (m *Manager[T]) HandleLoseCapture() {
	m.pendingKey = ""
	m.cleanup()
}

// cleanup finishes a gesture: pending changes are announced, capture is
// released and the auto-scroll task stops.
func (m *Manager[T]) cleanup() {
	m.fireChange(ContextClick)
	if m.dragState.capturing {
		m.dragState.capturing = false
		m.adapter.ReleaseCapture()
	}
	if m.dragState.ticker != nil {
		m.dragState.ticker.Stop()
	}
	m.dragState = dragState{}
}
