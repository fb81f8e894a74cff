package selection

import "fmt"

// HandleKeyPress applies the keyboard protocol. consumed reports whether
// the key was handled; unhandled keys should propagate to the host.
func (m *Manager[T]) HandleKeyPress(ev KeyEvent) (consumed bool, err error) {
	defer m.interact()()

	ctrl, shift := m.ctrlPressed(ev.Modifiers), ev.Shift

	switch {
	case ev.Key == KeyA && ctrl:
		if !m.mode.singular() {
			m.selectAll()
			consumed = true
		}

	case ev.Key == KeyEscape:
		if !m.mode.singular() {
			m.clear()
			consumed = true
		}

	case ev.Key == KeySpace:
		if lead, ok := m.LeadItem(); ok && !shift {
			if ctrl || m.mode == ModeAdditive {
				m.toggleInSelection(lead)
			} else {
				m.setSelectedItem(lead)
			}
			consumed = true
		}

	case ev.Key.navigation():
		consumed = true
		if err := m.navigate(ev.Key, ctrl, shift); err != nil {
			return true, err
		}
	}

	if consumed {
		m.fireChange(ContextKey)
	}
	return consumed, nil
}

// navigate moves lead and selection for a navigation key.
func (m *Manager[T]) navigate(key Key, ctrl, shift bool) error {
	var current T
	var ok bool
	if m.mode.singular() {
		current, ok = m.selection.first()
	} else {
		current, ok = m.LeadItem()
	}

	next, ok, err := m.navigationTarget(key, current, ok)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	switch m.mode {
	case ModeSingle, ModeOne:
		m.setSelectedItem(next)
	case ModeAdditive:
		m.setLead(&next)
	case ModeMulti:
		if shift {
			anchor, ok := m.AnchorItem()
			if !ok {
				if anchor, ok = m.adapter.FirstSelectable(); !ok {
					return fmt.Errorf("shift navigation without anchor: no first selectable: %w", ErrAdapterContract)
				}
			}
			rng, err := m.adapter.SelectableRange(anchor, next)
			if err != nil {
				return fmt.Errorf("shift navigation: %w", err)
			}
			m.setAnchor(&anchor)
			m.setLead(&next)
			m.applyRange(rng, ctrl)
		} else {
			m.setAnchor(&next)
			m.setLead(&next)
			if !ctrl {
				m.setSelectedItem(next)
			}
		}
	}

	top := m.adapter.Scroll().Y
	m.oldScrollTop = &top
	m.adapter.ScrollItemIntoView(next)
	return nil
}

// navigationTarget resolves the item a navigation key moves to. Without a
// current item, keys pointing forward start at the first selectable item
// and keys pointing backward at the last.
func (m *Manager[T]) navigationTarget(key Key, current T, hasCurrent bool) (T, bool, error) {
	if !hasCurrent {
		switch key {
		case KeyHome, KeyDown, KeyRight, KeyPageDown:
			next, ok := m.adapter.FirstSelectable()
			return next, ok, nil
		default:
			next, ok := m.adapter.LastSelectable()
			return next, ok, nil
		}
	}

	var next T
	var ok bool
	switch key {
	case KeyHome:
		next, ok = m.adapter.FirstSelectable()
	case KeyEnd:
		next, ok = m.adapter.LastSelectable()
	case KeyUp:
		next, ok = m.adapter.RelatedSelectable(current, RelationAbove)
	case KeyDown:
		next, ok = m.adapter.RelatedSelectable(current, RelationUnder)
	case KeyLeft:
		next, ok = m.adapter.RelatedSelectable(current, RelationLeft)
	case KeyRight:
		next, ok = m.adapter.RelatedSelectable(current, RelationRight)
	case KeyPageUp, KeyPageDown:
		var err error
		next, ok, err = m.adapter.Page(current, key == KeyPageUp)
		if err != nil {
			return next, false, fmt.Errorf("page from current item: %w", err)
		}
	}
	return next, ok, nil
}
