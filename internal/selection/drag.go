package selection

// dragState lives for one captured drag gesture.
type dragState struct {
	capturing bool

	frame       Rect
	frameScroll Point
	startX      int
	startY      int

	mouseX int
	mouseY int

	// Movement direction relative to the start point: -1, 0 or +1.
	dirX int
	dirY int

	// Distance of the pointer outside the frame, used as the auto-scroll
	// step. Zero while the pointer is inside.
	stepX int
	stepY int

	lastRelX int
	lastRelY int
	hasRel   bool

	ticker Ticker
}

func (m *Manager[T]) beginDrag(ev MouseEvent[T]) {
	frame, ok := m.adapter.Location()
	if !ok {
		m.log.Debug().Msg("drag not started: container has no location")
		return
	}
	scroll := m.adapter.Scroll()
	m.dragState = dragState{
		capturing:   true,
		frame:       frame,
		frameScroll: scroll,
		startX:      ev.X + scroll.X,
		startY:      ev.Y + scroll.Y,
		mouseX:      ev.X,
		mouseY:      ev.Y,
	}
	m.adapter.Capture()
}

// track records a new pointer position and derives direction and
// auto-scroll step from it.
func (d *dragState) track(x, y int) {
	d.mouseX, d.mouseY = x, y
	d.dirX = sign(x + d.frameScroll.X - d.startX)
	d.dirY = sign(y + d.frameScroll.Y - d.startY)
	d.stepX = overflow(x, d.frame.Left, d.frame.Right)
	d.stepY = overflow(y, d.frame.Top, d.frame.Bottom)
}

// onInterval is the auto-scroll tick: scroll by the current step, then
// select against the new content position.
func (m *Manager[T]) onInterval() {
	if !m.dragState.capturing {
		return
	}
	defer m.interact()()

	m.adapter.ScrollBy(m.dragState.stepX, m.dragState.stepY)
	m.dragState.frameScroll = m.adapter.Scroll()
	if err := m.autoSelect(); err != nil {
		m.log.Error().Err(err).Msg("auto-scroll selection failed")
	}
}

// autoSelect walks from the anchor toward the pointer and selects the
// range the pointer has reached.
func (m *Manager[T]) autoSelect() error {
	if m.mode.singular() {
		return nil
	}
	d := &m.dragState
	inner := m.adapter.Dimension()
	relX := clamp(d.mouseX-d.frame.Left, 0, max(inner.Width-1, 0)) + d.frameScroll.X
	relY := clamp(d.mouseY-d.frame.Top, 0, max(inner.Height-1, 0)) + d.frameScroll.Y
	if d.hasRel && d.lastRelX == relX && d.lastRelY == relY {
		return nil
	}
	d.lastRelX, d.lastRelY, d.hasRel = relX, relY, true

	anchor, ok := m.AnchorItem()
	if !ok {
		return nil
	}
	lead := anchor
	if d.dirX != 0 {
		lead = m.walk(lead, d.dirX, RelationLeft, RelationRight, m.adapter.ItemBoundsX, relX)
	}
	if d.dirY != 0 {
		lead = m.walk(lead, d.dirY, RelationAbove, RelationUnder, m.adapter.ItemBoundsY, relY)
	}

	rng, err := m.adapter.SelectableRange(anchor, lead)
	if err != nil {
		return err
	}
	switch m.mode {
	case ModeMulti:
		m.applyRange(rng, false)
		m.setLead(&lead)
	case ModeAdditive:
		if m.IsItemSelected(anchor) {
			m.applyRange(rng, true)
		} else {
			m.deselectRange(rng)
		}
		m.setAnchor(&lead)
		m.setLead(&lead)
	}
	m.fireChange(ContextDrag)
	return nil
}

// walk steps from item to adjacent selectables in direction dir for as
// long as the pointer at rel has reached the neighbour's leading edge.
func (m *Manager[T]) walk(item T, dir int, back, forward Relation, bounds func(T) (Span, bool), rel int) T {
	rel0 := back
	if dir > 0 {
		rel0 = forward
	}
	for {
		next, ok := m.adapter.RelatedSelectable(item, rel0)
		if !ok {
			return item
		}
		span, ok := bounds(next)
		if !ok {
			return item
		}
		if (dir > 0 && span.Start <= rel) || (dir < 0 && span.End > rel) {
			item = next
			continue
		}
		return item
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func overflow(v, lo, hi int) int {
	switch {
	case v < lo:
		return v - lo
	case v >= hi:
		return v - hi + 1
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
