package widget

import (
	"slices"

	"github.com/charmbracelet/lipgloss"

	"selectkit/internal/selection"
)

// Orientation is the axis along which a container lays out its items.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// ParseOrientation maps "vertical" and "horizontal" to an Orientation.
// Anything else is vertical.
func ParseOrientation(s string) Orientation {
	if s == "horizontal" {
		return Horizontal
	}
	return Vertical
}

// Gap is the number of cells between items of a horizontal container.
const Gap = 2

// Container is an ordered set of items placed on screen.
type Container struct {
	items       []*Item
	orientation Orientation

	location    selection.Rect
	hasLocation bool

	captured bool
}

// NewContainer returns an empty container.
func NewContainer(o Orientation) *Container {
	return &Container{orientation: o}
}

// Orientation returns the layout axis.
func (c *Container) Orientation() Orientation { return c.orientation }

// Items returns the children in order.
func (c *Container) Items() []*Item { return c.items }

// IndexOf returns the position of item, or -1.
func (c *Container) IndexOf(item *Item) int { return slices.Index(c.items, item) }

// Contains reports whether item is a child of c.
func (c *Container) Contains(item *Item) bool {
	return item != nil && item.parent == c
}

// ItemByID looks up a child by its ID.
func (c *Container) ItemByID(id string) (*Item, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// Add appends items and lays them out.
func (c *Container) Add(items ...*Item) {
	for _, it := range items {
		if it.parent != nil {
			it.parent.detach(it)
		}
		it.parent = c
		c.items = append(c.items, it)
	}
	c.Layout()
}

// Remove detaches item. It reports false if item is not a child.
func (c *Container) Remove(item *Item) bool {
	if !c.Contains(item) {
		return false
	}
	c.detach(item)
	c.Layout()
	return true
}

func (c *Container) detach(item *Item) {
	if i := c.IndexOf(item); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}
	item.parent = nil
	item.clearStates()
}

// SetLocation places the container's content frame on screen.
func (c *Container) SetLocation(r selection.Rect) {
	c.location, c.hasLocation = r, true
	c.Layout()
}

// Location returns the screen frame, if the container has been placed.
func (c *Container) Location() (selection.Rect, bool) { return c.location, c.hasLocation }

// InnerSize is the size of the screen frame.
func (c *Container) InnerSize() selection.Size {
	return selection.Size{
		Width:  c.location.Right - c.location.Left,
		Height: c.location.Bottom - c.location.Top,
	}
}

// Layout assigns every item its content rectangle. Vertical containers
// stack one-row items; horizontal ones put labels side by side.
// Hidden items take no space.
func (c *Container) Layout() {
	width := max(c.InnerSize().Width, 1)
	pos := 0
	for _, it := range c.items {
		switch {
		case c.orientation == Vertical && it.Visible:
			it.bounds = selection.Rect{Left: 0, Top: pos, Right: width, Bottom: pos + 1}
			pos++
		case c.orientation == Vertical:
			it.bounds = selection.Rect{Left: 0, Top: pos, Right: width, Bottom: pos}
		case it.Visible:
			w := max(lipgloss.Width(it.Label), 1)
			it.bounds = selection.Rect{Left: pos, Top: 0, Right: pos + w, Bottom: 1}
			pos += w + Gap
		default:
			it.bounds = selection.Rect{Left: pos, Top: 0, Right: pos, Bottom: 0}
		}
	}
}

// ContentSize is the extent of the laid out items.
func (c *Container) ContentSize() selection.Size {
	var s selection.Size
	for _, it := range c.items {
		s.Width = max(s.Width, it.bounds.Right)
		s.Height = max(s.Height, it.bounds.Bottom)
	}
	return s
}

// Captured reports whether the container holds pointer capture.
func (c *Container) Captured() bool { return c.captured }
