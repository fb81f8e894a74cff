package selection

import (
	"fmt"
	"strings"
)

// Mode is the selection cardinality and interaction policy.
type Mode string

const (
	// ModeSingle allows at most one selected item.
	ModeSingle Mode = "single"
	// ModeMulti allows ranges (Shift) and discontinuous picks (Ctrl).
	ModeMulti Mode = "multi"
	// ModeAdditive toggles items on click without modifier keys.
	ModeAdditive Mode = "additive"
	// ModeOne keeps exactly one item selected whenever one is selectable.
	ModeOne Mode = "one"
)

// Modes lists every mode in cycling order.
var Modes = []Mode{ModeSingle, ModeMulti, ModeAdditive, ModeOne}

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeSingle, ModeMulti, ModeAdditive, ModeOne:
		return m, nil
	}
	return "", fmt.Errorf("unknown selection mode %q: %w", s, ErrInvalidMode)
}

// singular reports whether the mode holds at most one item.
func (m Mode) singular() bool {
	return m == ModeSingle || m == ModeOne
}

// Context tags the gesture that produced the last change.
type Context string

const (
	ContextNone  Context = ""
	ContextClick Context = "click"
	ContextQuick Context = "quick"
	ContextDrag  Context = "drag"
	ContextKey   Context = "key"
)

// StyleKind names a visual state the engine toggles on items.
type StyleKind string

const (
	StyleSelected StyleKind = "selected"
	StyleLead     StyleKind = "lead"
	StyleAnchor   StyleKind = "anchor"
)

// Relation is a direction for adjacency queries.
type Relation string

const (
	RelationAbove Relation = "above"
	RelationUnder Relation = "under"
	RelationLeft  Relation = "left"
	RelationRight Relation = "right"
)

// Point is a position or scroll offset in cells.
type Point struct {
	X, Y int
}

// Size is a width/height pair in cells.
type Size struct {
	Width, Height int
}

// Rect is a screen rectangle. Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Span is an item extent along one axis: left/right or top/bottom.
// End is exclusive.
type Span struct {
	Start, End int
}

// Modifiers is the modifier key state of an input event.
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Meta  bool
}

// MouseEvent is a pointer event already resolved to its target item.
// X and Y are screen coordinates.
type MouseEvent[T any] struct {
	Target    T
	HasTarget bool
	X, Y      int
	Modifiers
}

// Key identifies a key press the engine understands.
type Key string

const (
	KeyA        Key = "A"
	KeyEscape   Key = "Escape"
	KeySpace    Key = "Space"
	KeyHome     Key = "Home"
	KeyEnd      Key = "End"
	KeyUp       Key = "Up"
	KeyDown     Key = "Down"
	KeyLeft     Key = "Left"
	KeyRight    Key = "Right"
	KeyPageUp   Key = "PageUp"
	KeyPageDown Key = "PageDown"
)

func (k Key) navigation() bool {
	switch k {
	case KeyHome, KeyEnd, KeyUp, KeyDown, KeyLeft, KeyRight, KeyPageUp, KeyPageDown:
		return true
	}
	return false
}

// KeyEvent is a key press with its modifiers.
type KeyEvent struct {
	Key Key
	Modifiers
}

// Change is delivered to subscribers once per logical gesture.
type Change[T any] struct {
	Old     []T
	New     []T
	Context Context
}
