package selection

// Collection answers membership and ordering questions about the items a
// container holds.
type Collection[T any] interface {
	// IsSelectable reports whether item may currently join the selection.
	IsSelectable(item T) bool

	// KeyOf returns the stable identity key of item.
	KeyOf(item T) string

	// Resolve maps a key back to the live item, if it still exists.
	Resolve(key string) (T, bool)

	// Selectables returns the selectable items in container order. With
	// all set, disabled items are included unless a user gesture is
	// being processed.
	Selectables(all bool) []T

	// SelectableRange returns the selectable items between a and b
	// inclusive, in container order, regardless of argument order.
	SelectableRange(a, b T) ([]T, error)

	FirstSelectable() (T, bool)
	LastSelectable() (T, bool)

	// RelatedSelectable returns the nearest selectable neighbour of item
	// in the given direction.
	RelatedSelectable(item T, rel Relation) (T, bool)

	// Page returns the item one page away from item. ok is false when
	// item is already at the edge and there is nowhere to go.
	Page(item T, up bool) (target T, ok bool, err error)
}

// Geometry exposes screen layout and scrolling.
type Geometry[T any] interface {
	// Location is the container's screen rectangle. ok is false while
	// the container has not been laid out.
	Location() (Rect, bool)

	// Dimension is the visible inner size.
	Dimension() Size

	ItemBoundsX(item T) (Span, bool)
	ItemBoundsY(item T) (Span, bool)

	Scroll() Point
	ScrollBy(dx, dy int)
	ScrollItemIntoView(item T)
}

// Host covers the side effects the engine asks the container to perform.
type Host[T any] interface {
	// StyleItem switches a visual state of item on or off.
	StyleItem(item T, kind StyleKind, on bool)

	// SetUserInteraction is called with true while a user gesture is
	// processed and false afterwards.
	SetUserInteraction(on bool)

	// Capture routes all pointer events to the container until
	// ReleaseCapture. ReleaseCapture must tolerate repeated calls.
	Capture()
	ReleaseCapture()
}

// Adapter binds a Manager to a concrete container type.
type Adapter[T any] interface {
	Collection[T]
	Geometry[T]
	Host[T]
}
