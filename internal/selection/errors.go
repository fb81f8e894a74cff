package selection

import "errors"

var (
	// ErrInvalidMode is returned when an operation is not supported in
	// the current mode, e.g. SelectAll in single mode.
	ErrInvalidMode = errors.New("operation not supported in selection mode")

	// ErrInvalidItem is returned for items that are not part of the
	// adapter's current item set.
	ErrInvalidItem = errors.New("item is not part of the selectable set")

	// ErrAdapterContract is returned when an adapter answers a query
	// with an impossible result. It signals a wiring bug.
	ErrAdapterContract = errors.New("selection adapter contract violated")
)
