// Package selection implements the selection engine shared by list-like
// widgets: single, multi, additive and one modes, mouse and keyboard
// protocols, rubber-band drag selection with auto-scroll, and a single
// consolidated change notification per gesture.
//
// The engine never touches widgets directly. Everything it knows about
// the items it selects comes from an Adapter: which items are selectable,
// how they are ordered, where they are on screen and how the container
// scrolls. Package widget provides adapters for flat containers and
// scroll areas.
//
// A Manager is not safe for concurrent use. Input handlers and the
// auto-scroll Scheduler must be invoked from one goroutine, normally the
// UI loop.
package selection
