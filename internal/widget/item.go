// Package widget provides the containers the selection engine runs on: a
// plain container, a scrollable area, a list and a select box.
package widget

import (
	"github.com/google/uuid"

	"selectkit/internal/selection"
)

// Item is one entry of a container. ID is the identity key used by the
// selection engine.
type Item struct {
	ID      string
	Label   string
	Enabled bool
	Visible bool

	// Layout position in content coordinates, set by Container.Layout.
	bounds selection.Rect

	selected bool
	lead     bool
	anchor   bool

	parent *Container
}

// NewItem returns an enabled, visible item with a fresh ID.
func NewItem(label string) *Item {
	return &Item{ID: uuid.NewString(), Label: label, Enabled: true, Visible: true}
}

// Bounds returns the item's layout rectangle in content coordinates.
func (i *Item) Bounds() selection.Rect { return i.bounds }

// Selected reports whether the item is drawn as selected.
func (i *Item) Selected() bool { return i.selected }

// Lead reports whether the item is drawn as the lead.
func (i *Item) Lead() bool { return i.lead }

// Anchor reports whether the item is drawn as the anchor.
func (i *Item) Anchor() bool { return i.anchor }

// Parent returns the container holding the item, or nil.
func (i *Item) Parent() *Container { return i.parent }

func (i *Item) setState(kind selection.StyleKind, on bool) {
	switch kind {
	case selection.StyleSelected:
		i.selected = on
	case selection.StyleLead:
		i.lead = on
	case selection.StyleAnchor:
		i.anchor = on
	}
}

func (i *Item) clearStates() {
	i.selected, i.lead, i.anchor = false, false, false
}
