package widget

import (
	"github.com/rs/zerolog"

	"selectkit/internal/clock"
	"selectkit/internal/selection"
	"selectkit/internal/single"
)

// SelectBox shows one chosen item and a drop-down List to change it.
// While the drop-down is open, hovering and arrow keys only preselect;
// Enter or Space commits the preselected item, Escape discards it.
type SelectBox struct {
	list   *List
	choice *single.Manager[*Item]
	log    zerolog.Logger

	open        bool
	preselected *Item
	syncing     bool
}

// NewSelectBox returns an empty select box. opts configure the drop-down
// list; its mode is always one and hover selection is always on.
func NewSelectBox(clk clock.Clock, log zerolog.Logger, opts ...selection.Option) *SelectBox {
	opts = append(opts, selection.WithMode(selection.ModeOne), selection.WithQuick(true), selection.WithLogger(log))
	b := &SelectBox{list: NewList(Vertical, clk, opts...), log: log}
	b.choice = single.New[*Item](listProvider{b.list}, log)
	b.choice.SetAllowEmptySelection(false)

	b.list.Selection().Subscribe(b.onListChange)
	b.choice.Subscribe(b.onChoiceChange)
	return b
}

// List returns the drop-down list.
func (b *SelectBox) List() *List { return b.list }

// Choice returns the manager holding the committed item.
func (b *SelectBox) Choice() *single.Manager[*Item] { return b.choice }

// Selected returns the committed item.
func (b *SelectBox) Selected() (*Item, bool) { return b.choice.Selected() }

// SetSelected commits item.
func (b *SelectBox) SetSelected(item *Item) error { return b.choice.SetSelected(item) }

// Add appends items to the drop-down.
func (b *SelectBox) Add(labels ...string) []*Item { return b.list.AddLabels(labels...) }

// IsOpen reports whether the drop-down is shown.
func (b *SelectBox) IsOpen() bool { return b.open }

// Open shows the drop-down.
func (b *SelectBox) Open() {
	b.open = true
	if item, ok := b.choice.Selected(); ok {
		b.list.ScrollChildIntoView(item)
	}
}

// Close hides the drop-down and resets the list to the committed item.
func (b *SelectBox) Close() {
	b.open = false
	b.preselected = nil
	if item, ok := b.choice.Selected(); ok {
		b.syncList(item)
	}
}

// Toggle opens a closed drop-down and closes an open one.
func (b *SelectBox) Toggle() {
	if b.open {
		b.Close()
		return
	}
	b.Open()
}

// HandleKeyPress handles Enter, Space and Escape and passes other keys
// to the drop-down list. enter is true for the Enter key.
func (b *SelectBox) HandleKeyPress(ev selection.KeyEvent, enter bool) (bool, error) {
	switch {
	case enter || ev.Key == selection.KeySpace:
		if b.preselected != nil {
			b.commit(b.preselected)
		}
		b.Toggle()
		return true, nil
	case ev.Key == selection.KeyEscape && b.open:
		b.Close()
		return true, nil
	}
	return b.list.Selection().HandleKeyPress(ev)
}

// HandleMouseUp passes a release to the drop-down. Releasing over the
// highlighted item commits it and closes the drop-down.
func (b *SelectBox) HandleMouseUp(ev selection.MouseEvent[*Item]) error {
	if err := b.list.Selection().HandleMouseUp(ev); err != nil {
		return err
	}
	if b.open && ev.HasTarget && b.list.Selection().IsItemSelected(ev.Target) {
		b.commit(ev.Target)
		b.Close()
	}
	return nil
}

func (b *SelectBox) onListChange(c selection.Change[*Item]) {
	if b.syncing {
		return
	}
	if len(c.New) == 0 {
		b.choice.ResetSelected()
		return
	}
	item := c.New[0]
	if b.open && (c.Context == selection.ContextQuick || c.Context == selection.ContextKey) {
		b.preselected = item
		return
	}
	b.commit(item)
	if c.Context == selection.ContextClick {
		b.Close()
	}
}

func (b *SelectBox) onChoiceChange(c single.Change[*Item]) {
	if c.HasNew {
		b.syncList(c.New)
	}
}

func (b *SelectBox) commit(item *Item) {
	b.preselected = nil
	if err := b.choice.SetSelected(item); err != nil {
		b.log.Warn().Err(err).Str("item", item.ID).Msg("select box rejected item")
	}
}

func (b *SelectBox) syncList(item *Item) {
	if b.list.Selection().IsItemSelected(item) {
		return
	}
	b.syncing = true
	defer func() { b.syncing = false }()
	b.list.Selection().SelectItem(item)
}

// listProvider exposes a List's items to a single.Manager.
type listProvider struct{ l *List }

func (p listProvider) Items() []*Item { return p.l.Items() }

func (p listProvider) IsItemSelectable(item *Item) bool {
	return p.l.Contains(item) && item.Visible
}

func (p listProvider) IsItemEnabled(item *Item) bool { return item.Enabled }
