package widget

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectkit/internal/clock"
	"selectkit/internal/selection"
)

func newSelectBox(labels ...string) (*SelectBox, []*Item) {
	clk := clock.Fake(time.Unix(0, 0))
	b := NewSelectBox(clk, zerolog.Nop(), selection.WithScheduler(selection.ClockScheduler{Clock: clk}))
	b.List().SetLocation(selection.Rect{Left: 0, Top: 1, Right: 20, Bottom: 6})
	return b, b.Add(labels...)
}

func selected(t *testing.T, b *SelectBox) *Item {
	t.Helper()
	item, ok := b.Selected()
	require.True(t, ok)
	return item
}

func press(t *testing.T, b *SelectBox, key selection.Key) {
	t.Helper()
	_, err := b.HandleKeyPress(selection.KeyEvent{Key: key}, false)
	require.NoError(t, err)
}

func enter(t *testing.T, b *SelectBox) {
	t.Helper()
	_, err := b.HandleKeyPress(selection.KeyEvent{}, true)
	require.NoError(t, err)
}

func TestSelectBoxCommitsFirstItem(t *testing.T) {
	b, items := newSelectBox("red", "green", "blue")
	assert.Same(t, items[0], selected(t, b))
	assert.False(t, b.Choice().AllowEmptySelection())
}

func TestSelectBoxClosedArrowsCommit(t *testing.T) {
	b, items := newSelectBox("red", "green", "blue")
	press(t, b, selection.KeyDown)
	assert.Same(t, items[1], selected(t, b))
	assert.False(t, b.IsOpen())
}

func TestSelectBoxOpenPreselectsUntilEnter(t *testing.T) {
	b, items := newSelectBox("red", "green", "blue")
	enter(t, b)
	require.True(t, b.IsOpen())

	press(t, b, selection.KeyDown)
	press(t, b, selection.KeyDown)
	assert.Same(t, items[0], selected(t, b))
	assert.True(t, items[2].Selected())

	enter(t, b)
	assert.False(t, b.IsOpen())
	assert.Same(t, items[2], selected(t, b))
}

func TestSelectBoxEscapeRestoresCommitted(t *testing.T) {
	b, items := newSelectBox("red", "green", "blue")
	b.Open()

	require.NoError(t, b.List().Selection().HandleMouseOver(b.List().MouseEvent(2, 3, selection.Modifiers{})))
	assert.True(t, items[2].Selected())

	press(t, b, selection.KeyEscape)
	assert.False(t, b.IsOpen())
	assert.Same(t, items[0], selected(t, b))
	assert.True(t, items[0].Selected())
	assert.False(t, items[2].Selected())
}

func TestSelectBoxClickCommitsAndCloses(t *testing.T) {
	b, items := newSelectBox("red", "green", "blue")
	b.Open()
	sel := b.List().Selection()

	ev := b.List().MouseEvent(2, 2, selection.Modifiers{})
	require.NoError(t, sel.HandleMouseDown(ev))
	require.NoError(t, sel.HandleMouseUp(ev))

	assert.Same(t, items[1], selected(t, b))
	assert.False(t, b.IsOpen())
}

func TestSelectBoxSetSelectedSyncsList(t *testing.T) {
	b, items := newSelectBox("red", "green", "blue")
	require.NoError(t, b.SetSelected(items[2]))

	assert.True(t, items[2].Selected())
	assert.False(t, items[0].Selected())
	assert.Error(t, b.SetSelected(NewItem("stranger")))
}

func TestSelectBoxEmptiesWithList(t *testing.T) {
	b, items := newSelectBox("red")
	require.True(t, b.List().Remove(items[0]))

	_, ok := b.Selected()
	assert.False(t, ok)
}

func TestSelectBoxReleaseOnHighlightedCommits(t *testing.T) {
	b, items := newSelectBox("red", "green", "blue")
	b.Open()
	sel := b.List().Selection()

	ev := b.List().MouseEvent(2, 3, selection.Modifiers{})
	require.NoError(t, sel.HandleMouseOver(ev))
	assert.Same(t, items[0], selected(t, b))

	require.NoError(t, sel.HandleMouseDown(ev))
	require.NoError(t, b.HandleMouseUp(ev))

	assert.Same(t, items[2], selected(t, b))
	assert.False(t, b.IsOpen())
}
