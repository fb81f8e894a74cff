package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectkit/internal/config"
	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/selection"
	"selectkit/internal/widget"
)

type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) { b.events = append(b.events, e) }

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }

func (b *recordingBus) Close() {}

func (b *recordingBus) last(t *testing.T, typ eventbus.EventType) eventbus.DomainEvent {
	t.Helper()
	for i := len(b.events) - 1; i >= 0; i-- {
		if b.events[i].Type() == typ {
			return b.events[i]
		}
	}
	t.Fatalf("no %s event published", typ)
	return nil
}

func newModel(t *testing.T, edit ...func(*config.Config)) (*Model, *recordingBus) {
	t.Helper()
	cfg := config.DefaultConfig()
	for _, fn := range edit {
		fn(cfg)
	}
	bus := &recordingBus{}
	m, err := NewModel(bus, cfg, zerolog.Nop())
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, bus
}

func update(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func labels(items []*widget.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

func TestNewModelRejectsUnknownMode(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Selection.Mode = "sideways"
	_, err := NewModel(nil, cfg, zerolog.Nop())
	assert.ErrorIs(t, err, selection.ErrInvalidMode)
}

func TestNewModelAppliesItemFlags(t *testing.T) {
	m, _ := newModel(t, func(c *config.Config) {
		c.List.Items = nil
		c.List.FileItems = []domain.ItemSpec{
			{Label: "one"},
			{Label: "two", Disabled: true},
			{Label: "three", Hidden: true},
		}
	})
	items := m.List().Items()
	require.Len(t, items, 3)
	assert.False(t, items[1].Enabled)
	assert.False(t, items[2].Visible)
}

func TestKeyNavigationPublishesSelection(t *testing.T) {
	m, bus := newModel(t)

	update(m, keyType(tea.KeyDown), keyType(tea.KeyShiftDown))

	sel := m.List().Selection()
	assert.Equal(t, []string{"Apple", "Apricot"}, labels(sel.SortedSelection()))

	e := bus.last(t, eventbus.EventSelectionChanged).(eventbus.SelectionChangedEvent)
	assert.Equal(t, []string{"Apple", "Apricot"}, e.Selection.Labels)
	assert.Equal(t, "Apricot", e.Selection.Lead)
	assert.Equal(t, "key", e.Selection.Context)
	assert.Equal(t, "multi", e.Selection.Mode)
}

func TestModeCycle(t *testing.T) {
	m, bus := newModel(t)
	update(m, keyType(tea.KeyDown))

	update(m, runes("m"))

	assert.Equal(t, selection.ModeAdditive, m.List().Selection().Mode())
	assert.True(t, m.List().Selection().IsSelectionEmpty())
	e := bus.last(t, eventbus.EventModeChanged).(eventbus.ModeChangedEvent)
	assert.Equal(t, "additive", e.Mode)
	assert.Equal(t, "mode: additive", m.status)

	update(m, runes("m"), runes("m"))
	assert.Equal(t, selection.ModeSingle, m.List().Selection().Mode())
}

func TestInvertInSingleModeReportsError(t *testing.T) {
	m, bus := newModel(t, func(c *config.Config) { c.Selection.Mode = "single" })

	cmd := update(m, runes("i"))

	assert.NotNil(t, cmd)
	assert.True(t, m.statusErr)
	e := bus.last(t, eventbus.EventError).(eventbus.ErrorEvent)
	assert.ErrorIs(t, e.Err, selection.ErrInvalidMode)
}

func TestStatusClearsOnlyForLatestMessage(t *testing.T) {
	m, _ := newModel(t)
	update(m, runes("d"))
	first := m.statusSeq
	update(m, runes("d"))

	update(m, clearStatusMsg{seq: first})
	assert.NotEmpty(t, m.status)

	update(m, clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, m.status)
}

func TestTypeAheadInSingleMode(t *testing.T) {
	m, _ := newModel(t, func(c *config.Config) { c.Selection.Mode = "single" })

	update(m, runes("b"))
	item, ok, err := m.List().Selection().SelectedItem()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Banana", item.Label)

	update(m, runes("l"))
	item, _, _ = m.List().Selection().SelectedItem()
	assert.Equal(t, "Blackberry", item.Label)
}

func TestClickSelectsRow(t *testing.T) {
	m, bus := newModel(t)
	top := m.layout.List.Top

	update(m, mouse(tea.MouseActionPress, 5, top+2), mouse(tea.MouseActionRelease, 5, top+2))

	assert.Equal(t, []string{"Banana"}, labels(m.List().Selection().Selection()))
	e := bus.last(t, eventbus.EventSelectionChanged).(eventbus.SelectionChangedEvent)
	assert.Equal(t, "click", e.Selection.Context)
}

func TestDragAutoScrollsOnTicks(t *testing.T) {
	m, _ := newModel(t)
	list := m.layout.List
	require.Equal(t, 10, list.Bottom-list.Top)

	update(m, mouse(tea.MouseActionPress, 5, list.Top))
	cmd := update(m, mouse(tea.MouseActionMotion, 5, list.Bottom))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.sched.running())

	sel := m.List().Selection()
	assert.Len(t, sel.Selection(), 10)

	update(m, autoScrollMsg{id: 1})
	assert.Equal(t, 1, m.List().ScrollPosition().Y)
	assert.Len(t, sel.Selection(), 11)

	update(m, mouse(tea.MouseActionRelease, 5, list.Bottom))
	assert.Equal(t, 0, m.sched.running())
	assert.False(t, sel.Capturing())

	update(m, autoScrollMsg{id: 1})
	assert.Equal(t, 1, m.List().ScrollPosition().Y)
}

func TestFocusChangeEndsDrag(t *testing.T) {
	m, _ := newModel(t)
	list := m.layout.List
	sel := m.List().Selection()

	update(m, mouse(tea.MouseActionPress, 5, list.Top))
	update(m, mouse(tea.MouseActionMotion, 5, list.Bottom))
	require.True(t, sel.Capturing())
	require.Equal(t, 1, m.sched.running())

	update(m, keyType(tea.KeyTab))
	assert.False(t, sel.Capturing())
	assert.Equal(t, 0, m.sched.running())
	assert.Nil(t, m.pressed)
}

func TestPressWithoutReleaseEndsPreviousDrag(t *testing.T) {
	m, _ := newModel(t)
	list := m.layout.List
	sel := m.List().Selection()

	update(m, mouse(tea.MouseActionPress, 5, list.Top))
	update(m, mouse(tea.MouseActionMotion, 5, list.Bottom))
	require.Equal(t, 1, m.sched.running())

	update(m, mouse(tea.MouseActionPress, 5, m.layout.BoxHeader))
	assert.False(t, sel.Capturing())
	assert.Equal(t, 0, m.sched.running())
	assert.True(t, m.SelectBox().IsOpen())
}

func TestWheelScrollsList(t *testing.T) {
	m, _ := newModel(t)
	top := m.layout.List.Top

	update(m, tea.MouseMsg{X: 1, Y: top, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, 1, m.List().ScrollPosition().Y)
}

func TestSelectBoxByKeyboard(t *testing.T) {
	m, bus := newModel(t)
	box := m.SelectBox()

	update(m, keyType(tea.KeyTab), keyType(tea.KeyEnter))
	require.True(t, box.IsOpen())

	update(m, keyType(tea.KeyDown))
	item, _ := box.Selected()
	assert.Equal(t, "Small", item.Label)

	update(m, keyType(tea.KeyEnter))
	assert.False(t, box.IsOpen())
	item, _ = box.Selected()
	assert.Equal(t, "Medium", item.Label)

	e := bus.last(t, eventbus.EventSelectedChanged).(eventbus.SelectedChangedEvent)
	assert.Equal(t, "Small", e.Old)
	assert.Equal(t, "Medium", e.New)
}

func TestSelectBoxByMouse(t *testing.T) {
	m, _ := newModel(t)
	box := m.SelectBox()

	update(m, mouse(tea.MouseActionPress, 2, m.layout.BoxHeader))
	require.True(t, box.IsOpen())

	row := m.layout.Popup.Top + 2
	update(m, mouse(tea.MouseActionPress, 2, row), mouse(tea.MouseActionRelease, 2, row))
	assert.False(t, box.IsOpen())
	item, _ := box.Selected()
	assert.Equal(t, "Large", item.Label)
}

func TestTabClosesSelectBox(t *testing.T) {
	m, _ := newModel(t)
	update(m, keyType(tea.KeyTab), keyType(tea.KeyEnter))
	require.True(t, m.SelectBox().IsOpen())

	update(m, keyType(tea.KeyTab))
	assert.False(t, m.SelectBox().IsOpen())
	assert.Equal(t, focusList, m.focus)
}

func TestSaveSettings(t *testing.T) {
	m, _ := newModel(t)
	path := filepath.Join(t.TempDir(), config.FileName)
	svc := config.NewConfigService(path)
	m.SetConfigService(svc)

	update(m, runes("m"), runes("Q"), runes("w"))
	assert.Equal(t, "settings saved", m.status)

	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "additive", cfg.Selection.Mode)
	assert.True(t, cfg.Selection.Quick)
}

func TestQuitAndHelp(t *testing.T) {
	m, _ := newModel(t)

	cmd := update(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.NotNil(t, update(m, runes("?")))
}

func TestViewRendersWidgets(t *testing.T) {
	t.Setenv(E2EEnv, "1")
	m, _ := newModel(t)
	update(m, keyType(tea.KeyDown))

	out := m.View()
	assert.Contains(t, out, "selectkit")
	assert.Contains(t, out, "[multi]")
	assert.Contains(t, out, "Apple")
	assert.Contains(t, out, "Small")
	assert.NotContains(t, out, "Strawberry")
	assert.True(t, strings.HasSuffix(out, ReadyMarker))
}
