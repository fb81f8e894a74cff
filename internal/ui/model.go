package ui

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"selectkit/internal/clock"
	"selectkit/internal/config"
	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/logging"
	"selectkit/internal/selection"
	"selectkit/internal/single"
	"selectkit/internal/ui/views"
	"selectkit/internal/widget"
)

// E2EEnv makes View end with ReadyMarker so terminal tests know a frame
// has been drawn.
const (
	E2EEnv      = "SELECTKIT_E2E_TEST"
	ReadyMarker = "__READY__"
)

// BoxLabel is the caption of the select box.
const BoxLabel = "Size"

const statusTimeout = 3 * time.Second

type focusTarget int

const (
	focusList focusTarget = iota
	focusBox
)

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	log       zerolog.Logger

	sched *tickScheduler
	list  *widget.List
	box   *widget.SelectBox

	width  int
	height int
	layout views.Layout
	focus  focusTarget

	keys     keyMap
	help     help.Model
	renderer *views.Renderer
	helpText *HelpRenderer

	// List that received the last left press, until release.
	pressed *widget.List
	// Last item reported to HandleMouseOver.
	hover *widget.Item

	status    string
	statusErr bool
	statusSeq int

	e2e bool
}

// NewModel creates a new UI model from cfg. bus may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, log zerolog.Logger) (*Model, error) {
	opts, err := cfg.Selection.Options()
	if err != nil {
		return nil, fmt.Errorf("selection settings: %w", err)
	}

	m := &Model{
		bus:      bus,
		config:   cfg,
		log:      logging.Component(log, "ui"),
		sched:    newTickScheduler(),
		keys:     newKeyMap(),
		help:     help.New(),
		renderer: views.NewRenderer(),
		helpText: NewHelpRenderer(),
		e2e:      os.Getenv(E2EEnv) != "",
	}

	clk := clock.Real()
	opts = append(opts,
		selection.WithScheduler(m.sched),
		selection.WithLogger(logging.Component(log, "list")),
	)
	m.list = widget.NewList(widget.ParseOrientation(cfg.List.Orientation), clk, opts...)
	for _, spec := range cfg.List.ItemSpecs() {
		item := widget.NewItem(spec.Label)
		item.Enabled = !spec.Disabled
		item.Visible = !spec.Hidden
		m.list.Add(item)
	}

	m.box = widget.NewSelectBox(clk, logging.Component(log, "selectbox"), selection.WithScheduler(m.sched))
	m.box.Add(cfg.SelectBox.Items...)
	if cfg.SelectBox.AllowEmpty {
		m.box.Choice().SetAllowEmptySelection(true)
	}

	m.list.Selection().Subscribe(m.onListChange)
	m.box.Choice().Subscribe(m.onBoxChange)

	m.resize(80, 24)
	return m, nil
}

// SetConfigService enables saving settings with the save key.
func (m *Model) SetConfigService(svc config.ConfigService) {
	m.configSvc = svc
}

// List returns the main list widget.
func (m *Model) List() *widget.List { return m.list }

// SelectBox returns the select box widget.
func (m *Model) SelectBox() *widget.SelectBox { return m.box }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case autoScrollMsg:
		m.sched.handle(msg)

	case EventMsg:
		cmd = m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("help pager failed")
			cmd = m.setStatus(fmt.Sprintf("help: %v", msg.err), true)
		}

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status, m.statusErr = "", false
		}
	}
	return m, tea.Batch(cmd, m.sched.drain())
}

// View renders the UI
func (m *Model) View() string {
	out := m.renderer.Render(views.ViewState{
		Width:       m.width,
		Height:      m.height,
		Layout:      m.layout,
		List:        m.list,
		Box:         m.box,
		BoxLabel:    BoxLabel,
		ListFocused: m.focus == focusList,
		Status:      m.status,
		StatusError: m.statusErr,
		HelpView:    m.help.View(m.keys),
	})
	if m.e2e {
		out += "\n" + ReadyMarker
	}
	return out
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.layout = views.ComputeLayout(width, height, m.config.List.Height,
		len(m.box.List().Items()), m.list.Orientation() == widget.Horizontal)

	m.list.SetLocation(m.layout.List)
	m.list.ScrollTo(m.list.ScrollPosition())
	if lead, ok := m.list.Selection().LeadItem(); ok {
		m.list.ScrollChildIntoView(lead)
	}
	m.box.List().SetLocation(m.layout.Popup)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		return showHelpPager(m.helpText.RenderHelpContentPlain())
	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
		return nil
	}

	if m.focus == focusBox {
		return m.handleBoxKey(msg)
	}

	sel := m.list.Selection()
	switch {
	case key.Matches(msg, m.keys.Mode):
		return m.cycleMode()
	case key.Matches(msg, m.keys.Invert):
		if err := sel.InvertSelection(); err != nil {
			return m.reportError(err)
		}
		return nil
	case key.Matches(msg, m.keys.Drag):
		sel.SetDrag(!sel.Drag())
		return m.setStatus(fmt.Sprintf("drag selection %s", onOff(sel.Drag())), false)
	case key.Matches(msg, m.keys.Quick):
		sel.SetQuick(!sel.Quick())
		return m.setStatus(fmt.Sprintf("hover selection %s", onOff(sel.Quick())), false)
	case key.Matches(msg, m.keys.Save):
		return m.saveSettings()
	}

	if r, ok := typedRune(msg); ok {
		m.list.TypeAhead(r)
		return nil
	}

	ev, ok := keyEvent(msg)
	if !ok {
		return nil
	}
	if _, err := sel.HandleKeyPress(ev); err != nil {
		return m.reportError(err)
	}
	return nil
}

func (m *Model) handleBoxKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Open) {
		_, err := m.box.HandleKeyPress(selection.KeyEvent{}, true)
		return m.reportError(err)
	}
	if r, ok := typedRune(msg); ok {
		m.box.List().TypeAhead(r)
		return nil
	}
	ev, ok := keyEvent(msg)
	if !ok {
		return nil
	}
	_, err := m.box.HandleKeyPress(ev, false)
	return m.reportError(err)
}

// typedRune returns the character of a plain printable key press.
func typedRune(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return 0, false
	}
	return msg.Runes[0], true
}

// cancelPress ends a gesture whose release will not reach the pressed
// list, giving up its capture and auto-scroll.
func (m *Model) cancelPress() {
	if m.pressed == nil {
		return
	}
	m.pressed.Selection().HandleLoseCapture()
	m.pressed = nil
}

func (m *Model) toggleFocus() {
	m.cancelPress()
	if m.focus == focusList {
		m.focus = focusBox
		return
	}
	m.focus = focusList
	if m.box.IsOpen() {
		m.box.Close()
	}
}

func (m *Model) cycleMode() tea.Cmd {
	sel := m.list.Selection()
	i := slices.Index(selection.Modes, sel.Mode())
	next := selection.Modes[(i+1)%len(selection.Modes)]
	sel.SetMode(next)
	m.publish(eventbus.ModeChangedEvent{Source: "list", Mode: string(next)})
	return m.setStatus(fmt.Sprintf("mode: %s", next), false)
}

func (m *Model) saveSettings() tea.Cmd {
	if m.configSvc == nil {
		return m.setStatus("no config file to save to", true)
	}
	sel := m.list.Selection()
	m.config.Selection.Mode = string(sel.Mode())
	m.config.Selection.Drag = sel.Drag()
	m.config.Selection.Quick = sel.Quick()
	if err := m.configSvc.Save(m.config); err != nil {
		return m.reportError(err)
	}
	return m.setStatus("settings saved", false)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	mods := modifiers(msg)
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.wheel(msg.X, msg.Y, -1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.wheel(msg.X, msg.Y, 1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.reportError(m.mouseDown(msg.X, msg.Y, mods))
	case msg.Action == tea.MouseActionRelease:
		return m.reportError(m.mouseUp(msg.X, msg.Y, mods))
	case msg.Action == tea.MouseActionMotion:
		return m.reportError(m.mouseMove(msg.X, msg.Y, mods))
	}
	return nil
}

// listAt returns the list whose frame contains the screen cell (x, y).
// The drop-down covers the main list while open.
func (m *Model) listAt(x, y int) (*widget.List, bool) {
	if m.box.IsOpen() && inside(m.layout.Popup, x, y) {
		return m.box.List(), true
	}
	if inside(m.layout.List, x, y) {
		return m.list, true
	}
	return nil, false
}

func inside(r selection.Rect, x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

func (m *Model) mouseDown(x, y int, mods selection.Modifiers) error {
	m.cancelPress()
	if y == m.layout.BoxHeader {
		m.focus = focusBox
		m.box.Toggle()
		return nil
	}
	target, ok := m.listAt(x, y)
	if m.box.IsOpen() && target != m.box.List() {
		m.box.Close()
	}
	if !ok {
		return nil
	}
	if target == m.list {
		m.focus = focusList
	} else {
		m.focus = focusBox
	}
	m.pressed = target
	return target.Selection().HandleMouseDown(target.MouseEvent(x, y, mods))
}

func (m *Model) mouseUp(x, y int, mods selection.Modifiers) error {
	target := m.pressed
	m.pressed = nil
	if target == nil {
		return nil
	}
	ev := target.MouseEvent(x, y, mods)
	if target == m.box.List() {
		return m.box.HandleMouseUp(ev)
	}
	return target.Selection().HandleMouseUp(ev)
}

func (m *Model) mouseMove(x, y int, mods selection.Modifiers) error {
	if m.pressed != nil && m.pressed.Selection().Capturing() {
		return m.pressed.Selection().HandleMouseMove(m.pressed.MouseEvent(x, y, mods))
	}

	target, ok := m.listAt(x, y)
	if !ok {
		m.hover = nil
		return nil
	}
	ev := target.MouseEvent(x, y, mods)
	if !ev.HasTarget || ev.Target == m.hover {
		return nil
	}
	m.hover = ev.Target
	return target.Selection().HandleMouseOver(ev)
}

func (m *Model) wheel(x, y, delta int) {
	target, ok := m.listAt(x, y)
	if !ok {
		return
	}
	if target.Orientation() == widget.Horizontal {
		target.ScrollBy(delta, 0)
		return
	}
	target.ScrollBy(0, delta)
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, true)
	case eventbus.ConfigSavedEvent:
		return m.setStatus(fmt.Sprintf("saved %s", e.Path), false)
	}
	return nil
}

func (m *Model) onListChange(c selection.Change[*widget.Item]) {
	sel := m.list.Selection()
	snap := domain.SelectionSnapshot{
		Source:  "list",
		Mode:    string(sel.Mode()),
		Context: string(c.Context),
	}
	for _, item := range sel.SortedSelection() {
		snap.Labels = append(snap.Labels, item.Label)
	}
	if lead, ok := sel.LeadItem(); ok {
		snap.Lead = lead.Label
	}
	m.publish(eventbus.SelectionChangedEvent{Selection: snap})
}

func (m *Model) onBoxChange(c single.Change[*widget.Item]) {
	e := eventbus.SelectedChangedEvent{Source: "selectbox"}
	if c.HasOld {
		e.Old = c.Old.Label
	}
	if c.HasNew {
		e.New = c.New.Label
	}
	m.publish(e)
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// reportError logs err and shows it on the status line. Contract
// violations are programming errors and are logged at error level.
func (m *Model) reportError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if errors.Is(err, selection.ErrAdapterContract) {
		m.log.Error().Err(err).Msg("selection adapter misbehaved")
	} else {
		m.log.Debug().Err(err).Msg("selection request rejected")
	}
	m.publish(eventbus.ErrorEvent{Message: err.Error(), Err: err})
	return m.setStatus(err.Error(), true)
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.status, m.statusErr = text, isErr
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
