package views

import (
	"fmt"
	"strings"

	"selectkit/internal/widget"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	Layout      Layout
	List        *widget.List
	Box         *widget.SelectBox
	BoxLabel    string
	ListFocused bool
	Status      string
	StatusError bool
	HelpView    string
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	listRend  *ListRenderer
	popupRend *SelectBoxRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	list := NewListRenderer(NewItemRenderer(styles))
	return &Renderer{
		styles:    styles,
		listRend:  list,
		popupRend: NewSelectBoxRenderer(styles, list),
	}
}

// Render produces the complete view. Every widget is drawn on the rows
// its Layout assigns.
func (r *Renderer) Render(state ViewState) string {
	l := state.Layout
	lines := make([]string, l.Help+1)

	lines[0] = r.renderTitle(state)
	copy(lines[l.List.Top:], r.listRend.Render(state.List.ScrollArea, state.ListFocused))
	lines[l.BoxHeader] = r.popupRend.RenderHeader(state.BoxLabel, state.Box, !state.ListFocused)
	copy(lines[l.Popup.Top:], r.popupRend.RenderPopup(state.Box))

	status := r.styles.Status
	if state.StatusError {
		status = r.styles.StatusError
	}
	lines[l.Status] = status.Render(state.Status)
	lines[l.Help] = r.styles.Help.Render(state.HelpView)

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderTitle(state ViewState) string {
	sel := state.List.Selection()
	title := r.styles.Title.Render("selectkit")
	mode := r.styles.Mode.Render(fmt.Sprintf("[%s]", sel.Mode()))

	var flags []string
	if sel.Drag() {
		flags = append(flags, "drag")
	}
	if sel.Quick() {
		flags = append(flags, "hover")
	}
	info := fmt.Sprintf("%d selected", len(sel.Selection()))
	if len(flags) > 0 {
		info += " · " + strings.Join(flags, " ")
	}
	line := fmt.Sprintf("%s %s %s", title, mode, r.styles.Dim.Render(info))
	if search := state.List.Search(); search != "" {
		line += " " + r.styles.Search.Render("find: "+search)
	}
	return line
}
