package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectkit/internal/selection"
)

// keyEvent maps a terminal key to a selection key event. ok is false for
// keys the selection engine does not know.
func keyEvent(msg tea.KeyMsg) (selection.KeyEvent, bool) {
	var ev selection.KeyEvent
	ev.Meta = msg.Alt

	switch msg.Type {
	case tea.KeyUp:
		ev.Key = selection.KeyUp
	case tea.KeyDown:
		ev.Key = selection.KeyDown
	case tea.KeyLeft:
		ev.Key = selection.KeyLeft
	case tea.KeyRight:
		ev.Key = selection.KeyRight
	case tea.KeyHome:
		ev.Key = selection.KeyHome
	case tea.KeyEnd:
		ev.Key = selection.KeyEnd
	case tea.KeyPgUp:
		ev.Key = selection.KeyPageUp
	case tea.KeyPgDown:
		ev.Key = selection.KeyPageDown
	case tea.KeyShiftUp:
		ev.Key, ev.Shift = selection.KeyUp, true
	case tea.KeyShiftDown:
		ev.Key, ev.Shift = selection.KeyDown, true
	case tea.KeyShiftLeft:
		ev.Key, ev.Shift = selection.KeyLeft, true
	case tea.KeyShiftRight:
		ev.Key, ev.Shift = selection.KeyRight, true
	case tea.KeyShiftHome:
		ev.Key, ev.Shift = selection.KeyHome, true
	case tea.KeyShiftEnd:
		ev.Key, ev.Shift = selection.KeyEnd, true
	case tea.KeyCtrlUp:
		ev.Key, ev.Ctrl = selection.KeyUp, true
	case tea.KeyCtrlDown:
		ev.Key, ev.Ctrl = selection.KeyDown, true
	case tea.KeyCtrlLeft:
		ev.Key, ev.Ctrl = selection.KeyLeft, true
	case tea.KeyCtrlRight:
		ev.Key, ev.Ctrl = selection.KeyRight, true
	case tea.KeyCtrlHome:
		ev.Key, ev.Ctrl = selection.KeyHome, true
	case tea.KeyCtrlEnd:
		ev.Key, ev.Ctrl = selection.KeyEnd, true
	case tea.KeyCtrlPgUp:
		ev.Key, ev.Ctrl = selection.KeyPageUp, true
	case tea.KeyCtrlPgDown:
		ev.Key, ev.Ctrl = selection.KeyPageDown, true
	case tea.KeyCtrlShiftUp:
		ev.Key, ev.Ctrl, ev.Shift = selection.KeyUp, true, true
	case tea.KeyCtrlShiftDown:
		ev.Key, ev.Ctrl, ev.Shift = selection.KeyDown, true, true
	case tea.KeyCtrlShiftHome:
		ev.Key, ev.Ctrl, ev.Shift = selection.KeyHome, true, true
	case tea.KeyCtrlShiftEnd:
		ev.Key, ev.Ctrl, ev.Shift = selection.KeyEnd, true, true
	case tea.KeyCtrlA:
		ev.Key, ev.Ctrl = selection.KeyA, true
	case tea.KeyEsc:
		ev.Key = selection.KeyEscape
	case tea.KeySpace:
		ev.Key = selection.KeySpace
	case tea.KeyCtrlAt:
		// Ctrl+Space arrives as NUL.
		ev.Key, ev.Ctrl = selection.KeySpace, true
	default:
		return ev, false
	}
	return ev, true
}

// modifiers extracts the modifier state of a mouse event. Terminals
// report Option/Alt, which stands in for Meta.
func modifiers(msg tea.MouseMsg) selection.Modifiers {
	return selection.Modifiers{Ctrl: msg.Ctrl, Shift: msg.Shift, Meta: msg.Alt}
}
