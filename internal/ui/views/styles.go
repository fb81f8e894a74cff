package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Mode        lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Search      lipgloss.Style
	Help        lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Lead        lipgloss.Style
	Anchor      lipgloss.Style
	Disabled    lipgloss.Style
	Label       lipgloss.Style
	Focused     lipgloss.Style
	Box         lipgloss.Style
	Scroll      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Mode:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Search:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:        lipgloss.NewStyle().Faint(true),
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")),
		Lead:     lipgloss.NewStyle().Bold(true).Underline(true),
		Anchor:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Box:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		Scroll:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
