package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Keyboard", []helpEntry{
		{"↑/↓ ←/→", "Move the lead (and the selection in single mode)"},
		{"Home/End", "First/last item"},
		{"PgUp/PgDn", "Page, keeping the old lead visible"},
		{"Shift+move", "Extend the range from the anchor (multi)"},
		{"Ctrl+move", "Move the lead only (multi)"},
		{"Space", "Select lead; toggles in additive mode or with Ctrl"},
		{"Ctrl+A", "Select all (multi/additive)"},
		{"Esc", "Clear selection (multi/additive)"},
	}},
	{"Mouse", []helpEntry{
		{"Click", "Select; toggles in additive mode"},
		{"Ctrl+click", "Toggle (multi)"},
		{"Shift+click", "Range from anchor (multi)"},
		{"Drag", "Rubber-band select; auto-scrolls past the edge"},
		{"Hover", "Select under the pointer with quick selection"},
	}},
	{"Select box", []helpEntry{
		{"Enter/Space", "Open, or commit the highlighted item"},
		{"Esc", "Close without committing"},
		{"↑/↓", "Change the choice while closed"},
	}},
	{"Other", []helpEntry{
		{"Tab", "Switch focus between list and select box"},
		{"m", "Cycle selection mode"},
		{"i", "Invert selection"},
		{"d / Q", "Toggle drag / quick selection"},
		{"w", "Save mode and flags to the config file"},
		{"a-z", "Type-ahead find in single and one mode"},
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("selectkit Help"))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(e.keys), descStyle.Render(e.desc)))
		}
	}
	return strings.TrimRight(help.String(), "\n")
}

// pagerCommand shows text in the ov pager. It implements tea.ExecCommand;
// ov opens the terminal itself, so the streams are unused.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// showHelpPager suspends the TUI and shows the help in the pager
func showHelpPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
