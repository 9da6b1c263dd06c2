package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var statusBarStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("#1F2937")).
	Foreground(lipgloss.Color("#E5E7EB")).
	Padding(0, 1)

var statusWarnStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("#1F2937")).
	Foreground(lipgloss.Color("#FBBF24")).
	Bold(true)

// StatusBar displays the store location, record count and the last
// warning (corrupt file bypassed, failed save) at the bottom of the
// screen.
type StatusBar struct {
	Path    string
	Count   int
	Warning string
	Width   int
}

// NewStatusBar creates a new status bar.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Update handles messages for the status bar.
func (s StatusBar) Update(_ tea.Msg) StatusBar {
	return s
}

// View renders the status bar.
func (s StatusBar) View() string {
	noun := "contacts"
	if s.Count == 1 {
		noun = "contact"
	}
	left := statusBarStyle.Render(fmt.Sprintf(" %s  %d %s", s.Path, s.Count, noun))
	if s.Warning != "" {
		left += statusWarnStyle.Render("  ⚠ " + s.Warning)
	}

	right := statusBarStyle.Render("cardfile")

	gap := max(s.Width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	fill := statusBarStyle.Render(fmt.Sprintf("%*s", gap, ""))

	return left + fill + right
}
