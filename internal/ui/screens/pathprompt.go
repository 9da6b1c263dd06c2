package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pathTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1)

	pathHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	pathErr = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171"))

	pathOK = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#34D399"))

	pathKey = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22D3EE")).
			Bold(true)
)

// PathMode selects between importing from and exporting to the path.
type PathMode int

const (
	ModeImport PathMode = iota
	ModeExport
)

// PathChosenMsg is emitted when the user confirms a file path.
type PathChosenMsg struct {
	Mode PathMode
	Path string
}

// PathPrompt asks for a file path for import or export and shows the
// outcome of the operation.
type PathPrompt struct {
	Mode    PathMode
	input   textinput.Model
	err     string
	success string
	Width   int
	Height  int
}

// NewPathPrompt creates a path prompt for the given mode.
func NewPathPrompt(mode PathMode) PathPrompt {
	input := textinput.New()
	input.CharLimit = 256
	if mode == ModeExport {
		input.Placeholder = "contacts_export.json"
	} else {
		input.Placeholder = "/path/to/contacts.json"
	}
	input.Focus()
	return PathPrompt{Mode: mode, input: input}
}

// Init starts cursor blinking.
func (p PathPrompt) Init() tea.Cmd {
	return textinput.Blink
}

// SetError shows a failure message.
func (p *PathPrompt) SetError(msg string) {
	p.err = msg
	p.success = ""
}

// SetSuccess shows a result message.
func (p *PathPrompt) SetSuccess(msg string) {
	p.success = msg
	p.err = ""
}

// Update handles messages.
func (p PathPrompt) Update(msg tea.Msg) (PathPrompt, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		path := strings.TrimSpace(p.input.Value())
		if path == "" {
			p.err = "Path is required"
			return p, nil
		}
		mode := p.Mode
		return p, func() tea.Msg {
			return PathChosenMsg{Mode: mode, Path: path}
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the prompt.
func (p PathPrompt) View() string {
	var b strings.Builder

	title := "Import Contacts"
	if p.Mode == ModeExport {
		title = "Export Contacts"
	}
	b.WriteString(pathTitle.Render(title) + "\n\n")

	b.WriteString("File path:\n")
	b.WriteString(p.input.View() + "\n\n")

	if p.err != "" {
		b.WriteString(pathErr.Render(p.err) + "\n\n")
	}
	if p.success != "" {
		b.WriteString(pathOK.Render(p.success) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("%s %s  %s %s",
		pathKey.Render("enter"), pathHint.Render("confirm"),
		pathKey.Render("esc"), pathHint.Render("back"),
	))

	return b.String()
}
