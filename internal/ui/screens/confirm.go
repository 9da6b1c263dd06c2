package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FBBF24")). // amber for warning
			MarginBottom(1)

	confirmName = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22D3EE")).
			Bold(true)

	confirmWarn = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)

	confirmKey = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22D3EE")).
			Bold(true)

	confirmKeyDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// DeleteConfirmedMsg is emitted when the user confirms the delete.
// Only then does the app call the store's Delete.
type DeleteConfirmedMsg struct {
	ID string
}

// DeleteCancelledMsg is emitted when the user declines.
type DeleteCancelledMsg struct{}

// Confirm is the delete confirmation prompt.
type Confirm struct {
	ID     string
	Name   string
	Width  int
	Height int
}

// NewConfirm creates a confirmation prompt for the given contact.
func NewConfirm(id, name string) Confirm {
	return Confirm{ID: id, Name: name}
}

// Init returns no initial command.
func (c Confirm) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "y":
			id := c.ID
			return c, func() tea.Msg {
				return DeleteConfirmedMsg{ID: id}
			}
		case "n":
			return c, func() tea.Msg {
				return DeleteCancelledMsg{}
			}
		}
	}
	return c, nil
}

// View renders the prompt.
func (c Confirm) View() string {
	var b strings.Builder

	b.WriteString(confirmTitle.Render("Delete Contact") + "\n\n")
	b.WriteString(fmt.Sprintf("Delete %s?\n\n", confirmName.Render("'"+c.Name+"'")))
	b.WriteString(confirmWarn.Render("There is no undo.") + "\n\n")

	b.WriteString(fmt.Sprintf("%s %s  %s %s",
		confirmKey.Render("y"), confirmKeyDesc.Render("delete"),
		confirmKey.Render("n"), confirmKeyDesc.Render("keep"),
	))

	return b.String()
}
