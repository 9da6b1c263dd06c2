package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	browseTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1)

	browseEmpty = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)

	browseKey = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22D3EE")).
			Bold(true)

	browseKeyDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	browseSelected = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true)

	browseMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// ContactItem is one row in the browse list.
type ContactItem struct {
	ID    string
	Name  string
	Phone string
	Email string
}

// QueryChangedMsg is emitted whenever the search text changes. The app
// recomputes the filtered view and pushes it back into Contacts.
type QueryChangedMsg struct {
	Query string
}

// Browse is the main list screen: a search box plus the filtered,
// order-preserving view of the store.
type Browse struct {
	Contacts []ContactItem // current filtered view
	Cursor   int
	Total    int // canonical store size, for the "n of m" line
	search   textinput.Model
	Width    int
	Height   int
}

// NewBrowse creates the browse screen.
func NewBrowse() Browse {
	search := textinput.New()
	search.Placeholder = "name or phone"
	search.Prompt = "/ "
	search.CharLimit = 64
	return Browse{search: search}
}

// Init returns no initial command.
func (b Browse) Init() tea.Cmd {
	return nil
}

// SearchFocused reports whether keystrokes go to the search box.
func (b Browse) SearchFocused() bool {
	return b.search.Focused()
}

// Query returns the current search text.
func (b Browse) Query() string {
	return b.search.Value()
}

// SelectedID returns the ID of the row under the cursor, or "" when the
// list is empty. Selection is by ID, never by index into the canonical
// list: filtered and canonical positions diverge whenever a query is
// active.
func (b Browse) SelectedID() string {
	if len(b.Contacts) == 0 || b.Cursor >= len(b.Contacts) {
		return ""
	}
	return b.Contacts[b.Cursor].ID
}

// Update handles messages.
func (b Browse) Update(msg tea.Msg) (Browse, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		return b, cmd
	}

	if b.search.Focused() {
		switch kmsg.String() {
		case "enter":
			b.search.Blur()
			return b, nil
		case "esc":
			b.search.Blur()
			if b.search.Value() != "" {
				b.search.SetValue("")
				return b, func() tea.Msg { return QueryChangedMsg{Query: ""} }
			}
			return b, nil
		}
		before := b.search.Value()
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		if after := b.search.Value(); after != before {
			query := after
			return b, tea.Batch(cmd, func() tea.Msg { return QueryChangedMsg{Query: query} })
		}
		return b, cmd
	}

	switch kmsg.String() {
	case "up", "k":
		if b.Cursor > 0 {
			b.Cursor--
		}
	case "down", "j":
		if b.Cursor < len(b.Contacts)-1 {
			b.Cursor++
		}
	case "/":
		return b, b.search.Focus()
	}
	return b, nil
}

// visibleRows returns how many list rows fit in the current height.
func (b Browse) visibleRows() int {
	// title + search + blank + count line + blank + hints
	rows := b.Height - 8
	if rows < 3 {
		rows = 3
	}
	return rows
}

// View renders the browse screen.
func (b Browse) View() string {
	var bld strings.Builder
	bld.WriteString(browseTitle.Render("Cardfile") + "\n")
	bld.WriteString(b.search.View() + "\n\n")

	if len(b.Contacts) == 0 {
		if strings.TrimSpace(b.search.Value()) != "" {
			bld.WriteString(browseEmpty.Render("No contacts match the search.") + "\n")
		} else {
			bld.WriteString(browseEmpty.Render("No contacts yet. Press 'a' to add one.") + "\n")
		}
	} else {
		rows := b.visibleRows()
		start := 0
		if b.Cursor >= rows {
			start = b.Cursor - rows + 1
		}
		end := min(start+rows, len(b.Contacts))
		for i := start; i < end; i++ {
			c := b.Contacts[i]
			cursor := "  "
			line := fmt.Sprintf("%-24s %-16s", c.Name, c.Phone)
			if i == b.Cursor {
				cursor = "> "
				line = browseSelected.Render(line)
			}
			email := ""
			if c.Email != "" {
				email = browseMuted.Render(c.Email)
			}
			fmt.Fprintf(&bld, "%s%s %s\n", cursor, line, email)
		}
		fmt.Fprintf(&bld, "\n%s\n", browseMuted.Render(fmt.Sprintf("%d of %d", len(b.Contacts), b.Total)))
	}

	bld.WriteString("\n")
	fmt.Fprintf(&bld, "%s %s  %s %s  %s %s  %s %s  %s %s  %s %s  %s %s",
		browseKey.Render("/"), browseKeyDesc.Render("search"),
		browseKey.Render("a"), browseKeyDesc.Render("add"),
		browseKey.Render("enter"), browseKeyDesc.Render("edit"),
		browseKey.Render("d"), browseKeyDesc.Render("delete"),
		browseKey.Render("i"), browseKeyDesc.Render("import"),
		browseKey.Render("x"), browseKeyDesc.Render("export"),
		browseKey.Render("q"), browseKeyDesc.Render("quit"),
	)

	return bld.String()
}
