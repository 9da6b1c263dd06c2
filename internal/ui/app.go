package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardfile/cardfile/internal/store"
	"github.com/cardfile/cardfile/internal/ui/components"
	"github.com/cardfile/cardfile/internal/ui/screens"
)

// Screen identifies the current TUI screen.
type Screen int

const (
	ScreenBrowse Screen = iota
	ScreenForm
	ScreenConfirm
	ScreenPath
)

// App is the root Bubble Tea model. It owns the store and is the only
// component that mutates it; every store call runs synchronously inside
// Update, so no two mutations are ever in flight.
type App struct {
	store   *store.Store
	keys    KeyMap
	screen  Screen
	browse  screens.Browse
	form    screens.Form
	confirm screens.Confirm
	path    screens.PathPrompt
	status  components.StatusBar
	query   string
	width   int
	height  int
}

// NewApp creates the root TUI model. warning, when non-empty, is shown
// in the status bar (e.g. a corrupt store file bypassed at load).
func NewApp(st *store.Store, warning string) App {
	a := App{
		store:  st,
		keys:   DefaultKeyMap(),
		screen: ScreenBrowse,
		browse: screens.NewBrowse(),
		form:   screens.NewForm(),
		status: components.NewStatusBar(),
	}
	a.status.Path = st.Path()
	a.status.Warning = warning
	a.refreshList()
	return a
}

// Init returns no initial command; the store was loaded before the
// program started.
func (a App) Init() tea.Cmd {
	return nil
}

// refreshList recomputes the filtered view from the live query and
// pushes it into the browse screen.
func (a *App) refreshList() {
	records := store.Filter(a.store.Contacts(), a.query)
	items := make([]screens.ContactItem, 0, len(records))
	for _, c := range records {
		items = append(items, screens.ContactItem{
			ID:    c.ID,
			Name:  c.Name,
			Phone: c.Phone,
			Email: c.Email,
		})
	}
	a.browse.Contacts = items
	a.browse.Total = a.store.Len()
	if a.browse.Cursor >= len(items) {
		a.browse.Cursor = max(len(items)-1, 0)
	}
	a.status.Count = a.store.Len()
}

// Update handles all messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.status.Width = msg.Width
		contentHeight := msg.Height - 1 // reserve 1 line for status bar
		a.browse.Width = msg.Width
		a.browse.Height = contentHeight
		a.form.Width = msg.Width
		a.form.Height = contentHeight
		a.confirm.Width = msg.Width
		a.confirm.Height = contentHeight
		a.path.Width = msg.Width
		a.path.Height = contentHeight
		return a, nil

	case screens.QueryChangedMsg:
		a.query = msg.Query
		a.browse.Cursor = 0
		a.refreshList()
		return a, nil

	case screens.FormSubmitMsg:
		return a.applyForm(msg)

	case screens.DeleteConfirmedMsg:
		if err := a.store.Delete(msg.ID); err != nil {
			var saveErr *store.SaveError
			if errors.As(err, &saveErr) {
				// The record is gone from memory; the write failed.
				a.status.Warning = saveErr.Error()
			} else {
				a.status.Warning = err.Error()
			}
		} else {
			a.status.Warning = ""
		}
		a.screen = ScreenBrowse
		a.refreshList()
		return a, nil

	case screens.DeleteCancelledMsg:
		a.screen = ScreenBrowse
		return a, nil

	case screens.PathChosenMsg:
		return a.applyPath(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Delegate to the active screen (cursor blink etc).
	var cmd tea.Cmd
	switch a.screen {
	case ScreenBrowse:
		a.browse, cmd = a.browse.Update(msg)
	case ScreenForm:
		a.form, cmd = a.form.Update(msg)
	case ScreenConfirm:
		a.confirm, cmd = a.confirm.Update(msg)
	case ScreenPath:
		a.path, cmd = a.path.Update(msg)
	}
	return a, cmd
}

// applyForm routes a submitted draft to Add or Update. Validation and
// duplicate rejections keep the form open with the message; a failed
// save is a warning because the mutation already stood.
func (a App) applyForm(msg screens.FormSubmitMsg) (tea.Model, tea.Cmd) {
	var err error
	if msg.ID == "" {
		_, err = a.store.Add(msg.Draft)
	} else {
		_, err = a.store.Update(msg.ID, msg.Draft)
	}

	var saveErr *store.SaveError
	switch {
	case err == nil:
		a.status.Warning = ""
	case errors.As(err, &saveErr):
		a.status.Warning = saveErr.Error()
	default:
		a.form.SetError(err.Error())
		return a, nil
	}

	a.form.Reset()
	a.screen = ScreenBrowse
	a.refreshList()
	return a, nil
}

// applyPath runs the import or export for a confirmed path. The prompt
// stays open showing the outcome; esc returns to the list.
func (a App) applyPath(msg screens.PathChosenMsg) (tea.Model, tea.Cmd) {
	if msg.Mode == screens.ModeImport {
		n, err := a.store.ImportMerge(msg.Path)
		var saveErr *store.SaveError
		switch {
		case err == nil:
			a.path.SetSuccess(fmt.Sprintf("Imported %d contact(s)", n))
		case errors.As(err, &saveErr):
			// Merge applied in memory, write failed.
			a.path.SetSuccess(fmt.Sprintf("Imported %d contact(s)", n))
			a.status.Warning = saveErr.Error()
		default:
			a.path.SetError(err.Error())
		}
		a.refreshList()
		return a, nil
	}

	if err := a.store.Export(msg.Path); err != nil {
		a.path.SetError(err.Error())
	} else {
		a.path.SetSuccess("Exported to " + msg.Path)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even mid-typing.
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	var cmd tea.Cmd
	switch a.screen {
	case ScreenBrowse:
		if a.browse.SearchFocused() {
			a.browse, cmd = a.browse.Update(msg)
			return a, cmd
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Add):
			a.form.Reset()
			a.screen = ScreenForm
			return a, a.form.Init()

		case key.Matches(msg, a.keys.Edit):
			if c, ok := a.store.Get(a.browse.SelectedID()); ok {
				a.form.LoadContact(c)
				a.screen = ScreenForm
				return a, a.form.Init()
			}
			return a, nil

		case key.Matches(msg, a.keys.Delete):
			if c, ok := a.store.Get(a.browse.SelectedID()); ok {
				a.confirm = screens.NewConfirm(c.ID, c.Name)
				a.confirm.Width = a.width
				a.confirm.Height = a.height - 1
				a.screen = ScreenConfirm
			}
			return a, nil

		case key.Matches(msg, a.keys.Import):
			a.path = screens.NewPathPrompt(screens.ModeImport)
			a.path.Width = a.width
			a.path.Height = a.height - 1
			a.screen = ScreenPath
			return a, a.path.Init()

		case key.Matches(msg, a.keys.Export):
			a.path = screens.NewPathPrompt(screens.ModeExport)
			a.path.Width = a.width
			a.path.Height = a.height - 1
			a.screen = ScreenPath
			return a, a.path.Init()
		}
		a.browse, cmd = a.browse.Update(msg)
		return a, cmd

	case ScreenForm:
		if key.Matches(msg, a.keys.Back) {
			a.form.Reset()
			a.screen = ScreenBrowse
			return a, nil
		}
		a.form, cmd = a.form.Update(msg)
		return a, cmd

	case ScreenConfirm:
		if key.Matches(msg, a.keys.Back) {
			a.screen = ScreenBrowse
			return a, nil
		}
		a.confirm, cmd = a.confirm.Update(msg)
		return a, cmd

	case ScreenPath:
		if key.Matches(msg, a.keys.Back) {
			a.screen = ScreenBrowse
			return a, nil
		}
		a.path, cmd = a.path.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View renders the current screen plus the status bar.
func (a App) View() string {
	var content string
	switch a.screen {
	case ScreenBrowse:
		content = a.browse.View()
	case ScreenForm:
		content = a.form.View()
	case ScreenConfirm:
		content = a.confirm.View()
	case ScreenPath:
		content = a.path.View()
	}

	return content + "\n" + a.status.View()
}
