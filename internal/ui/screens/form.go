package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cardfile/cardfile/internal/contact"
)

var (
	formTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1)

	formLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22D3EE")).
			Bold(true)

	formHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	formErr = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171"))

	formKey = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22D3EE")).
			Bold(true)
)

// FormSubmitMsg is emitted when the user submits the contact form.
// ID is empty for a new contact and set when editing an existing one.
type FormSubmitMsg struct {
	ID    string
	Draft contact.Contact
}

// FormField tracks which input is focused.
type FormField int

const (
	FieldName FormField = iota
	FieldPhone
	FieldEmail
	FieldAddress
)

// Form is the add/edit contact screen. It does no validation of its
// own: the draft is submitted as typed and rejections come back via
// SetError.
type Form struct {
	nameInput  textinput.Model
	phoneInput textinput.Model
	emailInput textinput.Model
	addrInput  textarea.Model
	focused    FormField
	editID     string
	err        string
	Width      int
	Height     int
}

// NewForm creates an empty contact form.
func NewForm() Form {
	name := textinput.New()
	name.Placeholder = "Acme Traders"
	name.CharLimit = 64
	name.Focus()

	phone := textinput.New()
	phone.Placeholder = "+1 555-0100"
	phone.CharLimit = 20

	email := textinput.New()
	email.Placeholder = "(optional)"
	email.CharLimit = 64

	addr := textarea.New()
	addr.Placeholder = "(optional)"
	addr.CharLimit = 256
	addr.SetHeight(4)
	addr.ShowLineNumbers = false

	return Form{
		nameInput:  name,
		phoneInput: phone,
		emailInput: email,
		addrInput:  addr,
		focused:    FieldName,
	}
}

// Init starts cursor blinking.
func (f Form) Init() tea.Cmd {
	return textinput.Blink
}

// Editing reports whether the form targets an existing contact.
func (f Form) Editing() bool { return f.editID != "" }

// LoadContact fills the form with an existing contact for editing.
func (f *Form) LoadContact(c contact.Contact) {
	f.editID = c.ID
	f.nameInput.SetValue(c.Name)
	f.phoneInput.SetValue(c.Phone)
	f.emailInput.SetValue(c.Email)
	f.addrInput.SetValue(c.Address)
	f.setFocus(FieldName)
	f.err = ""
}

// Reset clears the form for a new contact.
func (f *Form) Reset() {
	f.editID = ""
	f.nameInput.SetValue("")
	f.phoneInput.SetValue("")
	f.emailInput.SetValue("")
	f.addrInput.SetValue("")
	f.setFocus(FieldName)
	f.err = ""
}

// SetError shows a rejection message under the inputs.
func (f *Form) SetError(msg string) {
	f.err = msg
}

func (f *Form) setFocus(field FormField) {
	f.focused = field
	f.nameInput.Blur()
	f.phoneInput.Blur()
	f.emailInput.Blur()
	f.addrInput.Blur()
	switch field {
	case FieldName:
		f.nameInput.Focus()
	case FieldPhone:
		f.phoneInput.Focus()
	case FieldEmail:
		f.emailInput.Focus()
	case FieldAddress:
		f.addrInput.Focus()
	}
}

func (f Form) submit() (Form, tea.Cmd) {
	id := f.editID
	draft := contact.Contact{
		Name:    f.nameInput.Value(),
		Phone:   f.phoneInput.Value(),
		Email:   f.emailInput.Value(),
		Address: f.addrInput.Value(),
	}
	return f, func() tea.Msg {
		return FormSubmitMsg{ID: id, Draft: draft}
	}
}

// Update handles messages.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			f.err = ""
			f.setFocus((f.focused + 1) % 4)
			return f, nil

		case "shift+tab":
			f.err = ""
			f.setFocus((f.focused + 3) % 4)
			return f, nil

		case "ctrl+s":
			return f.submit()

		case "enter":
			// Enter inside the address textarea inserts a newline;
			// everywhere else it submits.
			if f.focused != FieldAddress {
				return f.submit()
			}
		}
	}

	var cmd tea.Cmd
	switch f.focused {
	case FieldName:
		f.nameInput, cmd = f.nameInput.Update(msg)
	case FieldPhone:
		f.phoneInput, cmd = f.phoneInput.Update(msg)
	case FieldEmail:
		f.emailInput, cmd = f.emailInput.Update(msg)
	case FieldAddress:
		f.addrInput, cmd = f.addrInput.Update(msg)
	}
	return f, cmd
}

// View renders the form.
func (f Form) View() string {
	var b strings.Builder

	title := "Add Contact"
	if f.Editing() {
		title = "Edit Contact"
	}
	b.WriteString(formTitle.Render(title) + "\n\n")

	b.WriteString(formLabel.Render("Name *") + "\n")
	b.WriteString(f.nameInput.View() + "\n\n")

	b.WriteString(formLabel.Render("Phone *") + "\n")
	b.WriteString(f.phoneInput.View() + "\n\n")

	b.WriteString(formLabel.Render("Email") + "\n")
	b.WriteString(f.emailInput.View() + "\n\n")

	b.WriteString(formLabel.Render("Address") + "\n")
	b.WriteString(f.addrInput.View() + "\n\n")

	if f.err != "" {
		b.WriteString(formErr.Render(f.err) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		formKey.Render("enter"), formHint.Render("save"),
		formKey.Render("ctrl+s"), formHint.Render("save (in address)"),
		formKey.Render("tab"), formHint.Render("next field"),
		formKey.Render("esc"), formHint.Render("cancel"),
	))

	return b.String()
}
