package screens

import (
	"strings"
	"testing"

	"github.com/cardfile/cardfile/internal/contact"
)

func findSubmit(t *testing.T, f Form, key string) (Form, *FormSubmitMsg) {
	t.Helper()
	f, cmd := f.Update(keyMsg(key))
	for _, msg := range collect(cmd) {
		if sub, ok := msg.(FormSubmitMsg); ok {
			return f, &sub
		}
	}
	return f, nil
}

func TestForm_SubmitEmitsTypedDraft(t *testing.T) {
	f := NewForm()
	f, _ = f.Update(keyMsg("Ann Lee"))
	f, _ = f.Update(keyMsg("tab"))
	f, _ = f.Update(keyMsg("5550100"))

	f, sub := findSubmit(t, f, "enter")
	if sub == nil {
		t.Fatal("enter should submit the form")
	}
	if sub.ID != "" {
		t.Fatal("a fresh form should submit with an empty ID")
	}
	if sub.Draft.Name != "Ann Lee" || sub.Draft.Phone != "5550100" {
		t.Fatalf("draft: got %+v", sub.Draft)
	}
}

func TestForm_EnterInAddressInsertsNewline(t *testing.T) {
	f := NewForm()
	// tab to the address textarea (name -> phone -> email -> address).
	for range 3 {
		f, _ = f.Update(keyMsg("tab"))
	}
	f, _ = f.Update(keyMsg("Flat 3"))

	f, sub := findSubmit(t, f, "enter")
	if sub != nil {
		t.Fatal("enter inside the address field must not submit")
	}
	f, _ = f.Update(keyMsg("18 Cherry Lane"))

	f, sub = findSubmit(t, f, "ctrl+s")
	if sub == nil {
		t.Fatal("ctrl+s should submit from the address field")
	}
	if !strings.Contains(sub.Draft.Address, "Flat 3\n") {
		t.Fatalf("address should contain the newline: %q", sub.Draft.Address)
	}
}

func TestForm_TabCyclesFields(t *testing.T) {
	f := NewForm()
	for range 4 {
		f, _ = f.Update(keyMsg("tab"))
	}
	// Back at the name field after a full cycle.
	f, _ = f.Update(keyMsg("Cycled"))
	_, sub := findSubmit(t, f, "enter")
	if sub == nil || sub.Draft.Name != "Cycled" {
		t.Fatalf("focus should wrap back to name, draft: %+v", sub)
	}
}

func TestForm_ShiftTabGoesBack(t *testing.T) {
	f := NewForm()
	f, _ = f.Update(keyMsg("tab"))
	f, _ = f.Update(keyMsg("shift+tab"))
	f, _ = f.Update(keyMsg("Back Home"))

	_, sub := findSubmit(t, f, "enter")
	if sub == nil || sub.Draft.Name != "Back Home" {
		t.Fatalf("shift+tab should return to name, draft: %+v", sub)
	}
}

func TestForm_LoadContactForEditing(t *testing.T) {
	f := NewForm()
	f.LoadContact(contact.Contact{
		ID:      "id-7",
		Name:    "Alice Hart",
		Phone:   "+1 555-0101",
		Email:   "alice@example.com",
		Address: "12 Market St",
	})

	if !f.Editing() {
		t.Fatal("LoadContact should put the form in edit mode")
	}
	if !strings.Contains(f.View(), "Edit Contact") {
		t.Fatal("view should show the edit title")
	}

	_, sub := findSubmit(t, f, "enter")
	if sub == nil {
		t.Fatal("enter should submit")
	}
	if sub.ID != "id-7" {
		t.Fatalf("submit ID: got %q, want id-7", sub.ID)
	}
	if sub.Draft.Name != "Alice Hart" || sub.Draft.Address != "12 Market St" {
		t.Fatalf("prefilled draft: got %+v", sub.Draft)
	}
}

func TestForm_ResetClearsEverything(t *testing.T) {
	f := NewForm()
	f.LoadContact(contact.Contact{ID: "id-7", Name: "Alice"})
	f.SetError("boom")
	f.Reset()

	if f.Editing() {
		t.Fatal("Reset should leave edit mode")
	}
	if !strings.Contains(f.View(), "Add Contact") {
		t.Fatal("view should show the add title after reset")
	}
	if strings.Contains(f.View(), "boom") {
		t.Fatal("Reset should clear the error")
	}
}

func TestForm_SetErrorShows(t *testing.T) {
	f := NewForm()
	f.SetError("name and phone are required")
	if !strings.Contains(f.View(), "name and phone are required") {
		t.Fatal("error message should render")
	}
}
