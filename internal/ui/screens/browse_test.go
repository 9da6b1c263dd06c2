package screens

import (
	"strings"
	"testing"
)

func threeContacts() []ContactItem {
	return []ContactItem{
		{ID: "id-1", Name: "Alice Hart", Phone: "+1 555-0101", Email: "alice@example.com"},
		{ID: "id-2", Name: "Bob Stone", Phone: "555-0102"},
		{ID: "id-3", Name: "Zoë Muñoz", Phone: "(020) 7946-0958"},
	}
}

func TestBrowse_View_Empty(t *testing.T) {
	b := NewBrowse()
	view := b.View()

	if !strings.Contains(view, "No contacts yet") {
		t.Fatal("empty browse should show 'No contacts yet'")
	}
}

func TestBrowse_View_WithContacts(t *testing.T) {
	b := NewBrowse()
	b.Contacts = threeContacts()
	b.Total = 3
	b.Height = 30

	view := b.View()
	for _, name := range []string{"Alice Hart", "Bob Stone", "Zoë Muñoz"} {
		if !strings.Contains(view, name) {
			t.Fatalf("should display %q", name)
		}
	}
	if !strings.Contains(view, "3 of 3") {
		t.Fatal("should show the filtered/total count")
	}
}

func TestBrowse_CursorNavigation(t *testing.T) {
	b := NewBrowse()
	b.Contacts = threeContacts()

	if b.Cursor != 0 {
		t.Fatal("initial cursor should be 0")
	}

	// Can't go above 0.
	b, _ = b.Update(keyMsg("up"))
	if b.Cursor != 0 {
		t.Fatal("cursor should stay at 0")
	}

	b, _ = b.Update(keyMsg("down"))
	b, _ = b.Update(keyMsg("down"))
	if b.Cursor != 2 {
		t.Fatalf("cursor should be 2, got %d", b.Cursor)
	}

	// Can't go beyond last.
	b, _ = b.Update(keyMsg("down"))
	if b.Cursor != 2 {
		t.Fatal("cursor should stay at 2")
	}
}

func TestBrowse_SelectedID(t *testing.T) {
	b := NewBrowse()
	if b.SelectedID() != "" {
		t.Fatal("empty list should have no selection")
	}

	b.Contacts = threeContacts()
	b, _ = b.Update(keyMsg("down"))
	if got := b.SelectedID(); got != "id-2" {
		t.Fatalf("SelectedID: got %q, want id-2", got)
	}
}

func TestBrowse_SearchEmitsQueryChanges(t *testing.T) {
	b := NewBrowse()
	b.Contacts = threeContacts()

	b, _ = b.Update(keyMsg("/"))
	if !b.SearchFocused() {
		t.Fatal("'/' should focus the search box")
	}

	b, cmd := b.Update(keyMsg("bob"))
	found := false
	for _, msg := range collect(cmd) {
		if q, ok := msg.(QueryChangedMsg); ok && q.Query == "bob" {
			found = true
		}
	}
	if !found {
		t.Fatal("typing should emit QueryChangedMsg with the new text")
	}
	if b.Query() != "bob" {
		t.Fatalf("Query: got %q, want bob", b.Query())
	}
}

func TestBrowse_EnterBlursSearch(t *testing.T) {
	b := NewBrowse()
	b, _ = b.Update(keyMsg("/"))
	b, _ = b.Update(keyMsg("al"))

	b, _ = b.Update(keyMsg("enter"))
	if b.SearchFocused() {
		t.Fatal("enter should leave the search box")
	}
	if b.Query() != "al" {
		t.Fatal("enter should keep the query text")
	}
}

func TestBrowse_EscClearsSearch(t *testing.T) {
	b := NewBrowse()
	b, _ = b.Update(keyMsg("/"))
	b, _ = b.Update(keyMsg("al"))

	b, cmd := b.Update(keyMsg("esc"))
	if b.SearchFocused() {
		t.Fatal("esc should leave the search box")
	}
	if b.Query() != "" {
		t.Fatal("esc should clear the query")
	}
	cleared := false
	for _, msg := range collect(cmd) {
		if q, ok := msg.(QueryChangedMsg); ok && q.Query == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("clearing should emit an empty QueryChangedMsg")
	}
}

func TestBrowse_View_NoMatches(t *testing.T) {
	b := NewBrowse()
	b, _ = b.Update(keyMsg("/"))
	b, _ = b.Update(keyMsg("zzz"))

	if !strings.Contains(b.View(), "No contacts match") {
		t.Fatal("should show the no-match message when a query is active")
	}
}
