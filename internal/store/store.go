package store

import (
	"strings"

	"github.com/cardfile/cardfile/internal/contact"
)

// Store is the canonical ordered contact list, mirrored to a JSON file
// after every mutation. Insertion order is preserved; search, update
// and delete never reorder it. All operations run to completion on the
// caller's goroutine — there is one thread of control and no locking.
type Store struct {
	contacts []contact.Contact
	path     string
}

// Open creates a store backed by the given file and loads it. A missing
// file yields an empty store and a nil error. A corrupt file yields an
// empty, fully usable store and a *CorruptFileError the caller may
// surface as a warning.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return s, err
	}
	return s, nil
}

// Path returns the store file location.
func (s *Store) Path() string { return s.path }

// Len returns the number of contacts.
func (s *Store) Len() int { return len(s.contacts) }

// Contacts returns a copy of the canonical list in insertion order.
func (s *Store) Contacts() []contact.Contact {
	out := make([]contact.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Get returns the contact with the given ID.
func (s *Store) Get(id string) (contact.Contact, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.contacts[i], true
	}
	return contact.Contact{}, false
}

// Add validates the draft, rejects natural-key duplicates, appends the
// contact and saves. Two contacts with the same name and phone but
// different email or address still count as duplicates. The returned
// error is a *SaveError when the contact was added but the write
// failed; the append stands either way.
func (s *Store) Add(draft contact.Contact) (contact.Contact, error) {
	draft = trimmed(draft)
	if err := contact.Validate(draft); err != nil {
		return contact.Contact{}, err
	}
	for _, c := range s.contacts {
		if c.Key() == draft.Key() {
			return contact.Contact{}, ErrDuplicate
		}
	}
	draft.ID = contact.NewID()
	s.contacts = append(s.contacts, draft)
	return draft, s.save()
}

// Update replaces the fields of the contact with the given ID, keeping
// its position and ID. It does not re-check the natural key against
// other contacts: updating a record onto an existing key merges the two
// entries from the user's point of view and is allowed.
func (s *Store) Update(id string, draft contact.Contact) (contact.Contact, error) {
	i := s.indexOf(id)
	if i < 0 {
		return contact.Contact{}, ErrNoSelection
	}
	draft = trimmed(draft)
	if err := contact.Validate(draft); err != nil {
		return contact.Contact{}, err
	}
	draft.ID = id
	s.contacts[i] = draft
	return draft, s.save()
}

// Delete removes the contact with the given ID and saves. Confirmation
// is the caller's responsibility; Delete assumes it already happened.
func (s *Store) Delete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNoSelection
	}
	s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
	return s.save()
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, c := range s.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func trimmed(c contact.Contact) contact.Contact {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Address = strings.TrimSpace(c.Address)
	return c
}
