package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cardfile/cardfile/internal/contact"
)

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // no file yet — not an error
		}
		return &CorruptFileError{Path: s.path, Err: err}
	}

	var list []contact.Contact
	if err := json.Unmarshal(data, &list); err != nil {
		return &CorruptFileError{Path: s.path, Err: err}
	}
	for i := range list {
		list[i].ID = contact.NewID()
	}
	s.contacts = list
	return nil
}

func (s *Store) save() error {
	if err := writeFile(s.path, s.contacts); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}
	return nil
}

// Export writes the current store to an arbitrary path using the same
// serialization as the store file.
func (s *Store) Export(path string) error {
	if err := writeFile(path, s.contacts); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}

// ImportMerge reads a JSON array from path and appends every element
// that has a name and a phone and whose natural key is not already in
// the store. Imported records get presence checks only; the phone and
// email format rules applied to interactive edits are deliberately
// skipped here. Returns the number of contacts actually added. On a
// read or parse failure the error wraps ErrImport and the store is
// untouched.
func (s *Store) ImportMerge(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrImport, err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrImport, err)
	}

	existing := make(map[string]bool, len(s.contacts))
	for _, c := range s.contacts {
		existing[c.Key()] = true
	}

	added := 0
	for _, m := range raw {
		c := trimmed(contact.Contact{
			Name:    asText(m["name"]),
			Phone:   asText(m["phone"]),
			Email:   asText(m["email"]),
			Address: asText(m["address"]),
		})
		if c.Name == "" || c.Phone == "" {
			continue
		}
		// Dedup against the pre-merge store only; the import file is
		// taken at its word about its own contents.
		if existing[c.Key()] {
			continue
		}
		c.ID = contact.NewID()
		s.contacts = append(s.contacts, c)
		added++
	}
	return added, s.save()
}

// asText coerces a decoded JSON value to its textual form. Absent and
// null fields become empty text.
func asText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

// encode renders contacts in the persisted format: a pretty-printed
// JSON array with two-space indentation and non-ASCII text kept
// literal. Email and address are always present, possibly empty.
func encode(w io.Writer, list []contact.Contact) error {
	if list == nil {
		list = []contact.Contact{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func writeFile(path string, list []contact.Contact) error {
	var buf bytes.Buffer
	if err := encode(&buf, list); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o600)
}
