package contact

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// Contact is one entry in the book. ID is an in-memory identifier only;
// the persisted file carries just the four string fields.
type Contact struct {
	ID      string `json:"-"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

var keyFold = cases.Fold()

// Key returns the natural key used for duplicate detection: the
// case-folded trimmed name joined with the exact trimmed phone.
func (c Contact) Key() string {
	return keyFold.String(strings.TrimSpace(c.Name)) + "\x00" + strings.TrimSpace(c.Phone)
}

// NewID returns a fresh identifier for an in-memory contact.
func NewID() string {
	return uuid.NewString()
}
