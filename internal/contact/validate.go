package contact

import (
	"errors"
	"regexp"
	"strings"
)

// Validation failures. All recoverable: the caller shows the message
// and aborts the operation.
var (
	ErrMissingField = errors.New("name and phone are required")
	ErrInvalidPhone = errors.New("phone must be 7-20 characters of digits, spaces, +, -, ( or )")
	ErrInvalidEmail = errors.New("email must look like name@example.com")
)

var (
	phonePattern = regexp.MustCompile(`^[0-9+\-() ]{7,20}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Validate checks a draft before it is admitted to the store. It is
// pure: no store access, no side effects.
func Validate(c Contact) error {
	name := strings.TrimSpace(c.Name)
	phone := strings.TrimSpace(c.Phone)
	if name == "" || phone == "" {
		return ErrMissingField
	}
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	if email := strings.TrimSpace(c.Email); email != "" && !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
