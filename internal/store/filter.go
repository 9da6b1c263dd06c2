package store

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/cardfile/cardfile/internal/contact"
)

var matcher = search.New(language.Und, search.IgnoreCase)

// Filter returns the order-preserving subsequence of contacts whose
// name or phone contains query, case-insensitively. Email and address
// are not searched. A blank or whitespace-only query returns contacts
// unchanged. Filter is pure; it never touches canonical state.
func Filter(contacts []contact.Contact, query string) []contact.Contact {
	query = strings.TrimSpace(query)
	if query == "" {
		return contacts
	}
	out := make([]contact.Contact, 0, len(contacts))
	for _, c := range contacts {
		if containsFold(c.Name, query) || containsFold(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	start, _ := matcher.IndexString(s, substr)
	return start >= 0
}
