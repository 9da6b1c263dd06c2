package testutil

import "github.com/cardfile/cardfile/internal/contact"

// Fixed well-formed contacts for tests that need stable data across
// runs. Keys are pairwise distinct.

// Alice returns a deterministic contact fixture.
func Alice() contact.Contact {
	return contact.Contact{
		Name:    "Alice Hart",
		Phone:   "+1 555-0101",
		Email:   "alice@example.com",
		Address: "12 Market St",
	}
}

// Bob returns a deterministic contact fixture with empty optional fields.
func Bob() contact.Contact {
	return contact.Contact{
		Name:  "Bob Stone",
		Phone: "555-0102",
	}
}

// Carol returns a deterministic contact fixture with non-ASCII text and
// a multi-line address.
func Carol() contact.Contact {
	return contact.Contact{
		Name:    "Zoë Muñoz",
		Phone:   "(020) 7946-0958",
		Address: "Flat 3\n18 Cherry Lane",
	}
}
