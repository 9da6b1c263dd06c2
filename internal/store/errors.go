package store

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate means a contact with the same name and phone
	// already exists in the store.
	ErrDuplicate = errors.New("a contact with the same name and phone already exists")

	// ErrNoSelection means the given ID resolves to no contact.
	ErrNoSelection = errors.New("no contact selected")

	// ErrImport means the import file could not be read or parsed.
	// The store is left untouched.
	ErrImport = errors.New("import failed")
)

// SaveError reports a failed write of the store file. The in-memory
// mutation that triggered the save is kept, so memory and disk diverge
// until the next successful save.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// CorruptFileError reports a store file that exists but could not be
// read or parsed. The store starts empty; the file is left alone and
// will be overwritten by the next save.
type CorruptFileError struct {
	Path string
	Err  error
}

func (e *CorruptFileError) Error() string {
	return fmt.Sprintf("could not read %s, starting fresh: %v", e.Path, e.Err)
}

func (e *CorruptFileError) Unwrap() error { return e.Err }
