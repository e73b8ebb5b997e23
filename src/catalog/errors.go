package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every error which signals that a requested entity is
// not in the catalog.
var ErrNotFound = errors.New("not found")

// NotFoundError describes what exactly was not found. Kind is one of "artist",
// "album", "genre" or "song".
type NotFoundError struct {
	Kind string
	Name string

	// Artist is set when the missing entity was looked up inside a known artist.
	Artist string

	// Suggestion is the closest name of the same kind present in the catalog. It
	// may be empty.
	Suggestion string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", e.Kind, e.Name)
	if e.Artist != "" {
		msg = fmt.Sprintf("%s %q not found for artist %q", e.Kind, e.Name, e.Artist)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", e.Suggestion)
	}
	return msg
}

// Unwrap makes errors.Is(err, ErrNotFound) work.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func notFound(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}
