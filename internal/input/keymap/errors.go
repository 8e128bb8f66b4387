package keymap

import (
	"errors"
	"fmt"
)

// Errors returned by binding operations.
var (
	// ErrDoubleInit indicates InitAndLoad was called after another call
	// claimed initialization.
	ErrDoubleInit = errors.New("key bindings already initialized")

	// ErrUninitialized indicates bindings were read before InitAndLoad
	// committed a table.
	ErrUninitialized = errors.New("key bindings not initialized")

	// ErrUnknownEvent indicates an event name that was never defined.
	ErrUnknownEvent = errors.New("unknown event")

	// ErrInvalidDefinition indicates a malformed event definition.
	ErrInvalidDefinition = errors.New("invalid event definition")

	// ErrDefaultBinding indicates a compiled-in default chord that does
	// not parse. It is a programming error and aborts loading.
	ErrDefaultBinding = errors.New("invalid default binding")

	// ErrConfigRead indicates the override file could not be read.
	ErrConfigRead = errors.New("cannot read key binding config")

	// ErrConfigFormat indicates override content that is not a valid
	// partial binding document.
	ErrConfigFormat = errors.New("invalid key binding config")
)

// FormatError describes an override document that could not be applied.
type FormatError struct {
	// Path is the file path or environment source.
	Path string
	// Event is the offending key, empty when the whole document is bad.
	Event string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Event != "" {
		return fmt.Sprintf("%v: %s: %q: %v", ErrConfigFormat, e.Path, e.Event, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrConfigFormat, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is implements error matching for FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrConfigFormat
}
