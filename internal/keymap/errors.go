package keymap

import "errors"

// Sentinel errors for the keymap registry.
var (
	// ErrEmptyID is returned when a binding id is empty.
	ErrEmptyID = errors.New("binding id cannot be empty")

	// ErrEmptyKeys is returned when a binding chord string is empty.
	ErrEmptyKeys = errors.New("binding keys cannot be empty")

	// ErrNilHandler is returned when a binding handler is missing.
	ErrNilHandler = errors.New("binding handler cannot be empty")

	// ErrCommandNotFound is returned at fire time when a command
	// reference does not resolve in the command registry.
	ErrCommandNotFound = errors.New("command not registered")
)
