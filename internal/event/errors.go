package event

import "errors"

// Sentinel errors for the event bus.
var (
	// ErrNilListener is returned when a nil listener function is provided.
	ErrNilListener = errors.New("listener cannot be nil")

	// ErrInvalidTopic is returned when a topic or pattern is empty.
	ErrInvalidTopic = errors.New("invalid topic")
)
