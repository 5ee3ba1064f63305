package event

import "strings"

// Topic represents a hierarchical event type using colon notation.
// Examples: "keymap:add", "keymap:emit:core:undo"
type Topic string

// Wildcard constants for pattern matching.
const (
	// WildcardSingle matches exactly one segment.
	WildcardSingle = "*"

	// WildcardMulti matches zero or more trailing segments.
	WildcardMulti = "**"

	// Separator is the character used to separate topic segments.
	Separator = ":"
)

// String returns the topic as a string.
func (t Topic) String() string {
	return string(t)
}

// Segments returns the topic split by the separator.
func (t Topic) Segments() []string {
	if t == "" {
		return nil
	}
	return strings.Split(string(t), Separator)
}

// Child returns a child topic by appending a segment.
//
// Example: Topic("keymap:emit").Child("core:undo") -> "keymap:emit:core:undo"
func (t Topic) Child(segment string) Topic {
	if t == "" {
		return Topic(segment)
	}
	return Topic(string(t) + Separator + segment)
}

// IsPattern reports whether the topic contains wildcard segments.
func (t Topic) IsPattern() bool {
	for _, seg := range t.Segments() {
		if seg == WildcardSingle || seg == WildcardMulti {
			return true
		}
	}
	return false
}

// Match reports whether a concrete topic matches a pattern.
// "*" matches exactly one segment; "**" matches zero or more trailing
// segments and must be the last pattern segment to have that meaning.
func Match(pattern, topic Topic) bool {
	if pattern == topic {
		return true
	}

	ps := pattern.Segments()
	ts := topic.Segments()

	for i, seg := range ps {
		if seg == WildcardMulti && i == len(ps)-1 {
			return true
		}
		if i >= len(ts) {
			return false
		}
		if seg != WildcardSingle && seg != ts[i] {
			return false
		}
	}
	return len(ps) == len(ts)
}
