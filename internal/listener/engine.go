package listener

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// Event is the raw key event delivered to callbacks. The engine does not
// inspect it; it is passed through from the input source.
type Event = any

// Match describes which chord alternative fired.
type Match struct {
	// Shortcut is the matched alternative as written in the bound chord string.
	Shortcut string
}

// Callback is invoked when a dispatched key event matches a bound chord.
type Callback func(ev Event, m Match) error

// Binder is the binding surface driven by the keymap registry.
type Binder interface {
	// Bind registers a callback for every alternative in the chord string.
	Bind(chord string, cb Callback)

	// Unbind removes all callbacks registered under the chord string.
	Unbind(chord string)
}

// Engine dispatches key chords to bound callbacks.
type Engine struct {
	mu sync.RWMutex

	// alternatives maps a normalized alternative to its bound entries.
	alternatives map[string][]entry
}

type entry struct {
	origin   string // chord string as passed to Bind
	shortcut string // this alternative as written
	cb       Callback
}

// NewEngine creates an empty dispatch engine.
func NewEngine() *Engine {
	return &Engine{
		alternatives: make(map[string][]entry),
	}
}

// Bind registers a callback for every alternative in the chord string.
// A nil callback is ignored.
func (e *Engine) Bind(chord string, cb Callback) {
	if cb == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, alt := range SplitAlternatives(chord) {
		key := Normalize(alt)
		e.alternatives[key] = append(e.alternatives[key], entry{
			origin:   chord,
			shortcut: alt,
			cb:       cb,
		})
	}
}

// Unbind removes every callback that was registered under the chord string.
// Unknown chords are a no-op.
func (e *Engine) Unbind(chord string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, alt := range SplitAlternatives(chord) {
		key := Normalize(alt)
		entries := e.alternatives[key]

		kept := entries[:0]
		for _, en := range entries {
			if en.origin != chord {
				kept = append(kept, en)
			}
		}

		if len(kept) == 0 {
			delete(e.alternatives, key)
		} else {
			e.alternatives[key] = kept
		}
	}
}

// Dispatch fires every callback bound to the pressed chord, passing the
// raw event and the matched alternative. Callback errors are joined and
// returned to the caller; dispatch continues past a failing callback.
func (e *Engine) Dispatch(ev Event, pressed string) error {
	key := Normalize(pressed)

	e.mu.RLock()
	entries := make([]entry, len(e.alternatives[key]))
	copy(entries, e.alternatives[key])
	e.mu.RUnlock()

	var errs []error
	for _, en := range entries {
		if err := en.cb(ev, Match{Shortcut: en.shortcut}); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Bound reports whether any callback is registered for the chord alternative.
func (e *Engine) Bound(alt string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.alternatives[Normalize(alt)]) > 0
}

// Count returns the number of live callback registrations across all
// alternatives.
func (e *Engine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	n := 0
	for _, entries := range e.alternatives {
		n += len(entries)
	}
	return n
}

// SplitAlternatives splits a chord string into its comma-separated
// alternatives, trimming surrounding whitespace and dropping empties.
func SplitAlternatives(chord string) []string {
	parts := strings.Split(chord, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// modRank fixes the canonical modifier order within a normalized chord.
var modRank = map[string]int{
	"ctrl":  0,
	"alt":   1,
	"shift": 2,
	"meta":  3,
}

// Normalize canonicalizes a single chord alternative for matching:
// tokens are lower-cased, modifier aliases fold to their canonical
// names (⌘/cmd/super -> meta, control -> ctrl, option -> alt), and
// modifiers are ordered ctrl, alt, shift, meta ahead of the key.
func Normalize(alt string) string {
	raw := strings.Split(strings.TrimSpace(alt), "+")

	mods := make([]string, 0, len(raw))
	keys := make([]string, 0, 1)
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		switch t {
		case "⌘", "cmd", "command", "super", "win":
			t = "meta"
		case "control":
			t = "ctrl"
		case "option", "opt":
			t = "alt"
		}
		if _, ok := modRank[t]; ok {
			mods = append(mods, t)
		} else if t != "" {
			keys = append(keys, t)
		}
	}

	sort.Slice(mods, func(i, j int) bool {
		return modRank[mods[i]] < modRank[mods[j]]
	})

	return strings.Join(append(mods, keys...), "+")
}
