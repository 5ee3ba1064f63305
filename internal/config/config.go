package config

import "fmt"

// Entry is one configured binding.
type Entry struct {
	// Keys is the chord string, opaque at this layer.
	Keys string `toml:"keys" json:"keys"`

	// Command is the command id the binding resolves at fire time.
	Command string `toml:"command" json:"command"`
}

// File is a parsed keybinding configuration file.
type File struct {
	// Bindings maps binding id to its entry.
	Bindings map[string]Entry `toml:"bindings" json:"bindings"`
}

// Empty returns a File with no bindings.
func Empty() File {
	return File{Bindings: make(map[string]Entry)}
}

// Merge overlays other's entries over f, other winning per id, and
// returns the combined file. Neither input is modified.
func (f File) Merge(other File) File {
	out := Empty()
	for id, e := range f.Bindings {
		out.Bindings[id] = e
	}
	for id, e := range other.Bindings {
		out.Bindings[id] = e
	}
	return out
}

// Validate checks that every entry has keys and a command.
func (f File) Validate() error {
	for id, e := range f.Bindings {
		if id == "" {
			return fmt.Errorf("binding with empty id")
		}
		if e.Keys == "" {
			return fmt.Errorf("binding %q: empty keys", id)
		}
		if e.Command == "" {
			return fmt.Errorf("binding %q: empty command", id)
		}
	}
	return nil
}
