package keymap

// DefaultBindings returns the built-in seed bindings: undo, redo, copy
// and paste on their conventional macOS and PC chords, each referencing
// the command of the same id.
func DefaultBindings() map[string]Default {
	return map[string]Default{
		"core:undo":  {Keys: "⌘+z, ctrl+z", Handler: Command("core:undo")},
		"core:redo":  {Keys: "⌘+shift+z, ctrl+shift+z", Handler: Command("core:redo")},
		"core:copy":  {Keys: "⌘+c, ctrl+c", Handler: Command("core:copy")},
		"core:paste": {Keys: "⌘+v, ctrl+v", Handler: Command("core:paste")},
	}
}
