package keymap

// Binding represents a single id-to-chord-to-handler mapping.
type Binding struct {
	// ID uniquely identifies the binding within the registry.
	// Namespaced by convention: "core:undo", "plugin:vim:surround".
	ID string

	// Keys is the chord string, passed through verbatim to the listener
	// engine. It may contain comma-separated alternatives ("⌘+z, ctrl+z").
	Keys string

	// Handler runs when one of the chord alternatives fires.
	Handler Handler
}
