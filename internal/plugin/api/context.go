package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keybind/internal/keymap"
)

// Module is a Lua API module installable into a plugin state.
type Module interface {
	// Name returns the module name.
	Name() string

	// Register installs the module into the Lua state.
	Register(L *lua.LState) error
}

// KeymapProvider is the registry surface exposed to plugin modules.
// *keymap.Registry satisfies it.
type KeymapProvider interface {
	// Add installs a binding, superseding any existing one with the id.
	Add(id, keys string, h keymap.Handler) (*keymap.Binding, error)

	// Remove deletes a binding by id.
	Remove(id string) (*keymap.Binding, bool)

	// Get returns a binding by id.
	Get(id string) (*keymap.Binding, bool)

	// GetAll returns the live id-to-binding mapping.
	GetAll() map[string]*keymap.Binding
}

// Context carries the host collaborators available to plugin modules.
type Context struct {
	// Keymap is the keybinding registry, or nil when the capability is
	// not granted.
	Keymap KeymapProvider
}
