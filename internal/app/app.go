// Package app wires the keybinding system together: event bus, command
// registry, chord engine and keymap registry, plus optional user
// configuration loaded over the built-in defaults.
package app

import (
	"fmt"

	"github.com/dshills/keybind/internal/command"
	"github.com/dshills/keybind/internal/config/loader"
	"github.com/dshills/keybind/internal/event"
	"github.com/dshills/keybind/internal/keymap"
	"github.com/dshills/keybind/internal/listener"
)

// Options configures the application wiring.
type Options struct {
	// ConfigPath is an optional user configuration file (.toml or
	// .json). Its entries win over host defaults per binding id.
	ConfigPath string

	// Editor is the opaque handle passed to fired handlers.
	Editor keymap.Editor

	// Defaults are host-supplied seed bindings merged over the
	// built-in defaults.
	Defaults map[string]keymap.Default
}

// App owns the wired keybinding components.
type App struct {
	bus      *event.Bus
	commands *command.Registry
	engine   *listener.Engine
	keymap   *keymap.Registry
}

// New wires the components. Nothing is bound in the engine until Load.
func New(opts Options) (*App, error) {
	bus := event.NewBus()
	cmds := command.NewRegistry()
	eng := listener.NewEngine()

	defaults := make(map[string]keymap.Default, len(opts.Defaults))
	for id, d := range opts.Defaults {
		defaults[id] = d
	}

	if opts.ConfigPath != "" {
		file, err := loader.Load(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		// User entries win over host defaults.
		for id, e := range file.Bindings {
			defaults[id] = keymap.Default{Keys: e.Keys, Handler: keymap.Command(e.Command)}
		}
	}

	reg := keymap.New(keymap.Config{
		Binder:   eng,
		Commands: commandSource{reg: cmds},
		Bus:      bus,
		Editor:   opts.Editor,
		Defaults: defaults,
	})

	return &App{
		bus:      bus,
		commands: cmds,
		engine:   eng,
		keymap:   reg,
	}, nil
}

// Load installs the configured default bindings.
func (a *App) Load() error {
	return a.keymap.Load()
}

// Bus returns the event bus.
func (a *App) Bus() *event.Bus { return a.bus }

// Commands returns the command registry.
func (a *App) Commands() *command.Registry { return a.commands }

// Engine returns the chord listening engine.
func (a *App) Engine() *listener.Engine { return a.engine }

// Keymap returns the keybinding registry.
func (a *App) Keymap() *keymap.Registry { return a.keymap }

// commandSource adapts the command registry to the keymap resolver
// boundary.
type commandSource struct {
	reg *command.Registry
}

func (s commandSource) Get(id string) (keymap.Runner, bool) {
	cmd, ok := s.reg.Get(id)
	if !ok {
		return nil, false
	}
	return cmd, true
}
