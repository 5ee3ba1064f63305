// Package keymap provides the key-binding registry: it associates
// symbolic action identifiers with key chord sequences and runnable
// handlers, keeping exactly one active binding per identifier.
//
// # Bindings
//
// A Binding ties an identifier ("core:undo") to an opaque chord string
// and a Handler. Chord syntax belongs to the listener engine; this
// package passes chord strings through verbatim.
//
// # Handlers
//
// A Handler is one of three variants: a command reference (a string id
// resolved through the command registry at fire time), a callback
// function, or a run-capable object. Command references resolve lazily,
// so a binding may be installed before its target command exists.
//
// # Lifecycle
//
// Add installs a binding and subscribes its chord with the listener
// engine; adding an existing id fully removes the old binding first, so
// at most one engine subscription exists per id. Remove is idempotent.
// The bus is notified on every transition: "keymap:add" and
// "keymap:remove" carry the binding, and each firing triggers both
// "keymap:emit" and the per-identifier "keymap:emit:<id>" channel.
//
// # Usage
//
//	reg := keymap.New(keymap.Config{
//	    Binder:   engine,
//	    Commands: commands,
//	    Bus:      bus,
//	    Editor:   editor,
//	})
//	if err := reg.Load(); err != nil { ... }
//
//	reg.Add("find:next", "ctrl+g", keymap.Command("find:next"))
package keymap
