// Package listener implements the global key-chord dispatch engine.
//
// The engine owns chord syntax: a bound chord string is a set of
// comma-separated alternatives ("⌘+z, ctrl+z"), each alternative a set
// of +-joined tokens. Callers above this package treat chord strings as
// opaque data.
//
// # Binding Model
//
// Bind registers a callback for every alternative in a chord string.
// Unbind removes everything that was registered under that exact chord
// string; it is keyed by the string passed to Bind, not by the
// individual alternatives.
//
// # Dispatch
//
// Dispatch fires synchronously. The pressed chord is normalized (token
// case, modifier aliases, modifier order) before lookup, so "Ctrl+Z",
// "ctrl+z" and "control+z" all reach a binding registered as "ctrl+z".
//
// # Terminal Input
//
// ChordFromEvent and Pump adapt tcell key events into chord strings so
// a terminal host can drive the engine directly.
package listener
