// Package config models user keybinding configuration: a mapping from
// binding id to chord string and command id, loaded from a TOML or JSON
// file and merged over the built-in defaults (user entries win per id).
package config
