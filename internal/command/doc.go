// Package command provides the registry that resolves command
// identifiers to runnable commands.
//
// The keymap layer resolves string handlers through this registry at
// fire time, so a binding may reference a command id before the command
// itself is registered.
package command
