// Package api exposes the keybinding registry to Lua plugins.
//
// A plugin binds keys through the _kb_keymap module:
//
//	_kb_keymap.set("myplugin:jump", "ctrl+j", "nav:jump")
//	_kb_keymap.set("myplugin:hello", "ctrl+h", function(ed) ... end)
//	_kb_keymap.del("myplugin:jump")
//
// The handler argument is either a command id (resolved at fire time in
// the command registry) or a Lua function invoked with the editor
// handle. Re-binding an id supersedes the previous binding, so plugins
// get last-wins rebinding without explicit cleanup.
package api
