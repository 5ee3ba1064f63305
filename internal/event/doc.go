// Package event provides the synchronous notification bus used for
// keymap lifecycle and fire events.
//
// Topics are hierarchical, colon-separated strings ("keymap:add",
// "keymap:emit:core:undo"). Subscription patterns may use wildcards:
// "*" matches exactly one segment, "**" matches the rest of the topic.
//
// Delivery is synchronous and in-process: Trigger invokes every
// matching listener before returning. A panicking listener is contained
// and counted; it never unwinds into the trigger site.
package event
