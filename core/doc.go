// Package core owns the application model, routing, key registry, and
// command registry for the preferences deck.
//
// Allowed here:
// - the bubbletea Model and its update/view routing
// - scoped key bindings and the command registry
// - picker filtering state shared by overlay screens
//
// Not allowed here:
// - concrete overlay screens (those live in screens/)
// - low-level render primitives (those live in widgets/)
package core
