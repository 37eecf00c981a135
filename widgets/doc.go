// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (panes, rows, tables, the popup compositor)
//
// Not allowed here:
// - key handling, model state, scope logic
package widgets
