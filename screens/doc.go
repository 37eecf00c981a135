// Package screens contains concrete overlay flows rendered on top of the
// home view.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (quick pick, command
//   palette, colon prompt, document viewer)
// - the bridges that adapt those screens to the picker and opener
//   interfaces the action layer consumes
//
// Not allowed here:
// - key registry ownership and app-wide routing
// - low-level widget primitives
package screens
