package core

import "github.com/charmbracelet/lipgloss"

type palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

var darkPalette = palette{
	Text:    "#cdd6f4",
	Muted:   "#a6adc8",
	Border:  "#585b70",
	Mantle:  "#181825",
	Surface: "#313244",
	Accent:  "#89b4fa",
	Success: "#a6e3a1",
	Error:   "#f38ba8",
}

var lightPalette = palette{
	Text:    "#4c4f69",
	Muted:   "#6c6f85",
	Border:  "#acb0be",
	Mantle:  "#e6e9ef",
	Surface: "#ccd0da",
	Accent:  "#1e66f5",
	Success: "#40a02b",
	Error:   "#d20f39",
}

var colors = darkPalette

// SetTheme switches the palette before the program starts. Unknown names
// fall back to dark.
func SetTheme(name string) {
	if name == "light" {
		colors = lightPalette
	} else {
		colors = darkPalette
	}
	rebuildStyles()
}
