package widgets

type Widget interface {
	Render(width, height int) string
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
