package ui

// RenderChamberPanel wraps chamber content with a styled border.
// The actual chamber rendering is done externally to avoid import cycles.
func RenderChamberPanel(width, height int, chamberContent, legend string) string {
	content := chamberContent + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
