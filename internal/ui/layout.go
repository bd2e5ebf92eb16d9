package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the chamber panel and the chime panel horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, chamberPanel, chimePanel, statusBar string, width int) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, chamberPanel, chimePanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
