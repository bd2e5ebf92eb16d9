package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"koshi-chime.dev/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, sensorName string, paused bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"←/→", " chime"},
		{"C", "alibrate"},
		{"Space", " pause"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := ""
	if paused {
		status = StyleStatusPaused.Render("PAUSED")
	} else {
		status = StyleStatusLive.Render("PLAYING")
	}

	sensorInfo := StyleMenuLabel.Render(fmt.Sprintf("Sensor: %s", sensorName))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + sensorInfo + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
