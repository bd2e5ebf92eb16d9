package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"koshi-chime.dev/internal/config"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, variant string, strikes uint64, voices int, midiName string, sensorStale bool) string {
	tuning := StyleStatusLive.Render(fmt.Sprintf("[%s]", variant))

	info := fmt.Sprintf(" Strikes: %d  Voices: %d  Tick: %dHz  Out: %s",
		strikes, voices, config.TickRate, midiName)

	content := tuning + StyleStatusBar.Foreground(ColorAmber).Render(info)
	if sensorStale {
		content += "  " + StyleStatusPaused.Render("[SENSOR STALE]")
	}

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
