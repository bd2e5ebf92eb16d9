package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"koshi-chime.dev/internal/chime"
	"koshi-chime.dev/internal/config"
	"koshi-chime.dev/internal/midiout"
)

// RenderChimePanel renders the right-hand panel: the tuning selector, a
// velocity meter for the most recent strike, and the recent-strike log.
// Newest strikes come first in recent.
func RenderChimePanel(width, height int, variants []string, active int, recent []chime.Strike, gauge string) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2
	if innerH < 4 {
		innerH = 4
	}

	lines := []string{
		StylePanelTitle.Render("TUNING"),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
	}

	for i, name := range variants {
		if i == active {
			lines = append(lines, StyleVariantActive.Render(fmt.Sprintf(" > %-8s", name)))
		} else {
			lines = append(lines, StyleVariantIdle.Render(fmt.Sprintf("   %-8s", name)))
		}
	}

	lines = append(lines, "")
	if gauge != "" {
		lines = append(lines, strings.Split(gauge, "\n")...)
		lines = append(lines, "")
	}

	lines = append(lines,
		StylePanelTitle.Render(fmt.Sprintf("STRIKES [%d]", len(recent))),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
	)

	if len(recent) == 0 {
		lines = append(lines, StyleHelp.Render(" Tilt to play..."))
	} else {
		barW := innerW - 14
		if barW < 6 {
			barW = 6
		}
		for _, s := range recent {
			if len(lines) >= innerH {
				break
			}
			pitch := StyleStrikePitch.Render(fmt.Sprintf("%-3s", midiout.PitchName(s.Pitch)))
			meta := StyleStrikeMeta.Render(fmt.Sprintf("rod %d ", s.Rod))
			bar := renderVelocityBar(s.Velocity, barW)
			lines = append(lines, fmt.Sprintf(" %s %s%s", pitch, meta, bar))
		}
	}

	// Pad to fill the panel
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	content := strings.Join(lines, "\n")
	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(content)

	// Hard clamp to exactly `height` lines; lipgloss Height() only sets
	// a minimum and won't truncate overflow.
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	for len(outLines) < height {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}

// renderVelocityBar draws a horizontal meter scaled to the MIDI velocity
// range, brighter at higher velocity.
func renderVelocityBar(velocity uint8, width int) string {
	filled := int(float64(velocity) / float64(config.MaxVelocity) * float64(width))
	if filled > width {
		filled = width
	}

	color := ColorBronze
	switch {
	case velocity > 100:
		color = ColorAmberBright
	case velocity > 60:
		color = ColorAmber
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("=", filled))
	rest := StyleSeparator.Render(strings.Repeat(".", width-filled))
	return bar + rest + StyleStrikeMeta.Render(fmt.Sprintf(" %3d", velocity))
}
