package ui

import "github.com/charmbracelet/lipgloss"

// Warm amber/bronze palette
var (
	ColorAmberBright = lipgloss.Color("#FFE08A")
	ColorAmber       = lipgloss.Color("#FFC247")
	ColorBronze      = lipgloss.Color("#C98A2D")
	ColorDimBronze   = lipgloss.Color("#5A4018")
	ColorBall        = lipgloss.Color("#7FD4FF")
	ColorWarning     = lipgloss.Color("#FF8844")
	ColorError       = lipgloss.Color("#FF3300")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#2A1E08")).
			Foreground(ColorAmberBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAmberBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorAmber)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#2A1E08")).
			Foreground(ColorAmber).
			Padding(0, 1)

	StyleStatusLive = lipgloss.NewStyle().
			Foreground(ColorAmberBright).
			Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBronze)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorAmberBright).
			Bold(true).
			Padding(0, 1)

	StyleVariantActive = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(ColorAmber).
				Bold(true)

	StyleVariantIdle = lipgloss.NewStyle().
				Foreground(ColorBronze)

	StyleStrikePitch = lipgloss.NewStyle().
				Foreground(ColorAmberBright).
				Bold(true)

	StyleStrikeMeta = lipgloss.NewStyle().
			Foreground(ColorBronze)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorDimBronze)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimBronze)

	StyleGaugeArrow = lipgloss.NewStyle().
			Foreground(ColorBall).
			Bold(true)

	StyleGaugeRing = lipgloss.NewStyle().
			Foreground(ColorDimBronze)
)
