package sensor

import tea "github.com/charmbracelet/bubbletea"

// Sample is one raw 2-axis tilt/acceleration reading, roughly normalized to
// standard gravity: a flat, still device reads near (0, 0).
type Sample struct {
	X, Y float64
}

// Msg carries a sample from a source goroutine into the Bubble Tea loop.
type Msg Sample

// ErrorMsg reports a source failure. The tick loop keeps running on the
// last valid sample.
type ErrorMsg struct {
	Err error
}

// Source is a tilt input feeding samples to the program via p.Send.
// Start must not block; Stop must be safe to call more than once.
type Source interface {
	Start(p *tea.Program) error
	Stop()
	Name() string
}
