package chime

import (
	"time"

	"koshi-chime.dev/internal/config"
	"koshi-chime.dev/internal/physics"
)

// Instrument wires the ball, the rod field and the chime bank into one
// simulated koshi. All state is owned by the caller's tick loop; nothing
// here is safe for concurrent use.
type Instrument struct {
	Ball  *physics.Ball
	Rods  *RodField
	Bank  *Bank
	ticks uint64
}

// NewInstrument builds a fresh instrument with the ball at rest.
func NewInstrument() *Instrument {
	return &Instrument{
		Ball: physics.NewBall(),
		Rods: NewRodField(),
		Bank: NewBank(),
	}
}

// Tick advances the simulation by one fixed step: integrate the ball under
// the calibrated tilt, detect and resolve rod strikes, then decay the rod
// glow counters. Returned strikes are ready for the note emitter.
func (in *Instrument) Tick(tilt physics.Vec2, now time.Time) []Strike {
	in.ticks++
	in.Ball.Step(tilt)
	strikes := in.Rods.DetectAndResolve(in.Ball, in.Bank.Notes(), now)
	in.Rods.DecayGlow()
	return strikes
}

// Ticks returns the number of simulation steps run so far.
func (in *Instrument) Ticks() uint64 {
	return in.ticks
}

// Reset re-centers the ball. Rod debounce timestamps are kept: a reset must
// not allow an immediate re-strike of a rod that just fired.
func (in *Instrument) Reset() {
	in.Ball.Reset()
}

// NoteFor returns the active pitch bound to a rod index.
func (in *Instrument) NoteFor(rod int) uint8 {
	return in.Bank.Notes()[rod%config.RodCount]
}
