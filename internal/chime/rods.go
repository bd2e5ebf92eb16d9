package chime

import (
	"math"
	"time"

	"koshi-chime.dev/internal/config"
	"koshi-chime.dev/internal/physics"
)

// Rod is one fixed collision target on the ring. Position is computed once
// at setup and never changes; LastHit and Glow are mutated by collision
// detection and the per-tick glow decay.
type Rod struct {
	Index   int
	Pos     physics.Vec2
	LastHit time.Time
	Glow    int // Remaining highlight frames, render-only
}

// Strike is one detected ball-rod collision, already debounced.
type Strike struct {
	Rod      int
	Pitch    uint8
	Velocity uint8
	At       time.Time
}

// RodField owns the 8 rods and the collision/debounce logic.
type RodField struct {
	rods [config.RodCount]Rod
}

// NewRodField places the rods evenly on the rod ring, index 0 at north,
// increasing clockwise.
func NewRodField() *RodField {
	f := &RodField{}
	for i := range f.rods {
		a := 2 * math.Pi * float64(i) / config.RodCount
		f.rods[i] = Rod{
			Index: i,
			Pos: physics.Vec2{
				X: config.RodRingRadius * math.Sin(a),
				Y: -config.RodRingRadius * math.Cos(a),
			},
		}
	}
	return f
}

// Rods returns a snapshot copy of the rod states for rendering.
func (f *RodField) Rods() [config.RodCount]Rod {
	return f.rods
}

// DetectAndResolve checks every rod against the ball in index order and
// returns the strikes fired this tick. A rod fires when the ball is within
// HitThreshold and the rod's debounce window has elapsed; the ball is then
// kicked outward along the rod-to-ball direction at a fixed rebound speed
// (a deliberate velocity overwrite, not an elastic reflection).
func (f *RodField) DetectAndResolve(ball *physics.Ball, notes [config.RodCount]uint8, now time.Time) []Strike {
	var strikes []Strike
	for i := range f.rods {
		rod := &f.rods[i]

		away := ball.Pos.Sub(rod.Pos)
		if away.Len() >= config.HitThreshold {
			continue
		}
		if !rod.LastHit.IsZero() && now.Sub(rod.LastHit) <= config.DebounceWindow {
			continue
		}

		vel := StrikeVelocity(ball.Speed())
		rod.LastHit = now
		rod.Glow = config.GlowFrames

		strikes = append(strikes, Strike{
			Rod:      i,
			Pitch:    notes[i],
			Velocity: vel,
			At:       now,
		})

		// Springy outward kick. Skip the redirect when the ball sits
		// exactly on the rod center: no usable normal.
		if n := away.Normalize(config.MinSeparation); n != (physics.Vec2{}) {
			ball.Vel = n.Scale(config.ReboundSpeed)
		}
	}
	return strikes
}

// DecayGlow ticks down every rod's remaining highlight frames.
func (f *RodField) DecayGlow() {
	for i := range f.rods {
		if f.rods[i].Glow > 0 {
			f.rods[i].Glow--
		}
	}
}

// StrikeVelocity maps the ball's speed at impact to a MIDI velocity.
func StrikeVelocity(speed float64) uint8 {
	v := config.VelocityBase + int(speed*config.VelocityScale)
	if v > config.MaxVelocity {
		v = config.MaxVelocity
	}
	if v < 0 {
		v = 0
	}
	return uint8(v)
}
