package physics

import (
	"koshi-chime.dev/internal/config"
)

// MaxDist is the largest distance the ball center may sit from the chamber
// center: wall radius minus the ball's own radius and a small margin.
const MaxDist = config.ChamberRadius - config.BallRadius - config.WallMargin

// Ball is the rolling striker inside the chamber. All fields are owned by
// the tick loop; Step is the only mutator during normal play.
type Ball struct {
	Pos Vec2
	Vel Vec2
}

// NewBall returns a ball at rest at the chamber center.
func NewBall() *Ball {
	return &Ball{}
}

// Reset re-centers the ball and kills its velocity. Used on calibration and
// (optionally) on chime variant switches.
func (b *Ball) Reset() {
	b.Pos = Vec2{}
	b.Vel = Vec2{}
}

// Speed returns the instantaneous speed of the ball.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// Step advances the ball by one fixed tick under the given calibrated tilt.
// The integration assumes a constant tick rate: tilt feeds velocity scaled
// by Gravity, friction decays velocity exponentially, speed is capped by
// rescaling, and position is a plain Euler step. The ball is then kept
// inside the chamber by a radial clamp with a mirrored, energy-losing
// bounce off the wall.
func (b *Ball) Step(tilt Vec2) {
	b.Vel.X -= tilt.X * config.Gravity
	b.Vel.Y += tilt.Y * config.Gravity

	b.Vel = b.Vel.Scale(config.Friction)

	if speed := b.Vel.Len(); speed > config.MaxSpeed {
		b.Vel = b.Vel.Scale(config.MaxSpeed / speed)
	}

	b.Pos = b.Pos.Add(b.Vel)

	if dist := b.Pos.Len(); dist > MaxDist {
		n := b.Pos.Normalize(config.MinSeparation)
		b.Pos = n.Scale(MaxDist)
		// v' = v - 2(v·n)n, then lose energy to the wall
		b.Vel = b.Vel.Sub(n.Scale(2 * b.Vel.Dot(n))).Scale(config.WallBounce)
	}
}
