package physics

import (
	"math"
	"math/rand"
	"testing"

	"koshi-chime.dev/internal/config"
)

func TestBallStaysAtRestWithoutTilt(t *testing.T) {
	b := NewBall()
	for i := 0; i < 100; i++ {
		b.Step(Vec2{})
	}
	if b.Pos != (Vec2{}) {
		t.Errorf("Expected ball to stay at center, got %+v", b.Pos)
	}
	if b.Vel != (Vec2{}) {
		t.Errorf("Expected ball to stay at rest, got velocity %+v", b.Vel)
	}
}

func TestBoundaryInvariant(t *testing.T) {
	tests := []struct {
		name string
		tilt func(i int) Vec2
	}{
		{"Constant hard tilt", func(i int) Vec2 { return Vec2{1, 0} }},
		{"Diagonal tilt", func(i int) Vec2 { return Vec2{0.8, -0.8} }},
		{"Alternating tilt", func(i int) Vec2 {
			if i%2 == 0 {
				return Vec2{1, 1}
			}
			return Vec2{-1, -1}
		}},
		{"Random tilt", func(i int) Vec2 {
			return Vec2{rand.Float64()*2 - 1, rand.Float64()*2 - 1}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall()
			for i := 0; i < 5000; i++ {
				b.Step(tt.tilt(i))
				if dist := b.Pos.Len(); dist > MaxDist+1e-9 {
					t.Fatalf("Step %d: ball escaped the chamber, dist %.6f > %.6f", i, dist, MaxDist)
				}
			}
		})
	}
}

func TestSpeedClamp(t *testing.T) {
	b := NewBall()
	for i := 0; i < 1000; i++ {
		b.Step(Vec2{1, -1})
		if speed := b.Vel.Len(); speed > config.MaxSpeed+1e-9 {
			t.Fatalf("Step %d: speed %.6f exceeds cap %.6f", i, speed, config.MaxSpeed)
		}
	}
}

func TestTiltSignConvention(t *testing.T) {
	// Positive tilt X accelerates the ball toward negative X; positive
	// tilt Y toward positive Y.
	b := NewBall()
	b.Step(Vec2{1, 0})
	if b.Vel.X >= 0 {
		t.Errorf("Expected negative X velocity under tilt (1,0), got %.4f", b.Vel.X)
	}
	b = NewBall()
	b.Step(Vec2{0, 1})
	if b.Vel.Y <= 0 {
		t.Errorf("Expected positive Y velocity under tilt (0,1), got %.4f", b.Vel.Y)
	}
}

func TestWallBounceReflects(t *testing.T) {
	b := NewBall()
	b.Pos = Vec2{X: MaxDist - 0.5}
	b.Vel = Vec2{X: 2.0}

	b.Step(Vec2{})

	if dist := b.Pos.Len(); dist > MaxDist+1e-9 {
		t.Fatalf("Ball not clamped to boundary, dist %.6f", dist)
	}
	if b.Vel.X >= 0 {
		t.Errorf("Expected velocity reflected inward, got vx %.4f", b.Vel.X)
	}
	// Inelastic: the bounce loses energy.
	if speed := b.Vel.Len(); speed > 2.0*config.WallBounce+1e-9 {
		t.Errorf("Expected bounce to lose energy, speed %.4f", speed)
	}
}

func TestFrictionDecaysVelocity(t *testing.T) {
	b := NewBall()
	b.Vel = Vec2{X: 1.0}
	b.Step(Vec2{})
	want := 1.0 * config.Friction
	if math.Abs(b.Vel.X-want) > 1e-9 {
		t.Errorf("Expected vx %.6f after one tick of friction, got %.6f", want, b.Vel.X)
	}
}

func TestReset(t *testing.T) {
	b := NewBall()
	for i := 0; i < 50; i++ {
		b.Step(Vec2{0.5, 0.5})
	}
	b.Reset()
	if b.Pos != (Vec2{}) || b.Vel != (Vec2{}) {
		t.Errorf("Expected reset to re-center and stop the ball, got pos %+v vel %+v", b.Pos, b.Vel)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"Unit X", Vec2{2, 0}, Vec2{1, 0}},
		{"Unit Y", Vec2{0, -3}, Vec2{0, -1}},
		{"Zero vector", Vec2{0, 0}, Vec2{0, 0}},
		{"Below minimum", Vec2{1e-9, 0}, Vec2{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize(1e-6)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Normalize(%+v) = %+v, want %+v", tt.v, got, tt.want)
			}
		})
	}
}
