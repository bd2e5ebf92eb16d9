package physics

import "math"

// Vec2 is a 2D vector in chamber coordinates (origin at the chamber center,
// x right, y down).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector in v's direction, or the zero vector
// when |v| is below minLen.
func (v Vec2) Normalize(minLen float64) Vec2 {
	l := v.Len()
	if l < minLen {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle returns the polar angle of v in [0, 2π), where 0 points north
// (negative y) and angles increase clockwise.
func (v Vec2) Angle() float64 {
	a := math.Atan2(v.X, -v.Y)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
