package chime

import (
	"testing"
	"time"

	"koshi-chime.dev/internal/physics"
)

const tickInterval = 20 * time.Millisecond

func TestRestingBallNeverStrikes(t *testing.T) {
	in := NewInstrument()
	now := time.Now()

	for i := 0; i < 100; i++ {
		now = now.Add(tickInterval)
		if strikes := in.Tick(physics.Vec2{}, now); len(strikes) != 0 {
			t.Fatalf("Tick %d: expected no strikes at rest, got %d", i, len(strikes))
		}
	}
	if in.Ball.Pos != (physics.Vec2{}) {
		t.Errorf("Expected ball still centered, got %+v", in.Ball.Pos)
	}
}

func TestConstantTiltStrikesAlignedRod(t *testing.T) {
	// Tilt (1,0) accelerates the ball toward negative X, straight at the
	// westward rod (index 6). Only that rod may ever fire.
	in := NewInstrument()
	now := time.Now()

	var all []Strike
	for i := 0; i < 600; i++ {
		now = now.Add(tickInterval)
		all = append(all, in.Tick(physics.Vec2{X: 1}, now)...)
	}

	if len(all) == 0 {
		t.Fatal("Expected at least one strike under constant tilt")
	}
	for _, s := range all {
		if s.Rod != 6 {
			t.Errorf("Expected only rod 6 to fire, got rod %d", s.Rod)
		}
		if s.Velocity > 127 {
			t.Errorf("Velocity %d out of MIDI range", s.Velocity)
		}
		if s.Pitch != in.Bank.Notes()[6] {
			t.Errorf("Expected pitch %d for rod 6, got %d", in.Bank.Notes()[6], s.Pitch)
		}
	}
}

func TestTickDecaysGlow(t *testing.T) {
	in := NewInstrument()
	in.Rods.rods[0].Glow = 3

	now := time.Now()
	in.Tick(physics.Vec2{}, now)
	if got := in.Rods.Rods()[0].Glow; got != 2 {
		t.Errorf("Expected glow decremented to 2, got %d", got)
	}
}

func TestResetKeepsDebounceState(t *testing.T) {
	in := NewInstrument()
	now := time.Now()

	ball := ballNear(in.Rods, 0)
	in.Ball.Pos = ball.Pos
	strikes := in.Rods.DetectAndResolve(in.Ball, in.Bank.Notes(), now)
	if len(strikes) != 1 {
		t.Fatalf("Setup strike expected, got %d", len(strikes))
	}

	in.Reset()
	if in.Ball.Pos != (physics.Vec2{}) {
		t.Errorf("Expected reset to re-center the ball, got %+v", in.Ball.Pos)
	}
	if in.Rods.Rods()[0].LastHit.IsZero() {
		t.Error("Expected rod debounce timestamp to survive a reset")
	}
}

func TestAriaStrikeUsesAriaTable(t *testing.T) {
	in := NewInstrument()
	in.Bank.Select(2)
	if in.Bank.Definition().Name != "Aria" {
		t.Fatalf("Expected variant 2 to be Aria, got %s", in.Bank.Definition().Name)
	}

	in.Ball.Pos = ballNear(in.Rods, 4).Pos
	strikes := in.Rods.DetectAndResolve(in.Ball, in.Bank.Notes(), time.Now())
	if len(strikes) != 1 {
		t.Fatalf("Expected one strike on rod 4, got %d", len(strikes))
	}
	want := in.Bank.Definition().Notes[4]
	if strikes[0].Pitch != want {
		t.Errorf("Expected Aria pitch %d at rod 4, got %d", want, strikes[0].Pitch)
	}

	// The same rod under Terra resolves to a different pitch.
	terra := NewBank()
	if terra.Notes()[4] == want {
		t.Fatal("Terra and Aria must differ at rod 4 for this test to mean anything")
	}
}

func TestVariantSwitchChangesPitchOnly(t *testing.T) {
	in := NewInstrument()
	before := in.Rods.Rods()

	in.Bank.Next()

	after := in.Rods.Rods()
	for i := range before {
		if before[i].Pos != after[i].Pos {
			t.Errorf("Rod %d moved on variant switch", i)
		}
	}
	if in.NoteFor(0) == NewBank().Notes()[0] && in.Bank.Active() == 0 {
		t.Error("Expected active pitch table to change after Next")
	}
}
