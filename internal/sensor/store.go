package sensor

import (
	"sync"
	"time"

	"koshi-chime.dev/internal/config"
	"koshi-chime.dev/internal/physics"
)

// Store holds the most recent smoothed tilt reading and the calibration
// offset. Sources write from their own goroutines; the tick loop reads.
type Store struct {
	mu       sync.RWMutex
	raw      Sample // EMA-smoothed raw reading
	offset   Sample // Neutral-orientation baseline
	seen     bool
	lastSeen time.Time
}

// NewStore returns an empty store with a zero calibration offset.
func NewStore() *Store {
	return &Store{}
}

// Update folds a new raw sample into the smoothed reading.
func (s *Store) Update(raw Sample, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seen {
		s.raw = raw
		s.seen = true
	} else {
		s.raw.X = s.raw.X*(1-config.SmoothingAlpha) + raw.X*config.SmoothingAlpha
		s.raw.Y = s.raw.Y*(1-config.SmoothingAlpha) + raw.Y*config.SmoothingAlpha
	}
	s.lastSeen = now
}

// Tilt returns the calibrated tilt: the smoothed raw reading minus the
// calibration offset. When the source has stopped delivering, the last
// valid reading is reused, so a tick is never half-applied.
func (s *Store) Tilt() physics.Vec2 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return physics.Vec2{
		X: s.raw.X - s.offset.X,
		Y: s.raw.Y - s.offset.Y,
	}
}

// Calibrate captures the current smoothed reading as the neutral
// orientation. Subsequent Tilt calls read relative to it.
func (s *Store) Calibrate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offset = s.raw
}

// Age reports how long ago the last sample arrived, and whether any sample
// has arrived at all.
func (s *Store) Age(now time.Time) (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.seen {
		return 0, false
	}
	return now.Sub(s.lastSeen), true
}

// Stale reports whether the source has gone quiet past the staleness window.
func (s *Store) Stale(now time.Time) bool {
	age, ok := s.Age(now)
	return ok && age > config.SampleStaleness
}
