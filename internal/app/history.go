package app

import "koshi-chime.dev/internal/chime"

// StrikeRing is a circular buffer of recent strikes for the side panel.
type StrikeRing struct {
	buf   []chime.Strike
	pos   int
	count int
}

// NewStrikeRing creates a ring with the given capacity.
func NewStrikeRing(capacity int) *StrikeRing {
	return &StrikeRing{
		buf: make([]chime.Strike, capacity),
	}
}

// Push adds a strike to the ring.
func (r *StrikeRing) Push(s chime.Strike) {
	r.buf[r.pos] = s
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Recent returns the stored strikes, newest first.
func (r *StrikeRing) Recent() []chime.Strike {
	if r.count == 0 {
		return nil
	}
	result := make([]chime.Strike, 0, r.count)
	for i := 1; i <= r.count; i++ {
		idx := (r.pos - i + len(r.buf)) % len(r.buf)
		result = append(result, r.buf[idx])
	}
	return result
}

// Len returns the number of stored strikes.
func (r *StrikeRing) Len() int {
	return r.count
}
