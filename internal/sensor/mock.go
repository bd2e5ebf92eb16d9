package sensor

import (
	"context"
	"math"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"koshi-chime.dev/internal/config"
)

// MockSource generates a slow tilt wander for demo mode: two drifting
// sinusoids plus a little noise, as if someone were idly rocking the chime.
type MockSource struct {
	program *tea.Program
	running bool
	cancel  context.CancelFunc

	phaseX float64
	phaseY float64
	rateX  float64
	rateY  float64
}

// NewMockSource creates a demo tilt source with randomized motion.
func NewMockSource() *MockSource {
	return &MockSource{
		phaseX: rand.Float64() * 2 * math.Pi,
		phaseY: rand.Float64() * 2 * math.Pi,
		rateX:  0.25 + rand.Float64()*0.35,
		rateY:  0.25 + rand.Float64()*0.35,
	}
}

func (s *MockSource) Name() string { return "demo" }

// Start begins emitting samples at the mock interval.
func (s *MockSource) Start(p *tea.Program) error {
	s.program = p
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
	return nil
}

func (s *MockSource) loop(ctx context.Context) {
	ticker := time.NewTicker(config.MockInterval)
	defer ticker.Stop()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.running {
				return
			}
			t += config.MockInterval.Seconds()
			s.emit(t)
		}
	}
}

func (s *MockSource) emit(t float64) {
	// Amplitude stays well inside [-1, 1] so the ball wanders rather
	// than pinning against the wall.
	x := 0.55*math.Sin(t*s.rateX+s.phaseX) + (rand.Float64()-0.5)*0.06
	y := 0.55*math.Sin(t*s.rateY+s.phaseY) + (rand.Float64()-0.5)*0.06

	if s.program != nil {
		s.program.Send(Msg{X: x, Y: y})
	}
}

// Stop halts the demo source.
func (s *MockSource) Stop() {
	s.running = false
	if s.cancel != nil {
		s.cancel()
	}
}
