package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"koshi-chime.dev/internal/chime"
	"koshi-chime.dev/internal/config"
	"koshi-chime.dev/internal/midiout"
	"koshi-chime.dev/internal/render"
	"koshi-chime.dev/internal/sensor"
	"koshi-chime.dev/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	instrument *chime.Instrument
	store      *sensor.Store
	voices     *midiout.Voices
	source     sensor.Source
	history    *StrikeRing
}

// Options configure the root model.
type Options struct {
	Source        sensor.Source
	Emitter       midiout.Emitter
	OutName       string // MIDI output label for the status bar
	Variant       string // Initial tuning name, empty keeps the default
	ResetOnSwitch bool   // Re-center the ball on tuning switch / calibration
	Log           *logrus.Logger
}

// Model is the root Bubble Tea model for the koshi chime.
type Model struct {
	width  int
	height int

	paused        bool
	resetOnSwitch bool
	outName       string
	strikeCount   uint64

	shared *shared
	log    *logrus.Logger
}

// New creates the root model. The sensor source must be started separately
// with StartSource once the program exists.
func New(opts Options) Model {
	inst := chime.NewInstrument()
	if opts.Variant != "" {
		inst.Bank.SelectByName(opts.Variant)
	}

	return Model{
		resetOnSwitch: opts.ResetOnSwitch,
		outName:       opts.OutName,
		log:           opts.Log,
		shared: &shared{
			instrument: inst,
			store:      sensor.NewStore(),
			voices:     midiout.NewVoices(opts.Emitter),
			source:     opts.Source,
			history:    NewStrikeRing(16),
		},
	}
}

// StartSource starts the tilt source with a reference to the tea program.
// Must be called before p.Run().
func (m *Model) StartSource(p *tea.Program) error {
	return m.shared.source.Start(p)
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.paused {
			return m, tickCmd()
		}
		now := time.Time(msg)

		strikes := m.shared.instrument.Tick(m.shared.store.Tilt(), now)
		for _, s := range strikes {
			if err := m.shared.voices.Strike(s.Pitch, s.Velocity, now); err != nil {
				m.log.WithError(err).Warn("note emit failed")
			}
			m.shared.history.Push(s)
			m.strikeCount++
			m.log.WithFields(logrus.Fields{
				"rod":      s.Rod,
				"pitch":    midiout.PitchName(s.Pitch),
				"velocity": s.Velocity,
			}).Debug("strike")
		}
		if err := m.shared.voices.Flush(now); err != nil {
			m.log.WithError(err).Warn("note off failed")
		}
		return m, tickCmd()

	case sensor.Msg:
		m.shared.store.Update(sensor.Sample(msg), time.Now())
		return m, nil

	case sensor.ErrorMsg:
		m.log.WithError(msg.Err).Warn("sensor source error")
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.shutdown()
		return m, tea.Quit

	case "left", "h":
		m.shared.instrument.Bank.Prev()
		m.afterModeSwitch()

	case "right", "l":
		m.shared.instrument.Bank.Next()
		m.afterModeSwitch()

	case "c", "C":
		m.shared.store.Calibrate()
		m.afterModeSwitch()
		m.log.Info("calibrated neutral orientation")

	case " ":
		m.paused = !m.paused
	}

	return m, nil
}

// afterModeSwitch applies the configured UI policy for tuning switches and
// calibration: silence sounding notes and optionally re-center the ball.
func (m *Model) afterModeSwitch() {
	if err := m.shared.voices.Silence(); err != nil {
		m.log.WithError(err).Warn("silence failed")
	}
	if m.resetOnSwitch {
		m.shared.instrument.Reset()
	}
}

func (m *Model) shutdown() {
	if err := m.shared.voices.Silence(); err != nil {
		m.log.WithError(err).Warn("silence failed on shutdown")
	}
	m.shared.source.Stop()
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing koshi chime..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	chamberW := m.width * 2 / 3
	if chamberW < 30 {
		chamberW = 30
	}
	panelW := m.width - chamberW
	if panelW < 20 {
		panelW = 20
		chamberW = m.width - panelW
	}

	menuBar := ui.RenderMenuBar(m.width, m.shared.source.Name(), m.paused)

	innerW := chamberW - 4
	innerH := bodyH - 4
	if innerW < 5 {
		innerW = 5
	}
	if innerH < 3 {
		innerH = 3
	}
	inst := m.shared.instrument
	chamber := render.Render(innerW, innerH, inst.Ball.Pos, inst.Rods.Rods(), inst.Bank.Notes())
	legend := render.RenderLegend(innerW)
	chamberPanel := ui.RenderChamberPanel(chamberW, bodyH, chamber, legend)

	gauge := ui.RenderTiltGauge(panelW-6, 5, m.shared.store.Tilt())
	chimePanel := ui.RenderChimePanel(panelW, bodyH,
		chime.VariantNames(), inst.Bank.Active(),
		m.shared.history.Recent(), gauge)

	statusBar := ui.RenderStatusBar(m.width, inst.Bank.Definition().Name,
		m.strikeCount, m.shared.voices.Active(), m.outName,
		m.shared.store.Stale(time.Now()))

	return ui.ComposeLayout(menuBar, chamberPanel, chimePanel, statusBar, m.width)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
