package midiout

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Emitter receives note triggers from the chime core. Implementations must
// tolerate being called once per tick from the UI loop.
type Emitter interface {
	NoteOn(pitch, velocity uint8) error
	NoteOff(pitch uint8) error
	Close() error
}

// Ports matching any of these are never auto-connected (virtual/system ports).
var excludedPortPatterns = []string{"Midi Through", "Through Port", "Dummy"}

// Port emits notes to a real MIDI output port via rtmidi.
type Port struct {
	drv     *rtmididrv.Driver
	out     drivers.Out
	send    func(midi.Message) error
	channel uint8
	log     *logrus.Logger
}

// OpenPort connects to the first MIDI output whose name contains match
// (case-insensitive). An empty match picks the first non-virtual port.
func OpenPort(match string, channel uint8, log *logrus.Logger) (*Port, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}

	outs, err := drv.Outs()
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("failed to list MIDI outputs: %w", err)
	}

	var chosen drivers.Out
	for _, out := range outs {
		name := out.String()
		if excludedPort(name) {
			continue
		}
		if match == "" || containsCI(name, match) {
			chosen = out
			break
		}
	}
	if chosen == nil {
		drv.Close()
		return nil, fmt.Errorf("no MIDI output matching %q found", match)
	}

	if err := chosen.Open(); err != nil {
		drv.Close()
		return nil, fmt.Errorf("failed to open MIDI output %q: %w", chosen.String(), err)
	}

	send, err := midi.SendTo(chosen)
	if err != nil {
		_ = chosen.Close()
		drv.Close()
		return nil, fmt.Errorf("failed to attach sender to %q: %w", chosen.String(), err)
	}

	log.WithFields(logrus.Fields{"port": chosen.String(), "channel": channel}).Info("MIDI output connected")

	return &Port{drv: drv, out: chosen, send: send, channel: channel, log: log}, nil
}

// PortName returns the connected output port name.
func (p *Port) PortName() string {
	return p.out.String()
}

func (p *Port) NoteOn(pitch, velocity uint8) error {
	return p.send(midi.NoteOn(p.channel, pitch, velocity))
}

func (p *Port) NoteOff(pitch uint8) error {
	return p.send(midi.NoteOff(p.channel, pitch))
}

// Close shuts down the port and the rtmidi driver.
func (p *Port) Close() error {
	p.log.WithField("port", p.out.String()).Info("closing MIDI output")
	err := p.out.Close()
	p.drv.Close()
	return err
}

// LogEmitter logs note events instead of sending them anywhere. Used when no
// MIDI port is configured, and in tests.
type LogEmitter struct {
	log *logrus.Logger
}

// NewLogEmitter creates a logging emitter.
func NewLogEmitter(log *logrus.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

func (e *LogEmitter) NoteOn(pitch, velocity uint8) error {
	e.log.WithFields(logrus.Fields{"pitch": PitchName(pitch), "velocity": velocity}).Info("note on")
	return nil
}

func (e *LogEmitter) NoteOff(pitch uint8) error {
	e.log.WithField("pitch", PitchName(pitch)).Info("note off")
	return nil
}

func (e *LogEmitter) Close() error { return nil }

func excludedPort(name string) bool {
	for _, pat := range excludedPortPatterns {
		if containsCI(name, pat) {
			return true
		}
	}
	return false
}

func containsCI(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
