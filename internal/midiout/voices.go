package midiout

import (
	"fmt"
	"time"

	"koshi-chime.dev/internal/config"
)

// voice is one sounding note awaiting its note-off.
type voice struct {
	pitch    uint8
	expireAt time.Time
}

// Voices tracks sounding notes and issues explicit note-offs a fixed
// duration after each strike, so no note can stick if the synthesizer does
// not self-mute. The table is bounded: when full, the oldest voice is
// released early to make room.
type Voices struct {
	emitter Emitter
	active  []voice
}

// NewVoices wraps an emitter with note-off tracking.
func NewVoices(emitter Emitter) *Voices {
	return &Voices{
		emitter: emitter,
		active:  make([]voice, 0, config.MaxVoices),
	}
}

// Active returns the number of currently sounding notes.
func (v *Voices) Active() int {
	return len(v.active)
}

// Strike emits a note-on and schedules its note-off. Re-striking a pitch
// that is already sounding releases it first, then re-triggers.
func (v *Voices) Strike(pitch, velocity uint8, now time.Time) error {
	for i := range v.active {
		if v.active[i].pitch == pitch {
			if err := v.emitter.NoteOff(pitch); err != nil {
				return err
			}
			v.active = append(v.active[:i], v.active[i+1:]...)
			break
		}
	}

	if len(v.active) >= config.MaxVoices {
		oldest := v.active[0]
		if err := v.emitter.NoteOff(oldest.pitch); err != nil {
			return err
		}
		v.active = v.active[1:]
	}

	if err := v.emitter.NoteOn(pitch, velocity); err != nil {
		return err
	}
	v.active = append(v.active, voice{pitch: pitch, expireAt: now.Add(config.NoteDuration)})
	return nil
}

// Flush emits note-offs for every voice whose duration has elapsed. Called
// once per tick.
func (v *Voices) Flush(now time.Time) error {
	kept := v.active[:0]
	var firstErr error
	for _, vc := range v.active {
		if now.Before(vc.expireAt) {
			kept = append(kept, vc)
			continue
		}
		if err := v.emitter.NoteOff(vc.pitch); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	v.active = kept
	return firstErr
}

// Silence releases every sounding note immediately. Used on shutdown.
func (v *Voices) Silence() error {
	var firstErr error
	for _, vc := range v.active {
		if err := v.emitter.NoteOff(vc.pitch); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	v.active = v.active[:0]
	return firstErr
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchName renders a MIDI pitch as a note name, e.g. 60 -> "C4".
func PitchName(pitch uint8) string {
	return fmt.Sprintf("%s%d", noteNames[pitch%12], int(pitch)/12-1)
}
