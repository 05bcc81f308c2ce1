package songgen

import (
	"io"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"blinkytree-go/internal/melody"
	"blinkytree-go/internal/songs"
)

// MIDI export resolution and tempo. At 120 bpm one tick is 500/960 ms.
const (
	ticksPerQuarter = 960
	midiTempo       = 120
	quarterMs       = 60000 / midiTempo
)

// MIDIKey maps a buzzer-tuned frequency to the MIDI key of its written
// pitch.
func MIDIKey(freq uint16) uint8 {
	pc, oct := songs.Nearest(freq)
	return uint8((oct+1)*12 + pc)
}

func msToTicks(ms uint32) uint32 {
	return ms * ticksPerQuarter / quarterMs
}

// WriteMIDI renders s as a single-track Standard MIDI File the way the
// buzzer would play it: transposed, speed-scaled, with the inter-note gap.
// Velocity follows the duty cycle.
func WriteMIDI(w io.Writer, s songs.Song, gapMs uint32) error {
	c := s.Config
	if c.SpeedPercent == 0 {
		c = songs.DefaultConfig
	}
	speed := uint32(c.SpeedPercent)
	vel := uint8(uint32(c.DutyPercent) * 127 / 100)
	if vel == 0 {
		vel = 1
	}

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(midiTempo))

	var wait uint32
	for i, n := range s.Notes {
		dur := msToTicks(uint32(n.DurMs) * 100 / speed)
		if f := melody.Transpose(n.Freq, c.Transpose); f == 0 {
			wait += dur
		} else {
			key := MIDIKey(f)
			tr.Add(wait, midi.NoteOn(0, key, vel))
			tr.Add(dur, midi.NoteOff(0, key))
			wait = 0
		}
		if i < len(s.Notes)-1 {
			wait += msToTicks(gapMs * 100 / speed)
		}
	}
	tr.Close(wait)

	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	if err := sm.Add(tr); err != nil {
		return errors.Wrap(err, "add track")
	}
	if _, err := sm.WriteTo(w); err != nil {
		return errors.Wrap(err, "write midi")
	}
	return nil
}
