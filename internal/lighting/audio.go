package lighting

import (
	"blinkytree-go/internal/songs"
	"blinkytree-go/types"
)

// Lower edges of the audio-reactive bands in buzzer-tuned Hz. Anything
// below bandMiddle lights the base ring.
const (
	bandTip    = songs.NoteC5
	bandUpper  = songs.NoteA4
	bandMiddle = songs.NoteF4
)

// Band returns the ring that shows freq. freq must be nonzero.
func Band(freq uint16) types.Channel {
	switch {
	case freq >= bandTip:
		return types.ChannelTip
	case freq >= bandUpper:
		return types.ChannelUpper
	case freq >= bandMiddle:
		return types.ChannelMiddle
	default:
		return types.ChannelBase
	}
}

// AudioNote lights the ring for freq at full brightness and darkens the
// rest, writing the port directly. The shared pin is taken as an output for
// the duration of the song. A zero freq is AudioOff.
func (e *Engine) AudioNote(freq uint16) {
	if !e.cfg.AudioReactive {
		return
	}
	if freq == 0 {
		e.AudioOff()
		return
	}
	if e.prof.HasShared {
		pin := e.prof.SharedPin()
		e.port.Set(pin, false)
		e.port.Configure(pin, types.DirOutput)
	}
	e.port.WriteMask(e.prof.LEDMask(), e.prof.LED[Band(freq)].Mask())
}

// AudioOff darkens every ring.
func (e *Engine) AudioOff() {
	if !e.cfg.AudioReactive {
		return
	}
	e.port.WriteMask(e.prof.LEDMask(), 0)
}
