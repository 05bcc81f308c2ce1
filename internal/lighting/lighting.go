// Package lighting computes per-ring brightness for the ambient effects and
// drives the rings directly while a melody is playing.
package lighting

import (
	"blinkytree-go/errcode"
	"blinkytree-go/internal/config"
	"blinkytree-go/internal/hal/halcore"
	"blinkytree-go/internal/timebase"
	"blinkytree-go/types"
	"blinkytree-go/x/mathx"
)

// Effect selects what Update renders.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectStatic
	EffectBreathing
	EffectCandle
	EffectCalibration
)

func (e Effect) String() string {
	if int(e) < len(types.EffectNames) {
		return types.EffectNames[e]
	}
	return "invalid"
}

// ParseEffect maps a settings name to an Effect.
func ParseEffect(s string) (Effect, error) {
	for i, n := range types.EffectNames {
		if n == s {
			return Effect(i), nil
		}
	}
	return EffectNone, errcode.New(errcode.InvalidConfig, "lighting", "unknown effect "+s)
}

// MaxBoost caps SetBoost.
const MaxBoost = 100

// Breathing sweep: level = breathFloor + counter, counter stepping by
// breathStep within [0, breathSpan].
const (
	breathFloor = 50
	breathSpan  = 205
	breathStep  = 10
)

// Calibration display: each ring lights once the raw reading passes its
// threshold and scales up to full at calFullScale.
const (
	calFullScale = 560
	calMin       = 5
	calMax       = 255
)

var calThreshold = [types.NumChannels]uint16{
	types.ChannelBase:   50,
	types.ChannelMiddle: 150,
	types.ChannelUpper:  250,
	types.ChannelTip:    400,
}

// Clock is the millisecond time source.
type Clock interface{ NowMs() uint32 }

// Channels is the PWM surface. *pwm.Driver implements it.
type Channels interface {
	SetChannel(ch types.Channel, level uint8)
	AllOff()
	Tick()
}

// Playback reports whether the melody engine owns the rings.
type Playback interface{ IsPlaying() bool }

// RawReader samples the microphone for the calibration display.
type RawReader interface{ ReadRaw() uint16 }

// Engine is the effect state machine.
type Engine struct {
	port  halcore.Port
	prof  types.Profile
	clock Clock
	out   Channels
	cfg   config.Lighting

	play Playback
	raw  RawReader

	effect  Effect
	counter uint16
	boost   uint8

	seed       uint8
	lastCandle uint32

	breath     uint8
	breathUp   bool
	lastBreath uint32
}

// New returns an engine with no effect selected.
func New(port halcore.Port, prof types.Profile, clock Clock, out Channels, cfg config.Lighting) *Engine {
	return &Engine{port: port, prof: prof, clock: clock, out: out, cfg: cfg,
		seed: seedInit, breathUp: true}
}

// Bind wires the playback gate and the raw sampler. Either may be nil.
func (e *Engine) Bind(play Playback, raw RawReader) {
	e.play = play
	e.raw = raw
}

// Init selects the configured effect. An unknown name falls back to candle.
func (e *Engine) Init() {
	eff, err := ParseEffect(e.cfg.Effect)
	if err != nil {
		eff = EffectCandle
	}
	e.boost = 0
	e.SetEffect(eff)
}

// SetEffect switches effect and restarts its counter.
func (e *Engine) SetEffect(eff Effect) {
	e.effect = eff
	e.counter = 0
}

func (e *Engine) Effect() Effect { return e.effect }

// SetBoost sets the breath boost applied by the candle effect, capped at
// MaxBoost.
func (e *Engine) SetBoost(boost uint8) {
	e.boost = mathx.Min(boost, MaxBoost)
}

func (e *Engine) Boost() uint8 { return e.boost }

// Update renders one step of the current effect. It does nothing while a
// melody is playing.
func (e *Engine) Update() {
	if e.play != nil && e.play.IsPlaying() {
		return
	}
	if e.effect == EffectNone {
		return
	}
	e.counter++
	now := e.clock.NowMs()

	switch e.effect {
	case EffectStatic:
		e.setAll(e.cfg.DefaultBrightness)
	case EffectBreathing:
		e.breathe(now)
	case EffectCandle:
		if timebase.Elapsed(now, e.lastCandle) >= e.cfg.CandleIntervalMs {
			e.lastCandle = now
			e.candleFrame()
		}
	case EffectCalibration:
		e.calibrate()
	}
}

func (e *Engine) setAll(level uint8) {
	for ch := types.Channel(0); ch < types.NumChannels; ch++ {
		e.out.SetChannel(ch, level)
	}
}

func (e *Engine) breathe(now uint32) {
	if timebase.Elapsed(now, e.lastBreath) >= e.cfg.BreathingIntervalMs {
		e.lastBreath = now
		if e.breathUp {
			e.breath += breathStep
			if e.breath >= breathSpan {
				e.breath = breathSpan
				e.breathUp = false
			}
		} else if e.breath >= breathStep {
			e.breath -= breathStep
		} else {
			e.breath = 0
			e.breathUp = true
		}
	}
	e.setAll(breathFloor + e.breath)
}

func (e *Engine) calibrate() {
	if e.raw == nil {
		return
	}
	raw := e.raw.ReadRaw()
	e.setAll(0)
	for ch, th := range calThreshold {
		if raw > th {
			e.out.SetChannel(types.Channel(ch), uint8(mathx.MapU16(raw, th, calFullScale, calMin, calMax)))
		}
	}
}

// Counter is the number of rendered updates since the last SetEffect.
func (e *Engine) Counter() uint16 { return e.counter }
