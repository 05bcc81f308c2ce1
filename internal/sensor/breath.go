// Package sensor classifies breath on the electret microphone against a fixed
// baseline and two thresholds.
package sensor

import (
	"blinkytree-go/internal/config"
	"blinkytree-go/internal/hal/halcore"
	"blinkytree-go/internal/pwm"
	"blinkytree-go/internal/timebase"
	"blinkytree-go/types"
	"blinkytree-go/x/mathx"
)

// Clock is the millisecond time source.
type Clock interface{ NowMs() uint32 }

// Sampler hands the shared pin to the ADC. *pwm.Driver implements it.
type Sampler interface {
	AwaitSample(maxTicks int) bool
}

// BoostSink receives the light-breath boost (0..MaxBoost).
type BoostSink interface{ SetBoost(boost uint8) }

// Gate reports the playback state that suppresses strong-breath triggering.
type Gate interface {
	IsPlaying() bool
	IsCooldownExpired() bool
}

// Breath is the breath sensor state.
type Breath struct {
	port    halcore.Port
	prof    types.Profile
	clock   Clock
	sampler Sampler
	cfg     config.Sensor

	sink    BoostSink
	trigger func()
	gate    Gate

	ready    bool
	baseline uint16
	raw      uint16
	boost    uint8
	excess   uint16
	last     uint32
	timeouts uint32
}

// New builds a sensor. Bind the collaborators, then call Init.
func New(port halcore.Port, prof types.Profile, clock Clock, sampler Sampler, cfg config.Sensor) *Breath {
	return &Breath{port: port, prof: prof, clock: clock, sampler: sampler, cfg: cfg}
}

// Bind wires the boost consumer, the strong-breath action and the playback
// gate. Any of them may be nil.
func (b *Breath) Bind(sink BoostSink, trigger func(), gate Gate) {
	b.sink = sink
	b.trigger = trigger
	b.gate = gate
}

// Init configures the analog front end and applies the fixed baseline.
func (b *Breath) Init() {
	b.RestoreInput()
	b.ForceRecalibration()
	b.last = b.clock.NowMs()
	b.ready = true
}

// RestoreInput returns the mic pin to its ADC configuration, undoing any
// output drive applied during playback.
func (b *Breath) RestoreInput() { b.port.ConfigureAnalog(b.prof.Mic, b.prof.ADC) }

// ForceRecalibration re-applies the fixed baseline.
func (b *Breath) ForceRecalibration() { b.baseline = b.cfg.Baseline }

// ReadRaw performs one conversion. On shared-pin boards it first waits, within
// a bounded number of PWM refreshes, for the pin to be handed over; on timeout
// it reads anyway.
func (b *Breath) ReadRaw() uint16 {
	if b.prof.HasShared && b.sampler != nil {
		if !b.sampler.AwaitSample(pwm.SampleTimeout) {
			b.timeouts++
		}
		b.port.DelayMicros(5) // settle
	}
	return b.port.ReadAnalog()
}

// Update polls the microphone once per interval and classifies the reading.
func (b *Breath) Update() {
	if !b.ready {
		return
	}
	now := b.clock.NowMs()
	if timebase.Elapsed(now, b.last) < b.cfg.IntervalMs {
		return
	}
	b.last = now

	raw := b.ReadRaw()
	b.raw = raw

	light := uint32(b.baseline) + uint32(b.cfg.LightThreshold)
	strong := uint32(b.baseline) + uint32(b.cfg.StrongThreshold)

	switch {
	case uint32(raw) > strong:
		b.excess = raw - b.baseline
		if b.gate != nil && (b.gate.IsPlaying() || !b.gate.IsCooldownExpired()) {
			return
		}
		if b.trigger != nil {
			b.trigger()
		}
		return
	case uint32(raw) > light:
		boost := (uint32(raw) - light) * uint32(b.cfg.MaxBoost) / uint32(b.cfg.LightThreshold)
		b.setBoost(uint8(mathx.Min(boost, uint32(b.cfg.MaxBoost))))
		b.excess = raw - b.baseline
	default:
		b.setBoost(0)
		b.excess = 0
	}
}

func (b *Breath) setBoost(v uint8) {
	b.boost = v
	if b.sink != nil {
		b.sink.SetBoost(v)
	}
}

// ---- accessors ----

func (b *Breath) Raw() uint16      { return b.raw }
func (b *Breath) Boost() uint8     { return b.boost }
func (b *Breath) Baseline() uint16 { return b.baseline }

// SampleTimeouts counts conversions taken without a PWM hand-over.
func (b *Breath) SampleTimeouts() uint32 { return b.timeouts }

// BreathDetected reports whether the last reading was above the light
// threshold.
func (b *Breath) BreathDetected() bool { return b.excess > 0 }

// Intensity maps the last reading's excess over baseline onto
// [CurveMin, CurveMax] along a squared curve, so small breaths already show.
// It is 0 when no breath is detected.
func (b *Breath) Intensity() uint8 {
	if b.excess == 0 {
		return 0
	}
	span := uint32(b.cfg.StrongThreshold) - uint32(b.cfg.LightThreshold)
	if span == 0 {
		return b.cfg.CurveMax
	}
	var above uint32
	if uint32(b.excess) > uint32(b.cfg.LightThreshold) {
		above = uint32(b.excess) - uint32(b.cfg.LightThreshold)
	}
	n := mathx.Min(above*255/span, 255)
	curved := n * n / 255
	lo, hi := uint32(b.cfg.CurveMin), uint32(b.cfg.CurveMax)
	return uint8(mathx.Min(lo+curved*(hi-lo)/255, hi))
}
