// Package pwm renders ring brightness as software PWM from an 8-bit phase
// counter and, on boards where one ring shares its pin with the microphone,
// hands that pin to the ADC while the ring is dark.
package pwm

import (
	"blinkytree-go/internal/hal/halcore"
	"blinkytree-go/types"
)

const (
	// SampleEvery is the phase sub-interval at which a dark shared pin is
	// offered to the sensor.
	SampleEvery = 16
	// SampleTimeout bounds AwaitSample, in refresh ticks.
	SampleTimeout = 50
)

// Driver owns the per-ring brightness buffers and the phase counter. It is
// driven from the foreground loop only.
type Driver struct {
	port halcore.Port
	prof types.Profile
	mask uint32

	active  [types.NumChannels]uint8
	pending [types.NumChannels]uint8
	swap    bool
	phase   uint8

	sharedDir types.Direction
	ready     bool
}

// New returns a driver for prof. Call Init before the first Tick.
func New(port halcore.Port, prof types.Profile) *Driver {
	return &Driver{port: port, prof: prof, mask: prof.LEDMask()}
}

// Init configures every ring pin as an output, driven low.
func (d *Driver) Init() {
	for _, pin := range d.prof.LED {
		d.port.Configure(pin, types.DirOutput)
	}
	d.port.WriteMask(d.mask, 0)
	d.sharedDir = types.DirOutput
}

// SetChannel stages level for ch. It takes effect at the next phase wrap.
// Out-of-range channels are ignored.
func (d *Driver) SetChannel(ch types.Channel, level uint8) {
	if !ch.Valid() {
		return
	}
	d.pending[ch] = level
	d.swap = true
}

// Tick advances the phase by one step and rewrites all ring pins in one batch.
func (d *Driver) Tick() {
	d.phase++
	if d.phase == 0 && d.swap {
		d.active = d.pending
		d.swap = false
	}

	var levels uint32
	for ch, pin := range d.prof.LED {
		if d.active[ch] > d.phase {
			levels |= pin.Mask()
		}
	}

	if d.prof.HasShared {
		d.arbitrate()
	}
	d.port.WriteMask(d.mask, levels)
}

// arbitrate sets the shared pin's direction for the current phase.
func (d *Driver) arbitrate() {
	pin := d.prof.SharedPin()
	if d.active[d.prof.Shared] > d.phase {
		d.port.Configure(pin, types.DirOutput)
		d.sharedDir = types.DirOutput
		d.ready = false
		return
	}
	d.port.Configure(pin, types.DirInput)
	d.sharedDir = types.DirInput
	if d.phase%SampleEvery == 0 {
		d.ready = true
	}
}

// AllOff blanks every ring immediately and drops staged values.
func (d *Driver) AllOff() {
	d.active = [types.NumChannels]uint8{}
	d.pending = [types.NumChannels]uint8{}
	d.swap = false
	d.port.WriteMask(d.mask, 0)
}

// SampleReady reports whether the shared pin is currently offered to the ADC.
func (d *Driver) SampleReady() bool { return d.ready }

// AwaitSample keeps the PWM running until the shared pin is offered to the
// ADC or maxTicks refreshes have passed, consumes the offer, and leaves the
// pin configured as an input for the conversion that follows. It reports
// whether the offer arrived in time. Boards without a shared pin return true
// at once.
func (d *Driver) AwaitSample(maxTicks int) bool {
	if !d.prof.HasShared {
		return true
	}
	got := d.ready
	for i := 0; !got && i < maxTicks; i++ {
		d.Tick()
		d.port.DelayMicros(2)
		got = d.ready
	}
	d.ready = false
	pin := d.prof.SharedPin()
	d.port.Set(pin, false)
	d.port.Configure(pin, types.DirInput)
	d.sharedDir = types.DirInput
	return got
}

// ---- accessors ----

func (d *Driver) Active(ch types.Channel) uint8 {
	if !ch.Valid() {
		return 0
	}
	return d.active[ch]
}

func (d *Driver) Pending(ch types.Channel) uint8 {
	if !ch.Valid() {
		return 0
	}
	return d.pending[ch]
}

// On reports whether ch is lit at the current phase.
func (d *Driver) On(ch types.Channel) bool { return d.Active(ch) > d.phase }

func (d *Driver) Phase() uint8 { return d.phase }

// SharedDirection is the direction last commanded for the shared pin.
func (d *Driver) SharedDirection() types.Direction { return d.sharedDir }

func (d *Driver) Profile() types.Profile { return d.prof }
