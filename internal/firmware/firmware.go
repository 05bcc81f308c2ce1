// Package firmware wires the components into one device and runs the
// cooperative main loop.
package firmware

import (
	"context"

	"blinkytree-go/internal/config"
	"blinkytree-go/internal/hal/halcore"
	"blinkytree-go/internal/lighting"
	"blinkytree-go/internal/melody"
	"blinkytree-go/internal/pwm"
	"blinkytree-go/internal/rotation"
	"blinkytree-go/internal/sensor"
	"blinkytree-go/internal/storage"
	"blinkytree-go/internal/timebase"
	"blinkytree-go/types"
)

// IdleMicros is the pause at the end of every loop iteration.
const IdleMicros = 10

// Observer receives device events. Host tooling logs them; firmware images
// pass nil.
type Observer interface {
	SongStarted(id types.SongID, cfg types.SongConfig)
	SongEnded(id types.SongID, endMs uint32)
	BoostChanged(boost uint8)
	EffectChanged(e lighting.Effect)
}

// Device owns every component. Fields are exported for inspection by tests
// and the simulator; only the loop mutates them.
type Device struct {
	port halcore.Port
	prof types.Profile
	cfg  config.Settings
	obs  Observer

	Clock    *timebase.Clock
	PWM      *pwm.Driver
	Lighting *lighting.Engine
	Sensor   *sensor.Breath
	Melody   *melody.Engine
	Rotation *rotation.Rotation
}

// New composes a device. Nothing touches the hardware until Init.
func New(prof types.Profile, cfg config.Settings, port halcore.Port, store storage.Device,
	cat melody.Catalog, obs Observer) *Device {
	d := &Device{port: port, prof: prof, cfg: cfg, obs: obs, Clock: &timebase.Clock{}}

	d.PWM = pwm.New(port, prof)
	d.Lighting = lighting.New(port, prof, d.Clock, d.PWM, cfg.Lighting)
	d.Sensor = sensor.New(port, prof, d.Clock, d.PWM, cfg.Sensor)
	d.Rotation = rotation.New(store, cfg.Melody.RotationAddr, cat.Len(),
		rotation.ParseMode(cfg.Melody.Rotation), d.Clock)
	d.Melody = melody.New(port, prof, d.Clock, cat, d.Rotation, d.Lighting, d.Sensor, cfg.Melody)

	d.Lighting.Bind(d.Melody, d.Sensor)
	var sink sensor.BoostSink = d.Lighting
	if obs != nil {
		sink = &boostTap{next: d.Lighting, obs: obs}
		d.Melody.SetHooks(melody.Hooks{Start: obs.SongStarted, End: obs.SongEnded})
	}
	d.Sensor.Bind(sink, d.Melody.PlayNext, d.Melody)
	return d
}

// Init brings the device up: time base, lighting, sensor, melody and
// rotation, then the optional boot animation and melody.
func (d *Device) Init() {
	d.Clock.Attach(d.port)

	d.PWM.Init()
	d.Lighting.Init()
	d.effectChanged()

	d.Sensor.Init()

	d.Melody.Init()
	d.Rotation.Init()

	if d.cfg.Startup.Animation {
		d.Lighting.StartupAnimation()
	}
	if d.cfg.Startup.Melody {
		d.Melody.PlayNext()
	}
}

// Step runs one loop iteration. The sensor is polled only when no song is
// playing and the post-song cooldown has run out.
func (d *Device) Step() {
	d.PWM.Tick()
	d.Lighting.Update()
	if !d.Melody.IsPlaying() && d.Melody.IsCooldownExpired() {
		d.Sensor.Update()
	}
	d.port.DelayMicros(IdleMicros)
}

// Run loops Step until ctx is done.
func (d *Device) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		d.Step()
	}
}

// SetEffect switches the lighting effect.
func (d *Device) SetEffect(e lighting.Effect) {
	d.Lighting.SetEffect(e)
	d.effectChanged()
}

func (d *Device) effectChanged() {
	if d.obs != nil {
		d.obs.EffectChanged(d.Lighting.Effect())
	}
}

func (d *Device) Profile() types.Profile   { return d.prof }
func (d *Device) Settings() config.Settings { return d.cfg }

// boostTap reports boost changes on their way to the lighting engine.
type boostTap struct {
	next sensor.BoostSink
	obs  Observer
	last uint8
}

func (b *boostTap) SetBoost(v uint8) {
	b.next.SetBoost(v)
	if v != b.last {
		b.last = v
		b.obs.BoostChanged(v)
	}
}
