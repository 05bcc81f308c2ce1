package firmware

import (
	"context"
	"testing"

	"blinkytree-go/internal/config"
	"blinkytree-go/internal/hal/platform"
	"blinkytree-go/internal/hal/platform/boards"
	"blinkytree-go/internal/lighting"
	"blinkytree-go/internal/songs"
	"blinkytree-go/internal/storage"
	"blinkytree-go/internal/timebase"
	"blinkytree-go/types"
)

type event struct {
	kind string
	id   types.SongID
	cfg  types.SongConfig
	us   uint64
	val  uint8
}

type recorder struct {
	port   *platform.FakePort
	events []event
}

func (r *recorder) add(e event) {
	e.us = r.port.NowMicros()
	r.events = append(r.events, e)
}

func (r *recorder) SongStarted(id types.SongID, cfg types.SongConfig) {
	r.add(event{kind: "start", id: id, cfg: cfg})
}
func (r *recorder) SongEnded(id types.SongID, _ uint32) { r.add(event{kind: "end", id: id}) }
func (r *recorder) BoostChanged(b uint8)               { r.add(event{kind: "boost", val: b}) }
func (r *recorder) EffectChanged(e lighting.Effect)    { r.add(event{kind: "effect", val: uint8(e)}) }

func (r *recorder) of(kind string) []event {
	var out []event
	for _, e := range r.events {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}

type rig struct {
	port  *platform.FakePort
	store *storage.Memory
	rec   *recorder
	dev   *Device
}

func newRig(t *testing.T, prof types.Profile, mutate func(*config.Settings)) *rig {
	t.Helper()
	cfg := config.Default()
	cfg.Startup.Animation = false
	if mutate != nil {
		mutate(&cfg)
	}
	port := platform.NewFakePort()
	r := &rig{port: port, store: storage.NewMemory(64), rec: &recorder{port: port}}
	r.dev = New(prof, cfg, port, r.store, songs.Default, r.rec)
	r.dev.Init()
	return r
}

// runUntil steps the loop until the clock reaches ms.
func (r *rig) runUntil(ms uint32) {
	for !timebase.Reached(r.dev.Clock.NowMs(), ms) {
		r.dev.Step()
	}
}

func TestStrongBreathThreshold(t *testing.T) {
	r := newRig(t, boards.ProductionNew, nil)
	r.port.SetAnalog(250)
	r.runUntil(1000)
	if r.dev.Melody.Played() != 0 {
		t.Fatal("250 must not trigger")
	}
	if r.dev.Lighting.Boost() != 50 {
		t.Fatalf("boost = %d, want full light boost", r.dev.Lighting.Boost())
	}

	r.port.SetAnalog(251)
	r.runUntil(r.dev.Clock.NowMs() + 100)
	if r.dev.Melody.Played() != 1 {
		t.Fatalf("251 must trigger, played %d", r.dev.Melody.Played())
	}
	starts := r.rec.of("start")
	if len(starts) != 1 || starts[0].id != songs.SilentNight {
		t.Fatalf("starts = %+v", starts)
	}
	if starts[0].cfg != songs.Default.ConfigFor(songs.SilentNight) {
		t.Fatalf("played with %+v", starts[0].cfg)
	}
}

func TestCooldownBlocksRetrigger(t *testing.T) {
	r := newRig(t, boards.ProductionNew, nil)
	r.port.SetAnalog(600)
	r.runUntil(200)
	if r.dev.Melody.Played() != 1 {
		t.Fatal("no song on strong breath")
	}
	end := r.dev.Melody.EndTime()
	r.runUntil(end + 2999)
	if r.dev.Melody.Played() != 1 {
		t.Fatal("retriggered inside cooldown")
	}
	r.runUntil(end + 3100)
	if r.dev.Melody.Played() != 2 {
		t.Fatalf("no retrigger after cooldown, played %d", r.dev.Melody.Played())
	}
	starts := r.rec.of("start")
	if starts[1].id != songs.JingleBells {
		t.Fatalf("second song %d", starts[1].id)
	}
}

func TestNoSamplingDuringPlaybackOrCooldown(t *testing.T) {
	r := newRig(t, boards.ProductionNew, nil)
	r.port.SetAnalog(600)
	r.runUntil(200)
	end := r.dev.Melody.CooldownEndTime()
	r.runUntil(end - 1)

	var startUs, endUs uint64
	for _, e := range r.rec.events {
		switch e.kind {
		case "start":
			startUs = e.us
		case "end":
			endUs = e.us
		}
	}
	quietUntil := uint64(end) * 1000
	for _, c := range r.port.Conversions() {
		if c.AtUs > startUs && c.AtUs < quietUntil {
			t.Fatalf("conversion at %d µs (song %d..%d, cooldown to %d)", c.AtUs, startUs, endUs, quietUntil)
		}
	}
	kinds := ""
	for _, e := range r.rec.events {
		if e.kind == "start" || e.kind == "end" {
			kinds += e.kind[:1]
		}
	}
	if kinds != "se" {
		t.Fatalf("song events %q", kinds)
	}
}

func TestRotationSurvivesRestart(t *testing.T) {
	r := newRig(t, boards.ProductionNew, nil)
	r.port.SetAnalog(600)
	r.runUntil(200)
	if r.dev.Rotation.Current() != 1 {
		t.Fatalf("index %d after one song", r.dev.Rotation.Current())
	}

	port := platform.NewFakePort()
	again := New(boards.ProductionNew, r.dev.Settings(), port, r.store, songs.Default, nil)
	again.Init()
	if again.Rotation.Current() != 1 {
		t.Fatalf("index %d after restart", again.Rotation.Current())
	}
}

func TestSharedPinIsInputForEveryConversion(t *testing.T) {
	r := newRig(t, boards.DebugShared, nil)
	r.port.SetAnalog(200)
	r.runUntil(2000)
	conv := r.port.Conversions()
	if len(conv) < 40 {
		t.Fatalf("only %d conversions in 2 s", len(conv))
	}
	for _, c := range conv {
		if c.MicDir != types.DirInput {
			t.Fatalf("conversion at %d µs with the shared pin driven", c.AtUs)
		}
	}
	if n := r.dev.Sensor.SampleTimeouts(); n != 0 {
		t.Fatalf("%d sample timeouts under candle load", n)
	}
}

func TestStartupSequence(t *testing.T) {
	r := newRig(t, boards.ProductionNew, func(c *config.Settings) {
		c.Startup.Animation = true
		c.Startup.Melody = true
	})
	starts := r.rec.of("start")
	// a blank store resets to 0; the startup melody advances like a breath
	if len(starts) != 1 || starts[0].id != songs.SilentNight {
		t.Fatalf("startup melody = %+v", starts)
	}
	if r.dev.Rotation.Current() != 1 {
		t.Fatalf("rotation = %d after startup melody", r.dev.Rotation.Current())
	}
	if v, _ := r.store.ReadByte(0); v != 1 {
		t.Fatalf("stored index = %d", v)
	}
	// ADC settle plus the boot animation run before the song.
	if starts[0].us != (10+730)*1000 {
		t.Fatalf("song started at %d µs", starts[0].us)
	}
}

func TestEffectEvents(t *testing.T) {
	r := newRig(t, boards.ProductionNew, nil)
	r.dev.SetEffect(lighting.EffectStatic)
	eff := r.rec.of("effect")
	if len(eff) != 2 || lighting.Effect(eff[0].val) != lighting.EffectCandle || lighting.Effect(eff[1].val) != lighting.EffectStatic {
		t.Fatalf("effect events %+v", eff)
	}
	r.dev.Step()
	if r.dev.PWM.Pending(types.ChannelTip) != 30 {
		t.Fatal("static effect not staged")
	}
}

func TestBoostEventsOnlyOnChange(t *testing.T) {
	r := newRig(t, boards.ProductionNew, nil)
	r.port.SetAnalog(210)
	r.runUntil(500)
	r.port.SetAnalog(100)
	r.runUntil(1000)
	b := r.rec.of("boost")
	if len(b) != 2 || b[0].val != 50 || b[1].val != 0 {
		t.Fatalf("boost events %+v", b)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	r := newRig(t, boards.ProductionNew, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.dev.Run(ctx); err != context.Canceled {
		t.Fatalf("Run = %v", err)
	}
}
