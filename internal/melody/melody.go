// Package melody renders catalog songs on the piezo buzzer. Playback is
// synchronous: Play returns only when the last note has sounded.
package melody

import (
	"blinkytree-go/internal/config"
	"blinkytree-go/internal/hal/halcore"
	"blinkytree-go/internal/timebase"
	"blinkytree-go/types"
	"blinkytree-go/x/mathx"
)

// Parameter bounds applied by Play.
const (
	MinDuty      = 10
	MaxDuty      = 100
	MinSpeed     = 25
	MaxSpeed     = 10000
	MaxTranspose = 12
)

// Clock is the millisecond time source.
type Clock interface{ NowMs() uint32 }

// Catalog provides note data and per-song configuration.
type Catalog interface {
	Lookup(id types.SongID) ([]types.Note, bool)
	ConfigFor(id types.SongID) types.SongConfig
	At(i int) types.SongID
	Len() int
}

// Picker chooses and persists the rotation index.
type Picker interface {
	Advance() uint8
	Current() uint8
}

// Lights receives per-note audio-reactive cues.
type Lights interface {
	AudioNote(freq uint16)
	AudioOff()
}

// FrontEnd is the microphone side that playback disturbs.
type FrontEnd interface {
	RestoreInput()
	ForceRecalibration()
}

// Hooks are optional playback notifications for host tooling.
type Hooks struct {
	Start func(id types.SongID, cfg types.SongConfig)
	End   func(id types.SongID, endMs uint32)
}

// Engine is the playback state machine (idle, playing, idle).
type Engine struct {
	port   halcore.Port
	prof   types.Profile
	clock  Clock
	cat    Catalog
	rot    Picker
	lights Lights
	front  FrontEnd
	cfg    config.Melody
	hooks  Hooks

	playing     bool
	endTime     uint32
	cooldownEnd uint32
	expired     bool
	played      uint32
}

// New builds an idle engine. lights and front may be nil.
func New(port halcore.Port, prof types.Profile, clock Clock, cat Catalog, rot Picker,
	lights Lights, front FrontEnd, cfg config.Melody) *Engine {
	return &Engine{
		port: port, prof: prof, clock: clock, cat: cat, rot: rot,
		lights: lights, front: front, cfg: cfg,
		expired: true,
	}
}

// SetHooks installs playback notifications.
func (e *Engine) SetHooks(h Hooks) { e.hooks = h }

// Init parks the buzzer low.
func (e *Engine) Init() {
	e.port.Configure(e.prof.Buzzer, types.DirOutput)
	e.port.Set(e.prof.Buzzer, false)
}

// Play renders song id to completion. Out-of-range parameters are clamped.
// Unknown or empty songs, and calls made while already playing, do nothing.
func (e *Engine) Play(id types.SongID, duty uint8, speed uint16, transpose int8) {
	if e.playing {
		return
	}
	notes, ok := e.cat.Lookup(id)
	if !ok || len(notes) == 0 {
		return
	}
	duty = mathx.Clamp(duty, MinDuty, MaxDuty)
	speed = mathx.Clamp(speed, MinSpeed, MaxSpeed)
	transpose = mathx.Clamp(transpose, -MaxTranspose, MaxTranspose)

	e.playing = true
	e.expired = false
	if e.hooks.Start != nil {
		e.hooks.Start(id, types.SongConfig{DutyPercent: duty, SpeedPercent: speed, Transpose: transpose})
	}

	e.port.Configure(e.prof.Buzzer, types.DirOutput)
	e.port.Set(e.prof.Buzzer, false)

	gap := e.cfg.NoteGapMs * 100 / uint32(speed)
	for i, n := range notes {
		f := Transpose(n.Freq, transpose)
		dur := uint32(mathx.ScaleU16(n.DurMs, 100, uint32(speed)))
		// lights follow the written pitch
		e.cue(n.Freq)
		e.tone(f, dur, duty)
		if i < len(notes)-1 {
			e.cue(0)
			e.tone(0, gap, duty)
		}
	}

	e.cue(0)
	if e.front != nil {
		e.front.RestoreInput()
	}
	now := e.clock.NowMs()
	e.playing = false
	e.endTime = now
	e.cooldownEnd = now + e.cfg.CooldownMs
	e.played++
	if e.front != nil {
		e.front.ForceRecalibration()
	}
	if e.hooks.End != nil {
		e.hooks.End(id, now)
	}
}

func (e *Engine) cue(freq uint16) {
	if e.lights == nil {
		return
	}
	if freq == 0 {
		e.lights.AudioOff()
		return
	}
	e.lights.AudioNote(freq)
}

// PlayNext advances the rotation and plays the song it lands on with that
// song's stored configuration.
func (e *Engine) PlayNext() {
	if e.playing || e.cat.Len() == 0 {
		return
	}
	e.playAt(int(e.rot.Advance()))
}

// PlayCurrent plays the song at the current rotation index.
func (e *Engine) PlayCurrent() {
	if e.playing || e.cat.Len() == 0 {
		return
	}
	e.playAt(int(e.rot.Current()))
}

func (e *Engine) playAt(i int) {
	id := e.cat.At(i)
	c := e.cat.ConfigFor(id)
	e.Play(id, c.DutyPercent, c.SpeedPercent, c.Transpose)
}

// IsPlaying reports whether a song is being rendered.
func (e *Engine) IsPlaying() bool { return e.playing }

// IsCooldownExpired is false from the start of a song until CooldownMs after
// its end, then latches true until the next song starts.
func (e *Engine) IsCooldownExpired() bool {
	if !e.expired && !e.playing && timebase.Reached(e.clock.NowMs(), e.cooldownEnd) {
		e.expired = true
	}
	return e.expired
}

func (e *Engine) EndTime() uint32         { return e.endTime }
func (e *Engine) CooldownEndTime() uint32 { return e.cooldownEnd }

// Played counts completed songs.
func (e *Engine) Played() uint32 { return e.played }
