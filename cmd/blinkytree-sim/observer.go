package main

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"blinkytree-go/internal/hal/platform"
	"blinkytree-go/internal/lighting"
	"blinkytree-go/internal/songs"
	"blinkytree-go/types"
)

// logObserver logs device events with the virtual timestamp. Counters are
// atomic because the status reporter reads them from another goroutine.
type logObserver struct {
	log    zerolog.Logger
	port   *platform.FakePort
	played atomic.Uint32
	boost  atomic.Uint32
}

func newLogObserver(l zerolog.Logger, port *platform.FakePort) *logObserver {
	return &logObserver{log: l, port: port}
}

func (o *logObserver) at(e *zerolog.Event) *zerolog.Event {
	return e.Uint64("t_ms", o.port.NowMicros()/1000)
}

func (o *logObserver) SongStarted(id types.SongID, cfg types.SongConfig) {
	o.at(o.log.Info()).Str("song", songs.Default.Name(id)).
		Uint8("duty", cfg.DutyPercent).Uint16("speed", cfg.SpeedPercent).Int8("transpose", cfg.Transpose).
		Msg("song started")
}

func (o *logObserver) SongEnded(id types.SongID, endMs uint32) {
	o.played.Add(1)
	o.at(o.log.Info()).Str("song", songs.Default.Name(id)).Uint32("end_ms", endMs).Msg("song ended")
}

func (o *logObserver) BoostChanged(boost uint8) {
	o.boost.Store(uint32(boost))
	o.at(o.log.Debug()).Uint8("boost", boost).Msg("breath boost")
}

func (o *logObserver) EffectChanged(e lighting.Effect) {
	o.at(o.log.Info()).Stringer("effect", e).Msg("lighting effect")
}

func (o *logObserver) Played() uint32   { return o.played.Load() }
func (o *logObserver) LastBoost() uint8 { return uint8(o.boost.Load()) }
