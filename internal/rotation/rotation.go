// Package rotation tracks which catalog song plays next and keeps the choice
// across power cycles in one storage byte.
package rotation

import (
	"blinkytree-go/errcode"
	"blinkytree-go/internal/storage"
	"blinkytree-go/types"
)

// Clock seeds random picks.
type Clock interface{ NowMs() uint32 }

// Rotation is the persisted rotation index. Storage failures never stop
// playback: the index falls back to 0, and the failure is counted and kept
// for LastErr.
type Rotation struct {
	store storage.Device
	addr  uint16
	mode  types.RotationMode
	count int
	clock Clock

	index    uint8
	failures uint32
	lastErr  error
}

// New binds a rotation over count enabled songs. Writes go through
// storage.Guarded so unchanged values never reach the cells.
func New(store storage.Device, addr uint16, count int, mode types.RotationMode, clock Clock) *Rotation {
	if _, ok := store.(storage.Guarded); !ok {
		store = storage.Guarded{Dev: store}
	}
	return &Rotation{store: store, addr: addr, mode: mode, count: count, clock: clock}
}

// ParseMode maps a settings string to a mode; anything but "random" is
// sequential.
func ParseMode(s string) types.RotationMode {
	if s == "random" {
		return types.RotationRandom
	}
	return types.RotationSequential
}

// Init loads the stored index, resetting it to 0 (and rewriting) when it is
// out of range, as after a catalog change or on a blank EEPROM.
func (r *Rotation) Init() {
	v, err := r.store.ReadByte(r.addr)
	if err != nil {
		r.fail(errcode.Wrap(errcode.StorageIO, "rotation.load", err))
		r.index = 0
		return
	}
	r.index = v
	if r.count > 0 && int(v) >= r.count {
		r.index = 0
		r.persist()
	}
}

// Advance picks the next index, persists it and returns it. With an empty
// rotation it returns 0 and touches nothing.
func (r *Rotation) Advance() uint8 {
	if r.count == 0 {
		return 0
	}
	switch r.mode {
	case types.RotationRandom:
		r.index = uint8(r.clock.NowMs() % uint32(r.count))
	default:
		r.index = uint8((int(r.index) + 1) % r.count)
	}
	r.persist()
	return r.index
}

func (r *Rotation) persist() {
	if err := r.store.WriteByte(r.addr, r.index); err != nil {
		r.fail(errcode.Wrap(errcode.StorageIO, "rotation.save", err))
	}
}

func (r *Rotation) fail(err error) {
	r.failures++
	r.lastErr = err
}

// Current returns the index, repairing it in memory if out of range.
func (r *Rotation) Current() uint8 {
	if int(r.index) >= r.count {
		r.index = 0
	}
	return r.index
}

// Failures counts storage errors since New.
func (r *Rotation) Failures() uint32 { return r.failures }

// LastErr returns the most recent storage error, or nil.
func (r *Rotation) LastErr() error { return r.lastErr }

func (r *Rotation) Count() int               { return r.count }
func (r *Rotation) Mode() types.RotationMode { return r.mode }
