// Package storage is the byte-addressed non-volatile store behind song
// rotation. Backends: Memory (host), AT24 (external I²C EEPROM) and the
// ATtiny85 internal EEPROM in the AVR platform.
package storage

import "blinkytree-go/errcode"

// Device reads and writes single bytes of non-volatile memory.
type Device interface {
	ReadByte(addr uint16) (byte, error)
	WriteByte(addr uint16, v byte) error
}

// Guarded suppresses writes that would not change the stored value, sparing
// EEPROM endurance.
type Guarded struct {
	Dev Device
}

func (g Guarded) ReadByte(addr uint16) (byte, error) { return g.Dev.ReadByte(addr) }

func (g Guarded) WriteByte(addr uint16, v byte) error {
	if cur, err := g.Dev.ReadByte(addr); err == nil && cur == v {
		return nil
	}
	return g.Dev.WriteByte(addr, v)
}

// Erased is the value of a never-written cell.
const Erased byte = 0xFF

// ErrIO is returned by backends that cannot reach the medium.
var ErrIO error = errcode.StorageIO
