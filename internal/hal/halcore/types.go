// internal/hal/halcore/types.go
package halcore

import (
	"blinkytree-go/types"

	"tinygo.org/x/drivers"
)

// ---- Digital/analog I/O port ----

// Port is the only hardware-specific surface the firmware touches: pin
// direction, pin levels, one analog channel, a calibrated busy-wait and a
// periodic timer callback. Everything above it runs unchanged on the host.
type Port interface {
	// Configure sets a pin's direction. Inputs are left without pull-up
	// (required for the ADC front end).
	Configure(pin types.Pin, dir types.Direction)
	// Set drives one pin.
	Set(pin types.Pin, high bool)
	// WriteMask updates every pin in mask to the matching bit of levels in
	// one write, leaving pins outside mask untouched.
	WriteMask(mask, levels uint32)

	// ConfigureAnalog selects pin as the ADC input with cfg's reference and
	// prescaler, and waits for the reference to settle.
	ConfigureAnalog(pin types.Pin, cfg types.AnalogConfig)
	// ReadAnalog performs one blocking 10-bit conversion.
	ReadAnalog() uint16

	// DelayMicros busy-waits. It is the timing primitive for tone generation.
	DelayMicros(us uint32)
	// StartTicker arms a periodic interrupt at hz calling fn. fn must be O(1).
	StartTicker(hz uint32, fn func())
}

// ---- Buses ----

// I2CBusFactory injects configured I²C instances by id.
// Uses the TinyGo drivers.I2C interface to remain compatible on MCU builds.
type I2CBusFactory interface {
	ByID(id string) (drivers.I2C, bool)
}

// MaxAnalog is the full-scale value of the 10-bit converter.
const MaxAnalog = 1023
