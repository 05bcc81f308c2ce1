// internal/hal/platform/factories_avr.go
//go:build tinygo && attiny85

package platform

import (
	"device/avr"
	"runtime/interrupt"

	"blinkytree-go/internal/hal/halcore"
	"blinkytree-go/internal/storage"
	"blinkytree-go/types"

	"tinygo.org/x/drivers"
)

// -----------------------------------------------------------------------------
// ATtiny85 @ 8 MHz internal RC. Port B only; Timer0 CTC drives the 1 kHz tick.
// -----------------------------------------------------------------------------

// DefaultPort returns the register-level port.
func DefaultPort() halcore.Port { return &avrPort{} }

// DefaultI2CFactory has nothing to offer: the USI is not wired on this board.
func DefaultI2CFactory() halcore.I2CBusFactory { return avrNoI2C{} }

// DefaultStorage returns the on-chip EEPROM (512 bytes).
func DefaultStorage(halcore.I2CBusFactory) storage.Device {
	return storage.Guarded{Dev: avrEEPROM{}}
}

type avrNoI2C struct{}

func (avrNoI2C) ByID(string) (drivers.I2C, bool) { return nil, false }

// ---- GPIO / ADC ----

type avrPort struct{}

func (p *avrPort) Configure(pin types.Pin, dir types.Direction) {
	m := uint8(pin.Mask())
	if dir == types.DirOutput {
		avr.DDRB.SetBits(m)
		return
	}
	avr.DDRB.ClearBits(m)
	avr.PORTB.ClearBits(m) // no pull-up
}

func (p *avrPort) Set(pin types.Pin, high bool) {
	m := uint8(pin.Mask())
	if high {
		avr.PORTB.SetBits(m)
	} else {
		avr.PORTB.ClearBits(m)
	}
}

func (p *avrPort) WriteMask(mask, levels uint32) {
	m := uint8(mask)
	v := avr.PORTB.Get()
	avr.PORTB.Set((v &^ m) | (uint8(levels) & m))
}

func (p *avrPort) ConfigureAnalog(pin types.Pin, cfg types.AnalogConfig) {
	p.Configure(pin, types.DirInput)
	avr.ADMUX.Set(adcMux(cfg))
	avr.ADCSRA.Set(adcControl(cfg))
	p.DelayMicros(10_000) // reference settle
}

func (p *avrPort) ReadAnalog() uint16 {
	avr.ADCSRA.SetBits(avr.ADCSRA_ADSC)
	for avr.ADCSRA.HasBits(avr.ADCSRA_ADSC) {
	}
	lo := uint16(avr.ADCL.Get())
	hi := uint16(avr.ADCH.Get())
	return hi<<8 | lo
}

// DelayMicros spins roughly one microsecond per iteration at 8 MHz.
func (p *avrPort) DelayMicros(us uint32) {
	for ; us > 0; us-- {
		avr.Asm("nop")
		avr.Asm("nop")
		avr.Asm("nop")
		avr.Asm("nop")
	}
}

// ---- Timer0 tick ----

var tickFn func()

func timer0Compare(interrupt.Interrupt) {
	if tickFn != nil {
		tickFn()
	}
}

func (p *avrPort) StartTicker(hz uint32, fn func()) {
	tickFn = fn
	// CTC, clk/64: 8 MHz / 64 / (OCR0A+1).
	top := uint32(8_000_000/64)/hz - 1
	if top > 255 {
		top = 255
	}
	avr.TCCR0A.Set(avr.TCCR0A_WGM01)
	avr.OCR0A.Set(uint8(top))
	avr.TCCR0B.Set(avr.TCCR0B_CS01 | avr.TCCR0B_CS00)
	avr.TIMSK.SetBits(avr.TIMSK_OCIE0A)
	interrupt.New(avr.IRQ_TIM0_COMPA, timer0Compare).Enable()
}

// ---- internal EEPROM ----

type avrEEPROM struct{}

func (avrEEPROM) ReadByte(addr uint16) (byte, error) {
	for avr.EECR.HasBits(avr.EECR_EEPE) {
	}
	avr.EEARL.Set(uint8(addr))
	avr.EEARH.Set(uint8(addr >> 8))
	avr.EECR.SetBits(avr.EECR_EERE)
	return avr.EEDR.Get(), nil
}

func (avrEEPROM) WriteByte(addr uint16, v byte) error {
	for avr.EECR.HasBits(avr.EECR_EEPE) {
	}
	avr.EECR.Set(0) // erase+write mode
	avr.EEARL.Set(uint8(addr))
	avr.EEARH.Set(uint8(addr >> 8))
	avr.EEDR.Set(v)
	arm, start := eepromStrobe()
	mask := interrupt.Disable()
	avr.EECR.Set(arm)
	avr.EECR.Set(start)
	interrupt.Restore(mask)
	return nil
}
