// internal/hal/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"machine"
	"time"

	"tinygo.org/x/drivers"

	"blinkytree-go/internal/hal/halcore"
	"blinkytree-go/internal/storage"
	"blinkytree-go/types"
)

// -----------------------------------------------------------------------------
// Raspberry Pi Pico bring-up rig. Dedicated pins; a 24C32 on i2c0 stands in
// for the ATtiny's internal EEPROM.
// -----------------------------------------------------------------------------

// DefaultI2CFactory configures i2c0 on board-default pins at 400 kHz.
func DefaultI2CFactory() halcore.I2CBusFactory {
	f := &rp2I2CFactory{buses: make(map[string]drivers.I2C)}
	b0 := machine.I2C0
	_ = b0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	})
	f.buses["i2c0"] = b0
	return f
}

// DefaultStorage uses the external EEPROM, falling back to RAM.
func DefaultStorage(f halcore.I2CBusFactory) storage.Device {
	bus, ok := f.ByID("i2c0")
	if !ok {
		return storage.NewMemory(64)
	}
	return storage.Guarded{Dev: storage.NewAT24(bus, 0x50, 4096)}
}

// DefaultPort maps types.Pin directly to machine.Pin (GP numbering).
func DefaultPort() halcore.Port { return &rp2Port{epoch: time.Now()} }

type rp2I2CFactory struct {
	buses map[string]drivers.I2C
}

func (f *rp2I2CFactory) ByID(id string) (drivers.I2C, bool) {
	b, ok := f.buses[id]
	return b, ok
}

// ---- GPIO / ADC ----

type rp2Port struct {
	adc   machine.ADC
	epoch time.Time
	tick  softTicker
}

func (p *rp2Port) Configure(pin types.Pin, dir types.Direction) {
	mode := machine.PinInput
	if dir == types.DirOutput {
		mode = machine.PinOutput
	}
	machine.Pin(pin).Configure(machine.PinConfig{Mode: mode})
}

func (p *rp2Port) Set(pin types.Pin, high bool) { machine.Pin(pin).Set(high) }

func (p *rp2Port) WriteMask(mask, levels uint32) {
	for i := 0; i < 30; i++ {
		if mask&(1<<i) != 0 {
			machine.Pin(i).Set(levels&(1<<i) != 0)
		}
	}
}

// ConfigureAnalog ignores cfg.Ref: the RP2040 converter has a fixed
// external reference.
func (p *rp2Port) ConfigureAnalog(pin types.Pin, cfg types.AnalogConfig) {
	machine.InitADC()
	p.adc = machine.ADC{Pin: machine.Pin(pin)}
	p.adc.Configure(machine.ADCConfig{})
	p.DelayMicros(10_000)
}

// ReadAnalog scales the 16-bit machine reading down to 10 bits.
func (p *rp2Port) ReadAnalog() uint16 { return p.adc.Get() >> 6 }

func (p *rp2Port) nowMicros() uint64 { return uint64(time.Since(p.epoch).Microseconds()) }

// DelayMicros spins without yielding, so the tick is polled from here rather
// than from a timer goroutine the scheduler would never run.
func (p *rp2Port) DelayMicros(us uint32) { spinDelay(&p.tick, p.nowMicros, us) }

func (p *rp2Port) StartTicker(hz uint32, fn func()) { p.tick.start(p.nowMicros(), hz, fn) }
