// internal/hal/platform/factories_host.go
//go:build !tinygo

package platform

import (
	"sync"

	"blinkytree-go/internal/hal/halcore"
	"blinkytree-go/internal/storage"
	"blinkytree-go/types"

	"tinygo.org/x/drivers"
)

// ----------------------------- Port (host) -----------------------------------

// Conversion records one ADC conversion and the mic pin's direction at that
// instant.
type Conversion struct {
	AtUs   uint64
	MicDir types.Direction
	Value  uint16
}

// FakePort implements halcore.Port in virtual time for host-side tests and
// the simulator. DelayMicros advances a microsecond clock and fires the
// ticker callback once per elapsed period, like the timer interrupt would.
type FakePort struct {
	mu sync.Mutex

	out    uint32 // direction bits, 1 = output
	level  uint32
	rising [32]uint32

	mic      types.Pin
	micSet   bool
	adc      types.AnalogConfig
	analog   uint16
	source   func(nowUs uint64) uint16
	conv     []Conversion
	keepConv int

	nowUs    uint64
	periodUs uint64
	nextUs   uint64
	tick     func()
}

// NewFakePort returns a port with all pins as inputs, low.
func NewFakePort() *FakePort { return &FakePort{keepConv: 4096} }

func (p *FakePort) Configure(pin types.Pin, dir types.Direction) {
	m := pin.Mask()
	p.mu.Lock()
	if dir == types.DirOutput {
		p.out |= m
	} else {
		p.out &^= m
		p.level &^= m // pull-up off
	}
	p.mu.Unlock()
}

func (p *FakePort) Set(pin types.Pin, high bool) {
	p.mu.Lock()
	p.setLocked(pin.Mask(), high)
	p.mu.Unlock()
}

func (p *FakePort) WriteMask(mask, levels uint32) {
	p.mu.Lock()
	for i := 0; i < 32; i++ {
		m := uint32(1) << i
		if mask&m != 0 {
			p.setLocked(m, levels&m != 0)
		}
	}
	p.mu.Unlock()
}

func (p *FakePort) setLocked(m uint32, high bool) {
	if m == 0 {
		return
	}
	if high {
		if p.level&m == 0 {
			for i := 0; i < 32; i++ {
				if m&(1<<i) != 0 {
					p.rising[i]++
				}
			}
		}
		p.level |= m
		return
	}
	p.level &^= m
}

func (p *FakePort) ConfigureAnalog(pin types.Pin, cfg types.AnalogConfig) {
	p.mu.Lock()
	p.mic = pin
	p.micSet = true
	p.adc = cfg
	p.out &^= pin.Mask()
	p.level &^= pin.Mask()
	p.mu.Unlock()
	p.DelayMicros(10_000) // reference settle
}

func (p *FakePort) ReadAnalog() uint16 {
	p.mu.Lock()
	v := p.analog
	if p.source != nil {
		v = p.source(p.nowUs)
	}
	if v > halcore.MaxAnalog {
		v = halcore.MaxAnalog
	}
	dir := types.DirInput
	if p.micSet && p.out&p.mic.Mask() != 0 {
		dir = types.DirOutput
	}
	if len(p.conv) < p.keepConv {
		p.conv = append(p.conv, Conversion{AtUs: p.nowUs, MicDir: dir, Value: v})
	}
	p.mu.Unlock()
	return v
}

func (p *FakePort) DelayMicros(us uint32) {
	p.mu.Lock()
	target := p.nowUs + uint64(us)
	for p.tick != nil && p.nextUs <= target {
		p.nowUs = p.nextUs
		p.nextUs += p.periodUs
		fn := p.tick
		p.mu.Unlock()
		fn() // interrupt-style callback
		p.mu.Lock()
	}
	p.nowUs = target
	p.mu.Unlock()
}

func (p *FakePort) StartTicker(hz uint32, fn func()) {
	if hz == 0 {
		hz = 1
	}
	p.mu.Lock()
	p.periodUs = 1_000_000 / uint64(hz)
	p.nextUs = p.nowUs + p.periodUs
	p.tick = fn
	p.mu.Unlock()
}

// ---- test/simulator helpers ----

// Advance moves virtual time forward by ms milliseconds.
func (p *FakePort) Advance(ms uint32) { p.DelayMicros(ms * 1000) }

// SetAnalog fixes the value returned by ReadAnalog.
func (p *FakePort) SetAnalog(v uint16) {
	p.mu.Lock()
	p.analog = v
	p.source = nil
	p.mu.Unlock()
}

// SetAnalogSource installs a time-dependent analog source.
func (p *FakePort) SetAnalogSource(fn func(nowUs uint64) uint16) {
	p.mu.Lock()
	p.source = fn
	p.mu.Unlock()
}

// AnalogConfig returns the converter setup from the last ConfigureAnalog.
func (p *FakePort) AnalogConfig() types.AnalogConfig {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.adc
}

func (p *FakePort) Level(pin types.Pin) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level&pin.Mask() != 0
}

func (p *FakePort) Direction(pin types.Pin) types.Direction {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.out&pin.Mask() != 0 {
		return types.DirOutput
	}
	return types.DirInput
}

// RisingEdges counts low->high transitions written to pin.
func (p *FakePort) RisingEdges(pin types.Pin) uint32 {
	if pin.Mask() == 0 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rising[pin]
}

// Conversions returns a copy of the recorded ADC conversions.
func (p *FakePort) Conversions() []Conversion {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Conversion(nil), p.conv...)
}

func (p *FakePort) NowMicros() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nowUs
}

var _ halcore.Port = (*FakePort)(nil)

// ----------------------------- I²C (host) ------------------------------------

// HostEEPROM emulates a 24Cxx serial EEPROM behind tinygo drivers.I2C for
// host-side tests. A write of two address bytes sets the internal pointer;
// further written bytes are stored, and reads stream from the pointer.
type HostEEPROM struct {
	mu     sync.Mutex
	Addr   uint16
	mem    []byte
	ptr    uint16
	Writes int // committed data bytes
}

// NewHostEEPROM returns an erased (0xFF) device of size bytes at addr.
func NewHostEEPROM(addr uint16, size int) *HostEEPROM {
	mem := make([]byte, size)
	for i := range mem {
		mem[i] = 0xFF
	}
	return &HostEEPROM{Addr: addr, mem: mem}
}

func (e *HostEEPROM) Tx(addr uint16, w, r []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if addr != e.Addr {
		return errNACK
	}
	if len(w) >= 2 {
		e.ptr = uint16(w[0])<<8 | uint16(w[1])
		for _, b := range w[2:] {
			e.mem[int(e.ptr)%len(e.mem)] = b
			e.ptr++
			e.Writes++
		}
	}
	for i := range r {
		r[i] = e.mem[int(e.ptr)%len(e.mem)]
		e.ptr++
	}
	return nil
}

// Peek reads a cell without moving the pointer.
func (e *HostEEPROM) Peek(at uint16) byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mem[int(at)%len(e.mem)]
}

type i2cError string

func (e i2cError) Error() string { return string(e) }

const errNACK = i2cError("i2c: nack")

type hostI2CFactory struct {
	buses map[string]drivers.I2C
}

func (f *hostI2CFactory) ByID(id string) (drivers.I2C, bool) {
	b, ok := f.buses[id]
	return b, ok
}

// DefaultI2CFactory exposes "i2c0" with an emulated 4 KiB EEPROM at 0x50.
func DefaultI2CFactory() halcore.I2CBusFactory {
	return &hostI2CFactory{
		buses: map[string]drivers.I2C{
			"i2c0": NewHostEEPROM(0x50, 4096),
		},
	}
}

// DefaultPort provides the host port.
func DefaultPort() halcore.Port { return NewFakePort() }

// DefaultStorage backs rotation with the emulated EEPROM on i2c0.
func DefaultStorage(f halcore.I2CBusFactory) storage.Device {
	bus, ok := f.ByID("i2c0")
	if !ok {
		return storage.NewMemory(64)
	}
	return storage.Guarded{Dev: storage.NewAT24(bus, 0x50, 4096)}
}
