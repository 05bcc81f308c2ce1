package types

// ------------------------
// Pins & channels
// ------------------------

// Pin is a port-local pin number (PBn on ATtiny85, GPn on RP2040).
type Pin uint8

// NoPin marks an unused/absent pin in a profile.
const NoPin Pin = 0xFF

// Mask returns the single-bit mask for p, or 0 for NoPin.
func (p Pin) Mask() uint32 {
	if p == NoPin || p > 31 {
		return 0
	}
	return 1 << p
}

// Channel identifies one LED ring. Order is tip first, base last.
type Channel uint8

const (
	ChannelTip    Channel = iota // 1er ring, top of the tree
	ChannelUpper                 // 3er ring
	ChannelMiddle                // 4er ring
	ChannelBase                  // 5er ring, bottom
	NumChannels
)

func (c Channel) Valid() bool { return c < NumChannels }

func (c Channel) String() string {
	switch c {
	case ChannelTip:
		return "tip"
	case ChannelUpper:
		return "upper"
	case ChannelMiddle:
		return "middle"
	case ChannelBase:
		return "base"
	default:
		return "invalid"
	}
}

// Direction of a GPIO pin.
type Direction uint8

const (
	DirInput Direction = iota
	DirOutput
)

func (d Direction) String() string {
	if d == DirOutput {
		return "output"
	}
	return "input"
}

// ------------------------
// Hardware profile
// ------------------------

// Profile describes one wiring of the board: which pin drives each ring, the
// buzzer, the microphone ADC input, and whether one ring shares its pin with
// the microphone. It is resolved once at startup and injected into the PWM
// driver, the sensor and the melody engine.
type Profile struct {
	Name   string
	LED    [NumChannels]Pin
	Buzzer Pin
	Mic    Pin

	// Shared is the channel whose pin doubles as the microphone input.
	// Only meaningful when HasShared is set; LED[Shared] == Mic then.
	Shared    Channel
	HasShared bool

	// ADC is the converter setup for Mic.
	ADC AnalogConfig
}

// AnalogRef selects the converter's voltage reference.
type AnalogRef uint8

const (
	// RefVcc tracks the supply; readings drift with the battery.
	RefVcc AnalogRef = iota
	// RefInternal1V1 is the ATtiny85 internal bandgap. The sensor baseline
	// and breath thresholds are calibrated against it.
	RefInternal1V1
)

func (r AnalogRef) String() string {
	if r == RefInternal1V1 {
		return "internal_1v1"
	}
	return "vcc"
}

// AnalogConfig describes one analog input: mux channel, reference and
// clock prescaler (system clock divisor).
type AnalogConfig struct {
	Channel   uint8
	Ref       AnalogRef
	Prescaler uint8
}

// SharedPin returns the shared pin, or NoPin on dedicated-pin layouts.
func (p Profile) SharedPin() Pin {
	if !p.HasShared {
		return NoPin
	}
	return p.LED[p.Shared]
}

// LEDMask is the union of all ring pins.
func (p Profile) LEDMask() uint32 {
	var m uint32
	for _, pin := range p.LED {
		m |= pin.Mask()
	}
	return m
}
