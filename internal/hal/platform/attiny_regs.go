package platform

import "blinkytree-go/types"

// ATtiny85 register bit layouts. Kept free of device/avr so the values the
// AVR port writes can be checked on the host.
const (
	admuxREFS1 = 1 << 7

	adcsraADEN = 1 << 7
	adcsraADPS = 0x07

	eecrEEPM  = 0x30 // programming mode bits, 00 = erase and write
	eecrEEMPE = 1 << 2
	eecrEEPE  = 1 << 1
)

// adcMux is the ADMUX value for cfg: reference select plus mux channel,
// result right adjusted.
func adcMux(cfg types.AnalogConfig) uint8 {
	v := cfg.Channel & 0x0F
	if cfg.Ref == types.RefInternal1V1 {
		v |= admuxREFS1
	}
	return v
}

// adcControl is the ADCSRA value enabling the converter with cfg's
// prescaler. Unsupported divisors fall back to /128.
func adcControl(cfg types.AnalogConfig) uint8 {
	ps := uint8(7)
	switch cfg.Prescaler {
	case 2:
		ps = 1
	case 4:
		ps = 2
	case 8:
		ps = 3
	case 16:
		ps = 4
	case 32:
		ps = 5
	case 64:
		ps = 6
	}
	return adcsraADEN | ps&adcsraADPS
}

// eepromStrobe returns the two whole-register EECR writes that start an
// erase-and-write cycle. EEPE must follow EEMPE within four cycles, so both
// are plain stores, never read-modify-write.
func eepromStrobe() (arm, start uint8) {
	return eecrEEMPE, eecrEEMPE | eecrEEPE
}
