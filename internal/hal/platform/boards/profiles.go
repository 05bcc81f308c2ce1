package boards

import (
	"blinkytree-go/errcode"
	"blinkytree-go/types"
)

// ATtiny85 port B numbering.
const (
	PB0 types.Pin = 0
	PB1 types.Pin = 1
	PB2 types.Pin = 2
	PB3 types.Pin = 3
	PB4 types.Pin = 4
	PB5 types.Pin = 5
)

// tinyMic is ADC3 (PB3) against the internal 1.1 V reference at clk/128,
// 62.5 kHz at 8 MHz. Sensor baseline and thresholds assume this setup.
var tinyMic = types.AnalogConfig{Channel: 3, Ref: types.RefInternal1V1, Prescaler: 128}

// DebugShared keeps RESET usable for ISP, so the upper ring and the
// microphone time-share PB3 (ADC3).
var DebugShared = types.Profile{
	Name:      "debug_shared",
	LED:       [types.NumChannels]types.Pin{PB2, PB3, PB0, PB1},
	Buzzer:    PB4,
	Mic:       PB3,
	Shared:    types.ChannelUpper,
	HasShared: true,
	ADC:       tinyMic,
}

// ProductionNew uses PB5 (RESET disabled) for the upper ring.
var ProductionNew = types.Profile{
	Name:   "production_new",
	LED:    [types.NumChannels]types.Pin{PB2, PB5, PB0, PB1},
	Buzzer: PB4,
	Mic:    PB3,
	ADC:    tinyMic,
}

// ProductionOld is the first board revision with the buzzer on PB5.
var ProductionOld = types.Profile{
	Name:   "production_old",
	LED:    [types.NumChannels]types.Pin{PB2, PB4, PB0, PB1},
	Buzzer: PB5,
	Mic:    PB3,
	ADC:    tinyMic,
}

// PicoDev is a breadboard bring-up rig on a Raspberry Pi Pico. GP numbering;
// the microphone sits on GP26 (ADC0).
var PicoDev = types.Profile{
	Name:   "pico_dev",
	LED:    [types.NumChannels]types.Pin{2, 3, 4, 5},
	Buzzer: 15,
	Mic:    26,
	ADC:    types.AnalogConfig{Channel: 0},
}

// All lists the known profiles in a stable order.
func All() []types.Profile {
	return []types.Profile{DebugShared, ProductionNew, ProductionOld, PicoDev}
}

// ByName resolves a profile by its Name.
func ByName(name string) (types.Profile, error) {
	for _, p := range All() {
		if p.Name == name {
			return p, nil
		}
	}
	return types.Profile{}, errcode.New(errcode.UnknownProfile, "boards", name)
}
