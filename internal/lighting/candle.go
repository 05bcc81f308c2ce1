package lighting

import (
	"blinkytree-go/types"
	"blinkytree-go/x/mathx"
)

const (
	seedInit uint8 = 42
	gustMask uint8 = 0x1F
)

// nextSeed steps the 8-bit LCG once per candle frame.
func nextSeed(s uint8) uint8 { return s*13 + 37 }

// flameLayer describes how one ring flickers. Rings nearer the tip move
// faster, swing wider, and take more of the breath boost.
type flameLayer struct {
	ch types.Channel

	seedOff  uint8
	fastMul  uint8
	fastMask uint8
	fastGain int32

	medDiv  uint16
	medOff  uint16
	medMask uint8
	medGain int32

	slowDiv int32
	gust    int32

	boostNum, boostDen int32
	max                int32
}

var flame = [types.NumChannels]flameLayer{
	{ch: types.ChannelTip, seedOff: 7, fastMul: 5, fastMask: 63, fastGain: 1,
		medDiv: 1, medOff: 3, medMask: 31, medGain: 3,
		slowDiv: 200, gust: 30, boostNum: 4, boostDen: 5, max: 180},
	{ch: types.ChannelUpper, seedOff: 13, fastMul: 3, fastMask: 31, fastGain: 1,
		medDiv: 2, medOff: 7, medMask: 31, medGain: 2,
		slowDiv: 300, gust: 25, boostNum: 7, boostDen: 10, max: 140},
	{ch: types.ChannelMiddle, seedOff: 19, fastMul: 2, fastMask: 15, fastGain: 1,
		medDiv: 3, medOff: 11, medMask: 15, medGain: 2,
		slowDiv: 400, gust: 20, boostNum: 3, boostDen: 5, max: 100},
	{ch: types.ChannelBase, seedOff: 23, fastMul: 1, fastMask: 7, fastGain: 2,
		medDiv: 6, medOff: 0, medMask: 7, medGain: 2,
		slowDiv: 600, gust: 12, boostNum: 2, boostDen: 5, max: 70},
}

// flameInput is the per-frame state shared by all rings.
type flameInput struct {
	seed      uint8
	counter   uint16
	gust      bool
	boost     uint8
	intensity uint8
	def       uint8 // default brightness
	min       uint8
}

// level computes one ring's brightness. Each term is scaled and truncated on
// its own.
func (l flameLayer) level(in flameInput, basePct uint16) uint8 {
	k := int32(in.intensity)

	fast := int32((in.seed+l.seedOff)*l.fastMul&l.fastMask) - int32(l.fastMask/2)
	med := int32(mathx.Triangle(uint8(in.counter/l.medDiv+l.medOff), l.medMask)) - int32(l.medMask/4)
	slow := int32(mathx.Triangle(uint8(in.counter/8), 0x7F)) - 31

	v := int32(in.def) * int32(basePct) / 100
	v += fast * l.fastGain * k / 100
	v += med * l.medGain * k / 100
	v += slow * k / l.slowDiv
	if in.gust {
		v -= l.gust * k / 100
	}
	v += int32(in.boost) * l.boostNum / l.boostDen
	return uint8(mathx.Clamp(v, int32(in.min), l.max))
}

func (e *Engine) basePct(ch types.Channel) uint16 {
	switch ch {
	case types.ChannelTip:
		return e.cfg.TipPct
	case types.ChannelUpper:
		return e.cfg.UpperPct
	case types.ChannelMiddle:
		return e.cfg.MiddlePct
	default:
		return e.cfg.BasePct
	}
}

// candleFrame advances the seed and writes every ring.
func (e *Engine) candleFrame() {
	e.seed = nextSeed(e.seed)
	in := flameInput{
		seed:      e.seed,
		counter:   e.counter,
		gust:      e.seed&gustMask == gustMask,
		boost:     e.boost,
		intensity: e.cfg.FlickerIntensity,
		def:       e.cfg.DefaultBrightness,
		min:       e.cfg.MinBrightness,
	}
	for _, l := range flame {
		e.out.SetChannel(l.ch, l.level(in, e.basePct(l.ch)))
	}
}
