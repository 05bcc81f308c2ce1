package lighting

import (
	"blinkytree-go/internal/timebase"
	"blinkytree-go/types"
)

// Boot animation timing.
const (
	StartupLevel  = 85
	StartupLeadMs = 50
	StartupStepMs = 150
	StartupDarkMs = 80
)

var startupOrder = [types.NumChannels]types.Channel{
	types.ChannelBase, types.ChannelMiddle, types.ChannelUpper, types.ChannelTip,
}

// StartupAnimation builds the tree up from the base ring to the tip, one ring
// lit at full startup level per step, then goes dark for a short pause. It
// blocks, keeping the PWM refresh running.
func (e *Engine) StartupAnimation() {
	e.out.AllOff()
	e.hold(StartupLeadMs)
	for _, ch := range startupOrder {
		e.out.SetChannel(ch, StartupLevel)
		e.hold(StartupStepMs)
	}
	e.out.AllOff()
	e.hold(StartupDarkMs)
}

// hold refreshes the PWM for ms milliseconds.
func (e *Engine) hold(ms uint32) {
	start := e.clock.NowMs()
	for timebase.Elapsed(e.clock.NowMs(), start) < ms {
		e.out.Tick()
		e.port.DelayMicros(10)
	}
}
