package melody

import "blinkytree-go/x/timex"

// tone bit-bangs a square wave on the buzzer for durMs. duty is the high
// share of each period in percent. freq 0 holds silence for durMs. Timing
// rests entirely on the port's calibrated busy-wait.
func (e *Engine) tone(freq uint16, durMs uint32, duty uint8) {
	pin := e.prof.Buzzer
	if freq == 0 {
		for i := uint32(0); i < durMs; i++ {
			e.port.DelayMicros(1000)
		}
		return
	}
	high, low := timex.DutySplit(timex.PeriodMicros(uint32(freq)), duty)
	n := timex.Cycles(uint32(freq), durMs)
	for i := uint32(0); i < n; i++ {
		e.port.Set(pin, true)
		e.port.DelayMicros(high)
		e.port.Set(pin, false)
		e.port.DelayMicros(low)
	}
	e.port.Set(pin, false)
}
