// Package timebase is the free-running millisecond counter.
package timebase

import (
	"sync/atomic"

	"blinkytree-go/internal/hal/halcore"
)

// TickHz is the timer interrupt rate.
const TickHz = 1000

// Clock counts milliseconds since Attach. Tick runs in interrupt context;
// NowMs is safe from the foreground loop.
type Clock struct {
	ms atomic.Uint32
}

// Tick advances the counter by one. O(1), wraps at 2^32.
func (c *Clock) Tick() { c.ms.Add(1) }

// NowMs returns a consistent snapshot of the counter.
func (c *Clock) NowMs() uint32 { return c.ms.Load() }

// Attach arms the port's periodic timer to drive Tick.
func (c *Clock) Attach(p halcore.Port) { p.StartTicker(TickHz, c.Tick) }

// Elapsed is now-since modulo 2^32.
func Elapsed(now, since uint32) uint32 { return now - since }

// Reached reports whether now is at or past deadline, tolerating wrap as long
// as the two are within 2^31 ms of each other.
func Reached(now, deadline uint32) bool { return int32(now-deadline) >= 0 }
