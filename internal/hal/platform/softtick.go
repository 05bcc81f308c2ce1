package platform

// softTicker runs a periodic callback from a polling delay loop. Targets
// whose busy-wait never yields to other goroutines use it in place of a
// timer goroutine, so the tick keeps pace with the foreground loop.
type softTicker struct {
	periodUs uint64
	nextUs   uint64
	fn       func()
}

func (t *softTicker) start(nowUs uint64, hz uint32, fn func()) {
	if hz == 0 {
		hz = 1
	}
	t.periodUs = 1_000_000 / uint64(hz)
	t.nextUs = nowUs + t.periodUs
	t.fn = fn
}

// poll fires fn once for every period boundary up to nowUs.
func (t *softTicker) poll(nowUs uint64) int {
	n := 0
	for t.fn != nil && t.nextUs <= nowUs {
		t.nextUs += t.periodUs
		t.fn()
		n++
	}
	return n
}

// spinDelay busy-waits us microseconds against now, polling t throughout.
func spinDelay(t *softTicker, now func() uint64, us uint32) {
	end := now() + uint64(us)
	for {
		n := now()
		t.poll(n)
		if n >= end {
			return
		}
	}
}
