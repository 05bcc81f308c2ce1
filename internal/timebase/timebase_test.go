package timebase

import (
	"math"
	"testing"

	"blinkytree-go/internal/hal/platform"
)

func TestClockFollowsPortTicker(t *testing.T) {
	p := platform.NewFakePort()
	var c Clock
	c.Attach(p)
	p.Advance(1234)
	if c.NowMs() != 1234 {
		t.Fatalf("now = %d", c.NowMs())
	}
}

func TestClockWraps(t *testing.T) {
	var c Clock
	c.ms.Store(math.MaxUint32)
	c.Tick()
	if c.NowMs() != 0 {
		t.Fatalf("want wrap to 0, got %d", c.NowMs())
	}
}

func TestWrapSafeComparisons(t *testing.T) {
	cases := []struct {
		now, since uint32
		want       uint32
	}{
		{100, 40, 60},
		{5, math.MaxUint32 - 4, 10},
	}
	for _, tc := range cases {
		if got := Elapsed(tc.now, tc.since); got != tc.want {
			t.Fatalf("Elapsed(%d,%d) = %d", tc.now, tc.since, got)
		}
	}
	if !Reached(10, math.MaxUint32-100) {
		t.Fatal("deadline before wrap should be reached after wrap")
	}
	if Reached(math.MaxUint32-100, 10) {
		t.Fatal("deadline after wrap not yet reached")
	}
	if !Reached(7, 7) {
		t.Fatal("equal is reached")
	}
}
