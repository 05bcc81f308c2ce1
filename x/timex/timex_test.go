package timex

import "testing"

func TestPeriods(t *testing.T) {
	if PeriodFromHz(0) != 1_000_000_000 {
		t.Fatal("zero frequency not coerced")
	}
	if PeriodMicros(1000) != 1000 {
		t.Fatalf("PeriodMicros(1000)=%d", PeriodMicros(1000))
	}
	if PeriodMicros(440) != 2272 {
		t.Fatalf("PeriodMicros(440)=%d", PeriodMicros(440))
	}
}

func TestDutySplit(t *testing.T) {
	h, l := DutySplit(2272, 75)
	if h != 1704 || l != 568 {
		t.Fatalf("split = %d/%d", h, l)
	}
	h, l = DutySplit(1000, 150)
	if h != 1000 || l != 0 {
		t.Fatalf("over-100 duty = %d/%d", h, l)
	}
}

func TestCycles(t *testing.T) {
	if Cycles(440, 500) != 220 {
		t.Fatalf("Cycles(440,500)=%d", Cycles(440, 500))
	}
	if Cycles(257, 3) != 0 {
		t.Fatal("sub-period duration should round down to zero")
	}
}
