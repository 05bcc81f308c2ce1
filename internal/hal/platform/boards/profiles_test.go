package boards

import (
	"testing"

	"blinkytree-go/errcode"
	"blinkytree-go/types"
)

func TestByName(t *testing.T) {
	for _, want := range All() {
		got, err := ByName(want.Name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", want.Name, err)
		}
		if got != want {
			t.Fatalf("ByName(%q) returned %q", want.Name, got.Name)
		}
	}
	if _, err := ByName("nope"); errcode.Of(err) != errcode.UnknownProfile {
		t.Fatalf("want unknown_profile, got %v", err)
	}
}

func TestProfilesAreConsistent(t *testing.T) {
	for _, p := range All() {
		seen := map[types.Pin]bool{}
		for ch, pin := range p.LED {
			if pin == types.NoPin {
				t.Fatalf("%s: ring %v unassigned", p.Name, types.Channel(ch))
			}
			if seen[pin] {
				t.Fatalf("%s: pin %d used twice", p.Name, pin)
			}
			seen[pin] = true
		}
		if seen[p.Buzzer] {
			t.Fatalf("%s: buzzer collides with a ring", p.Name)
		}
		if p.HasShared {
			if p.SharedPin() != p.Mic {
				t.Fatalf("%s: shared ring pin %d != mic %d", p.Name, p.SharedPin(), p.Mic)
			}
		} else if seen[p.Mic] {
			t.Fatalf("%s: dedicated mic collides with a ring", p.Name)
		}
	}
}

func TestOnlyDebugIsShared(t *testing.T) {
	if !DebugShared.HasShared || DebugShared.Shared != types.ChannelUpper {
		t.Fatal("debug profile must share the upper ring")
	}
	if ProductionNew.HasShared || ProductionOld.HasShared || PicoDev.HasShared {
		t.Fatal("production profiles have a dedicated mic")
	}
	if ProductionOld.SharedPin() != types.NoPin {
		t.Fatal("SharedPin should be NoPin when unshared")
	}
}

func TestAttinyMicUsesInternalReference(t *testing.T) {
	for _, p := range []types.Profile{DebugShared, ProductionNew, ProductionOld} {
		if p.ADC.Ref != types.RefInternal1V1 {
			t.Fatalf("%s: reference %v, want internal_1v1", p.Name, p.ADC.Ref)
		}
		if p.ADC.Prescaler != 128 {
			t.Fatalf("%s: prescaler /%d, want /128", p.Name, p.ADC.Prescaler)
		}
		if p.ADC.Channel != 3 || p.Mic != PB3 {
			t.Fatalf("%s: mic on ADC%d pin %d", p.Name, p.ADC.Channel, p.Mic)
		}
	}
}
