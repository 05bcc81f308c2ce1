package songs

import (
	"testing"

	"blinkytree-go/types"
)

func TestChromaticIsAscending(t *testing.T) {
	if len(Chromatic) != 34 {
		t.Fatalf("ladder has %d entries", len(Chromatic))
	}
	for i := 1; i < len(Chromatic); i++ {
		if Chromatic[i] <= Chromatic[i-1] {
			t.Fatalf("not ascending at %d: %d <= %d", i, Chromatic[i], Chromatic[i-1])
		}
	}
	if Chromatic[0] != NoteG3 || Chromatic[len(Chromatic)-1] != NoteE6 {
		t.Fatal("ladder must span G3..E6")
	}
}

func TestFrequency(t *testing.T) {
	cases := []struct {
		name   string
		octave int
		want   uint16
		ok     bool
	}{
		{"A", 4, NoteA4, true},
		{"C", 5, NoteC5, true},
		{"FS", 4, NoteFS4, true},
		{"G", 3, NoteG3, true},
		{"C", 3, 131, true},
		{"AS", 6, NoteAS6, true},
		{"B", 6, 0, false},
		{"C", 7, 0, false},
		{"H", 4, 0, false},
	}
	for _, tc := range cases {
		got, ok := Frequency(tc.name, tc.octave)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Frequency(%s,%d) = %d,%v", tc.name, tc.octave, got, ok)
		}
	}
	if FlatToSharp("B") != "AS" || FlatToSharp("C") != "C" {
		t.Fatal("flat respelling")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default
	if c.Len() != 3 {
		t.Fatalf("rotation has %d songs", c.Len())
	}
	if c.At(0) != OTannenbaum || c.At(3) != types.SongNone || c.At(-1) != types.SongNone {
		t.Fatal("rotation order")
	}
	for _, id := range c.Enabled() {
		notes, ok := c.Lookup(id)
		if !ok || len(notes) == 0 {
			t.Fatalf("song %d has no notes", id)
		}
	}
	tone, ok := c.Lookup(TestTone)
	if !ok || len(tone) != 1 || tone[0] != (types.Note{Freq: 440, DurMs: 5000}) {
		t.Fatalf("test tone = %v", tone)
	}
	if c.ConfigFor(TestTone) != (types.SongConfig{DutyPercent: 80, SpeedPercent: 100}) {
		t.Fatal("test tone config")
	}
}

func TestUnknownIDs(t *testing.T) {
	c := Default
	for _, id := range []types.SongID{types.SongNone, 99} {
		if _, ok := c.Lookup(id); ok {
			t.Fatalf("id %d should be unknown", id)
		}
		if c.ConfigFor(id) != DefaultConfig {
			t.Fatalf("id %d should fall back to the default config", id)
		}
		if c.Name(id) != "" {
			t.Fatal("unknown id has a name")
		}
	}
	if id, ok := c.ByName("silent_night"); !ok || id != SilentNight {
		t.Fatal("ByName")
	}
}

func TestCatalogNotesUseTunedPitches(t *testing.T) {
	known := map[uint16]bool{NoteRest: true}
	for _, f := range tuned {
		known[f] = true
	}
	for _, f := range Chromatic {
		known[f] = true
	}
	for _, s := range Default.All() {
		if s.ID == TestTone {
			continue // concert A on purpose
		}
		for i, n := range s.Notes {
			if !known[n.Freq] {
				t.Fatalf("%s note %d: %d Hz is not a tuned pitch", s.Name, i, n.Freq)
			}
		}
	}
}
