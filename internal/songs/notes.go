package songs

import "blinkytree-go/x/mathx"

// Buzzer-tuned note frequencies in Hz. The piezo resonates sharp of equal
// temperament, so these sit well below concert pitch (A4 is 290, not 440).
const (
	NoteRest uint16 = 0

	NoteG3  uint16 = 128
	NoteGS3 uint16 = 136
	NoteA3  uint16 = 144
	NoteAS3 uint16 = 153
	NoteB3  uint16 = 162

	NoteC4  uint16 = 172
	NoteCS4 uint16 = 182
	NoteD4  uint16 = 192
	NoteDS4 uint16 = 204
	NoteE4  uint16 = 216
	NoteF4  uint16 = 229
	NoteFS4 uint16 = 243
	NoteG4  uint16 = 257
	NoteGS4 uint16 = 273
	NoteA4  uint16 = 290
	NoteAS4 uint16 = 307
	NoteB4  uint16 = 326

	NoteC5  uint16 = 344
	NoteCS5 uint16 = 365
	NoteD5  uint16 = 386
	NoteDS5 uint16 = 408
	NoteE5  uint16 = 433
	NoteF5  uint16 = 459
	NoteFS5 uint16 = 486
	NoteG5  uint16 = 515
	NoteGS5 uint16 = 546
	NoteA5  uint16 = 580
	NoteAS5 uint16 = 614
	NoteB5  uint16 = 652

	NoteC6  uint16 = 690
	NoteCS6 uint16 = 730
	NoteD6  uint16 = 773
	NoteDS6 uint16 = 818
	NoteE6  uint16 = 866
	NoteF6  uint16 = 918
	NoteFS6 uint16 = 972
	NoteG6  uint16 = 1030
	NoteGS6 uint16 = 1092
	NoteA6  uint16 = 1160
	NoteAS6 uint16 = 1228
)

// Durations in ms at 120 bpm. Catalog entries keep the unit they were
// written against; see Song.Notes.
const (
	Sixteenth uint16 = 125
	Eighth    uint16 = 250
	Quarter   uint16 = 500
	Half      uint16 = 1000
	Whole     uint16 = 2000
)

// Chromatic is the transposition ladder, G3 to E6 in semitone steps.
var Chromatic = [...]uint16{
	NoteG3, NoteGS3, NoteA3, NoteAS3, NoteB3,
	NoteC4, NoteCS4, NoteD4, NoteDS4, NoteE4, NoteF4, NoteFS4,
	NoteG4, NoteGS4, NoteA4, NoteAS4, NoteB4,
	NoteC5, NoteCS5, NoteD5, NoteDS5, NoteE5, NoteF5, NoteFS5,
	NoteG5, NoteGS5, NoteA5, NoteAS5, NoteB5,
	NoteC6, NoteCS6, NoteD6, NoteDS6, NoteE6,
}

// pitch names the twelve pitch classes in sharp spelling.
var pitch = [12]string{"C", "CS", "D", "DS", "E", "F", "FS", "G", "GS", "A", "AS", "B"}

// octave3Low are the untuned octave-3 pitches below G3, kept for scores that
// dip under the ladder.
var octave3Low = [7]uint16{131, 139, 147, 156, 165, 175, 185}

var tuned = [...]uint16{
	// octave 4, C..B
	NoteC4, NoteCS4, NoteD4, NoteDS4, NoteE4, NoteF4, NoteFS4, NoteG4, NoteGS4, NoteA4, NoteAS4, NoteB4,
	// octave 5
	NoteC5, NoteCS5, NoteD5, NoteDS5, NoteE5, NoteF5, NoteFS5, NoteG5, NoteGS5, NoteA5, NoteAS5, NoteB5,
	// octave 6
	NoteC6, NoteCS6, NoteD6, NoteDS6, NoteE6, NoteF6, NoteFS6, NoteG6, NoteGS6, NoteA6, NoteAS6,
}

// Frequency returns the tuned frequency of a sharp-spelled pitch class
// ("C", "FS", ...) in octave. ok is false outside the buzzer's range.
func Frequency(name string, octave int) (freq uint16, ok bool) {
	pc := -1
	for i, p := range pitch {
		if p == name {
			pc = i
		}
	}
	if pc < 0 {
		return 0, false
	}
	switch {
	case octave == 3 && pc < 7:
		return octave3Low[pc], true
	case octave == 3:
		return Chromatic[pc-7], true
	case octave >= 4 && octave <= 6:
		i := (octave-4)*12 + pc
		if i < len(tuned) {
			return tuned[i], true
		}
	}
	return 0, false
}

// FlatToSharp respells a flat pitch class (step letter) as its sharp twin.
func FlatToSharp(step string) string {
	switch step {
	case "B":
		return "AS"
	case "E":
		return "DS"
	case "A":
		return "GS"
	case "D":
		return "CS"
	case "G":
		return "FS"
	}
	return step
}

// Nearest returns the pitch class (0 is C) and octave of the tuned pitch
// closest to freq.
func Nearest(freq uint16) (pc, octave int) {
	best := uint16(0xFFFF)
	for oct := 3; oct <= 6; oct++ {
		for i, name := range pitch {
			f, ok := Frequency(name, oct)
			if !ok {
				continue
			}
			if d := mathx.AbsDiff(f, freq); d < best {
				best, pc, octave = d, i, oct
			}
		}
	}
	return pc, octave
}
