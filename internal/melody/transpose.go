package melody

import (
	"blinkytree-go/internal/songs"
	"blinkytree-go/x/mathx"
)

// Transpose shifts freq by semis semitones along the tuned chromatic ladder.
// freq snaps to the nearest ladder pitch first (the lower one on a tie); the
// result clamps at G3 and E6. Rests and a zero shift pass through untouched.
func Transpose(freq uint16, semis int8) uint16 {
	if semis == 0 || freq == 0 {
		return freq
	}
	idx := 0
	best := uint16(0xFFFF)
	for i, f := range songs.Chromatic {
		if d := mathx.AbsDiff(freq, f); d < best {
			best, idx = d, i
		}
	}
	t := mathx.Clamp(idx+int(semis), 0, len(songs.Chromatic)-1)
	return songs.Chromatic[t]
}
