package songgen

import (
	"strconv"
	"strings"

	"blinkytree-go/errcode"
	"blinkytree-go/internal/songs"
	"blinkytree-go/types"
)

// sixteenths per duration letter
var durationUnits = map[byte]uint32{'w': 16, 'h': 8, 'q': 4, 'e': 2, 's': 1}

// ParseNotation reads whitespace-separated PITCH/DURATION tokens.
//
//	D4/q  G4/e.  F#4/s  Bb4/h  R/q  C5/300
//
// Letter durations are relative to tempo (quarter notes per minute); a plain
// number is milliseconds.
func ParseNotation(src string, tempo int) ([]types.Note, error) {
	if tempo <= 0 {
		tempo = DefaultTempo
	}
	quarterMs := uint32(60000 / tempo)
	var out []types.Note
	for i, tok := range strings.Fields(src) {
		p, d, ok := strings.Cut(tok, "/")
		if !ok {
			return nil, errcode.New(errcode.InvalidParams, "notation", "token "+strconv.Itoa(i+1)+" "+strconv.Quote(tok)+" has no duration")
		}
		freq, err := parsePitch(p)
		if err != nil {
			return nil, err
		}
		dur, err := parseDuration(d, quarterMs)
		if err != nil {
			return nil, err
		}
		out = append(out, types.Note{Freq: freq, DurMs: dur})
	}
	return out, nil
}

func parsePitch(s string) (uint16, error) {
	if s == "R" || s == "r" {
		return songs.NoteRest, nil
	}
	bad := errcode.New(errcode.UnknownNote, "notation", strconv.Quote(s))
	if len(s) < 2 {
		return 0, bad
	}
	step := strings.ToUpper(s[:1])
	if step < "A" || step > "G" {
		return 0, bad
	}
	rest := s[1:]
	name := step
	switch rest[0] {
	case '#':
		name = step + "S"
		rest = rest[1:]
	case 'b':
		name = songs.FlatToSharp(step)
		if name == step {
			return 0, bad
		}
		rest = rest[1:]
	}
	oct, err := strconv.Atoi(rest)
	if err != nil {
		return 0, bad
	}
	f, ok := songs.Frequency(name, oct)
	if !ok {
		return 0, bad
	}
	return f, nil
}

func parseDuration(s string, quarterMs uint32) (uint16, error) {
	bad := errcode.New(errcode.InvalidParams, "notation", "bad duration "+strconv.Quote(s))
	if s == "" {
		return 0, bad
	}
	var ms uint32
	if u, ok := durationUnits[s[0]]; ok {
		ms = u * quarterMs / 4
		switch s[1:] {
		case "":
		case ".":
			ms = ms * 3 / 2
		default:
			return 0, bad
		}
	} else {
		v, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return 0, bad
		}
		ms = uint32(v)
	}
	if ms == 0 || ms > 0xFFFF {
		return 0, bad
	}
	return uint16(ms), nil
}
