package songgen

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"blinkytree-go/internal/songs"
	"blinkytree-go/types"
)

// Score is a melody read from MusicXML.
type Score struct {
	Notes []types.Note
	Tempo int
	// Skipped lists pitches the buzzer cannot play; they are dropped.
	Skipped []string
}

type xmlScore struct {
	XMLName xml.Name  `xml:"score-partwise"`
	Parts   []xmlPart `xml:"part"`
}

type xmlPart struct {
	Measures []xmlMeasure `xml:"measure"`
}

type xmlMeasure struct {
	Attributes []xmlAttributes `xml:"attributes"`
	Directions []xmlDirection  `xml:"direction"`
	Sounds     []xmlSound      `xml:"sound"`
	Notes      []xmlNote       `xml:"note"`
}

type xmlAttributes struct {
	Divisions int `xml:"divisions"`
}

type xmlDirection struct {
	Sound *xmlSound `xml:"sound"`
}

type xmlSound struct {
	Tempo float64 `xml:"tempo,attr"`
}

type xmlNote struct {
	Chord    *struct{} `xml:"chord"`
	Grace    *struct{} `xml:"grace"`
	Rest     *struct{} `xml:"rest"`
	Pitch    *xmlPitch `xml:"pitch"`
	Duration *int      `xml:"duration"`
	Staff    int       `xml:"staff"`
	Ties     []xmlTie  `xml:"tie"`
}

type xmlPitch struct {
	Step   string  `xml:"step"`
	Alter  float64 `xml:"alter"`
	Octave int     `xml:"octave"`
}

type xmlTie struct {
	Type string `xml:"type,attr"`
}

// ParseMusicXML extracts the melody of the first part of a partwise score.
// Only staff 1 is read, chord members and grace notes are ignored, flats are
// respelled as sharps and tied notes of equal pitch are merged. tempo
// overrides the score's first tempo marking when positive.
func ParseMusicXML(r io.Reader, tempo int) (*Score, error) {
	var doc xmlScore
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode musicxml")
	}
	if len(doc.Parts) == 0 {
		return nil, errors.New("musicxml: no parts")
	}
	part := doc.Parts[0]

	sc := &Score{Tempo: tempo}
	if sc.Tempo <= 0 {
		sc.Tempo = scoreTempo(part)
	}

	divisions := 1
	for _, m := range part.Measures {
		for _, a := range m.Attributes {
			if a.Divisions > 0 {
				divisions = a.Divisions
			}
		}
		for _, n := range m.Notes {
			if n.Chord != nil || n.Grace != nil || n.Staff > 1 {
				continue
			}
			dur := songs.Quarter
			if n.Duration != nil {
				dur = divisionsToMs(*n.Duration, divisions, sc.Tempo)
			}
			var freq uint16
			switch {
			case n.Rest != nil:
			case n.Pitch != nil:
				name := n.Pitch.Step
				switch {
				case n.Pitch.Alter >= 1:
					name += "S"
				case n.Pitch.Alter <= -1:
					name = songs.FlatToSharp(name)
				}
				f, ok := songs.Frequency(name, n.Pitch.Octave)
				if !ok {
					sc.Skipped = append(sc.Skipped, name+strconv.Itoa(n.Pitch.Octave))
					continue
				}
				freq = f
			default:
				continue
			}
			if tieStop(n) && len(sc.Notes) > 0 && sc.Notes[len(sc.Notes)-1].Freq == freq {
				sc.Notes[len(sc.Notes)-1].DurMs += dur
				continue
			}
			sc.Notes = append(sc.Notes, types.Note{Freq: freq, DurMs: dur})
		}
	}
	return sc, nil
}

func scoreTempo(p xmlPart) int {
	for _, m := range p.Measures {
		for _, d := range m.Directions {
			if d.Sound != nil && d.Sound.Tempo > 0 {
				return int(d.Sound.Tempo + 0.5)
			}
		}
		for _, s := range m.Sounds {
			if s.Tempo > 0 {
				return int(s.Tempo + 0.5)
			}
		}
	}
	return DefaultTempo
}

func tieStop(n xmlNote) bool {
	for _, t := range n.Ties {
		if t.Type == "stop" {
			return true
		}
	}
	return false
}

// divisionsToMs rounds d divisions to milliseconds at tempo.
func divisionsToMs(d, divisions, tempo int) uint16 {
	num := int64(d) * 60000 * 2
	den := int64(divisions) * int64(tempo)
	ms := (num + den) / (2 * den)
	if ms > 0xFFFF {
		ms = 0xFFFF
	}
	return uint16(ms)
}
