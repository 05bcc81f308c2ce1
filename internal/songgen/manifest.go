// Package songgen turns the song manifest into the compiled-in catalog and
// can export a catalog entry as a Standard MIDI File for auditioning.
package songgen

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"blinkytree-go/errcode"
)

// Defaults for fields a manifest entry leaves out.
const (
	DefaultDuty  = 75
	DefaultSpeed = 100
	DefaultTempo = 120
)

// Manifest is the parsed songs.yaml.
type Manifest struct {
	Songs []Entry `yaml:"songs"`
}

// Entry is one song. Exactly one of Notation and MusicXML is set.
type Entry struct {
	Name      string `yaml:"name"`
	Title     string `yaml:"title"`
	DutyCycle uint8  `yaml:"duty_cycle"`
	Speed     uint16 `yaml:"speed"`
	Transpose int8   `yaml:"transpose"`
	Enabled   bool   `yaml:"enabled"`
	// Tempo in quarter notes per minute. For MusicXML it overrides the
	// score's own marking.
	Tempo    int    `yaml:"tempo"`
	Notation string `yaml:"notation"`
	MusicXML string `yaml:"musicxml"`
}

// ParseManifest decodes and validates a manifest. Unknown keys are errors.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Wrap(err, "decode manifest")
	}
	for i := range m.Songs {
		m.Songs[i].applyDefaults()
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open manifest")
	}
	defer f.Close()
	m, err := ParseManifest(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return m, nil
}

func (e *Entry) applyDefaults() {
	if e.DutyCycle == 0 {
		e.DutyCycle = DefaultDuty
	}
	if e.Speed == 0 {
		e.Speed = DefaultSpeed
	}
	if e.Tempo == 0 && e.Notation != "" {
		e.Tempo = DefaultTempo
	}
}

// Validate checks names and playback parameters. The catalog reserves one
// id for the test tone.
func (m *Manifest) Validate() error {
	if len(m.Songs) == 0 {
		return errcode.New(errcode.InvalidCatalog, "manifest", "no songs")
	}
	if len(m.Songs) > 253 {
		return errcode.New(errcode.InvalidCatalog, "manifest", "too many songs")
	}
	seen := map[string]bool{TestToneName: true}
	for i, e := range m.Songs {
		op := "manifest.songs[" + strconv.Itoa(i) + "]"
		if !validName(e.Name) {
			return errcode.New(errcode.InvalidCatalog, op, "name must be lower_snake_case: "+strconv.Quote(e.Name))
		}
		if seen[e.Name] {
			return errcode.New(errcode.InvalidCatalog, op, "duplicate name "+e.Name)
		}
		seen[e.Name] = true
		if (e.Notation == "") == (e.MusicXML == "") {
			return errcode.New(errcode.InvalidCatalog, op, "need exactly one of notation or musicxml")
		}
		if e.DutyCycle < 10 || e.DutyCycle > 100 {
			return errcode.New(errcode.InvalidParams, op, "duty_cycle outside 10..100")
		}
		if e.Speed < 25 || e.Speed > 10000 {
			return errcode.New(errcode.InvalidParams, op, "speed outside 25..10000")
		}
		if e.Transpose < -12 || e.Transpose > 12 {
			return errcode.New(errcode.InvalidParams, op, "transpose outside -12..12")
		}
		if e.Tempo < 0 || e.Tempo > 600 {
			return errcode.New(errcode.InvalidParams, op, "tempo above 600")
		}
	}
	return nil
}

func validName(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_') {
			return false
		}
	}
	return true
}
