package types

// ------------------------
// Songs
// ------------------------

// SongID names a catalog entry. Zero is "no song".
type SongID uint8

const SongNone SongID = 0

// Note is one (frequency, duration) pair. Freq 0 is a rest.
type Note struct {
	Freq  uint16 `yaml:"freq"`  // Hz, buzzer-tuned
	DurMs uint16 `yaml:"dur_ms"` // milliseconds at speed 100
}

// SongConfig holds the per-song playback parameters.
type SongConfig struct {
	DutyPercent  uint8  `yaml:"duty_cycle"` // 10..100
	SpeedPercent uint16 `yaml:"speed"`      // 25..10000, 100 = as written
	Transpose    int8   `yaml:"transpose"`  // -12..12 semitones
}

// RotationMode selects how the next song is picked.
type RotationMode uint8

const (
	RotationRandom RotationMode = iota
	RotationSequential
)

func (m RotationMode) String() string {
	if m == RotationSequential {
		return "sequential"
	}
	return "random"
}
