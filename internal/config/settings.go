// Package config holds the build-time settings surface: effect choice,
// thresholds, timings and brightness constants. Firmware images use
// Default(); host tools may overlay a TOML file (see toml.go).
package config

import (
	"blinkytree-go/errcode"
	"blinkytree-go/types"
)

// Settings is the complete configuration consumed by the firmware.
type Settings struct {
	Lighting Lighting `toml:"lighting"`
	Sensor   Sensor   `toml:"sensor"`
	Melody   Melody   `toml:"melody"`
	Startup  Startup  `toml:"startup"`
}

// Lighting configures the effect engine.
type Lighting struct {
	// Effect is one of none, static, breathing, candle, calibration.
	Effect            string `toml:"effect"`
	DefaultBrightness uint8  `toml:"default_brightness"`
	MinBrightness     uint8  `toml:"min_brightness"`

	CandleIntervalMs uint32 `toml:"candle_interval_ms"`
	// FlickerIntensity scales every flicker term, in percent.
	FlickerIntensity uint8 `toml:"flicker_intensity"`
	// Base brightness per ring as a percentage of DefaultBrightness.
	TipPct    uint16 `toml:"tip_pct"`
	UpperPct  uint16 `toml:"upper_pct"`
	MiddlePct uint16 `toml:"middle_pct"`
	BasePct   uint16 `toml:"base_pct"`

	BreathingIntervalMs uint32 `toml:"breathing_interval_ms"`
	AudioReactive       bool   `toml:"audio_reactive"`
}

// Sensor configures breath detection. Thresholds are offsets above Baseline.
type Sensor struct {
	Baseline        uint16 `toml:"baseline"`
	LightThreshold  uint16 `toml:"light_threshold"`
	StrongThreshold uint16 `toml:"strong_threshold"`
	IntervalMs      uint32 `toml:"interval_ms"`
	MaxBoost        uint8  `toml:"max_boost"`

	// Output range of the squared intensity curve.
	CurveMin uint8 `toml:"curve_min"`
	CurveMax uint8 `toml:"curve_max"`
}

// Melody configures playback and rotation.
type Melody struct {
	CooldownMs uint32 `toml:"cooldown_ms"`
	NoteGapMs  uint32 `toml:"note_gap_ms"`
	// Rotation is "sequential" or "random".
	Rotation     string `toml:"rotation"`
	RotationAddr uint16 `toml:"rotation_addr"`
}

// Startup selects the optional boot sequence steps.
type Startup struct {
	Animation bool `toml:"animation"`
	Melody    bool `toml:"melody"`
}

// Default mirrors the production firmware configuration.
func Default() Settings {
	return Settings{
		Lighting: Lighting{
			Effect:              "candle",
			DefaultBrightness:   30,
			MinBrightness:       10,
			CandleIntervalMs:    130,
			FlickerIntensity:    25,
			TipPct:              140,
			UpperPct:            75,
			MiddlePct:           50,
			BasePct:             40,
			BreathingIntervalMs: 100,
			AudioReactive:       true,
		},
		Sensor: Sensor{
			Baseline:        200,
			LightThreshold:  1,
			StrongThreshold: 50,
			IntervalMs:      40,
			MaxBoost:        50,
			CurveMin:        40,
			CurveMax:        200,
		},
		Melody: Melody{
			CooldownMs:   3000,
			NoteGapMs:    50,
			Rotation:     "sequential",
			RotationAddr: 0x00,
		},
		Startup: Startup{Animation: true},
	}
}

// Validate rejects settings the firmware cannot run with.
func (s *Settings) Validate() error {
	if !types.KnownEffect(s.Lighting.Effect) {
		return errcode.New(errcode.InvalidConfig, "config", "unknown effect "+s.Lighting.Effect)
	}
	if s.Lighting.MinBrightness > s.Lighting.DefaultBrightness {
		return errcode.New(errcode.InvalidConfig, "config", "min_brightness above default_brightness")
	}
	if s.Lighting.CandleIntervalMs == 0 || s.Lighting.BreathingIntervalMs == 0 {
		return errcode.New(errcode.InvalidConfig, "config", "effect intervals must be positive")
	}
	if s.Sensor.LightThreshold == 0 {
		return errcode.New(errcode.InvalidConfig, "config", "light_threshold must be positive")
	}
	if s.Sensor.StrongThreshold <= s.Sensor.LightThreshold {
		return errcode.New(errcode.InvalidConfig, "config", "strong_threshold must exceed light_threshold")
	}
	if s.Sensor.CurveMin > s.Sensor.CurveMax {
		return errcode.New(errcode.InvalidConfig, "config", "curve_min above curve_max")
	}
	if s.Sensor.MaxBoost > 100 {
		return errcode.New(errcode.InvalidConfig, "config", "max_boost above 100")
	}
	switch s.Melody.Rotation {
	case "sequential", "random":
	default:
		return errcode.New(errcode.InvalidConfig, "config", "unknown rotation "+s.Melody.Rotation)
	}
	return nil
}
