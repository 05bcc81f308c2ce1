package config

import (
	"strings"
	"testing"

	"blinkytree-go/errcode"
	"blinkytree-go/types"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if s.Sensor.Baseline+s.Sensor.StrongThreshold != 250 {
		t.Fatalf("strong trigger level = %d", s.Sensor.Baseline+s.Sensor.StrongThreshold)
	}
}

func TestValidateAcceptsEveryEffect(t *testing.T) {
	for _, name := range types.EffectNames {
		s := Default()
		s.Lighting.Effect = name
		if err := s.Validate(); err != nil {
			t.Fatalf("effect %q rejected: %v", name, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Settings){
		"effect":     func(s *Settings) { s.Lighting.Effect = "disco" },
		"thresholds": func(s *Settings) { s.Sensor.StrongThreshold = s.Sensor.LightThreshold },
		"light zero": func(s *Settings) { s.Sensor.LightThreshold = 0 },
		"rotation":   func(s *Settings) { s.Melody.Rotation = "shuffle" },
		"interval":   func(s *Settings) { s.Lighting.CandleIntervalMs = 0 },
		"curve":      func(s *Settings) { s.Sensor.CurveMin = 250 },
		"min":        func(s *Settings) { s.Lighting.MinBrightness = 200 },
	}
	for name, mut := range cases {
		s := Default()
		mut(&s)
		if err := s.Validate(); errcode.Of(err) != errcode.InvalidConfig {
			t.Fatalf("%s: want invalid_config, got %v", name, err)
		}
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	doc := `
[lighting]
effect = "breathing"
default_brightness = 40

[melody]
rotation = "random"
`
	s, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if s.Lighting.Effect != "breathing" || s.Lighting.DefaultBrightness != 40 {
		t.Fatalf("overlay not applied: %+v", s.Lighting)
	}
	if s.Melody.Rotation != "random" || s.Melody.CooldownMs != 3000 {
		t.Fatalf("melody = %+v", s.Melody)
	}
	if s.Sensor.Baseline != 200 {
		t.Fatal("untouched section lost its defaults")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse(strings.NewReader("[lighting]\neffect = \"disco\"\n")); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := Parse(strings.NewReader("[lighting\n")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	s, err := Load("")
	if err != nil || s != Default() {
		t.Fatalf("Load(\"\") = %+v, %v", s, err)
	}
}
