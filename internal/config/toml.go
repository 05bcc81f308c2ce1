//go:build !tinygo

package config

import (
	"io"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Parse overlays a TOML document onto Default(). Keys absent from the
// document keep their default values.
func Parse(r io.Reader) (Settings, error) {
	s := Default()
	if err := toml.NewDecoder(r).Decode(&s); err != nil {
		return Settings{}, errors.Wrap(err, "failed to decode settings")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, errors.Wrap(err, "invalid settings")
	}
	return s, nil
}

// Load reads path with Parse. An empty path yields Default().
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, errors.Wrap(err, "failed to open settings file")
	}
	defer f.Close()
	return Parse(f)
}
