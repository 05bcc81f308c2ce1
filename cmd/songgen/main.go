// Command songgen regenerates internal/songs/catalog_gen.go from the song
// manifest and can export one song as a MIDI file.
package main

import (
	"bytes"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"blinkytree-go/internal/config"
	"blinkytree-go/internal/songgen"
	"blinkytree-go/internal/songs"
)

var (
	manifest = "songs/songs.yaml"
	out      = "internal/songs/catalog_gen.go"
	midiSong = ""
	midiOut  = ""
	verbose  = false
)

func init() {
	pflag.StringVarP(&manifest, "manifest", "m", manifest, "song manifest (YAML)")
	pflag.StringVarP(&out, "out", "o", out, "generated catalog path, - for stdout")
	pflag.StringVar(&midiSong, "midi", midiSong, "export this song as a Standard MIDI File instead")
	pflag.StringVar(&midiOut, "midi-out", midiOut, "MIDI output path (default <song>.mid)")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "debug logging")
}

func main() {
	pflag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("songgen failed")
	}
}

func run() error {
	warn := func(song, msg string) { log.Warn().Str("song", song).Msg(msg) }
	src, list, err := songgen.Generate(manifest, warn)
	if err != nil {
		return err
	}
	for _, s := range list {
		log.Debug().Str("song", s.Name).Uint8("id", uint8(s.ID)).Int("notes", len(s.Notes)).
			Bool("enabled", s.Enabled).Msg("resolved")
	}

	if midiSong != "" {
		return exportMIDI(songs.NewCatalog(list), midiSong)
	}

	if out == "-" {
		_, err := os.Stdout.Write(src)
		return err
	}
	if old, err := os.ReadFile(out); err == nil && bytes.Equal(old, src) {
		log.Info().Str("out", out).Msg("catalog up to date")
		return nil
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return errors.Wrap(err, "write catalog")
	}
	log.Info().Str("out", out).Int("songs", len(list)).Msg("catalog written")
	return nil
}

func exportMIDI(cat *songs.Catalog, name string) error {
	id, ok := cat.ByName(name)
	if !ok {
		return errors.Errorf("no song named %q in %s", name, manifest)
	}
	path := midiOut
	if path == "" {
		path = name + ".mid"
	}
	var song songs.Song
	for _, s := range cat.All() {
		if s.ID == id {
			song = s
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create midi file")
	}
	defer f.Close()
	if err := songgen.WriteMIDI(f, song, config.Default().Melody.NoteGapMs); err != nil {
		return err
	}
	log.Info().Str("song", name).Str("out", path).Msg("midi written")
	return nil
}
