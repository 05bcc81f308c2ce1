package songgen

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"blinkytree-go/internal/songs"
	"blinkytree-go/types"
)

// The test tone is appended to every catalog, outside the rotation.
const TestToneName = "test_tone"

var (
	testToneNotes  = []types.Note{{Freq: 440, DurMs: 5000}}
	testToneConfig = types.SongConfig{DutyPercent: 80, SpeedPercent: 100}
)

// Build resolves every manifest entry into a catalog song. Ids follow
// manifest order starting at 1 and the test tone comes last. MusicXML paths
// are relative to dir. warn, if set, receives notes that had to be dropped.
func Build(m *Manifest, dir string, warn func(song, msg string)) ([]songs.Song, error) {
	out := make([]songs.Song, 0, len(m.Songs)+1)
	for i, e := range m.Songs {
		notes, err := e.notes(dir, warn)
		if err != nil {
			return nil, errors.Wrapf(err, "song %s", e.Name)
		}
		if len(notes) == 0 {
			return nil, errors.Errorf("song %s: no playable notes", e.Name)
		}
		out = append(out, songs.Song{
			ID:      types.SongID(i + 1),
			Name:    e.Name,
			Notes:   notes,
			Enabled: e.Enabled,
			Config: types.SongConfig{
				DutyPercent:  e.DutyCycle,
				SpeedPercent: e.Speed,
				Transpose:    e.Transpose,
			},
		})
	}
	out = append(out, songs.Song{
		ID:     types.SongID(len(out) + 1),
		Name:   TestToneName,
		Notes:  testToneNotes,
		Config: testToneConfig,
	})
	return out, nil
}

func (e Entry) notes(dir string, warn func(song, msg string)) ([]types.Note, error) {
	if e.Notation != "" {
		return ParseNotation(e.Notation, e.Tempo)
	}
	f, err := os.Open(filepath.Join(dir, e.MusicXML))
	if err != nil {
		return nil, errors.Wrap(err, "open score")
	}
	defer f.Close()
	sc, err := ParseMusicXML(f, e.Tempo)
	if err != nil {
		return nil, err
	}
	if warn != nil {
		for _, s := range sc.Skipped {
			warn(e.Name, "dropped unplayable note "+s)
		}
	}
	return sc.Notes, nil
}

// Generate loads the manifest at path and returns the formatted catalog
// source along with the songs it describes.
func Generate(path string, warn func(song, msg string)) ([]byte, []songs.Song, error) {
	m, err := LoadManifest(path)
	if err != nil {
		return nil, nil, err
	}
	list, err := Build(m, filepath.Dir(path), warn)
	if err != nil {
		return nil, nil, err
	}
	name := filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path))
	src, err := Emit(list, filepath.ToSlash(name))
	if err != nil {
		return nil, nil, err
	}
	return src, list, nil
}
