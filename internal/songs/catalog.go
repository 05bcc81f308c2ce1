// Package songs is the compiled-in melody catalog: note sequences and the
// per-song playback configuration, generated from songs/songs.yaml.
package songs

//go:generate go run ../../cmd/songgen --manifest ../../songs/songs.yaml --out catalog_gen.go

import "blinkytree-go/types"

// DefaultConfig applies to ids without an entry.
var DefaultConfig = types.SongConfig{DutyPercent: 50, SpeedPercent: 100, Transpose: 0}

// Song is one catalog entry.
type Song struct {
	ID   types.SongID
	Name string
	// Notes are in the duration unit the entry was authored against.
	Notes   []types.Note
	Config  types.SongConfig
	Enabled bool
}

// Catalog indexes songs by id and keeps the rotation order of enabled ones.
type Catalog struct {
	songs   []Song
	enabled []types.SongID
}

// NewCatalog builds a catalog. Ids are taken from the entries; the enabled
// list follows slice order.
func NewCatalog(list []Song) *Catalog {
	c := &Catalog{songs: list}
	for _, s := range list {
		if s.Enabled {
			c.enabled = append(c.enabled, s.ID)
		}
	}
	return c
}

func (c *Catalog) find(id types.SongID) (*Song, bool) {
	if id == types.SongNone {
		return nil, false
	}
	for i := range c.songs {
		if c.songs[i].ID == id {
			return &c.songs[i], true
		}
	}
	return nil, false
}

// Lookup returns the note sequence for id.
func (c *Catalog) Lookup(id types.SongID) ([]types.Note, bool) {
	s, ok := c.find(id)
	if !ok {
		return nil, false
	}
	return s.Notes, true
}

// ConfigFor returns id's playback configuration, or DefaultConfig.
func (c *Catalog) ConfigFor(id types.SongID) types.SongConfig {
	if s, ok := c.find(id); ok {
		return s.Config
	}
	return DefaultConfig
}

// Name returns the manifest name of id, or "".
func (c *Catalog) Name(id types.SongID) string {
	if s, ok := c.find(id); ok {
		return s.Name
	}
	return ""
}

// ByName resolves a manifest name.
func (c *Catalog) ByName(name string) (types.SongID, bool) {
	for _, s := range c.songs {
		if s.Name == name {
			return s.ID, true
		}
	}
	return types.SongNone, false
}

// Enabled returns the rotation order.
func (c *Catalog) Enabled() []types.SongID { return c.enabled }

// Len is the number of songs in rotation.
func (c *Catalog) Len() int { return len(c.enabled) }

// At returns the id at rotation index i, or SongNone when out of range.
func (c *Catalog) At(i int) types.SongID {
	if i < 0 || i >= len(c.enabled) {
		return types.SongNone
	}
	return c.enabled[i]
}

// All returns every entry including disabled ones.
func (c *Catalog) All() []Song { return c.songs }

// Default is the generated catalog.
var Default = NewCatalog(generated)
