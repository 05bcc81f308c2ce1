package songgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/pkg/errors"

	"blinkytree-go/internal/songs"
)

// Emit renders list as the songs package's generated catalog. source is
// named in the header.
func Emit(list []songs.Song, source string) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by songgen from %s. DO NOT EDIT.\n\n", source)
	b.WriteString("package songs\n\nimport \"blinkytree-go/types\"\n\n")

	b.WriteString("const (\n")
	for _, s := range list {
		fmt.Fprintf(&b, "%s types.SongID = %d\n", Ident(s.Name), s.ID)
	}
	b.WriteString(")\n\n")

	b.WriteString("var generated = []Song{\n")
	for _, s := range list {
		c := s.Config
		b.WriteString("{\n")
		fmt.Fprintf(&b, "ID: %s,\n", Ident(s.Name))
		fmt.Fprintf(&b, "Name: %q,\n", s.Name)
		fmt.Fprintf(&b, "Config: types.SongConfig{DutyPercent: %d, SpeedPercent: %d, Transpose: %d},\n",
			c.DutyPercent, c.SpeedPercent, c.Transpose)
		fmt.Fprintf(&b, "Enabled: %t,\n", s.Enabled)
		fmt.Fprintf(&b, "Notes: []types.Note{ // %d notes\n", len(s.Notes))
		for _, n := range s.Notes {
			fmt.Fprintf(&b, "{Freq: %d, DurMs: %d},\n", n.Freq, n.DurMs)
		}
		b.WriteString("},\n},\n")
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "format generated catalog")
	}
	return src, nil
}

// Ident turns a lower_snake_case song name into an exported Go identifier.
func Ident(name string) string {
	var b strings.Builder
	up := true
	for _, r := range name {
		if r == '_' {
			up = true
			continue
		}
		if up {
			r = toUpper(r)
			up = false
		}
		b.WriteRune(r)
	}
	s := b.String()
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		s = "Song" + s
	}
	return s
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
