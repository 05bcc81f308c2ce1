package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"invalid_params":  InvalidParams,
		"invalid_config":  InvalidConfig,
		"invalid_catalog": InvalidCatalog,
		"unknown_song":    UnknownSong,
		"unknown_profile": UnknownProfile,
		"unknown_pin":     UnknownPin,
		"unknown_note":    UnknownNote,
		"storage_io":      StorageIO,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil should map to ok")
	}
	if Of(UnknownSong) != UnknownSong {
		t.Fatal("bare code not recovered")
	}
	e := New(InvalidParams, "songgen", "speed out of range")
	if Of(e) != InvalidParams {
		t.Fatalf("Of(*E) = %q", Of(e))
	}
	if e.Error() != "songgen: invalid_params: speed out of range" {
		t.Fatalf("unexpected message %q", e.Error())
	}
	if Of(errors.New("boom")) != Error {
		t.Fatal("foreign error should map to generic")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(StorageIO, "read", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
	cause := errors.New("nack")
	err := Wrap(StorageIO, "at24.read", cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable via errors.Is")
	}
	if Of(err) != StorageIO {
		t.Fatalf("Of(wrap) = %q", Of(err))
	}
}
