package main

import (
	"testing"
)

func TestParseScript(t *testing.T) {
	s, err := parseScript("3000:320, 0:200,3200:200")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		us   uint64
		want uint16
	}{
		{0, 200},
		{2_999_999, 200},
		{3_000_000, 320},
		{3_199_000, 320},
		{3_200_000, 200},
		{90_000_000, 200},
	}
	for _, tc := range cases {
		if got := s.At(tc.us); got != tc.want {
			t.Fatalf("At(%d) = %d, want %d", tc.us, got, tc.want)
		}
	}
}

func TestParseScriptSilentBeforeFirstPoint(t *testing.T) {
	s, err := parseScript("500:300")
	if err != nil {
		t.Fatal(err)
	}
	if s.At(499_999) != 0 || s.At(500_000) != 300 {
		t.Fatal("wrong edges")
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, bad := range []string{"100", "x:1", "1:y", "1:1024"} {
		if _, err := parseScript(bad); err == nil {
			t.Fatalf("%q accepted", bad)
		}
	}
}
