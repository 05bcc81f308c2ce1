package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"blinkytree-go/internal/hal/halcore"
)

type step struct {
	atMs  uint64
	value uint16
}

// script is a piecewise-constant microphone signal.
type script []step

// parseScript reads "ms:value,ms:value,...". Before the first point the
// signal is 0.
func parseScript(s string) (script, error) {
	var out script
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, v, ok := strings.Cut(part, ":")
		if !ok {
			return nil, errors.Errorf("breath script: %q is not ms:value", part)
		}
		ms, err := strconv.ParseUint(t, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "breath script: time %q", t)
		}
		val, err := strconv.ParseUint(v, 10, 16)
		if err != nil || val > halcore.MaxAnalog {
			return nil, errors.Errorf("breath script: value %q outside 0..%d", v, halcore.MaxAnalog)
		}
		out = append(out, step{atMs: ms, value: uint16(val)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].atMs < out[j].atMs })
	return out, nil
}

// At returns the signal at virtual time nowUs.
func (s script) At(nowUs uint64) uint16 {
	ms := nowUs / 1000
	i := sort.Search(len(s), func(i int) bool { return s[i].atMs > ms })
	if i == 0 {
		return 0
	}
	return s[i-1].value
}
