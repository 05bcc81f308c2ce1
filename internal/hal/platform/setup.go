package platform

import "blinkytree-go/types"

// SelectedProfile returns the wiring chosen at build time with a board_* tag.
// ok is false on builds without one (host tools pick by name instead).
func SelectedProfile() (p types.Profile, ok bool) { return selectedProfile() }
