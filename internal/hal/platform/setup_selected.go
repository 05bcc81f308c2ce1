//go:build board_debug_shared || board_production_new || board_production_old || board_pico_dev

package platform

import (
	"blinkytree-go/internal/hal/platform/boards"
	"blinkytree-go/types"
)

func selectedProfile() (types.Profile, bool) { return boards.Selected, true }
