//go:build !(board_debug_shared || board_production_new || board_production_old || board_pico_dev)

package platform

import "blinkytree-go/types"

func selectedProfile() (types.Profile, bool) { return types.Profile{}, false }
