//go:build board_debug_shared

package boards

var Selected = DebugShared
