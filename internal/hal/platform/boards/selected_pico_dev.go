//go:build board_pico_dev

package boards

var Selected = PicoDev
