//go:build tinygo

// Command blinkytree is the device firmware. Select the wiring at build
// time, e.g.
//
//	tinygo flash -target digispark -tags board_production_new ./cmd/blinkytree
package main

import (
	"context"

	"blinkytree-go/internal/config"
	"blinkytree-go/internal/firmware"
	"blinkytree-go/internal/hal/platform"
	"blinkytree-go/internal/songs"
)

func main() {
	prof, ok := platform.SelectedProfile()
	if !ok {
		println("[boot] no board profile; build with -tags board_<name>")
		for {
		}
	}
	println("[boot] profile", prof.Name)

	port := platform.DefaultPort()
	store := platform.DefaultStorage(platform.DefaultI2CFactory())

	dev := firmware.New(prof, config.Default(), port, store, songs.Default, nil)
	dev.Init()

	println("[main] running, song", int(dev.Rotation.Current()))
	dev.Run(context.Background())
}
