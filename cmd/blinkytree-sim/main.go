// Command blinkytree-sim runs the firmware on the host against the fake
// port, in virtual time, with a scripted microphone.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"blinkytree-go/internal/config"
	"blinkytree-go/internal/firmware"
	"blinkytree-go/internal/hal/platform"
	"blinkytree-go/internal/hal/platform/boards"
	"blinkytree-go/internal/lighting"
	"blinkytree-go/internal/songs"
)

var (
	settingsPath = ""
	profileName  = boards.DebugShared.Name
	effect       = ""
	breath       = "0:200,3000:320,3200:200"
	duration     = 20 * time.Second
	realtime     = false
	status       = 2 * time.Second
	verbose      = false
	jsonLogs     = false
)

func init() {
	pflag.StringVarP(&settingsPath, "config", "c", settingsPath, "TOML settings overlay")
	pflag.StringVarP(&profileName, "profile", "p", profileName, "board profile")
	pflag.StringVarP(&effect, "effect", "e", effect, "override the lighting effect")
	pflag.StringVarP(&breath, "breath", "b", breath, "mic script: ms:value pairs, comma separated")
	pflag.DurationVarP(&duration, "duration", "d", duration, "virtual run time, 0 to run until interrupted")
	pflag.BoolVar(&realtime, "realtime", realtime, "pace virtual time to the wall clock")
	pflag.DurationVar(&status, "status", status, "wall-clock status interval, 0 to disable")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "debug logging")
	pflag.BoolVar(&jsonLogs, "json", jsonLogs, "JSON log output")
}

func main() {
	pflag.Parse()
	setupLogging()

	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("simulation failed")
	}
}

func setupLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	if jsonLogs {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"})
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func run() error {
	cfg, err := config.Load(settingsPath)
	if err != nil {
		return err
	}
	if effect != "" {
		if _, err := lighting.ParseEffect(effect); err != nil {
			return err
		}
		cfg.Lighting.Effect = effect
	}
	prof, err := boards.ByName(profileName)
	if err != nil {
		return err
	}
	script, err := parseScript(breath)
	if err != nil {
		return err
	}

	port := platform.NewFakePort()
	port.SetAnalogSource(script.At)
	store := platform.DefaultStorage(platform.DefaultI2CFactory())

	obs := newLogObserver(log.Logger, port)
	dev := firmware.New(prof, cfg, port, store, songs.Default, obs)

	log.Info().Str("profile", prof.Name).Str("effect", cfg.Lighting.Effect).
		Str("rotation", cfg.Melody.Rotation).Dur("duration", duration).Msg("starting simulation")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		dev.Init()
		log.Info().Uint8("rotation_index", dev.Rotation.Current()).Msg("device up")
		defer logStorage(dev)
		return loop(ctx, dev, port)
	})

	if status > 0 {
		g.Go(func() error {
			t := time.NewTicker(status)
			defer t.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-done:
					return nil
				case <-t.C:
					log.Info().Uint64("virtual_ms", port.NowMicros()/1000).
						Uint32("songs", obs.Played()).Uint8("boost", obs.LastBoost()).Msg("status")
				}
			}
		})
	}

	err = g.Wait()
	log.Info().Uint64("virtual_ms", port.NowMicros()/1000).Uint32("songs", obs.Played()).Msg("simulation finished")
	return err
}

// logStorage reports rotation persistence failures; the firmware itself
// carries on without storage.
func logStorage(dev *firmware.Device) {
	if n := dev.Rotation.Failures(); n > 0 {
		log.Warn().Err(dev.Rotation.LastErr()).Uint32("failures", n).Msg("rotation storage")
	}
}

// loop steps the device until the virtual duration is reached or ctx ends.
func loop(ctx context.Context, dev *firmware.Device, port *platform.FakePort) error {
	endUs := uint64(duration / time.Microsecond)
	wallStart := time.Now()
	virtStart := port.NowMicros()
	for i := 0; ; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			if realtime {
				virt := time.Duration(port.NowMicros()-virtStart) * time.Microsecond
				if ahead := virt - time.Since(wallStart); ahead > 0 {
					time.Sleep(ahead)
				}
			}
		}
		if endUs > 0 && port.NowMicros() >= endUs {
			return nil
		}
		dev.Step()
	}
}
