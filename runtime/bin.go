package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/quadrated/hotlib"
	"github.com/quadrated/hotlib/game"
	"github.com/quadrated/hotlib/timer"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "Runtime"
	app.Usage = "hot-reloading game host"
	app.Description = "game host which polls a module artifact once per tick and swaps it in without restarting"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}},
		&cli.StringFlag{Name: "dir", Value: "target", Usage: "module artifact directory"},
		&cli.StringFlag{Name: "name", Value: "game", Usage: "logical module name"},
		&cli.IntFlag{Name: "fps", Value: 60, Usage: "ticks per second"},
		&cli.Uint64Flag{Name: "frames", Usage: "stop after this many frames, 0 runs forever"},
		&cli.IntFlag{Name: "samples", Value: 512, Usage: "audio samples requested per frame"},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func run(ctx *cli.Context) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if ctx.Bool("debug") {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	lib, err := hotlib.Open(ctx.String("dir"), ctx.String("name"), hotlib.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("cannot start without an initial module: %w", err)
	}
	defer func() { _ = lib.Close() }()

	g := game.Interface{Lib: lib}
	state := game.NewState()
	samples := make([]float32, ctx.Int("samples"))

	var input game.Input
	input.DoReinitGamestate = true
	input.DoReinitDrawstate = true
	input.HotreloadHappened = true

	startup := timer.New()
	delta := timer.New()
	tick := time.NewTicker(time.Second / time.Duration(ctx.Int("fps")))
	defer tick.Stop()

	maxFrames := ctx.Uint64("frames")
	logger.Info().Msg("entering main loop")
	for frame := uint64(0); maxFrames == 0 || frame < maxFrames; frame++ {
		if lib.NeedsReload() && lib.Reload() {
			input.HotreloadHappened = true
		}

		input.TimeSinceStartup = startup.Elapsed()
		input.TimeDelta = float32(delta.Elapsed())
		delta.Reset()

		update := timer.New()
		g.UpdateAndDraw(&input, state)
		input.TimeUpdate = float32(update.Elapsed())

		g.ProcessAudio(&input, state, samples)

		input.ClearButtonTransitions()
		input.ClearFlags()
		<-tick.C
	}
	return nil
}
