package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
)

var (
	widthFlag         = flag.Int("width", config.WindowWidth, "Initial window width.")
	heightFlag        = flag.Int("height", config.WindowHeight, "Initial window height.")
	particlesFlag     = flag.Int("particles", config.ParticleAmount, "Number of particles per (re)initialization.")
	linkRadiusFlag    = flag.Float64("link-radius", config.LinkRadius, "Max distance in pixels at which particles are linked.")
	particleColorFlag = flag.String("particle-color", "rgba(255,255,255,0.6)", "Particle fill colour: rgba(), rgb() or #rrggbb.")
	lineColorFlag     = flag.String("line-color", "rgba(0,181,255,0.2)", "Link colour; its alpha scales every link.")
	opacityFlag       = flag.Float64("opacity", config.CanvasOpacity, "Opacity of the particle layer over the background.")
	trackFlag         = flag.String("track", "", "Optional wav/mp3/flac file to loop in the background.")
	seedFlag          = flag.Uint64("seed", 0, "Random seed for particle placement; 0 uses the clock.")
	debugFlag         = flag.Bool("debug", false, "Write log output to stderr.")
)

func main() {
	flag.Parse()
	setupLogging(*debugFlag)

	settings, err := settingsFromFlags()
	if err != nil {
		fatal(err)
	}

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g, err := game.New(settings)
	if err != nil {
		fatal(err)
	}

	if *trackFlag != "" {
		// failures stay on the status line; the animation runs without sound
		if err := g.LoadTrack(*trackFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Soundtrack disabled: %v\n", err)
		}
	}

	err = ebiten.RunGame(g)
	// fatal exits without running deferred calls
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

func settingsFromFlags() (game.Settings, error) {
	opts := config.Default()
	opts.ParticleAmount = *particlesFlag
	opts.LinkRadius = *linkRadiusFlag

	var err error
	if opts.ParticleColor, err = config.ParseColor(*particleColorFlag); err != nil {
		return game.Settings{}, errors.Wrap(err, "-particle-color")
	}
	if opts.LineColor, err = config.ParseColor(*lineColorFlag); err != nil {
		return game.Settings{}, errors.Wrap(err, "-line-color")
	}
	if err := opts.Validate(); err != nil {
		return game.Settings{}, err
	}
	if *widthFlag <= 0 || *heightFlag <= 0 {
		return game.Settings{}, errors.Errorf("window size must be positive, got %dx%d", *widthFlag, *heightFlag)
	}

	return game.Settings{
		Field:   opts,
		Opacity: *opacityFlag,
		Width:   *widthFlag,
		Height:  *heightFlag,
		Seed:    *seedFlag,
	}, nil
}

// setupLogging sends log output to stderr only in debug mode.
func setupLogging(debug bool) {
	if !debug {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
}

func fatal(err error) {
	log.Printf("fatal: %+v", err)
	fmt.Fprintf(os.Stderr, "particle-field: %v\n", err)
	_ = zenity.Error(err.Error(), zenity.Title("Particle Field"), zenity.ErrorIcon)
	os.Exit(1)
}
