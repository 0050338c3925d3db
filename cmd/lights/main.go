package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/leterax/go-lights/internal/openglhelper"
	"github.com/leterax/go-lights/pkg/game"
	"github.com/leterax/go-lights/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	defaults := game.DefaultConfig()

	width := flag.Int("width", defaults.Width, "Window width")
	height := flag.Int("height", defaults.Height, "Window height")
	title := flag.String("title", defaults.Title, "Window title")
	assets := flag.String("assets", "assets", "Directory with shaders, textures and models")
	vsync := flag.Bool("vsync", defaults.VSync, "Wait for vertical sync")
	maxDelta := flag.Float64("max-dt", float64(defaults.MaxDeltaTime), "Frame delta cap in seconds, 0 disables")
	debug := flag.Bool("debug", false, "Development logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	cfg := defaults
	cfg.Width = *width
	cfg.Height = *height
	cfg.Title = *title
	cfg.VSync = *vsync
	cfg.MaxDeltaTime = float32(*maxDelta)

	if err := run(cfg, *assets, logger); err != nil {
		logger.Error("Exiting", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg game.Config, assets string, logger *zap.Logger) error {
	g := game.New(logger)
	if err := g.Init(cfg, openWindow(logger)); err != nil {
		return err
	}

	demo, err := render.LoadDemo(assets, logger)
	if err != nil {
		g.Shutdown()
		return fmt.Errorf("failed to load demo: %w", err)
	}

	return g.Run(demo)
}

func openWindow(logger *zap.Logger) game.Opener {
	return func(cfg game.Config) (game.Platform, error) {
		return openglhelper.NewWindow(openglhelper.WindowConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			Title:  cfg.Title,
			VSync:  cfg.VSync,
		}, logger.Named("window"))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
