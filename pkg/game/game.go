// Package game owns the run state of the demo: the window, the camera and
// the frame loop that turns input into camera motion and draw calls.
package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/leterax/go-lights/pkg/camera"
	"github.com/leterax/go-lights/pkg/input"
	"github.com/leterax/go-lights/pkg/scene"
)

var (
	// ErrAlreadyInitialized is returned by Init on an initialized Game.
	ErrAlreadyInitialized = errors.New("game: already initialized")
	// ErrNotInitialized is returned by Run before a successful Init.
	ErrNotInitialized = errors.New("game: not initialized")
)

// Platform is the window and graphics context the game runs in.
type Platform interface {
	KeyPressed(key input.Key) bool
	// Time returns seconds since the platform started.
	Time() float64
	ShouldClose() bool
	SetEventHandler(h input.Handler)
	SetViewport(width, height int)
	SetWireframe(enabled bool)
	SetMouseCaptured(captured bool)
	SwapBuffers()
	PollEvents()
	Close()
}

// Opener creates the Platform for a config.
type Opener func(cfg Config) (Platform, error)

// Renderer draws frames and owns GPU resources released at teardown.
type Renderer interface {
	RenderFrame(f scene.Frame)
	Release()
}

// Game is the run state shared by the loop and the window callbacks. All
// of it is touched from the goroutine that calls Run only.
type Game struct {
	log *zap.Logger
	cfg Config

	window   Platform
	renderer Renderer

	width  int
	height int

	lastTime  float64
	deltaTime float32

	initialized bool
	running     bool

	camera *camera.Camera
	mouse  input.MouseTracker

	wireframe     bool
	mouseCaptured bool
	captureKey    input.Edge
}

// New creates an uninitialized game.
func New(logger *zap.Logger) *Game {
	return &Game{log: logger}
}

// Init validates cfg, opens the window and resets the run state. It fails
// with ErrAlreadyInitialized, without touching any state, if the game is
// already initialized.
func (g *Game) Init(cfg Config, open Opener) error {
	if g.initialized {
		g.log.Error("Init called twice")
		return ErrAlreadyInitialized
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	window, err := open(cfg)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	g.cfg = cfg
	g.window = window
	g.renderer = nil
	g.width = cfg.Width
	g.height = cfg.Height
	g.lastTime = 0
	g.deltaTime = 0
	g.wireframe = false
	g.mouse = input.MouseTracker{}
	g.captureKey = input.Edge{}

	g.camera = camera.New(cfg.CameraPosition)
	g.camera.SetMoveSpeed(cfg.MoveSpeed)
	g.camera.SetSensitivity(cfg.Sensitivity)

	window.SetEventHandler(g)
	window.SetViewport(cfg.Width, cfg.Height)
	g.setMouseCaptured(true)

	g.running = true
	g.initialized = true

	g.log.Info("Game initialized",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("title", cfg.Title))

	return nil
}

// Run drives frames until Escape is pressed or the window is closed, then
// tears everything down. Teardown also runs if a frame panics.
func (g *Game) Run(r Renderer) error {
	if !g.initialized {
		return ErrNotInitialized
	}
	g.renderer = r
	defer g.Shutdown()

	g.lastTime = g.window.Time()
	frames := 0

	for g.running {
		g.tick()
		g.processInput()

		if g.width > 0 && g.height > 0 {
			r.RenderFrame(g.Frame())
		}

		g.window.SwapBuffers()
		g.window.PollEvents()
		frames++
	}

	g.log.Info("Render loop stopped", zap.Int("frames", frames))
	return nil
}

// Shutdown releases the renderer and the window. It is safe to call more
// than once and on a game that was never run.
func (g *Game) Shutdown() {
	if !g.initialized {
		return
	}
	g.running = false
	g.initialized = false

	if g.renderer != nil {
		g.renderer.Release()
		g.renderer = nil
	}
	g.window.Close()
	g.window = nil

	g.log.Info("Game shut down")
}

// tick advances the frame clock.
func (g *Game) tick() {
	now := g.window.Time()
	g.deltaTime = float32(now - g.lastTime)
	g.lastTime = now

	if g.cfg.MaxDeltaTime > 0 && g.deltaTime > g.cfg.MaxDeltaTime {
		g.log.Debug("Clamping frame delta", zap.Float32("delta", g.deltaTime))
		g.deltaTime = g.cfg.MaxDeltaTime
	}
}

// Frame returns the camera matrices for the current window size.
func (g *Game) Frame() scene.Frame {
	return scene.Frame{
		Projection:     g.camera.PerspectiveProjection(g.width, g.height),
		View:           g.camera.ViewMatrix(),
		ViewerPosition: g.camera.Position(),
	}
}

// Camera returns the player camera.
func (g *Game) Camera() *camera.Camera {
	return g.camera
}

// Size returns the stored window dimensions.
func (g *Game) Size() (width, height int) {
	return g.width, g.height
}

// DeltaTime returns the duration of the last frame in seconds.
func (g *Game) DeltaTime() float32 {
	return g.deltaTime
}

// Running reports whether the loop keeps going.
func (g *Game) Running() bool {
	return g.running
}

// Wireframe reports whether polygons are drawn as lines.
func (g *Game) Wireframe() bool {
	return g.wireframe
}
