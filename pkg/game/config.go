package game

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-lights/pkg/camera"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("game: invalid config")

// Config is everything needed to start the demo.
type Config struct {
	Width  int
	Height int
	Title  string
	VSync  bool

	// MaxDeltaTime caps the frame delta in seconds so a stall (debugger,
	// window drag) does not teleport the camera. Zero disables the cap.
	MaxDeltaTime float32

	CameraPosition mgl32.Vec3
	MoveSpeed      float32
	Sensitivity    float32
}

// DefaultConfig returns an 800x600 window with the default camera.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		Title:          "Go-Lights",
		VSync:          true,
		MaxDeltaTime:   0.25,
		CameraPosition: mgl32.Vec3{0, 0, 3},
		MoveSpeed:      camera.DefaultMoveSpeed,
		Sensitivity:    camera.DefaultSensitivity,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Title == "":
		return fmt.Errorf("%w: empty window title", ErrInvalidConfig)
	case c.MaxDeltaTime < 0:
		return fmt.Errorf("%w: negative max delta time %v", ErrInvalidConfig, c.MaxDeltaTime)
	case c.MoveSpeed < 0:
		return fmt.Errorf("%w: negative move speed %v", ErrInvalidConfig, c.MoveSpeed)
	case c.Sensitivity <= 0:
		return fmt.Errorf("%w: sensitivity must be positive, got %v", ErrInvalidConfig, c.Sensitivity)
	}
	return nil
}
