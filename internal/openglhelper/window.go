package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/leterax/go-lights/pkg/input"
)

// keyToGlfw maps the keys the demo polls to GLFW key codes
var keyToGlfw = map[input.Key]glfw.Key{
	input.KeyW:         glfw.KeyW,
	input.KeyA:         glfw.KeyA,
	input.KeyS:         glfw.KeyS,
	input.KeyD:         glfw.KeyD,
	input.KeyR:         glfw.KeyR,
	input.KeyT:         glfw.KeyT,
	input.KeyC:         glfw.KeyC,
	input.KeySpace:     glfw.KeySpace,
	input.KeyLeftShift: glfw.KeyLeftShift,
	input.KeyEscape:    glfw.KeyEscape,
}

// WindowConfig describes the window to open
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	log        *zap.Logger
	closed     bool
}

// NewWindow creates a new GLFW window with an OpenGL 4.6 core context and
// makes the context current on the calling thread.
func NewWindow(cfg WindowConfig, logger *zap.Logger) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	glfwWindow, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfwWindow.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL context created",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return &Window{glfwWindow: glfwWindow, log: logger}, nil
}

// KeyPressed reports whether key is currently held down. Keys without a
// GLFW mapping are never pressed.
func (w *Window) KeyPressed(key input.Key) bool {
	glfwKey, ok := keyToGlfw[key]
	if !ok {
		return false
	}
	return w.glfwWindow.GetKey(glfwKey) == glfw.Press
}

// Time returns seconds since GLFW was initialized
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SetEventHandler routes framebuffer, cursor and scroll callbacks to h.
// Callbacks fire from PollEvents on the calling thread.
func (w *Window) SetEventHandler(h input.Handler) {
	w.glfwWindow.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		h.OnFramebufferResize(width, height)
	})
	w.glfwWindow.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		h.OnCursorMove(x, y)
	})
	w.glfwWindow.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		h.OnScroll(xoff, yoff)
	})
}

// SetViewport maps normalized device coordinates to the framebuffer
func (w *Window) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetWireframe switches between line and fill polygon mode
func (w *Window) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// SetMouseCaptured captures or releases the mouse cursor
func (w *Window) SetMouseCaptured(captured bool) {
	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Close destroys the window and terminates GLFW. Calling it again is a no-op.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.glfwWindow.Destroy()
	glfw.Terminate()
	w.log.Debug("Window closed")
}
