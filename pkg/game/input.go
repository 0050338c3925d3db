package game

import (
	"go.uber.org/zap"

	"github.com/leterax/go-lights/pkg/camera"
	"github.com/leterax/go-lights/pkg/input"
)

// movementKeys maps held keys to camera movement.
var movementKeys = []struct {
	key       input.Key
	direction camera.Direction
}{
	{input.KeyW, camera.Forward},
	{input.KeyS, camera.Backward},
	{input.KeyA, camera.Left},
	{input.KeyD, camera.Right},
	{input.KeySpace, camera.Up},
	{input.KeyLeftShift, camera.Down},
}

// processInput polls the keyboard. Keys are level-triggered: a held key
// repeats its effect every frame.
func (g *Game) processInput() {
	if g.window.KeyPressed(input.KeyEscape) || g.window.ShouldClose() {
		g.running = false
	}

	if g.window.KeyPressed(input.KeyR) {
		g.setWireframe(true)
	}
	if g.window.KeyPressed(input.KeyT) {
		g.setWireframe(false)
	}

	if g.captureKey.Pressed(g.window.KeyPressed(input.KeyC)) {
		g.setMouseCaptured(!g.mouseCaptured)
	}

	for _, m := range movementKeys {
		if g.window.KeyPressed(m.key) {
			g.camera.Move(m.direction, g.deltaTime)
		}
	}
}

func (g *Game) setWireframe(enabled bool) {
	if g.wireframe == enabled {
		return
	}
	g.wireframe = enabled
	g.window.SetWireframe(enabled)
	g.log.Debug("Polygon mode changed", zap.Bool("wireframe", enabled))
}

func (g *Game) setMouseCaptured(captured bool) {
	g.mouseCaptured = captured
	g.window.SetMouseCaptured(captured)
	// the cursor jumps when capture changes
	g.mouse.Reset()
}

// OnFramebufferResize stores the new size and updates the viewport. The
// camera picks the aspect ratio up from the stored size on the next frame.
func (g *Game) OnFramebufferResize(width, height int) {
	g.width = width
	g.height = height
	g.window.SetViewport(width, height)
}

// OnCursorMove turns cursor positions into camera rotation while the mouse
// is captured.
func (g *Game) OnCursorMove(x, y float64) {
	if !g.mouseCaptured {
		return
	}
	dx, dy, ok := g.mouse.Offset(x, y)
	if !ok {
		return
	}
	g.camera.ProcessMouse(dx, dy)
}

// OnScroll zooms the camera with the vertical scroll offset.
func (g *Game) OnScroll(_, offsetY float64) {
	g.camera.ProcessScroll(float32(offsetY))
}
