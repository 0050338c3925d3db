package game

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leterax/go-lights/pkg/camera"
	"github.com/leterax/go-lights/pkg/input"
	"github.com/leterax/go-lights/pkg/scene"
)

// assertVec3InDelta compares component-wise with an absolute tolerance, which
// stays meaningful next to zero components.
func assertVec3InDelta(t *testing.T, want, got mgl32.Vec3, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}

type fakeWindow struct {
	keys        map[input.Key]bool
	now         float64
	step        float64
	shouldClose bool

	handler   input.Handler
	viewports [][2]int
	wireframe []bool
	captured  []bool

	swaps  int
	polls  int
	closed int

	// onPoll runs at the end of every PollEvents, after the clock advanced
	onPoll func(w *fakeWindow)
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{keys: make(map[input.Key]bool), step: 1.0 / 60}
}

func (w *fakeWindow) KeyPressed(key input.Key) bool   { return w.keys[key] }
func (w *fakeWindow) Time() float64                   { return w.now }
func (w *fakeWindow) ShouldClose() bool               { return w.shouldClose }
func (w *fakeWindow) SetEventHandler(h input.Handler) { w.handler = h }
func (w *fakeWindow) SetViewport(width, height int) {
	w.viewports = append(w.viewports, [2]int{width, height})
}
func (w *fakeWindow) SetWireframe(enabled bool)      { w.wireframe = append(w.wireframe, enabled) }
func (w *fakeWindow) SetMouseCaptured(captured bool) { w.captured = append(w.captured, captured) }
func (w *fakeWindow) SwapBuffers()                   { w.swaps++ }
func (w *fakeWindow) Close()                         { w.closed++ }

func (w *fakeWindow) PollEvents() {
	w.polls++
	w.now += w.step
	if w.onPoll != nil {
		w.onPoll(w)
	}
}

// stopAfter presses Escape once n polls have happened.
func (w *fakeWindow) stopAfter(n int) {
	w.onPoll = func(w *fakeWindow) {
		if w.polls >= n {
			w.keys[input.KeyEscape] = true
		}
	}
}

type fakeRenderer struct {
	frames   []scene.Frame
	released int
	panicOn  int
}

func (r *fakeRenderer) RenderFrame(f scene.Frame) {
	r.frames = append(r.frames, f)
	if r.panicOn > 0 && len(r.frames) == r.panicOn {
		panic("gpu on fire")
	}
}

func (r *fakeRenderer) Release() { r.released++ }

func openerFor(w *fakeWindow, calls *int) Opener {
	return func(cfg Config) (Platform, error) {
		*calls++
		return w, nil
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.CameraPosition = mgl32.Vec3{}
	return cfg
}

func initGame(t *testing.T, cfg Config) (*Game, *fakeWindow) {
	t.Helper()
	w := newFakeWindow()
	calls := 0
	g := New(zap.NewNop())
	require.NoError(t, g.Init(cfg, openerFor(w, &calls)))
	return g, w
}

func TestInit(t *testing.T) {
	g, w := initGame(t, testConfig())

	assert.True(t, g.Running())
	assert.Equal(t, input.Handler(g), w.handler)
	assert.Equal(t, [][2]int{{800, 600}}, w.viewports)
	assert.Equal(t, []bool{true}, w.captured)

	width, height := g.Size()
	assert.Equal(t, 800, width)
	assert.Equal(t, 600, height)
}

func TestInit_RejectsSecondInit(t *testing.T) {
	w := newFakeWindow()
	calls := 0
	g := New(zap.NewNop())
	require.NoError(t, g.Init(testConfig(), openerFor(w, &calls)))
	cam := g.Camera()

	other := testConfig()
	other.Width, other.Height = 1024, 768
	err := g.Init(other, openerFor(newFakeWindow(), &calls))

	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Equal(t, 1, calls, "no second window is opened")
	assert.Same(t, cam, g.Camera())
	width, height := g.Size()
	assert.Equal(t, 800, width)
	assert.Equal(t, 600, height)
}

func TestInit_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Height = 0
	calls := 0

	err := New(zap.NewNop()).Init(cfg, openerFor(newFakeWindow(), &calls))

	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Zero(t, calls)
}

func TestInit_OpenerFailure(t *testing.T) {
	boom := errors.New("no display")
	g := New(zap.NewNop())

	err := g.Init(testConfig(), func(Config) (Platform, error) { return nil, boom })

	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, g.Run(&fakeRenderer{}), ErrNotInitialized)
}

func TestRun_NotInitialized(t *testing.T) {
	assert.ErrorIs(t, New(zap.NewNop()).Run(&fakeRenderer{}), ErrNotInitialized)
}

func TestRun_EscapeStopsAndTearsDown(t *testing.T) {
	g, w := initGame(t, testConfig())
	w.stopAfter(3)
	r := &fakeRenderer{}

	require.NoError(t, g.Run(r))

	assert.Len(t, r.frames, 4, "the frame that sees Escape is still drawn")
	assert.Equal(t, 4, w.swaps)
	assert.Equal(t, 1, r.released)
	assert.Equal(t, 1, w.closed)
	assert.False(t, g.Running())
}

func TestRun_WindowCloseStops(t *testing.T) {
	g, w := initGame(t, testConfig())
	w.onPoll = func(w *fakeWindow) { w.shouldClose = true }
	r := &fakeRenderer{}

	require.NoError(t, g.Run(r))

	assert.Len(t, r.frames, 2)
	assert.Equal(t, 1, w.closed)
}

func TestRun_TeardownOnPanic(t *testing.T) {
	g, w := initGame(t, testConfig())
	r := &fakeRenderer{panicOn: 2}

	assert.Panics(t, func() { _ = g.Run(r) })

	assert.Equal(t, 1, r.released)
	assert.Equal(t, 1, w.closed)

	// a torn down game can be initialized again
	calls := 0
	assert.NoError(t, g.Init(testConfig(), openerFor(newFakeWindow(), &calls)))
}

func TestShutdown_Idempotent(t *testing.T) {
	g, w := initGame(t, testConfig())

	g.Shutdown()
	g.Shutdown()

	assert.Equal(t, 1, w.closed)
}

func TestRun_DeltaTime(t *testing.T) {
	tests := []struct {
		name  string
		max   float32
		step  float64
		delta float32
	}{
		{"normal frame", 0.25, 0.016, 0.016},
		{"stall is clamped", 0.25, 5, 0.25},
		{"clamp disabled", 0, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.MaxDeltaTime = tt.max
			g, w := initGame(t, cfg)
			w.step = tt.step
			w.now = 100
			w.stopAfter(2)

			require.NoError(t, g.Run(&fakeRenderer{}))

			assert.InDelta(t, tt.delta, g.DeltaTime(), 1e-6)
		})
	}
}

func TestProcessInput_MoveForward(t *testing.T) {
	g, w := initGame(t, testConfig())
	w.keys[input.KeyW] = true
	g.deltaTime = 1

	g.processInput()

	assertVec3InDelta(t, mgl32.Vec3{0, 0, -2.5}, g.Camera().Position(), 1e-5, "position %v", g.Camera().Position())
}

func TestProcessInput_HeldKeyRepeats(t *testing.T) {
	g, w := initGame(t, testConfig())
	w.keys[input.KeyD] = true
	g.deltaTime = 0.5

	g.processInput()
	g.processInput()
	g.processInput()

	assertVec3InDelta(t, mgl32.Vec3{3.75, 0, 0}, g.Camera().Position(), 1e-5, "position %v", g.Camera().Position())
}

func TestProcessInput_Wireframe(t *testing.T) {
	g, w := initGame(t, testConfig())

	w.keys[input.KeyR] = true
	g.processInput()
	g.processInput()
	assert.True(t, g.Wireframe())

	w.keys[input.KeyR] = false
	w.keys[input.KeyT] = true
	g.processInput()
	assert.False(t, g.Wireframe())

	assert.Equal(t, []bool{true, false}, w.wireframe, "the GPU is only told about changes")
}

func TestProcessInput_CaptureToggleOnEdge(t *testing.T) {
	g, w := initGame(t, testConfig())
	g.OnCursorMove(10, 10)

	w.keys[input.KeyC] = true
	g.processInput()
	g.processInput()
	w.keys[input.KeyC] = false
	g.processInput()

	assert.Equal(t, []bool{true, false}, w.captured)

	// released mouse does not steer the camera
	yaw, pitch := g.Camera().Orientation()
	g.OnCursorMove(500, 500)
	g.OnCursorMove(900, 100)
	yaw2, pitch2 := g.Camera().Orientation()
	assert.Equal(t, yaw, yaw2)
	assert.Equal(t, pitch, pitch2)

	w.keys[input.KeyC] = true
	g.processInput()
	assert.Equal(t, []bool{true, false, true}, w.captured)
}

func TestOnFramebufferResize_LeavesCameraAlone(t *testing.T) {
	g, w := initGame(t, testConfig())
	g.Camera().ProcessMouse(40, 20)
	pos := g.Camera().Position()
	yaw, pitch := g.Camera().Orientation()

	w.handler.OnFramebufferResize(400, 300)

	width, height := g.Size()
	assert.Equal(t, 400, width)
	assert.Equal(t, 300, height)
	assert.Equal(t, [2]int{400, 300}, w.viewports[len(w.viewports)-1])

	assert.Equal(t, pos, g.Camera().Position())
	yaw2, pitch2 := g.Camera().Orientation()
	assert.Equal(t, yaw, yaw2)
	assert.Equal(t, pitch, pitch2)

	assert.Equal(t, g.Camera().PerspectiveProjection(400, 300), g.Frame().Projection)
}

func TestOnCursorMove_FirstEventIsSuppressed(t *testing.T) {
	for _, pos := range [][2]float64{{0, 0}, {400, 300}, {1e5, -1e5}} {
		g, w := initGame(t, testConfig())

		w.handler.OnCursorMove(pos[0], pos[1])

		yaw, pitch := g.Camera().Orientation()
		assert.Equal(t, float32(camera.DefaultYaw), yaw)
		assert.Equal(t, float32(camera.DefaultPitch), pitch)
	}
}

func TestOnCursorMove_Rotates(t *testing.T) {
	g, w := initGame(t, testConfig())

	w.handler.OnCursorMove(100, 100)
	w.handler.OnCursorMove(150, 80)

	yaw, pitch := g.Camera().Orientation()
	assert.InDelta(t, camera.DefaultYaw+5, yaw, 1e-4)
	assert.InDelta(t, 2, pitch, 1e-4)
}

func TestOnScroll(t *testing.T) {
	g, w := initGame(t, testConfig())

	w.handler.OnScroll(3, -5)

	assert.Equal(t, float32(40), g.Camera().Zoom())
}

func TestRun_SkipsDrawingWhenMinimized(t *testing.T) {
	g, w := initGame(t, testConfig())
	w.handler.OnFramebufferResize(0, 0)
	w.stopAfter(2)
	r := &fakeRenderer{}

	require.NoError(t, g.Run(r))

	assert.Empty(t, r.frames)
	assert.Equal(t, 3, w.swaps)
}

func TestRun_FrameFollowsCamera(t *testing.T) {
	g, w := initGame(t, testConfig())
	w.keys[input.KeyW] = true
	w.step = 0.1
	w.stopAfter(1)
	r := &fakeRenderer{}

	require.NoError(t, g.Run(r))

	require.Len(t, r.frames, 2)
	last := r.frames[1]
	assert.Equal(t, g.Camera().Position(), last.ViewerPosition)
	assert.Equal(t, g.Camera().ViewMatrix(), last.View)
	assert.Less(t, last.ViewerPosition.Z(), r.frames[0].ViewerPosition.Z()+1e-6)
}
