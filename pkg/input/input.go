// Package input holds backend-independent key identifiers and the small
// amount of state needed to turn raw window events into camera input.
package input

// Key identifies a keyboard key independently of the windowing backend.
type Key int

// Keys used by the demo
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyR
	KeyT
	KeyC
	KeySpace
	KeyLeftShift
	KeyEscape
)

// Handler receives the asynchronous window events. Windowing backends only
// invoke it from their event poll, never concurrently with drawing.
type Handler interface {
	OnFramebufferResize(width, height int)
	OnCursorMove(x, y float64)
	OnScroll(offsetX, offsetY float64)
}

// MouseTracker converts absolute cursor positions into per-event offsets.
// The zero value is ready to use and suppresses the first event.
type MouseTracker struct {
	lastX  float64
	lastY  float64
	seeded bool
}

// Offset returns the movement since the previous event. The y offset is
// reversed since window coordinates grow downwards. The first event after
// construction or Reset only records the position and reports ok=false.
func (m *MouseTracker) Offset(x, y float64) (dx, dy float32, ok bool) {
	if !m.seeded {
		m.lastX = x
		m.lastY = y
		m.seeded = true
		return 0, 0, false
	}

	dx = float32(x - m.lastX)
	dy = float32(m.lastY - y)

	m.lastX = x
	m.lastY = y

	return dx, dy, true
}

// Reset makes the next event a seeding event again
func (m *MouseTracker) Reset() {
	m.seeded = false
}

// Edge detects press edges of a level-triggered key.
type Edge struct {
	down bool
}

// Pressed reports whether the key went from released to pressed since the
// previous call.
func (e *Edge) Pressed(down bool) bool {
	pressed := down && !e.down
	e.down = down
	return pressed
}
