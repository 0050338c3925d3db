package camera

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertVec3InDelta compares component-wise with an absolute tolerance, which
// stays meaningful next to zero components.
func assertVec3InDelta(t *testing.T, want, got mgl32.Vec3, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}

func assertMat4InDelta(t *testing.T, want, got mgl32.Mat4, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}

const eps = 1e-4

func TestNew_FacesNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{})

	yaw, pitch := c.Orientation()
	assert.Equal(t, float32(DefaultYaw), yaw)
	assert.Equal(t, float32(DefaultPitch), pitch)
	assertVec3InDelta(t, mgl32.Vec3{0, 0, -1}, c.Front(), eps, "front %v", c.Front())
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, c.Right(), eps, "right %v", c.Right())
	assertVec3InDelta(t, mgl32.Vec3{0, 1, 0}, c.Up(), eps, "up %v", c.Up())
	assert.Equal(t, float32(DefaultZoom), c.Zoom())
}

func TestMove_ForwardFromOrigin(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.Move(Forward, 1.0)

	assertVec3InDelta(t, mgl32.Vec3{0, 0, -2.5}, c.Position(), eps, "position %v", c.Position())
}

func TestMove_AllDirections(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, -1}},
		{Backward, mgl32.Vec3{0, 0, 1}},
		{Left, mgl32.Vec3{-1, 0, 0}},
		{Right, mgl32.Vec3{1, 0, 0}},
		{Up, mgl32.Vec3{0, 1, 0}},
		{Down, mgl32.Vec3{0, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			c := New(mgl32.Vec3{})
			c.SetMoveSpeed(2)
			c.Move(tt.dir, 0.5)
			assertVec3InDelta(t, tt.want, c.Position(), eps, "position %v", c.Position())
		})
	}
}

func TestMove_DoesNotRotate(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3})
	c.ProcessMouse(123, -45)
	front := c.Front()

	c.Move(Left, 10)
	c.Move(Forward, 3)

	assert.Equal(t, front, c.Front())
}

func TestProcessMouse_PitchStaysClamped(t *testing.T) {
	c := New(mgl32.Vec3{})
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		c.ProcessMouse(rng.Float32()*400-200, rng.Float32()*4000-2000)
		_, pitch := c.Orientation()
		require.Less(t, pitch, float32(MaxPitch))
		require.Greater(t, pitch, float32(MinPitch))
	}

	c.ProcessMouse(0, 1e6)
	_, pitch := c.Orientation()
	assert.Less(t, pitch, float32(MaxPitch))
	assert.InDelta(t, MaxPitch, pitch, 1e-4)

	c.ProcessMouse(0, -1e6)
	_, pitch = c.Orientation()
	assert.Greater(t, pitch, float32(MinPitch))
	assert.InDelta(t, MinPitch, pitch, 1e-4)
}

func TestProcessMouse_YawIsPeriodic(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.ProcessMouse(0, 150)
	front, right, up := c.Front(), c.Right(), c.Up()

	// 360 degrees of yaw in ten steps
	for i := 0; i < 10; i++ {
		c.ProcessMouse(36/DefaultSensitivity, 0)
	}

	yaw, _ := c.Orientation()
	assert.InDelta(t, DefaultYaw+360, yaw, 1e-2)
	assertVec3InDelta(t, front, c.Front(), 1e-3, "front %v != %v", c.Front(), front)
	assertVec3InDelta(t, right, c.Right(), 1e-3, "right %v != %v", c.Right(), right)
	assertVec3InDelta(t, up, c.Up(), 1e-3, "up %v != %v", c.Up(), up)
}

func TestProcessMouse_BasisIsOrthonormal(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.ProcessMouse(317, 211)

	assert.InDelta(t, 1, c.Front().Len(), eps)
	assert.InDelta(t, 1, c.Right().Len(), eps)
	assert.InDelta(t, 1, c.Up().Len(), eps)
	assert.InDelta(t, 0, c.Front().Dot(c.Right()), eps)
	assert.InDelta(t, 0, c.Front().Dot(c.Up()), eps)
	assert.InDelta(t, 0, c.Right().Dot(c.Up()), eps)
}

func TestProcessScroll(t *testing.T) {
	c := New(mgl32.Vec3{})

	c.ProcessScroll(-5)
	assert.Equal(t, float32(40), c.Zoom())

	c.ProcessScroll(-100)
	assert.Equal(t, float32(MinZoom), c.Zoom())

	c.ProcessScroll(100)
	assert.Equal(t, float32(MaxZoom), c.Zoom())
}

func TestProcessScroll_StaysInRange(t *testing.T) {
	c := New(mgl32.Vec3{})
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 1000; i++ {
		c.ProcessScroll(rng.Float32()*20 - 10)
		require.GreaterOrEqual(t, c.Zoom(), float32(MinZoom))
		require.LessOrEqual(t, c.Zoom(), float32(MaxZoom))
	}
}

func TestViewMatrix_InverseIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		c := New(mgl32.Vec3{rng.Float32()*100 - 50, rng.Float32()*100 - 50, rng.Float32()*100 - 50})
		c.ProcessMouse(rng.Float32()*2000-1000, rng.Float32()*2000-1000)

		view := c.ViewMatrix()
		product := view.Mul4(view.Inv())
		assertMat4InDelta(t, mgl32.Ident4(), product, 1e-3, "view*inv(view) = %v", product)
	}
}

func TestViewMatrix_MapsPositionToOrigin(t *testing.T) {
	c := New(mgl32.Vec3{4, -2, 9})
	c.ProcessMouse(80, 30)

	p := c.ViewMatrix().Mul4x1(c.Position().Vec4(1))
	assertVec3InDelta(t, mgl32.Vec3{}, p.Vec3(), 1e-3, "got %v", p)

	ahead := c.ViewMatrix().Mul4x1(c.Position().Add(c.Front()).Vec4(1))
	assertVec3InDelta(t, mgl32.Vec3{0, 0, -1}, ahead.Vec3(), 1e-3, "got %v", ahead)
}

func TestPerspectiveProjection(t *testing.T) {
	c := New(mgl32.Vec3{})

	want := mgl32.Perspective(mgl32.DegToRad(DefaultZoom), 800.0/600.0, NearPlane, FarPlane)
	assert.Equal(t, want, c.PerspectiveProjection(800, 600))

	c.ProcessScroll(-15)
	want = mgl32.Perspective(mgl32.DegToRad(30), 2, NearPlane, FarPlane)
	assert.Equal(t, want, c.PerspectiveProjection(400, 200))
}

func TestPerspectiveProjection_ZeroHeight(t *testing.T) {
	c := New(mgl32.Vec3{})
	m := c.PerspectiveProjection(640, 0)

	for i, v := range m {
		assert.False(t, mgl32.Abs(v) > 1e30 || v != v, "element %d is degenerate: %v", i, v)
	}
}

func TestLookAt(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 5})
	c.LookAt(mgl32.Vec3{5, 0, 5})

	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, c.Front(), eps, "front %v", c.Front())

	before := c.Front()
	c.LookAt(c.Position())
	assert.Equal(t, before, c.Front())
}

func TestSetRotation_ClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.SetRotation(10, 120)

	yaw, pitch := c.Orientation()
	assert.Equal(t, float32(10), yaw)
	assert.Less(t, pitch, float32(MaxPitch))
	assert.InDelta(t, MaxPitch, pitch, 1e-4)

	c.SetRotation(10, -89)
	_, pitch = c.Orientation()
	assert.Greater(t, pitch, float32(MinPitch))
}
