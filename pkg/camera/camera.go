// Package camera implements a first-person free-fly camera driven by
// yaw/pitch angles.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera implements a 3D camera for navigation
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles, in degrees
	yaw   float32
	pitch float32

	// Camera options
	zoom        float32
	moveSpeed   float32
	sensitivity float32
}

// New creates a camera at position facing -Z with default options
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0},
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		zoom:        DefaultZoom,
		moveSpeed:   DefaultMoveSpeed,
		sensitivity: DefaultSensitivity,
	}
	c.updateCameraVectors()
	return c
}

// updateCameraVectors recalculates the basis from the Euler angles
func (c *Camera) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()

	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// Move translates the camera along its basis, scaled by speed and deltaTime.
func (c *Camera) Move(direction Direction, deltaTime float32) {
	velocity := c.moveSpeed * deltaTime

	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	case Up:
		c.position = c.position.Add(c.worldUp.Mul(velocity))
	case Down:
		c.position = c.position.Sub(c.worldUp.Mul(velocity))
	}
}

// ProcessMouse turns raw pixel offsets into yaw/pitch changes.
func (c *Camera) ProcessMouse(offsetX, offsetY float32) {
	c.yaw += offsetX * c.sensitivity
	c.pitch = clampPitch(c.pitch + offsetY*c.sensitivity)

	c.updateCameraVectors()
}

// ProcessScroll adjusts the field of view by offsetY degrees.
func (c *Camera) ProcessScroll(offsetY float32) {
	c.zoom = mgl32.Clamp(c.zoom+offsetY, MinZoom, MaxZoom)
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// PerspectiveProjection returns a perspective projection for a viewport of
// the given size. A non-positive height is treated as 1.
func (c *Camera) PerspectiveProjection(width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, NearPlane, FarPlane)
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetRotation sets the camera rotation angles
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clampPitch(pitch)

	c.updateCameraVectors()
}

// LookAt makes the camera look at a specific point
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()

	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.pitch = clampPitch(mgl32.RadToDeg(float32(math.Asin(float64(direction.Y())))))

	c.updateCameraVectors()
}

// Zoom returns the field of view in degrees
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// Front returns the camera's front direction vector
func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

// Right returns the camera's right direction vector
func (c *Camera) Right() mgl32.Vec3 {
	return c.right
}

// Up returns the camera's up direction vector
func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// SetMoveSpeed sets the movement speed in world units per second
func (c *Camera) SetMoveSpeed(speed float32) {
	c.moveSpeed = speed
}

// SetSensitivity sets the degrees of rotation per pixel of mouse movement
func (c *Camera) SetSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}

// Pitch stays strictly inside (MinPitch, MaxPitch); at exactly ±90 the
// front vector would be parallel to world up.
var (
	pitchCeiling = math.Nextafter32(MaxPitch, 0)
	pitchFloor   = math.Nextafter32(MinPitch, 0)
)

func clampPitch(pitch float32) float32 {
	if pitch > pitchCeiling {
		return pitchCeiling
	}
	if pitch < pitchFloor {
		return pitchFloor
	}
	return pitch
}
