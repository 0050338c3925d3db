package render

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Device is the global GL state touched by the frame sequence.
type Device struct {
	ClearColor mgl32.Vec4
}

// Clear clears the color and depth buffers
func (d *Device) Clear() {
	c := d.ClearColor
	gl.ClearColor(c.X(), c.Y(), c.Z(), c.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SkyboxDepth lets fragments at the far plane pass the depth test so the
// skybox fills only what is left.
func (d *Device) SkyboxDepth(enabled bool) {
	if enabled {
		gl.DepthFunc(gl.LEQUAL)
	} else {
		gl.DepthFunc(gl.LESS)
	}
}
