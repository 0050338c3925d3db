// Package scene defines what gets drawn each frame and in which order.
//
// The order is fixed: point light markers, lit opaque objects, loaded
// models, then the skybox. The skybox relies on the depth buffer written
// by everything before it, so it must stay last.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-lights/pkg/lighting"
)

// Uniform names shared with the shader programs.
const (
	UniformTransform         = "transform"
	UniformModel             = "model"
	UniformProjectionMulView = "projection_mul_view"
	UniformNormalMatrix      = "normal_matrix"
	UniformViewerPosition    = "viewer_position"
)

// DefaultMarkerScale is the size of a point light marker relative to a unit cube.
const DefaultMarkerScale = 0.2

// Program is a shader program the scene can bind and feed uniforms to.
type Program interface {
	lighting.Uniforms
	Use()
	SetBool(name string, v bool)
	SetMat3(name string, m mgl32.Mat3)
	SetMat4(name string, m mgl32.Mat4)
}

// Mesh is anything that can issue its own draw call with the bound program.
type Mesh interface {
	Draw(p Program)
}

// Device holds the global GPU state the frame sequence touches.
type Device interface {
	// Clear clears the color and depth buffers.
	Clear()
	// SkyboxDepth switches the depth test to let the skybox pass only where
	// nothing nearer was drawn, and back.
	SkyboxDepth(enabled bool)
}

// Drawable is a lit object with its own model transform.
type Drawable interface {
	Model() mgl32.Mat4
	Draw(p Program)
}

// Pass pairs a program with the mesh drawn through it.
type Pass struct {
	Program Program
	Mesh    Mesh
}

// Frame holds the per-frame camera matrices.
type Frame struct {
	Projection     mgl32.Mat4
	View           mgl32.Mat4
	ViewerPosition mgl32.Vec3
}

// ProjectionView returns projection * view.
func (f Frame) ProjectionView() mgl32.Mat4 {
	return f.Projection.Mul4(f.View)
}

// SkyboxProjectionView returns projection * view with the view translation
// stripped, so the skybox stays centered on the viewer.
func (f Frame) SkyboxProjectionView() mgl32.Mat4 {
	return f.Projection.Mul4(f.View.Mat3().Mat4())
}

// Scene is the fixed list of things drawn every frame.
type Scene struct {
	Device Device
	Lights *lighting.Setup

	Markers     Pass
	MarkerScale float32

	Lit    Program
	Opaque []Drawable
	Models []Drawable

	Skybox Pass
}

// Render draws one frame.
func (s *Scene) Render(f Frame) {
	s.Device.Clear()

	pv := f.ProjectionView()

	s.drawMarkers(pv)
	s.drawLit(f, pv)
	s.drawSkybox(f)
}

func (s *Scene) drawMarkers(pv mgl32.Mat4) {
	if s.Markers.Program == nil || s.Lights == nil {
		return
	}

	scale := s.MarkerScale
	if scale == 0 {
		scale = DefaultMarkerScale
	}

	s.Markers.Program.Use()
	for _, light := range s.Lights.PointLights() {
		model := mgl32.Translate3D(light.Position.Elem()).Mul4(mgl32.Scale3D(scale, scale, scale))
		s.Markers.Program.SetMat4(UniformTransform, pv.Mul4(model))
		s.Markers.Mesh.Draw(s.Markers.Program)
	}
}

func (s *Scene) drawLit(f Frame, pv mgl32.Mat4) {
	if s.Lit == nil {
		return
	}

	s.Lit.Use()
	s.Lit.SetMat4(UniformProjectionMulView, pv)
	s.Lit.SetVec3(UniformViewerPosition, f.ViewerPosition)
	if s.Lights != nil {
		s.Lights.Upload(s.Lit)
	}

	for _, d := range s.Opaque {
		s.drawOne(d)
	}
	for _, d := range s.Models {
		s.drawOne(d)
	}
}

func (s *Scene) drawOne(d Drawable) {
	model := d.Model()
	s.Lit.SetMat4(UniformModel, model)
	s.Lit.SetMat3(UniformNormalMatrix, NormalMatrix(model))
	d.Draw(s.Lit)
}

func (s *Scene) drawSkybox(f Frame) {
	if s.Skybox.Program == nil {
		return
	}

	s.Device.SkyboxDepth(true)
	s.Skybox.Program.Use()
	s.Skybox.Program.SetMat4(UniformProjectionMulView, f.SkyboxProjectionView())
	s.Skybox.Mesh.Draw(s.Skybox.Program)
	s.Device.SkyboxDepth(false)
}
