// Package lighting describes the lights of a scene and uploads them into the
// lighting block of the lit-object shader.
package lighting

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights is the size of the point_lights array in the lit shader.
const MaxPointLights = 4

// ErrTooManyPointLights is returned when a Setup is already full.
var ErrTooManyPointLights = errors.New("lighting: point light capacity exceeded")

// Phong holds the color contributions of a light.
type Phong struct {
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Attenuation holds the distance falloff coefficients of a point light.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// DirectionalLight is a light infinitely far away.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Phong
}

// PointLight is a light at a position with distance attenuation.
type PointLight struct {
	Position mgl32.Vec3
	Attenuation
	Phong
}

// DefaultDirectionalLight returns a dim white light along direction.
func DefaultDirectionalLight(direction mgl32.Vec3) DirectionalLight {
	return DirectionalLight{
		Direction: direction,
		Phong: Phong{
			Ambient:  mgl32.Vec3{0.05, 0.05, 0.05},
			Diffuse:  mgl32.Vec3{0.4, 0.4, 0.4},
			Specular: mgl32.Vec3{0.5, 0.5, 0.5},
		},
	}
}

// DefaultPointLight returns a white light at position with a ~50 unit range.
func DefaultPointLight(position mgl32.Vec3) PointLight {
	return PointLight{
		Position: position,
		Attenuation: Attenuation{
			Constant:  1.0,
			Linear:    0.09,
			Quadratic: 0.032,
		},
		Phong: Phong{
			Ambient:  mgl32.Vec3{0.05, 0.05, 0.05},
			Diffuse:  mgl32.Vec3{0.8, 0.8, 0.8},
			Specular: mgl32.Vec3{1.0, 1.0, 1.0},
		},
	}
}

// Uniforms is the subset of a shader program the lighting block is written to.
type Uniforms interface {
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
}

// Setup is the fixed set of lights drawn each frame.
type Setup struct {
	Directional DirectionalLight

	points [MaxPointLights]PointLight
	count  int
}

// NewSetup creates a Setup with the given directional light and no point lights.
func NewSetup(directional DirectionalLight) *Setup {
	return &Setup{Directional: directional}
}

// AddPointLight appends a point light. It fails once MaxPointLights are set.
func (s *Setup) AddPointLight(light PointLight) error {
	if s.count >= MaxPointLights {
		return fmt.Errorf("%w: limit is %d", ErrTooManyPointLights, MaxPointLights)
	}
	s.points[s.count] = light
	s.count++
	return nil
}

// PointLights returns the active point lights.
func (s *Setup) PointLights() []PointLight {
	return s.points[:s.count]
}

// Upload writes every light into the lighting block of u.
func (s *Setup) Upload(u Uniforms) {
	u.SetVec3("dir_light.direction", s.Directional.Direction)
	u.SetVec3("dir_light.ambient", s.Directional.Ambient)
	u.SetVec3("dir_light.diffuse", s.Directional.Diffuse)
	u.SetVec3("dir_light.specular", s.Directional.Specular)

	u.SetInt("point_light_count", int32(s.count))
	for i, light := range s.PointLights() {
		names := &pointLightNames[i]
		u.SetVec3(names.position, light.Position)
		u.SetFloat(names.constant, light.Constant)
		u.SetFloat(names.linear, light.Linear)
		u.SetFloat(names.quadratic, light.Quadratic)
		u.SetVec3(names.ambient, light.Ambient)
		u.SetVec3(names.diffuse, light.Diffuse)
		u.SetVec3(names.specular, light.Specular)
	}
}

type pointLightUniforms struct {
	position, constant, linear, quadratic string
	ambient, diffuse, specular            string
}

var pointLightNames = func() (names [MaxPointLights]pointLightUniforms) {
	for i := range names {
		field := func(f string) string { return fmt.Sprintf("point_lights[%d].%s", i, f) }
		names[i] = pointLightUniforms{
			position:  field("position"),
			constant:  field("constant"),
			linear:    field("linear"),
			quadratic: field("quadratic"),
			ambient:   field("ambient"),
			diffuse:   field("diffuse"),
			specular:  field("specular"),
		}
	}
	return names
}()
