package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Shader programs, loaded from <assets>/shaders/<name>_vs.glsl and _fs.glsl
const (
	ShaderMaterial = "material"
	ShaderMarker   = "marker"
	ShaderSkybox   = "skybox"
)

// Material uniforms and the texture units they sample
const (
	UniformDiffuseMap   = "material.diffuse"
	UniformSpecularMap  = "material.specular"
	UniformNormalMap    = "material.normal"
	UniformHasNormalMap = "material.has_normal_map"
	UniformShininess    = "material.shininess"
	UniformSkybox       = "skybox"

	DiffuseUnit  = 0
	SpecularUnit = 1
	NormalUnit   = 2
)

// Material defaults
const (
	DefaultShininess = 32.0
	GlossyShininess  = 128.0
)

// Demo scene layout
var (
	ClearColor = mgl32.Vec4{0, 0, 0, 1}

	WallPosition  = mgl32.Vec3{2, 2, 2}
	PlanePosition = mgl32.Vec3{0, -2, 0}
	ModelPosition = mgl32.Vec3{2, -2, -4}
	ModelScale    = mgl32.Vec3{0.25, 0.25, 0.25}

	PointLightPositions = []mgl32.Vec3{
		{1.2, 1, 2},
		{1.2, 3, 1},
		{1.2, -3, 1},
	}
	LightDirection = mgl32.Vec3{-0.2, -1, -0.3}
)

const (
	PlaneHalfSize = 10.0
	PlaneUVRepeat = 10.0
)

// Asset files relative to the assets directory
const (
	ContainerDiffuse  = "container2.png"
	ContainerSpecular = "container2_s.png"
	WallDiffuse       = "brickwall.jpg"
	WallNormal        = "brickwall_n.jpg"
	PlaneDiffuse      = "wood.png"
	ModelFile         = "backpack/backpack.obj"
)

// SkyboxFaces are the cubemap images in +X, -X, +Y, -Y, +Z, -Z order
var SkyboxFaces = [6]string{
	"skybox/right.jpg",
	"skybox/left.jpg",
	"skybox/top.jpg",
	"skybox/bottom.jpg",
	"skybox/front.jpg",
	"skybox/back.jpg",
}
