// Package geometry provides the built-in vertex tables of the demo.
//
// Lit vertices are interleaved as position(3) normal(3) uv(2), and
// WithTangents extends them with a tangent(3) for normal mapping.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex strides, in floats
const (
	PositionStride = 3
	BasicStride    = 8
	LitStride      = 11
)

// face describes one side of the unit cube: its outward normal and the two
// in-plane axes that map to the u and v texture coordinates.
type face struct {
	normal, u, v mgl32.Vec3
}

// cubeFaces are ordered so that u x v == normal, which keeps every
// triangle counter-clockwise when seen from outside.
var cubeFaces = [6]face{
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
}

// quad corners as (u sign, v sign), two triangles
var quadCorners = [6][2]float32{
	{-1, -1}, {1, -1}, {1, 1},
	{1, 1}, {-1, 1}, {-1, -1},
}

func appendQuad(dst []float32, center, normal, u, v mgl32.Vec3, halfSize, uvRepeat float32) []float32 {
	for _, c := range quadCorners {
		p := center.Add(u.Mul(c[0] * halfSize)).Add(v.Mul(c[1] * halfSize))
		dst = append(dst,
			p[0], p[1], p[2],
			normal[0], normal[1], normal[2],
			(c[0]+1)/2*uvRepeat, (c[1]+1)/2*uvRepeat,
		)
	}
	return dst
}

// Cube returns a unit cube centered on the origin as 36 basic vertices.
func Cube() []float32 {
	vertices := make([]float32, 0, 36*BasicStride)
	for _, f := range cubeFaces {
		vertices = appendQuad(vertices, f.normal.Mul(0.5), f.normal, f.u, f.v, 0.5, 1)
	}
	return vertices
}

// Plane returns a horizontal square facing +Y at y=0 as 6 basic vertices.
// Texture coordinates span [0, uvRepeat] so the texture tiles.
func Plane(halfSize, uvRepeat float32) []float32 {
	vertices := make([]float32, 0, 6*BasicStride)
	return appendQuad(vertices, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, halfSize, uvRepeat)
}

// MarkerCube returns the unit cube as positions only.
func MarkerCube() []float32 {
	return Positions(Cube(), BasicStride, 1)
}

// SkyboxCube returns a cube spanning [-1, 1] as positions only.
func SkyboxCube() []float32 {
	return Positions(Cube(), BasicStride, 2)
}

// Positions extracts the leading position of every vertex, scaled.
func Positions(vertices []float32, stride int, scale float32) []float32 {
	count := len(vertices) / stride
	out := make([]float32, 0, count*PositionStride)
	for i := 0; i < count; i++ {
		base := i * stride
		out = append(out, vertices[base]*scale, vertices[base+1]*scale, vertices[base+2]*scale)
	}
	return out
}
