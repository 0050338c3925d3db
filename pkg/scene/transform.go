package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform places an object in the world. The zero value is the identity;
// a scale set through Scaled is kept as given, zero included.
type Transform struct {
	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3
	scaleSet bool
}

// At returns a transform translated to position with unit scale.
func At(position mgl32.Vec3) Transform {
	return Transform{position: position}
}

// Moved returns t translated by offset.
func (t Transform) Moved(offset mgl32.Vec3) Transform {
	t.position = t.position.Add(offset)
	return t
}

// Scaled returns t with its scale multiplied component-wise by factor.
func (t Transform) Scaled(factor mgl32.Vec3) Transform {
	scale := t.Scale()
	t.scale = mgl32.Vec3{scale[0] * factor[0], scale[1] * factor[1], scale[2] * factor[2]}
	t.scaleSet = true
	return t
}

// Rotated returns t rotated by angle radians around axis, applied after its
// current rotation.
func (t Transform) Rotated(angle float32, axis mgl32.Vec3) Transform {
	t.rotation = mgl32.QuatRotate(angle, axis.Normalize()).Mul(t.Rotation())
	return t
}

// Position returns the translation.
func (t Transform) Position() mgl32.Vec3 {
	return t.position
}

// Scale returns the scale, unit until Scaled is called.
func (t Transform) Scale() mgl32.Vec3 {
	if !t.scaleSet {
		return mgl32.Vec3{1, 1, 1}
	}
	return t.scale
}

// Rotation returns the orientation.
func (t Transform) Rotation() mgl32.Quat {
	if t.rotation == (mgl32.Quat{}) {
		return mgl32.QuatIdent()
	}
	return t.rotation
}

// Matrix returns translate * rotate * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.position.Elem()).
		Mul4(t.Rotation().Mat4()).
		Mul4(mgl32.Scale3D(t.Scale().Elem()))
}

// NormalMatrix returns the inverse-transpose of the upper 3x3 of model,
// which keeps normals perpendicular to surfaces under non-uniform scale.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}

// Object is a Drawable made of a transform and a mesh.
type Object struct {
	Name      string
	Transform Transform
	Mesh      Mesh
}

// Model returns the object's model matrix.
func (o *Object) Model() mgl32.Mat4 {
	return o.Transform.Matrix()
}

// Draw draws the object's mesh with p.
func (o *Object) Draw(p Program) {
	o.Mesh.Draw(p)
}
