package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// WithTangents converts basic vertices into lit vertices by appending a
// per-vertex tangent. indices selects the triangles; nil means the vertices
// already form a triangle list. Tangents shared between triangles are
// averaged and then made orthogonal to the vertex normal.
func WithTangents(vertices []float32, indices []uint32) []float32 {
	count := len(vertices) / BasicStride
	if indices == nil {
		indices = make([]uint32, count)
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	position := func(i uint32) mgl32.Vec3 {
		b := int(i) * BasicStride
		return mgl32.Vec3{vertices[b], vertices[b+1], vertices[b+2]}
	}
	normal := func(i uint32) mgl32.Vec3 {
		b := int(i)*BasicStride + 3
		return mgl32.Vec3{vertices[b], vertices[b+1], vertices[b+2]}
	}
	uv := func(i uint32) mgl32.Vec2 {
		b := int(i)*BasicStride + 6
		return mgl32.Vec2{vertices[b], vertices[b+1]}
	}

	tangents := make([]mgl32.Vec3, count)
	for t := 0; t+2 < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]

		e1 := position(i1).Sub(position(i0))
		e2 := position(i2).Sub(position(i0))
		d1 := uv(i1).Sub(uv(i0))
		d2 := uv(i2).Sub(uv(i0))

		det := d1.X()*d2.Y() - d2.X()*d1.Y()
		if det == 0 {
			continue
		}
		tangent := e1.Mul(d2.Y()).Sub(e2.Mul(d1.Y())).Mul(1 / det)

		tangents[i0] = tangents[i0].Add(tangent)
		tangents[i1] = tangents[i1].Add(tangent)
		tangents[i2] = tangents[i2].Add(tangent)
	}

	out := make([]float32, 0, count*LitStride)
	for i := 0; i < count; i++ {
		n := normal(uint32(i))
		tangent := orthogonalize(tangents[i], n)
		out = append(out, vertices[i*BasicStride:(i+1)*BasicStride]...)
		out = append(out, tangent[0], tangent[1], tangent[2])
	}
	return out
}

// orthogonalize removes the normal component of t (Gram-Schmidt) and falls
// back to any unit vector perpendicular to n when t is degenerate.
func orthogonalize(t, n mgl32.Vec3) mgl32.Vec3 {
	t = t.Sub(n.Mul(n.Dot(t)))
	if t.Len() > 1e-6 {
		return t.Normalize()
	}

	axis := mgl32.Vec3{1, 0, 0}
	if mgl32.Abs(n.X()) > 0.9 {
		axis = mgl32.Vec3{0, 1, 0}
	}
	t = axis.Sub(n.Mul(n.Dot(axis)))
	if t.Len() == 0 {
		return axis
	}
	return t.Normalize()
}

// GenerateNormals fills the normal slot of basic vertices with the average of
// the adjacent triangle normals, for models exported without normals.
func GenerateNormals(vertices []float32, indices []uint32) {
	count := len(vertices) / BasicStride
	normals := make([]mgl32.Vec3, count)

	for t := 0; t+2 < len(indices); t += 3 {
		var p [3]mgl32.Vec3
		for k := 0; k < 3; k++ {
			b := int(indices[t+k]) * BasicStride
			p[k] = mgl32.Vec3{vertices[b], vertices[b+1], vertices[b+2]}
		}
		n := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
		for k := 0; k < 3; k++ {
			normals[indices[t+k]] = normals[indices[t+k]].Add(n)
		}
	}

	for i, n := range normals {
		if n.Len() > 0 {
			n = n.Normalize()
		} else {
			n = mgl32.Vec3{0, 1, 0}
		}
		b := i*BasicStride + 3
		vertices[b], vertices[b+1], vertices[b+2] = n[0], n[1], n[2]
	}
}
