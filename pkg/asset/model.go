package asset

import (
	"fmt"
	"path/filepath"

	"github.com/udhos/gwob"
	"go.uber.org/zap"

	"github.com/leterax/go-lights/pkg/geometry"
)

// Part is one material group of a model with its own compact vertex buffer.
type Part struct {
	Name string
	// Vertices are basic vertices, see geometry.BasicStride.
	Vertices []float32
	Indices  []uint32
	// DiffuseMap is the path of the diffuse texture, empty if none.
	DiffuseMap string
}

// ModelData is a model loaded from disk.
type ModelData struct {
	Path  string
	Parts []Part
}

// VertexCount returns the number of vertices over all parts.
func (m *ModelData) VertexCount() int {
	n := 0
	for _, p := range m.Parts {
		n += len(p.Vertices) / geometry.BasicStride
	}
	return n
}

// LoadModel loads a Wavefront OBJ file and its material library. Texture
// paths are resolved relative to the OBJ file.
func LoadModel(path string, logger *zap.Logger) (*ModelData, error) {
	options := &gwob.ObjParserOptions{
		Logger: func(msg string) { logger.Debug("obj parser", zap.String("path", path), zap.String("msg", msg)) },
	}

	obj, err := gwob.NewObjFromFile(path, options)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model %s: %w", path, err)
	}

	dir := filepath.Dir(path)

	var materials gwob.MaterialLib
	if obj.Mtllib != "" {
		materials, err = gwob.ReadMaterialLibFromFile(Resolve(dir, obj.Mtllib), options)
		if err != nil {
			return nil, fmt.Errorf("failed to read material library of %s: %w", path, err)
		}
	}

	vertices := interleave(obj)
	if !obj.NormCoordFound {
		indices := make([]uint32, len(obj.Indices))
		for i, idx := range obj.Indices {
			indices[i] = uint32(idx)
		}
		geometry.GenerateNormals(vertices, indices)
	}

	model := &ModelData{Path: path}
	for _, g := range groups(obj) {
		part := compact(vertices, obj.Indices[g.IndexBegin:g.IndexBegin+g.IndexCount])
		part.Name = g.Name

		if mtl, ok := materials.Lib[g.Usemtl]; ok && mtl.MapKd != "" {
			part.DiffuseMap = Resolve(dir, mtl.MapKd)
		}
		model.Parts = append(model.Parts, part)
	}

	logger.Info("Model loaded",
		zap.String("path", path),
		zap.Int("parts", len(model.Parts)),
		zap.Int("vertices", model.VertexCount()))

	return model, nil
}

// groups returns the face groups of obj, or a single group covering every
// index when the file declares none.
func groups(obj *gwob.Obj) []*gwob.Group {
	var out []*gwob.Group
	for _, g := range obj.Groups {
		if g.IndexCount > 0 {
			out = append(out, g)
		}
	}
	if len(out) == 0 && len(obj.Indices) > 0 {
		out = append(out, &gwob.Group{IndexBegin: 0, IndexCount: len(obj.Indices)})
	}
	return out
}

// interleave converts the parser's vertex layout into basic vertices.
func interleave(obj *gwob.Obj) []float32 {
	stride := obj.StrideSize / 4
	if stride == 0 {
		return nil
	}
	posOffset := obj.StrideOffsetPosition / 4
	texOffset := obj.StrideOffsetTexture / 4
	normOffset := obj.StrideOffsetNormal / 4

	count := len(obj.Coord) / stride
	out := make([]float32, 0, count*geometry.BasicStride)
	for i := 0; i < count; i++ {
		v := obj.Coord[i*stride : (i+1)*stride]

		out = append(out, v[posOffset], v[posOffset+1], v[posOffset+2])
		if obj.NormCoordFound {
			out = append(out, v[normOffset], v[normOffset+1], v[normOffset+2])
		} else {
			out = append(out, 0, 0, 0)
		}
		if obj.TextCoordFound {
			out = append(out, v[texOffset], v[texOffset+1])
		} else {
			out = append(out, 0, 0)
		}
	}
	return out
}

// compact copies the vertices referenced by indices into a new buffer and
// renumbers the indices accordingly.
func compact(vertices []float32, indices []int) Part {
	remap := make(map[int]uint32, len(indices))
	part := Part{Indices: make([]uint32, 0, len(indices))}

	for _, idx := range indices {
		n, ok := remap[idx]
		if !ok {
			n = uint32(len(remap))
			remap[idx] = n
			part.Vertices = append(part.Vertices, vertices[idx*geometry.BasicStride:(idx+1)*geometry.BasicStride]...)
		}
		part.Indices = append(part.Indices, n)
	}
	return part
}
