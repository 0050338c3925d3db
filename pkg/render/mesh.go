package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-lights/internal/openglhelper"
	"github.com/leterax/go-lights/pkg/asset"
	"github.com/leterax/go-lights/pkg/geometry"
	"github.com/leterax/go-lights/pkg/scene"
)

// TexturedMesh draws a lit mesh with its material bound.
type TexturedMesh struct {
	Mesh     *openglhelper.Mesh
	Material *Material
}

// Draw binds the material and draws the mesh.
func (t *TexturedMesh) Draw(p scene.Program) {
	t.Material.Bind(p)
	t.Mesh.Draw(p)
}

// newLitMesh uploads basic vertices with generated tangents.
func newLitMesh(vertices []float32, indices []uint32) (*openglhelper.Mesh, error) {
	return openglhelper.NewMesh(geometry.WithTangents(vertices, indices), openglhelper.LayoutLit, indices)
}

// Skybox draws a cubemap on a unit cube around the viewer.
type Skybox struct {
	mesh    *openglhelper.Mesh
	cubemap *openglhelper.Texture
}

func newSkybox(dir string) (*Skybox, error) {
	var paths [asset.CubemapFaces]string
	for i, face := range SkyboxFaces {
		paths[i] = asset.Resolve(dir, face)
	}
	faces, err := asset.LoadCubemap(paths)
	if err != nil {
		return nil, err
	}

	cubemap, err := openglhelper.NewCubemap(faces)
	if err != nil {
		return nil, err
	}
	mesh, err := openglhelper.NewMesh(geometry.SkyboxCube(), openglhelper.LayoutPosition, nil)
	if err != nil {
		cubemap.Delete()
		return nil, err
	}
	return &Skybox{mesh: mesh, cubemap: cubemap}, nil
}

// Draw binds the cubemap to unit 0 and draws the cube.
func (s *Skybox) Draw(p scene.Program) {
	p.SetInt(UniformSkybox, 0)
	s.cubemap.Bind(0)
	s.mesh.Draw(p)
}

// Delete releases the cube and the cubemap.
func (s *Skybox) Delete() {
	s.mesh.Delete()
	s.cubemap.Delete()
}

// Model is a loaded OBJ model placed in the world.
type Model struct {
	Transform scene.Transform
	parts     []*TexturedMesh
}

func newModel(data *asset.ModelData, textures *textureCache) (*Model, error) {
	m := &Model{}
	for _, part := range data.Parts {
		material, err := textures.material(part.DiffuseMap, "", "", DefaultShininess)
		if err != nil {
			m.Delete()
			return nil, fmt.Errorf("model %s part %q: %w", data.Path, part.Name, err)
		}
		mesh, err := newLitMesh(part.Vertices, part.Indices)
		if err != nil {
			m.Delete()
			return nil, fmt.Errorf("model %s part %q: %w", data.Path, part.Name, err)
		}
		m.parts = append(m.parts, &TexturedMesh{Mesh: mesh, Material: material})
	}
	return m, nil
}

// Model returns the model matrix.
func (m *Model) Model() mgl32.Mat4 {
	return m.Transform.Matrix()
}

// Draw draws every part with its own material.
func (m *Model) Draw(p scene.Program) {
	for _, part := range m.parts {
		part.Draw(p)
	}
}

// Delete releases the part meshes. Textures belong to the texture cache.
func (m *Model) Delete() {
	for _, part := range m.parts {
		part.Mesh.Delete()
	}
	m.parts = nil
}
