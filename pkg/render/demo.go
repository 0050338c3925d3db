// Package render holds the OpenGL side of the demo: the GPU device state,
// materials, meshes, the skybox and the assembled scene.
package render

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/leterax/go-lights/internal/openglhelper"
	"github.com/leterax/go-lights/pkg/asset"
	"github.com/leterax/go-lights/pkg/geometry"
	"github.com/leterax/go-lights/pkg/lighting"
	"github.com/leterax/go-lights/pkg/scene"
)

// Demo is the loaded demo scene with every GPU resource it owns.
type Demo struct {
	log   *zap.Logger
	scene scene.Scene

	shaders  []*openglhelper.Shader
	meshes   []*openglhelper.Mesh
	models   []*Model
	skybox   *Skybox
	textures *textureCache
}

// LoadDemo loads shaders, textures, meshes and the model from dir. It must
// run on the thread that owns the GL context. On failure everything loaded
// so far is released.
func LoadDemo(dir string, logger *zap.Logger) (demo *Demo, err error) {
	d := &Demo{log: logger}
	defer func() {
		if err != nil {
			d.Release()
		}
	}()

	if d.textures, err = newTextureCache(dir, logger); err != nil {
		return nil, err
	}

	material, err := d.loadShader(dir, ShaderMaterial)
	if err != nil {
		return nil, err
	}
	marker, err := d.loadShader(dir, ShaderMarker)
	if err != nil {
		return nil, err
	}
	skyboxShader, err := d.loadShader(dir, ShaderSkybox)
	if err != nil {
		return nil, err
	}

	lights, err := demoLights()
	if err != nil {
		return nil, err
	}

	opaque, err := d.loadObjects()
	if err != nil {
		return nil, err
	}

	data, err := asset.LoadModel(filepath.Join(dir, ModelFile), logger)
	if err != nil {
		return nil, err
	}
	model, err := newModel(data, d.textures)
	if err != nil {
		return nil, err
	}
	model.Transform = scene.At(ModelPosition).Scaled(ModelScale)
	d.models = append(d.models, model)

	markerMesh, err := d.newMesh(geometry.MarkerCube(), openglhelper.LayoutPosition)
	if err != nil {
		return nil, err
	}

	if d.skybox, err = newSkybox(dir); err != nil {
		return nil, err
	}

	d.scene = scene.Scene{
		Device:      &Device{ClearColor: ClearColor},
		Lights:      lights,
		Markers:     scene.Pass{Program: marker, Mesh: markerMesh},
		MarkerScale: scene.DefaultMarkerScale,
		Lit:         material,
		Opaque:      opaque,
		Models:      []scene.Drawable{model},
		Skybox:      scene.Pass{Program: skyboxShader, Mesh: d.skybox},
	}

	logger.Info("Demo scene loaded",
		zap.String("assets", dir),
		zap.Int("objects", len(opaque)+len(d.models)),
		zap.Int("point_lights", len(lights.PointLights())))

	return d, nil
}

func (d *Demo) loadShader(dir, name string) (*openglhelper.Shader, error) {
	shader, err := openglhelper.LoadShaderFromFiles(
		filepath.Join(dir, "shaders", name+"_vs.glsl"),
		filepath.Join(dir, "shaders", name+"_fs.glsl"))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s shader: %w", name, err)
	}
	d.shaders = append(d.shaders, shader)
	return shader, nil
}

func (d *Demo) newMesh(vertices []float32, layout openglhelper.VertexLayout) (*openglhelper.Mesh, error) {
	mesh, err := openglhelper.NewMesh(vertices, layout, nil)
	if err != nil {
		return nil, err
	}
	d.meshes = append(d.meshes, mesh)
	return mesh, nil
}

// loadObjects builds the container, the brick wall and the floor.
func (d *Demo) loadObjects() ([]scene.Drawable, error) {
	objects := []struct {
		name      string
		vertices  []float32
		transform scene.Transform
		diffuse   string
		specular  string
		normal    string
		shininess float32
	}{
		{"container", geometry.Cube(), scene.Transform{}, ContainerDiffuse, ContainerSpecular, "", GlossyShininess},
		{"wall", geometry.Cube(), scene.At(WallPosition), WallDiffuse, WallDiffuse, WallNormal, GlossyShininess},
		{"plane", geometry.Plane(PlaneHalfSize, PlaneUVRepeat), scene.At(PlanePosition), PlaneDiffuse, "", "", DefaultShininess},
	}

	drawables := make([]scene.Drawable, 0, len(objects))
	for _, o := range objects {
		material, err := d.textures.material(o.diffuse, o.specular, o.normal, o.shininess)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.name, err)
		}
		mesh, err := newLitMesh(o.vertices, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.name, err)
		}
		d.meshes = append(d.meshes, mesh)

		drawables = append(drawables, &scene.Object{
			Name:      o.name,
			Transform: o.transform,
			Mesh:      &TexturedMesh{Mesh: mesh, Material: material},
		})
	}
	return drawables, nil
}

func demoLights() (*lighting.Setup, error) {
	lights := lighting.NewSetup(lighting.DefaultDirectionalLight(LightDirection))
	for _, pos := range PointLightPositions {
		if err := lights.AddPointLight(lighting.DefaultPointLight(pos)); err != nil {
			return nil, err
		}
	}
	return lights, nil
}

// RenderFrame draws the scene for f.
func (d *Demo) RenderFrame(f scene.Frame) {
	d.scene.Render(f)
}

// Release deletes every GPU resource. It must run before the window and
// its context are destroyed.
func (d *Demo) Release() {
	for _, m := range d.models {
		m.Delete()
	}
	d.models = nil
	for _, m := range d.meshes {
		m.Delete()
	}
	d.meshes = nil
	for _, s := range d.shaders {
		s.Delete()
	}
	d.shaders = nil
	if d.skybox != nil {
		d.skybox.Delete()
		d.skybox = nil
	}
	if d.textures != nil {
		d.textures.release()
		d.textures = nil
	}
	d.log.Debug("Demo resources released")
}
