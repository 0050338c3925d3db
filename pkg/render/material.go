package render

import (
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"

	"github.com/leterax/go-lights/internal/openglhelper"
	"github.com/leterax/go-lights/pkg/asset"
	"github.com/leterax/go-lights/pkg/scene"
)

// Material is the set of maps a lit surface samples.
type Material struct {
	Diffuse  *openglhelper.Texture
	Specular *openglhelper.Texture
	// Normal is nil for surfaces shaded with their vertex normals
	Normal    *openglhelper.Texture
	Shininess float32
}

// Bind binds the maps to their units and sets the material uniforms.
func (m *Material) Bind(p scene.Program) {
	p.SetInt(UniformDiffuseMap, DiffuseUnit)
	p.SetInt(UniformSpecularMap, SpecularUnit)
	p.SetInt(UniformNormalMap, NormalUnit)
	p.SetFloat(UniformShininess, m.Shininess)

	m.Diffuse.Bind(DiffuseUnit)
	m.Specular.Bind(SpecularUnit)
	if m.Normal != nil {
		m.Normal.Bind(NormalUnit)
	}
	p.SetBool(UniformHasNormalMap, m.Normal != nil)
}

// textureCache loads each texture file once. It also owns the 1x1 fallback
// textures used when a material has no map.
type textureCache struct {
	dir      string
	log      *zap.Logger
	textures map[string]*openglhelper.Texture

	white *openglhelper.Texture
	black *openglhelper.Texture
}

func newTextureCache(dir string, logger *zap.Logger) (*textureCache, error) {
	c := &textureCache{
		dir:      dir,
		log:      logger,
		textures: make(map[string]*openglhelper.Texture),
	}

	var err error
	if c.white, err = solidTexture(color.RGBA{255, 255, 255, 255}); err != nil {
		return nil, err
	}
	if c.black, err = solidTexture(color.RGBA{0, 0, 0, 255}); err != nil {
		c.white.Delete()
		return nil, err
	}
	return c, nil
}

func solidTexture(c color.RGBA) (*openglhelper.Texture, error) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return openglhelper.NewTexture2D(img)
}

// load returns the texture at path, which is absolute or relative to the
// cache directory.
func (c *textureCache) load(path string) (*openglhelper.Texture, error) {
	full := asset.Resolve(c.dir, path)
	if t, ok := c.textures[full]; ok {
		return t, nil
	}

	img, err := asset.LoadImage(full, true)
	if err != nil {
		return nil, err
	}
	t, err := openglhelper.NewTexture2D(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", full, err)
	}

	c.textures[full] = t
	c.log.Debug("Texture loaded",
		zap.String("path", full),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))
	return t, nil
}

// material builds a material from file names. Empty names fall back to a
// white diffuse map, a black specular map and no normal map.
func (c *textureCache) material(diffuse, specular, normal string, shininess float32) (*Material, error) {
	m := &Material{Diffuse: c.white, Specular: c.black, Shininess: shininess}

	var err error
	if diffuse != "" {
		if m.Diffuse, err = c.load(diffuse); err != nil {
			return nil, err
		}
	}
	if specular != "" {
		if m.Specular, err = c.load(specular); err != nil {
			return nil, err
		}
	}
	if normal != "" {
		if m.Normal, err = c.load(normal); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (c *textureCache) release() {
	for path, t := range c.textures {
		t.Delete()
		delete(c.textures, path)
	}
	c.white.Delete()
	c.black.Delete()
}
