package cli

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/gogpu/mirror"
	"github.com/gogpu/mirror/internal/config"
)

// element is a minimal host image element. It implements mirror.Graphic and
// mirror.Image.
type element struct {
	typ    mirror.ImageType
	rect   mirror.Rect
	sprite *mirror.Sprite
	ppu    float64
	dirty  bool
}

func (e *element) ImageType() mirror.ImageType    { return e.typ }
func (e *element) PixelAdjustedRect() mirror.Rect { return e.rect }
func (e *element) Sprite() *mirror.Sprite         { return e.sprite }
func (e *element) PixelsPerUnit() float64         { return e.ppu }
func (e *element) SetVerticesDirty()              { e.dirty = true }

// SetLayoutSize keeps the element anchored at its minimum corner.
func (e *element) SetLayoutSize(size mirror.Point) {
	e.rect = mirror.RectFromOrigin(e.rect.Min.X, e.rect.Min.Y, size.X, size.Y)
}

// prepared is a scene after the mirror effect has run.
type prepared struct {
	scene   *config.Scene
	element *element
	effect  *mirror.Effect
	mesh    *mirror.Mesh
	texture image.Image
}

// prepare loads the scene's sprite, sizes the element and rebuilds its mesh
// through the mirror effect, as a host would on a layout pass.
func prepare(s *config.Scene) (*prepared, error) {
	el := &element{
		typ:  s.ImageType,
		rect: s.Rect.Rect(),
		ppu:  s.PixelsPerUnit,
	}

	var tex image.Image
	if s.Sprite != "" {
		img, err := loadImage(s.Sprite)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		el.sprite = mirror.NewSprite(b.Dx(), b.Dy())
		if s.SpriteRect != nil {
			r := s.SpriteRect.Image()
			if !r.In(image.Rect(0, 0, b.Dx(), b.Dy())) {
				return nil, fmt.Errorf("sprite: region %v outside %dx%d texture", r, b.Dx(), b.Dy())
			}
			el.sprite.Rect = r
		}
		tex = img
	}

	fx := mirror.NewEffect(s.Mode, mirror.WithActive(s.IsActive()))
	if s.NativeSize {
		fx.SetNativeSize(el)
	}

	uv := mirror.UnitUV()
	if el.sprite != nil {
		b := tex.Bounds()
		uv = el.sprite.UV(b.Dx(), b.Dy())
	}
	mesh := mirror.NewQuad(el.rect, uv, s.VertexColor())
	if err := fx.ModifyMesh(mesh, el); err != nil {
		return nil, err
	}
	el.dirty = false

	return &prepared{scene: s, element: el, effect: fx, mesh: mesh, texture: tex}, nil
}

// loadImage decodes the image file at path.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("sprite: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite: decode %s: %w", path, err)
	}
	return img, nil
}
