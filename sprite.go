package mirror

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// Sprite errors.
var (
	// ErrEmptySprite is returned when sprite data is empty.
	ErrEmptySprite = errors.New("mirror: empty sprite data")
)

// Sprite is a region of a texture displayed by an image element.
type Sprite struct {
	// Rect is the sprite's pixel rectangle within its texture.
	Rect image.Rectangle

	// Format is the name of the decoded file format, if the sprite was
	// loaded from a file.
	Format string
}

// NewSprite returns a sprite covering a w x h texture.
func NewSprite(w, h int) *Sprite {
	return &Sprite{Rect: image.Rect(0, 0, w, h)}
}

// Size returns the sprite's intrinsic pixel size.
func (s *Sprite) Size() Point {
	return Pt(float64(s.Rect.Dx()), float64(s.Rect.Dy()))
}

// UV returns the sprite's rectangle in normalized texture coordinates for a
// texture of texW x texH pixels. Texture space is y-up: V=0 is the bottom
// row of the texture.
func (s *Sprite) UV(texW, texH int) Rect {
	if texW <= 0 || texH <= 0 {
		return UnitUV()
	}
	w, h := float64(texW), float64(texH)
	return NewRect(
		Pt(float64(s.Rect.Min.X)/w, 1-float64(s.Rect.Max.Y)/h),
		Pt(float64(s.Rect.Max.X)/w, 1-float64(s.Rect.Min.Y)/h),
	)
}

// LoadSprite reads the header of an image file and returns a sprite covering
// the whole image. Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func LoadSprite(path string) (*Sprite, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("mirror: open sprite: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeSprite(f)
}

// LoadSpriteFromBytes decodes a sprite header from a byte slice.
func LoadSpriteFromBytes(data []byte) (*Sprite, error) {
	if len(data) == 0 {
		return nil, ErrEmptySprite
	}
	return DecodeSprite(bytes.NewReader(data))
}

// DecodeSprite decodes an image header from r, auto-detecting the format.
// Only the header is read; pixel data is not decoded.
func DecodeSprite(r io.Reader) (*Sprite, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("mirror: decode sprite: %w", err)
	}
	return &Sprite{
		Rect:   image.Rect(0, 0, cfg.Width, cfg.Height),
		Format: format,
	}, nil
}
