// Package config loads scene files for the mirror demo.
//
// A scene describes one image element: its layout rectangle, sprite, mirror
// mode and where to write the rendered preview.
//
//	mode: quadrant
//	sprite: arrow.png
//	native_size: true
//	pixels_per_unit: 1
//	output: arrow-mirrored.png
package config

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/mirror"
	"github.com/gogpu/mirror/internal/raster"
)

// maxSceneSize bounds scene files read from disk.
const maxSceneSize = 1024 * 1024

// MaxScale is the largest preview upscale factor.
const MaxScale = 64

// Scene validation errors.
var (
	ErrEmptyRect   = errors.New("config: rect must have positive width and height")
	ErrBadScale    = errors.New("config: scale must be between 1 and 64")
	ErrBadPPU      = errors.New("config: pixels_per_unit must be positive")
	ErrNoSprite    = errors.New("config: native_size requires a sprite")
	ErrSceneTooBig = errors.New("config: scene file too large")
	ErrSpriteRect  = errors.New("config: sprite_rect must have positive size and requires a sprite")
)

// PixelRect is a region of a texture in image pixels (y-down).
type PixelRect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Image converts r to an image.Rectangle.
func (r PixelRect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// RectSpec is a layout rectangle given by its minimum corner and size.
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect converts r to a mirror.Rect.
func (r RectSpec) Rect() mirror.Rect {
	return mirror.RectFromOrigin(r.X, r.Y, r.Width, r.Height)
}

// Scene is a parsed scene file.
type Scene struct {
	Mode      mirror.Mode      `yaml:"mode"`
	ImageType mirror.ImageType `yaml:"image_type"`
	Active    *bool            `yaml:"active"` // pointer to distinguish unset vs false

	Rect       RectSpec `yaml:"rect"`
	NativeSize bool     `yaml:"native_size"`

	Sprite        string     `yaml:"sprite"`
	SpriteRect    *PixelRect `yaml:"sprite_rect"` // atlas region; nil means the whole texture
	PixelsPerUnit float64    `yaml:"pixels_per_unit"`
	Color         string     `yaml:"color"`
	Filter        string     `yaml:"filter"`

	Output string `yaml:"output"`
	Scale  int    `yaml:"scale"`
}

// Load reads and parses the scene file at path. A relative sprite path is
// resolved against the scene file's directory.
func Load(path string) (*Scene, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if info.Size() > maxSceneSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrSceneTooBig, info.Size())
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read scene: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if s.Sprite != "" && !filepath.IsAbs(s.Sprite) {
		s.Sprite = filepath.Join(filepath.Dir(path), s.Sprite)
	}
	return s, nil
}

// Parse decodes scene YAML, applies defaults and validates the result.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) applyDefaults() {
	if s.PixelsPerUnit == 0 {
		s.PixelsPerUnit = 1
	}
	if s.Color == "" {
		s.Color = "#ffffff"
	}
	if s.Scale == 0 {
		s.Scale = 1
	}
	if s.Output == "" {
		s.Output = "mirror.png"
	}
}

// Validate checks that the scene can be rendered.
func (s *Scene) Validate() error {
	if !s.Mode.Valid() {
		return mirror.ErrInvalidMode
	}
	if s.PixelsPerUnit < 0 {
		return ErrBadPPU
	}
	if s.Scale < 1 || s.Scale > MaxScale {
		return ErrBadScale
	}
	if _, err := mirror.ParseHex(s.Color); err != nil {
		return fmt.Errorf("config: color: %w", err)
	}
	if r := s.SpriteRect; r != nil && (s.Sprite == "" || r.Width <= 0 || r.Height <= 0 || r.X < 0 || r.Y < 0) {
		return ErrSpriteRect
	}
	if s.NativeSize {
		if s.Sprite == "" {
			return ErrNoSprite
		}
	} else if s.Rect.Width <= 0 || s.Rect.Height <= 0 {
		return ErrEmptyRect
	}
	if _, err := s.RasterFilter(); err != nil {
		return err
	}
	return nil
}

// IsActive reports whether the effect is enabled. Unset means enabled.
func (s *Scene) IsActive() bool {
	return s.Active == nil || *s.Active
}

// VertexColor returns the parsed vertex tint.
func (s *Scene) VertexColor() mirror.RGBA {
	return mirror.Hex(s.Color)
}

// RasterFilter returns the texture filter named by the scene.
func (s *Scene) RasterFilter() (raster.Filter, error) {
	switch s.Filter {
	case "", "nearest":
		return raster.FilterNearest, nil
	case "bilinear":
		return raster.FilterBilinear, nil
	default:
		return 0, fmt.Errorf("config: unknown filter %q", s.Filter)
	}
}
