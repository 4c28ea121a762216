package mirror

import (
	"log/slog"
	"reflect"
)

// Graphic is the host element whose mesh is being rebuilt.
type Graphic interface {
	// ImageType returns how the host renders the element.
	ImageType() ImageType

	// PixelAdjustedRect returns the element's layout rectangle after the
	// host's pixel snapping.
	PixelAdjustedRect() Rect
}

// Image is the host element seen by the native-size path.
type Image interface {
	// Sprite returns the sprite currently displayed, or nil.
	Sprite() *Sprite

	// PixelsPerUnit returns the sprite pixels per layout unit.
	PixelsPerUnit() float64

	// SetLayoutSize collapses the element's anchors and sets its size.
	SetLayoutSize(size Point)

	// SetVerticesDirty asks the host to rebuild the element's mesh.
	SetVerticesDirty()
}

// Effect is the per-element state of the mirror effect.
//
// Effect is not safe for concurrent use. Hosts call it from their layout or
// render pass.
type Effect struct {
	// Mode selects the mirror mode. Use SetMode to change it so that the
	// effect is marked dirty.
	Mode Mode

	// Active gates the effect. An inactive effect leaves meshes unchanged.
	Active bool

	// Dirty is set when the element's mesh needs a rebuild and cleared by
	// ModifyMesh.
	Dirty bool

	logger *slog.Logger
}

// NewEffect creates an active effect for mode.
//
// Example:
//
//	fx := mirror.NewEffect(mirror.Quadrant)
//	fx := mirror.NewEffect(mirror.Horizontal, mirror.WithActive(false))
func NewEffect(mode Mode, opts ...EffectOption) *Effect {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Effect{
		Mode:   mode,
		Active: o.active,
		Dirty:  true,
		logger: o.logger,
	}
}

func (e *Effect) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return Logger()
}

// SetMode changes the mirror mode and marks the effect dirty if it differs.
func (e *Effect) SetMode(mode Mode) {
	if e.Mode == mode {
		return
	}
	e.Mode = mode
	e.Dirty = true
}

// ModifyMesh mirrors the quad in mb for graphic g.
//
// It is a no-op returning nil when the effect is inactive, g is nil (a typed
// nil pointer counts), or g is not rendered as a simple image. Otherwise it returns the result of Apply
// with g's pixel-adjusted rectangle.
func (e *Effect) ModifyMesh(mb MeshBuilder, g Graphic) error {
	if !e.Active {
		e.log().Debug("mirror: skip, effect inactive")
		return nil
	}
	if isNil(g) {
		e.log().Debug("mirror: skip, no graphic")
		return nil
	}
	if t := g.ImageType(); t != TypeSimple {
		e.log().Debug("mirror: skip, image not simple", "type", t)
		return nil
	}

	if err := Apply(mb, g.PixelAdjustedRect(), e.Mode); err != nil {
		return err
	}
	e.Dirty = false
	return nil
}

// SetNativeSize sizes img so that its mirrored mesh shows the sprite at its
// intrinsic pixel size, then marks the mesh dirty.
//
// It does nothing when img is nil or has no sprite.
func (e *Effect) SetNativeSize(img Image) {
	if isNil(img) {
		return
	}
	s := img.Sprite()
	if s == nil {
		return
	}

	size := NativeSize(e.Mode, float64(s.Rect.Dx()), float64(s.Rect.Dy()), img.PixelsPerUnit())
	img.SetLayoutSize(size)
	e.Dirty = true
	img.SetVerticesDirty()

	e.log().Debug("mirror: native size", "mode", e.Mode, "size", size)
}

// NativeSize returns the layout size of a mirrored element showing a sprite
// of w x h pixels at ppu pixels per unit. The mirrored axes are doubled.
// A non-positive ppu is treated as 1.
func NativeSize(mode Mode, w, h, ppu float64) Point {
	if ppu <= 0 {
		ppu = 1
	}
	size := Pt(w/ppu, h/ppu)
	if mode.MirrorsX() {
		size.X *= 2
	}
	if mode.MirrorsY() {
		size.Y *= 2
	}
	return size
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
