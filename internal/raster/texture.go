// Package raster renders mirror meshes to images in software.
//
// It is used for previews and tests; hosts render meshes on their own
// pipeline.
package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Filter defines how texture sampling is performed.
type Filter uint8

const (
	// FilterNearest selects the closest texel (no interpolation).
	FilterNearest Filter = iota

	// FilterBilinear performs linear interpolation between 4 neighboring texels.
	FilterBilinear
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// Texture is a premultiplied RGBA image sampled in y-up texture space:
// (0,0) is the bottom-left corner, (1,1) the top-right.
type Texture struct {
	img  *image.RGBA
	w, h int
}

// NewTexture converts img to a texture. The pixels are copied.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Texture{img: rgba, w: b.Dx(), h: b.Dy()}
}

// texel returns the premultiplied texel at (x, y) in image coordinates.
func (t *Texture) texel(x, y int) (r, g, b, a float64) {
	i := t.img.PixOffset(x, y)
	p := t.img.Pix[i : i+4 : i+4]
	return float64(p[0]), float64(p[1]), float64(p[2]), float64(p[3])
}

// Sample samples the texture at normalized coordinates (u, v) and returns
// premultiplied components in [0, 255]. Out-of-range coordinates are clamped
// to the edge. An empty texture samples as transparent.
func (t *Texture) Sample(u, v float64, f Filter) (r, g, b, a float64) {
	if t.w == 0 || t.h == 0 {
		return 0, 0, 0, 0
	}
	if f == FilterBilinear {
		return t.sampleBilinear(u, v)
	}
	return t.sampleNearest(u, v)
}

func (t *Texture) sampleNearest(u, v float64) (r, g, b, a float64) {
	x := clamp(int(math.Floor(u*float64(t.w))), 0, t.w-1)
	y := clamp(int(math.Floor((1-v)*float64(t.h))), 0, t.h-1)
	return t.texel(x, y)
}

func (t *Texture) sampleBilinear(u, v float64) (r, g, b, a float64) {
	// Convert normalized coords to continuous texel coords
	fx := u*float64(t.w) - 0.5
	fy := (1-v)*float64(t.h) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := clamp(x0+1, 0, t.w-1)
	y1 := clamp(y0+1, 0, t.h-1)
	x0 = clamp(x0, 0, t.w-1)
	y0 = clamp(y0, 0, t.h-1)

	r00, g00, b00, a00 := t.texel(x0, y0)
	r10, g10, b10, a10 := t.texel(x1, y0)
	r01, g01, b01, a01 := t.texel(x0, y1)
	r11, g11, b11, a11 := t.texel(x1, y1)

	r = lerp2D(r00, r10, r01, r11, tx, ty)
	g = lerp2D(g00, g10, g01, g11, tx, ty)
	b = lerp2D(b00, b10, b01, b11, tx, ty)
	a = lerp2D(a00, a10, a01, a11, tx, ty)
	return r, g, b, a
}

// lerp2D interpolates between four corner values.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Upscale returns src scaled by an integer factor with nearest-neighbor
// filtering, for inspecting small previews. A factor below 2 returns src.
func Upscale(src *image.RGBA, factor int) *image.RGBA {
	if factor < 2 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
