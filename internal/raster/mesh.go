package raster

import (
	"image"
	"math"

	"github.com/gogpu/mirror"
)

// Options configures DrawMesh.
type Options struct {
	// Filter selects texture sampling. Default: FilterNearest.
	Filter Filter
}

// screenVertex is a mesh vertex projected to pixel space.
type screenVertex struct {
	x, y  float64
	u, v  float64
	color mirror.RGBA
}

// DrawMesh composites the triangles of m onto dst with source-over blending.
//
// view is the region of mesh space mapped onto dst's bounds. Mesh space is
// y-up, so view.Max.Y maps to the top row of dst. Each fragment is the
// texture sampled at the interpolated UV0, tinted by the interpolated vertex
// color. A nil texture draws vertex colors only.
func DrawMesh(dst *image.RGBA, m *mirror.Mesh, tex *Texture, view mirror.Rect, opts Options) {
	if view.Width() <= 0 || view.Height() <= 0 {
		return
	}
	b := dst.Bounds()
	sx := float64(b.Dx()) / view.Width()
	sy := float64(b.Dy()) / view.Height()

	verts := make([]screenVertex, m.VertexCount())
	for i, v := range m.Vertices() {
		verts[i] = screenVertex{
			x:     float64(b.Min.X) + (v.Position.X-view.Min.X)*sx,
			y:     float64(b.Min.Y) + (view.Max.Y-v.Position.Y)*sy,
			u:     v.UV0.X,
			v:     v.UV0.Y,
			color: v.Color,
		}
	}

	for _, tri := range m.Triangles() {
		drawTriangle(dst, verts[tri[0]], verts[tri[1]], verts[tri[2]], tex, opts.Filter)
	}
}

// Render draws m into a new w x h image framing view.
func Render(m *mirror.Mesh, tex *Texture, view mirror.Rect, w, h int, opts Options) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	DrawMesh(dst, m, tex, view, opts)
	return dst
}

// orient returns twice the signed area of triangle (a, b, p).
func orient(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// topLeft reports whether the edge a->b owns pixel centers lying exactly on
// it, so that triangles sharing the edge cover each pixel once.
func topLeft(a, b screenVertex) bool {
	dy := b.y - a.y
	return dy < 0 || (dy == 0 && b.x > a.x)
}

func covers(w float64, a, b screenVertex) bool {
	return w > 0 || (w == 0 && topLeft(a, b))
}

func drawTriangle(dst *image.RGBA, p0, p1, p2 screenVertex, tex *Texture, f Filter) {
	area := orient(p0.x, p0.y, p1.x, p1.y, p2.x, p2.y)
	if area == 0 {
		return
	}
	if area < 0 {
		p1, p2 = p2, p1
		area = -area
	}

	b := dst.Bounds()
	minX := max(b.Min.X, int(math.Floor(min(p0.x, p1.x, p2.x))))
	maxX := min(b.Max.X-1, int(math.Ceil(max(p0.x, p1.x, p2.x))))
	minY := max(b.Min.Y, int(math.Floor(min(p0.y, p1.y, p2.y))))
	maxY := min(b.Max.Y-1, int(math.Ceil(max(p0.y, p1.y, p2.y))))

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			w0 := orient(p1.x, p1.y, p2.x, p2.y, px, py)
			w1 := orient(p2.x, p2.y, p0.x, p0.y, px, py)
			w2 := orient(p0.x, p0.y, p1.x, p1.y, px, py)
			if !covers(w0, p1, p2) || !covers(w1, p2, p0) || !covers(w2, p0, p1) {
				continue
			}

			l0, l1, l2 := w0/area, w1/area, w2/area
			u := l0*p0.u + l1*p1.u + l2*p2.u
			v := l0*p0.v + l1*p1.v + l2*p2.v
			c := mirror.RGBA{
				R: l0*p0.color.R + l1*p1.color.R + l2*p2.color.R,
				G: l0*p0.color.G + l1*p1.color.G + l2*p2.color.G,
				B: l0*p0.color.B + l1*p1.color.B + l2*p2.color.B,
				A: l0*p0.color.A + l1*p1.color.A + l2*p2.color.A,
			}
			blendOver(dst, x, y, shade(tex, u, v, c, f))
		}
	}
}

// shade returns the premultiplied fragment color in [0, 255].
func shade(tex *Texture, u, v float64, c mirror.RGBA, f Filter) [4]float64 {
	if tex == nil {
		return [4]float64{c.R * c.A * 255, c.G * c.A * 255, c.B * c.A * 255, c.A * 255}
	}
	r, g, b, a := tex.Sample(u, v, f)
	// Texture is premultiplied; tinting by the straight vertex color keeps it so.
	return [4]float64{r * c.R * c.A, g * c.G * c.A, b * c.B * c.A, a * c.A}
}

func blendOver(dst *image.RGBA, x, y int, src [4]float64) {
	i := dst.PixOffset(x, y)
	p := dst.Pix[i : i+4 : i+4]
	inv := 1 - src[3]/255
	for k := range 4 {
		p[k] = uint8(clamp(int(math.Round(src[k]+float64(p[k])*inv)), 0, 255))
	}
}
