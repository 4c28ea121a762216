package mirror

const (
	quadVertices = 4

	// Vertex indices of the simple quad.
	quadBottomLeft  = 0
	quadTopLeft     = 1
	quadTopRight    = 2
	quadBottomRight = 3
)

// Apply mirrors the simple quad held by mb inside r.
//
// mb must hold exactly the 4 vertices of a simple quad wound bottom-left,
// top-left, top-right, bottom-right. Otherwise Apply returns a
// *TopologyError and leaves mb untouched.
//
// On success mb holds 6 vertices and 4 triangles (Horizontal, Vertical) or
// 9 vertices and 8 triangles (Quadrant).
func Apply(mb MeshBuilder, r Rect, mode Mode) error {
	if !mode.Valid() {
		return ErrInvalidMode
	}
	if n := mb.VertexCount(); n != quadVertices {
		return &TopologyError{Vertices: n}
	}

	Shrink(mb, r, mode)

	c := DoubleCenter(r)
	switch mode {
	case Horizontal:
		MirrorHorizontal(mb, c.X)
	case Vertical:
		MirrorVertical(mb, c.Y)
	case Quadrant:
		MirrorQuadrant(mb, c)
	}

	Logger().Debug("mirror: applied",
		"mode", mode,
		"vertices", mb.VertexCount(),
		"rect", r)
	return nil
}

// Shrink halves the span of every vertex along each axis mode mirrors,
// anchored at the minimum edge of r:
//
//	x' = (r.Min.X + x) / 2   when mode.MirrorsX()
//	y' = (r.Min.Y + y) / 2   when mode.MirrorsY()
func Shrink(mb MeshBuilder, r Rect, mode Mode) {
	mx, my := mode.MirrorsX(), mode.MirrorsY()
	for i, n := 0, mb.VertexCount(); i < n; i++ {
		v := mb.Vertex(i)
		if mx {
			v.Position.X = (r.Min.X + v.Position.X) * 0.5
		}
		if my {
			v.Position.Y = (r.Min.Y + v.Position.Y) * 0.5
		}
		mb.SetVertex(i, v)
	}
}

// Reflect appends a copy of vertex src whose coordinate on axis is replaced
// by c minus the original, and returns the index of the new vertex.
// Vertex src is not modified.
func Reflect(mb MeshBuilder, src int, axis Axis, c float64) int {
	v := mb.Vertex(src)
	v.Position = axis.Set(v.Position, c-axis.Get(v.Position))
	return mb.AddVertex(v)
}

// MirrorHorizontal reflects the left edge of the quad across x = cx/2 and
// stitches the right-hand copy to the quad's right edge.
func MirrorHorizontal(mb MeshBuilder, cx float64) {
	bl := Reflect(mb, quadBottomLeft, AxisX, cx)
	tl := Reflect(mb, quadTopLeft, AxisX, cx)

	mb.AddTriangle(quadTopRight, bl, quadBottomRight)
	mb.AddTriangle(quadTopRight, tl, bl)
}

// MirrorVertical reflects the bottom edge of the quad across y = cy/2 and
// stitches the upper copy to the quad's top edge.
func MirrorVertical(mb MeshBuilder, cy float64) {
	bl := Reflect(mb, quadBottomLeft, AxisY, cy)
	br := Reflect(mb, quadBottomRight, AxisY, cy)

	mb.AddTriangle(quadTopRight, quadTopLeft, bl)
	mb.AddTriangle(quadTopRight, bl, br)
}

// MirrorQuadrant mirrors the quad horizontally, then reflects the whole
// bottom row across y = c.Y/2 and stitches the upper row. The reflected
// bottom-right corner is the hub shared by all four upper triangles.
func MirrorQuadrant(mb MeshBuilder, c Point) {
	rbl := Reflect(mb, quadBottomLeft, AxisX, c.X)
	rtl := Reflect(mb, quadTopLeft, AxisX, c.X)
	mb.AddTriangle(quadTopRight, rbl, quadBottomRight)
	mb.AddTriangle(quadTopRight, rtl, rbl)

	left := Reflect(mb, quadBottomLeft, AxisY, c.Y)
	hub := Reflect(mb, quadBottomRight, AxisY, c.Y)
	right := Reflect(mb, rbl, AxisY, c.Y)

	mb.AddTriangle(hub, quadTopLeft, left)
	mb.AddTriangle(hub, quadTopRight, quadTopLeft)
	mb.AddTriangle(hub, rtl, quadTopRight)
	mb.AddTriangle(hub, right, rtl)
}
