package mirror

import "fmt"

// Vertex is a UI mesh vertex. The mirror transform rewrites Position.X and
// Position.Y only; every other attribute is copied verbatim when a vertex is
// reflected.
type Vertex struct {
	Position Vec3
	Normal   Vec3
	Tangent  [4]float64
	Color    RGBA
	UV0      Point
	UV1      Point
	UV2      Point
	UV3      Point
}

// MeshBuilder is the append/overwrite view of a triangle mesh that the host
// hands to the transform for one rebuild.
//
// Vertices are addressed 0..VertexCount()-1. The transform only appends
// vertices and triangles and overwrites vertex positions; it never removes.
type MeshBuilder interface {
	// VertexCount returns the number of vertices currently in the mesh.
	VertexCount() int

	// Vertex returns a copy of vertex i.
	Vertex(i int) Vertex

	// AddVertex appends v and returns its index.
	AddVertex(v Vertex) int

	// SetVertex overwrites vertex i.
	SetVertex(i int, v Vertex)

	// AddTriangle appends a triangle referencing three existing vertices.
	AddTriangle(a, b, c int)
}

// Triangle is three vertex indices in winding order.
type Triangle [3]int

// Mesh is a slice-backed MeshBuilder.
//
// The zero value is an empty mesh ready to use.
type Mesh struct {
	vertices  []Vertex
	triangles []Triangle
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Vertex returns a copy of vertex i. It panics if i is out of range.
func (m *Mesh) Vertex(i int) Vertex {
	return m.vertices[i]
}

// AddVertex appends v and returns its index.
func (m *Mesh) AddVertex(v Vertex) int {
	m.vertices = append(m.vertices, v)
	return len(m.vertices) - 1
}

// SetVertex overwrites vertex i. It panics if i is out of range.
func (m *Mesh) SetVertex(i int, v Vertex) {
	m.vertices[i] = v
}

// AddTriangle appends the triangle (a, b, c).
// It panics if any index does not reference a current vertex.
func (m *Mesh) AddTriangle(a, b, c int) {
	n := len(m.vertices)
	for _, idx := range [3]int{a, b, c} {
		if idx < 0 || idx >= n {
			panic(fmt.Sprintf("mirror: triangle index %d out of range [0,%d)", idx, n))
		}
	}
	m.triangles = append(m.triangles, Triangle{a, b, c})
}

// Vertices returns the vertex slice. The slice aliases the mesh storage.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Triangles returns the triangle slice. The slice aliases the mesh storage.
func (m *Mesh) Triangles() []Triangle {
	return m.triangles
}

// Reset empties the mesh, keeping allocated capacity.
func (m *Mesh) Reset() {
	m.vertices = m.vertices[:0]
	m.triangles = m.triangles[:0]
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		vertices:  append([]Vertex(nil), m.vertices...),
		triangles: append([]Triangle(nil), m.triangles...),
	}
}

// UnitUV returns the texture rectangle covering the whole texture.
func UnitUV() Rect {
	return Rect{Max: Pt(1, 1)}
}

// NewQuad builds the quad a host emits for a simple image: vertices
// bottom-left, top-left, top-right, bottom-right and triangles (0,1,2),
// (0,2,3). uv maps the same corners into texture space.
func NewQuad(r Rect, uv Rect, c RGBA) *Mesh {
	m := &Mesh{
		vertices:  make([]Vertex, 0, 9),
		triangles: make([]Triangle, 0, 8),
	}
	corner := func(x, y, u, v float64) Vertex {
		return Vertex{
			Position: V3(x, y, 0),
			Normal:   V3(0, 0, -1),
			Tangent:  [4]float64{1, 0, 0, -1},
			Color:    c,
			UV0:      Pt(u, v),
		}
	}
	m.AddVertex(corner(r.Min.X, r.Min.Y, uv.Min.X, uv.Min.Y))
	m.AddVertex(corner(r.Min.X, r.Max.Y, uv.Min.X, uv.Max.Y))
	m.AddVertex(corner(r.Max.X, r.Max.Y, uv.Max.X, uv.Max.Y))
	m.AddVertex(corner(r.Max.X, r.Min.Y, uv.Max.X, uv.Min.Y))
	m.AddTriangle(0, 1, 2)
	m.AddTriangle(0, 2, 3)
	return m
}

// Bounds returns the bounding rectangle of the vertex positions.
// An empty mesh yields the zero Rect.
func (m *Mesh) Bounds() Rect {
	if len(m.vertices) == 0 {
		return Rect{}
	}
	p := m.vertices[0].Position.XY()
	b := Rect{Min: p, Max: p}
	for _, v := range m.vertices[1:] {
		b = NewRect(
			Pt(min(b.Min.X, v.Position.X), min(b.Min.Y, v.Position.Y)),
			Pt(max(b.Max.X, v.Position.X), max(b.Max.Y, v.Position.Y)),
		)
	}
	return b
}
