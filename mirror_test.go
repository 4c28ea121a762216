package mirror

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

// squareQuad returns the quad (0,0),(0,10),(10,10),(10,0) and its rectangle.
func squareQuad() (*Mesh, Rect) {
	r := RectFromOrigin(0, 0, 10, 10)
	return NewQuad(r, UnitUV(), White), r
}

func positions(m *Mesh) []Point {
	out := make([]Point, m.VertexCount())
	for i := range out {
		out[i] = m.Vertex(i).Position.XY()
	}
	return out
}

func checkPositions(t *testing.T, m *Mesh, want []Point) {
	t.Helper()
	got := positions(m)
	if len(got) != len(want) {
		t.Fatalf("VertexCount() = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Approx(want[i], eps) {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func checkTriangles(t *testing.T, m *Mesh, want []Triangle) {
	t.Helper()
	got := m.Triangles()
	if len(got) != len(want) {
		t.Fatalf("TriangleCount() = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("triangle %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestApply_HorizontalScenario(t *testing.T) {
	m, r := squareQuad()

	if err := Apply(m, r, Horizontal); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	checkPositions(t, m, []Point{
		Pt(0, 0), Pt(0, 10), Pt(5, 10), Pt(5, 0),
		Pt(10, 0), Pt(10, 10),
	})
	checkTriangles(t, m, []Triangle{
		{0, 1, 2}, {0, 2, 3},
		{2, 4, 3}, {2, 5, 4},
	})
}

func TestApply_VerticalScenario(t *testing.T) {
	m, r := squareQuad()

	if err := Apply(m, r, Vertical); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	checkPositions(t, m, []Point{
		Pt(0, 0), Pt(0, 5), Pt(10, 5), Pt(10, 0),
		Pt(0, 10), Pt(10, 10),
	})
	checkTriangles(t, m, []Triangle{
		{0, 1, 2}, {0, 2, 3},
		{2, 1, 4}, {2, 4, 5},
	})
}

func TestApply_QuadrantScenario(t *testing.T) {
	m, r := squareQuad()

	if err := Apply(m, r, Quadrant); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	checkPositions(t, m, []Point{
		Pt(0, 0), Pt(0, 5), Pt(5, 5), Pt(5, 0),
		Pt(10, 0), Pt(10, 5),
		Pt(0, 10), Pt(5, 10), Pt(10, 10),
	})
	checkTriangles(t, m, []Triangle{
		{0, 1, 2}, {0, 2, 3},
		{2, 4, 3}, {2, 5, 4},
		{7, 1, 6}, {7, 2, 1}, {7, 5, 2}, {7, 8, 5},
	})
}

func TestApply_Counts(t *testing.T) {
	tests := []struct {
		mode      Mode
		vertices  int
		triangles int
	}{
		{Horizontal, 6, 4},
		{Vertical, 6, 4},
		{Quadrant, 9, 8},
	}

	rects := []Rect{
		RectFromOrigin(0, 0, 10, 10),
		RectFromOrigin(-50, -25, 100, 50),
		RectFromOrigin(3.5, 7.25, 1, 200),
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			for _, r := range rects {
				m := NewQuad(r, UnitUV(), White)
				if err := Apply(m, r, tt.mode); err != nil {
					t.Fatalf("Apply(%v) error = %v", r, err)
				}
				if m.VertexCount() != tt.vertices {
					t.Errorf("VertexCount() = %d, want %d", m.VertexCount(), tt.vertices)
				}
				if m.TriangleCount() != tt.triangles {
					t.Errorf("TriangleCount() = %d, want %d", m.TriangleCount(), tt.triangles)
				}
				for _, tri := range m.Triangles() {
					for _, idx := range tri {
						if idx < 0 || idx >= tt.vertices {
							t.Errorf("triangle %v references vertex %d, want < %d", tri, idx, tt.vertices)
						}
					}
				}
			}
		})
	}
}

func TestApply_FillsRect(t *testing.T) {
	r := RectFromOrigin(-20, 4, 40, 12)
	for _, mode := range []Mode{Horizontal, Vertical, Quadrant} {
		t.Run(mode.String(), func(t *testing.T) {
			m := NewQuad(r, UnitUV(), White)
			if err := Apply(m, r, mode); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			b := m.Bounds()
			if !b.Min.Approx(r.Min, eps) || !b.Max.Approx(r.Max, eps) {
				t.Errorf("Bounds() = %v, want %v", b, r)
			}
		})
	}
}

func TestApply_PreservesAttributes(t *testing.T) {
	m, r := squareQuad()
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		v.Position.Z = float64(i + 1)
		v.Color = RGBA{R: float64(i) / 4, G: 0.5, B: 0.25, A: 1}
		v.UV1 = Pt(float64(i), -float64(i))
		m.SetVertex(i, v)
	}
	orig := m.Clone()

	if err := Apply(m, r, Quadrant); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// Source vertex of every appended vertex.
	sources := map[int]int{4: 0, 5: 1, 6: 0, 7: 3, 8: 0}
	for dst, src := range sources {
		got, want := m.Vertex(dst), orig.Vertex(src)
		if got.Color != want.Color || got.UV0 != want.UV0 || got.UV1 != want.UV1 {
			t.Errorf("vertex %d attributes = %+v, want those of vertex %d %+v", dst, got, src, want)
		}
		if got.Position.Z != want.Position.Z {
			t.Errorf("vertex %d Z = %v, want %v", dst, got.Position.Z, want.Position.Z)
		}
		if got.Normal != want.Normal || got.Tangent != want.Tangent {
			t.Errorf("vertex %d normal/tangent changed", dst)
		}
	}
	for i := 0; i < quadVertices; i++ {
		if got, want := m.Vertex(i).UV0, orig.Vertex(i).UV0; got != want {
			t.Errorf("vertex %d UV0 = %v, want %v", i, got, want)
		}
	}
}

func TestApply_TopologyError(t *testing.T) {
	tests := []struct {
		name     string
		vertices int
	}{
		{"empty", 0},
		{"triangle", 3},
		{"already mirrored", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{}
			for i := 0; i < tt.vertices; i++ {
				m.AddVertex(Vertex{Position: V3(float64(i), float64(i), 0)})
			}
			before := m.Clone()

			err := Apply(m, RectFromOrigin(0, 0, 10, 10), Horizontal)
			if !errors.Is(err, ErrQuadTopology) {
				t.Fatalf("Apply() error = %v, want ErrQuadTopology", err)
			}
			var te *TopologyError
			if !errors.As(err, &te) || te.Vertices != tt.vertices {
				t.Errorf("TopologyError = %+v, want Vertices=%d", te, tt.vertices)
			}
			checkPositions(t, m, positions(before))
		})
	}
}

func TestApply_InvalidMode(t *testing.T) {
	m, r := squareQuad()
	if err := Apply(m, r, Mode(42)); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Apply(Mode(42)) error = %v, want ErrInvalidMode", err)
	}
	if m.VertexCount() != quadVertices {
		t.Errorf("VertexCount() = %d, want %d", m.VertexCount(), quadVertices)
	}
}

func TestShrink_NeverExpands(t *testing.T) {
	rects := []Rect{
		RectFromOrigin(0, 0, 10, 10),
		RectFromOrigin(-7, 3, 21, 5),
		RectFromOrigin(100, -100, 0.5, 300),
	}

	between := func(v, lo, hi float64) bool {
		if lo > hi {
			lo, hi = hi, lo
		}
		return v >= lo-eps && v <= hi+eps
	}

	for _, mode := range []Mode{Horizontal, Vertical, Quadrant} {
		for _, r := range rects {
			m := NewQuad(r, UnitUV(), White)
			orig := positions(m)

			Shrink(m, r, mode)

			for i, p := range positions(m) {
				if !between(p.X, r.Min.X, orig[i].X) {
					t.Errorf("%v %v: vertex %d x = %v, want in [%v, %v]", mode, r, i, p.X, r.Min.X, orig[i].X)
				}
				if !between(p.Y, r.Min.Y, orig[i].Y) {
					t.Errorf("%v %v: vertex %d y = %v, want in [%v, %v]", mode, r, i, p.Y, r.Min.Y, orig[i].Y)
				}
				if !mode.MirrorsX() && p.X != orig[i].X {
					t.Errorf("%v: vertex %d x changed to %v", mode, i, p.X)
				}
				if !mode.MirrorsY() && p.Y != orig[i].Y {
					t.Errorf("%v: vertex %d y changed to %v", mode, i, p.Y)
				}
			}
		}
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
		c    float64
		want Point
	}{
		{"x", AxisX, 10, Pt(7, 4)},
		{"y", AxisY, 10, Pt(3, 6)},
		{"x negative constant", AxisX, -2, Pt(-5, 4)},
		{"y zero constant", AxisY, 0, Pt(3, -4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{}
			m.AddVertex(Vertex{Position: V3(3, 4, 1), Color: White})

			idx := Reflect(m, 0, tt.axis, tt.c)

			if idx != 1 {
				t.Errorf("Reflect() = %d, want 1", idx)
			}
			if got := m.Vertex(idx).Position.XY(); !got.Approx(tt.want, eps) {
				t.Errorf("reflected = %v, want %v", got, tt.want)
			}
			if got := m.Vertex(0).Position; got != V3(3, 4, 1) {
				t.Errorf("source vertex = %v, want unchanged", got)
			}
		})
	}
}

func TestReflect_Involution(t *testing.T) {
	values := []float64{0, 1, -3.25, 1e6, 0.1}
	constants := []float64{0, 10, -7.5, 123.456}

	for _, axis := range []Axis{AxisX, AxisY} {
		for _, x := range values {
			for _, c := range constants {
				m := &Mesh{}
				m.AddVertex(Vertex{Position: axis.Set(Vec3{}, x)})
				once := Reflect(m, 0, axis, c)
				twice := Reflect(m, once, axis, c)
				tol := eps * max(1, math.Abs(x), math.Abs(c))
				if got := axis.Get(m.Vertex(twice).Position); math.Abs(got-x) > tol {
					t.Errorf("reflect(%v, reflect(%v, %v)) on %v = %v, want %v", c, c, x, axis, got, x)
				}
			}
		}
	}
}

func TestReflect_ReturnsSequentialIndices(t *testing.T) {
	m, _ := squareQuad()
	for want := 4; want < 10; want++ {
		if got := Reflect(m, 0, AxisX, 0); got != want {
			t.Fatalf("Reflect() = %d, want %d", got, want)
		}
	}
}

func BenchmarkApply_Quadrant(b *testing.B) {
	r := RectFromOrigin(0, 0, 64, 64)
	m := NewQuad(r, UnitUV(), White)
	src := m.Clone()
	b.ReportAllocs()
	for b.Loop() {
		m.Reset()
		for _, v := range src.Vertices() {
			m.AddVertex(v)
		}
		for _, tri := range src.Triangles() {
			m.AddTriangle(tri[0], tri[1], tri[2])
		}
		_ = Apply(m, r, Quadrant)
	}
}
