// Package gpu packs mirror meshes into GPU vertex and index buffers.
//
// The buffers and layout descriptors follow WebGPU conventions so a host
// pipeline built on gogpu/wgpu can upload and draw them directly.
package gpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/mirror"
)

// meshVertexStride is the size of one packed vertex:
// position (2 x f32), uv (2 x f32), color (4 x f32).
const meshVertexStride = 32

// maxMeshVertices is the largest vertex count addressable by uint16 indices.
const maxMeshVertices = math.MaxUint16 + 1

// ErrTooManyVertices is returned when a mesh cannot be indexed with uint16.
var ErrTooManyVertices = errors.New("gpu: mesh exceeds uint16 index range")

// MeshBuffers holds a mesh packed for upload.
type MeshBuffers struct {
	// Vertices is interleaved vertex data laid out per MeshVertexLayout.
	Vertices []byte

	// Indices is uint16 little-endian triangle-list indices, zero-padded to a
	// multiple of 4 bytes as WebGPU buffer writes require.
	Indices []byte

	// VertexCount is the number of packed vertices.
	VertexCount uint32

	// IndexCount is the number of indices to draw (3 per triangle), not
	// counting padding.
	IndexCount uint32
}

// MeshVertexLayout returns the vertex buffer layout for packed mesh vertices.
func MeshVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: meshVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // uv
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2}, // color
			},
		},
	}
}

// MeshPrimitiveState returns the primitive state for drawing packed meshes.
// Mirrored triangles flip winding, so culling is disabled.
func MeshPrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// BuildMeshBuffers packs m into vertex and index buffers.
func BuildMeshBuffers(m *mirror.Mesh) (MeshBuffers, error) {
	return BuildMeshBuffersReuse(m, MeshBuffers{})
}

// BuildMeshBuffersReuse packs m, reusing the backing arrays of prev when they
// are large enough. Hosts that rebuild every frame avoid reallocating.
func BuildMeshBuffersReuse(m *mirror.Mesh, prev MeshBuffers) (MeshBuffers, error) {
	n := m.VertexCount()
	if n > maxMeshVertices {
		return MeshBuffers{}, fmt.Errorf("%w: %d vertices", ErrTooManyVertices, n)
	}

	out := MeshBuffers{
		Vertices:    grow(prev.Vertices, n*meshVertexStride),
		VertexCount: uint32(n), //nolint:gosec // bounded by maxMeshVertices
	}
	off := 0
	for _, v := range m.Vertices() {
		writeMeshVertex(out.Vertices[off:off+meshVertexStride], v)
		off += meshVertexStride
	}

	tris := m.Triangles()
	indexCount := len(tris) * 3
	out.IndexCount = uint32(indexCount) //nolint:gosec // 3 * triangle count
	out.Indices = grow(prev.Indices, alignTo4(indexCount*2))
	off = 0
	for _, tri := range tris {
		for _, idx := range tri {
			binary.LittleEndian.PutUint16(out.Indices[off:off+2], uint16(idx)) //nolint:gosec // idx < VertexCount
			off += 2
		}
	}
	clear(out.Indices[off:])

	return out, nil
}

// writeMeshVertex writes a single vertex into buf.
func writeMeshVertex(buf []byte, v mirror.Vertex) {
	putF32(buf[0:4], v.Position.X)
	putF32(buf[4:8], v.Position.Y)
	putF32(buf[8:12], v.UV0.X)
	putF32(buf[12:16], v.UV0.Y)
	putF32(buf[16:20], v.Color.R)
	putF32(buf[20:24], v.Color.G)
	putF32(buf[24:28], v.Color.B)
	putF32(buf[28:32], v.Color.A)
}

func putF32(b []byte, f float64) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(f)))
}

// grow returns a slice of length n, reusing buf when it has capacity.
func grow(buf []byte, n int) []byte {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]byte, n)
}

func alignTo4(n int) int {
	return (n + 3) &^ 3
}
