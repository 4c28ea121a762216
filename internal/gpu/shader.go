package gpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
)

// meshShaderSource draws packed mirror meshes. Entry points are vs_main and
// fs_main; vertex inputs follow MeshVertexLayout.
//
//go:embed shaders/mesh.wgsl
var meshShaderSource string

// Shader entry points in meshShaderSource.
const (
	MeshVertexEntryPoint   = "vs_main"
	MeshFragmentEntryPoint = "fs_main"
)

// MeshShaderSource returns the WGSL source of the mesh shader.
func MeshShaderSource() string {
	return meshShaderSource
}

// CompileMeshShader compiles the mesh shader to SPIR-V words ready for a
// host's shader module descriptor.
func CompileMeshShader() ([]uint32, error) {
	return compileSPIRV(meshShaderSource)
}

// compileSPIRV compiles WGSL source to a SPIR-V word slice.
func compileSPIRV(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return words, nil
}
