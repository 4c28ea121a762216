package gpu

import (
	"fmt"
	"strings"
	"testing"
)

func TestMeshShaderSource(t *testing.T) {
	src := MeshShaderSource()
	if src == "" {
		t.Fatal("mesh shader source is empty")
	}
	for _, want := range []string{
		"fn " + MeshVertexEntryPoint,
		"fn " + MeshFragmentEntryPoint,
		"@location(0) position: vec2<f32>",
		"@location(1) uv: vec2<f32>",
		"@location(2) color: vec4<f32>",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("mesh shader missing %q", want)
		}
	}
}

// TestMeshShaderLocationsMatchLayout keeps the WGSL inputs and the packed
// vertex layout in step.
func TestMeshShaderLocationsMatchLayout(t *testing.T) {
	src := MeshShaderSource()
	names := []string{"position", "uv", "color"}
	for i, attr := range MeshVertexLayout()[0].Attributes {
		loc := fmt.Sprintf("@location(%d) %s", attr.ShaderLocation, names[i])
		if !strings.Contains(src, loc) {
			t.Errorf("attribute %d: shader missing %q", i, loc)
		}
	}
}

func TestCompileMeshShader(t *testing.T) {
	spirv, err := CompileMeshShader()
	if err != nil {
		if strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("CompileMeshShader() error = %v", err)
	}
	if len(spirv) == 0 {
		t.Fatal("SPIR-V output is empty")
	}
	// SPIR-V magic number.
	if spirv[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", spirv[0])
	}
}

func TestCompileSPIRV_Invalid(t *testing.T) {
	if _, err := compileSPIRV("fn broken( {"); err == nil {
		t.Error("compileSPIRV(invalid) error = nil")
	}
}
