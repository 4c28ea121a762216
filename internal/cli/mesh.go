package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/mirror"
	"github.com/gogpu/mirror/internal/config"
	"github.com/gogpu/mirror/internal/gpu"
)

func newMeshCmd() *cobra.Command {
	var packed bool

	cmd := &cobra.Command{
		Use:   "mesh [scene.yaml]",
		Short: "Print the mirrored mesh of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := config.Load(args[0])
			if err != nil {
				return err
			}
			p, err := prepare(scene)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printMesh(out, p.mesh)
			if packed {
				return printBuffers(out, p.mesh)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&packed, "gpu", false, "also print packed GPU buffer sizes, layout and compiled shader size")
	return cmd
}

func printMesh(w io.Writer, m *mirror.Mesh) {
	_, _ = fmt.Fprintf(w, "vertices: %d\n", m.VertexCount())
	for i, v := range m.Vertices() {
		_, _ = fmt.Fprintf(w, "  %d: pos=(%g, %g) uv=(%g, %g)\n", i, v.Position.X, v.Position.Y, v.UV0.X, v.UV0.Y)
	}
	_, _ = fmt.Fprintf(w, "triangles: %d\n", m.TriangleCount())
	for _, t := range m.Triangles() {
		_, _ = fmt.Fprintf(w, "  (%d, %d, %d)\n", t[0], t[1], t[2])
	}
}

func printBuffers(w io.Writer, m *mirror.Mesh) error {
	bufs, err := gpu.BuildMeshBuffers(m)
	if err != nil {
		return err
	}
	layout := gpu.MeshVertexLayout()[0]
	_, _ = fmt.Fprintf(w, "vertex buffer: %d bytes, stride %d, %d attributes\n",
		len(bufs.Vertices), layout.ArrayStride, len(layout.Attributes))
	_, _ = fmt.Fprintf(w, "index buffer: %d bytes, %d indices (uint16)\n", len(bufs.Indices), bufs.IndexCount)

	spirv, err := gpu.CompileMeshShader()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "shader: %d bytes SPIR-V (%s, %s)\n",
		len(spirv)*4, gpu.MeshVertexEntryPoint, gpu.MeshFragmentEntryPoint)
	return nil
}
