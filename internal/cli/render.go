package cli

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/mirror/internal/config"
	"github.com/gogpu/mirror/internal/raster"
)

// maxPreviewSide bounds each side of the written preview in pixels, after
// upscaling.
const maxPreviewSide = 8192

var errPreviewSize = errors.New("render: preview size out of range")

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // overrides the scene's output path
	scale  int    // overrides the scene's scale
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [scene.yaml]",
		Short: "Mirror a scene's image and write a PNG preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG path (default: scene output)")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "integer upscale factor (default: scene scale)")
	return cmd
}

func runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	scene, err := config.Load(path)
	if err != nil {
		return err
	}
	if opts.output != "" {
		scene.Output = opts.output
	}
	if cmd.Flags().Changed("scale") {
		scene.Scale = opts.scale
		if err := scene.Validate(); err != nil {
			return fmt.Errorf("render: --scale: %w", err)
		}
	}

	p, err := prepare(scene)
	if err != nil {
		return err
	}
	logger.Debug("mesh rebuilt", "mode", scene.Mode, "vertices", p.mesh.VertexCount(), "triangles", p.mesh.TriangleCount())

	img, err := renderPreview(p)
	if err != nil {
		return err
	}
	if err := writePNG(scene.Output, img); err != nil {
		return err
	}

	b := img.Bounds()
	logger.Info("wrote preview", "path", scene.Output, "width", b.Dx(), "height", b.Dy())
	return nil
}

// renderPreview rasterizes the mirrored mesh at one pixel per sprite pixel.
func renderPreview(p *prepared) (*image.RGBA, error) {
	r := p.element.rect
	w := int(math.Ceil(r.Width() * p.scene.PixelsPerUnit))
	h := int(math.Ceil(r.Height() * p.scene.PixelsPerUnit))
	scale := p.scene.Scale
	if w <= 0 || h <= 0 || w*scale > maxPreviewSide || h*scale > maxPreviewSide {
		return nil, fmt.Errorf("%w: %dx%d at scale %d", errPreviewSize, w, h, scale)
	}

	filter, err := p.scene.RasterFilter()
	if err != nil {
		return nil, err
	}

	var tex *raster.Texture
	if p.texture != nil {
		tex = raster.NewTexture(p.texture)
	}
	img := raster.Render(p.mesh, tex, r, w, h, raster.Options{Filter: filter})
	return raster.Upscale(img, scale), nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("render: create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: encode PNG: %w", err)
	}
	return f.Close()
}
