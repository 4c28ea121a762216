// Package mirror mirrors the quad of a UI image element by extending its mesh.
//
// # Overview
//
// A host UI system renders a "simple" image as a quad: 4 vertices and
// 2 triangles. mirror rewrites that quad in place so the image fills one half
// (or one quarter) of its layout rectangle, then appends reflected vertices and
// triangles that fill the rest with a mirrored copy:
//
//   - [Horizontal]: 6 vertices, 4 triangles, mirrored left/right.
//   - [Vertical]: 6 vertices, 4 triangles, mirrored bottom/top.
//   - [Quadrant]: 9 vertices, 8 triangles, a 2x2 grid of mirrored copies.
//
// Texture coordinates, colors and every other vertex attribute are copied
// from the source vertex, so the texture is mirrored without remapping UVs.
//
// # Quick Start
//
//	mesh := mirror.NewQuad(rect, mirror.UnitUV(), mirror.White)
//	if err := mirror.Apply(mesh, rect, mirror.Quadrant); err != nil {
//	    return err
//	}
//
// Hosts with a component lifecycle use [Effect], which gates the transform on
// the element's active state and render type:
//
//	fx := mirror.NewEffect(mirror.Horizontal)
//	err := fx.ModifyMesh(builder, graphic)
//
// # Coordinate System
//
// Mesh space is y-up, as in the host layout system:
//   - Rect.Min is the bottom-left corner
//   - the simple quad is wound bottom-left, top-left, top-right, bottom-right
//
// The shrink stage anchors the source image at Rect.Min on each mirrored axis.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package mirror

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
