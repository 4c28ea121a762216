package mirror

import (
	"errors"
	"fmt"
)

// Transform errors.
var (
	// ErrQuadTopology is returned when the mesh handed to the transform is
	// not the 4-vertex quad of a simple image.
	ErrQuadTopology = errors.New("mirror: mesh is not a simple quad")

	// ErrInvalidMode is returned for a Mode value outside the defined set.
	ErrInvalidMode = errors.New("mirror: invalid mode")
)

// TopologyError reports the vertex count found when a quad was expected.
type TopologyError struct {
	Vertices int
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("mirror: mesh is not a simple quad: have %d vertices, want %d", e.Vertices, quadVertices)
}

// Is reports whether target is ErrQuadTopology.
func (e *TopologyError) Is(target error) bool {
	return target == ErrQuadTopology
}
