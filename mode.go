package mirror

import (
	"fmt"
	"strings"
)

// Mode selects how an image is mirrored.
type Mode uint8

const (
	// Horizontal mirrors the image left/right. The source fills the left half.
	Horizontal Mode = iota

	// Vertical mirrors the image bottom/top. The source fills the bottom half.
	Vertical

	// Quadrant mirrors the image on both axes. The source fills the
	// bottom-left quarter.
	Quadrant
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Quadrant:
		return "quadrant"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m <= Quadrant
}

// MirrorsX reports whether m reflects across a vertical line.
func (m Mode) MirrorsX() bool {
	return m == Horizontal || m == Quadrant
}

// MirrorsY reports whether m reflects across a horizontal line.
func (m Mode) MirrorsY() bool {
	return m == Vertical || m == Quadrant
}

// ParseMode parses a mode name. Matching is case-insensitive; "h", "v",
// "q" and "quarter" are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	case "quadrant", "quarter", "q":
		return Quadrant, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ImageType is the host's rendering mode for an image element.
// Only TypeSimple renders a plain quad that can be mirrored.
type ImageType uint8

const (
	// TypeSimple renders the whole sprite as one quad.
	TypeSimple ImageType = iota
	// TypeSliced renders a 9-slice mesh.
	TypeSliced
	// TypeTiled repeats the sprite.
	TypeTiled
	// TypeFilled renders a partial radial or linear fill.
	TypeFilled
)

// String returns a string representation of the image type.
func (t ImageType) String() string {
	switch t {
	case TypeSimple:
		return "simple"
	case TypeSliced:
		return "sliced"
	case TypeTiled:
		return "tiled"
	case TypeFilled:
		return "filled"
	default:
		return fmt.Sprintf("ImageType(%d)", uint8(t))
	}
}

// ParseImageType parses an image type name, case-insensitively.
func ParseImageType(s string) (ImageType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple", "":
		return TypeSimple, nil
	case "sliced":
		return TypeSliced, nil
	case "tiled":
		return TypeTiled, nil
	case "filled":
		return TypeFilled, nil
	default:
		return 0, fmt.Errorf("mirror: unknown image type %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ImageType) UnmarshalText(text []byte) error {
	parsed, err := ParseImageType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
