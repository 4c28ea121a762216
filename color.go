package mirror

import (
	"errors"
	"fmt"
)

// ErrInvalidColor is returned by ParseHex for malformed color strings.
var ErrInvalidColor = errors.New("mirror: invalid hex color")

// RGBA represents a vertex color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Malformed strings yield opaque black; use ParseHex to detect
// them.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return RGB(0, 0, 0)
	}
	return c
}

// ParseHex parses a hex color string in the formats accepted by Hex.
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var digits int
	switch len(s) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	ch := [4]uint32{0, 0, 0, 255}
	for i := 0; i*digits < len(s); i++ {
		v, ok := parseHex(s[i*digits : (i+1)*digits])
		if !ok {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		if digits == 1 {
			v *= 17
		}
		ch[i] = v
	}

	return RGBA{
		R: float64(ch[0]) / 255,
		G: float64(ch[1]) / 255,
		B: float64(ch[2]) / 255,
		A: float64(ch[3]) / 255,
	}, nil
}

// parseHex parses one or two hex digits.
func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}

// White is the default vertex tint.
var White = RGB(1, 1, 1)
