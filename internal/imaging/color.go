package imaging

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses a hex color string like "#14141E" or "#00000080".
//
// The leading '#' is optional. Six-digit colors are fully opaque; eight-digit
// colors carry their alpha in the last byte.
//
// Returns an error for empty strings, wrong lengths, and non-hex digits.
func ParseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 6:
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		return color.NRGBA{
			R: uint8(val >> 24),
			G: uint8(val >> 16),
			B: uint8(val >> 8),
			A: uint8(val),
		}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length %d", len(hex))
	}
}

// BlendRGB linearly interpolates between from and to in RGB space.
//
// t is clamped to [0,1]; t=0 yields from and t=1 yields to. Channels are
// truncated, not rounded. The result is fully opaque.
func BlendRGB(from, to color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	a, _ := colorful.MakeColor(opaque(from))
	b, _ := colorful.MakeColor(opaque(to))
	c := a.BlendRgb(b, t)
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}

// channel converts a [0,1] component to 8 bits, truncating toward zero.
func channel(v float64) uint8 {
	v = v*255 + 1e-6
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// opaque drops alpha so colorful.MakeColor never sees a transparent color.
func opaque(c color.NRGBA) color.NRGBA {
	c.A = 255
	return c
}
