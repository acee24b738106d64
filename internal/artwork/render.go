package artwork

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	iconimg "github.com/ironsheep/appicon-tools/internal/imaging"
)

// Options describes the synthesized icon. Metrics are at the 1024px
// reference size.
type Options struct {
	Size         int
	CornerRadius float64

	Top    color.NRGBA // Gradient color of the first row
	Bottom color.NRGBA // Gradient color approached by the last row

	Glyph        string
	GlyphFont    string
	GlyphSize    float64
	GlyphLift    float64 // Pixels the glyph sits above vertical center
	ShadowOffset float64
	ShadowColor  color.NRGBA
	ShadowBlur   float64 // Gaussian radius; 0 draws a crisp shadow

	Badge        string
	BadgeFont    string
	BadgeSize    float64
	BadgeTop     float64 // Distance from the bottom edge to the badge top
	GlowRadius   int
	GlowStep     int
	GlowStrength float64

	// Logf receives font substitution notices. May be nil.
	Logf func(format string, args ...any)
}

// DefaultOptions returns the brain-and-dollar icon: a dark blue to purple
// gradient with a 600pt emoji and a 120pt "$" badge.
func DefaultOptions() Options {
	return Options{
		Size:         1024,
		CornerRadius: 180,
		Top:          color.NRGBA{R: 30, G: 40, B: 80, A: 255},
		Bottom:       color.NRGBA{R: 60, G: 30, B: 120, A: 255},
		Glyph:        "🧠",
		GlyphFont:    "/System/Library/Fonts/Apple Color Emoji.ttc",
		GlyphSize:    600,
		GlyphLift:    50,
		ShadowOffset: 20,
		ShadowColor:  color.NRGBA{R: 0, G: 0, B: 0, A: 128},
		Badge:        "$",
		BadgeFont:    "/System/Library/Fonts/Helvetica.ttc",
		BadgeSize:    120,
		BadgeTop:     300,
		GlowRadius:   10,
		GlowStep:     2,
		GlowStrength: 0.3,
	}
}

func (o Options) scale(v float64) float64 {
	return v * float64(o.Size) / iconimg.ReferenceCanvasSize
}

func (o Options) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}

// Gradient returns a size×size opaque image whose row y has the color
// blend(top, bottom, y/size).
func Gradient(size int, top, bottom color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		c := iconimg.BlendRGB(top, bottom, float64(y)/float64(size))
		row := img.Pix[y*img.Stride : y*img.Stride+size*4]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return img
}

// GlowPass is one ring of the badge glow: the badge is drawn shifted by
// Offset pixels in each of the four directions with the given alpha.
type GlowPass struct {
	Offset int
	Alpha  uint8
}

// GlowPasses lists the glow rings from the outermost inward. For radius 10,
// step 2 and strength 0.3 the offsets are 10, 8, 6, 4, 2 with alpha
// int(255*(1-offset/radius)*strength).
func GlowPasses(radius, step int, strength float64) []GlowPass {
	if radius <= 0 || step <= 0 {
		return nil
	}
	passes := make([]GlowPass, 0, radius/step+1)
	for off := radius; off > 0; off -= step {
		a := 255 * (1 - float64(off)/float64(radius)) * strength
		passes = append(passes, GlowPass{Offset: off, Alpha: uint8(a)})
	}
	return passes
}

// Render paints the synthesized icon.
//
// The result is an Options.Size square *image.NRGBA whose alpha is the
// rounded mask: glyphs are clipped to it, so corners stay fully transparent.
func Render(opts Options) *image.NRGBA {
	size := opts.Size
	mask := iconimg.RoundedMask(size, opts.scale(opts.CornerRadius))

	base := Gradient(size, opts.Top, opts.Bottom)
	iconimg.ApplyMask(base, mask)

	dc := gg.NewContextForImage(base)
	if err := dc.SetMask(mask); err != nil {
		opts.logf("mask not applied: %v", err)
	}

	if opts.Glyph != "" {
		face := opts.face(opts.GlyphFont, opts.scale(opts.GlyphSize))
		drawGlyph(dc, opts, face)
	}
	if opts.Badge != "" {
		face := opts.face(opts.BadgeFont, opts.scale(opts.BadgeSize))
		drawBadge(dc, opts, face)
	}

	return imaging.Clone(dc.Image())
}

func (o Options) face(path string, points float64) font.Face {
	face, err := LoadFace(path, points)
	if err != nil {
		o.logf("font fallback: %v", err)
	}
	return face
}

// drawGlyph draws the main glyph centered horizontally and lifted above the
// vertical center, with its drop shadow underneath.
func drawGlyph(dc *gg.Context, opts Options, face font.Face) {
	size := float64(opts.Size)
	dc.SetFontFace(face)
	w, h := dc.MeasureString(opts.Glyph)
	x := (size - w) / 2
	top := (size-h)/2 - opts.scale(opts.GlyphLift)
	off := opts.scale(opts.ShadowOffset)

	if opts.ShadowBlur > 0 {
		shadow := gg.NewContext(opts.Size, opts.Size)
		shadow.SetFontFace(face)
		shadow.SetColor(opts.ShadowColor)
		shadow.DrawStringAnchored(opts.Glyph, x+off, top+off, 0, 1)
		dc.DrawImage(blur.Gaussian(shadow.Image(), opts.scale(opts.ShadowBlur)), 0, 0)
	} else {
		dc.SetColor(opts.ShadowColor)
		dc.DrawStringAnchored(opts.Glyph, x+off, top+off, 0, 1)
	}

	dc.SetColor(color.White)
	dc.DrawStringAnchored(opts.Glyph, x, top, 0, 1)
}

// drawBadge draws the badge glyph near the bottom edge with a four-way glow.
func drawBadge(dc *gg.Context, opts Options, face font.Face) {
	size := float64(opts.Size)
	dc.SetFontFace(face)
	w, _ := dc.MeasureString(opts.Badge)
	x := (size - w) / 2
	top := size - opts.scale(opts.BadgeTop)

	for _, p := range GlowPasses(opts.GlowRadius, opts.GlowStep, opts.GlowStrength) {
		if p.Alpha == 0 {
			continue
		}
		d := opts.scale(float64(p.Offset))
		dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: p.Alpha})
		dc.DrawStringAnchored(opts.Badge, x-d, top, 0, 1)
		dc.DrawStringAnchored(opts.Badge, x+d, top, 0, 1)
		dc.DrawStringAnchored(opts.Badge, x, top-d, 0, 1)
		dc.DrawStringAnchored(opts.Badge, x, top+d, 0, 1)
	}

	dc.SetColor(color.White)
	dc.DrawStringAnchored(opts.Badge, x, top, 0, 1)
}
