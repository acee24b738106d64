package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// ReferenceCanvasSize is the canvas side at which CornerRadius is specified.
const ReferenceCanvasSize = 1024

// ComposeOptions controls how artwork is placed on the icon canvas.
type ComposeOptions struct {
	// CanvasSize is the side length of the square output in pixels.
	CanvasSize int

	// Coverage is the largest fraction of the canvas (per dimension) the
	// artwork may occupy, in (0,1].
	Coverage float64

	// CornerRadius is the rounded-rectangle radius at ReferenceCanvasSize.
	// It is scaled proportionally for other canvas sizes.
	CornerRadius float64

	// Background is the color of the rounded tile behind the artwork.
	Background color.NRGBA
}

// DefaultComposeOptions returns the options used for macOS app icons:
// a 1024px canvas, 90% coverage, a 180px corner radius and a dark
// rgb(20,20,30) tile.
func DefaultComposeOptions() ComposeOptions {
	return ComposeOptions{
		CanvasSize:   1024,
		Coverage:     0.9,
		CornerRadius: 180,
		Background:   color.NRGBA{R: 20, G: 20, B: 30, A: 255},
	}
}

// ScaledRadius returns CornerRadius adjusted to CanvasSize.
func (o ComposeOptions) ScaledRadius() float64 {
	return o.CornerRadius * float64(o.CanvasSize) / ReferenceCanvasSize
}

// Layout describes where resized artwork lands on the canvas.
type Layout struct {
	Scale  float64 // Uniform scale factor applied to the artwork
	Width  int     // Resized artwork width in pixels
	Height int     // Resized artwork height in pixels
	X      int     // Left offset on the canvas
	Y      int     // Top offset on the canvas
}

// FitLayout computes the uniform scale, resized dimensions and centering
// offsets for a width×height image on a square canvas.
//
// The scale is min(canvas*coverage/width, canvas*coverage/height), so the
// artwork keeps its aspect ratio and fills at most coverage of either
// dimension. Resized dimensions are rounded to the nearest pixel (never
// below 1) and offsets use integer division.
//
// # Example
//
// A 2000×1000 image on a 1024 canvas at 0.9 coverage gets scale 0.4608,
// is resized to 922×461 and placed at (51, 281).
func FitLayout(width, height, canvas int, coverage float64) Layout {
	target := float64(canvas) * coverage
	scale := math.Min(target/float64(width), target/float64(height))

	w := int(math.Round(float64(width) * scale))
	h := int(math.Round(float64(height) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return Layout{
		Scale:  scale,
		Width:  w,
		Height: h,
		X:      (canvas - w) / 2,
		Y:      (canvas - h) / 2,
	}
}

// RoundedMask returns an anti-aliased alpha mask of a size×size rounded
// rectangle with the given corner radius. Inside pixels are 255, corners
// outside the arc are 0.
func RoundedMask(size int, radius float64) *image.Alpha {
	dc := gg.NewContext(size, size)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), radius)
	dc.SetRGB(1, 1, 1)
	dc.Fill()
	return dc.AsMask()
}

// ApplyMask replaces the alpha channel of img with mask, the way a tile is
// clipped to the icon shape. img and mask must share the same bounds origin
// at (0,0); pixels outside mask become transparent.
func ApplyMask(img *image.NRGBA, mask *image.Alpha) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[off+3] = mask.AlphaAt(x, y).A
			off += 4
		}
	}
}

// BackgroundTile returns a size×size tile of c clipped to the rounded mask.
func BackgroundTile(size int, radius float64, c color.NRGBA) *image.NRGBA {
	tile := imaging.New(size, size, c)
	ApplyMask(tile, RoundedMask(size, radius))
	return tile
}

// Compose scales artwork to fit the canvas, centers it, and alpha-composites
// it over the rounded background tile.
//
// Parameters:
//   - artwork: Image of any size; usually the output of RemoveBackground.
//   - opts: Canvas size, coverage, corner radius and tile color.
//
// Returns a new CanvasSize×CanvasSize *image.NRGBA. Resizing uses the Lanczos
// filter.
func Compose(artwork image.Image, opts ComposeOptions) *image.NRGBA {
	b := artwork.Bounds()
	layout := FitLayout(b.Dx(), b.Dy(), opts.CanvasSize, opts.Coverage)

	resized := imaging.Resize(artwork, layout.Width, layout.Height, imaging.Lanczos)
	tile := BackgroundTile(opts.CanvasSize, opts.ScaledRadius(), opts.Background)

	return imaging.Overlay(tile, resized, image.Pt(layout.X, layout.Y), 1.0)
}
