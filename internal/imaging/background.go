package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultTolerance is the per-channel threshold below which a pixel counts as
// background. A pixel is background when R, G and B are all below it.
const DefaultTolerance = 30

// MaskBackground returns a copy of img in which every near-black pixel is
// fully transparent.
//
// Parameters:
//   - img: Source image of any color model.
//   - tolerance: Channel threshold (0-255). A pixel whose red, green and blue
//     components are all strictly below tolerance becomes (0,0,0,0).
//
// All other pixels keep their original color and alpha. The result is a new
// *image.NRGBA with bounds starting at (0,0); img is not modified.
func MaskBackground(img image.Image, tolerance uint8) *image.NRGBA {
	dst := imaging.Clone(img)

	for y := 0; y < dst.Rect.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+dst.Rect.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			if row[i] < tolerance && row[i+1] < tolerance && row[i+2] < tolerance {
				row[i], row[i+1], row[i+2], row[i+3] = 0, 0, 0, 0
			}
		}
	}

	return dst
}

// OpaqueBounds returns the smallest rectangle enclosing every pixel whose
// alpha is greater than zero.
//
// The second return value is false when the image has no such pixel, in which
// case the rectangle is empty.
func OpaqueBounds(img *image.NRGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[off+3] != 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
			off += 4
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// RemoveBackground makes near-black pixels transparent and crops the result
// to the remaining content.
//
// This is MaskBackground followed by TrimTransparent. When every pixel is
// classified as background there is nothing to crop to, and the fully
// transparent image is returned at its original size.
func RemoveBackground(img image.Image, tolerance uint8) *image.NRGBA {
	return TrimTransparent(MaskBackground(img, tolerance))
}
