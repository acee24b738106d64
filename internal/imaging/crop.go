package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// TrimTransparent crops img to OpaqueBounds.
//
// If img has no pixel with non-zero alpha it is returned unchanged. The
// cropped image is a new *image.NRGBA whose bounds start at (0,0).
func TrimTransparent(img *image.NRGBA) *image.NRGBA {
	r, ok := OpaqueBounds(img)
	if !ok {
		return img
	}
	if r == img.Bounds() && r.Min == (image.Point{}) {
		return img
	}
	return imaging.Crop(img, r)
}
