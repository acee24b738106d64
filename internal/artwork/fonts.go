package artwork

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFace loads the font at path at the given point size.
//
// On failure it substitutes the embedded Go Regular face at the same size, or
// basicfont.Face7x13 if that cannot be parsed. The returned error is non-nil
// whenever a substitution happened; it describes why, and the face is still
// usable.
func LoadFace(path string, points float64) (font.Face, error) {
	var loadErr error
	if path != "" {
		face, err := gg.LoadFontFace(path, points)
		if err == nil {
			return face, nil
		}
		loadErr = fmt.Errorf("load font %s: %w", path, err)
	} else {
		loadErr = fmt.Errorf("no font configured")
	}

	face, err := defaultFace(points)
	if err != nil {
		return basicfont.Face7x13, fmt.Errorf("%v; default font: %w", loadErr, err)
	}
	return face, loadErr
}

func defaultFace(points float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}
