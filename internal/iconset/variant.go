package iconset

import (
	"fmt"
	"regexp"
	"strconv"
)

// Variant is one rendition of the icon: a nominal size in points and a
// display density multiplier.
type Variant struct {
	Size  int // Nominal size in points
	Scale int // Density multiplier: 1 for standard, 2 for Retina
}

// Variants lists every rendition an .iconset holds, in the order they are
// written.
var Variants = []Variant{
	{16, 1}, {16, 2},
	{32, 1}, {32, 2},
	{128, 1}, {128, 2},
	{256, 1}, {256, 2},
	{512, 1}, {512, 2},
}

// Pixels returns the side length of the rendered PNG.
func (v Variant) Pixels() int {
	return v.Size * v.Scale
}

// Filename returns the iconset file name, e.g. "icon_16x16.png" or
// "icon_16x16@2x.png".
func (v Variant) Filename() string {
	suffix := ""
	if v.Scale > 1 {
		suffix = fmt.Sprintf("@%dx", v.Scale)
	}
	return fmt.Sprintf("icon_%dx%d%s.png", v.Size, v.Size, suffix)
}

func (v Variant) String() string {
	return fmt.Sprintf("%dx%d@%dx", v.Size, v.Size, v.Scale)
}

var filenamePattern = regexp.MustCompile(`^icon_(\d+)x(\d+)(?:@(\d+)x)?\.png$`)

// ParseFilename is the inverse of Filename. It returns false for names that
// are not iconset renditions.
func ParseFilename(name string) (Variant, bool) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil || m[1] != m[2] {
		return Variant{}, false
	}
	size, err := strconv.Atoi(m[1])
	if err != nil {
		return Variant{}, false
	}
	scale := 1
	if m[3] != "" {
		if scale, err = strconv.Atoi(m[3]); err != nil || scale < 2 {
			return Variant{}, false
		}
	}
	return Variant{Size: size, Scale: scale}, true
}

// Set maps each rendition to the PNG written for it. It is only valid while
// the staging directory exists.
type Set map[Variant]string
