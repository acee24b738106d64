// Package iconset exports a square image as a macOS icon container (.icns).
//
// The export renders the image at every size macOS expects (16, 32, 128, 256
// and 512 points, each at 1x and 2x density) into a staging ".iconset"
// directory, hands that directory to a Packer, and removes it afterwards.
//
// Two packers are provided:
//   - IconutilPacker runs Apple's iconutil tool and only works on macOS.
//   - NativePacker writes the ICNS container itself and works anywhere.
//
// NewPacker("auto") picks iconutil when it is on PATH and the native writer
// otherwise.
package iconset
