// Package imaging provides the raster operations behind the icon pipeline.
//
// This package implements loading a source image, removing a near-black
// background, cropping to the remaining content, and compositing artwork onto
// a rounded-square canvas. All operations work with standard Go image.Image
// types and return *image.NRGBA results whose bounds start at (0,0).
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, Min is inclusive (top-left), Max is exclusive (bottom-right)
//
// # Color Representation
//
// Images are processed as non-premultiplied RGBA (image.NRGBA) with 8-bit
// channels. A pixel with alpha 0 is fully transparent; alpha 255 is fully
// opaque. Colors given in configuration are hex strings "#RRGGBB" or
// "#RRGGBBAA" and are parsed with ParseHexColor.
//
// # Error Handling
//
// Functions return errors only where input can be invalid:
//   - File I/O errors during image loading (missing files wrap ErrNotFound)
//   - Decoding errors for unsupported or corrupt files
//   - Encoding errors during image output
//
// Background removal and compositing cannot fail for a valid image.
package imaging
