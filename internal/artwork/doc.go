// Package artwork synthesizes icon artwork without a source image.
//
// Render paints a vertical two-color gradient, clips it to the rounded icon
// square, and draws two glyphs on top: a large centered glyph with a drop
// shadow and a small badge glyph near the bottom surrounded by a glow.
//
// # Fonts
//
// Each glyph names a font file. When the file cannot be loaded (missing, a
// collection format the parser does not read, or a color-bitmap font) the
// built-in Go Regular face is used at the same size, and as a last resort the
// fixed basicfont face. Substitution never fails the render.
//
// # Sizes
//
// All metrics in Options (font sizes, offsets, corner radius) are given at a
// 1024px reference size and scale linearly with Options.Size.
package artwork
