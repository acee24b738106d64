package artwork

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	iconimg "github.com/ironsheep/appicon-tools/internal/imaging"
)

// testOptions returns the default icon at a quarter of the reference size
// with fonts that do not exist, so the built-in face is always used.
func testOptions() Options {
	opts := DefaultOptions()
	opts.Size = 256
	opts.GlyphFont = "/nonexistent/emoji.ttc"
	opts.BadgeFont = "/nonexistent/helvetica.ttc"
	return opts
}

func near(a, b color.NRGBA, tol int) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= tol && d(a.G, b.G) <= tol && d(a.B, b.B) <= tol && d(a.A, b.A) <= tol
}

func TestGlowPasses(t *testing.T) {
	got := GlowPasses(10, 2, 0.3)
	want := []GlowPass{{10, 0}, {8, 15}, {6, 30}, {4, 45}, {2, 61}}

	if len(got) != len(want) {
		t.Fatalf("passes: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pass %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGlowPasses_Disabled(t *testing.T) {
	tests := []struct {
		radius, step int
	}{
		{0, 2},
		{10, 0},
		{-1, 1},
	}

	for _, tt := range tests {
		if got := GlowPasses(tt.radius, tt.step, 0.3); len(got) != 0 {
			t.Errorf("GlowPasses(%d, %d): got %v, want none", tt.radius, tt.step, got)
		}
	}
}

func TestGradient(t *testing.T) {
	top := color.NRGBA{30, 40, 80, 255}
	bottom := color.NRGBA{60, 30, 120, 255}
	img := Gradient(100, top, bottom)

	if img.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Fatalf("bounds: got %v", img.Bounds())
	}
	if px := img.NRGBAAt(50, 0); px != top {
		t.Errorf("first row: got %v, want %v", px, top)
	}
	if px := img.NRGBAAt(0, 50); !near(px, color.NRGBA{45, 35, 100, 255}, 1) {
		t.Errorf("middle row: got %v, want ~{45 35 100 255}", px)
	}
	if px := img.NRGBAAt(99, 99); !near(px, bottom, 1) {
		t.Errorf("last row: got %v, want ~%v", px, bottom)
	}
	if img.NRGBAAt(0, 10) != img.NRGBAAt(99, 10) {
		t.Error("gradient should be constant along a row")
	}
}

func TestRender(t *testing.T) {
	opts := testOptions()
	img := Render(opts)

	if img.Bounds() != image.Rect(0, 0, 256, 256) {
		t.Fatalf("bounds: got %v, want 256x256", img.Bounds())
	}

	for _, p := range []image.Point{{0, 0}, {255, 0}, {0, 255}, {255, 255}} {
		if a := img.NRGBAAt(p.X, p.Y).A; a != 0 {
			t.Errorf("corner %v alpha: got %d, want 0", p, a)
		}
	}

	tests := []struct {
		name string
		x, y int
	}{
		{"top edge", 128, 3},
		{"left edge", 5, 128},
		{"bottom edge", 128, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := iconimg.BlendRGB(opts.Top, opts.Bottom, float64(tt.y)/256)
			if px := img.NRGBAAt(tt.x, tt.y); !near(px, want, 2) {
				t.Errorf("pixel (%d,%d): got %v, want gradient %v", tt.x, tt.y, px, want)
			}
		})
	}
}

func TestRender_DrawsBadge(t *testing.T) {
	opts := testOptions()
	opts.Glyph = ""
	img := Render(opts)

	// Badge top is 300px above the bottom at 1024, i.e. 75px at 256.
	brightest := uint8(0)
	for y := 181; y < 230; y++ {
		for x := 96; x < 160; x++ {
			if r := img.NRGBAAt(x, y).R; r > brightest {
				brightest = r
			}
		}
	}
	if brightest < 150 {
		t.Errorf("badge area brightest red: got %d, want a white glyph", brightest)
	}
}

func TestRender_NoGlyphs(t *testing.T) {
	opts := testOptions()
	opts.Glyph = ""
	opts.Badge = ""
	img := Render(opts)

	want := iconimg.BlendRGB(opts.Top, opts.Bottom, 128.0/256)
	if px := img.NRGBAAt(128, 128); !near(px, want, 1) {
		t.Errorf("center: got %v, want plain gradient %v", px, want)
	}
}

func TestRender_BlurredShadow(t *testing.T) {
	opts := testOptions()
	opts.ShadowBlur = 8
	img := Render(opts)

	if img.Bounds().Dx() != 256 {
		t.Fatalf("bounds: got %v", img.Bounds())
	}
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("blurred shadow leaked into the corner: alpha %d", a)
	}
}

func TestRender_LogsFontFallback(t *testing.T) {
	opts := testOptions()
	var messages []string
	opts.Logf = func(format string, args ...any) {
		messages = append(messages, fmt.Sprintf(format, args...))
	}

	Render(opts)

	if len(messages) != 2 {
		t.Errorf("fallback notices: got %d (%v), want 2", len(messages), messages)
	}
}

func TestLoadFace_Fallback(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", "/nonexistent/font.ttf"},
		{"no path", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, err := LoadFace(tt.path, 24)
			if err == nil {
				t.Error("LoadFace should report the substitution")
			}
			if face == nil {
				t.Fatal("LoadFace returned nil face")
			}
			if face.Metrics().Height <= 0 {
				t.Error("fallback face has no height")
			}
		})
	}
}

func TestRender_DrawsGlyphWithShadow(t *testing.T) {
	opts := testOptions()
	opts.Glyph = "M"
	opts.Badge = ""
	img := Render(opts)

	off := int(opts.scale(opts.ShadowOffset))
	sum := func(c color.NRGBA) int { return int(c.R) + int(c.G) + int(c.B) }

	// The glyph is lifted above center, so it lies in the upper half.
	white, shadowed := 0, 0
	for y := 16; y < 128; y++ {
		for x := 48; x < 208; x++ {
			if px := img.NRGBAAt(x, y); px.R < 250 || px.G < 250 || px.B < 250 {
				continue
			}
			white++

			q := img.NRGBAAt(x+off, y+off)
			if q.R >= 250 {
				continue
			}
			gradient := iconimg.BlendRGB(opts.Top, opts.Bottom, float64(y+off)/256)
			if sum(q) < sum(gradient)-30 {
				shadowed++
			}
		}
	}

	if white == 0 {
		t.Fatal("no white glyph pixels above center")
	}
	if shadowed == 0 {
		t.Errorf("no shadow found %dpx below-right of %d glyph pixels", off, white)
	}
}
