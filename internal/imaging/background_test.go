package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestMaskBackground_Classification(t *testing.T) {
	tests := []struct {
		name        string
		c           color.RGBA
		transparent bool
	}{
		{"pure black", color.RGBA{0, 0, 0, 255}, true},
		{"near black", color.RGBA{29, 29, 29, 255}, true},
		{"mixed below threshold", color.RGBA{10, 20, 29, 255}, true},
		{"red at threshold", color.RGBA{30, 0, 0, 255}, false},
		{"green at threshold", color.RGBA{0, 30, 0, 255}, false},
		{"blue at threshold", color.RGBA{0, 0, 30, 255}, false},
		{"dark gray", color.RGBA{40, 40, 40, 255}, false},
		{"white", color.RGBA{255, 255, 255, 255}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(4, 4, tt.c)
			got := MaskBackground(img, DefaultTolerance)

			px := got.NRGBAAt(1, 1)
			if tt.transparent {
				if px != (color.NRGBA{}) {
					t.Errorf("pixel: got %v, want fully transparent", px)
				}
				return
			}
			want := color.NRGBA{tt.c.R, tt.c.G, tt.c.B, 255}
			if px != want {
				t.Errorf("pixel: got %v, want %v", px, want)
			}
		})
	}
}

func TestMaskBackground_DoesNotModifySource(t *testing.T) {
	img := createInMemoryImage(3, 3, color.RGBA{0, 0, 0, 255})
	MaskBackground(img, DefaultTolerance)

	_, _, _, a := img.At(1, 1).RGBA()
	if a != 0xffff {
		t.Error("MaskBackground modified the source image")
	}
}

func TestOpaqueBounds(t *testing.T) {
	inner := image.Rect(10, 20, 30, 25)
	img := MaskBackground(createFramedImage(50, 40, inner, color.RGBA{200, 100, 50, 255}), DefaultTolerance)

	r, ok := OpaqueBounds(img)
	if !ok {
		t.Fatal("OpaqueBounds found no content")
	}
	if r != inner {
		t.Errorf("bounds: got %v, want %v", r, inner)
	}
}

func TestOpaqueBounds_Empty(t *testing.T) {
	img := MaskBackground(createInMemoryImage(8, 8, color.RGBA{0, 0, 0, 255}), DefaultTolerance)

	r, ok := OpaqueBounds(img)
	if ok {
		t.Errorf("OpaqueBounds on empty image: got %v, want none", r)
	}
	if !r.Empty() {
		t.Errorf("rectangle should be empty, got %v", r)
	}
}

func TestOpaqueBounds_SinglePixel(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	img.SetNRGBA(7, 3, color.NRGBA{255, 255, 255, 1})

	r, ok := OpaqueBounds(img)
	if !ok {
		t.Fatal("OpaqueBounds missed a partially transparent pixel")
	}
	if r != image.Rect(7, 3, 8, 4) {
		t.Errorf("bounds: got %v, want (7,3)-(8,4)", r)
	}
}

func TestRemoveBackground_Crops(t *testing.T) {
	inner := image.Rect(5, 8, 45, 28)
	src := createFramedImage(60, 40, inner, color.RGBA{255, 200, 0, 255})

	got := RemoveBackground(src, DefaultTolerance)

	b := got.Bounds()
	if b.Min != (image.Point{}) {
		t.Errorf("cropped image should start at origin, got %v", b.Min)
	}
	if b.Dx() != inner.Dx() || b.Dy() != inner.Dy() {
		t.Fatalf("dimensions: got %dx%d, want %dx%d", b.Dx(), b.Dy(), inner.Dx(), inner.Dy())
	}

	// No fully transparent border row or column may remain
	for x := 0; x < b.Dx(); x++ {
		if got.NRGBAAt(x, 0).A == 0 || got.NRGBAAt(x, b.Dy()-1).A == 0 {
			t.Fatalf("transparent pixel on top/bottom border at x=%d", x)
		}
	}
	for y := 0; y < b.Dy(); y++ {
		if got.NRGBAAt(0, y).A == 0 || got.NRGBAAt(b.Dx()-1, y).A == 0 {
			t.Fatalf("transparent pixel on left/right border at y=%d", y)
		}
	}
}

func TestRemoveBackground_KeepsInteriorHoles(t *testing.T) {
	src := createFramedImage(20, 20, image.Rect(2, 2, 18, 18), color.RGBA{255, 255, 255, 255})
	src.Set(10, 10, color.RGBA{5, 5, 5, 255})

	got := RemoveBackground(src, DefaultTolerance)

	if got.Bounds().Dx() != 16 || got.Bounds().Dy() != 16 {
		t.Fatalf("dimensions: got %dx%d, want 16x16", got.Bounds().Dx(), got.Bounds().Dy())
	}
	if a := got.NRGBAAt(8, 8).A; a != 0 {
		t.Errorf("interior near-black pixel alpha: got %d, want 0", a)
	}
}

func TestRemoveBackground_AllBlack(t *testing.T) {
	src := createInMemoryImage(30, 20, color.RGBA{0, 0, 0, 255})

	got := RemoveBackground(src, DefaultTolerance)

	if got.Bounds().Dx() != 30 || got.Bounds().Dy() != 20 {
		t.Errorf("all-black image should stay uncropped, got %dx%d", got.Bounds().Dx(), got.Bounds().Dy())
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			if got.NRGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d,%d) should be transparent", x, y)
			}
		}
	}
}

func TestRemoveBackground_NoBackground(t *testing.T) {
	src := createInMemoryImage(12, 9, color.RGBA{100, 150, 200, 255})

	got := RemoveBackground(src, DefaultTolerance)

	if got.Bounds().Dx() != 12 || got.Bounds().Dy() != 9 {
		t.Errorf("dimensions: got %dx%d, want 12x9", got.Bounds().Dx(), got.Bounds().Dy())
	}
	if px := got.NRGBAAt(0, 0); px != (color.NRGBA{100, 150, 200, 255}) {
		t.Errorf("pixel: got %v, want original color", px)
	}
}

func TestRemoveBackground_NonZeroOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(100, 100, 110, 110))
	src.Set(105, 106, color.RGBA{255, 0, 0, 255})

	got := RemoveBackground(src, DefaultTolerance)

	if got.Bounds() != image.Rect(0, 0, 1, 1) {
		t.Errorf("bounds: got %v, want (0,0)-(1,1)", got.Bounds())
	}
	if px := got.NRGBAAt(0, 0); px != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("pixel: got %v, want red", px)
	}
}
