package grit

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestImageRoundTrip(t *testing.T) {
	src, _ := testSprite(t)

	img := src.ToImage()
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("image is %v, want 16x16", img.Bounds())
	}

	got, pal, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if !got.Equal(src) {
		t.Error("pixels did not survive the image round trip")
	}
	if *pal != *src.Palette() {
		t.Error("palette did not survive the image round trip")
	}
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	// a SubImage-style paletted image whose bounds do not start at (0,0)
	cp := make(color.Palette, PaletteSize)
	for i, c := range DefaultPalette() {
		cp[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	img := image.NewPaletted(image.Rect(3, 5, 7, 9), cp)
	for y := 5; y < 9; y++ {
		for x := 3; x < 7; x++ {
			img.SetColorIndex(x, y, uint8((y-5)*4+(x-3)+1))
		}
	}

	got, _, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if got.Width() != 4 || got.Height() != 4 {
		t.Fatalf("bitmap is %dx%d, want 4x4", got.Width(), got.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint8(y*4 + x + 1)
			if c, _ := got.GetPixel(x, y); c != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, c, want)
			}
		}
	}
}

func TestFromImageRejectsTrueColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if _, _, err := FromImage(img); !errors.Is(err, ErrAssetFormat) {
		t.Errorf("err = %v, want ErrAssetFormat", err)
	}
}

func TestPNGRoundTrip(t *testing.T) {
	src, _ := testSprite(t)

	var buf bytes.Buffer
	if err := src.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	got, _, err := ReadPNG(&buf)
	if err != nil {
		t.Fatalf("ReadPNG: %v", err)
	}
	if !got.Equal(src) {
		t.Error("pixels did not survive the PNG round trip")
	}
}

func TestGIFRoundTrip(t *testing.T) {
	src, _ := testSprite(t)

	var buf bytes.Buffer
	if err := src.WriteGIF(&buf); err != nil {
		t.Fatalf("WriteGIF: %v", err)
	}
	got, _, err := ReadGIF(&buf)
	if err != nil {
		t.Fatalf("ReadGIF: %v", err)
	}
	if got.Width() != src.Width() || got.Height() != src.Height() {
		t.Fatalf("decoded %dx%d, want %dx%d", got.Width(), got.Height(), src.Width(), src.Height())
	}
}
