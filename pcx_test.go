package grit

import (
	"bytes"
	"errors"
	"testing"
)

func testSprite(t *testing.T) (*Bitmap, *Palette) {
	t.Helper()
	b := mustBitmap(t, 16, 16)
	b.Clear(0)
	b.FilledCircle(8, 8, 6, 4)
	b.Line(0, 0, 15, 15, 15)
	b.FilledRect(12, 0, 15, 3, 200) // forces RLE-escaped single pixels (200 = 0xC8)
	return b, DefaultPalette()
}

func TestPCXRoundTrip(t *testing.T) {
	src, pal := testSprite(t)

	var buf bytes.Buffer
	if err := src.WritePCX(&buf, pal); err != nil {
		t.Fatalf("WritePCX: %v", err)
	}

	got, gotPal, err := ReadPCX(&buf)
	if err != nil {
		t.Fatalf("ReadPCX: %v", err)
	}
	if got.Width() != 16 || got.Height() != 16 {
		t.Fatalf("decoded %dx%d, want 16x16", got.Width(), got.Height())
	}
	if !got.Equal(src) {
		t.Error("pixel data did not round-trip")
	}
	if *gotPal != *pal {
		t.Error("palette did not round-trip")
	}
	if got.Palette() != gotPal {
		t.Error("decoded bitmap does not reference the decoded palette")
	}
}

func TestPCXLongRunsSplitAt63(t *testing.T) {
	b := mustBitmap(t, 200, 2)
	b.Clear(7)
	pal := DefaultPalette()

	var buf bytes.Buffer
	if err := b.WritePCX(&buf, pal); err != nil {
		t.Fatalf("WritePCX: %v", err)
	}
	got, _, err := ReadPCX(&buf)
	if err != nil {
		t.Fatalf("ReadPCX: %v", err)
	}
	if !got.Equal(b) {
		t.Error("long-run bitmap did not round-trip")
	}
}

func TestReadPCXRejectsMalformed(t *testing.T) {
	src, pal := testSprite(t)
	var buf bytes.Buffer
	if err := src.WritePCX(&buf, pal); err != nil {
		t.Fatalf("WritePCX: %v", err)
	}
	good := buf.Bytes()

	corrupt := func(offset int, value byte) []byte {
		data := append([]byte(nil), good...)
		data[offset] = value
		return data
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", good[:64]},
		{"bad manufacturer", corrupt(0, 0)},
		{"bad version", corrupt(1, 2)},
		{"uncompressed", corrupt(2, 0)},
		{"wrong depth", corrupt(3, 4)},
		{"missing palette", good[:len(good)-770]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadPCX(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrAssetFormat) {
				t.Errorf("err = %v, want ErrAssetFormat", err)
			}
		})
	}
}
