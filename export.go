package grit

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
)

// ToImage converts the bitmap and its palette into an image.Paletted
// sharing no storage with the bitmap, for interop with the standard
// image codecs and tooling.
func (b *Bitmap) ToImage() *image.Paletted {
	pal := make(color.Palette, PaletteSize)
	for i, c := range b.palette {
		pal[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}

	img := image.NewPaletted(image.Rect(0, 0, b.width, b.height), pal)
	for y := 0; y < b.height; y++ {
		copy(img.Pix[y*img.Stride:][:b.width], b.Row(y))
	}
	return img
}

// FromImage converts a paletted image into a bitmap and palette. Only
// images that already carry a palette of at most 256 colors are accepted;
// quantizing true-color images is out of scope here.
func FromImage(img image.Image) (*Bitmap, *Palette, error) {
	paletted, ok := img.(*image.Paletted)
	if !ok {
		return nil, nil, fmt.Errorf("%w: image is not palette-indexed", ErrAssetFormat)
	}
	if len(paletted.Palette) > PaletteSize {
		return nil, nil, fmt.Errorf("%w: image palette has %d colors", ErrPaletteSize, len(paletted.Palette))
	}

	bounds := paletted.Bounds()
	b, err := NewBitmap(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, nil, err
	}

	palette := &Palette{}
	for i, c := range paletted.Palette {
		r, g, bl, _ := c.RGBA()
		palette[i] = Color{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)}
	}
	b.SetPalette(palette)

	for y := 0; y < b.height; y++ {
		row := paletted.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(b.Row(y), paletted.Pix[row:][:b.width])
	}

	return b, palette, nil
}

// WritePNG writes the bitmap to w as an indexed-color PNG.
func (b *Bitmap) WritePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToImage()); err != nil {
		return fmt.Errorf("grit: writing PNG: %w", err)
	}
	return nil
}

// ReadPNG reads an indexed-color PNG from r. True-color PNGs are
// rejected with ErrAssetFormat.
func ReadPNG(r io.Reader) (*Bitmap, *Palette, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, nil, fmt.Errorf("grit: reading PNG: %w", err)
	}
	return FromImage(img)
}

// WriteGIF writes the bitmap to w as a single-frame GIF.
func (b *Bitmap) WriteGIF(w io.Writer) error {
	if err := gif.Encode(w, b.ToImage(), nil); err != nil {
		return fmt.Errorf("grit: writing GIF: %w", err)
	}
	return nil
}

// ReadGIF reads the first frame of a GIF from r.
func ReadGIF(r io.Reader) (*Bitmap, *Palette, error) {
	img, err := gif.Decode(r)
	if err != nil {
		return nil, nil, fmt.Errorf("grit: reading GIF: %w", err)
	}
	return FromImage(img)
}
