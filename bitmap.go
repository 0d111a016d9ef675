package grit

import "fmt"

// Bitmap is a 2D buffer of 8-bit palette indices. Pixel data is stored in
// row-major order; for bitmaps created with [NewBitmap] the stride from one
// row to the next equals the width, while views returned by
// [Bitmap.SubBitmap] keep the stride of their parent.
//
// Drawing operations clip to the bitmap's clipping region: drawing outside
// it is simply not performed. The region defaults to the full bitmap.
type Bitmap struct {
	width   int
	height  int
	stride  int
	pixels  []uint8
	clip    Rect
	palette *Palette
}

// NewBitmap creates a bitmap with the given dimensions, cleared to index 0
// and referencing the shared default palette.
func NewBitmap(width, height int) (*Bitmap, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Bitmap{
		width:   width,
		height:  height,
		stride:  width,
		pixels:  make([]uint8, width*height),
		clip:    Rect{0, 0, width, height},
		palette: sharedPalette,
	}, nil
}

// sharedPalette is referenced by every bitmap that was not explicitly
// given its own palette.
var sharedPalette = DefaultPalette()

// CopyRegion creates a new bitmap holding a copy of the given region of
// src. The region must lie entirely within src's full bounds.
func CopyRegion(src *Bitmap, region Rect) (*Bitmap, error) {
	if !src.Bounds().ContainsRect(region) {
		return nil, fmt.Errorf("%w: region %v outside %dx%d bitmap",
			ErrOutOfBounds, region, src.width, src.height)
	}
	b, err := NewBitmap(region.Width, region.Height)
	if err != nil {
		return nil, err
	}
	b.palette = src.palette
	for row := 0; row < region.Height; row++ {
		copy(b.Row(row), src.pixels[src.offsetOf(region.X, region.Y+row):][:region.Width])
	}
	return b, nil
}

// Width returns the width of the bitmap in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Bounds returns the full bitmap boundaries, ignoring the clipping region.
func (b *Bitmap) Bounds() Rect {
	return Rect{0, 0, b.width, b.height}
}

// ClipRegion returns the current clipping region.
func (b *Bitmap) ClipRegion() Rect {
	return b.clip
}

// SetClipRegion sets a new clipping region, clamped to the bitmap
// boundaries if it extends beyond them.
func (b *Bitmap) SetClipRegion(region Rect) {
	if !region.ClampTo(b.Bounds()) {
		region = Rect{}
	}
	b.clip = region
}

// ResetClipRegion restores the clipping region to the full bitmap.
func (b *Bitmap) ResetClipRegion() {
	b.clip = b.Bounds()
}

// Palette returns the palette this bitmap references.
func (b *Bitmap) Palette() *Palette {
	return b.palette
}

// SetPalette makes the bitmap reference the given palette. Views share
// their palette with nobody in particular; reassigning a view's palette
// does not touch the parent's.
func (b *Bitmap) SetPalette(p *Palette) {
	b.palette = p
}

// Pixels returns the raw pixel buffer. For views the buffer still belongs
// to the parent and rows are [Bitmap.Stride] apart; use [Bitmap.Row] for
// row-oriented access that works for both.
func (b *Bitmap) Pixels() []uint8 {
	return b.pixels
}

// Stride returns the offset between vertically adjacent pixels.
func (b *Bitmap) Stride() int {
	return b.stride
}

// Row returns the pixels of row y as a slice sharing the bitmap's buffer.
// The caller must guarantee 0 <= y < Height; no bounds check is performed
// beyond the slice expression itself.
func (b *Bitmap) Row(y int) []uint8 {
	return b.pixels[y*b.stride:][:b.width]
}

func (b *Bitmap) offsetOf(x, y int) int {
	return y*b.stride + x
}

// PixelAt returns the palette index at (x, y), failing with ErrOutOfBounds
// when the coordinates lie outside the bitmap. The clipping region is not
// consulted.
func (b *Bitmap) PixelAt(x, y int) (uint8, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, fmt.Errorf("%w: pixel (%d,%d) in %dx%d bitmap", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.pixels[b.offsetOf(x, y)], nil
}

// SetPixelAt sets the palette index at (x, y), failing with ErrOutOfBounds
// when the coordinates lie outside the bitmap and leaving the buffer
// unchanged. The clipping region is not consulted.
func (b *Bitmap) SetPixelAt(x, y int, color uint8) error {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return fmt.Errorf("%w: pixel (%d,%d) in %dx%d bitmap", ErrOutOfBounds, x, y, b.width, b.height)
	}
	b.pixels[b.offsetOf(x, y)] = color
	return nil
}

// GetPixel returns the palette index at (x, y) and true, or 0 and false if
// the coordinates lie outside the clipping region.
func (b *Bitmap) GetPixel(x, y int) (uint8, bool) {
	if !b.clip.Contains(x, y) {
		return 0, false
	}
	return b.pixels[b.offsetOf(x, y)], true
}

// SetPixel sets the palette index at (x, y). Coordinates outside the
// clipping region are ignored.
func (b *Bitmap) SetPixel(x, y int, color uint8) {
	if !b.clip.Contains(x, y) {
		return
	}
	b.pixels[b.offsetOf(x, y)] = color
}

// SubBitmap returns a non-owning view of the given region. The view shares
// the parent's pixel buffer: mutating the view mutates the parent. The
// region must lie entirely within the bitmap's full bounds.
func (b *Bitmap) SubBitmap(region Rect) (*Bitmap, error) {
	if region.IsEmpty() {
		return nil, fmt.Errorf("%w: %dx%d view", ErrInvalidDimensions, region.Width, region.Height)
	}
	if !b.Bounds().ContainsRect(region) {
		return nil, fmt.Errorf("%w: view %v outside %dx%d bitmap",
			ErrOutOfBounds, region, b.width, b.height)
	}
	return &Bitmap{
		width:   region.Width,
		height:  region.Height,
		stride:  b.stride,
		pixels:  b.pixels[b.offsetOf(region.X, region.Y):],
		clip:    Rect{0, 0, region.Width, region.Height},
		palette: b.palette,
	}, nil
}

// Clear fills the entire bitmap with the given palette index, ignoring the
// clipping region.
func (b *Bitmap) Clear(color uint8) {
	if b.stride == b.width {
		px := b.pixels[:b.width*b.height]
		for i := range px {
			px[i] = color
		}
		return
	}
	for y := 0; y < b.height; y++ {
		row := b.Row(y)
		for i := range row {
			row[i] = color
		}
	}
}

// Equal reports whether the two bitmaps have identical dimensions and
// pixel contents. Clip regions and palettes are not compared.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for y := 0; y < b.height; y++ {
		ra, rb := b.Row(y), other.Row(y)
		for i := range ra {
			if ra[i] != rb[i] {
				return false
			}
		}
	}
	return true
}
