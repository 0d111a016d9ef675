package grit

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// pcxHeader is the 128-byte header of a PCX file, little-endian.
type pcxHeader struct {
	Manufacturer   uint8
	Version        uint8
	Encoding       uint8
	BitsPerPixel   uint8
	XMin           uint16
	YMin           uint16
	XMax           uint16
	YMax           uint16
	HorizontalDPI  uint16
	VerticalDPI    uint16
	EGAPalette     [48]uint8
	Reserved       uint8
	ColorPlanes    uint8
	BytesPerLine   uint16
	PaletteType    uint16
	HorizontalSize uint16
	VerticalSize   uint16
	Padding        [54]uint8
}

const pcxPaletteMarker = 0x0c

// ReadPCX reads an 8-bit indexed, RLE-compressed PCX image from r,
// returning the decoded bitmap and the 256-color palette stored at the
// end of the file. Only version 5 files are supported, which is what
// every paint program of the era wrote for 256-color images.
func ReadPCX(r io.Reader) (*Bitmap, *Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("grit: reading PCX: %w", err)
	}

	var header pcxHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &header); err != nil {
		return nil, nil, fmt.Errorf("%w: short PCX header", ErrAssetFormat)
	}
	switch {
	case header.Manufacturer != 10:
		return nil, nil, fmt.Errorf("%w: not a PCX file", ErrAssetFormat)
	case header.Version != 5:
		return nil, nil, fmt.Errorf("%w: unsupported PCX version %d", ErrAssetFormat, header.Version)
	case header.Encoding != 1:
		return nil, nil, fmt.Errorf("%w: PCX file is not RLE-compressed", ErrAssetFormat)
	case header.BitsPerPixel != 8 || header.ColorPlanes != 1:
		return nil, nil, fmt.Errorf("%w: only 8-bit indexed PCX files are supported", ErrAssetFormat)
	case header.XMax < header.XMin || header.YMax < header.YMin:
		return nil, nil, fmt.Errorf("%w: invalid PCX image dimensions", ErrAssetFormat)
	}

	width := int(header.XMax) - int(header.XMin) + 1
	height := int(header.YMax) - int(header.YMin) + 1
	bmp, err := NewBitmap(width, height)
	if err != nil {
		return nil, nil, err
	}

	// RLE pixel data: runs are flagged by the top two bits and never span
	// scanlines. BytesPerLine can be larger than the width; the excess is
	// decoded and discarded.
	pos := binary.Size(header)
	for y := 0; y < height; y++ {
		row := bmp.Row(y)
		x := 0
		for x < int(header.BytesPerLine) {
			if pos >= len(data) {
				return nil, nil, fmt.Errorf("%w: truncated PCX pixel data", ErrAssetFormat)
			}
			pixel := data[pos]
			pos++
			count := 1
			if pixel&0xc0 == 0xc0 {
				count = int(pixel & 0x3f)
				if pos >= len(data) {
					return nil, nil, fmt.Errorf("%w: truncated PCX pixel data", ErrAssetFormat)
				}
				pixel = data[pos]
				pos++
			}
			for ; count > 0; count-- {
				if x < width {
					row[x] = pixel
				}
				x++
			}
		}
	}

	// 256-color palette at the end of the file, preceded by a marker byte
	if len(data) < 769 || data[len(data)-769] != pcxPaletteMarker {
		return nil, nil, fmt.Errorf("%w: PCX palette not found at end of file", ErrAssetFormat)
	}
	palette, err := ReadPalette(bytes.NewReader(data[len(data)-768:]), FormatRaw)
	if err != nil {
		return nil, nil, err
	}
	bmp.SetPalette(palette)

	return bmp, palette, nil
}

func writePCXRun(w *bytes.Buffer, runCount, pixel uint8) {
	if runCount > 1 || pixel&0xc0 == 0xc0 {
		w.WriteByte(0xc0 | runCount)
	}
	w.WriteByte(pixel)
}

// WritePCX writes the bitmap to w as an 8-bit indexed, RLE-compressed
// PCX image with the given palette appended.
func (b *Bitmap) WritePCX(w io.Writer, palette *Palette) error {
	if b.width > 65536 || b.height > 65536 {
		return fmt.Errorf("%w: %dx%d too large for PCX", ErrInvalidDimensions, b.width, b.height)
	}

	header := pcxHeader{
		Manufacturer:   10,
		Version:        5,
		Encoding:       1,
		BitsPerPixel:   8,
		XMax:           uint16(b.width - 1),
		YMax:           uint16(b.height - 1),
		HorizontalDPI:  320,
		VerticalDPI:    200,
		ColorPlanes:    1,
		BytesPerLine:   uint16(b.width),
		PaletteType:    1,
		HorizontalSize: uint16(b.width),
		VerticalSize:   uint16(b.height),
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("grit: writing PCX header: %w", err)
	}

	// RLE runs cannot span scanlines, per the format
	for y := 0; y < b.height; y++ {
		row := b.Row(y)
		runCount, runPixel := uint8(1), row[0]
		for _, pixel := range row[1:] {
			if pixel != runPixel || runCount >= 63 {
				writePCXRun(&buf, runCount, runPixel)
				runCount, runPixel = 1, pixel
			} else {
				runCount++
			}
		}
		writePCXRun(&buf, runCount, runPixel)
	}

	buf.WriteByte(pcxPaletteMarker)
	if err := palette.Write(&buf, FormatRaw); err != nil {
		return err
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("grit: writing PCX: %w", err)
	}
	return nil
}
