package grit

import (
	"bufio"
	"fmt"
	"io"
)

// PaletteSize is the number of colors in every palette. Index 0 is
// conventionally treated as the transparent color by the masked blits.
const PaletteSize = 256

// Color is one palette entry, an RGB triple with 8-bit components.
type Color struct {
	R, G, B uint8
}

// The 16 standard EGA colors, which occupy the first 16 entries of
// [DefaultPalette].
var (
	ColorBlack         = Color{0, 0, 0}
	ColorBlue          = Color{0, 0, 170}
	ColorGreen         = Color{0, 170, 0}
	ColorCyan          = Color{0, 170, 170}
	ColorRed           = Color{170, 0, 0}
	ColorMagenta       = Color{170, 0, 170}
	ColorBrown         = Color{170, 85, 0}
	ColorLightGray     = Color{170, 170, 170}
	ColorDarkGray      = Color{85, 85, 85}
	ColorBrightBlue    = Color{85, 85, 255}
	ColorBrightGreen   = Color{85, 255, 85}
	ColorBrightCyan    = Color{85, 255, 255}
	ColorBrightRed     = Color{255, 85, 85}
	ColorBrightMagenta = Color{255, 85, 255}
	ColorBrightYellow  = Color{255, 255, 85}
	ColorBrightWhite   = Color{255, 255, 255}
)

// Lerp linearly interpolates between c and other by t in [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return Color{lerp(c.R, other.R), lerp(c.G, other.G), lerp(c.B, other.B)}
}

// Luminance returns the perceptual brightness of the color in [0, 1].
func (c Color) Luminance() float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255.0
}

// Palette is an ordered set of exactly 256 colors. The zero value is an
// all-black palette ready to use.
type Palette [PaletteSize]Color

// PaletteFormat selects the binary encoding of palette data.
type PaletteFormat int

const (
	// FormatVGA stores components in 6 bits (0-63), VGA BIOS style.
	FormatVGA PaletteFormat = iota
	// FormatRaw stores components in full 8 bits (0-255).
	FormatRaw
)

// NewPalette returns an all-black palette.
func NewPalette() *Palette {
	return &Palette{}
}

// NewPaletteWith returns a palette with every entry set to c.
func NewPaletteWith(c Color) *Palette {
	p := &Palette{}
	for i := range p {
		p[i] = c
	}
	return p
}

// DefaultPalette returns a freshly built 256-color palette in the spirit
// of VGA mode 13h: the 16 EGA colors, a 16-step gray ramp, a 6x6x6 color
// cube, and a trailing block of black.
func DefaultPalette() *Palette {
	p := &Palette{}

	ega := []Color{
		ColorBlack, ColorBlue, ColorGreen, ColorCyan,
		ColorRed, ColorMagenta, ColorBrown, ColorLightGray,
		ColorDarkGray, ColorBrightBlue, ColorBrightGreen, ColorBrightCyan,
		ColorBrightRed, ColorBrightMagenta, ColorBrightYellow, ColorBrightWhite,
	}
	copy(p[:], ega)

	for i := 0; i < 16; i++ {
		v := uint8(i * 255 / 15)
		p[16+i] = Color{v, v, v}
	}

	// 6x6x6 cube at 32..247
	i := 32
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = Color{uint8(r * 51), uint8(g * 51), uint8(b * 51)}
				i++
			}
		}
	}

	return p
}

func from6Bit(v uint8) uint8 {
	return v<<2 | v>>4
}

func to6Bit(v uint8) uint8 {
	return v >> 2
}

// ReadPalette reads a full 256-color palette from r in the given binary
// format: 768 bytes of RGB triples.
func ReadPalette(r io.Reader, format PaletteFormat) (*Palette, error) {
	return ReadPaletteColors(r, format, PaletteSize)
}

// ReadPaletteColors reads the first n colors of a palette from r, leaving
// the remaining entries black. n must be 1 through 256.
func ReadPaletteColors(r io.Reader, format PaletteFormat, n int) (*Palette, error) {
	if n < 1 || n > PaletteSize {
		return nil, fmt.Errorf("%w: %d colors", ErrPaletteSize, n)
	}

	buf := make([]uint8, n*3)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("grit: reading palette: %w", err)
	}

	p := &Palette{}
	for i := 0; i < n; i++ {
		c := Color{buf[i*3], buf[i*3+1], buf[i*3+2]}
		if format == FormatVGA {
			c = Color{from6Bit(c.R), from6Bit(c.G), from6Bit(c.B)}
		}
		p[i] = c
	}
	return p, nil
}

// Write writes all 256 colors of the palette to w in the given binary
// format.
func (p *Palette) Write(w io.Writer, format PaletteFormat) error {
	return p.WriteColors(w, format, PaletteSize)
}

// WriteColors writes the first n colors of the palette to w. n must be 1
// through 256.
func (p *Palette) WriteColors(w io.Writer, format PaletteFormat, n int) error {
	if n < 1 || n > PaletteSize {
		return fmt.Errorf("%w: %d colors", ErrPaletteSize, n)
	}

	buf := make([]uint8, 0, n*3)
	for i := 0; i < n; i++ {
		c := p[i]
		if format == FormatVGA {
			c = Color{to6Bit(c.R), to6Bit(c.G), to6Bit(c.B)}
		}
		buf = append(buf, c.R, c.G, c.B)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("grit: writing palette: %w", err)
	}
	return nil
}

// ReadPaletteJASC reads a palette in the JASC-PAL text format. The file
// must declare exactly 256 colors.
func ReadPaletteJASC(r io.Reader) (*Palette, error) {
	sc := bufio.NewScanner(r)

	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("grit: reading JASC palette: %w", err)
			}
			return "", fmt.Errorf("%w: truncated JASC palette", ErrAssetFormat)
		}
		return sc.Text(), nil
	}

	header, err := next()
	if err != nil {
		return nil, err
	}
	if header != "JASC-PAL" {
		return nil, fmt.Errorf("%w: missing JASC-PAL header", ErrAssetFormat)
	}
	version, err := next()
	if err != nil {
		return nil, err
	}
	if version != "0100" {
		return nil, fmt.Errorf("%w: unsupported JASC-PAL version %q", ErrAssetFormat, version)
	}
	countLine, err := next()
	if err != nil {
		return nil, err
	}
	var count int
	if _, err := fmt.Sscanf(countLine, "%d", &count); err != nil {
		return nil, fmt.Errorf("%w: bad JASC-PAL color count %q", ErrAssetFormat, countLine)
	}
	if count != PaletteSize {
		return nil, fmt.Errorf("%w: JASC-PAL declares %d colors", ErrPaletteSize, count)
	}

	p := &Palette{}
	for i := 0; i < count; i++ {
		line, err := next()
		if err != nil {
			return nil, err
		}
		var r8, g8, b8 int
		if _, err := fmt.Sscanf(line, "%d %d %d", &r8, &g8, &b8); err != nil {
			return nil, fmt.Errorf("%w: bad JASC-PAL color line %q", ErrAssetFormat, line)
		}
		if r8 < 0 || r8 > 255 || g8 < 0 || g8 > 255 || b8 < 0 || b8 > 255 {
			return nil, fmt.Errorf("%w: JASC-PAL component out of range in %q", ErrAssetFormat, line)
		}
		p[i] = Color{uint8(r8), uint8(g8), uint8(b8)}
	}
	return p, nil
}

// WriteJASC writes the palette to w in the JASC-PAL text format.
func (p *Palette) WriteJASC(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "JASC-PAL\r\n0100\r\n%d\r\n", PaletteSize)
	for _, c := range p {
		fmt.Fprintf(bw, "%d %d %d\r\n", c.R, c.G, c.B)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("grit: writing JASC palette: %w", err)
	}
	return nil
}

func stepToward(v, target, step uint8) uint8 {
	if v == target {
		return v
	}
	var diff uint8
	if v > target {
		diff = v - target
		if step > diff {
			step = diff
		}
		return v - step
	}
	diff = target - v
	if step > diff {
		step = diff
	}
	return v + step
}

// FadeColorToward steps the color at index toward the target RGB values by
// at most step per component, reporting whether the entry has reached the
// target. Intended to be called once per frame over many frames.
func (p *Palette) FadeColorToward(index uint8, target Color, step uint8) bool {
	c := p[index]
	c.R = stepToward(c.R, target.R, step)
	c.G = stepToward(c.G, target.G, step)
	c.B = stepToward(c.B, target.B, step)
	p[index] = c
	return c == target
}

// FadeToward steps the colors lo through hi (inclusive) toward target,
// reporting whether every entry in the range has arrived.
func (p *Palette) FadeToward(lo, hi uint8, target Color, step uint8) bool {
	done := true
	for i := int(lo); i <= int(hi); i++ {
		if !p.FadeColorToward(uint8(i), target, step) {
			done = false
		}
	}
	return done
}

// FadeTowardPalette steps the colors lo through hi (inclusive) toward the
// matching entries of other, reporting whether the whole range has arrived.
func (p *Palette) FadeTowardPalette(lo, hi uint8, other *Palette, step uint8) bool {
	done := true
	for i := int(lo); i <= int(hi); i++ {
		if !p.FadeColorToward(uint8(i), other[i], step) {
			done = false
		}
	}
	return done
}

// Lerp sets the colors lo through hi (inclusive) to the interpolation of
// the matching entries of a and b by t in [0, 1].
func (p *Palette) Lerp(lo, hi uint8, a, b *Palette, t float64) {
	for i := int(lo); i <= int(hi); i++ {
		p[i] = a[i].Lerp(b[i], t)
	}
}

// Rotate rotates the colors lo through hi (inclusive) by step positions.
// Positive steps rotate toward higher indices, negative toward lower.
func (p *Palette) Rotate(lo, hi uint8, step int) {
	n := int(hi) - int(lo) + 1
	if n <= 1 || step == 0 {
		return
	}
	shift := step % n
	if shift < 0 {
		shift += n
	}
	if shift == 0 {
		return
	}

	sub := p[lo : int(hi)+1]
	rotated := make([]Color, n)
	for i, c := range sub {
		rotated[(i+shift)%n] = c
	}
	copy(sub, rotated)
}

// FindColor returns the index of the palette entry closest to c by
// component distance. Exact matches win outright; otherwise quality
// depends on how well the palette covers the hue being searched.
func (p *Palette) FindColor(c Color) uint8 {
	absDiff := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}

	closest := 0
	closestDistance := 255 * 3
	for i, pc := range p {
		if pc == c {
			return uint8(i)
		}
		distance := absDiff(pc.R, c.R) + absDiff(pc.G, c.G) + absDiff(pc.B, c.B)
		if distance < closestDistance {
			closest = i
			closestDistance = distance
		}
	}
	return uint8(closest)
}

// DrawSwatch draws the palette onto dst as a 16x16 pixel grid starting at
// (x, y), one pixel per color in ascending index order, left-to-right and
// top-to-bottom. Debug helper.
func (p *Palette) DrawSwatch(dst *Bitmap, x, y int) {
	color := uint8(0)
	for yd := 0; yd < 16; yd++ {
		for xd := 0; xd < 16; xd++ {
			dst.SetPixel(x+xd, y+yd, color)
			color++
		}
	}
}
