package display

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/grit"
)

// Screen owns the indexed framebuffer and the texture it is presented
// through. The RGBA scratch buffer is reused across frames.
type Screen struct {
	fb      *grit.Bitmap
	texture *ebiten.Image
	scratch []byte
}

// NewScreen creates a screen with a framebuffer of the given size,
// cleared to index 0.
func NewScreen(width, height int) (*Screen, error) {
	fb, err := grit.NewBitmap(width, height)
	if err != nil {
		return nil, err
	}
	return &Screen{
		fb:      fb,
		texture: ebiten.NewImage(width, height),
		scratch: make([]byte, width*height*4),
	}, nil
}

// Framebuffer returns the indexed bitmap that gets presented.
func (s *Screen) Framebuffer() *grit.Bitmap {
	return s.fb
}

// Present expands the framebuffer through its palette and draws the
// result onto target, scaled to fill it.
func (s *Screen) Present(target *ebiten.Image) {
	ExpandRGBA(s.scratch, s.fb, s.fb.Palette())
	s.texture.WritePixels(s.scratch)

	var op ebiten.DrawImageOptions
	tw, th := target.Bounds().Dx(), target.Bounds().Dy()
	op.GeoM.Scale(float64(tw)/float64(s.fb.Width()), float64(th)/float64(s.fb.Height()))
	op.Filter = ebiten.FilterNearest
	target.DrawImage(s.texture, &op)
}

// ExpandRGBA writes the bitmap's pixels into dst as opaque RGBA bytes,
// looking each index up in pal. dst must hold width*height*4 bytes.
func ExpandRGBA(dst []byte, fb *grit.Bitmap, pal *grit.Palette) {
	i := 0
	for y := 0; y < fb.Height(); y++ {
		for _, index := range fb.Row(y) {
			c := pal[index]
			dst[i] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = 0xff
			i += 4
		}
	}
}
