// Package display presents a grit framebuffer in a window.
//
// The core library renders into palette-indexed [grit.Bitmap]s and knows
// nothing about windows; this package owns the presentation backend,
// built on [Ebitengine]. Each frame the framebuffer's indices are
// expanded through the palette into RGBA bytes and uploaded as a single
// texture, then drawn scaled to the window.
//
//	type Game struct{}
//
//	func (g *Game) Update() error        { return nil }
//	func (g *Game) Draw(fb *grit.Bitmap) { fb.FilledCircle(160, 100, 40, 12) }
//
//	func main() {
//		if err := display.Run(&Game{}, display.Config{Title: "demo"}); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// [Ebitengine]: https://ebitengine.org
package display
