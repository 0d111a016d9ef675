// Package grit is a retro 256-color software rendering and game toolkit.
//
// Grit renders into palette-indexed bitmaps the way a VGA mode 13h program
// would: one byte per pixel, each byte an index into a 256-color [Palette].
// Everything is drawn on the CPU; the final framebuffer is handed off to a
// presentation backend (see the grit/display subpackage for the
// [Ebitengine] one) once per frame.
//
// # Quick start
//
// The simplest way to get a window on screen is display.Run, which creates
// the framebuffer and game loop for you:
//
//	type Game struct{}
//
//	func (g *Game) Update() error          { return nil }
//	func (g *Game) Draw(fb *grit.Bitmap)   { fb.FilledCircle(160, 100, 40, 12) }
//
//	display.Run(&Game{}, display.Config{Title: "Hello", Width: 320, Height: 200})
//
// # Bitmaps and drawing
//
// [Bitmap] is the central type: a fixed-size buffer of palette indices with
// a clipping region. Drawing operations ([Bitmap.Line], [Bitmap.FilledRect],
// [Bitmap.FilledTriangle], the Blit family, ...) clip to that region and
// never error on partially out-of-bounds geometry. The checked accessors
// [Bitmap.PixelAt] and [Bitmap.SetPixelAt] report ErrOutOfBounds instead of
// clamping, for callers that want their coordinate bugs surfaced.
//
// [Bitmap.SubBitmap] returns a non-owning view sharing the parent's pixels,
// so drawing into the view draws into the parent.
//
// # Entities and states
//
// The grit/ecs subpackage provides a generation-counted entity store with
// typed component attachment, and grit/state provides a stack of
// application states with enter/exit/suspend/resume hooks, timed
// transitions (via [gween]), and a queued event dispatcher.
//
// # Assets
//
// Palettes round-trip through 6-bit VGA and raw 8-bit binary formats as
// well as JASC-PAL text ([ReadPalette], [ReadPaletteJASC]). Sprites
// round-trip through PCX ([ReadPCX], [Bitmap.WritePCX]), and bitmaps
// convert to and from image.Paletted for PNG/GIF interop.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package grit
