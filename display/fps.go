package display

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsCounter rate-limits frame stat logging to roughly once per second.
type fpsCounter struct {
	frames int
	since  time.Time
}

// tick counts a frame and reports whether a second has elapsed, along
// with the frame count accumulated over that window.
func (f *fpsCounter) tick(now time.Time) (int, bool) {
	if f.since.IsZero() {
		f.since = now
	}
	f.frames++
	if now.Sub(f.since) < time.Second {
		return 0, false
	}
	frames := f.frames
	f.frames = 0
	f.since = now
	return frames, true
}

func (f *fpsCounter) log() {
	if frames, due := f.tick(time.Now()); due {
		_, _ = fmt.Fprintf(os.Stderr, "[grit] frames: %d | fps: %.1f | tps: %.1f\n",
			frames, ebiten.ActualFPS(), ebiten.ActualTPS())
	}
}
