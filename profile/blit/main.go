// Profiling:
// go build ./profile/blit
// go tool pprof -http=":8000" -nodefraction=0.001 ./blit cpu.pprof

package main

import (
	"log"

	"github.com/pkg/profile"

	"github.com/phanxgames/grit"
)

func main() {
	rounds := 200
	sprites := 500
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, sprites)
	p.Stop()
}

func run(rounds, sprites int) {
	dest, err := grit.NewBitmap(320, 200)
	if err != nil {
		log.Fatal(err)
	}
	src, err := grit.NewBitmap(32, 32)
	if err != nil {
		log.Fatal(err)
	}
	src.FilledCircle(16, 16, 14, 40)
	src.Circle(16, 16, 14, 15)

	blend := grit.NewTranslucencyBlendMap(0.5, 0.5, 0.5, grit.DefaultPalette())
	scaled := grit.NewRect(0, 0, 64, 64)

	for round := 0; round < rounds; round++ {
		for i := 0; i < sprites; i++ {
			x := (i * 37) % 340
			y := (i * 23) % 220
			switch i % 5 {
			case 0:
				dest.Blit(src, x-16, y-16)
			case 1:
				dest.TransparentBlit(src, x-16, y-16, 0)
			case 2:
				dest.TransparentFlippedBlit(src, x-16, y-16, 0, i%2 == 0, i%3 == 0)
			case 3:
				dest.BlendedBlit(src, x-16, y-16, blend)
			case 4:
				scaled.X, scaled.Y = x-32, y-32
				dest.ScaledTransparentBlit(src, src.Bounds(), scaled, 0)
			}
		}
	}
}
