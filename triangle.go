package grit

// orient2d is twice the signed area of the triangle (a, b, p). With the
// origin at the top-left and Y growing downward, the result is positive
// when a, b, p wind clockwise on screen.
func orient2d(a, b, p Point) int {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// isTopLeft reports whether the directed edge a -> b is a top or left
// edge of a clockwise-wound triangle: the flat top edge runs rightward,
// left edges run upward.
func isTopLeft(a, b Point) bool {
	return (a.Y == b.Y && b.X > a.X) || b.Y < a.Y
}

// FilledTriangle fills the triangle with the given vertices. Vertex
// winding does not matter. Pixels exactly on an edge are filled only when
// the edge is a top or left edge, so two triangles sharing an edge paint
// every pixel along it exactly once and abutting triangles tile without
// gaps or double-drawn seams. Degenerate (zero-area) triangles draw
// nothing.
func (bm *Bitmap) FilledTriangle(a, b, c Point, color uint8) {
	bm.rasterTriangle(a, b, c, func(d *uint8) {
		*d = color
	})
}

// BlendedTriangle is FilledTriangle with the fill color passed through
// the blend map against each destination pixel. A map not covering the
// fill color degrades to a plain fill.
func (bm *Bitmap) BlendedTriangle(a, b, c Point, color uint8, blendMap *BlendMap) {
	mapping := blendMap.Mapping(color)
	if mapping == nil {
		bm.FilledTriangle(a, b, c, color)
		return
	}
	bm.rasterTriangle(a, b, c, func(d *uint8) {
		*d = mapping[*d]
	})
}

// FilledTriangleList fills each triangle in the list. Triangles sharing
// edges rasterize seam-free, making this suitable for filled polygons
// and quads broken into triangle pairs.
func (bm *Bitmap) FilledTriangleList(triangles [][3]Point, color uint8) {
	for _, t := range triangles {
		bm.FilledTriangle(t[0], t[1], t[2], color)
	}
}

func (bm *Bitmap) rasterTriangle(v0, v1, v2 Point, plot func(d *uint8)) {
	area := orient2d(v0, v1, v2)
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
	}

	minX := min3(v0.X, v1.X, v2.X)
	minY := min3(v0.Y, v1.Y, v2.Y)
	maxX := max3(v0.X, v1.X, v2.X)
	maxY := max3(v0.Y, v1.Y, v2.Y)

	box := RectFromCoords(minX, minY, maxX, maxY)
	if !box.ClampTo(bm.clip) {
		return
	}

	// per-pixel steps of the three edge functions
	a01, b01 := v0.Y-v1.Y, v1.X-v0.X
	a12, b12 := v1.Y-v2.Y, v2.X-v1.X
	a20, b20 := v2.Y-v0.Y, v0.X-v2.X

	// edge pixels count only for top and left edges; everything else is
	// nudged out by one so shared edges are never drawn twice
	bias0 := -1
	if isTopLeft(v1, v2) {
		bias0 = 0
	}
	bias1 := -1
	if isTopLeft(v2, v0) {
		bias1 = 0
	}
	bias2 := -1
	if isTopLeft(v0, v1) {
		bias2 = 0
	}

	p := Point{box.X, box.Y}
	w0Row := orient2d(v1, v2, p) + bias0
	w1Row := orient2d(v2, v0, p) + bias1
	w2Row := orient2d(v0, v1, p) + bias2

	ofsRow := bm.offsetOf(box.X, box.Y)
	for y := 0; y < box.Height; y++ {
		w0, w1, w2 := w0Row, w1Row, w2Row
		row := bm.pixels[ofsRow:][:box.Width]
		for x := range row {
			if w0|w1|w2 >= 0 {
				plot(&row[x])
			}
			w0 += a12
			w1 += a20
			w2 += a01
		}
		w0Row += b12
		w1Row += b20
		w2Row += b01
		ofsRow += bm.stride
	}
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
