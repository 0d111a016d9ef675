package grit

// Line draws a line from (x1, y1) to (x2, y2) using Bresenham's
// algorithm, clipped to the clipping region. Endpoints may lie anywhere;
// only the visible portion is drawn.
func (b *Bitmap) Line(x1, y1, x2, y2 int, color uint8) {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	sign := func(v int) int {
		switch {
		case v < 0:
			return -1
		case v > 0:
			return 1
		}
		return 0
	}

	dx, dy := x1, y1
	deltaX, deltaY := x2-x1, y2-y1
	deltaXAbs, deltaYAbs := abs(deltaX), abs(deltaY)
	deltaXSign, deltaYSign := sign(deltaX), sign(deltaY)
	x := deltaXAbs / 2
	y := deltaYAbs / 2

	// walk an offset instead of recomputing y*stride+x per pixel. the
	// offset may be momentarily out of range while the line is off-screen;
	// it is only dereferenced when the coordinate passes the clip test
	ofs := y1*b.stride + x1
	ofsXInc := deltaXSign
	ofsYInc := deltaYSign * b.stride

	if b.clip.Contains(dx, dy) {
		b.pixels[ofs] = color
	}

	if deltaXAbs >= deltaYAbs {
		for i := 0; i < deltaXAbs; i++ {
			y += deltaYAbs
			if y >= deltaXAbs {
				y -= deltaXAbs
				dy += deltaYSign
				ofs += ofsYInc
			}
			dx += deltaXSign
			ofs += ofsXInc
			if b.clip.Contains(dx, dy) {
				b.pixels[ofs] = color
			}
		}
	} else {
		for i := 0; i < deltaYAbs; i++ {
			x += deltaXAbs
			if x >= deltaYAbs {
				x -= deltaYAbs
				dx += deltaXSign
				ofs += ofsXInc
			}
			dy += deltaYSign
			ofs += ofsYInc
			if b.clip.Contains(dx, dy) {
				b.pixels[ofs] = color
			}
		}
	}
}

// HLine draws a horizontal line from (x1, y) to (x2, y).
func (b *Bitmap) HLine(x1, x2, y int, color uint8) {
	region := RectFromCoords(x1, y, x2, y)
	if !region.ClampTo(b.clip) {
		return
	}
	row := b.pixels[b.offsetOf(region.X, region.Y):][:region.Width]
	for i := range row {
		row[i] = color
	}
}

// VLine draws a vertical line from (x, y1) to (x, y2).
func (b *Bitmap) VLine(x, y1, y2 int, color uint8) {
	region := RectFromCoords(x, y1, x, y2)
	if !region.ClampTo(b.clip) {
		return
	}
	ofs := b.offsetOf(region.X, region.Y)
	for i := 0; i < region.Height; i++ {
		b.pixels[ofs] = color
		ofs += b.stride
	}
}

// Rect draws the outline of the rectangle spanning the two corner points
// given, inclusive. Each of the four edges is drawn only if that edge was
// inside the clipping region to begin with: a rectangle hanging off the
// left of the screen keeps its top and bottom lines but gains no spurious
// left edge at the boundary.
func (b *Bitmap) Rect(x1, y1, x2, y2 int, color uint8) {
	// keep the normalized corner values around to compare against the
	// clamped region, which tells us which edges survived
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	region := Rect{x1, y1, x2 - x1 + 1, y2 - y1 + 1}
	if !region.ClampTo(b.clip) {
		return
	}

	if y1 == region.Y {
		row := b.pixels[b.offsetOf(region.X, region.Y):][:region.Width]
		for i := range row {
			row[i] = color
		}
	}
	if y2 == region.Bottom() {
		row := b.pixels[b.offsetOf(region.X, region.Bottom()):][:region.Width]
		for i := range row {
			row[i] = color
		}
	}
	if x1 == region.X {
		ofs := b.offsetOf(region.X, region.Y)
		for i := 0; i < region.Height; i++ {
			b.pixels[ofs] = color
			ofs += b.stride
		}
	}
	if x2 == region.Right() {
		ofs := b.offsetOf(region.Right(), region.Y)
		for i := 0; i < region.Height; i++ {
			b.pixels[ofs] = color
			ofs += b.stride
		}
	}
}

// FilledRect fills the rectangle spanning the two corner points given,
// inclusive.
func (b *Bitmap) FilledRect(x1, y1, x2, y2 int, color uint8) {
	region := RectFromCoords(x1, y1, x2, y2)
	if !region.ClampTo(b.clip) {
		return
	}
	ofs := b.offsetOf(region.X, region.Y)
	for i := 0; i < region.Height; i++ {
		row := b.pixels[ofs:][:region.Width]
		for j := range row {
			row[j] = color
		}
		ofs += b.stride
	}
}

// Circle draws the outline of a circle with the given center and radius
// using the midpoint algorithm.
func (b *Bitmap) Circle(centerX, centerY, radius int, color uint8) {
	x, y := 0, radius
	m := 5 - 4*radius

	for x <= y {
		b.SetPixel(centerX+x, centerY+y, color)
		b.SetPixel(centerX+x, centerY-y, color)
		b.SetPixel(centerX-x, centerY+y, color)
		b.SetPixel(centerX-x, centerY-y, color)
		b.SetPixel(centerX+y, centerY+x, color)
		b.SetPixel(centerX+y, centerY-x, color)
		b.SetPixel(centerX-y, centerY+x, color)
		b.SetPixel(centerX-y, centerY-x, color)

		if m > 0 {
			y--
			m -= 8 * y
		}
		x++
		m += 8*x + 4
	}
}

// FilledCircle fills a circle with the given center and radius, built
// from the same midpoint arcs as [Bitmap.Circle] so the two match
// pixel-for-pixel at the rim.
func (b *Bitmap) FilledCircle(centerX, centerY, radius int, color uint8) {
	x, y := 0, radius
	m := 5 - 4*radius

	for x <= y {
		b.HLine(centerX-x, centerX+x, centerY-y, color)
		b.HLine(centerX-y, centerX+y, centerY-x, color)
		b.HLine(centerX-y, centerX+y, centerY+x, color)
		b.HLine(centerX-x, centerX+x, centerY+y, color)

		if m > 0 {
			y--
			m -= 8 * y
		}
		x++
		m += 8*x + 4
	}
}
