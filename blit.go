package grit

// clipBlit clips a source blit region against the destination clipping
// region, adjusting the destination coordinates as needed. For flipped
// blits the source region must be trimmed on the opposite side, since the
// edge pixels that survive clipping come from the other end of the row or
// column. Returns false when nothing would be visible.
func clipBlit(destClip Rect, blitRect *Rect, destX, destY *int, horizontalFlip, verticalFlip bool) bool {
	// off the left edge?
	if *destX < destClip.X {
		// completely?
		if *destX+blitRect.Width-1 < destClip.X {
			return false
		}
		offset := destClip.X - *destX
		if !horizontalFlip {
			blitRect.X += offset
		}
		blitRect.Width -= offset
		*destX = destClip.X
	}

	// off the right edge?
	if *destX+blitRect.Width-1 > destClip.Right() {
		// completely?
		if *destX > destClip.Right() {
			return false
		}
		offset := *destX + blitRect.Width - 1 - destClip.Right()
		if horizontalFlip {
			blitRect.X += offset
		}
		blitRect.Width -= offset
	}

	// off the top edge?
	if *destY < destClip.Y {
		if *destY+blitRect.Height-1 < destClip.Y {
			return false
		}
		offset := destClip.Y - *destY
		if !verticalFlip {
			blitRect.Y += offset
		}
		blitRect.Height -= offset
		*destY = destClip.Y
	}

	// off the bottom edge?
	if *destY+blitRect.Height-1 > destClip.Bottom() {
		if *destY > destClip.Bottom() {
			return false
		}
		offset := *destY + blitRect.Height - 1 - destClip.Bottom()
		if verticalFlip {
			blitRect.Y += offset
		}
		blitRect.Height -= offset
	}

	return true
}

// prepareBlit clamps region to the source bounds and clips it against the
// destination clipping region. Returns false when there is nothing to draw.
func (b *Bitmap) prepareBlit(src *Bitmap, region *Rect, x, y *int, hflip, vflip bool) bool {
	if !region.ClampTo(src.Bounds()) {
		return false
	}
	return clipBlit(b.clip, region, x, y, hflip, vflip)
}

// perPixelBlit walks the (already clipped) source region and destination
// area in lockstep, calling plot once per pixel pair.
func (b *Bitmap) perPixelBlit(src *Bitmap, region Rect, x, y int, plot func(s uint8, d *uint8)) {
	srcOfs := src.offsetOf(region.X, region.Y)
	dstOfs := b.offsetOf(x, y)
	for row := 0; row < region.Height; row++ {
		srcRow := src.pixels[srcOfs:][:region.Width]
		dstRow := b.pixels[dstOfs:][:region.Width]
		for i, s := range srcRow {
			plot(s, &dstRow[i])
		}
		srcOfs += src.stride
		dstOfs += b.stride
	}
}

// perPixelFlippedBlit is perPixelBlit with the source walked right-to-left
// and/or bottom-to-top.
func (b *Bitmap) perPixelFlippedBlit(src *Bitmap, region Rect, x, y int, hflip, vflip bool, plot func(s uint8, d *uint8)) {
	srcX, srcY := region.X, region.Y
	xInc, rowInc := 1, src.stride
	if hflip {
		srcX = region.Right()
		xInc = -1
	}
	if vflip {
		srcY = region.Bottom()
		rowInc = -src.stride
	}

	srcOfs := src.offsetOf(srcX, srcY)
	dstOfs := b.offsetOf(x, y)
	for row := 0; row < region.Height; row++ {
		so := srcOfs
		dstRow := b.pixels[dstOfs:][:region.Width]
		for i := range dstRow {
			plot(src.pixels[so], &dstRow[i])
			so += xInc
		}
		srcOfs += rowInc
		dstOfs += b.stride
	}
}

// Blit copies all of src onto the bitmap with its top-left corner at
// (x, y), clipped to the destination clipping region.
func (b *Bitmap) Blit(src *Bitmap, x, y int) {
	b.BlitRegion(src, src.Bounds(), x, y)
}

// BlitRegion copies the given region of src onto the bitmap with its
// top-left corner at (x, y), clipped to the destination clipping region.
func (b *Bitmap) BlitRegion(src *Bitmap, region Rect, x, y int) {
	if !b.prepareBlit(src, &region, &x, &y, false, false) {
		return
	}
	srcOfs := src.offsetOf(region.X, region.Y)
	dstOfs := b.offsetOf(x, y)
	for row := 0; row < region.Height; row++ {
		copy(b.pixels[dstOfs:][:region.Width], src.pixels[srcOfs:][:region.Width])
		srcOfs += src.stride
		dstOfs += b.stride
	}
}

// TransparentBlit copies src onto the bitmap at (x, y), skipping source
// pixels equal to transparentColor.
func (b *Bitmap) TransparentBlit(src *Bitmap, x, y int, transparentColor uint8) {
	b.TransparentBlitRegion(src, src.Bounds(), x, y, transparentColor)
}

// TransparentBlitRegion copies the given region of src onto the bitmap at
// (x, y), skipping source pixels equal to transparentColor.
func (b *Bitmap) TransparentBlitRegion(src *Bitmap, region Rect, x, y int, transparentColor uint8) {
	if !b.prepareBlit(src, &region, &x, &y, false, false) {
		return
	}
	b.perPixelBlit(src, region, x, y, func(s uint8, d *uint8) {
		if s != transparentColor {
			*d = s
		}
	})
}

// FlippedBlit copies src onto the bitmap at (x, y), mirrored horizontally
// and/or vertically.
func (b *Bitmap) FlippedBlit(src *Bitmap, x, y int, horizontalFlip, verticalFlip bool) {
	b.FlippedBlitRegion(src, src.Bounds(), x, y, horizontalFlip, verticalFlip)
}

// FlippedBlitRegion copies the given region of src onto the bitmap at
// (x, y), mirrored horizontally and/or vertically.
func (b *Bitmap) FlippedBlitRegion(src *Bitmap, region Rect, x, y int, horizontalFlip, verticalFlip bool) {
	if !b.prepareBlit(src, &region, &x, &y, horizontalFlip, verticalFlip) {
		return
	}
	b.perPixelFlippedBlit(src, region, x, y, horizontalFlip, verticalFlip, func(s uint8, d *uint8) {
		*d = s
	})
}

// TransparentFlippedBlit copies src onto the bitmap at (x, y), mirrored
// and skipping source pixels equal to transparentColor.
func (b *Bitmap) TransparentFlippedBlit(src *Bitmap, x, y int, transparentColor uint8, horizontalFlip, verticalFlip bool) {
	b.TransparentFlippedBlitRegion(src, src.Bounds(), x, y, transparentColor, horizontalFlip, verticalFlip)
}

// TransparentFlippedBlitRegion copies the given region of src onto the
// bitmap at (x, y), mirrored and skipping source pixels equal to
// transparentColor.
func (b *Bitmap) TransparentFlippedBlitRegion(src *Bitmap, region Rect, x, y int, transparentColor uint8, horizontalFlip, verticalFlip bool) {
	if !b.prepareBlit(src, &region, &x, &y, horizontalFlip, verticalFlip) {
		return
	}
	b.perPixelFlippedBlit(src, region, x, y, horizontalFlip, verticalFlip, func(s uint8, d *uint8) {
		if s != transparentColor {
			*d = s
		}
	})
}

// OffsetBlit copies src onto the bitmap at (x, y) with every pixel's
// palette index shifted by offset, wrapping modulo 256. Useful for
// palette-based tinting when the palette is arranged in runs.
func (b *Bitmap) OffsetBlit(src *Bitmap, x, y int, offset uint8) {
	b.OffsetBlitRegion(src, src.Bounds(), x, y, offset)
}

// OffsetBlitRegion is OffsetBlit restricted to a region of src.
func (b *Bitmap) OffsetBlitRegion(src *Bitmap, region Rect, x, y int, offset uint8) {
	if !b.prepareBlit(src, &region, &x, &y, false, false) {
		return
	}
	b.perPixelBlit(src, region, x, y, func(s uint8, d *uint8) {
		*d = s + offset
	})
}

// TransparentOffsetBlit is OffsetBlit skipping source pixels equal to
// transparentColor. The transparency check uses the unshifted index.
func (b *Bitmap) TransparentOffsetBlit(src *Bitmap, x, y int, transparentColor, offset uint8) {
	b.TransparentOffsetBlitRegion(src, src.Bounds(), x, y, transparentColor, offset)
}

// TransparentOffsetBlitRegion is TransparentOffsetBlit restricted to a
// region of src.
func (b *Bitmap) TransparentOffsetBlitRegion(src *Bitmap, region Rect, x, y int, transparentColor, offset uint8) {
	if !b.prepareBlit(src, &region, &x, &y, false, false) {
		return
	}
	b.perPixelBlit(src, region, x, y, func(s uint8, d *uint8) {
		if s != transparentColor {
			*d = s + offset
		}
	})
}

// BlendedBlit copies src onto the bitmap at (x, y), passing each source
// and destination pixel pair through the blend map. Pairs the map does not
// cover are copied unblended.
func (b *Bitmap) BlendedBlit(src *Bitmap, x, y int, blendMap *BlendMap) {
	b.BlendedBlitRegion(src, src.Bounds(), x, y, blendMap)
}

// BlendedBlitRegion is BlendedBlit restricted to a region of src.
func (b *Bitmap) BlendedBlitRegion(src *Bitmap, region Rect, x, y int, blendMap *BlendMap) {
	if !b.prepareBlit(src, &region, &x, &y, false, false) {
		return
	}
	b.perPixelBlit(src, region, x, y, func(s uint8, d *uint8) {
		if blended, ok := blendMap.Blend(s, *d); ok {
			*d = blended
		} else {
			*d = s
		}
	})
}

// TransparentBlendedBlit is BlendedBlit skipping source pixels equal to
// transparentColor.
func (b *Bitmap) TransparentBlendedBlit(src *Bitmap, x, y int, transparentColor uint8, blendMap *BlendMap) {
	b.TransparentBlendedBlitRegion(src, src.Bounds(), x, y, transparentColor, blendMap)
}

// TransparentBlendedBlitRegion is TransparentBlendedBlit restricted to a
// region of src.
func (b *Bitmap) TransparentBlendedBlitRegion(src *Bitmap, region Rect, x, y int, transparentColor uint8, blendMap *BlendMap) {
	if !b.prepareBlit(src, &region, &x, &y, false, false) {
		return
	}
	b.perPixelBlit(src, region, x, y, func(s uint8, d *uint8) {
		if s == transparentColor {
			return
		}
		if blended, ok := blendMap.Blend(s, *d); ok {
			*d = blended
		} else {
			*d = s
		}
	})
}

// ScaledBlit draws the given region of src stretched (or shrunk) to fill
// destRect, sampling nearest-neighbour. Destination pixels outside the
// clipping region are skipped, so the scale factor is unaffected by
// clipping.
func (b *Bitmap) ScaledBlit(src *Bitmap, region Rect, destRect Rect) {
	b.scaledBlit(src, region, destRect, func(s uint8, d *uint8) {
		*d = s
	})
}

// ScaledTransparentBlit is ScaledBlit skipping source pixels equal to
// transparentColor.
func (b *Bitmap) ScaledTransparentBlit(src *Bitmap, region Rect, destRect Rect, transparentColor uint8) {
	b.scaledBlit(src, region, destRect, func(s uint8, d *uint8) {
		if s != transparentColor {
			*d = s
		}
	})
}

func (b *Bitmap) scaledBlit(src *Bitmap, region Rect, destRect Rect, plot func(s uint8, d *uint8)) {
	if !region.ClampTo(src.Bounds()) || destRect.IsEmpty() {
		return
	}

	// iterate destination pixels and reverse-map each to a source pixel,
	// so no gaps appear at any scale factor
	visible := destRect
	if !visible.ClampTo(b.clip) {
		return
	}
	for dy := visible.Y; dy <= visible.Bottom(); dy++ {
		sy := region.Y + (dy-destRect.Y)*region.Height/destRect.Height
		srcRow := src.pixels[src.offsetOf(0, sy):]
		dstRow := b.pixels[b.offsetOf(0, dy):]
		for dx := visible.X; dx <= visible.Right(); dx++ {
			sx := region.X + (dx-destRect.X)*region.Width/destRect.Width
			plot(srcRow[sx], &dstRow[dx])
		}
	}
}
