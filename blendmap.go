package grit

// BlendMapping is one source color's lookup table: indexed by destination
// color, yielding the blended color.
type BlendMapping [PaletteSize]uint8

// BlendMap matches source colors against destination colors to produce
// blended colors, entirely through table lookups. A map covers a
// contiguous range of source colors; source colors outside the range are
// not blended and the blit or triangle using the map draws them as-is.
type BlendMap struct {
	startColor uint8
	endColor   uint8
	mapping    []BlendMapping
}

// NewBlendMap creates a blend map covering the inclusive source color
// range given, with all mappings initially zero. The bounds may be given
// in either order; equal bounds make a single-color map.
func NewBlendMap(startColor, endColor uint8) *BlendMap {
	if startColor > endColor {
		startColor, endColor = endColor, startColor
	}
	return &BlendMap{
		startColor: startColor,
		endColor:   endColor,
		mapping:    make([]BlendMapping, int(endColor)-int(startColor)+1),
	}
}

// NewColorizedBlendMap creates a single-source-color blend map that maps
// every destination color onto the gradient given, weighted by the
// destination's luminance in palette. Drawing a shape filled with the
// gradient's starting color through this map produces a tinted
// see-through overlay. The gradient's starting color is the map's one
// source color.
func NewColorizedBlendMap(gradientStart, gradientEnd uint8, palette *Palette) *BlendMap {
	if gradientStart > gradientEnd {
		gradientStart, gradientEnd = gradientEnd, gradientStart
	}
	gradientSize := int(gradientEnd) - int(gradientStart) + 1
	sourceColor := gradientStart

	bm := NewBlendMap(sourceColor, sourceColor)
	for idx := 0; idx < PaletteSize; idx++ {
		lit := int(palette[idx].Luminance() * 255.0)
		blended := gradientSize - 1 - lit/(256/gradientSize) + int(sourceColor)
		bm.SetMapping(sourceColor, uint8(idx), uint8(blended))
	}
	return bm
}

// NewLuminanceBlendMap creates a full-range blend map that combines the
// source and destination luminance values through weigh (both arguments
// and the result in [0, 1]) and maps the result onto the gradient given.
func NewLuminanceBlendMap(gradientStart, gradientEnd uint8, palette *Palette, weigh func(src, dest float64) float64) *BlendMap {
	if gradientStart > gradientEnd {
		gradientStart, gradientEnd = gradientEnd, gradientStart
	}
	gradientSize := int(gradientEnd) - int(gradientStart) + 1

	bm := NewBlendMap(0, 255)
	for sourceColor := 0; sourceColor < PaletteSize; sourceColor++ {
		srcLum := palette[sourceColor].Luminance()
		for destColor := 0; destColor < PaletteSize; destColor++ {
			weight := int(weigh(srcLum, palette[destColor].Luminance()) * 255.0)
			if weight < 0 {
				weight = 0
			} else if weight > 255 {
				weight = 255
			}
			blended := gradientSize - 1 - weight/(256/gradientSize) + int(gradientStart)
			bm.SetMapping(uint8(sourceColor), uint8(destColor), uint8(blended))
		}
	}
	return bm
}

// NewTranslucencyBlendMap creates a full-range blend map approximating
// alpha blending at the given per-channel opacities (0 transparent, 1
// opaque), by searching palette for the nearest match of every blended
// pair. Building it computes 65536 palette searches, so it is slow; build
// once and reuse. Quality depends entirely on the palette's coverage.
func NewTranslucencyBlendMap(blendR, blendG, blendB float64, palette *Palette) *BlendMap {
	lerp := func(a, b uint8, t float64) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}

	bm := NewBlendMap(0, 255)
	for source := 0; source < PaletteSize; source++ {
		sc := palette[source]
		mapping := &bm.mapping[source]
		for dest := 0; dest < PaletteSize; dest++ {
			dc := palette[dest]
			mapping[dest] = palette.FindColor(Color{
				R: lerp(dc.R, sc.R, blendR),
				G: lerp(dc.G, sc.G, blendG),
				B: lerp(dc.B, sc.B, blendB),
			})
		}
	}
	return bm
}

// StartColor returns the first source color the map covers.
func (bm *BlendMap) StartColor() uint8 {
	return bm.startColor
}

// EndColor returns the last source color the map covers.
func (bm *BlendMap) EndColor() uint8 {
	return bm.endColor
}

// IsMapped reports whether the map covers the given source color.
func (bm *BlendMap) IsMapped(color uint8) bool {
	return color >= bm.startColor && color <= bm.endColor
}

// Mapping returns the destination lookup table for the given source
// color, or nil if the map does not cover it. The returned table is live;
// writes through it alter the map.
func (bm *BlendMap) Mapping(sourceColor uint8) *BlendMapping {
	if !bm.IsMapped(sourceColor) {
		return nil
	}
	return &bm.mapping[sourceColor-bm.startColor]
}

// SetMapping records that sourceColor drawn over destColor produces
// blendedColor. Source colors outside the map's range are ignored and
// false is returned.
func (bm *BlendMap) SetMapping(sourceColor, destColor, blendedColor uint8) bool {
	m := bm.Mapping(sourceColor)
	if m == nil {
		return false
	}
	m[destColor] = blendedColor
	return true
}

// SetMappings sets sourceColor's entire destination table at once.
func (bm *BlendMap) SetMappings(sourceColor uint8, mappings BlendMapping) bool {
	m := bm.Mapping(sourceColor)
	if m == nil {
		return false
	}
	*m = mappings
	return true
}

// Blend looks up the blended color for drawing sourceColor over
// destColor. ok is false when the map does not cover sourceColor, in
// which case the caller decides what to draw.
func (bm *BlendMap) Blend(sourceColor, destColor uint8) (blended uint8, ok bool) {
	m := bm.Mapping(sourceColor)
	if m == nil {
		return 0, false
	}
	return m[destColor], true
}
