package grit

import "testing"

func TestBlendMapRange(t *testing.T) {
	bm := NewBlendMap(10, 20)
	if bm.StartColor() != 10 || bm.EndColor() != 20 {
		t.Errorf("range = %d..%d, want 10..20", bm.StartColor(), bm.EndColor())
	}
	if !bm.IsMapped(10) || !bm.IsMapped(15) || !bm.IsMapped(20) {
		t.Error("expected in-range colors to be mapped")
	}
	if bm.IsMapped(9) || bm.IsMapped(21) {
		t.Error("expected out-of-range colors to not be mapped")
	}

	// reversed bounds are normalized
	bm = NewBlendMap(20, 10)
	if bm.StartColor() != 10 || bm.EndColor() != 20 {
		t.Errorf("reversed range = %d..%d, want 10..20", bm.StartColor(), bm.EndColor())
	}
}

func TestBlendMapMappings(t *testing.T) {
	bm := NewBlendMap(5, 5)

	if !bm.SetMapping(5, 100, 42) {
		t.Fatal("SetMapping on covered color failed")
	}
	if v, ok := bm.Blend(5, 100); !ok || v != 42 {
		t.Errorf("Blend(5, 100) = %d, %v, want 42, true", v, ok)
	}
	if v, ok := bm.Blend(5, 101); !ok || v != 0 {
		t.Errorf("Blend(5, 101) = %d, %v, want 0, true", v, ok)
	}
	if _, ok := bm.Blend(6, 100); ok {
		t.Error("Blend on uncovered source color reported ok")
	}
	if bm.SetMapping(6, 0, 1) {
		t.Error("SetMapping on uncovered source color succeeded")
	}

	var table BlendMapping
	for i := range table {
		table[i] = uint8(255 - i)
	}
	if !bm.SetMappings(5, table) {
		t.Fatal("SetMappings failed")
	}
	if v, _ := bm.Blend(5, 0); v != 255 {
		t.Errorf("Blend(5, 0) = %d, want 255", v)
	}
}

func TestColorizedBlendMapCoversSingleColor(t *testing.T) {
	p := DefaultPalette()
	bm := NewColorizedBlendMap(16, 31, p)

	if bm.StartColor() != 16 || bm.EndColor() != 16 {
		t.Errorf("range = %d..%d, want just the gradient start", bm.StartColor(), bm.EndColor())
	}

	// blending over black picks the dark end of the gradient, over white
	// the bright end; entries 16..31 are a dark-to-bright gray ramp
	overBlack, _ := bm.Blend(16, 0)
	overWhite, _ := bm.Blend(16, 15)
	if overBlack <= overWhite {
		// the table maps luminance inverted into the gradient: bright
		// destinations land near the start
		t.Errorf("Blend over black = %d, over white = %d, want black > white", overBlack, overWhite)
	}
	if overBlack < 16 || overBlack > 31 || overWhite < 16 || overWhite > 31 {
		t.Errorf("blend results %d, %d outside gradient 16..31", overBlack, overWhite)
	}
}

func TestTranslucencyBlendMapEndpoints(t *testing.T) {
	p := DefaultPalette()

	// fully opaque: blending any source over any destination yields the
	// source color (or its nearest palette match, which for palette
	// entries is itself)
	opaque := NewTranslucencyBlendMap(1, 1, 1, p)
	if v, ok := opaque.Blend(12, 1); !ok || v != 12 {
		t.Errorf("opaque Blend(12, 1) = %d, %v, want 12", v, ok)
	}

	// fully transparent: destination survives
	transparent := NewTranslucencyBlendMap(0, 0, 0, p)
	if v, ok := transparent.Blend(12, 1); !ok || v != 1 {
		t.Errorf("transparent Blend(12, 1) = %d, %v, want 1", v, ok)
	}
}
