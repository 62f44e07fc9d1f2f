package ascii

import (
	"errors"
	"math/rand"
	"testing"
)

// TestLookupPalette_Presets verifies that every preset resolves and keeps its
// configured ramp order.
func TestLookupPalette_Presets(t *testing.T) {
	for _, name := range PaletteNames() {
		p, err := LookupPalette(name)
		if err != nil {
			t.Fatalf("LookupPalette(%q): %v", name, err)
		}
		if p.Name() != name {
			t.Errorf("palette name = %q, want %q", p.Name(), name)
		}
		if got, want := p.Len(), len([]rune(PaletteRamp(name))); got != want {
			t.Errorf("palette %q has %d glyphs, want %d", name, got, want)
		}
	}
}

func TestLookupPalette_Unknown(t *testing.T) {
	_, err := LookupPalette("nope")
	if !errors.Is(err, ErrInvalidPalette) {
		t.Fatalf("err = %v, want ErrInvalidPalette", err)
	}
}

func TestNewPalette_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		ramp string
	}{
		{name: "empty ramp", ramp: ""},
		{name: "single glyph", ramp: "#"},
		{name: "wide glyph", ramp: " 漢"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPalette("custom", tc.ramp); !errors.Is(err, ErrInvalidPalette) {
				t.Errorf("NewPalette(%q) err = %v, want ErrInvalidPalette", tc.ramp, err)
			}
		})
	}
}

// TestPalette_GlyphEndpoints checks the darkest and brightest luminance map
// to the first and last glyph of the ramp.
func TestPalette_GlyphEndpoints(t *testing.T) {
	p, err := LookupPalette("matrix")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Glyph(0); got != '0' {
		t.Errorf("Glyph(0) = %q, want '0'", got)
	}
	if got := p.Glyph(255); got != '1' {
		t.Errorf("Glyph(255) = %q, want '1'", got)
	}
}

// TestPalette_GlyphMonotonic checks the core monotonicity property: for any
// pair of luminance values the brighter one never selects an earlier glyph.
func TestPalette_GlyphMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, name := range PaletteNames() {
		p, err := LookupPalette(name)
		if err != nil {
			t.Fatal(err)
		}

		index := func(lum uint8) int {
			g := p.Glyph(lum)
			for i, r := range []rune(PaletteRamp(name)) {
				if r == g {
					return i
				}
			}
			t.Fatalf("palette %q returned glyph %q outside its ramp", name, g)
			return -1
		}

		// Exhaustive over adjacent pairs, then random distant pairs.
		for lum := 0; lum < 255; lum++ {
			if index(uint8(lum)) > index(uint8(lum+1)) {
				t.Fatalf("palette %q: index(%d) > index(%d)", name, lum, lum+1)
			}
		}
		for i := 0; i < 1000; i++ {
			a := uint8(rng.Intn(256))
			b := uint8(rng.Intn(256))
			if a > b {
				a, b = b, a
			}
			if index(a) > index(b) {
				t.Fatalf("palette %q: index(%d) > index(%d)", name, a, b)
			}
		}
	}
}
