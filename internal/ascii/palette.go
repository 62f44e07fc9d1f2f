package ascii

import (
	"fmt"
	"sort"

	"github.com/mattn/go-runewidth"
)

// Palette is an ordered ramp of glyphs from visually emptiest to densest.
// Brightness is mapped onto the ramp with a floor division, so a brighter
// pixel never selects an earlier glyph. Palettes are immutable once built;
// switching palettes swaps the handle, never the contents.
type Palette struct {
	name   string
	glyphs []rune
}

// Character set presets from darkest to lightest.
var palettePresets = map[string]string{
	"classic":  " .:-=+*#%@",
	"blocks":   "░▒▓█",
	"simple":   " .*#",
	"detailed": " .\",:;!~*=#$@",
	"matrix":   "01",
	"dots":     "·•●",
	"lines":    "─│┌┐└┘├┤┬┴┼",
}

// DefaultPalette is the preset used when none is configured.
const DefaultPalette = "classic"

// NewPalette builds a palette from an explicit glyph ramp. The ramp must
// contain at least two glyphs and every glyph must occupy exactly one
// terminal column, otherwise the cell grid and the on-screen layout diverge.
func NewPalette(name, ramp string) (*Palette, error) {
	glyphs := []rune(ramp)
	if len(glyphs) < 2 {
		return nil, fmt.Errorf("%w: %q has %d glyphs, need at least 2", ErrInvalidPalette, name, len(glyphs))
	}
	for _, r := range glyphs {
		if runewidth.RuneWidth(r) != 1 {
			return nil, fmt.Errorf("%w: glyph %q in %q is not single-width", ErrInvalidPalette, r, name)
		}
	}
	return &Palette{name: name, glyphs: glyphs}, nil
}

// LookupPalette resolves a preset name to its palette.
func LookupPalette(name string) (*Palette, error) {
	ramp, ok := palettePresets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidPalette, name)
	}
	return NewPalette(name, ramp)
}

// PaletteNames returns the available preset names, sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(palettePresets))
	for name := range palettePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PaletteRamp returns the glyph ramp for a preset, or "" if unknown.
func PaletteRamp(name string) string {
	return palettePresets[name]
}

// Name returns the palette's preset name.
func (p *Palette) Name() string { return p.name }

// Len returns the number of glyphs in the ramp.
func (p *Palette) Len() int { return len(p.glyphs) }

// Glyph maps an 8-bit luminance value to a glyph. The index is
// floor(lum/255 * (len-1)), clamped, which keeps the mapping a
// non-decreasing function of luminance.
func (p *Palette) Glyph(lum uint8) rune {
	idx := int(lum) * (len(p.glyphs) - 1) / 255
	if idx >= len(p.glyphs) {
		idx = len(p.glyphs) - 1
	}
	return p.glyphs[idx]
}
