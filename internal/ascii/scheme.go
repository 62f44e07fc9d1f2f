package ascii

import (
	"fmt"
	"sort"
)

// Scheme is a colour transform applied per pixel. Every scheme is expressed
// as a 3×3 matrix over the RGB triple with output channels saturating at
// [0,255], so the whole frame can be transformed in one bulk pass with no
// per-pixel branching.
type Scheme struct {
	name string
	// m is the row-major transform matrix in 8.8 fixed point:
	// out[i] = (m[i][0]*r + m[i][1]*g + m[i][2]*b) >> 8, clamped.
	m [3][3]int32
}

func newScheme(name string, m [3][3]float64) *Scheme {
	s := &Scheme{name: name}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s.m[i][j] = int32(m[i][j] * 256)
		}
	}
	return s
}

var schemePresets = map[string]*Scheme{
	// True colours straight from the camera.
	"true": newScheme("true", [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}),
	// Green only, Matrix style.
	"matrix": newScheme("matrix", [3][3]float64{
		{0, 0, 0},
		{0, 1.5, 0},
		{0, 0, 0},
	}),
	// Brighter, more vibrant.
	"neon": newScheme("neon", [3][3]float64{
		{1.4, 0, 0},
		{0, 1.4, 0},
		{0, 0, 1.2},
	}),
	// Fixed sepia coefficient matrix.
	"vintage": newScheme("vintage", [3][3]float64{
		{0.393, 0.769, 0.189},
		{0.349, 0.686, 0.168},
		{0.272, 0.534, 0.131},
	}),
	// Magenta/purple bias: red and blue cross-mixed, green suppressed.
	"cyberpunk": newScheme("cyberpunk", [3][3]float64{
		{0, 0, 1.4},
		{0, 0.6, 0},
		{1.6, 0, 0},
	}),
}

// DefaultScheme is the scheme used when none is configured.
const DefaultScheme = "true"

// LookupScheme resolves a scheme name to its transform.
func LookupScheme(name string) (*Scheme, error) {
	s, ok := schemePresets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown scheme %q", ErrInvalidScheme, name)
	}
	return s, nil
}

// SchemeNames returns the available scheme names, sorted.
func SchemeNames() []string {
	names := make([]string, 0, len(schemePresets))
	for name := range schemePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the scheme's name.
func (s *Scheme) Name() string { return s.name }

// Pixel transforms a single colour triple.
func (s *Scheme) Pixel(c RGB) RGB {
	return RGB{
		R: satMul3(s.m[0], c),
		G: satMul3(s.m[1], c),
		B: satMul3(s.m[2], c),
	}
}

// Apply transforms a whole RGBA pixel buffer from src into dst. Both buffers
// hold 4 bytes per pixel and must be the same length. Alpha is passed
// through. src and dst may alias.
func (s *Scheme) Apply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		c := RGB{R: src[i], G: src[i+1], B: src[i+2]}
		dst[i] = satMul3(s.m[0], c)
		dst[i+1] = satMul3(s.m[1], c)
		dst[i+2] = satMul3(s.m[2], c)
		dst[i+3] = src[i+3]
	}
}

func satMul3(row [3]int32, c RGB) uint8 {
	v := (row[0]*int32(c.R) + row[1]*int32(c.G) + row[2]*int32(c.B)) >> 8
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
