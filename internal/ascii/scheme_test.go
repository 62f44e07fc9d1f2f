package ascii

import (
	"errors"
	"math/rand"
	"testing"
)

func TestLookupScheme_Known(t *testing.T) {
	want := []string{"cyberpunk", "matrix", "neon", "true", "vintage"}
	got := SchemeNames()
	if len(got) != len(want) {
		t.Fatalf("SchemeNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SchemeNames() = %v, want %v", got, want)
		}
	}
	for _, name := range want {
		if _, err := LookupScheme(name); err != nil {
			t.Errorf("LookupScheme(%q): %v", name, err)
		}
	}
}

func TestLookupScheme_Unknown(t *testing.T) {
	_, err := LookupScheme("sepia")
	if !errors.Is(err, ErrInvalidScheme) {
		t.Fatalf("err = %v, want ErrInvalidScheme", err)
	}
}

// TestScheme_TrueIdentity verifies the true-colour scheme is a byte identity
// over the full cube boundary values and random samples.
func TestScheme_TrueIdentity(t *testing.T) {
	s, err := LookupScheme("true")
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(2))
	samples := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	}
	for i := 0; i < 1000; i++ {
		samples = append(samples, RGB{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
		})
	}

	for _, c := range samples {
		if got := s.Pixel(c); got != c {
			t.Fatalf("true scheme changed %v to %v", c, got)
		}
	}
}

// TestScheme_Saturation verifies every scheme stays inside the valid channel
// range for boundary and random inputs. uint8 outputs cannot overflow, so
// this drives the fixed-point math through its extremes looking for wrap
// artifacts (e.g. a bright input coming out dark).
func TestScheme_Saturation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, name := range SchemeNames() {
		s, err := LookupScheme(name)
		if err != nil {
			t.Fatal(err)
		}

		// White through any of the schemes must stay bright: every matrix
		// row sums to at least 0.6, so no channel may fall below the
		// saturated or scaled-down value of a max input.
		white := s.Pixel(RGB{255, 255, 255})
		black := s.Pixel(RGB{0, 0, 0})
		if black != (RGB{0, 0, 0}) {
			t.Errorf("scheme %q maps black to %v", name, black)
		}
		if white.R == 0 && white.G == 0 && white.B == 0 {
			t.Errorf("scheme %q maps white to black", name)
		}

		// A gain > 1 must clamp, not wrap. 200*1.4 = 280 → 255.
		for i := 0; i < 2000; i++ {
			in := RGB{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
			}
			out := s.Pixel(in)

			// Recompute in float and compare against the clamped value
			// with a 1-count fixed-point tolerance.
			check := func(row int, got uint8) {
				ref := float64(s.m[row][0])*float64(in.R) +
					float64(s.m[row][1])*float64(in.G) +
					float64(s.m[row][2])*float64(in.B)
				ref /= 256
				if ref > 255 {
					ref = 255
				}
				if ref < 0 {
					ref = 0
				}
				diff := ref - float64(got)
				if diff < -1.5 || diff > 1.5 {
					t.Fatalf("scheme %q channel %d: in=%v got=%d want≈%.1f", name, row, in, got, ref)
				}
			}
			check(0, out.R)
			check(1, out.G)
			check(2, out.B)
		}
	}
}

// TestScheme_Matrix verifies the matrix scheme zeroes red and blue and
// amplifies green with clamping.
func TestScheme_Matrix(t *testing.T) {
	s, err := LookupScheme("matrix")
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name string
		in   RGB
		want RGB
	}{
		{name: "pure red drops out", in: RGB{200, 0, 0}, want: RGB{0, 0, 0}},
		{name: "pure blue drops out", in: RGB{0, 0, 200}, want: RGB{0, 0, 0}},
		{name: "mid green amplified", in: RGB{0, 100, 0}, want: RGB{0, 150, 0}},
		{name: "bright green clamps", in: RGB{0, 200, 0}, want: RGB{0, 255, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Pixel(tc.in); got != tc.want {
				t.Errorf("Pixel(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

// TestScheme_Cyberpunk verifies red/blue cross-mixing with green
// suppression.
func TestScheme_Cyberpunk(t *testing.T) {
	s, err := LookupScheme("cyberpunk")
	if err != nil {
		t.Fatal(err)
	}

	out := s.Pixel(RGB{100, 100, 100})
	if out.R < 138 || out.R > 140 {
		t.Errorf("red = %d, want ~140 (1.4x blue)", out.R)
	}
	if out.B < 158 || out.B > 160 {
		t.Errorf("blue = %d, want ~160 (1.6x red)", out.B)
	}
	if out.G >= 100 {
		t.Errorf("green not suppressed: %d", out.G)
	}
}

// TestScheme_ApplyBulk verifies the bulk path matches the per-pixel path and
// passes alpha through.
func TestScheme_ApplyBulk(t *testing.T) {
	s, err := LookupScheme("vintage")
	if err != nil {
		t.Fatal(err)
	}

	src := []byte{
		10, 20, 30, 255,
		200, 150, 100, 128,
		255, 255, 255, 0,
	}
	dst := make([]byte, len(src))
	s.Apply(dst, src)

	for i := 0; i < len(src); i += 4 {
		want := s.Pixel(RGB{R: src[i], G: src[i+1], B: src[i+2]})
		got := RGB{R: dst[i], G: dst[i+1], B: dst[i+2]}
		if got != want {
			t.Errorf("pixel %d: bulk = %v, per-pixel = %v", i/4, got, want)
		}
		if dst[i+3] != src[i+3] {
			t.Errorf("pixel %d: alpha %d, want %d", i/4, dst[i+3], src[i+3])
		}
	}
}
