package ascii

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func solidFrame(w, h int, c color.RGBA) *Frame {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return &Frame{Img: img}
}

// TestFitGeometry_AspectCorrection mirrors the reference behaviour: a
// 200×100 source at 40 columns lands on 10 rows once the ~2:1 cell shape is
// compensated for.
func TestFitGeometry_AspectCorrection(t *testing.T) {
	testCases := []struct {
		name       string
		srcW, srcH int
		term       Geometry
		wantCols   int
		wantRows   int
	}{
		{
			name: "wide source bound by columns",
			srcW: 200, srcH: 100,
			term:     Geometry{Cols: 40, Rows: 50, CellAspect: 2.0},
			wantCols: 40,
			wantRows: 10,
		},
		{
			name: "square source stays square on screen",
			srcW: 100, srcH: 100,
			term:     Geometry{Cols: 80, Rows: 50, CellAspect: 2.0},
			wantCols: 80,
			wantRows: 40,
		},
		{
			name: "short terminal binds rows",
			srcW: 100, srcH: 100,
			term:     Geometry{Cols: 80, Rows: 10, CellAspect: 2.0},
			wantCols: 20,
			wantRows: 10,
		},
		{
			name: "zero aspect falls back to default",
			srcW: 100, srcH: 100,
			term:     Geometry{Cols: 80, Rows: 50},
			wantCols: 80,
			wantRows: 40,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FitGeometry(tc.srcW, tc.srcH, tc.term)
			if err != nil {
				t.Fatalf("FitGeometry: %v", err)
			}
			if got.Cols != tc.wantCols || got.Rows != tc.wantRows {
				t.Errorf("FitGeometry = %dx%d, want %dx%d", got.Cols, got.Rows, tc.wantCols, tc.wantRows)
			}
		})
	}
}

func TestFitGeometry_TooSmall(t *testing.T) {
	for _, term := range []Geometry{
		{Cols: 0, Rows: 20, CellAspect: 2.0},
		{Cols: 40, Rows: 0, CellAspect: 2.0},
		{Cols: 0, Rows: 0, CellAspect: 2.0},
	} {
		if _, err := FitGeometry(640, 480, term); !errors.Is(err, ErrGeometryTooSmall) {
			t.Errorf("FitGeometry(term=%+v) err = %v, want ErrGeometryTooSmall", term, err)
		}
	}
}

// TestResample_ExactDimensions verifies the resampled grid is always exactly
// rows×cols for valid geometries, including upscale-free clamping of tiny
// sources.
func TestResample_ExactDimensions(t *testing.T) {
	testCases := []struct {
		name       string
		srcW, srcH int
		cols, rows int
	}{
		{name: "downscale", srcW: 640, srcH: 480, cols: 80, rows: 24},
		{name: "tiny source", srcW: 2, srcH: 2, cols: 10, rows: 5},
		{name: "single cell", srcW: 100, srcH: 100, cols: 1, rows: 1},
		{name: "single row", srcW: 64, srcH: 48, cols: 32, rows: 1},
	}

	r := NewResampler()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			frame := solidFrame(tc.srcW, tc.srcH, color.RGBA{R: 120, G: 80, B: 40, A: 255})
			out, err := r.Resample(frame, Geometry{Cols: tc.cols, Rows: tc.rows, CellAspect: 2.0})
			if err != nil {
				t.Fatalf("Resample: %v", err)
			}
			if out.Rect.Dx() != tc.cols || out.Rect.Dy() != tc.rows {
				t.Errorf("output is %dx%d, want %dx%d", out.Rect.Dx(), out.Rect.Dy(), tc.cols, tc.rows)
			}
		})
	}
}

func TestResample_ZeroGeometry(t *testing.T) {
	r := NewResampler()
	frame := solidFrame(4, 4, color.RGBA{A: 255})

	for _, geom := range []Geometry{
		{Cols: 0, Rows: 5},
		{Cols: 5, Rows: 0},
	} {
		if _, err := r.Resample(frame, geom); !errors.Is(err, ErrGeometryTooSmall) {
			t.Errorf("Resample(geom=%+v) err = %v, want ErrGeometryTooSmall", geom, err)
		}
	}
}

// TestResample_BufferReuse verifies the target buffer survives across calls
// with the same geometry and is replaced when the geometry changes.
func TestResample_BufferReuse(t *testing.T) {
	r := NewResampler()
	frame := solidFrame(32, 32, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	geom := Geometry{Cols: 16, Rows: 8, CellAspect: 2.0}

	first, err := r.Resample(frame, geom)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Resample(frame, geom)
	if err != nil {
		t.Fatal(err)
	}
	if &first.Pix[0] != &second.Pix[0] {
		t.Error("same geometry reallocated the target buffer")
	}

	resized, err := r.Resample(frame, Geometry{Cols: 8, Rows: 4, CellAspect: 2.0})
	if err != nil {
		t.Fatal(err)
	}
	if resized.Rect.Dx() != 8 || resized.Rect.Dy() != 4 {
		t.Errorf("resized output is %dx%d, want 8x4", resized.Rect.Dx(), resized.Rect.Dy())
	}
}

// TestResample_PreservesColor verifies a solid source stays solid after
// scaling, with canonical channel order intact.
func TestResample_PreservesColor(t *testing.T) {
	r := NewResampler()
	want := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	frame := solidFrame(64, 64, want)

	out, err := r.Resample(frame, Geometry{Cols: 8, Rows: 4, CellAspect: 2.0})
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if got := out.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
