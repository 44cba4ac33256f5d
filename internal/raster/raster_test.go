package raster

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	samples := []Elevation{1, 2, 3, 4, 5, 6}
	r, err := New(3, 2, samples)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if r.Width() != 3 || r.Height() != 2 {
		t.Errorf("dimensions: got %dx%d, want 3x2", r.Width(), r.Height())
	}
	if r.Len() != 6 {
		t.Errorf("Len: got %d, want 6", r.Len())
	}

	// Row-major: (2,1) is the last sample
	if got := r.At(2, 1); got != 6 {
		t.Errorf("At(2,1): got %d, want 6", got)
	}
	if got := r.At(0, 1); got != 4 {
		t.Errorf("At(0,1): got %d, want 4", got)
	}
}

func TestNew_CopiesSamples(t *testing.T) {
	samples := []Elevation{10, 20, 30, 40}
	r, err := New(2, 2, samples)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	samples[0] = 99
	if got := r.At(0, 0); got != 10 {
		t.Errorf("raster changed after caller mutated input: got %d, want 10", got)
	}
}

func TestNew_InvalidSampleCount(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		count         int
	}{
		{"too few", 3, 3, 8},
		{"too many", 2, 2, 5},
		{"empty for non-empty", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.height, make([]Elevation, tt.count))
			if !errors.Is(err, ErrSampleCount) {
				t.Errorf("got %v, want ErrSampleCount", err)
			}
		})
	}
}

func TestNew_NegativeDimensions(t *testing.T) {
	if _, err := New[Elevation](-1, 2, nil); err == nil {
		t.Error("New should fail for negative width")
	}
}

func TestFill(t *testing.T) {
	r := Fill(4, 3, Gray(77))
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if got := r.At(x, y); got != (RGB{77, 77, 77}) {
				t.Fatalf("At(%d,%d): got %+v, want gray 77", x, y, got)
			}
		}
	}
}

func TestSampleClamped(t *testing.T) {
	// 3x3 grid with values 0..8
	samples := make([]Elevation, 9)
	for i := range samples {
		samples[i] = Elevation(i)
	}
	r, _ := New(3, 3, samples)

	tests := []struct {
		name string
		x, y int
		want Elevation
	}{
		{"inside", 1, 1, 4},
		{"left of grid", -1, 1, 3},
		{"above grid", 1, -5, 1},
		{"right of grid", 3, 0, 2},
		{"below grid", 0, 10, 6},
		{"top-left corner", -1, -1, 0},
		{"bottom-right corner", 4, 4, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SampleClamped(r, tt.x, tt.y); got != tt.want {
				t.Errorf("SampleClamped(%d,%d): got %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSameSize(t *testing.T) {
	a := Fill[Elevation](10, 10, 0)
	b := Fill(10, 10, RGB{})
	c := Fill(10, 11, RGB{})

	if !SameSize(a, b) {
		t.Error("10x10 rasters should have the same size")
	}
	if SameSize(b, c) {
		t.Error("10x10 and 10x11 rasters should differ")
	}
}

func TestInBounds(t *testing.T) {
	r := Fill[Elevation](5, 4, 0)
	if !r.InBounds(4, 3) {
		t.Error("(4,3) should be inside a 5x4 raster")
	}
	if r.InBounds(5, 0) || r.InBounds(0, 4) || r.InBounds(-1, 0) {
		t.Error("out-of-range coordinates reported as in bounds")
	}
}

func TestBuilder(t *testing.T) {
	b := NewBuilder[RGB](2, 2)
	// Write in reverse order; any order is allowed
	b.Set(1, 1, RGB{R: 4})
	b.Set(0, 1, RGB{R: 3})
	b.Set(1, 0, RGB{R: 2})
	b.Set(0, 0, RGB{R: 1})

	r := b.Freeze()
	want := []uint8{1, 2, 3, 4}
	for i, w := range want {
		if got := r.At(i%2, i/2).R; got != w {
			t.Errorf("sample %d: got %d, want %d", i, got, w)
		}
	}
}

func TestBuilder_SetAfterFreezePanics(t *testing.T) {
	b := NewBuilder[Elevation](2, 2)
	r := b.Freeze()

	defer func() {
		if recover() == nil {
			t.Error("Set after Freeze should panic")
		}
		if r.At(0, 0) != 0 {
			t.Error("frozen raster was modified")
		}
	}()
	b.Set(0, 0, 200)
}

func TestNewBuilder_NegativeDimensions(t *testing.T) {
	b := NewBuilder[Elevation](-3, 2)
	r := b.Freeze()
	if r.Width() != 0 || r.Len() != 0 {
		t.Errorf("got %dx%d with %d samples, want empty", r.Width(), r.Height(), r.Len())
	}
}
