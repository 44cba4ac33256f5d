package raster

import (
	"errors"
	"fmt"
)

// ErrSampleCount is returned by New when the sample slice does not hold
// exactly width*height values.
var ErrSampleCount = errors.New("sample count does not match raster dimensions")

// Elevation is an 8-bit relative elevation sample. No physical unit is
// attached; horizontal scale is supplied separately as a cell size.
type Elevation uint8

// RGB is a color sample with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Gray returns a channel-equal RGB sample.
func Gray(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}

// Raster is an immutable width×height grid of samples stored in row-major
// order. The zero value is an empty 0×0 raster.
type Raster[T any] struct {
	width   int
	height  int
	samples []T
}

// New creates a raster from row-major samples. The slice is copied, so the
// caller may reuse it afterwards.
//
// Returns ErrSampleCount if len(samples) != width*height, or an error if
// either dimension is negative.
func New[T any](width, height int, samples []T) (*Raster[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid raster dimensions %dx%d", width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSampleCount, len(samples), width*height)
	}
	owned := make([]T, len(samples))
	copy(owned, samples)
	return &Raster[T]{width: width, height: height, samples: owned}, nil
}

// Fill creates a raster where every sample equals v.
func Fill[T any](width, height int, v T) *Raster[T] {
	b := NewBuilder[T](width, height)
	for i := range b.samples {
		b.samples[i] = v
	}
	return b.Freeze()
}

// Width returns the number of columns.
func (r *Raster[T]) Width() int { return r.width }

// Height returns the number of rows.
func (r *Raster[T]) Height() int { return r.height }

// Len returns the total sample count (width*height).
func (r *Raster[T]) Len() int { return len(r.samples) }

// At returns the sample at (x, y). Coordinates must be inside the raster;
// use SampleClamped for neighborhood reads that may leave the grid.
func (r *Raster[T]) At(x, y int) T {
	return r.samples[y*r.width+x]
}

// InBounds reports whether (x, y) addresses a sample of r.
func (r *Raster[T]) InBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// SameSize reports whether r and other have identical width and height.
func SameSize[A, B any](a *Raster[A], b *Raster[B]) bool {
	return a.width == b.width && a.height == b.height
}

// SampleClamped returns the sample at (x, y) after clamping both coordinates
// to the raster bounds, which replicates edge samples outward.
// The raster must not be empty.
func SampleClamped[T any](r *Raster[T], x, y int) T {
	return r.samples[clamp(y, 0, r.height-1)*r.width+clamp(x, 0, r.width-1)]
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
