package raster

// Builder assembles a Raster in a preallocated buffer.
//
// The full width*height buffer is allocated up front. Each position may be
// written in any order; goroutines writing disjoint positions (for example
// disjoint row ranges) need no synchronization. Freeze hands the buffer to an
// immutable Raster and detaches it from the builder, so later writes panic
// instead of mutating a published raster.
type Builder[T any] struct {
	width   int
	height  int
	samples []T
}

// NewBuilder allocates a builder for a width×height raster. Negative
// dimensions are treated as zero.
func NewBuilder[T any](width, height int) *Builder[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Builder[T]{
		width:   width,
		height:  height,
		samples: make([]T, width*height),
	}
}

// Width returns the number of columns being built.
func (b *Builder[T]) Width() int { return b.width }

// Height returns the number of rows being built.
func (b *Builder[T]) Height() int { return b.height }

// Set writes the sample at (x, y).
func (b *Builder[T]) Set(x, y int, v T) {
	b.samples[y*b.width+x] = v
}

// Freeze returns the finished raster. The builder must not be used afterwards.
func (b *Builder[T]) Freeze() *Raster[T] {
	r := &Raster[T]{width: b.width, height: b.height, samples: b.samples}
	b.samples = nil
	return r
}
