// Package raster provides the immutable 2D sample grid shared by every stage
// of the shaded-relief pipeline.
//
// A Raster is a rectangular, row-major grid of samples. Rasters are built
// once through a Builder and are read-only afterwards: each stage allocates a
// fresh output raster instead of mutating its input, so a single input raster
// can be handed to several stages running concurrently.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left sample:
//   - X: column (0 = leftmost)
//   - Y: row (0 = topmost)
//
// # Sample Types
//
//   - Elevation: 8-bit relative elevation read from a grayscale DEM
//   - RGB: 8-bit color triple; hillshade output is stored as channel-equal RGB
//
// # Boundary Handling
//
// Neighborhood operations read through SampleClamped, which replicates edge
// samples for coordinates outside the grid. Out-of-range access never fails.
package raster
