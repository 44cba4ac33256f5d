// Package relief turns an 8-bit elevation raster into a shaded-relief image.
//
// The package implements three independent stages plus a pipeline that runs
// them:
//
//   - Colorize: maps elevation to a fixed dark-green → yellow → white ramp
//   - Shade: computes hillshade illumination with Horn's method
//   - Blend: darkens the ramp colors by the hillshade intensity
//
// Colorize and Shade only read their input, so Render runs them concurrently
// on the same raster and joins them before Blend. Inside each stage rows are
// partitioned across goroutines; every output position is written exactly once
// and results are identical to a serial run.
//
// # Light Source
//
// Azimuth is a compass bearing in degrees, clockwise from north, naming the
// direction the light comes from (315 = northwest). Altitude is the angle of
// the light above the horizon in degrees. Both are converted to radians once
// per call.
//
// # Error Handling
//
// The stages themselves cannot fail on well-formed input. Configuration and
// dimension problems are reported before any output raster is allocated:
//   - ErrInvalidConfiguration: non-positive or non-finite cell size,
//     non-finite light angles (returned by Options.Validate and Render)
//   - ErrDimensionMismatch: Blend inputs of different size
//
// Use errors.Is to test for them.
package relief
