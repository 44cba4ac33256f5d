// Package imaging moves rasters between image files and the relief pipeline.
//
// It is the I/O side of the pipeline: DEM images are decoded into 8-bit
// elevation rasters, and rendered RGB rasters are encoded back to files,
// base64 PNG payloads, crops and preview pyramids. It also reports color
// samples from rendered layers and draws coordinate grids over them.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Elevation Decoding
//
// Any decodable image (PNG, JPEG, GIF, BMP, TIFF) is accepted. Color images
// are reduced to luminance with the standard library gray model; 16-bit
// grayscale images are quantized to 8 bits. The first band of the image is
// the only one used.
//
// # Thread Safety
//
// The DEMCache type is safe for concurrent use. Rasters are immutable, so a
// cached raster can be rendered by several goroutines at once.
//
// # Color Representation
//
// Sampled colors are reported as:
//   - Hex: 6-character format "#RRGGBB"
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside raster bounds
//   - Empty crop regions (x1 >= x2 or y1 >= y2)
//   - Unsupported output extensions
//   - File I/O errors during loading and saving
package imaging
