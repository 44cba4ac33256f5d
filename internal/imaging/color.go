package imaging

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/dem-relief-mcp/internal/raster"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex string     `json:"hex"` // Hex format "#RRGGBB"
	RGB raster.RGB `json:"rgb"` // RGB components
	HSL HSLColor   `json:"hsl"` // HSL representation
}

// DescribeColor converts an RGB sample into hex, RGB and HSL form.
func DescribeColor(c raster.RGB) ColorResult {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, l := col.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return ColorResult{
		Hex: strings.ToUpper(col.Hex()),
		RGB: c,
		HSL: HSLColor{
			H: int(h) % 360,
			S: int(s * 100),
			L: int(l * 100),
		},
	}
}

// SampleColor returns the color of a rendered layer at (x, y).
//
// Returns an error if the coordinates are outside the raster.
func SampleColor(r *raster.Raster[raster.RGB], x, y int) (*ColorResult, error) {
	if !r.InBounds(x, y) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside raster bounds", x, y)
	}
	c := DescribeColor(r.At(x, y))
	return &c, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples several points of a layer in one call. If any
// point is out of bounds an error is returned and no samples are reported.
func SampleColorsMulti(r *raster.Raster[raster.RGB], points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(r, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}
