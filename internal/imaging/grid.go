package imaging

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/dem-relief-mcp/internal/raster"
)

// GridOptions controls GridOverlay.
type GridOptions struct {
	// Spacing is the distance between grid lines in pixels. Must be > 0.
	Spacing int

	// Labels prints "x,y" at every grid intersection.
	Labels bool

	// Color is the line color as "#RRGGBB" or "#RGB". Empty means red.
	Color string

	// Opacity blends lines over the layer, in (0, 1]. Zero means opaque.
	Opacity float64
}

// GridOverlayResult is the encoded layer with its grid spacing.
type GridOverlayResult struct {
	EncodedImage
	GridSpacing int `json:"grid_spacing"`
}

// GridOverlay draws a coordinate grid over a rendered layer so pixel
// positions can be read off before probing. Lines sit on multiples of
// Spacing, excluding 0. The input raster is not modified.
func GridOverlay(r *raster.Raster[raster.RGB], opts GridOptions) (*raster.Raster[raster.RGB], error) {
	if opts.Spacing <= 0 {
		return nil, fmt.Errorf("grid spacing must be positive, got %d", opts.Spacing)
	}
	if opts.Color == "" {
		opts.Color = "#FF0000"
	}
	line, err := colorful.Hex(opts.Color)
	if err != nil {
		return nil, fmt.Errorf("invalid grid color %q: %w", opts.Color, err)
	}
	if opts.Opacity <= 0 || opts.Opacity > 1 {
		opts.Opacity = 1
	}

	w, h := r.Width(), r.Height()
	samples := make([]raster.RGB, 0, r.Len())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			samples = append(samples, r.At(x, y))
		}
	}

	tint := func(x, y int, c colorful.Color, t float64) {
		if x < 0 || y < 0 || x >= w || y >= h {
			return
		}
		i := y*w + x
		samples[i] = blendRGB(samples[i], c, t)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x > 0 && x%opts.Spacing == 0) || (y > 0 && y%opts.Spacing == 0) {
				tint(x, y, line, opts.Opacity)
			}
		}
	}

	if opts.Labels {
		for y := opts.Spacing; y < h; y += opts.Spacing {
			for x := opts.Spacing; x < w; x += opts.Spacing {
				drawLabel(x+2, y+2, strconv.Itoa(x)+","+strconv.Itoa(y), tint)
			}
		}
	}

	return raster.New(w, h, samples)
}

func blendRGB(base raster.RGB, c colorful.Color, t float64) raster.RGB {
	b := colorful.Color{
		R: float64(base.R) / 255,
		G: float64(base.G) / 255,
		B: float64(base.B) / 255,
	}
	r, g, bl := b.BlendRgb(c, t).RGB255()
	return raster.RGB{R: r, G: g, B: bl}
}

// glyphs is a 3x5 bitmap font. Each row uses the low three bits, most
// significant bit leftmost.
var glyphs = map[rune][5]uint8{
	'0': {7, 5, 5, 5, 7},
	'1': {2, 6, 2, 2, 7},
	'2': {7, 1, 7, 4, 7},
	'3': {7, 1, 7, 1, 7},
	'4': {5, 5, 7, 1, 1},
	'5': {7, 4, 7, 1, 7},
	'6': {7, 4, 7, 5, 7},
	'7': {7, 1, 1, 1, 1},
	'8': {7, 5, 7, 5, 7},
	'9': {7, 5, 7, 1, 7},
	',': {0, 0, 0, 2, 2},
}

var (
	labelForeground = colorful.Color{R: 1, G: 1, B: 1}
	labelBackground = colorful.Color{}
)

// drawLabel renders text with its top-left corner at (x, y) on a darkened
// box, clipping at the raster edge.
func drawLabel(x, y int, text string, tint func(x, y int, c colorful.Color, t float64)) {
	const advance = 4

	for dy := -1; dy < 7; dy++ {
		for dx := -1; dx < len(text)*advance; dx++ {
			tint(x+dx, y+dy, labelBackground, 0.7)
		}
	}

	for i, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		for row, bits := range glyph {
			for col := 0; col < 3; col++ {
				if bits&(4>>col) != 0 {
					tint(x+i*advance+col, y+row, labelForeground, 1)
				}
			}
		}
	}
}
