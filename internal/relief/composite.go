package relief

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/dem-relief-mcp/internal/raster"
)

// Blend modulates color by the hillshade intensity in shade.
//
// For each pixel the intensity is shade.R/255 (shade is gray, so any channel
// works) and each output channel is color*intensity, truncated. The result is
// never brighter than color and equals it where the shade is 255.
//
// Returns an error wrapping ErrDimensionMismatch if the inputs differ in width
// or height. No output is allocated in that case.
func Blend(color, shade *raster.Raster[raster.RGB]) (*raster.Raster[raster.RGB], error) {
	if !raster.SameSize(color, shade) {
		return nil, fmt.Errorf("%w: color is %dx%d, shade is %dx%d", ErrDimensionMismatch,
			color.Width(), color.Height(), shade.Width(), shade.Height())
	}

	width, height := color.Width(), color.Height()
	out := raster.NewBuilder[raster.RGB](width, height)

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				c := color.At(x, y)
				s := shade.At(x, y).R
				out.Set(x, y, raster.RGB{
					R: modulate(c.R, s),
					G: modulate(c.G, s),
					B: modulate(c.B, s),
				})
			}
		}
	})

	return out.Freeze(), nil
}

// modulate scales channel c by intensity s/255 in integer arithmetic.
func modulate(c, s uint8) uint8 {
	return uint8(uint16(c) * uint16(s) / 255)
}
