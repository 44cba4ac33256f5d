package relief

import (
	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/dem-relief-mcp/internal/raster"
)

// rampBlueMax caps the blue channel at half intensity so highlights stay warm.
const rampBlueMax = 128

// RampColor maps one elevation sample onto the dark-green → yellow → white
// ramp.
//
// With v = sample/255:
//   - red   = v * 255
//   - green = (1 - |v - 0.5|) * 255, peaking at mid elevation
//   - blue  = (1 - v) * 128
//
// Channels are truncated to 8 bits.
func RampColor(e raster.Elevation) raster.RGB {
	v := float32(e) / 255

	d := v - 0.5
	if d < 0 {
		d = -d
	}

	return raster.RGB{
		R: saturate(v * 255),
		G: saturate((1 - d) * 255),
		B: saturate((1 - v) * rampBlueMax),
	}
}

// Colorize applies RampColor to every sample. The output has the same
// dimensions as the input.
func Colorize(elev *raster.Raster[raster.Elevation]) *raster.Raster[raster.RGB] {
	width, height := elev.Width(), elev.Height()
	out := raster.NewBuilder[raster.RGB](width, height)

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				out.Set(x, y, RampColor(elev.At(x, y)))
			}
		}
	})

	return out.Freeze()
}

// saturate converts to uint8 by truncation, pinning out-of-range values to
// 0 or 255.
func saturate(f float32) uint8 {
	if f <= 0 || f != f {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}
