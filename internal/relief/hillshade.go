package relief

import (
	"math"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/dem-relief-mcp/internal/raster"
)

// Gradient estimates the surface gradient at (x, y) with Horn's method.
//
// The 3x3 neighborhood is read through raster.SampleClamped, so border pixels
// reuse their edge neighbors. Weighted central differences:
//
//	dz/dx = ((NE + 2E + SE) - (NW + 2W + SW)) / (8 * cellSize)
//	dz/dy = ((SW + 2S + SE) - (NW + 2N + NE)) / (8 * cellSize)
//
// The center sample does not contribute. Y grows downward (south), matching
// image row order.
func Gradient(elev *raster.Raster[raster.Elevation], x, y int, cellSize float64) (dzdx, dzdy float64) {
	z := func(dx, dy int) float64 {
		return float64(raster.SampleClamped(elev, x+dx, y+dy))
	}

	nw, n, ne := z(-1, -1), z(0, -1), z(1, -1)
	w, e := z(-1, 0), z(1, 0)
	sw, s, se := z(-1, 1), z(0, 1), z(1, 1)

	dzdx = ((ne + 2*e + se) - (nw + 2*w + sw)) / (8 * cellSize)
	dzdy = ((sw + 2*s + se) - (nw + 2*n + ne)) / (8 * cellSize)
	return dzdx, dzdy
}

// Slope returns the angle between the surface normal and vertical, in radians.
func Slope(dzdx, dzdy float64) float64 {
	return math.Atan(math.Sqrt(dzdx*dzdx + dzdy*dzdy))
}

// Aspect returns the direction of steepest descent as a counter-clockwise
// angle from east in [0, 2π), i.e. atan2(dzdy, -dzdx) wrapped into range.
//
// When dzdx is zero the result is π/2 for dzdy >= 0 and 3π/2 otherwise; a flat
// cell therefore resolves to π/2.
func Aspect(dzdx, dzdy float64) float64 {
	if dzdx == 0 {
		if dzdy < 0 {
			return 3 * math.Pi / 2
		}
		return math.Pi / 2
	}

	aspect := math.Atan(dzdy / -dzdx)
	if dzdx > 0 {
		aspect += math.Pi
	}
	if aspect < 0 {
		aspect += 2 * math.Pi
	}
	return aspect
}

// Illumination returns the hillshade intensity (0-255) of a cell with the
// given slope and aspect.
//
//	hs = cos(alt)·cos(slope) + sin(alt)·sin(slope)·cos(az - aspect)
//
// Negative values (cells facing away from the light) are floored to 0; the
// result is scaled by 255 and rounded.
func Illumination(slope, aspect, azimuthRad, altitudeRad float64) uint8 {
	hs := math.Cos(altitudeRad)*math.Cos(slope) +
		math.Sin(altitudeRad)*math.Sin(slope)*math.Cos(azimuthRad-aspect)

	v := math.Round(hs * 255)
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Shade computes a hillshade of elev lit by light.
//
// Every pixel, borders included, gets a defined value. The output holds
// channel-equal gray samples and has the same dimensions as the input.
//
// cellSize must be strictly positive; callers check it with Options.Validate
// before calling. Shade itself does not validate.
func Shade(elev *raster.Raster[raster.Elevation], cellSize float64, light LightSource) *raster.Raster[raster.RGB] {
	width, height := elev.Width(), elev.Height()
	out := raster.NewBuilder[raster.RGB](width, height)

	azimuthRad := light.AzimuthRadians()
	altitudeRad := light.AltitudeRadians()

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				dzdx, dzdy := Gradient(elev, x, y, cellSize)
				hs := Illumination(Slope(dzdx, dzdy), Aspect(dzdx, dzdy), azimuthRad, altitudeRad)
				out.Set(x, y, raster.Gray(hs))
			}
		}
	})

	return out.Freeze()
}
