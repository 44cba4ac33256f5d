package relief

import (
	"fmt"
	"math"

	"github.com/ironsheep/dem-relief-mcp/internal/raster"
)

// PixelReport describes the terrain terms computed for a single pixel.
type PixelReport struct {
	X         int              `json:"x"`
	Y         int              `json:"y"`
	Elevation raster.Elevation `json:"elevation"`

	// DzDx and DzDy are the Horn gradient components.
	DzDx float64 `json:"dz_dx"`
	DzDy float64 `json:"dz_dy"`

	// SlopeDeg is the slope angle in degrees (0 = flat).
	SlopeDeg float64 `json:"slope_degrees"`

	// AspectDeg is Aspect converted to degrees: counter-clockwise from east,
	// in [0, 360).
	AspectDeg float64 `json:"aspect_degrees"`

	// Flat is true when both gradient components are zero and AspectDeg is
	// the fixed 90° default.
	Flat bool `json:"flat"`

	Illumination uint8      `json:"illumination"`
	RampColor    raster.RGB `json:"ramp_color"`
	ReliefColor  raster.RGB `json:"relief_color"`
}

// Probe evaluates every pipeline term at (x, y) without rendering the whole
// raster. Its values match the corresponding pixels of Render's output.
func Probe(elev *raster.Raster[raster.Elevation], x, y int, opts Options) (*PixelReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if !elev.InBounds(x, y) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside raster bounds %dx%d", x, y, elev.Width(), elev.Height())
	}

	dzdx, dzdy := Gradient(elev, x, y, opts.CellSize)
	slope := Slope(dzdx, dzdy)
	aspect := Aspect(dzdx, dzdy)
	hs := Illumination(slope, aspect, opts.Light.AzimuthRadians(), opts.Light.AltitudeRadians())
	ramp := RampColor(elev.At(x, y))

	return &PixelReport{
		X:            x,
		Y:            y,
		Elevation:    elev.At(x, y),
		DzDx:         dzdx,
		DzDy:         dzdy,
		SlopeDeg:     math.Round(slope*180/math.Pi*100) / 100,
		AspectDeg:    math.Round(aspect*180/math.Pi*100) / 100,
		Flat:         dzdx == 0 && dzdy == 0,
		Illumination: hs,
		RampColor:    ramp,
		ReliefColor: raster.RGB{
			R: modulate(ramp.R, hs),
			G: modulate(ramp.G, hs),
			B: modulate(ramp.B, hs),
		},
	}, nil
}
