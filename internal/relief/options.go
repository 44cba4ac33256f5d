package relief

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfiguration reports an unusable cell size or light source.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDimensionMismatch reports Blend inputs with different width or height.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// Defaults used when the caller supplies nothing else: 30 m cells lit from
// the northwest at 45° above the horizon.
const (
	DefaultCellSize    = 30.0
	DefaultAzimuthDeg  = 315.0
	DefaultAltitudeDeg = 45.0
)

// LightSource describes the simulated sun.
type LightSource struct {
	// AzimuthDeg is the compass bearing the light comes from, clockwise from
	// north. Conventionally 0-360; other values wrap.
	AzimuthDeg float64 `json:"azimuth"`

	// AltitudeDeg is the angle of the light above the horizon, conventionally 0-90.
	AltitudeDeg float64 `json:"altitude"`
}

// AzimuthRadians converts the compass bearing to a counter-clockwise angle
// from east in [0, 2π).
func (l LightSource) AzimuthRadians() float64 {
	deg := math.Mod(360-l.AzimuthDeg+90, 360)
	if deg < 0 {
		deg += 360
	}
	return deg * math.Pi / 180
}

// AltitudeRadians returns the light altitude in radians.
func (l LightSource) AltitudeRadians() float64 {
	return l.AltitudeDeg * math.Pi / 180
}

// Options configures a hillshade or full render.
type Options struct {
	// CellSize is the ground distance covered by one pixel step. Must be > 0.
	CellSize float64 `json:"cell_size"`

	// Light is the simulated light source.
	Light LightSource `json:"light"`
}

// DefaultOptions returns the 30 m / 315° / 45° configuration.
func DefaultOptions() Options {
	return Options{
		CellSize: DefaultCellSize,
		Light: LightSource{
			AzimuthDeg:  DefaultAzimuthDeg,
			AltitudeDeg: DefaultAltitudeDeg,
		},
	}
}

// Validate checks the options before any raster work starts.
//
// Returns an error wrapping ErrInvalidConfiguration when the cell size is not
// a finite positive number or a light angle is NaN or infinite.
func (o Options) Validate() error {
	if math.IsNaN(o.CellSize) || math.IsInf(o.CellSize, 0) || o.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be a positive number, got %v", ErrInvalidConfiguration, o.CellSize)
	}
	if math.IsNaN(o.Light.AzimuthDeg) || math.IsInf(o.Light.AzimuthDeg, 0) {
		return fmt.Errorf("%w: azimuth must be finite, got %v", ErrInvalidConfiguration, o.Light.AzimuthDeg)
	}
	if math.IsNaN(o.Light.AltitudeDeg) || math.IsInf(o.Light.AltitudeDeg, 0) {
		return fmt.Errorf("%w: altitude must be finite, got %v", ErrInvalidConfiguration, o.Light.AltitudeDeg)
	}
	return nil
}
