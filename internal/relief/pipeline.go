package relief

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/dem-relief-mcp/internal/raster"
)

// Layer names accepted by Result.Layer.
const (
	LayerColor     = "color"
	LayerHillshade = "hillshade"
	LayerRelief    = "relief"
)

// Layers lists every layer name in output order.
var Layers = []string{LayerColor, LayerHillshade, LayerRelief}

// Result holds the three rasters produced by Render.
type Result struct {
	// Color is the elevation color ramp.
	Color *raster.Raster[raster.RGB]

	// Shade is the gray hillshade.
	Shade *raster.Raster[raster.RGB]

	// Relief is Color darkened by Shade.
	Relief *raster.Raster[raster.RGB]
}

// Layer returns the raster for a layer name ("color", "hillshade", "relief").
func (r *Result) Layer(name string) (*raster.Raster[raster.RGB], error) {
	switch name {
	case LayerColor:
		return r.Color, nil
	case LayerHillshade:
		return r.Shade, nil
	case LayerRelief, "":
		return r.Relief, nil
	default:
		return nil, fmt.Errorf("unknown layer: %s", name)
	}
}

// Render runs the full pipeline on elev.
//
// The options are validated before any raster is allocated. Colorize and
// Shade then run concurrently on the shared, read-only input and Blend runs
// once both have finished.
//
// Returns an error wrapping ErrInvalidConfiguration for bad options. No
// partial result is returned on error.
func Render(elev *raster.Raster[raster.Elevation], opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var (
		g     errgroup.Group
		color *raster.Raster[raster.RGB]
		shade *raster.Raster[raster.RGB]
	)
	g.Go(func() error {
		color = Colorize(elev)
		return nil
	})
	g.Go(func() error {
		shade = Shade(elev, opts.CellSize, opts.Light)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	relief, err := Blend(color, shade)
	if err != nil {
		return nil, fmt.Errorf("failed to blend layers: %w", err)
	}

	return &Result{Color: color, Shade: shade, Relief: relief}, nil
}
