// Package render writes the pipeline's layers to disk and implements the
// "render" command line subcommand.
package render

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ironsheep/dem-relief-mcp/internal/imaging"
	"github.com/ironsheep/dem-relief-mcp/internal/relief"
)

// Output file names, one per layer.
const (
	ColorFile     = "output_colorized.png"
	HillshadeFile = "hillshade.png"
	ReliefFile    = "shaded_relief.png"
)

// Written lists the files produced by WriteLayers.
type Written struct {
	Color     string `json:"color"`
	Hillshade string `json:"hillshade"`
	Relief    string `json:"relief"`
}

// WriteLayers saves all three layers of res into dir.
func WriteLayers(dir string, res *relief.Result) (*Written, error) {
	out := &Written{
		Color:     filepath.Join(dir, ColorFile),
		Hillshade: filepath.Join(dir, HillshadeFile),
		Relief:    filepath.Join(dir, ReliefFile),
	}

	if err := imaging.SaveRaster(out.Color, res.Color); err != nil {
		return nil, err
	}
	if err := imaging.SaveRaster(out.Hillshade, res.Shade); err != nil {
		return nil, err
	}
	if err := imaging.SaveRaster(out.Relief, res.Relief); err != nil {
		return nil, err
	}
	return out, nil
}

// Run parses the render flags from args and renders one DEM. Progress is
// logged to logger; usage goes to the flag set's output.
func Run(flagSet *flag.FlagSet, args []string, logger *log.Logger) error {
	defaults := relief.DefaultOptions()

	inputPtr := flagSet.String("in", "", "Path to the grayscale DEM image")
	outputPtr := flagSet.String("out", "", "Path to output directory")
	cellPtr := flagSet.Float64("cell", defaults.CellSize, "Ground distance per pixel")
	azimuthPtr := flagSet.Float64("azimuth", defaults.Light.AzimuthDeg, "Light azimuth in degrees, clockwise from north")
	altitudePtr := flagSet.Float64("altitude", defaults.Light.AltitudeDeg, "Light altitude in degrees above the horizon")
	previewsPtr := flagSet.Bool("previews", false, "Also write preview sizes of the shaded relief")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	// make sure both paths are present
	if *inputPtr == "" || *outputPtr == "" {
		flagSet.PrintDefaults()
		return errors.New("both -in and -out are required")
	}

	if info, err := os.Stat(*outputPtr); err != nil || !info.IsDir() {
		return fmt.Errorf("output directory %s doesn't exist", *outputPtr)
	}

	opts := relief.Options{
		CellSize: *cellPtr,
		Light: relief.LightSource{
			AzimuthDeg:  *azimuthPtr,
			AltitudeDeg: *altitudePtr,
		},
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	start := time.Now()

	timer := time.Now()
	elev, err := imaging.LoadElevation(*inputPtr)
	if err != nil {
		return err
	}
	logger.Printf("Loaded %dx%d DEM in %s", elev.Width(), elev.Height(), time.Since(timer))

	timer = time.Now()
	res, err := relief.Render(elev, opts)
	if err != nil {
		return err
	}
	logger.Printf("Rendered layers in %s", time.Since(timer))

	timer = time.Now()
	written, err := WriteLayers(*outputPtr, res)
	if err != nil {
		return err
	}
	logger.Printf("Wrote %s, %s, %s in %s", written.Color, written.Hillshade, written.Relief, time.Since(timer))

	if *previewsPtr {
		timer = time.Now()
		previews, err := imaging.BuildPreviews(context.Background(), imaging.ImageFromRaster(res.Relief),
			*outputPtr, "preview", imaging.PreviewSizes)
		if err != nil {
			return err
		}
		logger.Printf("Built %d previews in %s", len(previews), time.Since(timer))
	}

	logger.Printf("Finished in %s", time.Since(start))
	return nil
}

// NewFlagSet returns the flag set used by the render subcommand, writing
// usage to w.
func NewFlagSet(name string, w io.Writer) *flag.FlagSet {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.SetOutput(w)
	return set
}
