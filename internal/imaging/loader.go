package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder

	"github.com/ironsheep/dem-relief-mcp/internal/raster"
)

// DEMCache provides thread-safe caching of decoded elevation rasters to avoid
// redundant disk reads and decoding.
//
// Rasters are keyed by the exact path string given to Load. Once a DEM is
// loaded, subsequent Load() calls for the same path return the cached raster.
//
// # Memory Management
//
// Cached rasters remain in memory until explicitly removed via Evict() or
// Clear(). A raster costs one byte per pixel.
//
// # Example Usage
//
//	cache := imaging.NewDEMCache()
//	elev, err := cache.Load("/path/to/dem.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := relief.Render(elev, relief.DefaultOptions())
type DEMCache struct {
	mu      sync.RWMutex
	rasters map[string]*raster.Raster[raster.Elevation]
}

// NewDEMCache creates and initializes a new empty cache.
func NewDEMCache() *DEMCache {
	return &DEMCache{
		rasters: make(map[string]*raster.Raster[raster.Elevation]),
	}
}

// Load retrieves a DEM raster from the cache or decodes it from disk.
//
// Parameters:
//   - path: Absolute or relative file path to the DEM image. Supported formats
//     are PNG, JPEG, GIF, BMP and TIFF.
//
// Returns:
//   - *raster.Raster[raster.Elevation]: One elevation sample per pixel.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a decodable image
func (c *DEMCache) Load(path string) (*raster.Raster[raster.Elevation], error) {
	c.mu.RLock()
	if r, ok := c.rasters[path]; ok {
		c.mu.RUnlock()
		return r, nil
	}
	c.mu.RUnlock()

	elev, err := LoadElevation(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.rasters[path] = elev
	c.mu.Unlock()

	return elev, nil
}

// Clear removes all rasters from the cache.
func (c *DEMCache) Clear() {
	c.mu.Lock()
	c.rasters = make(map[string]*raster.Raster[raster.Elevation])
	c.mu.Unlock()
}

// Evict removes the raster loaded from path. Unknown paths are ignored.
func (c *DEMCache) Evict(path string) {
	c.mu.Lock()
	delete(c.rasters, path)
	c.mu.Unlock()
}

// LoadElevation decodes an image file into an elevation raster without caching.
func LoadElevation(path string) (*raster.Raster[raster.Elevation], error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open DEM: %w", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode DEM: %w", err)
	}

	return ElevationFromImage(img), nil
}

// ElevationFromImage converts an image to an elevation raster. The raster
// origin is the image's Bounds().Min.
func ElevationFromImage(img image.Image) *raster.Raster[raster.Elevation] {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	b := raster.NewBuilder[raster.Elevation](width, height)

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < height; y++ {
			row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
			for x, v := range row {
				b.Set(x, y, raster.Elevation(v))
			}
		}
		return b.Freeze()
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			b.Set(x, y, raster.Elevation(g.Y))
		}
	}
	return b.Freeze()
}

// DEMInfo contains metadata and elevation statistics for a DEM file.
type DEMInfo struct {
	// Width is the raster width in pixels.
	Width int `json:"width"`

	// Height is the raster height in pixels.
	Height int `json:"height"`

	// Format is the format guessed from the extension: "png", "jpeg", "gif",
	// "bmp", "tiff" or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// MinElevation and MaxElevation are the extreme samples (0-255).
	MinElevation int `json:"min_elevation"`
	MaxElevation int `json:"max_elevation"`

	// MeanElevation is the average sample, rounded to two decimals.
	MeanElevation float64 `json:"mean_elevation"`
}

// LoadDEMInfo loads a DEM through the cache and reports its metadata.
//
// Parameters:
//   - cache: The cache to load through. Must not be nil.
//   - path: Path to the DEM image.
//
// Returns:
//   - *DEMInfo: Dimensions, format, file size and elevation statistics.
//   - error: Non-nil if the image cannot be loaded or the file cannot be stat'd.
func LoadDEMInfo(cache *DEMCache, path string) (*DEMInfo, error) {
	elev, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	info := &DEMInfo{
		Width:         elev.Width(),
		Height:        elev.Height(),
		Format:        formatFromExt(path),
		FileSizeBytes: stat.Size(),
	}

	if elev.Len() == 0 {
		return info, nil
	}

	lo, hi := 255, 0
	var sum int64
	for y := 0; y < elev.Height(); y++ {
		for x := 0; x < elev.Width(); x++ {
			v := int(elev.At(x, y))
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
			sum += int64(v)
		}
	}

	info.MinElevation = lo
	info.MaxElevation = hi
	info.MeanElevation = math.Round(float64(sum)/float64(elev.Len())*100) / 100
	return info, nil
}

// formatFromExt maps a file extension to a format name.
func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	default:
		return "unknown"
	}
}
