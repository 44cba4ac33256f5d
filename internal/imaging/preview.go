package imaging

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/nfnt/resize"
	"golang.org/x/sync/semaphore"
)

// PreviewSizes are the default preview heights in pixels.
var PreviewSizes = []uint{128, 256, 512, 1024}

// Preview describes one written preview file.
type Preview struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// BuildPreviews writes downscaled copies of img into dir as
// "<prefix>_<size>.png", one per entry of sizes (heights in pixels, width
// keeps the aspect ratio). Resizing uses Mitchell-Netravali interpolation.
//
// Previews are produced concurrently, at most one per CPU. The returned slice
// follows the order of sizes. The first error stops waiting work from
// starting and is returned.
func BuildPreviews(ctx context.Context, img image.Image, dir, prefix string, sizes []uint) ([]Preview, error) {
	previews := make([]Preview, len(sizes))
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, size := range sizes {
		if size == 0 {
			return nil, fmt.Errorf("preview size must be positive")
		}
	}

	for i, size := range sizes {
		if err := sem.Acquire(ctx, 1); err != nil {
			setErr(err)
			break
		}

		wg.Add(1)
		go func(i int, size uint) {
			defer wg.Done()
			defer sem.Release(1)

			scaled := resize.Resize(0, size, img, resize.MitchellNetravali)
			path := filepath.Join(dir, fmt.Sprintf("%s_%d.png", prefix, size))
			if err := SaveImage(path, scaled); err != nil {
				setErr(err)
				cancel()
				return
			}

			previews[i] = Preview{
				Path:   path,
				Width:  scaled.Bounds().Dx(),
				Height: scaled.Bounds().Dy(),
			}
		}(i, size)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return previews, nil
}
