package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/dem-relief-mcp/internal/raster"
)

// jpegQuality is used when a layer is saved with a .jpg/.jpeg extension.
const jpegQuality = 95

// EncodedImage contains a rendered layer encoded as base64 PNG.
type EncodedImage struct {
	// Width of the encoded image in pixels (after scaling).
	Width int `json:"width"`

	// Height of the encoded image in pixels (after scaling).
	Height int `json:"height"`

	// ImageBase64 is the PNG data, base64 encoded.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// ImageFromRaster converts an RGB raster to an opaque NRGBA image with its
// origin at (0,0).
func ImageFromRaster(r *raster.Raster[raster.RGB]) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width(), r.Height()))
	for y := 0; y < r.Height(); y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < r.Width(); x++ {
			p := r.At(x, y)
			row[x*4+0] = p.R
			row[x*4+1] = p.G
			row[x*4+2] = p.B
			row[x*4+3] = 0xff
		}
	}
	return img
}

// EncodeRaster encodes r as a base64 PNG.
//
// Parameters:
//   - r: The layer to encode.
//   - scale: Resize factor applied with a Lanczos filter. Values <= 0 or
//     exactly 1.0 leave the size unchanged.
//
// Returns:
//   - *EncodedImage: The encoded layer.
//   - error: Non-nil if PNG encoding fails.
func EncodeRaster(r *raster.Raster[raster.RGB], scale float64) (*EncodedImage, error) {
	return encodeImage(ImageFromRaster(r), scale)
}

func encodeImage(img image.Image, scale float64) (*EncodedImage, error) {
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(img.Bounds().Dx()) * scale)
		newHeight := int(float64(img.Bounds().Dy()) * scale)
		if newWidth < 1 {
			newWidth = 1
		}
		if newHeight < 1 {
			newHeight = 1
		}
		img = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveRaster writes r to path. The encoder is chosen from the extension:
// .png, .jpg/.jpeg (quality 95) or .bmp. Parent directories must exist.
func SaveRaster(path string, r *raster.Raster[raster.RGB]) error {
	return SaveImage(path, ImageFromRaster(r))
}

// SaveImage writes img to path using the encoder chosen by extension.
func SaveImage(path string, img image.Image) error {
	encoder, err := encoderFor(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("output directory: %w", err)
		}
	}
	if err := imgio.Save(path, img, encoder); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func encoderFor(path string) (imgio.Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(jpegQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use .png, .jpg or .bmp)", ext)
	}
}
