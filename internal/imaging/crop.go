package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/dem-relief-mcp/internal/raster"
)

// Crop extracts a rectangular region from a rendered layer and returns it as
// base64 PNG, optionally scaled.
//
// (x1, y1) is inclusive and (x2, y2) exclusive. Returns an error if the region
// leaves the raster or is empty.
func Crop(r *raster.Raster[raster.RGB], x1, y1, x2, y2 int, scale float64) (*EncodedImage, error) {
	if x1 < 0 || y1 < 0 || x2 > r.Width() || y2 > r.Height() {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside raster bounds (0,0)-(%d,%d)",
			x1, y1, x2, y2, r.Width(), r.Height())
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	cropped := imaging.Crop(ImageFromRaster(r), image.Rect(x1, y1, x2, y2))
	return encodeImage(cropped, scale)
}

// CropQuadrant extracts a named region from a rendered layer.
//
// Supported names: top-left, top-right, bottom-left, bottom-right, top-half,
// bottom-half, left-half, right-half and center (the middle 50%).
func CropQuadrant(r *raster.Raster[raster.RGB], region string, scale float64) (*EncodedImage, error) {
	w := r.Width()
	h := r.Height()
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int

	switch region {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return nil, fmt.Errorf("unknown region: %s", region)
	}

	return Crop(r, x1, y1, x2, y2, scale)
}
