package imaging

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"
)

func TestCrop(t *testing.T) {
	layer := createLayer(100, 80)

	result, err := Crop(layer, 10, 10, 40, 30, 1.0)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if result.Width != 30 || result.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 30x20", result.Width, result.Height)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(decoded))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}

	// Region sits entirely inside the red top-left quadrant
	r, g, b, _ := img.At(5, 5).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("cropped pixel: got (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}
}

func TestCrop_Scaled(t *testing.T) {
	layer := createLayer(100, 100)

	result, err := Crop(layer, 0, 0, 50, 50, 2.0)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if result.Width != 100 || result.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}
}

func TestCrop_InvalidRegion(t *testing.T) {
	layer := createLayer(100, 100)

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"negative start", -1, 0, 10, 10},
		{"past right edge", 0, 0, 101, 10},
		{"past bottom edge", 0, 0, 10, 101},
		{"empty width", 10, 10, 10, 20},
		{"inverted height", 10, 20, 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(layer, tt.x1, tt.y1, tt.x2, tt.y2, 1.0); err == nil {
				t.Error("Crop should fail")
			}
		})
	}
}

func TestCropQuadrant(t *testing.T) {
	layer := createLayer(100, 80)

	tests := []struct {
		region       string
		wantW, wantH int
	}{
		{"top-left", 50, 40},
		{"top-right", 50, 40},
		{"bottom-left", 50, 40},
		{"bottom-right", 50, 40},
		{"top-half", 100, 40},
		{"bottom-half", 100, 40},
		{"left-half", 50, 80},
		{"right-half", 50, 80},
		{"center", 50, 40},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			result, err := CropQuadrant(layer, tt.region, 1.0)
			if err != nil {
				t.Fatalf("CropQuadrant failed: %v", err)
			}
			if result.Width != tt.wantW || result.Height != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d", result.Width, result.Height, tt.wantW, tt.wantH)
			}
		})
	}

	if _, err := CropQuadrant(layer, "middle-ish", 1.0); err == nil {
		t.Error("CropQuadrant should fail for unknown region")
	}
}
