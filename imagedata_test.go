package genfluvial

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// testImage builds a 2x2 image: sea in the top-left, flat land in the
// top-right, steep land in the bottom-left, mountainous land in the
// bottom-right.
func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{0, 0, 255, 255})     // deep sea
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})     // high uplift, no slope
	img.Set(0, 1, color.RGBA{255, 128, 0, 255})   // high slope, some uplift
	img.Set(1, 1, color.RGBA{255, 255, 0, 255})   // high slope and uplift
	return img
}

func TestImageSettingsSeaMapping(t *testing.T) {
	settings := NewImageSettings(100, 100, 1, testImage())

	// Top-left of the image is the (-x, +y) quadrant of the terrain.
	c := settings.GetData(-50, 50, 0)
	if !c.IsSea() {
		t.Fatalf("expected sea for the blue pixel, got sea factor %f", c.SeaFactor)
	}
	// Blue 255 maps to the deepest sea factor of -1.
	if math.Abs(c.SeaFactor-(-1)) > 1e-9 {
		t.Errorf("expected sea factor -1, got %f", c.SeaFactor)
	}
	if c.UpliftFactor != 0 || c.SlopeFactor != 0 {
		t.Error("sea pixels should carry no uplift or slope")
	}
}

func TestImageSettingsLandMapping(t *testing.T) {
	settings := NewImageSettings(100, 100, 1, testImage())

	tests := []struct {
		x, y          float64
		uplift, slope float64
	}{
		{50, 50, 1, 0},    // green pixel
		{-50, -50, 0.5019607843137255, 1}, // red with some green
		{50, -50, 1, 1},   // red and green
	}
	for i, tt := range tests {
		c := settings.GetData(tt.x, tt.y, 0)
		if c.IsSea() {
			t.Fatalf("case %d: expected land, got sea factor %f", i, c.SeaFactor)
		}
		if math.Abs(c.UpliftFactor-tt.uplift) > 1e-9 {
			t.Errorf("case %d: expected uplift %f, got %f", i, tt.uplift, c.UpliftFactor)
		}
		if math.Abs(c.SlopeFactor-tt.slope) > 1e-9 {
			t.Errorf("case %d: expected slope %f, got %f", i, tt.slope, c.SlopeFactor)
		}
	}
}

func TestImageSettingsSampleClamping(t *testing.T) {
	settings := NewImageSettings(100, 100, 1, testImage())

	// Points beyond the terrain bounds sample the nearest edge pixel
	// instead of panicking.
	c := settings.GetData(-500, 500, 0)
	if !c.IsSea() {
		t.Errorf("expected the clamped sample to hit the sea pixel, got %+v", c)
	}
}
