package relief

import (
	"math"
	"testing"

	"github.com/ironsheep/dem-relief-mcp/internal/raster"
)

const epsilon = 1e-9

func TestShade_FlatRaster(t *testing.T) {
	tests := []struct {
		name        string
		value       raster.Elevation
		altitudeDeg float64
	}{
		{"zero at 45", 0, 45},
		{"high at 45", 200, 45},
		{"mid at 30", 128, 30},
		{"mid at 60", 128, 60},
		{"overhead", 90, 90},
		{"horizon", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elev := raster.Fill(7, 5, tt.value)
			light := LightSource{AzimuthDeg: 315, AltitudeDeg: tt.altitudeDeg}

			out := Shade(elev, 30, light)

			want := uint8(math.Round(math.Cos(light.AltitudeRadians()) * 255))
			for y := 0; y < out.Height(); y++ {
				for x := 0; x < out.Width(); x++ {
					if got := out.At(x, y); got != raster.Gray(want) {
						t.Fatalf("pixel (%d,%d): got %+v, want gray %d", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestShade_EndToEndFlat3x3(t *testing.T) {
	elev := raster.Fill[raster.Elevation](3, 3, 0)

	out := Shade(elev, 30, LightSource{AzimuthDeg: 315, AltitudeDeg: 45})

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := out.At(x, y); got != (raster.RGB{R: 180, G: 180, B: 180}) {
				t.Errorf("pixel (%d,%d): got %+v, want (180,180,180)", x, y, got)
			}
		}
	}
}

func TestShade_GrayOutput(t *testing.T) {
	elev := createRandomRaster(40, 30, 7)

	out := Shade(elev, 1, LightSource{AzimuthDeg: 315, AltitudeDeg: 45})

	if out.Width() != 40 || out.Height() != 30 {
		t.Fatalf("dimensions: got %dx%d, want 40x30", out.Width(), out.Height())
	}
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			p := out.At(x, y)
			if p.R != p.G || p.G != p.B {
				t.Fatalf("pixel (%d,%d) not gray: %+v", x, y, p)
			}
		}
	}
}

func TestShade_AzimuthPeriodicity(t *testing.T) {
	elev := createRandomRaster(32, 32, 3)
	base := Shade(elev, 10, LightSource{AzimuthDeg: 315, AltitudeDeg: 45})

	for _, az := range []float64{675, -45, 315 + 720} {
		rotated := Shade(elev, 10, LightSource{AzimuthDeg: az, AltitudeDeg: 45})
		for y := 0; y < elev.Height(); y++ {
			for x := 0; x < elev.Width(); x++ {
				if base.At(x, y) != rotated.At(x, y) {
					t.Fatalf("azimuth %v differs from 315 at (%d,%d): %+v vs %+v",
						az, x, y, rotated.At(x, y), base.At(x, y))
				}
			}
		}
	}
}

func TestShade_SteepEdge(t *testing.T) {
	// Left half 0, right half 255: the edge columns rise eastward and so
	// face west.
	elev := createElevationRaster(10, 6, func(x, y int) raster.Elevation {
		if x < 5 {
			return 0
		}
		return 255
	})

	west := Shade(elev, 1, LightSource{AzimuthDeg: 270, AltitudeDeg: 45})
	east := Shade(elev, 1, LightSource{AzimuthDeg: 90, AltitudeDeg: 45})

	for _, x := range []int{4, 5} {
		for y := 0; y < elev.Height(); y++ {
			lit := west.At(x, y).R
			unlit := east.At(x, y).R
			if lit <= unlit {
				t.Errorf("edge (%d,%d): west light %d should exceed east light %d", x, y, lit, unlit)
			}
			if unlit != 0 {
				t.Errorf("edge (%d,%d): surface facing away from light should be 0, got %d", x, y, unlit)
			}
		}
	}

	// Flat areas away from the edge keep the flat value
	if got := west.At(0, 0).R; got != 180 {
		t.Errorf("flat area: got %d, want 180", got)
	}
	if west.At(4, 3).R <= west.At(0, 3).R {
		t.Errorf("lit edge %d should be brighter than flat ground %d", west.At(4, 3).R, west.At(0, 3).R)
	}
}

func TestShade_RidgeSides(t *testing.T) {
	// Tent-shaped ridge peaking at x=10: the west side faces west, the east
	// side faces east.
	elev := createElevationRaster(21, 9, func(x, y int) raster.Elevation {
		d := x - 10
		if d < 0 {
			d = -d
		}
		return raster.Elevation(250 - 20*d)
	})

	tests := []struct {
		name       string
		azimuth    float64
		brightSide int
		darkSide   int
	}{
		{"light from west", 270, 5, 15},
		{"light from east", 90, 15, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Shade(elev, 1, LightSource{AzimuthDeg: tt.azimuth, AltitudeDeg: 45})
			bright := out.At(tt.brightSide, 4).R
			dark := out.At(tt.darkSide, 4).R
			if bright <= dark {
				t.Errorf("side facing light: got %d, want more than opposite side %d", bright, dark)
			}
		})
	}
}

func TestShade_MatchesSerialReference(t *testing.T) {
	elev := createRandomRaster(64, 48, 11)
	light := LightSource{AzimuthDeg: 200, AltitudeDeg: 35}

	out := Shade(elev, 5, light)

	for y := 0; y < elev.Height(); y++ {
		for x := 0; x < elev.Width(); x++ {
			dzdx, dzdy := Gradient(elev, x, y, 5)
			want := Illumination(Slope(dzdx, dzdy), Aspect(dzdx, dzdy), light.AzimuthRadians(), light.AltitudeRadians())
			if got := out.At(x, y).R; got != want {
				t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestShade_SinglePixel(t *testing.T) {
	out := Shade(raster.Fill[raster.Elevation](1, 1, 99), 30, LightSource{AzimuthDeg: 315, AltitudeDeg: 45})
	if got := out.At(0, 0).R; got != 180 {
		t.Errorf("1x1 raster: got %d, want 180", got)
	}
}

func TestGradient(t *testing.T) {
	// Plane rising 10 units per column eastward
	elev := createElevationRaster(6, 4, func(x, y int) raster.Elevation {
		return raster.Elevation(10 * x)
	})

	tests := []struct {
		name     string
		x, y     int
		cellSize float64
		wantDx   float64
	}{
		{"interior", 2, 1, 1, 10},
		{"interior scaled", 3, 2, 2, 5},
		{"left border clamps", 0, 1, 1, 5},
		{"right border clamps", 5, 1, 1, 5},
		{"corner", 0, 0, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dzdx, dzdy := Gradient(elev, tt.x, tt.y, tt.cellSize)
			if math.Abs(dzdx-tt.wantDx) > epsilon {
				t.Errorf("dz/dx: got %v, want %v", dzdx, tt.wantDx)
			}
			if dzdy != 0 {
				t.Errorf("dz/dy: got %v, want 0", dzdy)
			}
		})
	}
}

func TestGradient_SouthwardSlope(t *testing.T) {
	// Rows grow by 8 units toward the bottom (south)
	elev := createElevationRaster(4, 5, func(x, y int) raster.Elevation {
		return raster.Elevation(8 * y)
	})

	dzdx, dzdy := Gradient(elev, 1, 2, 1)
	if dzdx != 0 {
		t.Errorf("dz/dx: got %v, want 0", dzdx)
	}
	if math.Abs(dzdy-8) > epsilon {
		t.Errorf("dz/dy: got %v, want 8", dzdy)
	}
}

func TestSlope(t *testing.T) {
	if got := Slope(0, 0); got != 0 {
		t.Errorf("flat slope: got %v, want 0", got)
	}
	if got := Slope(1, 0); math.Abs(got-math.Pi/4) > epsilon {
		t.Errorf("unit gradient: got %v, want π/4", got)
	}
	if got := Slope(3, 4); math.Abs(got-math.Atan(5)) > epsilon {
		t.Errorf("3-4-5 gradient: got %v, want atan(5)", got)
	}
}

func TestAspect(t *testing.T) {
	tests := []struct {
		name       string
		dzdx, dzdy float64
		want       float64
	}{
		{"flat", 0, 0, math.Pi / 2},
		{"zero dx positive dy", 0, 1, math.Pi / 2},
		{"zero dx negative dy", 0, -1, 3 * math.Pi / 2},
		{"rises east", 1, 0, math.Pi},
		{"rises west", -1, 0, 0},
		{"first quadrant", -1, 1, math.Pi / 4},
		{"second quadrant", 1, 1, 3 * math.Pi / 4},
		{"third quadrant", 1, -1, 5 * math.Pi / 4},
		{"fourth quadrant", -1, -1, 7 * math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Aspect(tt.dzdx, tt.dzdy); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Aspect(%v,%v): got %v, want %v", tt.dzdx, tt.dzdy, got, tt.want)
			}
		})
	}
}

func TestAspect_MatchesAtan2(t *testing.T) {
	values := []float64{-40, -3.5, -1, -0.25, 0.25, 1, 3.5, 40}
	for _, dx := range values {
		for _, dy := range append(values, 0) {
			want := math.Atan2(dy, -dx)
			if want < 0 {
				want += 2 * math.Pi
			}
			got := Aspect(dx, dy)
			if got < 0 || got >= 2*math.Pi {
				t.Errorf("Aspect(%v,%v)=%v outside [0, 2π)", dx, dy, got)
			}
			if math.Abs(got-want) > 1e-12 {
				t.Errorf("Aspect(%v,%v): got %v, want %v", dx, dy, got, want)
			}
		}
	}
}

func TestIllumination_Clamped(t *testing.T) {
	alt := math.Pi / 4
	// Steep slope facing directly away from the light
	if got := Illumination(math.Atan(100), math.Pi, 0, alt); got != 0 {
		t.Errorf("facing away: got %d, want 0", got)
	}
	// Flat cell at altitude 0: cos(0)·cos(0) = 1
	if got := Illumination(0, math.Pi/2, 0, 0); got != 255 {
		t.Errorf("full intensity: got %d, want 255", got)
	}
}

func TestLightSource_AzimuthRadians(t *testing.T) {
	tests := []struct {
		azimuth float64
		wantDeg float64
	}{
		{315, 135},
		{0, 90},
		{90, 0},
		{180, 270},
		{270, 180},
		{360, 90},
		{-90, 180},
		{720 + 45, 45},
	}

	for _, tt := range tests {
		got := LightSource{AzimuthDeg: tt.azimuth}.AzimuthRadians()
		if math.Abs(got-tt.wantDeg*math.Pi/180) > epsilon {
			t.Errorf("azimuth %v: got %v rad, want %v°", tt.azimuth, got, tt.wantDeg)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("azimuth %v: %v outside [0, 2π)", tt.azimuth, got)
		}
	}
}
