package render

import (
	"math"
	"testing"

	"github.com/taigrr/b3d/pkg/math3d"
)

func TestIntensity(t *testing.T) {
	light := math3d.V3(0, 0, 1)
	tests := []struct {
		name    string
		normal  math3d.Vec3
		ambient float64
		want    float64
	}{
		{"facing", math3d.V3(0, 0, 1), 0.2, 1},
		{"facing unnormalized", math3d.V3(0, 0, 5), 0.2, 1},
		{"away is two-sided", math3d.V3(0, 0, -1), 0.2, 1},
		{"edge on", math3d.V3(1, 0, 0), 0.2, 0.2},
		{"45 degrees", math3d.V3(1, 0, 1), 0, math.Sqrt2 / 2},
		{"zero normal", math3d.Vec3{}, 0.3, 0.3},
		{"no ambient edge on", math3d.V3(0, 1, 0), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intensity(tt.normal, light, tt.ambient); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Intensity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleColor(t *testing.T) {
	tests := []struct {
		color uint32
		k     float64
		want  uint32
	}{
		{0xFFFFFF, 1, 0xFFFFFF},
		{0xFFFFFF, 0.2, 0x333333},
		{0xFFFFFF, 0, 0},
		{0x804020, 0.5, 0x402010},
		{0x804020, 4, 0xFFFF80},
		{0x808080, 4, 0xFFFFFF},
		{0xFF0000, -1, 0},
		{0xFF123456, 1, 0x123456},
	}
	for _, tt := range tests {
		if got := ScaleColor(tt.color, tt.k); got != tt.want {
			t.Errorf("ScaleColor(%#x, %v) = %#06x, want %#06x", tt.color, tt.k, got, tt.want)
		}
	}
}

func TestShade(t *testing.T) {
	light := math3d.V3(0, 0, 1)
	if got := Shade(math3d.V3(0, 1, 0), light, DefaultAmbient, 0xFFFFFF); got != 0x333333 {
		t.Errorf("edge-on shade = %#06x, want 0x333333", got)
	}
	if got := Shade(math3d.V3(0, 0, -2), light, DefaultAmbient, 0xFCD0A1); got != 0xFCD0A1 {
		t.Errorf("facing shade = %#06x, want base color", got)
	}
}
