package render

import (
	"testing"

	"github.com/marben/simd_mandel/lanes"
)

func TestInterior(t *testing.T) {
	tests := []struct {
		re, im float32
		want   bool
	}{
		{0, 0, true},
		{0.25, 0, true}, // cusp
		{-0.5, 0.5, true},
		{-0.74, 0, true},
		{-1, 0, true},
		{-1.2, 0.05, true},
		{-1.25, 0, true}, // left edge of the bulb
		{0.3, 0, false},
		{-0.75, 0.1, false},
		{-0.75, 0.000178135931, false}, // neck, escapes after thousands of iterations
		{-0.75, 1e-6, false},
		{-0.7499999, 0, true},
		{-1.3, 0, false},
		{-2, 0, false},
		{0, 1, false}, // member, but outside both regions
	}

	var re, im lanes.F32x8
	for start := 0; start < len(tests); start += lanes.Width {
		chunk := tests[start:min(start+lanes.Width, len(tests))]
		for i, tt := range chunk {
			re[i], im[i] = tt.re, tt.im
		}
		got := interior(re, im)
		for i, tt := range chunk {
			if (got[i] == lanes.True) != tt.want {
				t.Errorf("interior(%g,%g) = %x, want %v", tt.re, tt.im, got[i], tt.want)
			}
		}
	}
}

func TestInteriorImpliesBounded(t *testing.T) {
	const maxIter = 1000

	for yi := range 64 {
		y := -0.8 + float32(yi)*0.025
		for xi := 0; xi < 96; xi += lanes.Width {
			var re lanes.F32x8
			for l := range lanes.Width {
				re[l] = -1.4 + float32(xi+l)*0.0175
			}
			in := interior(re, lanes.SplatF(y))
			for l := range lanes.Width {
				if in[l] == lanes.True {
					if got := naiveEscape(re[l], y, maxIter); got != maxIter {
						t.Errorf("c=(%g,%g) is interior but escapes after %d", re[l], y, got)
					}
				}
			}
		}
	}
}
