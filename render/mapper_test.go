package render

import (
	"slices"
	"testing"

	mandel "github.com/marben/simd_mandel"
	"github.com/marben/simd_mandel/lanes"
)

func TestMapperPoint(t *testing.T) {
	m := newMapper(mandel.Resolution{X: 16, Y: 16}, frame(-2, -1.5, 1, 1.5))

	tests := []struct {
		i      int
		re, im float32
	}{
		{0, -2, -1.5},
		{8, -0.5, -1.5},
		{15, 0.8125, -1.5},
		{16, -2, -1.3125},
		{8*16 + 8, -0.5, 0},
	}
	for _, tt := range tests {
		re, im := m.point(tt.i)
		if re != tt.re || im != tt.im {
			t.Errorf("point(%d) = (%g,%g), want (%g,%g)", tt.i, re, im, tt.re, tt.im)
		}
	}
}

func TestMapperGroupMatchesPoint(t *testing.T) {
	frames := []mandel.Frame{
		frame(-2, -1, 1, 1.5),
		frame(-2, -1.2, 1, 1.2),
	}
	for _, f := range frames {
		for _, w := range []uint32{8, 10, 16, 21} {
			res := mandel.Resolution{X: w, Y: 5}
			full := newMapper(res, f)
			for _, m := range []mapper{full, full.withRows([]int{0, 2, 3})} {
				limit := m.limit()
				for i0 := 0; i0 < limit; i0 += lanes.Width {
					re, im, valid := m.group(i0, limit)
					for k := range lanes.Width {
						i := i0 + k
						if i >= limit {
							if valid[k] != 0 || re[k] != 0 || im[k] != 0 {
								t.Errorf("w=%d rows=%v i=%d: lane past the range is set", w, m.rows, i)
							}
							continue
						}
						wantRe, wantIm := m.point(i)
						if valid[k] != lanes.True || re[k] != wantRe || im[k] != wantIm {
							t.Errorf("w=%d rows=%v i=%d: lane = (%g,%g) valid=%x, want (%g,%g)", w, m.rows, i, re[k], im[k], valid[k], wantRe, wantIm)
						}
					}
				}
			}
		}
	}
}

func TestMapperWithRows(t *testing.T) {
	m := newMapper(mandel.Resolution{X: 4, Y: 10}, mandel.DefaultFrame).withRows([]int{2, 7})
	if m.limit() != 8 {
		t.Errorf("limit = %d, want 8", m.limit())
	}
	tests := []struct{ i, x, y int }{
		{0, 0, 2},
		{3, 3, 2},
		{4, 0, 7},
		{7, 3, 7},
	}
	for _, tt := range tests {
		if x, y := m.pixel(tt.i); x != tt.x || y != tt.y {
			t.Errorf("pixel(%d) = (%d,%d), want (%d,%d)", tt.i, x, y, tt.x, tt.y)
		}
	}
}

func TestMapperMirrorPairs(t *testing.T) {
	for _, h := range []uint32{7, 768, 1000} {
		res := mandel.Resolution{X: 4, Y: h}
		m := newMapper(res, mandel.DefaultFrame)
		pairs := m.mirrorPairs(int(h))

		for y := range int(h) {
			_, want := literalPoint(mandel.DefaultFrame, res, 0, y)
			if got := m.im(y); got != want {
				t.Fatalf("h=%d: im(%d) = %g, want %g", h, y, got, want)
			}
			conjugate := y > 0 && 2*y < int(h) && m.im(y) == -m.im(int(h)-y)
			if pairs[y] != conjugate {
				t.Errorf("h=%d: pair %d = %v, want %v", h, y, pairs[y], conjugate)
			}
		}
	}

	m := newMapper(mandel.Resolution{X: 4, Y: 16}, frame(-2, -1.5, 1, 1.5))
	want := []bool{false, true, true, true, true, true, true, true, false, false, false, false, false, false, false, false}
	if got := m.mirrorPairs(16); !slices.Equal(got, want) {
		t.Errorf("mirrorPairs = %v, want %v", got, want)
	}
}
