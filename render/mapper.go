package render

import (
	mandel "github.com/marben/simd_mandel"
	"github.com/marben/simd_mandel/lanes"
)

// mapper converts work indices to points of the complex plane. Pixel (x, y)
// maps to lower + (x, y)*scale, rounded to float32 after every operation.
//
// Work indices run over the rows listed in rows, so a mapper may cover only
// part of the raster: work index i is pixel (i%width, rows[i/width]).
type mapper struct {
	width int
	lower mandel.Coord
	scale mandel.Coord
	rows  []int
}

func newMapper(res mandel.Resolution, frame mandel.Frame) mapper {
	return mapper{
		width: int(res.X),
		lower: frame.Lower,
		scale: mandel.Coord{
			X: frame.Width() / float32(res.X),
			Y: frame.Height() / float32(res.Y),
		},
		rows: rowRange(0, int(res.Y)),
	}
}

// rowRange returns the rows [y0, y1).
func rowRange(y0, y1 int) []int {
	rows := make([]int, 0, y1-y0)
	for y := y0; y < y1; y++ {
		rows = append(rows, y)
	}
	return rows
}

// withRows returns a copy of m iterating the given rows.
func (m mapper) withRows(rows []int) mapper {
	m.rows = rows
	return m
}

// limit is the end of the work index range.
func (m *mapper) limit() int { return len(m.rows) * m.width }

func (m *mapper) re(x int) float32 {
	return float32(float32(x)*m.scale.X) + m.lower.X
}

func (m *mapper) im(y int) float32 {
	return float32(float32(y)*m.scale.Y) + m.lower.Y
}

// pixel returns the raster coordinates of work index i.
func (m *mapper) pixel(i int) (x, y int) {
	r := i / m.width
	return i - r*m.width, m.rows[r]
}

// point returns c for work index i.
func (m *mapper) point(i int) (re, im float32) {
	x, y := m.pixel(i)
	return m.re(x), m.im(y)
}

// mirrorPairs reports, for each row y of a raster of the given height,
// whether 0 < y < height-y and row height-y maps to the exact negation of
// row y. Conjugate points iterate to identical counts, so such a row pair
// needs to be computed only once.
func (m *mapper) mirrorPairs(height int) []bool {
	pairs := make([]bool, height)
	for y := 1; 2*y < height; y++ {
		pairs[y] = m.im(y) == -m.im(height-y)
	}
	return pairs
}

// group returns c for the lanes.Width work indices starting at i0. Lanes at
// or beyond limit are left zero and cleared in the valid mask.
func (m *mapper) group(i0, limit int) (re, im lanes.F32x8, valid lanes.U32x8) {
	r := i0 / m.width
	x0 := i0 - r*m.width
	if x0+lanes.Width <= m.width && i0+lanes.Width <= limit {
		xs := lanes.SplatU(uint32(x0)).Add(lanes.Iota()).Convert()
		re = xs.Mul(lanes.SplatF(m.scale.X)).Add(lanes.SplatF(m.lower.X))
		im = lanes.SplatF(m.im(m.rows[r]))
		return re, im, lanes.SplatU(lanes.True)
	}

	// Tail of the range, or the group wraps onto the next row.
	for k := range lanes.Width {
		i := i0 + k
		if i >= limit {
			break
		}
		re[k], im[k] = m.point(i)
		valid[k] = lanes.True
	}
	return re, im, valid
}
