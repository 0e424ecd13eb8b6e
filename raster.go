package mandel

import "fmt"

// Raster holds the escape-time iteration count of every pixel.
// Data is row-major, index y*Resolution.X+x, and row 0 maps to Frame.Lower.Y.
type Raster struct {
	Resolution    Resolution
	Frame         Frame
	MaxIterations uint32
	Data          []uint32
}

// NewRaster allocates a zeroed raster for the given resolution.
func NewRaster(res Resolution, frame Frame, maxIter uint32) *Raster {
	return &Raster{
		Resolution:    res,
		Frame:         frame,
		MaxIterations: maxIter,
		Data:          make([]uint32, res.PixelCount()),
	}
}

func (r *Raster) At(x, y int) uint32 {
	return r.Data[y*int(r.Resolution.X)+x]
}

// Row returns row y as a subslice of Data.
func (r *Raster) Row(y int) []uint32 {
	return r.Rows(y, y+1)
}

// Rows returns the rows [y0, y1) as a subslice of Data.
func (r *Raster) Rows(y0, y1 int) []uint32 {
	w := int(r.Resolution.X)
	return r.Data[y0*w : y1*w]
}

// SetRows copies row-major rows into r, starting at row y0.
func (r *Raster) SetRows(y0 int, rows []uint32) error {
	w := int(r.Resolution.X)
	if w == 0 || len(rows)%w != 0 {
		return fmt.Errorf("%d values are not whole rows of width %d", len(rows), w)
	}
	n := len(rows) / w
	if y0 < 0 || y0+n > int(r.Resolution.Y) {
		return fmt.Errorf("rows [%d, %d) out of range [0, %d)", y0, y0+n, r.Resolution.Y)
	}
	copy(r.Data[y0*w:], rows)
	return nil
}
