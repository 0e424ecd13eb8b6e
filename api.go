package mandel

import (
	"context"
	"fmt"
)

//go:generate go run github.com/marben/irpc/cmd/irpc $GOFILE

// RasterProvider hands out fully rendered rasters. It is served to cli clients.
type RasterProvider interface {
	GetRaster(ctx context.Context, request RenderRequest) (*Raster, error)
}

// ProgressReporter is implemented by providers that can tell how far a pending request got.
type ProgressReporter interface {
	Progress(request RenderRequest) (Progress, error)
}

// Renderer is provided by every connected client, so the server can use its CPU.
// RenderRows returns the rows [y0, y1) of the requested raster, row-major.
type Renderer interface {
	RenderRows(request RenderRequest, y0, y1 int) ([]uint32, error)
}

// RenderRequest is sent by clients to ask for a raster.
// A non-empty Region takes precedence over Frame.
type RenderRequest struct {
	Region        string
	Frame         Frame
	Resolution    Resolution
	MaxIterations uint32
}

// Progress reports the finished share of a render in [0, 1],
// along with the number of renderers currently working for the server.
type Progress struct {
	Finished float32
	Workers  int
}

// TargetFrame resolves the frame to render: the named region if Region is set, Frame otherwise.
func (r RenderRequest) TargetFrame() (Frame, error) {
	if r.Region == "" {
		return r.Frame, nil
	}
	f, ok := Regions[r.Region]
	if !ok {
		return Frame{}, fmt.Errorf("unknown region %q", r.Region)
	}
	return f, nil
}
