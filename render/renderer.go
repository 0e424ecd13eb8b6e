package render

import (
	"fmt"

	mandel "github.com/marben/simd_mandel"
)

// RendererImpl renders requests on the local CPU.
type RendererImpl struct {
	Threads  int
	Strategy Strategy

	// OnRender, if set, is called before rows [y0, y1) of req are computed.
	OnRender func(req mandel.RenderRequest, y0, y1 int)
	// OnProgress is passed on to Config.OnProgress.
	OnProgress func(pixels int)
}

func (imp RendererImpl) engine(req mandel.RenderRequest) (*Engine, error) {
	frame, err := req.TargetFrame()
	if err != nil {
		return nil, err
	}
	e, err := New(Config{
		Resolution:    req.Resolution,
		Frame:         frame,
		MaxIterations: req.MaxIterations,
		Threads:       imp.Threads,
		Strategy:      imp.Strategy,
		OnProgress:    imp.OnProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("render.New: %w", err)
	}
	return e, nil
}

// Render computes the whole raster of req.
func (imp RendererImpl) Render(req mandel.RenderRequest) (*mandel.Raster, error) {
	e, err := imp.engine(req)
	if err != nil {
		return nil, err
	}
	if imp.OnRender != nil {
		imp.OnRender(req, 0, int(req.Resolution.Y))
	}
	return e.Render(), nil
}

// RenderRows implements mandel.Renderer.
func (imp RendererImpl) RenderRows(req mandel.RenderRequest, y0, y1 int) ([]uint32, error) {
	e, err := imp.engine(req)
	if err != nil {
		return nil, err
	}
	if imp.OnRender != nil {
		imp.OnRender(req, y0, y1)
	}
	return e.RenderRows(y0, y1)
}

var _ mandel.Renderer = RendererImpl{}
