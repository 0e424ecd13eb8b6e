// Package render computes escape-time rasters of the Mandelbrot set.
//
// The Engine iterates eight pixels at a time on lanes vectors, skips points of
// the main cardioid and the period-2 bulb, stops bounded orbits early through
// periodicity checks and, for frames symmetric about the real axis, computes
// a row pair only once when the two rows map to conjugate points. None of
// these shortcuts changes the result: for a given Config the raster is the
// same for every thread count and Strategy.
package render

import (
	"fmt"
	"time"

	mandel "github.com/marben/simd_mandel"
	"github.com/marben/simd_mandel/lanes"
)

// Engine renders one Config. It is immutable after New and may render any number of times.
type Engine struct {
	cfg Config
	m   mapper
	k   consts

	// mirror[y] is set when row y is also stored at row H-y. nil when nothing is mirrored.
	mirror []bool
}

// New validates cfg and prepares an engine for it. Invalid configurations are
// reported with an error wrapping ErrInvalidConfig.
func New(cfg Config) (*Engine, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg: cfg,
		m:   newMapper(cfg.Resolution, cfg.Frame),
		k:   newConsts(cfg.MaxIterations, cfg.PeriodThreshold),
	}
	if cfg.Frame.Symmetric() && !cfg.DisableSymmetry {
		e.planMirror()
	}
	return e, nil
}

// planMirror drops the second row of every exactly conjugate row pair from the iterated rows.
func (e *Engine) planMirror() {
	h := int(e.cfg.Resolution.Y)
	pairs := e.m.mirrorPairs(h)

	rows := make([]int, 0, h)
	mirrored := 0
	for y := range h {
		if 2*y > h && pairs[h-y] {
			continue
		}
		if pairs[y] {
			mirrored++
		}
		rows = append(rows, y)
	}
	if mirrored == 0 {
		return
	}
	e.m = e.m.withRows(rows)
	e.mirror = pairs
}

// Config returns the configuration with defaults applied.
func (e *Engine) Config() Config { return e.cfg }

// Mirrored reports whether the engine stores some computed rows twice.
func (e *Engine) Mirrored() bool { return e.mirror != nil }

// pass is one run of the engine: the rows to iterate and where their counts go.
type pass struct {
	m      mapper
	data   []uint32
	base   int    // raster row held at data[0]
	mirror []bool // nil for none
}

// Render computes a new raster. It blocks until all workers are done.
func (e *Engine) Render() *mandel.Raster {
	r := mandel.NewRaster(e.cfg.Resolution, e.cfg.Frame, e.cfg.MaxIterations)

	log := Logger()
	log.Debug("render started",
		"resolution", fmt.Sprintf("%dx%d", e.cfg.Resolution.X, e.cfg.Resolution.Y),
		"max_iterations", e.cfg.MaxIterations,
		"threads", e.cfg.Threads,
		"strategy", e.cfg.Strategy,
		"mirror", e.Mirrored())
	start := time.Now()

	groups := e.run(&pass{m: e.m, data: r.Data, mirror: e.mirror})

	log.Debug("render finished", "groups", groups, "elapsed", time.Since(start))
	return r
}

// RenderRows computes the rows [y0, y1) of the raster without mirroring and
// returns them row-major. The values equal the same rows of Render.
func (e *Engine) RenderRows(y0, y1 int) ([]uint32, error) {
	if y0 < 0 || y1 < y0 || y1 > int(e.cfg.Resolution.Y) {
		return nil, fmt.Errorf("%w: rows [%d, %d) outside [0, %d)", ErrInvalidConfig, y0, y1, e.cfg.Resolution.Y)
	}
	data := make([]uint32, (y1-y0)*e.m.width)

	Logger().Debug("rows started", "y0", y0, "y1", y1, "threads", e.cfg.Threads)
	e.run(&pass{m: e.m.withRows(rowRange(y0, y1)), data: data, base: y0})
	return data, nil
}

// run iterates every work index of p on the configured workers and returns the number of groups.
func (e *Engine) run(p *pass) int {
	limit := p.m.limit()
	groups := (limit + lanes.Width - 1) / lanes.Width
	distribute(e.cfg.Strategy, e.cfg.Threads, e.cfg.BlockSize, groups, func(g0, g1 int) {
		n := e.renderGroups(p, limit, g0, g1)
		if e.cfg.OnProgress != nil {
			e.cfg.OnProgress(n)
		}
	})
	return groups
}

// renderGroups computes the groups [g0, g1) of p and returns the number of pixels written.
func (e *Engine) renderGroups(p *pass, limit, g0, g1 int) int {
	written := 0
	for g := g0; g < g1; g++ {
		i0 := g * lanes.Width
		cr, ci, valid := p.m.group(i0, limit)
		written += e.store(p, i0, limit, e.escape(cr, ci, valid))
	}
	return written
}

// store writes the valid lanes of iter for the work indices starting at i0
// and, for mirrored rows y, also at row H-y.
func (e *Engine) store(p *pass, i0, limit int, iter lanes.U32x8) int {
	w, h := p.m.width, int(e.cfg.Resolution.Y)
	n := min(lanes.Width, limit-i0)
	written := n
	for k, v := range iter[:n] {
		x, y := p.m.pixel(i0 + k)
		p.data[(y-p.base)*w+x] = v
		if p.mirror != nil && p.mirror[y] {
			p.data[(h-y-p.base)*w+x] = v
			written++
		}
	}
	return written
}
