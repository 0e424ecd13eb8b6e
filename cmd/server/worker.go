package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	mandel "github.com/marben/simd_mandel"
	"github.com/marben/simd_mandel/render"
)

var (
	errBadRequest = errors.New("bad request")
	errNoRender   = errors.New("no such render")
	errClosed     = errors.New("scheduler closed")
)

// band is the rows [y0, y1) of a raster, rendered by one renderer at a time.
type band struct {
	y0, y1 int
}

// renderJob is one raster, shared by every client asking for the same request.
type renderJob struct {
	key    mandel.RenderRequest
	raster *mandel.Raster
	done   chan struct{}

	totalPixels    int
	finishedPixels int

	unstarted []band
	inProcess map[band]struct{}
}

// renderScheduler implements mandel.RasterProvider and mandel.ProgressReporter.
// Requests are split into bands of rows, which are rendered by every renderer
// that called render: connected clients as well as local workers.
// Identical requests are rendered once; finished rasters are kept until
// maxCached newer ones have been rendered. Returned rasters are shared and must not be modified.
type renderScheduler struct {
	maxPixels int
	maxIter   uint32
	maxCached int
	bandRows  int

	workers  int
	jobs     map[mandel.RenderRequest]*renderJob
	pending  []*renderJob           // jobs with bands left, oldest first
	finished []mandel.RenderRequest // oldest first
	closed   bool
	m        sync.Mutex
	work     *sync.Cond // signalled when bands are queued or the scheduler closes
}

func newRenderScheduler(maxPixels int, maxIter uint32, maxCached, bandRows int) *renderScheduler {
	s := &renderScheduler{
		maxPixels: maxPixels,
		maxIter:   maxIter,
		maxCached: maxCached,
		bandRows:  max(bandRows, 1),
		jobs:      make(map[mandel.RenderRequest]*renderJob),
	}
	s.work = sync.NewCond(&s.m)
	return s
}

// normalize resolves the region of req and validates it, so that a region and
// its explicit frame share a job and renderers only get requests they can render.
func (s *renderScheduler) normalize(req mandel.RenderRequest) (mandel.RenderRequest, error) {
	frame, err := req.TargetFrame()
	if err != nil {
		return mandel.RenderRequest{}, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	if n := req.Resolution.PixelCount(); n > s.maxPixels {
		return mandel.RenderRequest{}, fmt.Errorf("%w: %d pixels exceed the limit of %d", errBadRequest, n, s.maxPixels)
	}
	if req.MaxIterations > s.maxIter {
		return mandel.RenderRequest{}, fmt.Errorf("%w: %d iterations exceed the limit of %d", errBadRequest, req.MaxIterations, s.maxIter)
	}
	key := mandel.RenderRequest{Frame: frame, Resolution: req.Resolution, MaxIterations: req.MaxIterations}
	cfg := render.Config{Resolution: key.Resolution, Frame: key.Frame, MaxIterations: key.MaxIterations}
	if err := cfg.Validate(); err != nil {
		return mandel.RenderRequest{}, err
	}
	return key, nil
}

// job returns the job for key, queueing its bands if it is new.
func (s *renderScheduler) job(key mandel.RenderRequest) (*renderJob, error) {
	s.m.Lock()
	defer s.m.Unlock()

	if s.closed {
		return nil, errClosed
	}
	if job, ok := s.jobs[key]; ok {
		return job, nil
	}

	h := int(key.Resolution.Y)
	job := &renderJob{
		key:         key,
		raster:      mandel.NewRaster(key.Resolution, key.Frame, key.MaxIterations),
		done:        make(chan struct{}),
		totalPixels: key.Resolution.PixelCount(),
		inProcess:   make(map[band]struct{}),
	}
	for y := 0; y < h; y += s.bandRows {
		job.unstarted = append(job.unstarted, band{y0: y, y1: min(y+s.bandRows, h)})
	}
	s.jobs[key] = job
	s.pending = append(s.pending, job)
	s.work.Broadcast()

	log.Printf("queued %v of %+v in %d bands", key.Resolution, key.Frame, len(job.unstarted))
	return job, nil
}

// GetRaster implements mandel.RasterProvider.
func (s *renderScheduler) GetRaster(ctx context.Context, req mandel.RenderRequest) (*mandel.Raster, error) {
	key, err := s.normalize(req)
	if err != nil {
		return nil, err
	}
	job, err := s.job(key)
	if err != nil {
		return nil, err
	}

	select {
	case <-job.done:
		return job.raster, nil
	case <-ctx.Done():
		return nil, context.Cause(ctx)
	}
}

// Progress implements mandel.ProgressReporter.
func (s *renderScheduler) Progress(req mandel.RenderRequest) (mandel.Progress, error) {
	key, err := s.normalize(req)
	if err != nil {
		return mandel.Progress{}, err
	}

	s.m.Lock()
	defer s.m.Unlock()
	job, ok := s.jobs[key]
	if !ok {
		return mandel.Progress{}, fmt.Errorf("%w: %v of %+v", errNoRender, key.Resolution, key.Frame)
	}
	return mandel.Progress{
		Finished: float32(job.finishedPixels) / float32(job.totalPixels),
		Workers:  s.workers,
	}, nil
}

// popBand waits for a band to render. Unstarted bands go first; when there
// are none, a band already in process is handed out again.
// ok is false once ctx is done or the scheduler is closed.
func (s *renderScheduler) popBand(ctx context.Context) (job *renderJob, b band, ok bool) {
	s.m.Lock()
	defer s.m.Unlock()

	for len(s.pending) == 0 && !s.closed && ctx.Err() == nil {
		s.work.Wait()
	}
	if s.closed || ctx.Err() != nil {
		return nil, band{}, false
	}

	for _, job := range s.pending {
		if len(job.unstarted) > 0 {
			b = job.unstarted[0]
			job.unstarted = job.unstarted[1:]
			job.inProcess[b] = struct{}{}
			return job, b, true
		}
	}

	// If there is no unstarted band, we work again on a started one
	job = s.pending[0]
	for b = range job.inProcess {
		break
	}
	return job, b, true
}

// bandFinished stores the rows of b, unless another renderer was faster.
// The job is done once all of its bands are.
func (s *renderScheduler) bandFinished(job *renderJob, b band, rows []uint32) error {
	w := int(job.key.Resolution.X)
	if len(rows) != (b.y1-b.y0)*w {
		return fmt.Errorf("rows [%d, %d): got %d values, want %d", b.y0, b.y1, len(rows), (b.y1-b.y0)*w)
	}

	s.m.Lock()
	defer s.m.Unlock()

	if _, found := job.inProcess[b]; !found {
		return nil
	}
	if err := job.raster.SetRows(b.y0, rows); err != nil {
		return err
	}
	delete(job.inProcess, b)
	job.finishedPixels += len(rows)
	log.Printf("finished: %f", float32(job.finishedPixels)/float32(job.totalPixels))

	if len(job.unstarted) == 0 && len(job.inProcess) == 0 {
		s.jobFinished(job)
	}
	return nil
}

// jobFinished completes job and evicts the oldest cached jobs over the limit.
// s.m must be held.
func (s *renderScheduler) jobFinished(job *renderJob) {
	for i, j := range s.pending {
		if j == job {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			break
		}
	}
	close(job.done)

	s.finished = append(s.finished, job.key)
	for len(s.finished) > s.maxCached {
		delete(s.jobs, s.finished[0])
		s.finished = s.finished[1:]
	}
}

// render renders bands on the provided renderer until ctx is done or the scheduler is closed.
// A renderer that fails is dropped; its band is handed to the others.
// Can be called from multiple goroutines in parallel.
func (s *renderScheduler) render(ctx context.Context, renderer mandel.Renderer) error {
	s.incActiveWorkers()
	defer s.decActiveWorkers()

	stop := context.AfterFunc(ctx, s.wakeAll)
	defer stop()

	for {
		job, b, ok := s.popBand(ctx)
		if !ok {
			return nil
		}
		rows, err := renderer.RenderRows(job.key, b.y0, b.y1)
		if err != nil {
			return fmt.Errorf("render of rows [%d, %d) failed: %w", b.y0, b.y1, err)
		}
		if err := s.bandFinished(job, b, rows); err != nil {
			return err
		}
	}
}

func (s *renderScheduler) wakeAll() {
	s.m.Lock()
	s.work.Broadcast()
	s.m.Unlock()
}

// close stops all renderers. Pending requests wait until their context is done.
func (s *renderScheduler) close() {
	s.m.Lock()
	s.closed = true
	s.work.Broadcast()
	s.m.Unlock()
}

func (s *renderScheduler) cached() int {
	s.m.Lock()
	defer s.m.Unlock()
	return len(s.finished)
}

func (s *renderScheduler) activeWorkers() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.workers
}

func (s *renderScheduler) incActiveWorkers() {
	s.m.Lock()
	s.workers++
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

func (s *renderScheduler) decActiveWorkers() {
	s.m.Lock()
	s.workers--
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

var (
	_ mandel.RasterProvider   = (*renderScheduler)(nil)
	_ mandel.ProgressReporter = (*renderScheduler)(nil)
)
