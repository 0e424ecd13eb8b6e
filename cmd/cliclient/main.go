// cliclient is a CLI client for the Mandelbrot render server.
// It connects to the server, requests a rendered raster, and saves it as a PGM file.
// While connected, it also renders bands of rows for the server.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/marben/simd_mandel"
	"github.com/marben/simd_mandel/internal/cliflag"
	"github.com/marben/simd_mandel/pgm"
	"github.com/marben/simd_mandel/render"
)

type options struct {
	url      string
	local    bool
	filename string
	req      mandel.RenderRequest
	threads  int
	interval time.Duration
}

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")

	var opts options
	fs := flag.CommandLine
	fs.StringVar(&opts.url, "url", "ws://localhost:8080/ws", "websocket endpoint of the render server")
	fs.BoolVar(&opts.local, "local", false, "render on this machine instead of asking the server")
	fs.StringVar(&opts.filename, "o", "mandel.pgm", "output file")
	fs.StringVar(&opts.req.Region, "region", "seahorse", "region to render, one of the names in mandel.Regions")
	fs.IntVar(&opts.threads, "threads", 0, "goroutines rendering for the server, 0 for one per CPU")
	fs.DurationVar(&opts.interval, "progress", time.Second, "interval of progress reports")
	cliflag.Uint32Var(fs, &opts.req.Resolution.X, "w", 1920, "raster width")
	cliflag.Uint32Var(fs, &opts.req.Resolution.Y, "h", 1080, "raster height")
	cliflag.Uint32Var(fs, &opts.req.MaxIterations, "maxiter", render.DefaultMaxIterations, "maximum number of iterations per pixel")
	flag.Parse()

	if err := run(context.Background(), opts); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run requests the raster from the server, or renders it locally, and saves it as a PGM file.
// Returns an error if any step fails.
func run(ctx context.Context, opts options) error {
	var raster *mandel.Raster
	var err error
	if opts.local {
		log.Printf("Rendering %v of region %q locally...", opts.req.Resolution, opts.req.Region)
		raster, err = render.RendererImpl{Threads: opts.threads}.Render(opts.req)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
	} else {
		raster, err = fetch(ctx, opts)
		if err != nil {
			return err
		}
	}

	// Save the rendered raster to a PGM file
	log.Printf("Saving rendered raster to %q...", opts.filename)
	if err := pgm.Save(opts.filename, raster); err != nil {
		return fmt.Errorf("failed to save raster: %w", err)
	}

	log.Printf("Fully rendered raster saved to %q", opts.filename)
	return nil
}

func fetch(ctx context.Context, opts options) (*mandel.Raster, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Step 1: Connect to Mandelbrot server
	log.Printf("Connecting to Mandelbrot server on %s...", opts.url)
	c, _, err := websocket.Dial(ctx, opts.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	conn := websocket.NetConn(ctx, c, websocket.MessageBinary)

	// Step 2: Provide a Renderer service, so the server can use us for rendering
	rendererService := mandel.NewRendererIrpcService(render.RendererImpl{
		Threads: opts.threads,
		OnRender: func(req mandel.RenderRequest, y0, y1 int) {
			log.Printf("rendering rows [%d, %d) of %v for the server", y0, y1, req.Resolution)
		},
	})

	// Step 3: Create an irpc endpoint, registering the renderer service
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(rendererService))
	defer ep.Close()

	// Step 4: Create clients for the RasterProvider and ProgressReporter interfaces
	rasterProvider, err := mandel.NewRasterProviderIrpcClient(ep)
	if err != nil {
		return nil, fmt.Errorf("failed to create RasterProvider client: %w", err)
	}
	progressReporter, err := mandel.NewProgressReporterIrpcClient(ep)
	if err != nil {
		return nil, fmt.Errorf("failed to create ProgressReporter client: %w", err)
	}

	// Step 5: Report progress of the render until it is done
	done := make(chan struct{})
	defer close(done)
	go reportProgress(progressReporter, opts.req, opts.interval, done)

	// Step 6: Request the fully rendered raster from the server
	log.Printf("Requesting %v of region %q from server...", opts.req.Resolution, opts.req.Region)
	raster, err := rasterProvider.GetRaster(ctx, opts.req)
	if err != nil {
		return nil, fmt.Errorf("rasterProvider.GetRaster: %w", err)
	}
	return raster, nil
}

// reportProgress logs the progress of req every interval until done is closed.
func reportProgress(p mandel.ProgressReporter, req mandel.RenderRequest, interval time.Duration, done <-chan struct{}) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			progress, err := p.Progress(req)
			if err != nil {
				log.Printf("progress: %v", err)
				continue
			}
			log.Printf("finished: %f on %d workers", progress.Finished, progress.Workers)
		}
	}
}
