package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/marben/irpc"

	mandel "github.com/marben/simd_mandel"
	"github.com/marben/simd_mandel/internal/cliflag"
	"github.com/marben/simd_mandel/render"
)

// main is the entry point for the Mandelbrot server.
// Rendering is split into bands of rows, computed by connected clients (cli) and by local workers.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address, serving /raster.pgm and the /ws websocket endpoint")
	tcpAddr := flag.String("tcp", ":8081", "tcp listen address for irpc clients")
	threads := flag.Int("threads", 0, "goroutines per local worker, 0 for one per CPU")
	strategy := flag.String("strategy", render.StrategyWorkStealing.String(), "work distribution of local workers: work-stealing or static")
	localWorkers := flag.Int("local-workers", 1, "workers rendering on this machine next to connected clients")
	bandRows := flag.Int("band-rows", 16, "raster rows handed to a worker at once")
	maxPixels := flag.Int("max-pixels", 8192*8192, "largest accepted raster in pixels")
	var maxIter uint32
	cliflag.Uint32Var(flag.CommandLine, &maxIter, "max-maxiter", 1<<20, "largest accepted iteration budget")
	cache := flag.Int("cache", 16, "number of finished rasters kept for repeated requests")
	flag.Parse()

	st, err := render.ParseStrategy(*strategy)
	if err != nil {
		return fmt.Errorf("-strategy: %w", err)
	}

	// renderScheduler renders each distinct request once and reports progress of pending ones.
	// Http and irpc clients share it, so connected clients render for each other.
	scheduler := newRenderScheduler(*maxPixels, maxIter, *cache, *bandRows)

	// local workers keep the server rendering when no client is connected
	local := render.RendererImpl{
		Threads:  *threads,
		Strategy: st,
		OnRender: func(req mandel.RenderRequest, y0, y1 int) {
			log.Printf("rendering rows [%d, %d) of %v", y0, y1, req.Resolution)
		},
	}
	for range *localWorkers {
		go func() {
			if err := scheduler.render(context.Background(), local); err != nil {
				log.Printf("err: local render: %v", err)
			}
		}()
	}

	irpcServer := newIrpcServer(scheduler)

	// TCP
	log.Printf("tcp listening on: %s", *tcpAddr)
	tcpListener, err := net.Listen("tcp", *tcpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(context.Background(), *addr, scheduler)

	go func() {
		if err := httpServer.ListenAndServe(); err != nil {
			log.Fatalf("httpServer: %v", err)
		}
	}()

	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		if err := irpcServer.Serve(tcpListener); err != nil {
			log.Fatalf("server.Serve tcp: %v", err)
		}
	}()
	go func() {
		if err := irpcServer.Serve(websocketListener); err != nil {
			log.Fatalf("server.Serve ws: %v", err)
		}
	}()

	log.Printf("mb server waiting for tcp and websocket connections")
	select {}
}

// newIrpcServer provides s to irpc clients and plugs every connected client into rendering.
func newIrpcServer(s *renderScheduler) *irpc.Server {
	// irpc server with onConnect hook to plug clients into rendering
	irpcServer := irpc.NewServer(irpc.WithOnConnect(func(ep *irpc.Endpoint) {
		go func() {
			log.Printf("got connection from: %s", ep.RemoteAddr())

			// Each client needs to provide us with mandel.Renderer so we can use it to render bands of rows
			rendererIrpcClient, err := mandel.NewRendererIrpcClient(ep)
			if err != nil {
				log.Printf("err: new Rendering client: %v", err)
				return
			}

			// Each connected client is used as a worker until it disconnects
			if err := s.render(ep.Context(), rendererIrpcClient); err != nil {
				log.Printf("err: render on client %q: %v", ep.RemoteAddr(), err)
			}
		}()
	}))

	// GetRaster returns the full raster upon complete render, Progress reports how far it got.
	// Both are implemented by the scheduler, so one instance backs both services.
	irpcServer.AddService(
		mandel.NewRasterProviderIrpcService(s),
		mandel.NewProgressReporterIrpcService(s),
	)
	return irpcServer
}
