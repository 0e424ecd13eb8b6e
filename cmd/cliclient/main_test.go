package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/marben/simd_mandel"
)

// clientRenderedProvider renders every raster on the renderer of its connected client,
// once the client asked for progress.
type clientRenderedProvider struct {
	renderer chan mandel.Renderer

	once       sync.Once
	progressed chan struct{}
}

func (p *clientRenderedProvider) GetRaster(ctx context.Context, req mandel.RenderRequest) (*mandel.Raster, error) {
	frame, err := req.TargetFrame()
	if err != nil {
		return nil, err
	}
	select {
	case <-p.progressed:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var renderer mandel.Renderer
	select {
	case renderer = <-p.renderer:
		defer func() { p.renderer <- renderer }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	rows, err := renderer.RenderRows(req, 0, int(req.Resolution.Y))
	if err != nil {
		return nil, fmt.Errorf("client render: %w", err)
	}
	raster := mandel.NewRaster(req.Resolution, frame, req.MaxIterations)
	if err := raster.SetRows(0, rows); err != nil {
		return nil, err
	}
	return raster, nil
}

func (p *clientRenderedProvider) Progress(mandel.RenderRequest) (mandel.Progress, error) {
	p.once.Do(func() { close(p.progressed) })
	return mandel.Progress{Workers: 1}, nil
}

func startServer(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		p := &clientRenderedProvider{renderer: make(chan mandel.Renderer, 1), progressed: make(chan struct{})}
		ep := irpc.NewEndpoint(
			websocket.NetConn(r.Context(), c, websocket.MessageBinary),
			irpc.WithEndpointServices(mandel.NewRasterProviderIrpcService(p), mandel.NewProgressReporterIrpcService(p)),
		)
		defer ep.Close()

		renderer, err := mandel.NewRendererIrpcClient(ep)
		if err != nil {
			t.Error(err)
			return
		}
		p.renderer <- renderer
		<-ep.Context().Done()
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func testOptions(t *testing.T) options {
	return options{
		filename: filepath.Join(t.TempDir(), "out.pgm"),
		req: mandel.RenderRequest{
			Region:        "elephant",
			Resolution:    mandel.Resolution{X: 30, Y: 20},
			MaxIterations: 300,
		},
		threads:  2,
		interval: time.Millisecond,
	}
}

func TestRunRemoteMatchesLocal(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	remote := testOptions(t)
	remote.url = startServer(t)
	if err := run(ctx, remote); err != nil {
		t.Fatalf("remote run: %v", err)
	}

	local := testOptions(t)
	local.local = true
	if err := run(ctx, local); err != nil {
		t.Fatalf("local run: %v", err)
	}

	a, err := os.ReadFile(remote.filename)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(local.filename)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(a, []byte("P2\n30 20\n300\n")) {
		t.Errorf("unexpected header %q", a[:min(len(a), 16)])
	}
	if !bytes.Equal(a, b) {
		t.Error("remote and local files differ")
	}
}

func TestRunErrors(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := testOptions(t)
	opts.url = startServer(t)
	opts.req.Region = "atlantis"
	if err := run(ctx, opts); err == nil {
		t.Error("unknown region accepted by server")
	}

	opts = testOptions(t)
	opts.url = "ws://127.0.0.1:1/ws"
	if err := run(ctx, opts); err == nil {
		t.Error("run without a server succeeded")
	}

	opts = testOptions(t)
	opts.local = true
	opts.filename = filepath.Join(t.TempDir(), "missing", "out.pgm")
	if err := run(ctx, opts); err == nil {
		t.Error("saving into a missing directory succeeded")
	}
}
