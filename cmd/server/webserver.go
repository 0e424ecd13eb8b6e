package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/coder/websocket"

	mandel "github.com/marben/simd_mandel"
	"github.com/marben/simd_mandel/pgm"
	"github.com/marben/simd_mandel/render"
)

// webServer serves rasters of p as PGM files on /raster.pgm,
// initializes websocket endpoint /ws and returns net.Listener accepting websocket connections
func webServer(ctx context.Context, addr string, p mandel.RasterProvider) (net.Listener, *http.Server) {
	l := NewWSListener(ctx, addr+"/ws")
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l))
	mux.HandleFunc("GET /raster.pgm", rasterHandler(p))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://%s", addr)
	return l, srv
}

// websocketHandler handles the http ws endpoint
// if websocket is succesfully initialized it is passed to WebsocketListener so it can be accepted
func websocketHandler(l *WebsocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// WebsocketListener implements net.Listener
// it's a wrapper around websocket.Conn
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelCauseFunc
	addr   wsAddr
}

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancelCause(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, context.Cause(l.ctx)
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

// Close stops accepting and closes every connection accepted so far.
func (l *WebsocketListener) Close() error {
	l.cancel(net.ErrClosed)
	return nil
}

// wsAddrs implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}

// rasterHandler renders the request given by the query parameters
// region, w, h and maxiter, and responds with a plain PGM file.
func rasterHandler(p mandel.RasterProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseRasterQuery(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		raster, err := p.GetRaster(r.Context(), req)
		switch {
		case errors.Is(err, errBadRequest), errors.Is(err, render.ErrInvalidConfig):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/x-portable-graymap")
		if err := pgm.Encode(w, raster); err != nil {
			log.Printf("err: write raster to %q: %v", r.RemoteAddr, err)
		}
	}
}

func parseRasterQuery(q url.Values) (mandel.RenderRequest, error) {
	req := mandel.RenderRequest{
		Region:        "full",
		Resolution:    mandel.Resolution{X: 1024, Y: 768},
		MaxIterations: render.DefaultMaxIterations,
	}
	if region := q.Get("region"); region != "" {
		req.Region = region
	}

	for _, p := range []struct {
		name string
		dst  *uint32
	}{
		{"w", &req.Resolution.X},
		{"h", &req.Resolution.Y},
		{"maxiter", &req.MaxIterations},
	} {
		s := q.Get(p.name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return mandel.RenderRequest{}, fmt.Errorf("parameter %s: %w", p.name, err)
		}
		*p.dst = uint32(v)
	}
	return req, nil
}
