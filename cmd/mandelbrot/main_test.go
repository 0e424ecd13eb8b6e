package main

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mandel "github.com/marben/simd_mandel"
	"github.com/marben/simd_mandel/render"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args     []string
		filename string
		res      mandel.Resolution
	}{
		{nil, "mandelbrot.pgm", mandel.Resolution{X: 1024, Y: 768}},
		{[]string{"out.pgm"}, "out.pgm", mandel.Resolution{X: 1024, Y: 768}},
		{[]string{"out.pgm", "320", "200"}, "out.pgm", mandel.Resolution{X: 320, Y: 200}},
		{[]string{"-threads", "3", "a.pgm", "8", "9"}, "a.pgm", mandel.Resolution{X: 8, Y: 9}},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			opts, err := parseArgs(tt.args)
			if err != nil {
				t.Fatalf("parseArgs: %v", err)
			}
			if opts.filename != tt.filename || opts.resolution != tt.res {
				t.Errorf("got %q %v, want %q %v", opts.filename, opts.resolution, tt.filename, tt.res)
			}
			if opts.cfg.Resolution != tt.res || opts.cfg.MaxIterations != render.DefaultMaxIterations {
				t.Errorf("config = %v maxiter %d", opts.cfg.Resolution, opts.cfg.MaxIterations)
			}
		})
	}
}

func TestParseArgsFlags(t *testing.T) {
	opts, err := parseArgs([]string{"-maxiter", "100", "-strategy", "static", "-threads", "2", "-no-symmetry", "-v"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	cfg := opts.cfg
	if cfg.MaxIterations != 100 || cfg.Strategy != render.StrategyStatic || cfg.Threads != 2 || !cfg.DisableSymmetry || !opts.verbose {
		t.Errorf("flags not applied: %+v verbose=%v", cfg, opts.verbose)
	}

	opts, err = parseArgs([]string{"-maxiter", "4294967295"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if opts.cfg.MaxIterations != math.MaxUint32 {
		t.Errorf("MaxIterations = %d, want %d", opts.cfg.MaxIterations, uint32(math.MaxUint32))
	}
}

func TestParseArgsUsage(t *testing.T) {
	for _, args := range [][]string{
		{"a.pgm", "320"},
		{"a.pgm", "1", "2", "3"},
		{"a.pgm", "x", "200"},
		{"a.pgm", "320", "0"},
		{"a.pgm", "320", "-5"},
		{"-strategy", "random"},
		{"-maxiter", "4294967297"},
		{"-maxiter", "-1"},
		{"-unknown"},
	} {
		if _, err := parseArgs(args); !errors.Is(err, errUsage) {
			t.Errorf("parseArgs(%q) error = %v, want usage", args, err)
		}
	}
}

func TestRun(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "small.pgm")
	opts, err := parseArgs([]string{"-maxiter", "64", filename, "40", "30"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}

	var out bytes.Buffer
	if err := run(opts, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("P2\n40 30\n64\n")) {
		t.Errorf("unexpected header %q", b[:min(len(b), 16)])
	}
	if n := bytes.Count(b, []byte("\n")); n != 3+30 {
		t.Errorf("file has %d lines, want 33", n)
	}
	for _, want := range []string{"Total time:", "Computation time:", "Saving time:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report %q lacks %q", out.String(), want)
		}
	}
}

func TestPrintTimes(t *testing.T) {
	start := time.Unix(0, 0)
	var out bytes.Buffer
	printTimes(&out, start, start.Add(1500*time.Millisecond), start.Add(1512*time.Millisecond))

	want := "Total time: 1,512ms\n  Computation time: 1,500ms\n  Saving time: 12ms\n"
	if out.String() != want {
		t.Errorf("printTimes = %q, want %q", out.String(), want)
	}
}
