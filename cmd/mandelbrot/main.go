// mandelbrot renders the whole Mandelbrot set on the local CPU and saves it as a plain PGM file.
//
//	mandelbrot [flags] [FILENAME [XRES YRES]]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	mandel "github.com/marben/simd_mandel"
	"github.com/marben/simd_mandel/internal/cliflag"
	"github.com/marben/simd_mandel/pgm"
	"github.com/marben/simd_mandel/render"
)

const (
	defaultFilename = "mandelbrot.pgm"
	defaultXRes     = 1024
	defaultYRes     = 768
)

var errUsage = errors.New("usage")

type options struct {
	filename   string
	resolution mandel.Resolution
	cfg        render.Config
	verbose    bool
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stdout, "Usage: %s [flags] [FILENAME [XRES YRES]]\n", os.Args[0])
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stdout, err)
		}
		os.Exit(2)
	}

	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func parseArgs(args []string) (options, error) {
	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := render.DefaultConfig()
	cliflag.Uint32Var(fs, &cfg.MaxIterations, "maxiter", render.DefaultMaxIterations, "maximum number of iterations per pixel")
	fs.IntVar(&cfg.Threads, "threads", cfg.Threads, "number of worker goroutines")
	strategy := fs.String("strategy", cfg.Strategy.String(), "work distribution: work-stealing or static")
	fs.IntVar(&cfg.BlockSize, "block", cfg.BlockSize, "lane groups claimed at once by a work-stealing worker")
	noPrefilter := fs.Bool("no-prefilter", false, "iterate cardioid and bulb points too")
	noPeriodicity := fs.Bool("no-periodicity", false, "disable orbit cycle detection")
	noSymmetry := fs.Bool("no-symmetry", false, "compute both halves of symmetric frames")
	verbose := fs.Bool("v", false, "log render details")
	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("%w: %w", errUsage, err)
	}

	opts := options{
		filename:   defaultFilename,
		resolution: mandel.Resolution{X: defaultXRes, Y: defaultYRes},
		verbose:    *verbose,
	}

	switch pos := fs.Args(); len(pos) {
	case 0:
	case 1:
		opts.filename = pos[0]
	case 3:
		opts.filename = pos[0]
		x, err := parseDimension(pos[1])
		if err != nil {
			return options{}, fmt.Errorf("%w: XRES: %w", errUsage, err)
		}
		y, err := parseDimension(pos[2])
		if err != nil {
			return options{}, fmt.Errorf("%w: YRES: %w", errUsage, err)
		}
		opts.resolution = mandel.Resolution{X: x, Y: y}
	default:
		return options{}, errUsage
	}

	st, err := render.ParseStrategy(*strategy)
	if err != nil {
		return options{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	cfg.Strategy = st
	cfg.Resolution = opts.resolution
	cfg.DisablePrefilter = *noPrefilter
	cfg.DisablePeriodicity = *noPeriodicity
	cfg.DisableSymmetry = *noSymmetry
	opts.cfg = cfg

	return opts, nil
}

func parseDimension(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errors.New("must be positive")
	}
	return uint32(v), nil
}

func run(opts options, out io.Writer) error {
	if opts.verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	e, err := render.New(opts.cfg)
	if err != nil {
		return fmt.Errorf("render.New: %w", err)
	}

	startComp := time.Now()
	raster := e.Render()
	endComp := time.Now()

	if err := pgm.Save(opts.filename, raster); err != nil {
		return fmt.Errorf("pgm.Save: %w", err)
	}
	endSave := time.Now()

	printTimes(out, startComp, endComp, endSave)
	return nil
}

func printTimes(out io.Writer, startComp, endComp, endSave time.Time) {
	p := message.NewPrinter(language.English)
	p.Fprintf(out, "Total time: %dms\n", endSave.Sub(startComp).Milliseconds())
	p.Fprintf(out, "  Computation time: %dms\n", endComp.Sub(startComp).Milliseconds())
	p.Fprintf(out, "  Saving time: %dms\n", endSave.Sub(endComp).Milliseconds())
}
