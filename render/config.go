package render

import (
	"errors"
	"fmt"
	"runtime"

	mandel "github.com/marben/simd_mandel"
)

// Strategy selects how pixel groups are distributed across workers.
type Strategy int

const (
	// StrategyWorkStealing lets workers claim blocks of groups from a shared atomic cursor.
	StrategyWorkStealing Strategy = iota
	// StrategyStatic hands every worker one contiguous range of groups up front.
	StrategyStatic
)

func (s Strategy) String() string {
	switch s {
	case StrategyWorkStealing:
		return "work-stealing"
	case StrategyStatic:
		return "static"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range []Strategy{StrategyWorkStealing, StrategyStatic} {
		if s == st.String() {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, s)
}

const (
	DefaultMaxIterations = 4096
	// DefaultBlockSize is the number of lane groups claimed at once by a work-stealing worker.
	DefaultBlockSize = 128
	// DefaultPeriodThreshold is the number of iterations between periodicity snapshots.
	DefaultPeriodThreshold = 150
)

var ErrInvalidConfig = errors.New("invalid config")

// Config describes one render.
//
// Resolution, Frame and MaxIterations are required. Zero values of the
// remaining fields select their defaults.
type Config struct {
	Resolution    mandel.Resolution
	Frame         mandel.Frame
	MaxIterations uint32

	// Threads is the number of workers. Zero means runtime.NumCPU().
	Threads  int
	Strategy Strategy
	// BlockSize is in lane groups, so a claimed block covers BlockSize*lanes.Width pixels.
	BlockSize       int
	PeriodThreshold uint32

	// The shortcuts below never change the output, only the time it takes.
	DisablePrefilter   bool
	DisablePeriodicity bool
	DisableSymmetry    bool

	// OnProgress, if set, is called by the workers with the number of pixels
	// they just finished, mirrored pixels included. It must be safe for concurrent use.
	OnProgress func(pixels int)
}

// DefaultConfig returns a 1024x768 render of the whole set with 4096 iterations.
func DefaultConfig() Config {
	return Config{
		Resolution:      mandel.Resolution{X: 1024, Y: 768},
		Frame:           mandel.DefaultFrame,
		MaxIterations:   DefaultMaxIterations,
		Threads:         runtime.NumCPU(),
		Strategy:        StrategyWorkStealing,
		BlockSize:       DefaultBlockSize,
		PeriodThreshold: DefaultPeriodThreshold,
	}
}

func (c Config) withDefaults() Config {
	if c.Threads == 0 {
		c.Threads = runtime.NumCPU()
	}
	if c.BlockSize == 0 {
		c.BlockSize = DefaultBlockSize
	}
	if c.PeriodThreshold == 0 {
		c.PeriodThreshold = DefaultPeriodThreshold
	}
	return c
}

// Validate returns the error New would report for c, if any.
func (c Config) Validate() error {
	return c.withDefaults().validate()
}

func (c Config) validate() error {
	switch {
	case c.Resolution.X == 0 || c.Resolution.Y == 0:
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidConfig, c.Resolution.X, c.Resolution.Y)
	case !c.Frame.Valid():
		return fmt.Errorf("%w: frame %+v is empty", ErrInvalidConfig, c.Frame)
	case c.MaxIterations == 0:
		return fmt.Errorf("%w: max iterations must be positive", ErrInvalidConfig)
	case c.Threads < 0:
		return fmt.Errorf("%w: %d threads", ErrInvalidConfig, c.Threads)
	case c.BlockSize < 0:
		return fmt.Errorf("%w: block size %d", ErrInvalidConfig, c.BlockSize)
	case c.Strategy != StrategyWorkStealing && c.Strategy != StrategyStatic:
		return fmt.Errorf("%w: unknown %s", ErrInvalidConfig, c.Strategy)
	}
	return nil
}
