package mandel

// Coord is a point in the complex plane.
type Coord struct {
	X, Y float32
}

// Frame is the viewport onto the complex plane, from the lower-left to the upper-right corner.
type Frame struct {
	Lower, Upper Coord
}

func (f Frame) Width() float32  { return f.Upper.X - f.Lower.X }
func (f Frame) Height() float32 { return f.Upper.Y - f.Lower.Y }

// Valid reports whether the frame spans a positive area.
func (f Frame) Valid() bool {
	return f.Upper.X > f.Lower.X && f.Upper.Y > f.Lower.Y
}

// Symmetric reports whether the frame is mirrored exactly about the real axis.
func (f Frame) Symmetric() bool {
	return f.Lower.Y == -f.Upper.Y
}

// Resolution of the raster in pixels
type Resolution struct {
	X, Y uint32
}

func (r Resolution) PixelCount() int {
	return int(r.X) * int(r.Y)
}

// DefaultFrame shows the whole set
var DefaultFrame = Frame{
	Lower: Coord{X: -2.0, Y: -1.2},
	Upper: Coord{X: 1.0, Y: 1.2},
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Frame{
		Lower: Coord{X: -0.8, Y: 0.05},
		Upper: Coord{X: -0.7, Y: 0.15},
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Frame{
		Lower: Coord{X: -1.85, Y: -0.10},
		Upper: Coord{X: -1.75, Y: -0.02},
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Frame{
		Lower: Coord{X: -0.7435, Y: 0.1310},
		Upper: Coord{X: -0.7420, Y: 0.1325},
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Frame{
		Lower: Coord{X: -0.7480, Y: 0.0950},
		Upper: Coord{X: -0.7450, Y: 0.0980},
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Frame{
		Lower: Coord{X: -0.7400, Y: 0.1800},
		Upper: Coord{X: -0.7350, Y: 0.1850},
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Frame{
		Lower: Coord{X: -1.7390, Y: -0.0235},
		Upper: Coord{X: -1.7375, Y: -0.0220},
	}
)

// Regions maps landmark names, as accepted by the server and clients, to their frames.
var Regions = map[string]Frame{
	"full":                 DefaultFrame,
	"seahorse":             SeahorseValley,
	"elephant":             ElephantValley,
	"spiral-minibrot":      SpiralMinibrot,
	"triple-spiral":        TripleSpiral,
	"dragon":               ValleyOfTheDragon,
	"minibrot-mini-spiral": MinibrotInMiniSpiral,
}
