package render

import "github.com/marben/simd_mandel/lanes"

// interior marks the lanes whose c lies in the main cardioid or in the
// period-2 bulb. Those points are members, so they need no iteration.
//
//	cardioid: q*(q+a) <= y²/4  with a = x-1/4, q = a²+y²
//	bulb:     (x+1)²+y² <= 1/16
//
// Both tests run in float64 on the float32 inputs. In float32, q+a cancels
// to zero next to the neck at c = -0.75 and slowly escaping points there
// would be taken for members.
func interior(re, im lanes.F32x8) lanes.U32x8 {
	var in lanes.U32x8
	for l := range lanes.Width {
		x, y := float64(re[l]), float64(im[l])
		y2 := y * y
		a := x - 0.25
		q := a*a + y2
		b := x + 1
		if q*(q+a) <= 0.25*y2 || b*b+y2 <= 0.0625 {
			in[l] = lanes.True
		}
	}
	return in
}
