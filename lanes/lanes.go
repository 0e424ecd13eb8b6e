// Package lanes implements fixed-width vectors of eight 32-bit lanes.
//
// F32x8 holds single-precision floats and U32x8 holds unsigned integers.
// Comparisons return a U32x8 mask whose lanes are either all bits set or all
// bits clear, so masks combine with And, Or, Xor and AndNot and select values
// through SelectF and SelectU. The two views never alias: F32x8.Bits and
// U32x8.Float reinterpret the lane bits explicitly.
//
// Every float product is rounded to float32 before it is used again. Results
// are therefore the same on every architecture, whether or not the compiler
// fuses multiply-add sequences elsewhere.
package lanes

import "math"

// Width is the number of lanes in a vector.
const Width = 8

// True is the value of a set mask lane.
const True = ^uint32(0)

type F32x8 [Width]float32

type U32x8 [Width]uint32

// SplatF returns a vector with every lane set to v.
func SplatF(v float32) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = v
	}
	return r
}

// SplatU returns a vector with every lane set to v.
func SplatU(v uint32) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = v
	}
	return r
}

// Iota returns 0, 1, ..., Width-1.
func Iota() U32x8 {
	var r U32x8
	for i := range r {
		r[i] = uint32(i)
	}
	return r
}

func mask(b bool) uint32 {
	if b {
		return True
	}
	return 0
}

func (a F32x8) Add(b F32x8) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func (a F32x8) Sub(b F32x8) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

func (a F32x8) Mul(b F32x8) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = float32(a[i] * b[i])
	}
	return r
}

func (a F32x8) Div(b F32x8) F32x8 {
	var r F32x8
	for i := range r {
		r[i] = float32(a[i] / b[i])
	}
	return r
}

// Ordered comparisons. A lane holding NaN compares false, Ne included.

func (a F32x8) Eq(b F32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = mask(a[i] == b[i])
	}
	return r
}

func (a F32x8) Ne(b F32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = mask(a[i] < b[i] || a[i] > b[i])
	}
	return r
}

func (a F32x8) Lt(b F32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = mask(a[i] < b[i])
	}
	return r
}

func (a F32x8) Le(b F32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = mask(a[i] <= b[i])
	}
	return r
}

func (a F32x8) Gt(b F32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = mask(a[i] > b[i])
	}
	return r
}

func (a F32x8) Ge(b F32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = mask(a[i] >= b[i])
	}
	return r
}

// Bits reinterprets the float lanes as their IEEE 754 bit patterns.
func (a F32x8) Bits() U32x8 {
	var r U32x8
	for i := range r {
		r[i] = math.Float32bits(a[i])
	}
	return r
}

// Float reinterprets the lanes as IEEE 754 bit patterns. It is the inverse of F32x8.Bits.
func (a U32x8) Float() F32x8 {
	var r F32x8
	for i := range r {
		r[i] = math.Float32frombits(a[i])
	}
	return r
}

// Convert converts each lane numerically to float32.
func (a U32x8) Convert() F32x8 {
	var r F32x8
	for i := range r {
		r[i] = float32(a[i])
	}
	return r
}

// Integer arithmetic wraps around on overflow.

func (a U32x8) Add(b U32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func (a U32x8) Sub(b U32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

func (a U32x8) Mul(b U32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

func (a U32x8) And(b U32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return r
}

func (a U32x8) Or(b U32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return r
}

func (a U32x8) Xor(b U32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = a[i] ^ b[i]
	}
	return r
}

// AndNot returns a & ^b.
func (a U32x8) AndNot(b U32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = a[i] &^ b[i]
	}
	return r
}

func (a U32x8) Not() U32x8 {
	var r U32x8
	for i := range r {
		r[i] = ^a[i]
	}
	return r
}

// Unsigned comparisons.

func (a U32x8) Eq(b U32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = mask(a[i] == b[i])
	}
	return r
}

func (a U32x8) Lt(b U32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = mask(a[i] < b[i])
	}
	return r
}

func (a U32x8) Gt(b U32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = mask(a[i] > b[i])
	}
	return r
}

func (a U32x8) Ge(b U32x8) U32x8 {
	var r U32x8
	for i := range r {
		r[i] = mask(a[i] >= b[i])
	}
	return r
}

// All reports whether every lane of the mask is set.
func (a U32x8) All() bool {
	for _, v := range a {
		if v != True {
			return false
		}
	}
	return true
}

// Any reports whether at least one lane of the mask is set.
func (a U32x8) Any() bool {
	for _, v := range a {
		if v != 0 {
			return true
		}
	}
	return false
}

// SelectU returns a where mask is set and b elsewhere.
func SelectU(mask, a, b U32x8) U32x8 {
	return a.And(mask).Or(b.AndNot(mask))
}

// SelectF returns a where mask is set and b elsewhere. The selection works on
// the lane bits, so NaN payloads and signed zeros are preserved.
func SelectF(mask U32x8, a, b F32x8) F32x8 {
	return SelectU(mask, a.Bits(), b.Bits()).Float()
}
