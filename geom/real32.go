//go:build wavegrid_real32

package geom

import "math"

// Real is the scalar every geometric quantity is expressed in. This build
// uses 32-bit IEEE 754 (wavegrid_real32 tag).
type Real = float32

// Eps is the machine epsilon of Real: the gap between 1 and the next
// representable value.
const Eps Real = 0x1p-23

// Inf is the positive infinity of Real.
var Inf = Real(math.Inf(1))

// Sqrt returns the square root of x.
func Sqrt(x Real) Real { return Real(math.Sqrt(float64(x))) }

// Abs returns the absolute value of x.
func Abs(x Real) Real { return Real(math.Abs(float64(x))) }

// Floor returns the greatest integer value ≤ x.
func Floor(x Real) Real { return Real(math.Floor(float64(x))) }

// bits exposes the IEEE bit pattern of x for hashing. Widened to uint64 so
// both Real widths hash through the same loop.
func bits(x Real) uint64 { return uint64(math.Float32bits(x)) }
