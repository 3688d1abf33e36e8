//go:build !wavegrid_real32

package geom

import "math"

// Real is the scalar every geometric quantity is expressed in. This build
// uses 64-bit IEEE 754; compile with -tags wavegrid_real32 for 32-bit.
type Real = float64

// Eps is the machine epsilon of Real: the gap between 1 and the next
// representable value.
const Eps Real = 0x1p-52

// Inf is the positive infinity of Real.
var Inf = math.Inf(1)

// Sqrt returns the square root of x.
func Sqrt(x Real) Real { return math.Sqrt(x) }

// Abs returns the absolute value of x.
func Abs(x Real) Real { return math.Abs(x) }

// Floor returns the greatest integer value ≤ x.
func Floor(x Real) Real { return math.Floor(x) }

// bits exposes the IEEE bit pattern of x for hashing. Widened to uint64 so
// both Real widths hash through the same loop.
func bits(x Real) uint64 { return math.Float64bits(x) }
