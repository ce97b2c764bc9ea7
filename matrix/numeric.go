// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"unsafe"
)

// Machine epsilon per storage width: the gap between 1 and the next
// representable value.
const (
	epsilon32 = 0x1p-23 // float32: 1.1920929e-07
	epsilon64 = 0x1p-52 // float64: 2.220446049250313e-16
)

// Epsilon returns the machine epsilon of T.
// The width is read from the storage size so that named types (type Energy
// float64) resolve the same as their underlying type.
// Complexity: O(1).
func Epsilon[T Float]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(epsilon32)
	}

	return T(epsilon64)
}

// Abs returns |v| for any Float.
func Abs[T Float](v T) T {
	return T(math.Abs(float64(v)))
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
