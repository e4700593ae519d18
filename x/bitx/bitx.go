// Package bitx provides pure bit-field get/set/check helpers shared by every
// register protocol in the module. All functions are side-effect free.
package bitx

import "golang.org/x/exp/constraints"

// Bit reports whether the bit at index is set in v.
func Bit[T constraints.Unsigned](v T, index uint8) bool {
	return Bits(v, 1, index) != 0
}

// Bits masks v with mask shifted into position at index, without shifting the
// result back down.
func Bits[T constraints.Unsigned](v, mask T, index uint8) T {
	return (mask << index) & v
}

// Extract masks v with mask at index and shifts the field down to the LSB.
func Extract[T constraints.Unsigned](v, mask T, index uint8) T {
	return Bits(v, mask, index) >> index
}

// Set returns v with the bit at index set or cleared.
func Set[T constraints.Unsigned](v T, index uint8, on bool) T {
	return SetN(v, 1, index, on)
}

// SetN returns v with the mask-wide field at index set or cleared.
func SetN[T constraints.Unsigned](v, mask T, index uint8, on bool) T {
	if on {
		return (mask << index) | v
	}
	return ^(mask << index) & v
}
