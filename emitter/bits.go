package emitter

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// SignReduce32 keeps the low width bits of v and sign extends them.
func SignReduce32(v int32, width int) int32 {
	shift := 32 - width
	return (v << shift) >> shift
}

// SignReduce64 keeps the low width bits of v and sign extends them.
func SignReduce64(v int64, width int) int64 {
	shift := 64 - width
	return (v << shift) >> shift
}

// FitsSigned reports whether v is representable as a width-bit two's complement value.
func FitsSigned(v int64, width int) bool {
	return SignReduce64(v, width) == v
}

// FitsUnsigned reports whether v is representable in width bits.
func FitsUnsigned(v uint64, width int) bool {
	if width >= 64 {
		return true
	}
	return v>>width == 0
}

// Bit returns bit pos of v.
func Bit(v int64, pos int) uint32 {
	return uint32(v>>pos) & 1
}

// Bits returns size bits of v starting at start.
func Bits(v int64, start, size int) uint32 {
	return uint32(uint64(v)>>start) & (1<<size - 1)
}

// ImmFromValue returns the 64-bit pattern a register must hold for v.
// Integers convert by value (signed sign extends, unsigned zero extends);
// floats contribute their IEEE bits.
func ImmFromValue[T constraints.Integer | constraints.Float](v T) int64 {
	var zero T
	if T(1)/T(2) != 0 {
		if unsafe.Sizeof(zero) == 4 {
			return int64(math.Float32bits(float32(v)))
		}
		return int64(math.Float64bits(float64(v)))
	}
	return int64(v)
}
