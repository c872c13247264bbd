// Package utfx implements a UTF-8 style self-describing variable length
// encoding of unsigned integers over code units of any width.
//
// A value below 2^(W-1) occupies a single unit with the top bit clear.
// Larger values start with a header unit whose leading run of 1 bits
// counts the total number of units, followed by continuation units
// prefixed with the bits 10. A run that fills a whole header unit spills
// into extension units, which share the 10 prefix and continue the run.
package utfx

import "math/bits"

type Unit interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the bit width of the code unit type T.
func Width[T Unit]() int {
	return bits.Len64(uint64(^T(0)))
}

func topBit[T Unit]() T {
	return ^T(0) ^ (^T(0) >> 1)
}

// payloadMask covers the W-2 payload bits of a continuation unit.
func payloadMask[T Unit]() T {
	return ^T(0) >> 2
}

func isContinuation[T Unit](v T) bool {
	top := topBit[T]()
	return v&(top|top>>1) == top
}
