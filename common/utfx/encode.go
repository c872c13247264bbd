package utfx

import (
	"math/big"
	"slices"
)

// Encode returns the canonical encoding of value.
func Encode[T Unit](value uint64) []T {
	return Append[T](nil, value)
}

// Append appends the canonical encoding of value to dst.
func Append[T Unit](dst []T, value uint64) []T {
	width := Width[T]()
	n := MinUnits(value, width)
	if n == 1 {
		return append(dst, T(value))
	}
	dst, seq := grow(dst, n)
	ext := writeHeader(seq, width)
	for i := n - 1; i > ext; i-- {
		seq[i] |= T(value) & payloadMask[T]()
		value >>= uint(width - 2)
	}
	seq[ext] |= T(value)
	return dst
}

func EncodeBig[T Unit](value *big.Int) []T {
	return AppendBig[T](nil, value)
}

// AppendBig appends the canonical encoding of value to dst. It panics if
// value is negative.
func AppendBig[T Unit](dst []T, value *big.Int) []T {
	if value.IsUint64() {
		return Append(dst, value.Uint64())
	}
	width := Width[T]()
	n := MinUnitsBig(value, width)
	dst, seq := grow(dst, n)
	ext := writeHeader(seq, width)
	rest := new(big.Int).Set(value)
	mask := new(big.Int).SetUint64(uint64(payloadMask[T]()))
	var chunk big.Int
	for i := n - 1; i > ext; i-- {
		seq[i] |= T(chunk.And(rest, mask).Uint64())
		rest.Rsh(rest, uint(width-2))
	}
	seq[ext] |= T(rest.Uint64())
	return dst
}

func grow[T Unit](dst []T, n int) ([]T, []T) {
	l := len(dst)
	dst = slices.Grow(dst, n)[:l+n]
	return dst, dst[l:]
}

// writeHeader lays out the unary run and the continuation prefixes of a
// multi-unit sequence and returns the index of the last header unit.
func writeHeader[T Unit](seq []T, width int) int {
	top := topBit[T]()
	for i := range seq {
		seq[i] = top
	}
	ext, run := layout(len(seq), width)
	if ext == 0 {
		seq[0] = ^T(0) << uint(width-len(seq))
		return 0
	}
	seq[0] = ^T(0)
	for i := 1; i < ext; i++ {
		seq[i] = top | payloadMask[T]()
	}
	seq[ext] = top | payloadMask[T]()&^(payloadMask[T]()>>uint(run))
	return ext
}
