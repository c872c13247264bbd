package utfx

import (
	"math/big"
	"math/bits"
)

// MinUnits returns the length of the canonical encoding of value with
// code units of the given bit width.
func MinUnits(value uint64, width int) int {
	return minUnits(bits.Len64(value), width)
}

func MinUnitsBig(value *big.Int, width int) int {
	if value.Sign() < 0 {
		panic("utfx: negative value")
	}
	return minUnits(value.BitLen(), width)
}

func minUnits(bitLen int, width int) int {
	if width < 3 {
		panic("utfx: code unit width must be at least 3 bits")
	}
	if bitLen < width {
		return 1
	}
	// no unit carries more than width-2 payload bits
	n := bitLen / (width - 2)
	if n < 2 {
		n = 2
	}
	for forbidden(n, width) || capacity(n, width) < bitLen {
		n++
	}
	return n
}

// layout describes the header of an n unit sequence: ext is the number of
// extension units after the first header unit and run the number of run
// bits set in the last extension unit after its 10 prefix.
func layout(n int, width int) (ext int, run int) {
	ext = (n - 2) / (width - 1)
	run = n - 2 - ext*(width-1)
	return
}

// forbidden reports lengths the header cannot express. The run would end
// exactly on the last bit of a header unit, which the grammar reads as a
// spill into an extension unit. For width 8 these are 8, 15, 22, 29, ...
func forbidden(n int, width int) bool {
	return n > 1 && (n-1)%(width-1) == 0
}

// capacity is the number of payload bits in an n unit sequence, n >= 2.
func capacity(n int, width int) int {
	ext, run := layout(n, width)
	headerBits := ext*width + run + 3
	return n*width - headerBits - 2*(n-1-ext)
}
