package utfx

import "math/big"

type nativeValue uint64

func (v *nativeValue) push(payload uint64, width uint) {
	*v = *v<<width | nativeValue(payload)
}

type bigValue struct {
	v       *big.Int
	scratch big.Int
}

func newBigValue() *bigValue {
	return &bigValue{v: new(big.Int)}
}

func (b *bigValue) push(payload uint64, width uint) {
	b.v.Lsh(b.v, width)
	b.v.Or(b.v, b.scratch.SetUint64(payload))
}

// Decode reads the sequence at the start of p. n is the number of units
// consumed, or 0 if the sequence is invalid or truncated.
//
// Only the low 64 bits of wider values are kept, use DecodeBig for those.
func Decode[T Unit](p []T) (value uint64, n int) {
	var acc nativeValue
	w := newWalker(p, &acc)
	w.run()
	if w.state != stateDone {
		return 0, 0
	}
	return uint64(acc), w.n
}

// DecodeBig is like Decode but keeps every payload bit.
func DecodeBig[T Unit](p []T) (value *big.Int, n int) {
	acc := newBigValue()
	w := newWalker(p, acc)
	w.run()
	if w.state != stateDone {
		return nil, 0
	}
	return acc.v, w.n
}
