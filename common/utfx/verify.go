package utfx

import (
	"math/big"
	"slices"

	E "github.com/sagernet/sing-utfx/common/exceptions"
)

// RoundTrip encodes value and checks the result against the decoders: it
// must decode back to value in MinUnits units, pass Len and Check, ignore
// a trailing unit, and become invalid once its last unit is dropped.
func RoundTrip[T Unit](value *big.Int) error {
	seq := EncodeBig[T](value)
	n := MinUnitsBig(value, Width[T]())
	if len(seq) != n {
		return E.New("encoded ", value, " into ", len(seq), " units, expected ", n)
	}
	decoded, decodedN := DecodeBig(seq)
	if decodedN != n || decoded.Cmp(value) != 0 {
		return E.New("decoded ", value, " as ", decoded, " in ", decodedN, " units")
	}
	if value.IsUint64() {
		native, nativeN := Decode(seq)
		if nativeN != n || native != value.Uint64() {
			return E.New("decoded ", value, " as uint64 ", native, " in ", nativeN, " units")
		}
	}
	if shallow, deep := Len(seq, false), Len(seq, true); shallow != n || deep != n {
		return E.New("length of ", value, " reported as ", shallow, "/", deep, ", expected ", n)
	}
	if err := Check(seq); err != nil {
		return E.Cause(err, "check ", value)
	}
	if _, extendedN := DecodeBig(append(slices.Clip(seq), 0)); extendedN != n {
		return E.New("trailing unit changed length of ", value, " to ", extendedN)
	}
	truncated := seq[:n-1]
	if _, truncatedN := DecodeBig(truncated); truncatedN != 0 || Len(truncated, true) != 0 {
		return E.New("truncated encoding of ", value, " still decodes")
	}
	return nil
}
