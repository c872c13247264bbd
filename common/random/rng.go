package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"math/big"

	"github.com/sagernet/sing-utfx/common"
	"lukechampine.com/blake3"
)

var System = rand.Reader

func Blake3KeyedHash() Source {
	key := make([]byte, 32)
	common.Must1(io.ReadFull(System, key))
	return newSource(key)
}

// Seeded returns a reproducible source, equal seeds yield equal streams.
func Seeded(seed string) Source {
	key := blake3.Sum256([]byte(seed))
	return newSource(key[:])
}

func newSource(key []byte) Source {
	h := blake3.New(64, key)
	return Source{h.XOF()}
}

const (
	rngMax  = 1 << 63
	rngMask = rngMax - 1
)

// Source is a math/rand Source64 reading from a blake3 output stream.
type Source struct {
	io.Reader
}

func (s Source) Int63() int64 {
	return int64(s.Uint64() & rngMask)
}

func (s Source) Uint64() uint64 {
	var b [8]byte
	common.Must1(io.ReadFull(s, b[:]))
	return binary.BigEndian.Uint64(b[:])
}

func (s Source) Seed(int64) {
}

// Bits returns a uniformly random value below 2^n.
func (s Source) Bits(n int) *big.Int {
	if n <= 0 {
		return new(big.Int)
	}
	b := make([]byte, (n+7)/8)
	common.Must1(io.ReadFull(s, b))
	value := new(big.Int).SetBytes(b)
	return value.Rsh(value, uint(len(b)*8-n))
}
