package utfx

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testEncodeCases[T Unit](t *testing.T, cases []decodeCase[T]) {
	for _, testCase := range cases {
		// sequences carrying only zero payload are overlong
		if testCase.n == 0 || testCase.bits == 0 {
			continue
		}
		input := testCase.input()
		require.Equal(t, input, EncodeBig[T](ones(testCase.bits)), "%d bits", testCase.bits)
	}
}

func TestEncode8(t *testing.T) {
	t.Parallel()
	testEncodeCases(t, decodeCases8())
	require.Equal(t, []uint8{0}, Encode[uint8](0))
	require.Equal(t, []uint8{0x7F}, Encode[uint8](0x7F))
	require.Equal(t, []uint8{0b11000010, 0b10000000}, Encode[uint8](0x80))
	require.Equal(t, []uint8{0b11100000, 0b10100000, 0b10000000}, Encode[uint8](0x800))
}

func TestEncode16(t *testing.T) {
	t.Parallel()
	testEncodeCases(t, decodeCases16())
	require.Equal(t, []uint16{0x7FFF}, Encode[uint16](0x7FFF))
	require.Equal(t, []uint16{0b11000000_00000010, 0b10000000_00000000}, Encode[uint16](0x8000))
}

func TestAppend(t *testing.T) {
	t.Parallel()
	var stream []uint8
	values := []uint64{0, 1, 0x7F, 0x80, 0x7FF, 0x800, 1 << 40, 1<<64 - 1}
	for _, value := range values {
		stream = Append(stream, value)
	}
	stream = AppendBig(stream, ones(200))
	cursor := NewCursor(stream)
	for _, value := range values {
		decoded, n := cursor.Next()
		require.NotZero(t, n)
		require.Equal(t, value, decoded)
	}
	decoded, n := cursor.NextBig()
	require.NotZero(t, n)
	require.Zero(t, ones(200).Cmp(decoded))
	require.True(t, cursor.Done())
}

func TestAppendBigPanicsOnNegative(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() {
		EncodeBig[uint8](big.NewInt(-1))
	})
}

func testRoundTripSmall[T Unit](t *testing.T, limit int64) {
	value := new(big.Int)
	for i := int64(0); i < limit; i++ {
		require.NoError(t, RoundTrip[T](value.SetInt64(i)))
	}
}

func testRoundTripOnes[T Unit](t *testing.T, maxBits int) {
	for bitLen := 0; bitLen <= maxBits; bitLen++ {
		require.NoError(t, RoundTrip[T](ones(bitLen)))
		require.NoError(t, RoundTrip[T](new(big.Int).Lsh(big.NewInt(1), uint(bitLen))))
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	testRoundTripSmall[uint8](t, 1<<16)
	testRoundTripSmall[uint16](t, 1<<16)
	testRoundTripOnes[uint8](t, 512)
	testRoundTripOnes[uint16](t, 512)
	testRoundTripOnes[uint32](t, 1024)
	testRoundTripOnes[uint64](t, 2048)
}

func TestRoundTripRandom(t *testing.T) {
	t.Parallel()
	generator := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		value := new(big.Int).Rand(generator, ones(generator.Intn(400)+1))
		require.NoError(t, RoundTrip[uint8](value))
		require.NoError(t, RoundTrip[uint16](value))
		require.NoError(t, RoundTrip[uint32](value))
		require.NoError(t, RoundTrip[uint64](value))
	}
}

func TestPrefixIndependence(t *testing.T) {
	t.Parallel()
	generator := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		value := generator.Uint64() >> uint(generator.Intn(64))
		seq := Encode[uint16](value)
		n := len(seq)
		for j := 0; j < 4; j++ {
			seq = append(seq, uint16(generator.Uint32()))
		}
		decoded, decodedN := Decode(seq)
		require.Equal(t, n, decodedN)
		require.Equal(t, value, decoded)
		require.Equal(t, n, Len(seq, true))
	}
}
