package utfx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		input  []uint8
		kind   Kind
		offset int
		target error
	}{
		{nil, KindTruncated, 0, ErrTruncated},
		{[]uint8{0b10000000}, KindInvalidLead, 0, ErrInvalidLead},
		{[]uint8{0b10111111, 0b10000000}, KindInvalidLead, 0, ErrInvalidLead},
		{[]uint8{0b11100000, 0b10000000}, KindTruncated, 2, ErrTruncated},
		{[]uint8{0b11111111}, KindTruncated, 1, ErrTruncated},
		{[]uint8{0b11111111, 0b11000000}, KindMalformed, 1, ErrMalformed},
		{[]uint8{0b11100000, 0b10000000, 0b01000000}, KindMalformed, 2, ErrMalformed},
		{[]uint8{0b11000000, 0b10000000}, KindOverlong, 0, ErrOverlong},
		{[]uint8{0b11000001, 0b10111111}, KindOverlong, 0, ErrOverlong},
	} {
		err := Check(testCase.input)
		require.Error(t, err, "%08b", testCase.input)
		var checkErr *Error
		require.True(t, errors.As(err, &checkErr))
		require.Equal(t, testCase.kind, checkErr.Kind, "%08b", testCase.input)
		require.Equal(t, testCase.offset, checkErr.Offset, "%08b", testCase.input)
		require.ErrorIs(t, err, testCase.target)
	}
	require.NoError(t, Check([]uint8{0b01111111}))
	require.NoError(t, Check([]uint8{0b11000010, 0b10000000}))
	require.NoError(t, Check([]uint8{0b11000010, 0b10000000, 0b10000000}))
}

func TestKindString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "malformed", KindMalformed.String())
	require.Equal(t, "Kind(9)", Kind(9).String())
	require.Equal(t, "utfx: truncated sequence at unit 2", (&Error{Kind: KindTruncated, Offset: 2}).Error())
}
