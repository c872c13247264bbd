package utfx

import (
	"strconv"

	E "github.com/sagernet/sing-utfx/common/exceptions"
)

type Kind uint8

const (
	KindTruncated Kind = iota + 1
	KindMalformed
	KindInvalidLead
	KindOverlong
)

var (
	ErrTruncated   = E.New("truncated sequence")
	ErrMalformed   = E.New("malformed continuation unit")
	ErrInvalidLead = E.New("sequence starts with a continuation unit")
	ErrOverlong    = E.New("overlong sequence")
)

func (k Kind) String() string {
	switch k {
	case KindTruncated:
		return "truncated"
	case KindMalformed:
		return "malformed"
	case KindInvalidLead:
		return "invalid lead"
	case KindOverlong:
		return "overlong"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error describes why a sequence was rejected. Offset is the index of the
// offending unit relative to the start of the sequence, or the input
// length when more units were expected.
type Error struct {
	Kind   Kind
	Offset int
}

func (e *Error) Error() string {
	return "utfx: " + e.Unwrap().Error() + " at unit " + strconv.Itoa(e.Offset)
}

func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindTruncated:
		return ErrTruncated
	case KindMalformed:
		return ErrMalformed
	case KindInvalidLead:
		return ErrInvalidLead
	case KindOverlong:
		return ErrOverlong
	default:
		return E.New("unknown error ", e.Kind)
	}
}

// Check validates the sequence at the start of p, including that it is the
// canonical encoding of its value.
func Check[T Unit](p []T) error {
	acc := newBigValue()
	w := newWalker(p, acc)
	w.run()
	if w.state != stateDone {
		return &Error{Kind: w.reason, Offset: w.offset}
	}
	if w.n != minUnits(acc.v.BitLen(), Width[T]()) {
		return &Error{Kind: KindOverlong}
	}
	return nil
}
