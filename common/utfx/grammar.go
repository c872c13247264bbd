package utfx

import "math/bits"

type walkState uint8

const (
	stateHeader walkState = iota
	stateContinuation
	stateDone
	stateInvalid
)

// accumulator receives payload bits most significant first.
type accumulator interface {
	push(payload uint64, width uint)
}

// walker is the single implementation of the sequence grammar. Len and
// the decoders only differ in how far they drive it and whether an
// accumulator is attached.
type walker[T Unit] struct {
	units     []T
	value     accumulator
	state     walkState
	reason    Kind
	offset    int
	pos       int
	mask      T
	n         int
	remaining int
}

func newWalker[T Unit](units []T, value accumulator) walker[T] {
	w := walker[T]{units: units, value: value}
	if len(units) == 0 {
		w.fail(0, KindTruncated)
		return w
	}
	top := topBit[T]()
	lead := units[0]
	switch {
	case lead&top == 0:
		w.n = 1
		w.emit(uint64(lead), uint(Width[T]()-1))
		w.state = stateDone
	case lead&(top>>1) == 0:
		w.fail(0, KindInvalidLead)
	default:
		w.n = 1
		w.mask = top >> 1
		w.state = stateHeader
	}
	return w
}

func (w *walker[T]) fail(offset int, reason Kind) {
	w.state = stateInvalid
	w.reason = reason
	w.offset = offset
}

func (w *walker[T]) emit(payload uint64, width uint) {
	if w.value != nil {
		w.value.push(payload, width)
	}
}

// headerBit consumes one bit of the unary run.
func (w *walker[T]) headerBit() {
	v := w.units[w.pos]
	if v&w.mask == 0 {
		w.emit(uint64(v&(w.mask-1)), uint(bits.TrailingZeros64(uint64(w.mask))))
		w.remaining = w.n - w.pos - 1
		if w.remaining == 0 {
			w.state = stateDone
		} else {
			w.state = stateContinuation
		}
		return
	}
	w.n++
	if w.mask != 1 {
		w.mask >>= 1
		return
	}
	// the run filled this unit, it continues after the 10 prefix of the next
	w.pos++
	if w.pos == len(w.units) {
		w.fail(w.pos, KindTruncated)
		return
	}
	if !isContinuation(w.units[w.pos]) {
		w.fail(w.pos, KindMalformed)
		return
	}
	w.n++
	w.mask = topBit[T]() >> 2
}

func (w *walker[T]) continuation() {
	w.pos++
	if w.pos == len(w.units) {
		w.fail(w.pos, KindTruncated)
		return
	}
	v := w.units[w.pos]
	if !isContinuation(v) {
		w.fail(w.pos, KindMalformed)
		return
	}
	w.emit(uint64(v&payloadMask[T]()), uint(Width[T]()-2))
	w.remaining--
	if w.remaining == 0 {
		w.state = stateDone
	}
}

// header stops as soon as the unit count is known.
func (w *walker[T]) header() {
	for w.state == stateHeader {
		w.headerBit()
	}
}

func (w *walker[T]) run() {
	for {
		switch w.state {
		case stateHeader:
			w.headerBit()
		case stateContinuation:
			w.continuation()
		default:
			return
		}
	}
}
