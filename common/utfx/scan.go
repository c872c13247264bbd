package utfx

// Len returns the number of units occupied by the sequence at the start of
// p, or 0 if it is invalid or truncated.
//
// Without deep only the header units are inspected, so a sequence whose
// continuation units are missing or damaged still reports its declared
// length. With deep every continuation unit is checked as well.
func Len[T Unit](p []T, deep bool) int {
	w := newWalker(p, nil)
	if deep {
		w.run()
	} else {
		w.header()
	}
	switch w.state {
	case stateContinuation, stateDone:
		return w.n
	}
	return 0
}
