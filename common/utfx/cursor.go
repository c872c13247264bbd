package utfx

import (
	"math/big"

	E "github.com/sagernet/sing-utfx/common/exceptions"
)

// Cursor walks consecutive sequences of a unit buffer. It only advances
// over sequences that decode successfully, or one unit at a time on Skip.
type Cursor[T Unit] struct {
	units []T
	pos   int
}

func NewCursor[T Unit](units []T) *Cursor[T] {
	return &Cursor[T]{units: units}
}

func (c *Cursor[T]) Pos() int {
	return c.pos
}

func (c *Cursor[T]) Done() bool {
	return c.pos >= len(c.units)
}

func (c *Cursor[T]) Remaining() []T {
	return c.units[c.pos:]
}

func (c *Cursor[T]) Len(deep bool) int {
	return Len(c.Remaining(), deep)
}

func (c *Cursor[T]) Next() (uint64, int) {
	value, n := Decode(c.Remaining())
	c.pos += n
	return value, n
}

func (c *Cursor[T]) NextBig() (*big.Int, int) {
	value, n := DecodeBig(c.Remaining())
	c.pos += n
	return value, n
}

// Check reports why the sequence at the cursor is rejected, with the
// offset made absolute.
func (c *Cursor[T]) Check() error {
	err := Check(c.Remaining())
	if checkErr, isCheck := E.Cast[*Error](err); isCheck {
		checkErr.Offset += c.pos
	}
	return err
}

// Skip steps over a single unit, the usual way to resynchronize after an
// invalid sequence.
func (c *Cursor[T]) Skip() bool {
	if c.Done() {
		return false
	}
	c.pos++
	return true
}
