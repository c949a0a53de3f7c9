package galgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNilAlgebra is returned when no algebra is supplied.
	ErrNilAlgebra = errors.New("galgo: nil algebra")

	// ErrNilFunc is returned when no expression function is supplied.
	ErrNilFunc = errors.New("galgo: nil expression function")

	// ErrAlgebraMismatch is returned when operands of different algebras are
	// combined in one expression.
	ErrAlgebraMismatch = errors.New("galgo: algebra mismatch")

	// ErrBladeOutOfRange is returned for a blade outside the algebra's
	// 2^Dim blade set.
	ErrBladeOutOfRange = errors.New("galgo: blade out of range")

	// ErrDuplicateBlade is returned when an entity's declared blade list
	// repeats a blade.
	ErrDuplicateBlade = errors.New("galgo: duplicate blade")

	// ErrLengthMismatch is returned when a blade list and its value storage
	// disagree in length.
	ErrLengthMismatch = errors.New("galgo: blade/value length mismatch")
)

// ErrBindingOutOfRange indicates an entity whose binding emitted
// indeterminate ids outside its reserved contiguous range. This is a bug in
// the entity's Bind implementation, not a data condition.
type ErrBindingOutOfRange struct {
	Entity int
	Base   uint32
	Count  int
}

func (e *ErrBindingOutOfRange) Error() string {
	return fmt.Sprintf("galgo: entity %d binding escapes id range [%d,%d)",
		e.Entity, e.Base, e.Base+uint32(e.Count))
}

// ErrOverlappingRange indicates two entities whose binding id ranges
// intersect. Overlap silently aliases storage, so it is rejected at compile
// time as a usage error, distinct from any numeric-degeneracy result.
type ErrOverlappingRange struct {
	Entity int
}

func (e *ErrOverlappingRange) Error() string {
	return fmt.Sprintf("galgo: entity %d binding ids overlap a previous entity", e.Entity)
}

// ErrShapeMismatch indicates an Eval argument whose storage shape differs
// from the prototype the program was compiled against.
type ErrShapeMismatch struct {
	Entity int
	Want   int
	Got    int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("galgo: entity %d has %d values, compiled for %d", e.Entity, e.Got, e.Want)
}
