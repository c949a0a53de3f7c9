package symbolic

import (
	"errors"
	"fmt"

	"github.com/hupe1980/galgo/algebra"
)

// ErrInvalidShape is returned by New when the ind/mon/term arrays disagree.
var ErrInvalidShape = errors.New("symbolic: invalid multivector shape")

// Ind is an indeterminate: a reference to one external numeric slot,
// scaled by a rational multiplier.
type Ind struct {
	Source uint32
	Mult   Rat
}

// Mon is a monomial: the product of Width consecutive indeterminates
// starting at index Start, scaled by the signed rational Coeff. A zero
// width monomial is the constant Coeff.
type Mon struct {
	Coeff Rat
	Width int
	Start int
}

// Term is one monomial's contribution to one blade, repeated Count times.
type Term struct {
	Count int
	Mon   int
	Blade algebra.Blade
}

// Multivector is a symbolic algebra element: a sum over Terms of monomial
// contributions to target blades. Values are immutable once built; every
// combining operation returns a fresh canonical form.
type Multivector struct {
	Inds  []Ind
	Mons  []Mon
	Terms []Term
}

// New validates the shape invariants (monomial windows inside the
// indeterminate array, term monomial indices in range, positive counts)
// and returns the multivector. Blade range checks against a concrete
// algebra happen at expression construction time.
func New(inds []Ind, mons []Mon, terms []Term) (Multivector, error) {
	for i, m := range mons {
		if m.Width < 0 || m.Start < 0 || m.Start+m.Width > len(inds) {
			return Multivector{}, fmt.Errorf("%w: monomial %d window [%d,%d) outside %d indeterminates",
				ErrInvalidShape, i, m.Start, m.Start+m.Width, len(inds))
		}
	}
	for i, t := range terms {
		if t.Mon < 0 || t.Mon >= len(mons) {
			return Multivector{}, fmt.Errorf("%w: term %d references monomial %d of %d",
				ErrInvalidShape, i, t.Mon, len(mons))
		}
		if t.Count < 1 {
			return Multivector{}, fmt.Errorf("%w: term %d has count %d", ErrInvalidShape, i, t.Count)
		}
	}
	return Multivector{Inds: inds, Mons: mons, Terms: terms}, nil
}

// Must is New for statically-known shapes such as entity bindings; a shape
// error there is a programmer error, so it panics.
func Must(inds []Ind, mons []Mon, terms []Term) Multivector {
	mv, err := New(inds, mons, terms)
	if err != nil {
		panic(err)
	}
	return mv
}

// Direct returns the canonical binding of len(blades) storage slots: one
// width-1 monomial per blade, indeterminate ids base, base+1, ... in
// storage order, each with multiplier one.
func Direct(base uint32, blades []algebra.Blade) Multivector {
	n := len(blades)
	inds := make([]Ind, n)
	mons := make([]Mon, n)
	terms := make([]Term, n)
	for i, b := range blades {
		inds[i] = Ind{Source: base + uint32(i), Mult: RatOne}
		mons[i] = Mon{Coeff: RatOne, Width: 1, Start: i}
		terms[i] = Term{Count: 1, Mon: i, Blade: b}
	}
	return Multivector{Inds: inds, Mons: mons, Terms: terms}
}

// IsZero reports whether the multivector has no terms.
func (m Multivector) IsZero() bool { return len(m.Terms) == 0 }
