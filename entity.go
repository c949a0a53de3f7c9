package galgo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/galgo/algebra"
	"github.com/hupe1980/galgo/symbolic"
)

// Entity is the contract every domain value satisfies: declare the blades
// it stores nonzero values for, expose the concrete numeric storage backing
// them, and produce the symbolic binding of that storage.
//
// Entities are caller-owned value types; the engine only reads their
// storage at evaluation time. The number of values is the entity's
// indeterminate count and may differ from the blade count when the natural
// parametrization is not a direct blade-to-value map (e.g. a rotor stores
// half-angle cosine/sine plus an axis).
type Entity interface {
	// Blades returns the fixed, ordered, duplicate-free list of blades the
	// entity's multivector form occupies.
	Blades() []algebra.Blade

	// Values returns the numeric storage read at evaluation time.
	Values() []float64

	// Bind returns the entity's indeterminate expression with ids
	// base, base+1, ..., base+len(Values())-1 in storage order.
	Bind(base uint32) symbolic.Multivector
}

// Element is the generic entity: an explicit blade list with one value per
// blade. Every evaluation result is an Element, and specialized entities
// convert to and from it.
type Element struct {
	alg    *algebra.Algebra
	blades []algebra.Blade
	values []float64
}

// NewElement constructs a generic entity over the given blade list. The
// blades must be in range for the algebra and duplicate-free, with one
// value per blade.
func NewElement(alg *algebra.Algebra, blades []algebra.Blade, values []float64) (*Element, error) {
	if alg == nil {
		return nil, ErrNilAlgebra
	}
	if len(blades) != len(values) {
		return nil, fmt.Errorf("%w: %d blades, %d values", ErrLengthMismatch, len(blades), len(values))
	}
	var seen [1 << algebra.MaxDim]bool
	for _, b := range blades {
		if int(b) >= alg.BladeCount() {
			return nil, fmt.Errorf("%w: %d of %d", ErrBladeOutOfRange, b, alg.BladeCount())
		}
		if seen[b] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateBlade, b)
		}
		seen[b] = true
	}
	return &Element{
		alg:    alg,
		blades: append([]algebra.Blade(nil), blades...),
		values: append([]float64(nil), values...),
	}, nil
}

// NewScalar returns the grade-0 entity holding v.
func NewScalar(alg *algebra.Algebra, v float64) *Element {
	el, err := NewElement(alg, []algebra.Blade{0}, []float64{v})
	if err != nil {
		panic(err) // blade 0 exists in every algebra
	}
	return el
}

// Algebra returns the algebra the element belongs to.
func (e *Element) Algebra() *algebra.Algebra { return e.alg }

// Blades implements Entity.
func (e *Element) Blades() []algebra.Blade { return e.blades }

// Values implements Entity.
func (e *Element) Values() []float64 { return e.values }

// Bind implements Entity: one width-1 monomial per blade in storage order.
func (e *Element) Bind(base uint32) symbolic.Multivector {
	return symbolic.Direct(base, e.blades)
}

// Value returns the stored value at blade b, or zero if absent.
func (e *Element) Value(b algebra.Blade) float64 {
	for i, eb := range e.blades {
		if eb == b {
			return e.values[i]
		}
	}
	return 0
}

// Select returns the values at the requested blades, zero for absent ones.
func (e *Element) Select(blades ...algebra.Blade) []float64 {
	out := make([]float64, len(blades))
	for i, b := range blades {
		out[i] = e.Value(b)
	}
	return out
}

// String renders the element's nonzero storage in blade order.
func (e *Element) String() string {
	idx := make([]int, len(e.blades))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return e.blades[idx[i]] < e.blades[idx[j]] })
	var parts []string
	for _, i := range idx {
		if e.blades[i] == 0 {
			parts = append(parts, fmt.Sprintf("%g", e.values[i]))
			continue
		}
		parts = append(parts, fmt.Sprintf("%g %s", e.values[i], symbolic.BladeName(e.blades[i])))
	}
	return "Element(" + strings.Join(parts, ", ") + ")"
}
