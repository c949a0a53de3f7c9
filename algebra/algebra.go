package algebra

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxDim is the largest supported number of basis vectors. A Blade is a
// bitmask over the basis vectors, so 8 vectors (256 blades) is the ceiling.
const MaxDim = 8

// Blade identifies a basis blade as a bitmask over the basis vectors.
// Its grade is the number of set bits.
type Blade uint8

// ErrNegativeSignature is returned when a metric component is negative.
var ErrNegativeSignature = errors.New("algebra: negative signature component")

// ErrDimensionTooLarge indicates a metric with more basis vectors than a
// Blade bitmask can address.
type ErrDimensionTooLarge struct {
	Dim int
}

func (e *ErrDimensionTooLarge) Error() string {
	return fmt.Sprintf("algebra: dimension %d exceeds maximum %d", e.Dim, MaxDim)
}

// Algebra is the combinatorial structure derived from a Metric: grade and
// blade-product tables, pseudoscalar and its inverse. It is immutable after
// construction and safe for concurrent use.
type Algebra struct {
	metric Metric
	dim    int
	blades int
	grades []uint8
	mults  []int8 // blades x blades product multipliers
	ps     Blade
	ipsSig int8
}

// New derives an Algebra from the given metric.
func New(m Metric) (*Algebra, error) {
	if m.P < 0 || m.Q < 0 || m.R < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeSignature, m)
	}
	n := m.Dim()
	if n > MaxDim {
		return nil, &ErrDimensionTooLarge{Dim: n}
	}

	a := &Algebra{
		metric: m,
		dim:    n,
		blades: 1 << n,
		ps:     Blade(1<<n - 1),
	}

	a.grades = make([]uint8, a.blades)
	for b := range a.grades {
		a.grades[b] = uint8(bits.OnesCount8(uint8(b)))
	}

	a.mults = make([]int8, a.blades*a.blades)
	for x := 0; x < a.blades; x++ {
		for y := 0; y < a.blades; y++ {
			a.mults[x<<n|y] = m.productMultiplier(Blade(x), Blade(y))
		}
	}

	// The pseudoscalar inverse ignores degeneracy: with null generators the
	// strict inverse does not exist, so null squares count as +1 here. For
	// PGA(3,0,1) this yields ips = ps.
	a.ipsSig = reorderSign(a.ps, a.ps)
	if m.Q%2 == 1 {
		a.ipsSig = -a.ipsSig
	}

	return a, nil
}

// productMultiplier combines the reordering parity with the metric squares
// of the shared basis vectors. Any shared null vector annihilates the pair.
func (m Metric) productMultiplier(x, y Blade) int8 {
	mult := reorderSign(x, y)
	for shared := uint8(x & y); shared != 0; shared &= shared - 1 {
		switch m.Square(bits.TrailingZeros8(shared)) {
		case 0:
			return 0
		case -1:
			mult = -mult
		}
	}
	return mult
}

// reorderSign is the parity of interleaving the basis vectors of x and y
// into canonical ascending order: -1 raised to the number of (i,j) pairs
// with i in x, j in y and i > j.
func reorderSign(x, y Blade) int8 {
	n := 0
	for a := uint8(x) >> 1; a != 0; a >>= 1 {
		n += bits.OnesCount8(a & uint8(y))
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}

// Metric returns the algebra's signature.
func (a *Algebra) Metric() Metric { return a.metric }

// Dim returns the number of basis vectors.
func (a *Algebra) Dim() int { return a.dim }

// BladeCount returns the number of distinct blades, 2^Dim.
func (a *Algebra) BladeCount() int { return a.blades }

// Grade returns the number of basis vectors spanning b.
func (a *Algebra) Grade(b Blade) int { return int(a.grades[b]) }

// Product returns the geometric product of two basis blades: the result
// blade (x XOR y) and a multiplier that folds the reordering parity with the
// metric squares of shared vectors. A zero multiplier means the pair is
// annihilated by a null generator and contributes nothing.
func (a *Algebra) Product(x, y Blade) (Blade, int8) {
	return x ^ y, a.mults[int(x)<<a.dim|int(y)]
}

// Pseudoscalar returns the highest-grade blade, with all bits set.
func (a *Algebra) Pseudoscalar() Blade { return a.ps }

// PseudoscalarInverseSign returns the sign s such that s*ps inverts the
// pseudoscalar (with null generator squares treated as +1; see package doc).
func (a *Algebra) PseudoscalarInverseSign() int8 { return a.ipsSig }

// ReverseSign returns the sign the reversion operator applies to a blade of
// the given grade: -1 for grades 2 and 3 mod 4.
func ReverseSign(grade int) int8 {
	if grade%4 > 1 {
		return -1
	}
	return 1
}
