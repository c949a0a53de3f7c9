package galgo

import (
	"fmt"

	"github.com/hupe1980/galgo/algebra"
	"github.com/hupe1980/galgo/symbolic"
)

// Expr is one operand of a symbolic expression: an algebra plus a canonical
// multivector. Exprs are immutable; every combinator returns a new value.
// Structural misuse (combining algebras) poisons the Expr and is surfaced
// as an error by Compile, so expression functions stay free of error
// plumbing.
type Expr struct {
	alg *algebra.Algebra
	mv  symbolic.Multivector
	err error
}

// Basis returns the constant expression for a single basis blade with
// coefficient one.
func Basis(alg *algebra.Algebra, b algebra.Blade) Expr {
	return constant(alg, b, symbolic.RatOne)
}

// PS returns the algebra's pseudoscalar as a constant expression.
func PS(alg *algebra.Algebra) Expr {
	if alg == nil {
		return Expr{err: ErrNilAlgebra}
	}
	return constant(alg, alg.Pseudoscalar(), symbolic.RatOne)
}

// IPS returns the pseudoscalar inverse as a constant expression.
func IPS(alg *algebra.Algebra) Expr {
	if alg == nil {
		return Expr{err: ErrNilAlgebra}
	}
	c := symbolic.RatOne
	if alg.PseudoscalarInverseSign() < 0 {
		c = symbolic.RatMinusOne
	}
	return constant(alg, alg.Pseudoscalar(), c)
}

func constant(alg *algebra.Algebra, b algebra.Blade, c symbolic.Rat) Expr {
	if alg == nil {
		return Expr{err: ErrNilAlgebra}
	}
	if int(b) >= alg.BladeCount() {
		return Expr{err: fmt.Errorf("%w: %d of %d", ErrBladeOutOfRange, b, alg.BladeCount())}
	}
	mv := symbolic.Must(nil,
		[]symbolic.Mon{{Coeff: c, Width: 0, Start: 0}},
		[]symbolic.Term{{Count: 1, Mon: 0, Blade: b}},
	)
	return Expr{alg: alg, mv: mv}
}

// Err returns the first structural error recorded while building the
// expression, if any.
func (x Expr) Err() error { return x.err }

// Multivector returns the expression's symbolic form.
func (x Expr) Multivector() symbolic.Multivector { return x.mv }

func (x Expr) combine(o Expr, f func(a, b symbolic.Multivector) symbolic.Multivector) Expr {
	if x.err != nil {
		return x
	}
	if o.err != nil {
		return o
	}
	if x.alg != o.alg {
		return Expr{err: ErrAlgebraMismatch}
	}
	return Expr{alg: x.alg, mv: f(x.mv, o.mv)}
}

// Add returns x+o.
func (x Expr) Add(o Expr) Expr {
	return x.combine(o, symbolic.Add)
}

// Sub returns x-o.
func (x Expr) Sub(o Expr) Expr {
	return x.combine(o, symbolic.Sub)
}

// Mul returns the geometric product x*o.
func (x Expr) Mul(o Expr) Expr {
	return x.combine(o, func(a, b symbolic.Multivector) symbolic.Multivector {
		return symbolic.Mul(x.alg, a, b)
	})
}

// Scale returns x scaled by the rational n/d.
func (x Expr) Scale(n, d int64) Expr {
	if x.err != nil {
		return x
	}
	if d == 0 {
		return Expr{err: fmt.Errorf("galgo: zero scale denominator")}
	}
	return Expr{alg: x.alg, mv: symbolic.Scale(x.mv, symbolic.NewRat(n, d))}
}

// Rev returns the reversion of x (grades 2 and 3 mod 4 change sign).
func (x Expr) Rev() Expr {
	if x.err != nil {
		return x
	}
	return Expr{alg: x.alg, mv: symbolic.Rev(x.alg, x.mv)}
}
