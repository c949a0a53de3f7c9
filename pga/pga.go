package pga

import (
	"github.com/hupe1980/galgo"
	"github.com/hupe1980/galgo/algebra"
)

// Basis blades of PGA(3,0,1).
const (
	E0 algebra.Blade = 0b0001
	E1 algebra.Blade = 0b0010
	E2 algebra.Blade = 0b0100
	E3 algebra.Blade = 0b1000

	E01 = E0 | E1
	E02 = E0 | E2
	E12 = E1 | E2
	E03 = E0 | E3
	E13 = E1 | E3
	E23 = E2 | E3

	E012 = E0 | E1 | E2
	E013 = E0 | E1 | E3
	E023 = E0 | E2 | E3
	E123 = E1 | E2 | E3

	E0123 = E0 | E1 | E2 | E3
)

// Alg is the PGA(3,0,1) algebra, derived once at package init.
var Alg = func() *algebra.Algebra {
	a, err := algebra.New(algebra.Metric{P: 3, Q: 0, R: 1})
	if err != nil {
		panic(err)
	}
	return a
}()

// E returns the constant expression for a basis blade.
func E(b algebra.Blade) galgo.Expr { return galgo.Basis(Alg, b) }

// PS returns the pseudoscalar e0123 as a constant expression.
func PS() galgo.Expr { return galgo.PS(Alg) }

// IPS returns the pseudoscalar inverse; for PGA it equals the pseudoscalar.
func IPS() galgo.Expr { return galgo.IPS(Alg) }

// Scalar returns the grade-0 entity holding v.
func Scalar(v float64) *galgo.Element { return galgo.NewScalar(Alg, v) }

// Element constructs a generic PGA entity over an explicit blade list.
func Element(blades []algebra.Blade, values []float64) (*galgo.Element, error) {
	return galgo.NewElement(Alg, blades, values)
}

// mustElement is for blade lists known statically to be valid.
func mustElement(blades []algebra.Blade, values []float64) *galgo.Element {
	el, err := galgo.NewElement(Alg, blades, values)
	if err != nil {
		panic(err)
	}
	return el
}
