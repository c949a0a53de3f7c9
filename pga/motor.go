package pga

import (
	"math"

	"github.com/hupe1980/galgo"
	"github.com/hupe1980/galgo/algebra"
	"github.com/hupe1980/galgo/symbolic"
)

var (
	rotorBlades      = []algebra.Blade{0, E12, E13, E23}
	translatorBlades = []algebra.Blade{0, E01, E02, E03}
	motorBlades      = []algebra.Blade{0, E01, E02, E12, E03, E13, E23, E0123}
)

var ratMinusHalf = symbolic.NewRat(-1, 2)

// Rotor is a rotation about an axis through the origin, stored as the
// half-angle cosine and sine plus the axis. Its multivector form is
//
//	cos - sin*(z e12 - y e13 + x e23)
//
// which rotates counterclockwise about (x, y, z) under Apply for a unit
// axis.
type Rotor struct {
	Cos, Sin float64
	X, Y, Z  float64
}

// NewRotor returns the rotor for angle theta (radians) about the axis
// (x, y, z). The axis is taken as given; call Normalize if it is not unit
// length.
func NewRotor(theta, x, y, z float64) *Rotor {
	return &Rotor{Cos: math.Cos(theta / 2), Sin: math.Sin(theta / 2), X: x, Y: y, Z: z}
}

// Normalize scales the axis to unit length in place. A zero axis yields
// NaN components.
func (r *Rotor) Normalize() {
	s := 1 / math.Sqrt(r.X*r.X+r.Y*r.Y+r.Z*r.Z)
	r.X *= s
	r.Y *= s
	r.Z *= s
}

// Blades implements galgo.Entity.
func (r *Rotor) Blades() []algebra.Blade { return rotorBlades }

// Values implements galgo.Entity: five values back four blades, the sine
// multiplying each axis component.
func (r *Rotor) Values() []float64 {
	return []float64{r.Cos, r.Sin, r.X, r.Y, r.Z}
}

// Bind implements galgo.Entity.
func (r *Rotor) Bind(base uint32) symbolic.Multivector {
	return symbolic.Must(
		[]symbolic.Ind{
			{Source: base, Mult: symbolic.RatOne},
			{Source: base + 1, Mult: symbolic.RatOne},
			{Source: base + 4, Mult: symbolic.RatOne},
			{Source: base + 1, Mult: symbolic.RatOne},
			{Source: base + 3, Mult: symbolic.RatOne},
			{Source: base + 1, Mult: symbolic.RatOne},
			{Source: base + 2, Mult: symbolic.RatOne},
		},
		[]symbolic.Mon{
			{Coeff: symbolic.RatOne, Width: 1, Start: 0},
			{Coeff: symbolic.RatMinusOne, Width: 2, Start: 1},
			{Coeff: symbolic.RatOne, Width: 2, Start: 3},
			{Coeff: symbolic.RatMinusOne, Width: 2, Start: 5},
		},
		[]symbolic.Term{
			{Count: 1, Mon: 0, Blade: 0},
			{Count: 1, Mon: 1, Blade: E12},
			{Count: 1, Mon: 2, Blade: E13},
			{Count: 1, Mon: 3, Blade: E23},
		},
	)
}

// Element returns the rotor's generic multivector form.
func (r *Rotor) Element() *galgo.Element {
	return mustElement(rotorBlades, []float64{r.Cos, -r.Sin * r.Z, r.Sin * r.Y, -r.Sin * r.X})
}

// Translator is a translation by distance d along the direction (x, y, z),
// stored as 1 - (d/2)(x e01 + y e02 + z e03). The direction is taken as
// given; call Normalize if it is not unit length.
type Translator struct {
	D       float64
	X, Y, Z float64
}

// NewTranslator returns the translator for distance d along (x, y, z).
func NewTranslator(d, x, y, z float64) *Translator {
	return &Translator{D: d, X: x, Y: y, Z: z}
}

// Normalize scales the direction to unit length in place. A zero direction
// yields NaN components.
func (t *Translator) Normalize() {
	s := 1 / math.Sqrt(t.X*t.X+t.Y*t.Y+t.Z*t.Z)
	t.X *= s
	t.Y *= s
	t.Z *= s
}

// Blades implements galgo.Entity.
func (t *Translator) Blades() []algebra.Blade { return translatorBlades }

// Values implements galgo.Entity.
func (t *Translator) Values() []float64 {
	return []float64{t.D, t.X, t.Y, t.Z}
}

// Bind implements galgo.Entity: the scalar part is the constant one, the
// ideal bivectors carry -d/2 times the direction.
func (t *Translator) Bind(base uint32) symbolic.Multivector {
	return symbolic.Must(
		[]symbolic.Ind{
			{Source: base, Mult: symbolic.RatOne},
			{Source: base + 1, Mult: symbolic.RatOne},
			{Source: base, Mult: symbolic.RatOne},
			{Source: base + 2, Mult: symbolic.RatOne},
			{Source: base, Mult: symbolic.RatOne},
			{Source: base + 3, Mult: symbolic.RatOne},
		},
		[]symbolic.Mon{
			{Coeff: symbolic.RatOne, Width: 0, Start: 0},
			{Coeff: ratMinusHalf, Width: 2, Start: 0},
			{Coeff: ratMinusHalf, Width: 2, Start: 2},
			{Coeff: ratMinusHalf, Width: 2, Start: 4},
		},
		[]symbolic.Term{
			{Count: 1, Mon: 0, Blade: 0},
			{Count: 1, Mon: 1, Blade: E01},
			{Count: 1, Mon: 2, Blade: E02},
			{Count: 1, Mon: 3, Blade: E03},
		},
	)
}

// Element returns the translator's generic multivector form.
func (t *Translator) Element() *galgo.Element {
	h := t.D / 2
	return mustElement(translatorBlades, []float64{1, -h * t.X, -h * t.Y, -h * t.Z})
}

// Motor is a general rigid motion over the eight even blades, the closure
// of rotors and translators under the geometric product. Storage follows
// motorBlades order: e, e01, e02, e12, e03, e13, e23, e0123.
type Motor struct {
	values [8]float64
}

// NewMotor constructs a motor from its eight blade values in storage order.
func NewMotor(values [8]float64) *Motor {
	return &Motor{values: values}
}

// MotorFromElement reads the even-grade part of el.
func MotorFromElement(el *galgo.Element) *Motor {
	var m Motor
	copy(m.values[:], el.Select(motorBlades...))
	return &m
}

// Blades implements galgo.Entity.
func (m *Motor) Blades() []algebra.Blade { return motorBlades }

// Values implements galgo.Entity.
func (m *Motor) Values() []float64 { return m.values[:] }

// Bind implements galgo.Entity.
func (m *Motor) Bind(base uint32) symbolic.Multivector {
	return symbolic.Direct(base, motorBlades)
}

// Element returns the motor's generic multivector form.
func (m *Motor) Element() *galgo.Element {
	return mustElement(motorBlades, m.values[:])
}

// Value returns the stored value at blade b, or zero if b is not an even
// blade.
func (m *Motor) Value(b algebra.Blade) float64 {
	for i, mb := range motorBlades {
		if mb == b {
			return m.values[i]
		}
	}
	return 0
}

// Apply transforms x by the versor m using the sandwich product
// m x rev(m), returning the generic result. Convert it back with the
// matching FromElement constructor.
func Apply(m, x galgo.Entity, optFns ...galgo.Option) (*galgo.Element, error) {
	return galgo.ComputeWith(Alg, func(args []galgo.Expr) galgo.Expr {
		return args[0].Mul(args[1]).Mul(args[0].Rev())
	}, []galgo.Entity{m, x}, optFns...)
}
