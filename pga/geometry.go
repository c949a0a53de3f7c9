package pga

import (
	"github.com/hupe1980/galgo"
	"github.com/hupe1980/galgo/algebra"
	"github.com/hupe1980/galgo/symbolic"
)

var (
	planeBlades  = []algebra.Blade{E0, E1, E2, E3}
	pointBlades  = []algebra.Blade{E012, E013, E023, E123}
	vectorBlades = []algebra.Blade{E012, E013, E023}
	lineBlades   = []algebra.Blade{E23, E13, E12, E01, E02, E03}
)

// Plane is the grade-1 entity d + x e1 + y e2 + z e3: the plane
// x*px + y*py + z*pz + d = 0 with normal (x, y, z).
type Plane struct {
	D, X, Y, Z float64
}

// NewPlane returns the plane with normal (x, y, z) and offset d.
func NewPlane(d, x, y, z float64) *Plane {
	return &Plane{D: d, X: x, Y: y, Z: z}
}

// PlaneFromElement reads the grade-1 part of el.
func PlaneFromElement(el *galgo.Element) *Plane {
	s := el.Select(E0, E1, E2, E3)
	return &Plane{D: s[0], X: s[1], Y: s[2], Z: s[3]}
}

// Blades implements galgo.Entity.
func (p *Plane) Blades() []algebra.Blade { return planeBlades }

// Values implements galgo.Entity.
func (p *Plane) Values() []float64 { return []float64{p.D, p.X, p.Y, p.Z} }

// Bind implements galgo.Entity.
func (p *Plane) Bind(base uint32) symbolic.Multivector {
	return symbolic.Direct(base, planeBlades)
}

// Element returns the plane's generic multivector form.
func (p *Plane) Element() *galgo.Element {
	return mustElement(planeBlades, p.Values())
}

// Point is the Euclidean point (x, y, z), stored in grade 3 as
//
//	-z e012 + y e013 - x e023 + e123
//
// so that a unit-weight point meets planes and transforms under motors with
// the orientation the other entities in this package assume.
type Point struct {
	X, Y, Z float64
}

// NewPoint returns the point at (x, y, z).
func NewPoint(x, y, z float64) *Point {
	return &Point{X: x, Y: y, Z: z}
}

// PointFromElement reads the grade-3 part of el, dividing out the e123
// weight. A zero weight (a point at infinity) yields infinite coordinates.
func PointFromElement(el *galgo.Element) *Point {
	s := el.Select(E012, E013, E023, E123)
	w := 1 / s[3]
	return &Point{X: -s[2] * w, Y: s[1] * w, Z: -s[0] * w}
}

// Blades implements galgo.Entity.
func (p *Point) Blades() []algebra.Blade { return pointBlades }

// Values implements galgo.Entity. A point stores three values for four
// blades; the e123 weight is the constant one.
func (p *Point) Values() []float64 { return []float64{p.X, p.Y, p.Z} }

// Bind implements galgo.Entity.
func (p *Point) Bind(base uint32) symbolic.Multivector {
	return symbolic.Must(
		[]symbolic.Ind{
			{Source: base + 2, Mult: symbolic.RatOne},
			{Source: base + 1, Mult: symbolic.RatOne},
			{Source: base, Mult: symbolic.RatOne},
		},
		[]symbolic.Mon{
			{Coeff: symbolic.RatMinusOne, Width: 1, Start: 0},
			{Coeff: symbolic.RatOne, Width: 1, Start: 1},
			{Coeff: symbolic.RatMinusOne, Width: 1, Start: 2},
			{Coeff: symbolic.RatOne, Width: 0, Start: 0},
		},
		[]symbolic.Term{
			{Count: 1, Mon: 0, Blade: E012},
			{Count: 1, Mon: 1, Blade: E013},
			{Count: 1, Mon: 2, Blade: E023},
			{Count: 1, Mon: 3, Blade: E123},
		},
	)
}

// Element returns the point's generic multivector form.
func (p *Point) Element() *galgo.Element {
	return mustElement(pointBlades, []float64{-p.Z, p.Y, -p.X, 1})
}

// Vector is the direction (x, y, z): a weightless point, invariant under
// translation. It shares the point's grade-3 embedding minus the e123
// weight.
type Vector struct {
	X, Y, Z float64
}

// NewVector returns the direction (x, y, z).
func NewVector(x, y, z float64) *Vector {
	return &Vector{X: x, Y: y, Z: z}
}

// VectorFromElement reads the ideal grade-3 part of el.
func VectorFromElement(el *galgo.Element) *Vector {
	s := el.Select(E012, E013, E023)
	return &Vector{X: -s[2], Y: s[1], Z: -s[0]}
}

// Blades implements galgo.Entity.
func (v *Vector) Blades() []algebra.Blade { return vectorBlades }

// Values implements galgo.Entity.
func (v *Vector) Values() []float64 { return []float64{v.X, v.Y, v.Z} }

// Bind implements galgo.Entity.
func (v *Vector) Bind(base uint32) symbolic.Multivector {
	return symbolic.Must(
		[]symbolic.Ind{
			{Source: base + 2, Mult: symbolic.RatOne},
			{Source: base + 1, Mult: symbolic.RatOne},
			{Source: base, Mult: symbolic.RatOne},
		},
		[]symbolic.Mon{
			{Coeff: symbolic.RatMinusOne, Width: 1, Start: 0},
			{Coeff: symbolic.RatOne, Width: 1, Start: 1},
			{Coeff: symbolic.RatMinusOne, Width: 1, Start: 2},
		},
		[]symbolic.Term{
			{Count: 1, Mon: 0, Blade: E012},
			{Count: 1, Mon: 1, Blade: E013},
			{Count: 1, Mon: 2, Blade: E023},
		},
	)
}

// Element returns the direction's generic multivector form.
func (v *Vector) Element() *galgo.Element {
	return mustElement(vectorBlades, []float64{-v.Z, v.Y, -v.X})
}

// Line is the grade-2 entity in Plücker coordinates: direction (dx, dy, dz)
// on the Euclidean bivectors and moment (mx, my, mz) on the ideal ones,
//
//	dx e23 + dy e13 + dz e12 + mx e01 + my e02 + mz e03.
//
// Lines double as the Lie algebra of motors: Exp of a line is the screw
// motion about it.
type Line struct {
	DX, DY, DZ float64
	MX, MY, MZ float64
}

// NewLine returns the line with direction d and moment m.
func NewLine(dx, dy, dz, mx, my, mz float64) *Line {
	return &Line{DX: dx, DY: dy, DZ: dz, MX: mx, MY: my, MZ: mz}
}

// LineFromElement reads the grade-2 part of el.
func LineFromElement(el *galgo.Element) *Line {
	s := el.Select(E23, E13, E12, E01, E02, E03)
	return &Line{DX: s[0], DY: s[1], DZ: s[2], MX: s[3], MY: s[4], MZ: s[5]}
}

// Blades implements galgo.Entity.
func (l *Line) Blades() []algebra.Blade { return lineBlades }

// Values implements galgo.Entity.
func (l *Line) Values() []float64 {
	return []float64{l.DX, l.DY, l.DZ, l.MX, l.MY, l.MZ}
}

// Bind implements galgo.Entity.
func (l *Line) Bind(base uint32) symbolic.Multivector {
	return symbolic.Direct(base, lineBlades)
}

// Element returns the line's generic multivector form.
func (l *Line) Element() *galgo.Element {
	return mustElement(lineBlades, l.Values())
}
