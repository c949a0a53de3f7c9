package pga

import (
	"math"

	"github.com/hupe1980/galgo"
	"github.com/hupe1980/galgo/algebra"
)

// logBranchEps guards the near-pi branch of Log, where the motor's scalar
// part vanishes and atan2 against it loses the angle.
const logBranchEps = 1e-6

// dualBlades spans the dual-number subalgebra 1, e0123 that line squares
// and screw norms live in.
var dualBlades = []algebra.Blade{0, E0123}

// square computes the geometric square of an entity.
func square(x galgo.Entity) (*galgo.Element, error) {
	return galgo.Compute(Alg, func(args []galgo.Expr) galgo.Expr {
		return args[0].Mul(args[0])
	}, x)
}

// Exp maps a line to the motor performing the screw motion about it: a
// rotation by twice the line's Euclidean norm composed with a translation
// by twice its pitch along the same axis.
//
// A line with zero Euclidean direction (a pure moment) has no screw axis;
// the result is NaN-valued. Feed such displacements to a Translator
// instead.
func Exp(l *Line) (*Motor, error) {
	sq, err := square(l)
	if err != nil {
		return nil, err
	}

	// l*l = s + p e0123 with s <= 0; the study number u + v e0123 is the
	// square root of -l*l.
	s := sq.Value(0)
	p := sq.Value(E0123)
	u := math.Sqrt(-s)
	v := -p / (2 * u)

	invNorm := mustElement(dualBlades, []float64{1 / u, -v / (u * u)})
	realPart := mustElement(dualBlades, []float64{math.Cos(u), -v * math.Sin(u)})
	idealPart := mustElement(dualBlades, []float64{math.Sin(u), v * math.Cos(u)})

	el, err := galgo.Compute(Alg, func(args []galgo.Expr) galgo.Expr {
		re, id, inv, line := args[0], args[1], args[2], args[3]
		return re.Add(id.Mul(inv).Mul(line))
	}, realPart, idealPart, invNorm, l)
	if err != nil {
		return nil, err
	}
	return MotorFromElement(el), nil
}

// Log inverts Exp: it recovers the line whose exponential is the motor.
// The identity motor and pure translations have a vanishing Euclidean
// bivector part and no unique axis; the result is NaN-valued.
func Log(m *Motor) (*Line, error) {
	s1 := m.values[0]
	p1 := m.values[7]
	l := &Line{
		DX: m.values[6], DY: m.values[5], DZ: m.values[3],
		MX: m.values[1], MY: m.values[2], MZ: m.values[4],
	}

	sq, err := square(l)
	if err != nil {
		return nil, err
	}
	s2 := math.Sqrt(-sq.Value(0))
	p2 := -sq.Value(E0123) / (2 * s2)

	var u, v float64
	if math.Abs(s1) < logBranchEps {
		u = math.Atan2(-p1, p2)
		v = -p1 / s2
	} else {
		u = math.Atan2(s2, s1)
		v = p2 / s1
	}

	invNorm := mustElement(dualBlades, []float64{1 / s2, -p2 / (s2 * s2)})

	el, err := galgo.Compute(Alg, func(args []galgo.Expr) galgo.Expr {
		us, vs, inv, line := args[0], args[1], args[2], args[3]
		return us.Add(vs.Mul(PS())).Mul(inv).Mul(line)
	}, Scalar(u), Scalar(v), invNorm, l)
	if err != nil {
		return nil, err
	}
	return LineFromElement(el), nil
}
