package pga_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/galgo"
	"github.com/hupe1980/galgo/pga"
)

func applyToPoint(t *testing.T, m galgo.Entity, p *pga.Point) *pga.Point {
	t.Helper()

	el, err := pga.Apply(m, p)
	require.NoError(t, err)

	return pga.PointFromElement(el)
}

func assertPointAt(t *testing.T, p *pga.Point, x, y, z float64) {
	t.Helper()

	assert.InDelta(t, x, p.X, 1e-12)
	assert.InDelta(t, y, p.Y, 1e-12)
	assert.InDelta(t, z, p.Z, 1e-12)
}

func TestRotorRotatesPoint(t *testing.T) {
	t.Run("quarter turn about z", func(t *testing.T) {
		r := pga.NewRotor(math.Pi/2, 0, 0, 1)
		got := applyToPoint(t, r, pga.NewPoint(1, 0, 0))
		assertPointAt(t, got, 0, 1, 0)
	})

	t.Run("quarter turn about x", func(t *testing.T) {
		r := pga.NewRotor(math.Pi/2, 1, 0, 0)
		got := applyToPoint(t, r, pga.NewPoint(0, 1, 0))
		assertPointAt(t, got, 0, 0, 1)
	})

	t.Run("quarter turn about y", func(t *testing.T) {
		r := pga.NewRotor(math.Pi/2, 0, 1, 0)
		got := applyToPoint(t, r, pga.NewPoint(0, 0, 1))
		assertPointAt(t, got, 1, 0, 0)
	})

	t.Run("axis point is fixed", func(t *testing.T) {
		r := pga.NewRotor(1.234, 0, 0, 1)
		got := applyToPoint(t, r, pga.NewPoint(0, 0, 5))
		assertPointAt(t, got, 0, 0, 5)
	})
}

func TestTranslatorMovesPoint(t *testing.T) {
	t.Run("along x", func(t *testing.T) {
		tr := pga.NewTranslator(5, 1, 0, 0)
		got := applyToPoint(t, tr, pga.NewPoint(0, 0, 0))
		assertPointAt(t, got, 5, 0, 0)
	})

	t.Run("general offset", func(t *testing.T) {
		tr := pga.NewTranslator(2, 0, 1, 0)
		got := applyToPoint(t, tr, pga.NewPoint(1, 2, 3))
		assertPointAt(t, got, 1, 4, 3)
	})
}

func TestTranslationLeavesDirectionsFixed(t *testing.T) {
	tr := pga.NewTranslator(7, 1, 0, 0)
	v := pga.NewVector(1, 2, 3)

	el, err := pga.Apply(tr, v)
	require.NoError(t, err)

	got := pga.VectorFromElement(el)
	assert.InDelta(t, v.X, got.X, 1e-12)
	assert.InDelta(t, v.Y, got.Y, 1e-12)
	assert.InDelta(t, v.Z, got.Z, 1e-12)
}

func TestNormalize(t *testing.T) {
	r := pga.NewRotor(math.Pi, 0, 0, 4)
	r.Normalize()
	assert.InDelta(t, 1, r.Z, 1e-12)

	tr := pga.NewTranslator(1, 3, 0, 4)
	tr.Normalize()
	assert.InDelta(t, 0.6, tr.X, 1e-12)
	assert.InDelta(t, 0.8, tr.Z, 1e-12)
}

func TestRotorElement(t *testing.T) {
	r := pga.NewRotor(math.Pi/2, 0, 0, 1)
	el := r.Element()

	s := math.Sin(math.Pi / 4)
	assert.InDelta(t, math.Cos(math.Pi/4), el.Value(0), 1e-12)
	assert.InDelta(t, -s, el.Value(pga.E12), 1e-12)
	assert.InDelta(t, 0, el.Value(pga.E13), 1e-12)
	assert.InDelta(t, 0, el.Value(pga.E23), 1e-12)
}

func TestTranslatorElement(t *testing.T) {
	tr := pga.NewTranslator(4, 0, 1, 0)
	el := tr.Element()

	assert.InDelta(t, 1, el.Value(0), 1e-12)
	assert.InDelta(t, -2, el.Value(pga.E02), 1e-12)
	assert.InDelta(t, 0, el.Value(pga.E01), 1e-12)
}

// Composing a rotation and a translation into one motor must act like
// applying them in sequence.
func TestMotorComposition(t *testing.T) {
	r := pga.NewRotor(math.Pi/2, 0, 0, 1)
	tr := pga.NewTranslator(3, 1, 0, 0)

	el, err := galgo.Compute(pga.Alg, func(args []galgo.Expr) galgo.Expr {
		return args[0].Mul(args[1])
	}, tr, r)
	require.NoError(t, err)
	m := pga.MotorFromElement(el)

	p := pga.NewPoint(1, 0, 0)
	rotated := applyToPoint(t, r, p)
	sequential := applyToPoint(t, tr, rotated)
	combined := applyToPoint(t, m, p)

	assertPointAt(t, combined, sequential.X, sequential.Y, sequential.Z)
	assertPointAt(t, combined, 3, 1, 0)
}

func TestMotorIdentity(t *testing.T) {
	m := pga.NewMotor([8]float64{1, 0, 0, 0, 0, 0, 0, 0})
	got := applyToPoint(t, m, pga.NewPoint(2, -3, 4))
	assertPointAt(t, got, 2, -3, 4)
}

func TestMotorValue(t *testing.T) {
	m := pga.NewMotor([8]float64{1, 2, 3, 4, 5, 6, 7, 8})

	assert.InDelta(t, 1, m.Value(0), 0)
	assert.InDelta(t, 4, m.Value(pga.E12), 0)
	assert.InDelta(t, 8, m.Value(pga.E0123), 0)
	assert.InDelta(t, 0, m.Value(pga.E1), 0)
}

func TestMotorRoundTrip(t *testing.T) {
	m := pga.NewMotor([8]float64{1, 2, 3, 4, 5, 6, 7, 8})
	got := pga.MotorFromElement(m.Element())
	assert.Equal(t, m.Values(), got.Values())
}
