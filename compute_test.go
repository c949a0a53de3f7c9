package galgo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/galgo"
	"github.com/hupe1980/galgo/algebra"
	"github.com/hupe1980/galgo/pga"
	"github.com/hupe1980/galgo/symbolic"
)

func product(args []galgo.Expr) galgo.Expr {
	return args[0].Mul(args[1])
}

// escapingEntity binds an indeterminate id outside its reserved range.
type escapingEntity struct{}

func (escapingEntity) Blades() []algebra.Blade { return []algebra.Blade{0} }
func (escapingEntity) Values() []float64       { return []float64{1} }
func (escapingEntity) Bind(base uint32) symbolic.Multivector {
	return symbolic.Direct(base+7, []algebra.Blade{0})
}

// pinnedEntity ignores its base and always binds id 0.
type pinnedEntity struct{}

func (pinnedEntity) Blades() []algebra.Blade { return []algebra.Blade{0} }
func (pinnedEntity) Values() []float64       { return []float64{1} }
func (pinnedEntity) Bind(uint32) symbolic.Multivector {
	return symbolic.Direct(0, []algebra.Blade{0})
}

func TestCompile(t *testing.T) {
	t.Run("nil algebra", func(t *testing.T) {
		_, err := galgo.Compile(nil, product, nil)
		assert.ErrorIs(t, err, galgo.ErrNilAlgebra)
	})

	t.Run("nil func", func(t *testing.T) {
		_, err := galgo.Compile(pga.Alg, nil, nil)
		assert.ErrorIs(t, err, galgo.ErrNilFunc)
	})

	t.Run("binding escapes its range", func(t *testing.T) {
		_, err := galgo.Compile(pga.Alg, func(args []galgo.Expr) galgo.Expr {
			return args[0]
		}, []galgo.Entity{escapingEntity{}})

		var bindErr *galgo.ErrBindingOutOfRange
		require.ErrorAs(t, err, &bindErr)
		assert.Equal(t, 0, bindErr.Entity)
	})

	t.Run("bindings overlap", func(t *testing.T) {
		_, err := galgo.Compile(pga.Alg, product,
			[]galgo.Entity{pinnedEntity{}, pinnedEntity{}})

		var overlapErr *galgo.ErrOverlappingRange
		require.ErrorAs(t, err, &overlapErr)
		assert.Equal(t, 1, overlapErr.Entity)
	})

	t.Run("algebra mismatch", func(t *testing.T) {
		other, err := algebra.New(algebra.Metric{P: 2})
		require.NoError(t, err)

		_, err = galgo.Compile(pga.Alg, func(args []galgo.Expr) galgo.Expr {
			return args[0].Mul(galgo.PS(other))
		}, []galgo.Entity{pga.Scalar(1)})
		assert.ErrorIs(t, err, galgo.ErrAlgebraMismatch)
	})

	t.Run("expression error surfaces", func(t *testing.T) {
		_, err := galgo.Compile(pga.Alg, func(args []galgo.Expr) galgo.Expr {
			return args[0].Scale(1, 0)
		}, []galgo.Entity{pga.Scalar(1)})
		assert.Error(t, err)
	})
}

func TestComputeScalarProduct(t *testing.T) {
	el, err := galgo.Compute(pga.Alg, product, pga.Scalar(3), pga.Scalar(-4))
	require.NoError(t, err)
	assert.InDelta(t, -12, el.Value(0), 1e-12)
}

// The product of two Euclidean vectors splits into the dot product on the
// scalar and the cross-product area on the bivectors, nine multiplies in
// total.
func TestComputeVectorProduct(t *testing.T) {
	vecBlades := []algebra.Blade{pga.E1, pga.E2, pga.E3}

	a, err := pga.Element(vecBlades, []float64{1, 2, 3})
	require.NoError(t, err)
	b, err := pga.Element(vecBlades, []float64{-5, 7, 2})
	require.NoError(t, err)

	prog, err := galgo.Compile(pga.Alg, product, []galgo.Entity{a, b})
	require.NoError(t, err)
	assert.Equal(t, 9, prog.Terms())
	assert.Equal(t, []algebra.Blade{0, pga.E12, pga.E13, pga.E23}, prog.Blades())

	el, err := prog.Eval(a, b)
	require.NoError(t, err)

	// dot = -5+14+6, e12 = a1*b2-a2*b1, e13 = a1*b3-a3*b1, e23 = a2*b3-a3*b2
	assert.InDelta(t, 15, el.Value(0), 1e-12)
	assert.InDelta(t, 17, el.Value(pga.E12), 1e-12)
	assert.InDelta(t, 17, el.Value(pga.E13), 1e-12)
	assert.InDelta(t, -17, el.Value(pga.E23), 1e-12)
}

func TestComputeConstantsOnly(t *testing.T) {
	el, err := galgo.Compute(pga.Alg, func([]galgo.Expr) galgo.Expr {
		return pga.E(pga.E1).Mul(pga.E(pga.E1))
	})
	require.NoError(t, err)
	assert.InDelta(t, 1, el.Value(0), 1e-12)
}

func TestDegenerateProductVanishes(t *testing.T) {
	prog, err := galgo.Compile(pga.Alg, func([]galgo.Expr) galgo.Expr {
		return pga.PS().Mul(pga.PS())
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, prog.Terms())

	el, err := prog.Eval()
	require.NoError(t, err)
	assert.Empty(t, el.Blades())
}

func TestProgramReuse(t *testing.T) {
	prog, err := galgo.Compile(pga.Alg, product,
		[]galgo.Entity{pga.Scalar(0), pga.Scalar(0)})
	require.NoError(t, err)

	for _, tc := range [][3]float64{
		{2, 3, 6},
		{-1, 8, -8},
		{0.5, 0.5, 0.25},
	} {
		el, err := prog.Eval(pga.Scalar(tc[0]), pga.Scalar(tc[1]))
		require.NoError(t, err)
		assert.InDelta(t, tc[2], el.Value(0), 1e-12)
	}
}

func TestEvalErrors(t *testing.T) {
	prog, err := galgo.Compile(pga.Alg, product,
		[]galgo.Entity{pga.Scalar(0), pga.Scalar(0)})
	require.NoError(t, err)

	t.Run("wrong entity count", func(t *testing.T) {
		_, err := prog.Eval(pga.Scalar(1))
		assert.ErrorIs(t, err, galgo.ErrLengthMismatch)
	})

	t.Run("wrong storage shape", func(t *testing.T) {
		_, err := prog.Eval(pga.Scalar(1), pga.NewPlane(1, 2, 3, 4))

		var shapeErr *galgo.ErrShapeMismatch
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, 1, shapeErr.Entity)
		assert.Equal(t, 1, shapeErr.Want)
		assert.Equal(t, 4, shapeErr.Got)
	})
}

func TestEvalBatch(t *testing.T) {
	prog, err := galgo.Compile(pga.Alg, product,
		[]galgo.Entity{pga.Scalar(0), pga.Scalar(0)},
		galgo.WithParallelism(2))
	require.NoError(t, err)

	sets := make([][]galgo.Entity, 16)
	for i := range sets {
		sets[i] = []galgo.Entity{pga.Scalar(float64(i)), pga.Scalar(2)}
	}

	results, err := prog.EvalBatch(context.Background(), sets)
	require.NoError(t, err)
	require.Len(t, results, len(sets))

	for i, el := range results {
		assert.InDelta(t, float64(2*i), el.Value(0), 1e-12)
	}
}

func TestEvalBatchPropagatesError(t *testing.T) {
	prog, err := galgo.Compile(pga.Alg, product,
		[]galgo.Entity{pga.Scalar(0), pga.Scalar(0)})
	require.NoError(t, err)

	_, err = prog.EvalBatch(context.Background(), [][]galgo.Entity{
		{pga.Scalar(1), pga.Scalar(2)},
		{pga.Scalar(1)},
	})
	assert.ErrorIs(t, err, galgo.ErrLengthMismatch)
}
