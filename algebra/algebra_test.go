package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejects negative signature", func(t *testing.T) {
		_, err := New(Metric{P: -1, Q: 0, R: 0})
		assert.ErrorIs(t, err, ErrNegativeSignature)
	})

	t.Run("rejects too many basis vectors", func(t *testing.T) {
		_, err := New(Metric{P: 9})
		var dimErr *ErrDimensionTooLarge
		require.ErrorAs(t, err, &dimErr)
		assert.Equal(t, 9, dimErr.Dim)
	})

	t.Run("derives dimensions", func(t *testing.T) {
		a, err := New(Metric{P: 3, Q: 0, R: 1})
		require.NoError(t, err)
		assert.Equal(t, 4, a.Dim())
		assert.Equal(t, 16, a.BladeCount())
		assert.Equal(t, Blade(0b1111), a.Pseudoscalar())
	})
}

func TestMetric(t *testing.T) {
	m := Metric{P: 1, Q: 1, R: 1}
	assert.Equal(t, 3, m.Dim())
	assert.Equal(t, 0, m.Square(0))
	assert.Equal(t, 1, m.Square(1))
	assert.Equal(t, -1, m.Square(2))
	assert.Equal(t, "(1,1,1)", m.String())
}

func TestGrade(t *testing.T) {
	a, err := New(Metric{P: 3, Q: 0, R: 1})
	require.NoError(t, err)

	assert.Equal(t, 0, a.Grade(0))
	assert.Equal(t, 1, a.Grade(0b0001))
	assert.Equal(t, 2, a.Grade(0b0101))
	assert.Equal(t, 4, a.Grade(0b1111))
}

func TestProductPGA(t *testing.T) {
	a, err := New(Metric{P: 3, Q: 0, R: 1})
	require.NoError(t, err)

	e0, e1, e2 := Blade(0b0001), Blade(0b0010), Blade(0b0100)

	t.Run("null generator squares to zero", func(t *testing.T) {
		b, mult := a.Product(e0, e0)
		assert.Equal(t, Blade(0), b)
		assert.Equal(t, int8(0), mult)
	})

	t.Run("euclidean generator squares to one", func(t *testing.T) {
		b, mult := a.Product(e1, e1)
		assert.Equal(t, Blade(0), b)
		assert.Equal(t, int8(1), mult)
	})

	t.Run("generators anticommute", func(t *testing.T) {
		b, mult := a.Product(e1, e2)
		assert.Equal(t, e1|e2, b)
		assert.Equal(t, int8(1), mult)

		b, mult = a.Product(e2, e1)
		assert.Equal(t, e1|e2, b)
		assert.Equal(t, int8(-1), mult)
	})

	t.Run("contraction picks up reordering sign", func(t *testing.T) {
		// e12 e1 = -e2 e1 e1 = -e2
		b, mult := a.Product(e1|e2, e1)
		assert.Equal(t, e2, b)
		assert.Equal(t, int8(-1), mult)
	})

	t.Run("pseudoscalar is null", func(t *testing.T) {
		_, mult := a.Product(a.Pseudoscalar(), a.Pseudoscalar())
		assert.Equal(t, int8(0), mult)
	})

	t.Run("blade products associate", func(t *testing.T) {
		for x := 0; x < a.BladeCount(); x++ {
			for y := 0; y < a.BladeCount(); y++ {
				for z := 0; z < a.BladeCount(); z++ {
					bxy, mxy := a.Product(Blade(x), Blade(y))
					bl, ml := a.Product(bxy, Blade(z))
					byz, myz := a.Product(Blade(y), Blade(z))
					br, mr := a.Product(Blade(x), byz)
					assert.Equal(t, bl, br)
					assert.Equal(t, mxy*ml, myz*mr)
				}
			}
		}
	})
}

func TestProductNegativeSignature(t *testing.T) {
	a, err := New(Metric{P: 0, Q: 1, R: 0})
	require.NoError(t, err)

	b, mult := a.Product(1, 1)
	assert.Equal(t, Blade(0), b)
	assert.Equal(t, int8(-1), mult)
}

func TestPseudoscalarInverseSign(t *testing.T) {
	pga, err := New(Metric{P: 3, Q: 0, R: 1})
	require.NoError(t, err)
	assert.Equal(t, int8(1), pga.PseudoscalarInverseSign())

	sta, err := New(Metric{P: 3, Q: 1, R: 0})
	require.NoError(t, err)
	assert.Equal(t, int8(-1), sta.PseudoscalarInverseSign())
}

func TestReverseSign(t *testing.T) {
	signs := []int8{1, 1, -1, -1, 1, 1, -1, -1}
	for grade, want := range signs {
		assert.Equal(t, want, ReverseSign(grade), "grade %d", grade)
	}
}
