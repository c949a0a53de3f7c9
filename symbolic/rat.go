package symbolic

import "strconv"

// Rat is a signed rational with gcd-normalized representation and a
// positive denominator. The zero value is not valid; use RatZero.
//
// Coefficients in blade products stay tiny (signs, halves, small merge
// sums), so a value type over int64 beats big.Rat's per-op allocation.
type Rat struct {
	n int64
	d int64
}

// Common coefficients.
var (
	RatZero     = Rat{0, 1}
	RatOne      = Rat{1, 1}
	RatMinusOne = Rat{-1, 1}
)

// NewRat returns the normalized rational n/d. It panics on a zero
// denominator; that is a programmer error, never data-driven.
func NewRat(n, d int64) Rat {
	if d == 0 {
		panic("symbolic: zero denominator")
	}
	if d < 0 {
		n, d = -n, -d
	}
	if g := gcd(abs(n), d); g > 1 {
		n, d = n/g, d/g
	}
	return Rat{n, d}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// Num returns the signed numerator.
func (r Rat) Num() int64 { return r.n }

// Den returns the positive denominator.
func (r Rat) Den() int64 { return r.d }

// Add returns r+o.
func (r Rat) Add(o Rat) Rat {
	return NewRat(r.n*o.d+o.n*r.d, r.d*o.d)
}

// Mul returns r*o.
func (r Rat) Mul(o Rat) Rat {
	return NewRat(r.n*o.n, r.d*o.d)
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{-r.n, r.d}
}

// MulInt returns r*k.
func (r Rat) MulInt(k int64) Rat {
	return NewRat(r.n*k, r.d)
}

// IsZero reports whether r is exactly zero.
func (r Rat) IsZero() bool { return r.n == 0 }

// Sign returns -1, 0 or +1.
func (r Rat) Sign() int {
	switch {
	case r.n < 0:
		return -1
	case r.n > 0:
		return 1
	default:
		return 0
	}
}

// Float64 returns the nearest float64.
func (r Rat) Float64() float64 {
	return float64(r.n) / float64(r.d)
}

// String renders "n" or "n/d".
func (r Rat) String() string {
	if r.d == 1 {
		return strconv.FormatInt(r.n, 10)
	}
	return strconv.FormatInt(r.n, 10) + "/" + strconv.FormatInt(r.d, 10)
}
