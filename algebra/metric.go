package algebra

import "fmt"

// Metric is the signature of an algebra's basis vectors: P vectors square to
// +1, Q to -1 and R to 0. The metric is fixed per algebra instantiation.
//
// Basis vectors are assigned signatures by index: [0,R) are null, [R,R+P)
// square to +1 and [R+P,Dim) to -1.
type Metric struct {
	P int
	Q int
	R int
}

// Dim returns the number of basis vectors, P+Q+R.
func (m Metric) Dim() int {
	return m.P + m.Q + m.R
}

// Square returns the metric square (+1, -1 or 0) of basis vector i.
func (m Metric) Square(i int) int {
	switch {
	case i < m.R:
		return 0
	case i < m.R+m.P:
		return 1
	default:
		return -1
	}
}

// String returns the conventional (p,q,r) notation.
func (m Metric) String() string {
	return fmt.Sprintf("(%d,%d,%d)", m.P, m.Q, m.R)
}
