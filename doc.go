// Package galgo is a symbolic computer-algebra engine for geometric
// (Clifford) algebras. It computes exact, minimal-operation-count numeric
// formulas for geometric operations: an expression over yet-unbound entity
// storage is reduced symbolically to a canonical term list, and concrete
// values are substituted only afterwards, so no algebraically-dead
// arithmetic is ever executed.
//
// # Quick Start
//
// Apply a rotor to a point in PGA(3,0,1):
//
//	r := pga.NewRotor(math.Pi/2, 0, 0, 1)
//	p := pga.NewPoint(1, 0, 0)
//	el, _ := pga.Apply(r, p)
//	q := pga.PointFromElement(el) // close to (0, 1, 0)
//
// Compile once, evaluate many:
//
//	prog, _ := galgo.Compile(pga.Alg, func(args []galgo.Expr) galgo.Expr {
//	    m, p := args[0], args[1]
//	    return m.Mul(p).Mul(m.Rev())
//	}, []galgo.Entity{r, p})
//	out, _ := prog.Eval(r, q) // one multiply-accumulate per surviving term
//
// # Model
//
// A Metric (p,q,r) fixes an Algebra; entities bind their storage to
// indeterminates; Expr combinators build a symbolic multivector; Compile
// canonicalizes it; Eval substitutes values. The engine is purely
// computational: no I/O, no shared mutable state, and evaluation over
// disjoint entities is safe concurrently (see Program.EvalBatch).
//
// Numeric degeneracy (normalizing a zero vector, exp/log of a null element)
// propagates NaN/Inf through evaluation; structural misuse (mixed algebras,
// overlapping binding ranges) is reported as an error at compile time.
package galgo
