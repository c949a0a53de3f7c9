// Package symbolic implements the sparse polynomial-over-blades
// representation at the heart of the engine.
//
// A Multivector is a sum of terms; each term contributes one monomial (a
// rational-scaled product of indeterminates, i.e. yet-unbound numeric
// inputs) to one basis blade. Combination (Add, Sub, Scale, Mul, Rev)
// always returns a canonical form: terms ordered by ascending blade, then
// monomial width, then indeterminate ids, with structurally identical
// monomials merged and zero or metric-annihilated terms pruned.
//
// The surviving term count of a canonical form is the exact
// multiply-accumulate cost of evaluating it, which is the whole point:
// simplification happens symbolically, before any concrete value is bound.
package symbolic
