// Package algebra derives the combinatorial structure of a geometric
// (Clifford) algebra from a metric signature.
//
// A Metric counts the basis vectors squaring to +1, -1 and 0. From it an
// Algebra precomputes, once, everything the symbolic layer needs: the grade
// of every basis blade, the full blade-product table (result blade plus a
// sign/degeneracy multiplier for every blade pair), and the pseudoscalar
// with its inverse.
//
// Blades are bitmasks over the basis vectors; the blade e1^e3 of a
// 4-dimensional algebra is the mask 0b1010. Null (degenerate) basis vectors
// occupy the lowest bit positions, so in PGA(3,0,1) the null generator e0 is
// bit 0.
package algebra
