// Package pga instantiates the engine for the Projective Geometric Algebra
// of Euclidean 3-space, the degenerate-metric algebra (3,0,1).
//
// The null generator e0 is bit 0; e1, e2, e3 are bits 1-3. Planes are the
// grade-1 elements; points and directions live dually in grade 3; lines are
// the grade-2 elements in Plücker coordinates; rigid motions (rotors,
// translators and general motors) occupy the even subalgebra and act on
// other entities by the sandwich product (see Apply).
//
// Exp and Log connect lines and motors: Exp of a line is the screw motion
// about it and Log recovers the line from a motor, enabling motor
// interpolation through the line space.
package pga
