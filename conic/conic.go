/*
Package conic implements conic sections of the projective plane over the
exact rational arithmetic of package fractions. A conic is a symmetric
3x3 matrix Q; a point x lies on the conic iff the quadratic form x'Qx
vanishes. The polar/pole correspondence of a conic generalizes the fixed
polarities of the Cayley-Klein geometries in sub-package ck.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package conic

import (
	"github.com/npillmayer/projgeom"
	"github.com/npillmayer/projgeom/fractions"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'projgeom'
func tracer() tracing.Trace {
	return tracing.Select("projgeom")
}

// Kind classifies a conic by the sign of its discriminant.
type Kind int8

const (
	Elliptic Kind = iota
	Parabolic
	Hyperbolic
)

func (k Kind) String() string {
	switch k {
	case Elliptic:
		return "elliptic"
	case Hyperbolic:
		return "hyperbolic"
	}
	return "parabolic"
}

// Conic is a conic section in homogeneous coordinates, represented by a
// symmetric matrix of exact fractions. Conics are immutable values.
type Conic[T projgeom.Scalar] struct {
	Matrix [3][3]fractions.Fraction[T]
}

// New creates a conic from a symmetric coefficient matrix. The symmetry
// is the caller's obligation; none of the operations below symmetrize.
func New[T projgeom.Scalar](matrix [3][3]fractions.Fraction[T]) Conic[T] {
	return Conic[T]{Matrix: matrix}
}

// Circle returns the circle around (cx, cy) with the given squared
// radius. Expanding (x-cx)^2 + (y-cy)^2 = r^2 into homogeneous
// coordinates gives the matrix directly.
func Circle[T projgeom.Scalar](cx, cy, r2 T) Conic[T] {
	one := fractions.From[T](1)
	zero := fractions.Zero[T]()
	fcx := fractions.From(cx)
	fcy := fractions.From(cy)
	cc := fcx.Mul(fcx).Add(fcy.Mul(fcy)).SubScalar(r2)
	return Conic[T]{Matrix: [3][3]fractions.Fraction[T]{
		{one, zero, fcx.Neg()},
		{zero, one, fcy.Neg()},
		{fcx.Neg(), fcy.Neg(), cc},
	}}
}

// UnitCircle returns the circle of radius 1 around the origin.
func UnitCircle[T projgeom.Scalar]() Conic[T] {
	return Circle[T](0, 0, 1)
}

// Parabola returns the parabola y = a*x^2. The off-diagonal halves keep
// the matrix symmetric; fractions carry them exactly.
func Parabola[T projgeom.Scalar](a fractions.Fraction[T]) Conic[T] {
	zero := fractions.Zero[T]()
	half := fractions.New[T](1, 2)
	return Conic[T]{Matrix: [3][3]fractions.Fraction[T]{
		{a.Neg(), zero, zero},
		{zero, zero, half},
		{zero, half, zero},
	}}
}

// apply returns Q*v as a fraction triple.
func (c Conic[T]) apply(v projgeom.Coord3[T]) [3]fractions.Fraction[T] {
	var out [3]fractions.Fraction[T]
	for i := 0; i < 3; i++ {
		row := c.Matrix[i]
		out[i] = row[0].MulScalar(v[0]).Add(row[1].MulScalar(v[1])).Add(row[2].MulScalar(v[2]))
	}
	return out
}

// clear scales a fraction triple back to co-proportional integer
// coordinates, exactly, by multiplying each numerator with the other two
// denominators.
func clear[T projgeom.Scalar](c [3]fractions.Fraction[T]) projgeom.Coord3[T] {
	return projgeom.Coord3[T]{
		c[0].Num * c[1].Den * c[2].Den,
		c[1].Num * c[0].Den * c[2].Den,
		c[2].Num * c[0].Den * c[1].Den,
	}
}

// Contains is a predicate: does p lie on the conic? The quadratic form
// is evaluated exactly, and scaling p by a nonzero factor does not
// change the answer.
func (c Conic[T]) Contains(p projgeom.Point[T]) bool {
	qx := c.apply(p.Coord)
	s := qx[0].MulScalar(p.Coord[0]).
		Add(qx[1].MulScalar(p.Coord[1])).
		Add(qx[2].MulScalar(p.Coord[2]))
	return s.Equal(fractions.Zero[T]())
}

// Polar returns the polar line of p with respect to the conic, Q*p
// cleared to integer coefficients. For p on the conic the polar is the
// tangent there. A singular conic can collapse the polar of a kernel
// point to the degenerate zero line; this is traced, not signaled.
func (c Conic[T]) Polar(p projgeom.Point[T]) projgeom.Line[T] {
	l := projgeom.NewLine(clear(c.apply(p.Coord)))
	if l.Degenerate() && !p.Degenerate() {
		tracer().Errorf("conic collapses the polar of %v", p)
	}
	return l
}

// Tangent returns the tangent line at a point on the conic, which is
// its polar. For a point off the conic the result is the polar, not a
// tangent; callers check Contains first.
func (c Conic[T]) Tangent(p projgeom.Point[T]) projgeom.Line[T] {
	return c.Polar(p)
}

// adjugate returns the adjugate of Q, the inverse scaled by the
// determinant. The adjugate of a symmetric matrix is symmetric.
func (c Conic[T]) adjugate() Conic[T] {
	m := c.Matrix
	a, b, cc := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	return Conic[T]{Matrix: [3][3]fractions.Fraction[T]{
		{e.Mul(i).Sub(f.Mul(h)), cc.Mul(h).Sub(b.Mul(i)), b.Mul(f).Sub(cc.Mul(e))},
		{f.Mul(g).Sub(d.Mul(i)), a.Mul(i).Sub(cc.Mul(g)), cc.Mul(d).Sub(a.Mul(f))},
		{d.Mul(h).Sub(e.Mul(g)), b.Mul(g).Sub(a.Mul(h)), a.Mul(e).Sub(b.Mul(d))},
	}}
}

// Pole returns the pole of l with respect to the conic: the point whose
// polar is l. Homogeneous scale makes the inverse unnecessary, the
// adjugate applied to l serves division-free. A singular conic can
// collapse the pole to the degenerate zero point; this is traced.
func (c Conic[T]) Pole(l projgeom.Line[T]) projgeom.Point[T] {
	p := projgeom.NewPoint(clear(c.adjugate().apply(l.Coord)))
	if p.Degenerate() && !l.Degenerate() {
		tracer().Errorf("conic collapses the pole of %v", l)
	}
	return p
}

// Intersect returns the intersection points of a line with the conic.
// Restricting the quadratic form to the line gives a quadratic equation
// whose roots generally involve a square root, which integer
// coordinates cannot represent; no intersections are computed yet and
// nil is returned, traced.
//
// TODO return the two rational intersection points when the restricted
// quadratic's discriminant is a perfect square.
func (c Conic[T]) Intersect(l projgeom.Line[T]) []projgeom.Point[T] {
	tracer().Debugf("intersection of conic with %v not computed", l)
	return nil
}

// Discriminant returns the determinant of the upper-left 2x2 submatrix,
// whose sign separates the affine conic families.
func (c Conic[T]) Discriminant() fractions.Fraction[T] {
	m := c.Matrix
	return m[0][0].Mul(m[1][1]).Sub(m[0][1].Mul(m[1][0]))
}

// Kind classifies the conic: elliptic for positive discriminant,
// parabolic for zero, hyperbolic for negative.
func (c Conic[T]) Kind() Kind {
	switch d := c.Discriminant(); {
	case d.Sign() > 0:
		return Elliptic
	case d.Sign() < 0:
		return Hyperbolic
	}
	return Parabolic
}
