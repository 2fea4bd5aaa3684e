/*
Package transform implements projective collineations of the plane as
exact 3x3 fraction matrices. Points transform by the matrix itself,
lines by the transposed adjugate, which keeps the incidence relation
invariant without ever dividing: a collineation maps a point on a line
to a point on the image line.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package transform

import (
	"fmt"

	"github.com/npillmayer/projgeom"
	"github.com/npillmayer/projgeom/fractions"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'projgeom'
func tracer() tracing.Trace {
	return tracing.Select("projgeom")
}

// Transform is a projective collineation, a matrix type used for
// transforming points and lines.
type Transform[T projgeom.Scalar] []fractions.Fraction[T] // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point
// for transform combinations.
func newTransform[T projgeom.Scalar]() Transform[T] {
	m := make([]fractions.Fraction[T], 9)
	for i := range m {
		m[i] = fractions.Zero[T]()
	}
	return m
}

func (m Transform[T]) get(row, col int) fractions.Fraction[T] {
	return m[row*3+col]
}

func (m Transform[T]) set(row, col int, value fractions.Fraction[T]) {
	m[row*3+col] = value
}

func (m Transform[T]) row(row int) []fractions.Fraction[T] {
	return m[row*3 : (row+1)*3]
}

func (m Transform[T]) col(col int) []fractions.Fraction[T] {
	c := make([]fractions.Fraction[T], 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity[T projgeom.Scalar]() Transform[T] {
	m := newTransform[T]()
	m.set(0, 0, fractions.From[T](1))
	m.set(1, 1, fractions.From[T](1))
	m.set(2, 2, fractions.From[T](1))
	return m
}

// Translation transform. Translate a point by (tx,ty).
func Translation[T projgeom.Scalar](tx, ty T) Transform[T] {
	m := Identity[T]()
	m.set(0, 2, fractions.From(tx))
	m.set(1, 2, fractions.From(ty))
	return m
}

// Scaling transform. Scale a point by sx horizontally and sy vertically.
func Scaling[T projgeom.Scalar](sx, sy fractions.Fraction[T]) Transform[T] {
	m := newTransform[T]()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	m.set(2, 2, fractions.From[T](1))
	return m
}

// Shear transform, with horizontal factor shx and vertical factor shy.
func Shear[T projgeom.Scalar](shx, shy fractions.Fraction[T]) Transform[T] {
	m := Identity[T]()
	m.set(0, 1, shx)
	m.set(1, 0, shy)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the
// origin. Exact arithmetic has no transcendentals, so the angle is given
// by a rational cosine/sine pair; Pythagorean triples such as (3/5, 4/5)
// give exact rotations.
func Rotation[T projgeom.Scalar](cos, sin fractions.Fraction[T]) Transform[T] {
	m := newTransform[T]()
	m.set(0, 0, cos)
	m.set(0, 1, sin.Neg())
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, fractions.From[T](1))
	return m
}

// Debug Stringer for a transform.
func (m Transform[T]) String() string {
	s := fmt.Sprintf("[%v,%v,%v|%v,%v,%v|%v,%v,%v]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd[T projgeom.Scalar](vec1, vec2 []fractions.Fraction[T]) fractions.Fraction[T] {
	p1 := vec1[0].Mul(vec2[0])
	p2 := vec1[1].Mul(vec2[1])
	p3 := vec1[2].Mul(vec2[2])
	return p1.Add(p2).Add(p3)
}

// Combine 2 transformations to a new one. Returns a new transformation
// without changing the argument(s). m.Combine(n) transforms first by m,
// then by n.
func (m Transform[T]) Combine(n Transform[T]) Transform[T] {
	o := newTransform[T]()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Det returns the determinant of the transform. A zero determinant means
// the transform is singular and collapses the plane.
func (m Transform[T]) Det() fractions.Fraction[T] {
	a, b, c := m.get(0, 0), m.get(0, 1), m.get(0, 2)
	d, e, f := m.get(1, 0), m.get(1, 1), m.get(1, 2)
	g, h, i := m.get(2, 0), m.get(2, 1), m.get(2, 2)
	det := a.Mul(e.Mul(i).Sub(f.Mul(h)))
	det = det.Sub(b.Mul(d.Mul(i).Sub(f.Mul(g))))
	return det.Add(c.Mul(d.Mul(h).Sub(e.Mul(g))))
}

// Adjugate returns the adjugate of the transform, the inverse scaled by
// the determinant. Homogeneous coordinates make the scale irrelevant, so
// the adjugate substitutes for the inverse without any division.
func (m Transform[T]) Adjugate() Transform[T] {
	a, b, c := m.get(0, 0), m.get(0, 1), m.get(0, 2)
	d, e, f := m.get(1, 0), m.get(1, 1), m.get(1, 2)
	g, h, i := m.get(2, 0), m.get(2, 1), m.get(2, 2)
	o := newTransform[T]()
	o.set(0, 0, e.Mul(i).Sub(f.Mul(h)))
	o.set(0, 1, c.Mul(h).Sub(b.Mul(i)))
	o.set(0, 2, b.Mul(f).Sub(c.Mul(e)))
	o.set(1, 0, f.Mul(g).Sub(d.Mul(i)))
	o.set(1, 1, a.Mul(i).Sub(c.Mul(g)))
	o.set(1, 2, c.Mul(d).Sub(a.Mul(f)))
	o.set(2, 0, d.Mul(h).Sub(e.Mul(g)))
	o.set(2, 1, b.Mul(g).Sub(a.Mul(h)))
	o.set(2, 2, a.Mul(e).Sub(b.Mul(d)))
	return o
}

func (m Transform[T]) multiplyVector(v projgeom.Coord3[T]) [3]fractions.Fraction[T] {
	vf := []fractions.Fraction[T]{fractions.From(v[0]), fractions.From(v[1]), fractions.From(v[2])}
	var c [3]fractions.Fraction[T]
	c[0] = dotProd(m.row(0), vf)
	c[1] = dotProd(m.row(1), vf)
	c[2] = dotProd(m.row(2), vf)
	return c
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

// Apply transforms a point. The argument is unchanged and a new point is
// returned, with integer coordinates recovered exactly from the fraction
// image. Applying a singular transform can collapse a point to the
// degenerate zero element; this is traced, not signaled.
func (m Transform[T]) Apply(p projgeom.Point[T]) projgeom.Point[T] {
	img := projgeom.NewPoint(clear(m.multiplyVector(p.Coord)))
	if img.Degenerate() && !p.Degenerate() {
		tracer().Errorf("transform %v collapses point %v", m, p)
	}
	return img
}

// ApplyLine transforms a line by the transposed adjugate, so that
// incidence is preserved: p on l implies m.Apply(p) on m.ApplyLine(l).
func (m Transform[T]) ApplyLine(l projgeom.Line[T]) projgeom.Line[T] {
	adj := m.Adjugate()
	vf := []fractions.Fraction[T]{fractions.From(l.Coord[0]), fractions.From(l.Coord[1]), fractions.From(l.Coord[2])}
	var c [3]fractions.Fraction[T]
	c[0] = dotProd(adj.col(0), vf)
	c[1] = dotProd(adj.col(1), vf)
	c[2] = dotProd(adj.col(2), vf)
	img := projgeom.NewLine(clear(c))
	if img.Degenerate() && !l.Degenerate() {
		tracer().Errorf("transform %v collapses line %v", m, l)
	}
	return img
}
