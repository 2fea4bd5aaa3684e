/*
Package projgeom implements projective-plane geometry over homogeneous
integer coordinates, together with a family of Cayley–Klein metric
geometries layered on top of it (see sub-package ck).

All computation is exact: the algebra uses equality, addition, subtraction,
multiplication and negation only, never division or rounding. Results are
invariant under rescaling of any input by a nonzero scalar. Intermediate
products (cross products, harmonic-conjugate coefficients) can overflow for
large coordinates; guarding against overflow is the caller's concern.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package projgeom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'projgeom'
func tracer() tracing.Trace {
	return tracing.Select("projgeom")
}

// === Scalar Contract =======================================================

// Scalar is the coordinate type of every entity in this module: a signed
// fixed-width integer. Exactness is the point; overflow of intermediate
// products is the caller's numeric-range responsibility.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Coord3 is a homogeneous coordinate triple for points and lines of the
// projective plane. Operations never mutate a triple; they return new ones.
type Coord3[T Scalar] [3]T

// Coord2 holds the two directional components of a Euclidean line normal.
type Coord2[T Scalar] [2]T

// === Homogeneous Primitives ================================================

// Dot returns the dot product of two coordinate triples.
//
//	Dot(Coord3[int]{1, 2, 3}, Coord3[int]{3, 4, 5}) == 26
func Dot[T Scalar](a, b Coord3[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Dot2 returns the dot product of two coordinate pairs.
func Dot2[T Scalar](a, b Coord2[T]) T {
	return a[0]*b[0] + a[1]*b[1]
}

// Cross returns the cross product of two coordinate triples. The cross
// product of proportional triples is the zero triple.
//
//	Cross(Coord3[int]{1, 2, 3}, Coord3[int]{3, 4, 5}) == Coord3[int]{-2, 4, -2}
func Cross[T Scalar](a, b Coord3[T]) Coord3[T] {
	return Coord3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Cross2 returns the scalar cross product of two coordinate pairs.
func Cross2[T Scalar](a, b Coord2[T]) T {
	return a[0]*b[1] - a[1]*b[0]
}

// Plucker returns the linear combination lambda*a + mu*b, the one-parameter
// family of elements spanned by a and b.
func Plucker[T Scalar](lambda T, a Coord3[T], mu T, b Coord3[T]) Coord3[T] {
	return Coord3[T]{
		lambda*a[0] + mu*b[0],
		lambda*a[1] + mu*b[1],
		lambda*a[2] + mu*b[2],
	}
}
