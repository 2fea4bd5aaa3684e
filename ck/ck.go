/*
Package ck layers Cayley–Klein metric geometry on top of the projective
plane of package projgeom: a geometry is a (Point, Line) pair equipped
with a polarity, and metric notions (perpendicularity, altitude,
orthocenter, reflection) derive from the polarity alone. Five concrete
geometries are provided: elliptic, hyperbolic, a custom non-self-dual
one, Euclidean and perspective.

All computation stays exact over integer homogeneous coordinates.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package ck

import (
	"github.com/npillmayer/projgeom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'projgeom'
func tracer() tracing.Trace {
	return tracing.Select("projgeom")
}

// Plane is the capability contract a (Point, Line) pair must satisfy
// beyond the projective-plane laws to be usable by the metric algorithms
// below: the polarity Perp (polar line of a point, pole point of a line)
// and the bilinear perpendicularity form IsPerpendicular. As with the
// projgeom contracts, Self is the element's own type and Dual its
// counterpart, and each law is written once for both orientations.
type Plane[Self, Dual any, T projgeom.Scalar] interface {
	projgeom.ProjectivePlane[Self, Dual, T]
	Perp() Dual
	IsPerpendicular(Dual) bool
}

// Altitude returns the line through point p perpendicular, in the active
// geometry, to line l: the connector of p with l's pole. Dually it
// returns the point on a line perpendicular to a point. Instantiate the
// type arguments explicitly, e.g.
//
//	ck.Altitude[ck.EllipticPoint[int64], ck.EllipticLine[int64], int64](p, l)
func Altitude[P Plane[P, L, T], L Plane[L, P, T], T projgeom.Scalar](p P, l L) L {
	return l.Perp().Meet(p)
}

// TriAltitude returns the three altitudes of a triangle in vertex order:
// for each vertex, the altitude onto the opposite side.
func TriAltitude[P Plane[P, L, T], L Plane[L, P, T], T projgeom.Scalar](tri [3]P) [3]L {
	sides := projgeom.TriDual[P, L](tri)
	return [3]L{
		Altitude[P, L, T](tri[0], sides[0]),
		Altitude[P, L, T](tri[1], sides[1]),
		Altitude[P, L, T](tri[2], sides[2]),
	}
}

// Orthocenter returns the common point of a triangle's altitudes. In a
// geometry with a self-consistent polarity any two altitudes meet there;
// the third passing through it is the property clients may rely on.
func Orthocenter[P Plane[P, L, T], L Plane[L, P, T], T projgeom.Scalar](tri [3]P) P {
	alt := TriAltitude[P, L, T](tri)
	return alt[1].Meet(alt[2])
}

// IsPerpendicular is the symmetric form between two elements of the same
// kind: m1 and m2 are perpendicular iff m1's pole is incident with m2.
func IsPerpendicular[P Plane[P, L, T], L Plane[L, P, T], T projgeom.Scalar](m1, m2 L) bool {
	return m1.Perp().Incident(m2)
}

// Reflect mirrors p across the given mirror line (dually, a line across a
// mirror point): the involution fixed by the mirror and its pole.
func Reflect[P Plane[P, L, T], L Plane[L, P, T], T projgeom.Scalar](mirror L, p P) P {
	return projgeom.Involution[P, L, T](mirror.Perp(), mirror, p)
}
