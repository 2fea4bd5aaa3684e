/*
Package xratio computes cross-ratios of point ranges and line pencils,
exactly, as fractions. The cross-ratio is the fundamental projective
invariant of four collinear points; a range with cross-ratio -1 is
harmonic, which ties this package to projgeom.HarmConj.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package xratio

import (
	"github.com/npillmayer/projgeom"
	"github.com/npillmayer/projgeom/fractions"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'projgeom'
func tracer() tracing.Trace {
	return tracing.Select("projgeom")
}

// coordinate index pairs for the 2x2 minors of a coordinate pair
var minorIdx = [3][2]int{{0, 1}, {0, 2}, {1, 2}}

func minor[T projgeom.Scalar](u, v projgeom.Coord3[T], i, j int) T {
	return u[i]*v[j] - u[j]*v[i]
}

// CrossRatio returns the cross-ratio (a, b; c, d) of four collinear
// points. The computation uses 2x2 coordinate minors against a pair of
// axes in which a and b are independent, so it does not depend on the
// homogeneous representatives chosen for any of the four points. Results
// for degenerate ranges are the projective specials: an infinity when c
// coincides with b or d with a, and 0/0 when a and b coincide (traced).
func CrossRatio[T projgeom.Scalar](a, b, c, d projgeom.Point[T]) fractions.Fraction[T] {
	for _, ij := range minorIdx {
		i, j := ij[0], ij[1]
		if minor(a.Coord, b.Coord, i, j) == 0 {
			continue
		}
		num := minor(a.Coord, c.Coord, i, j) * minor(b.Coord, d.Coord, i, j)
		den := minor(b.Coord, c.Coord, i, j) * minor(a.Coord, d.Coord, i, j)
		return fractions.New(num, den)
	}
	tracer().Errorf("cross-ratio base points %v and %v coincide", a, b)
	return fractions.New[T](0, 0)
}

// CrossRatioLines returns the cross-ratio of four concurrent lines,
// measured on a transversal: it equals the cross-ratio of the four
// intersection points, for any transversal not through the pencil's
// carrier.
func CrossRatioLines[T projgeom.Scalar](l1, l2, l3, l4, transversal projgeom.Line[T]) fractions.Fraction[T] {
	return CrossRatio(
		l1.Meet(transversal),
		l2.Meet(transversal),
		l3.Meet(transversal),
		l4.Meet(transversal),
	)
}

// IsHarmonicDivision is a predicate: do the four collinear points form a
// harmonic range, cross-ratio -1?
func IsHarmonicDivision[T projgeom.Scalar](a, b, c, d projgeom.Point[T]) bool {
	return CrossRatio(a, b, c, d).Equal(fractions.From[T](-1))
}

// Parameter returns the parameter t with c = a + t*(b - a), read off the
// first coordinate in which a and b differ. The identity must hold for
// the representatives as given, not merely as equivalence classes;
// Parametrize produces such representatives. Coincident inputs yield 0.
func Parameter[T projgeom.Scalar](a, b, c projgeom.Point[T]) fractions.Fraction[T] {
	for i := 0; i < 3; i++ {
		diff := b.Coord[i] - a.Coord[i]
		if diff != 0 && a.Coord[i] != c.Coord[i] {
			return fractions.New(c.Coord[i]-a.Coord[i], diff)
		}
	}
	return fractions.Zero[T]()
}

// SquaredDistance returns the exact squared Euclidean distance between
// two points of the affine chart. The distance to a point at infinity is
// infinite; between two points at infinity it is indeterminate.
func SquaredDistance[T projgeom.Scalar](p, q projgeom.Point[T]) fractions.Fraction[T] {
	dx := fractions.New(q.Coord[0], q.Coord[2]).Sub(fractions.New(p.Coord[0], p.Coord[2]))
	dy := fractions.New(q.Coord[1], q.Coord[2]).Sub(fractions.New(p.Coord[1], p.Coord[2]))
	return dx.Mul(dx).Add(dy.Mul(dy))
}
