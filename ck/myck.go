package ck

import "github.com/npillmayer/projgeom"

// === Custom Cayley–Klein Geometry ==========================================
//
// A deliberately non-self-dual geometry: the point-side polarity weights
// (-2, 1, -2) differ from the line-side weights (-1, 2, -1), exercising
// the general asymmetric case of the metric algorithms. The two weight
// sets are inverse diagonals up to a common factor, which keeps the
// polarity an involution on equivalence classes.

// MyCKPoint is a point of the custom Cayley–Klein plane.
type MyCKPoint[T projgeom.Scalar] struct {
	projgeom.Point[T]
}

// MyCKLine is a line of the custom Cayley–Klein plane.
type MyCKLine[T projgeom.Scalar] struct {
	projgeom.Line[T]
}

// CKPt is a quick notation for constructing a custom-geometry point.
func CKPt[T projgeom.Scalar](x, y, z T) MyCKPoint[T] {
	return MyCKPoint[T]{projgeom.Pt(x, y, z)}
}

// CKLn is a quick notation for constructing a custom-geometry line.
func CKLn[T projgeom.Scalar](a, b, c T) MyCKLine[T] {
	return MyCKLine[T]{projgeom.Ln(a, b, c)}
}

// --- Point side ------------------------------------------------------------

func (p MyCKPoint[T]) Equal(q MyCKPoint[T]) bool {
	return p.Point.Equal(q.Point)
}

func (p MyCKPoint[T]) Incident(l MyCKLine[T]) bool {
	return p.Point.Incident(l.Line)
}

func (p MyCKPoint[T]) Meet(q MyCKPoint[T]) MyCKLine[T] {
	return MyCKLine[T]{p.Point.Meet(q.Point)}
}

func (p MyCKPoint[T]) Parametrize(lambda T, q MyCKPoint[T], mu T) MyCKPoint[T] {
	return MyCKPoint[T]{p.Point.Parametrize(lambda, q.Point, mu)}
}

// Perp returns the polar line of p, weights (-2, 1, -2).
func (p MyCKPoint[T]) Perp() MyCKLine[T] {
	return CKLn(-2*p.Coord[0], p.Coord[1], -2*p.Coord[2])
}

// IsPerpendicular is the point-side weighted form.
func (p MyCKPoint[T]) IsPerpendicular(l MyCKLine[T]) bool {
	return projgeom.Dot(p.Perp().Coord, l.Coord) == 0
}

// --- Line side -------------------------------------------------------------

func (l MyCKLine[T]) Equal(m MyCKLine[T]) bool {
	return l.Line.Equal(m.Line)
}

func (l MyCKLine[T]) Incident(p MyCKPoint[T]) bool {
	return l.Line.Incident(p.Point)
}

func (l MyCKLine[T]) Meet(m MyCKLine[T]) MyCKPoint[T] {
	return MyCKPoint[T]{l.Line.Meet(m.Line)}
}

func (l MyCKLine[T]) Parametrize(lambda T, m MyCKLine[T], mu T) MyCKLine[T] {
	return MyCKLine[T]{l.Line.Parametrize(lambda, m.Line, mu)}
}

// Perp returns the pole point of l, weights (-1, 2, -1).
func (l MyCKLine[T]) Perp() MyCKPoint[T] {
	return CKPt(-l.Coord[0], 2*l.Coord[1], -l.Coord[2])
}

// IsPerpendicular is the line-side weighted form.
func (l MyCKLine[T]) IsPerpendicular(p MyCKPoint[T]) bool {
	return projgeom.Dot(l.Perp().Coord, p.Coord) == 0
}
