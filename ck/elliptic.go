package ck

import "github.com/npillmayer/projgeom"

// === Elliptic Geometry =====================================================
//
// The polarity uses identity weights, so a point and its polar line share
// coordinates and the geometry is self-dual.

// EllipticPoint is a point of the elliptic plane.
type EllipticPoint[T projgeom.Scalar] struct {
	projgeom.Point[T]
}

// EllipticLine is a line of the elliptic plane.
type EllipticLine[T projgeom.Scalar] struct {
	projgeom.Line[T]
}

// ElPt is a quick notation for constructing an elliptic point.
func ElPt[T projgeom.Scalar](x, y, z T) EllipticPoint[T] {
	return EllipticPoint[T]{projgeom.Pt(x, y, z)}
}

// ElLn is a quick notation for constructing an elliptic line.
func ElLn[T projgeom.Scalar](a, b, c T) EllipticLine[T] {
	return EllipticLine[T]{projgeom.Ln(a, b, c)}
}

// --- Point side ------------------------------------------------------------

func (p EllipticPoint[T]) Equal(q EllipticPoint[T]) bool {
	return p.Point.Equal(q.Point)
}

func (p EllipticPoint[T]) Incident(l EllipticLine[T]) bool {
	return p.Point.Incident(l.Line)
}

func (p EllipticPoint[T]) Meet(q EllipticPoint[T]) EllipticLine[T] {
	return EllipticLine[T]{p.Point.Meet(q.Point)}
}

func (p EllipticPoint[T]) Parametrize(lambda T, q EllipticPoint[T], mu T) EllipticPoint[T] {
	return EllipticPoint[T]{p.Point.Parametrize(lambda, q.Point, mu)}
}

// Perp returns the polar line of p, sharing p's coordinates.
func (p EllipticPoint[T]) Perp() EllipticLine[T] {
	return EllipticLine[T]{projgeom.NewLine(p.Coord)}
}

// IsPerpendicular is the elliptic point/line form, the plain dot product.
func (p EllipticPoint[T]) IsPerpendicular(l EllipticLine[T]) bool {
	return projgeom.Dot(p.Coord, l.Coord) == 0
}

// --- Line side -------------------------------------------------------------

func (l EllipticLine[T]) Equal(m EllipticLine[T]) bool {
	return l.Line.Equal(m.Line)
}

func (l EllipticLine[T]) Incident(p EllipticPoint[T]) bool {
	return l.Line.Incident(p.Point)
}

func (l EllipticLine[T]) Meet(m EllipticLine[T]) EllipticPoint[T] {
	return EllipticPoint[T]{l.Line.Meet(m.Line)}
}

func (l EllipticLine[T]) Parametrize(lambda T, m EllipticLine[T], mu T) EllipticLine[T] {
	return EllipticLine[T]{l.Line.Parametrize(lambda, m.Line, mu)}
}

// Perp returns the pole point of l, sharing l's coefficients.
func (l EllipticLine[T]) Perp() EllipticPoint[T] {
	return EllipticPoint[T]{projgeom.NewPoint(l.Coord)}
}

// IsPerpendicular is the elliptic line/point form, the plain dot product.
func (l EllipticLine[T]) IsPerpendicular(p EllipticPoint[T]) bool {
	return projgeom.Dot(l.Coord, p.Coord) == 0
}
