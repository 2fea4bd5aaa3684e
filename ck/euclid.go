package ck

import "github.com/npillmayer/projgeom"

// === Euclidean Geometry ====================================================
//
// The degenerate Cayley–Klein case: the polarity collapses onto the line
// at infinity [0, 0, 1]. The pole of a finite line is its normal
// direction point [a, b, 0], which makes the generic Altitude the true
// Euclidean altitude for point triangles. The polar of a point, however,
// is constantly the line at infinity, so constructions over line
// triangles degenerate; see EuclidPoint.Perp.

// EuclidLineAtInfinity returns the distinguished line at infinity.
func EuclidLineAtInfinity[T projgeom.Scalar]() EuclidLine[T] {
	return EuLn[T](0, 0, 1)
}

// EuclidPoint is a point of the Euclidean plane, finite iff its last
// coordinate is nonzero.
type EuclidPoint[T projgeom.Scalar] struct {
	projgeom.Point[T]
}

// EuclidLine is a line of the Euclidean plane, with normal vector (a, b).
type EuclidLine[T projgeom.Scalar] struct {
	projgeom.Line[T]
}

// EuPt is a quick notation for constructing a Euclidean point.
func EuPt[T projgeom.Scalar](x, y, z T) EuclidPoint[T] {
	return EuclidPoint[T]{projgeom.Pt(x, y, z)}
}

// EuLn is a quick notation for constructing a Euclidean line.
func EuLn[T projgeom.Scalar](a, b, c T) EuclidLine[T] {
	return EuclidLine[T]{projgeom.Ln(a, b, c)}
}

// --- Point side ------------------------------------------------------------

func (p EuclidPoint[T]) Equal(q EuclidPoint[T]) bool {
	return p.Point.Equal(q.Point)
}

func (p EuclidPoint[T]) Incident(l EuclidLine[T]) bool {
	return p.Point.Incident(l.Line)
}

func (p EuclidPoint[T]) Meet(q EuclidPoint[T]) EuclidLine[T] {
	return EuclidLine[T]{p.Point.Meet(q.Point)}
}

func (p EuclidPoint[T]) Parametrize(lambda T, q EuclidPoint[T], mu T) EuclidPoint[T] {
	return EuclidPoint[T]{p.Point.Parametrize(lambda, q.Point, mu)}
}

// Perp returns the line at infinity for every point: the Euclidean
// polarity has no finite polar lines. Constructions that feed this polar
// into Altitude (line-triangle altitudes, Reflect across a point)
// degenerate and are traced here.
//
// TODO compute the polar from the dual degenerate conic diag(1,1,0) so
// that line-triangle altitudes become meaningful.
func (p EuclidPoint[T]) Perp() EuclidLine[T] {
	tracer().Debugf("euclidean polar of %v collapses to the line at infinity", p)
	return EuclidLineAtInfinity[T]()
}

// IsPerpendicular: a point is perpendicular to a line only in the
// degenerate sense of the line being the line at infinity.
func (p EuclidPoint[T]) IsPerpendicular(l EuclidLine[T]) bool {
	return l.Equal(EuclidLineAtInfinity[T]())
}

// Midpoint returns the Euclidean midpoint of p and q, by parametrizing
// with the weights that cancel the two homogeneous scales.
func (p EuclidPoint[T]) Midpoint(q EuclidPoint[T]) EuclidPoint[T] {
	return p.Parametrize(q.Coord[2], q, p.Coord[2])
}

// --- Line side -------------------------------------------------------------

func (l EuclidLine[T]) Equal(m EuclidLine[T]) bool {
	return l.Line.Equal(m.Line)
}

func (l EuclidLine[T]) Incident(p EuclidPoint[T]) bool {
	return l.Line.Incident(p.Point)
}

func (l EuclidLine[T]) Meet(m EuclidLine[T]) EuclidPoint[T] {
	return EuclidPoint[T]{l.Line.Meet(m.Line)}
}

func (l EuclidLine[T]) Parametrize(lambda T, m EuclidLine[T], mu T) EuclidLine[T] {
	return EuclidLine[T]{l.Line.Parametrize(lambda, m.Line, mu)}
}

// Perp returns the pole of l: the point at infinity in l's normal
// direction. The connector of this pole with a point p is the line
// through p perpendicular to l, which is exactly what Altitude computes.
func (l EuclidLine[T]) Perp() EuclidPoint[T] {
	return EuPt(l.Coord[0], l.Coord[1], 0)
}

// IsPerpendicular: a line is perpendicular to a point only in the
// degenerate sense of the point lying at infinity.
func (l EuclidLine[T]) IsPerpendicular(p EuclidPoint[T]) bool {
	return p.Coord[2] == 0
}

// IsParallel is a predicate: do l and m share their direction? Every
// line is parallel to the line at infinity under this test.
func (l EuclidLine[T]) IsParallel(m EuclidLine[T]) bool {
	return projgeom.Cross2(l.normal(), m.normal()) == 0
}

// IsOrthogonal is a predicate: do the normals of l and m stand at a
// right angle?
func (l EuclidLine[T]) IsOrthogonal(m EuclidLine[T]) bool {
	return projgeom.Dot2(l.normal(), m.normal()) == 0
}

// Rot90 returns l rotated a quarter turn, keeping the inhomogeneous part.
func (l EuclidLine[T]) Rot90() EuclidLine[T] {
	return EuLn(-l.Coord[1], l.Coord[0], l.Coord[2])
}

func (l EuclidLine[T]) normal() projgeom.Coord2[T] {
	return projgeom.Coord2[T]{l.Coord[0], l.Coord[1]}
}
