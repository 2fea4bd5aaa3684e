package ck

import "github.com/npillmayer/projgeom"

// === Perspective Geometry ==================================================
//
// A second degenerate case, with a tilted line at infinity [0, -1, 1]
// and a pair of distinguished base points spanning it. The pole of a
// line is its combination over the base points; the polar of a point
// again collapses onto the line at infinity.

// PerspLineAtInfinity returns the distinguished line at infinity.
func PerspLineAtInfinity[T projgeom.Scalar]() PerspLine[T] {
	return PsLn[T](0, -1, 1)
}

// PerspIRe returns the first base point spanning the line at infinity.
func PerspIRe[T projgeom.Scalar]() PerspPoint[T] {
	return PsPt[T](0, 1, 1)
}

// PerspIIm returns the second base point spanning the line at infinity.
func PerspIIm[T projgeom.Scalar]() PerspPoint[T] {
	return PsPt[T](1, 0, 0)
}

// PerspPoint is a point of the perspective plane.
type PerspPoint[T projgeom.Scalar] struct {
	projgeom.Point[T]
}

// PerspLine is a line of the perspective plane.
type PerspLine[T projgeom.Scalar] struct {
	projgeom.Line[T]
}

// PsPt is a quick notation for constructing a perspective point.
func PsPt[T projgeom.Scalar](x, y, z T) PerspPoint[T] {
	return PerspPoint[T]{projgeom.Pt(x, y, z)}
}

// PsLn is a quick notation for constructing a perspective line.
func PsLn[T projgeom.Scalar](a, b, c T) PerspLine[T] {
	return PerspLine[T]{projgeom.Ln(a, b, c)}
}

// --- Point side ------------------------------------------------------------

func (p PerspPoint[T]) Equal(q PerspPoint[T]) bool {
	return p.Point.Equal(q.Point)
}

func (p PerspPoint[T]) Incident(l PerspLine[T]) bool {
	return p.Point.Incident(l.Line)
}

func (p PerspPoint[T]) Meet(q PerspPoint[T]) PerspLine[T] {
	return PerspLine[T]{p.Point.Meet(q.Point)}
}

func (p PerspPoint[T]) Parametrize(lambda T, q PerspPoint[T], mu T) PerspPoint[T] {
	return PerspPoint[T]{p.Point.Parametrize(lambda, q.Point, mu)}
}

// Perp returns the line at infinity for every point; like its Euclidean
// counterpart the perspective polarity has no finite polar lines, and
// line-triangle constructions over it degenerate.
func (p PerspPoint[T]) Perp() PerspLine[T] {
	tracer().Debugf("perspective polar of %v collapses to the line at infinity", p)
	return PerspLineAtInfinity[T]()
}

// IsPerpendicular: a point is perpendicular to a line only in the
// degenerate sense of the line being the line at infinity.
func (p PerspPoint[T]) IsPerpendicular(l PerspLine[T]) bool {
	return l.Equal(PerspLineAtInfinity[T]())
}

// Midpoint returns the midpoint of p and q relative to the tilted line
// at infinity.
func (p PerspPoint[T]) Midpoint(q PerspPoint[T]) PerspPoint[T] {
	alpha := projgeom.Dot(PerspLineAtInfinity[T]().Coord, q.Coord)
	beta := projgeom.Dot(PerspLineAtInfinity[T]().Coord, p.Coord)
	return p.Parametrize(alpha, q, beta)
}

// --- Line side -------------------------------------------------------------

func (l PerspLine[T]) Equal(m PerspLine[T]) bool {
	return l.Line.Equal(m.Line)
}

func (l PerspLine[T]) Incident(p PerspPoint[T]) bool {
	return l.Line.Incident(p.Point)
}

func (l PerspLine[T]) Meet(m PerspLine[T]) PerspPoint[T] {
	return PerspPoint[T]{l.Line.Meet(m.Line)}
}

func (l PerspLine[T]) Parametrize(lambda T, m PerspLine[T], mu T) PerspLine[T] {
	return PerspLine[T]{l.Line.Parametrize(lambda, m.Line, mu)}
}

// Perp returns the pole of l, the combination of the base points
// weighted by their measurements against l.
func (l PerspLine[T]) Perp() PerspPoint[T] {
	ire, iim := PerspIRe[T](), PerspIIm[T]()
	alpha := projgeom.Dot(ire.Coord, l.Coord)
	beta := projgeom.Dot(iim.Coord, l.Coord)
	return ire.Parametrize(alpha, iim, beta)
}

// IsPerpendicular: a line is perpendicular to a point only in the
// degenerate sense of the point lying on the line at infinity.
func (l PerspLine[T]) IsPerpendicular(p PerspPoint[T]) bool {
	return p.Incident(PerspLineAtInfinity[T]())
}

// IsParallel is a predicate: do l and m meet on the line at infinity?
func (l PerspLine[T]) IsParallel(m PerspLine[T]) bool {
	return l.Meet(m).Incident(PerspLineAtInfinity[T]())
}
