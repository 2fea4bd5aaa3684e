package ck

import "github.com/npillmayer/projgeom"

// === Hyperbolic Geometry ===================================================
//
// The polarity uses the Lorentzian weights (1, 1, -1) on both sides; the
// geometry is self-dual.

// HyperbolicPoint is a point of the hyperbolic plane.
type HyperbolicPoint[T projgeom.Scalar] struct {
	projgeom.Point[T]
}

// HyperbolicLine is a line of the hyperbolic plane.
type HyperbolicLine[T projgeom.Scalar] struct {
	projgeom.Line[T]
}

// HyPt is a quick notation for constructing a hyperbolic point.
func HyPt[T projgeom.Scalar](x, y, z T) HyperbolicPoint[T] {
	return HyperbolicPoint[T]{projgeom.Pt(x, y, z)}
}

// HyLn is a quick notation for constructing a hyperbolic line.
func HyLn[T projgeom.Scalar](a, b, c T) HyperbolicLine[T] {
	return HyperbolicLine[T]{projgeom.Ln(a, b, c)}
}

// --- Point side ------------------------------------------------------------

func (p HyperbolicPoint[T]) Equal(q HyperbolicPoint[T]) bool {
	return p.Point.Equal(q.Point)
}

func (p HyperbolicPoint[T]) Incident(l HyperbolicLine[T]) bool {
	return p.Point.Incident(l.Line)
}

func (p HyperbolicPoint[T]) Meet(q HyperbolicPoint[T]) HyperbolicLine[T] {
	return HyperbolicLine[T]{p.Point.Meet(q.Point)}
}

func (p HyperbolicPoint[T]) Parametrize(lambda T, q HyperbolicPoint[T], mu T) HyperbolicPoint[T] {
	return HyperbolicPoint[T]{p.Point.Parametrize(lambda, q.Point, mu)}
}

// Perp returns the polar line of p under the Lorentzian form.
func (p HyperbolicPoint[T]) Perp() HyperbolicLine[T] {
	return HyLn(p.Coord[0], p.Coord[1], -p.Coord[2])
}

// IsPerpendicular is the Lorentzian point/line form.
func (p HyperbolicPoint[T]) IsPerpendicular(l HyperbolicLine[T]) bool {
	return projgeom.Dot(p.Perp().Coord, l.Coord) == 0
}

// --- Line side -------------------------------------------------------------

func (l HyperbolicLine[T]) Equal(m HyperbolicLine[T]) bool {
	return l.Line.Equal(m.Line)
}

func (l HyperbolicLine[T]) Incident(p HyperbolicPoint[T]) bool {
	return l.Line.Incident(p.Point)
}

func (l HyperbolicLine[T]) Meet(m HyperbolicLine[T]) HyperbolicPoint[T] {
	return HyperbolicPoint[T]{l.Line.Meet(m.Line)}
}

func (l HyperbolicLine[T]) Parametrize(lambda T, m HyperbolicLine[T], mu T) HyperbolicLine[T] {
	return HyperbolicLine[T]{l.Line.Parametrize(lambda, m.Line, mu)}
}

// Perp returns the pole point of l under the Lorentzian form.
func (l HyperbolicLine[T]) Perp() HyperbolicPoint[T] {
	return HyPt(l.Coord[0], l.Coord[1], -l.Coord[2])
}

// IsPerpendicular is the Lorentzian line/point form.
func (l HyperbolicLine[T]) IsPerpendicular(p HyperbolicPoint[T]) bool {
	return projgeom.Dot(l.Perp().Coord, p.Coord) == 0
}
