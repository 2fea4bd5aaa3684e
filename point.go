package projgeom

import "fmt"

// === Point and Line ========================================================

// A Point of the projective plane, given by a homogeneous coordinate
// triple. A Point is an equivalence class: two Points are the same point
// iff their triples are proportional, not iff they are identical. Points
// are immutable values; every operation returns a new value.
//
// The all-zero triple is not a valid Point. The algebra is total and will
// hand it back as the result of degenerate operations (meeting a point
// with itself); use Degenerate to test for it.
type Point[T Scalar] struct {
	Coord Coord3[T]
}

// A Line of the projective plane. Structurally identical to Point, with
// the same coordinate shape and the same equivalence rule, but kept a
// distinct type so that point/line confusion is a compile-time error
// rather than a convention. Every Point method below has its exact dual
// here, with Point and Line swapped.
type Line[T Scalar] struct {
	Coord Coord3[T]
}

// NewPoint creates a Point from a homogeneous coordinate triple.
func NewPoint[T Scalar](coord Coord3[T]) Point[T] {
	return Point[T]{Coord: coord}
}

// NewLine creates a Line from a homogeneous coordinate triple.
func NewLine[T Scalar](coord Coord3[T]) Line[T] {
	return Line[T]{Coord: coord}
}

// Pt is a quick notation for constructing a point from coordinates.
func Pt[T Scalar](x, y, z T) Point[T] {
	return Point[T]{Coord: Coord3[T]{x, y, z}}
}

// Ln is a quick notation for constructing a line from coefficients.
func Ln[T Scalar](a, b, c T) Line[T] {
	return Line[T]{Coord: Coord3[T]{a, b, c}}
}

// --- Point side ------------------------------------------------------------

// Coords returns the homogeneous coordinate triple of p.
func (p Point[T]) Coords() Coord3[T] {
	return p.Coord
}

// Degenerate is a predicate: is p the invalid all-zero element?
func (p Point[T]) Degenerate() bool {
	return p.Coord == Coord3[T]{}
}

// Equal compares two points as equivalence classes: true iff the cross
// product of their triples vanishes. The degenerate zero element compares
// equal to everything under this rule.
func (p Point[T]) Equal(q Point[T]) bool {
	return Cross(p.Coord, q.Coord) == Coord3[T]{}
}

// Incident is a predicate: does p lie on l?
func (p Point[T]) Incident(l Line[T]) bool {
	return Dot(p.Coord, l.Coord) == 0
}

// Meet returns the line through p and q. Meeting a point with itself (or
// any proportional point) yields the degenerate zero line; callers who
// care must check Equal beforehand.
func (p Point[T]) Meet(q Point[T]) Line[T] {
	return Line[T]{Coord: Cross(p.Coord, q.Coord)}
}

// Parametrize returns lambda*p + mu*q, a point on the line through p
// and q. At (1,0) it is p, at (0,1) it is q.
func (p Point[T]) Parametrize(lambda T, q Point[T], mu T) Point[T] {
	return Point[T]{Coord: Plucker(lambda, p.Coord, mu, q.Coord)}
}

// Dot is the basic measurement between a point and a line; it vanishes
// exactly when the two are incident.
func (p Point[T]) Dot(l Line[T]) T {
	return Dot(p.Coord, l.Coord)
}

// IsPerpendicular is the projective fallback: a plane without metric
// structure has no stronger notion of perpendicularity than incidence.
// The geometries in sub-package ck supply the stronger forms.
func (p Point[T]) IsPerpendicular(l Line[T]) bool {
	return p.Incident(l)
}

// Pretty Stringer, homogeneous notation.
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v : %v : %v)", p.Coord[0], p.Coord[1], p.Coord[2])
}

// --- Line side (the dual of everything above) -------------------------------

// Coords returns the homogeneous coefficient triple of l.
func (l Line[T]) Coords() Coord3[T] {
	return l.Coord
}

// Degenerate is a predicate: is l the invalid all-zero element?
func (l Line[T]) Degenerate() bool {
	return l.Coord == Coord3[T]{}
}

// Equal compares two lines as equivalence classes.
func (l Line[T]) Equal(m Line[T]) bool {
	return Cross(l.Coord, m.Coord) == Coord3[T]{}
}

// Incident is a predicate: does l pass through p?
func (l Line[T]) Incident(p Point[T]) bool {
	return Dot(l.Coord, p.Coord) == 0
}

// Meet returns the intersection point of l and m, degenerate when the
// lines are proportional.
func (l Line[T]) Meet(m Line[T]) Point[T] {
	return Point[T]{Coord: Cross(l.Coord, m.Coord)}
}

// Parametrize returns lambda*l + mu*m, a line of the pencil through the
// meet of l and m.
func (l Line[T]) Parametrize(lambda T, m Line[T], mu T) Line[T] {
	return Line[T]{Coord: Plucker(lambda, l.Coord, mu, m.Coord)}
}

// Dot is the basic measurement between a line and a point.
func (l Line[T]) Dot(p Point[T]) T {
	return Dot(l.Coord, p.Coord)
}

// IsPerpendicular is the projective fallback, identical to incidence.
func (l Line[T]) IsPerpendicular(p Point[T]) bool {
	return l.Incident(p)
}

// Pretty Stringer, homogeneous notation.
func (l Line[T]) String() string {
	return fmt.Sprintf("[%v : %v : %v]", l.Coord[0], l.Coord[1], l.Coord[2])
}
