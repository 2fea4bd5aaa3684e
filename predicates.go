package projgeom

// Orientation of an ordered point triple in the affine chart.
type Orient int8

const (
	Collinear Orient = iota
	CounterClockwise
	Clockwise
)

func (o Orient) String() string {
	switch o {
	case CounterClockwise:
		return "counter-clockwise"
	case Clockwise:
		return "clockwise"
	}
	return "collinear"
}

// Side of a point relative to a directed line, in the affine chart.
type Side int8

const (
	OnLine Side = iota
	LeftOf
	RightOf
)

func (s Side) String() string {
	switch s {
	case LeftOf:
		return "left"
	case RightOf:
		return "right"
	}
	return "on-line"
}

func sgn[T Scalar](x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func gcd[T Scalar](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Normalize reduces a homogeneous coordinate tuple to canonical form: the
// entries are divided by their greatest common divisor and the sign is
// fixed so that the last non-zero entry is positive. Equal equivalence
// classes normalize to identical tuples; the zero tuple stays zero.
func Normalize[T Scalar](v Coord3[T]) Coord3[T] {
	g := gcd(gcd(v[0], v[1]), v[2])
	if g == 0 {
		return v
	}
	v = Coord3[T]{v[0] / g, v[1] / g, v[2] / g}
	lead := v[2]
	if lead == 0 {
		lead = v[1]
	}
	if lead == 0 {
		lead = v[0]
	}
	if lead < 0 {
		v = Coord3[T]{-v[0], -v[1], -v[2]}
	}
	return v
}

// Orientation classifies the ordered triple (a, b, c) of finite points as
// counter-clockwise, clockwise, or collinear in the affine chart. The
// determinant test is exact; the sign of each z coordinate is folded in so
// that equivalent homogeneous representatives classify alike. A point at
// infinity has no chart position and forces the zero z sign through the
// product, so any triple containing one classifies as Collinear.
func Orientation[T Scalar](a, b, c Point[T]) Orient {
	det := sgn(Dot(Cross(a.Coord, b.Coord), c.Coord))
	det *= sgn(a.Coord[2]) * sgn(b.Coord[2]) * sgn(c.Coord[2])
	switch {
	case det > 0:
		return CounterClockwise
	case det < 0:
		return Clockwise
	}
	return Collinear
}

// SideOf classifies a finite point against a directed line in the affine
// chart. The incidence form is exact; the z sign of the point folds in so
// that representatives of one point class agree.
func SideOf[T Scalar](p Point[T], l Line[T]) Side {
	d := sgn(Dot(p.Coord, l.Coord)) * sgn(p.Coord[2])
	switch {
	case d > 0:
		return LeftOf
	case d < 0:
		return RightOf
	}
	return OnLine
}
