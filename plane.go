package projgeom

// === Duality Contracts =====================================================

// ProjectivePlanePrimitive describes one side of the point/line duality:
// Self is instantiated with the element's own type and Dual with its
// counterpart. Point[T] satisfies it with Dual = Line[T] and vice versa,
// and so do the geometry wrappers of sub-package ck. Every law below is
// written once against this contract and serves both orientations.
type ProjectivePlanePrimitive[Self, Dual any] interface {
	Equal(Self) bool
	Incident(Dual) bool
	Meet(Self) Dual
}

// ProjectivePlane extends the primitive contract with coordinate access
// and the Plücker parametrization, which the measurement-based laws
// (harmonic conjugation, involution) require.
type ProjectivePlane[Self, Dual any, T Scalar] interface {
	ProjectivePlanePrimitive[Self, Dual]
	Coords() Coord3[T]
	Parametrize(T, Self, T) Self
}

// === Projective-Plane Laws =================================================
//
// Go cannot infer a type parameter that occurs only in another parameter's
// constraint, so callers instantiate the dual slot explicitly, e.g.
//
//	projgeom.Coincident[Point[int], Line[int]](p, q, r)

// Coincident is a predicate: do three points lie on a common line (or,
// dually, do three lines pass through a common point)? Proportional
// triples are trivially coincident.
func Coincident[P ProjectivePlanePrimitive[P, L], L ProjectivePlanePrimitive[L, P]](a, b, c P) bool {
	return a.Meet(b).Incident(c)
}

// TriDual returns, for a triangle (a1,a2,a3), the trilateral of its three
// sides in vertex order: the first line is the side opposite a1, and so
// on. Dually it maps a trilateral to its three corner points. A coincident
// triple yields degenerate elements; no error is signaled.
func TriDual[P ProjectivePlanePrimitive[P, L], L ProjectivePlanePrimitive[L, P]](tri [3]P) [3]L {
	return [3]L{
		tri[1].Meet(tri[2]),
		tri[2].Meet(tri[0]),
		tri[0].Meet(tri[1]),
	}
}

// HarmConj returns the harmonic conjugate of c with respect to the base
// pair (a, b): the fourth element completing (a, b; c) to a harmonic
// range (cross-ratio -1). For fixed a and b the operation is an
// involution: HarmConj(a, b, HarmConj(a, b, c)) equals c as an
// equivalence class.
//
// The result is meaningful only when a, b, c are coincident. If the
// coefficients both vanish (c conjugate to the whole base pencil), the
// degenerate zero element is returned and traced, not signaled.
func HarmConj[P ProjectivePlane[P, L, T], L ProjectivePlane[L, P, T], T Scalar](a, b, c P) P {
	ca, cb, cc := a.Coords(), b.Coords(), c.Coords()
	ab := Dot(ca, cb)
	ac := Dot(ca, cc)
	bc := Dot(cb, cc)
	lambda := ac*Dot(cb, cb) - bc*ab
	mu := ac*ab - bc*Dot(ca, ca)
	h := a.Parametrize(lambda, b, mu)
	if lambda == 0 && mu == 0 {
		tracer().Errorf("harmonic conjugate of %v w.r.t. (%v,%v) is degenerate", c, a, b)
	}
	return h
}

// IsHarmonic is a predicate: does d complete (a, b; c) to a harmonic range?
func IsHarmonic[P ProjectivePlane[P, L, T], L ProjectivePlane[L, P, T], T Scalar](a, b, c, d P) bool {
	return HarmConj[P, L, T](a, b, c).Equal(d)
}

// Involution maps p to its mirror image under the involution fixed by an
// origin point and a mirror line (dually by an origin line and a mirror
// point): the harmonic conjugate of p with respect to the origin and the
// trace of p's connector on the mirror.
func Involution[P ProjectivePlane[P, L, T], L ProjectivePlane[L, P, T], T Scalar](origin P, mirror L, p P) P {
	po := p.Meet(origin)
	b := po.Meet(mirror)
	return HarmConj[P, L, T](origin, b, p)
}

// Perspective is a predicate: are two triangles perspective from a point,
// i.e. are the three connectors of corresponding vertices concurrent?
func Perspective[P ProjectivePlanePrimitive[P, L], L ProjectivePlanePrimitive[L, P]](tri1, tri2 [3]P) bool {
	o := tri1[0].Meet(tri2[0]).Meet(tri1[1].Meet(tri2[1]))
	return tri1[2].Meet(tri2[2]).Incident(o)
}

// === Diagnostics ===========================================================
//
// Self-consistency assertions over the laws above. These are test aids,
// not production APIs; clients must not build behavior on them.

// CheckAxiom verifies the projective-plane axioms on a sample: meet is
// symmetric, the connector of p and q carries both, and meeting it with l
// yields a point on both lines.
func CheckAxiom[P ProjectivePlanePrimitive[P, L], L ProjectivePlanePrimitive[L, P]](p, q P, l L) bool {
	m := p.Meet(q)
	if !m.Equal(q.Meet(p)) {
		return false
	}
	if !m.Incident(p) || !m.Incident(q) {
		return false
	}
	r := l.Meet(m)
	return r.Incident(l) && r.Incident(m)
}

// CheckPappus verifies Pappus's hexagon theorem for two coincident point
// triples: the three cross-connector intersections are collinear.
func CheckPappus[P ProjectivePlanePrimitive[P, L], L ProjectivePlanePrimitive[L, P]](co1, co2 [3]P) bool {
	a, b, c := co1[0], co1[1], co1[2]
	d, e, f := co2[0], co2[1], co2[2]
	g := a.Meet(e).Meet(b.Meet(d))
	h := a.Meet(f).Meet(c.Meet(d))
	i := b.Meet(f).Meet(c.Meet(e))
	return Coincident[P, L](g, h, i)
}

// CheckDesargue verifies Desargues's theorem on a sample pair of
// triangles: perspective from a point iff perspective from a line.
func CheckDesargue[P ProjectivePlanePrimitive[P, L], L ProjectivePlanePrimitive[L, P]](tri1, tri2 [3]P) bool {
	trid1 := TriDual[P, L](tri1)
	trid2 := TriDual[P, L](tri2)
	b1 := Perspective[P, L](tri1, tri2)
	b2 := Perspective[L, P](trid1, trid2)
	return b1 == b2
}
