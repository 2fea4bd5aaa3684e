package projgeom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// checkPlane exercises the projective-plane laws on a sample pair of
// elements, for either orientation of the duality.
func checkPlane[P ProjectivePlane[P, L, T], L ProjectivePlane[L, P, T], T Scalar](t *testing.T, p, q P) {
	l := p.Meet(q)
	if !l.Equal(q.Meet(p)) {
		t.Errorf("meet is not symmetric: %v vs %v", l, q.Meet(p))
	}
	assert.True(t, l.Incident(p), "connector must carry %v", p)
	assert.True(t, l.Incident(q), "connector must carry %v", q)

	pq := p.Parametrize(2, q, 3)
	assert.True(t, Coincident[P, L](p, q, pq), "parametrized element must stay on the connector")

	h := HarmConj[P, L, T](p, q, pq)
	tracer().Infof("harmonic conjugate of %v = %v", pq, h)
	if !HarmConj[P, L, T](p, q, h).Equal(pq) {
		t.Errorf("harmonic conjugation is not an involution for %v, %v, %v", p, q, pq)
	}
}

func TestPlaneLawsForPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	checkPlane[Point[int64], Line[int64], int64](t, Pt[int64](1, 3, 2), Pt[int64](-2, 1, -1))
}

func TestPlaneLawsForLines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	checkPlane[Line[int64], Point[int64], int64](t, Ln[int64](1, 3, 2), Ln[int64](-2, 1, -1))
}

func TestHarmConjValue(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Pt[int64](1, 3, 2)
	b := Pt[int64](-2, 1, -1)
	c := a.Parametrize(2, b, 3) // 2a + 3b
	h := HarmConj[Point[int64], Line[int64], int64](a, b, c)
	// the conjugate of 2a+3b with respect to (a, b) is 2a-3b
	if !h.Equal(a.Parametrize(2, b, -3)) {
		t.Errorf("harmonic conjugate = %v, expected 2a-3b = %v", h, a.Parametrize(2, b, -3))
	}
}

func TestIsHarmonic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Pt[int64](1, 0, 0)
	b := Pt[int64](0, 1, 0)
	c := a.Parametrize(1, b, 1)
	d := a.Parametrize(1, b, -1)
	assert.True(t, IsHarmonic[Point[int64], Line[int64], int64](a, b, c, d))
	assert.False(t, IsHarmonic[Point[int64], Line[int64], int64](a, b, c, Pt[int64](2, 1, 0)))
}

func TestInvolutionIsSelfInverse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	origin := Pt[int64](1, 2, 3)
	mirror := Ln[int64](2, -1, 1)
	p := Pt[int64](3, 1, 4)
	q := Involution[Point[int64], Line[int64], int64](origin, mirror, p)
	r := Involution[Point[int64], Line[int64], int64](origin, mirror, q)
	if !r.Equal(p) {
		t.Errorf("involution applied twice = %v, expected %v", r, p)
	}
}

func TestPerspectiveTriangles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := Pt[int64](1, 1, 1)
	tri1 := [3]Point[int64]{Pt[int64](13, 23, 32), Pt[int64](44, -34, 2), Pt[int64](-2, 12, 23)}
	// project each vertex along its connector with o
	tri2 := [3]Point[int64]{
		tri1[0].Parametrize(1, o, 5),
		tri1[1].Parametrize(3, o, 2),
		tri1[2].Parametrize(2, o, -7),
	}
	assert.True(t, Perspective[Point[int64], Line[int64]](tri1, tri2))
	tri2[2] = Pt[int64](5, 0, 1)
	assert.False(t, Perspective[Point[int64], Line[int64]](tri1, tri2))
}

func TestCheckAxiom(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Pt[int64](1, 3, 2)
	q := Pt[int64](-2, 1, -1)
	l := Ln[int64](4, 0, -1)
	assert.True(t, CheckAxiom[Point[int64], Line[int64]](p, q, l))
}

func TestCheckPappus(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	co1 := [3]Point[int64]{Pt[int64](1, 0, 1), Pt[int64](2, 0, 1), Pt[int64](3, 0, 1)}
	co2 := [3]Point[int64]{Pt[int64](1, 1, 1), Pt[int64](2, 2, 1), Pt[int64](3, 3, 1)}
	assert.True(t, CheckPappus[Point[int64], Line[int64]](co1, co2))
}

func TestCheckDesargue(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tri1 := [3]Point[int64]{Pt[int64](13, 23, 32), Pt[int64](44, -34, 2), Pt[int64](-2, 12, 23)}
	tri2 := [3]Point[int64]{Pt[int64](1, 2, 3), Pt[int64](4, 5, 6), Pt[int64](7, 8, 10)}
	assert.True(t, CheckDesargue[Point[int64], Line[int64]](tri1, tri2))
}
