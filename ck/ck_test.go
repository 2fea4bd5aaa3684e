package ck

import (
	"testing"

	"github.com/npillmayer/projgeom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// checkCKPlane exercises the metric laws on a sample triangle: each side
// carries its two vertices, each altitude is perpendicular to its side
// and passes through its vertex, and the three altitudes are concurrent.
func checkCKPlane[P Plane[P, L, T], L Plane[L, P, T], T projgeom.Scalar](t *testing.T, tri [3]P) {
	sides := projgeom.TriDual[P, L](tri)
	assert.True(t, sides[0].Incident(tri[1]), "side 0 must carry vertex 1")
	assert.True(t, sides[0].Incident(tri[2]), "side 0 must carry vertex 2")

	alt := TriAltitude[P, L, T](tri)
	for i := 0; i < 3; i++ {
		if !alt[i].Incident(tri[i]) {
			t.Errorf("altitude %d misses its vertex %v", i, tri[i])
		}
		if !IsPerpendicular[P, L, T](alt[i], sides[i]) {
			t.Errorf("altitude %d is not perpendicular to its side", i)
		}
	}

	o := Orthocenter[P, L, T](tri)
	tracer().Infof("orthocenter = %v", o)
	if !o.Equal(alt[1].Meet(alt[2])) {
		t.Errorf("orthocenter %v differs from the meet of altitudes 1 and 2", o)
	}
	assert.True(t, alt[0].Incident(o), "altitudes must be concurrent")
}

func TestEllipticTriangle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tri := [3]EllipticPoint[int64]{ElPt[int64](13, 23, 32), ElPt[int64](44, -34, 2), ElPt[int64](-2, 12, 23)}
	checkCKPlane[EllipticPoint[int64], EllipticLine[int64], int64](t, tri)
}

func TestEllipticTrilateral(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tri := [3]EllipticLine[int64]{ElLn[int64](13, 23, 32), ElLn[int64](44, -34, 2), ElLn[int64](-2, 12, 23)}
	checkCKPlane[EllipticLine[int64], EllipticPoint[int64], int64](t, tri)
}

func TestHyperbolicTriangle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tri := [3]HyperbolicPoint[int64]{HyPt[int64](13, 23, 32), HyPt[int64](44, -34, 2), HyPt[int64](-2, 12, 23)}
	checkCKPlane[HyperbolicPoint[int64], HyperbolicLine[int64], int64](t, tri)
}

func TestHyperbolicTrilateral(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tri := [3]HyperbolicLine[int64]{HyLn[int64](13, 23, 32), HyLn[int64](44, -34, 2), HyLn[int64](-2, 12, 23)}
	checkCKPlane[HyperbolicLine[int64], HyperbolicPoint[int64], int64](t, tri)
}

func TestMyCKTriangle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tri := [3]MyCKPoint[int64]{CKPt[int64](13, 23, 32), CKPt[int64](44, -34, 2), CKPt[int64](-2, 12, 23)}
	checkCKPlane[MyCKPoint[int64], MyCKLine[int64], int64](t, tri)
}

func TestMyCKTrilateral(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tri := [3]MyCKLine[int64]{CKLn[int64](13, 23, 32), CKLn[int64](44, -34, 2), CKLn[int64](-2, 12, 23)}
	checkCKPlane[MyCKLine[int64], MyCKPoint[int64], int64](t, tri)
}

func TestEuclidTriangle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tri := [3]EuclidPoint[int64]{EuPt[int64](13, 23, 32), EuPt[int64](44, -34, 2), EuPt[int64](-2, 12, 23)}
	checkCKPlane[EuclidPoint[int64], EuclidLine[int64], int64](t, tri)
}

// The line-triangle variant is skipped: the Euclidean point polarity
// collapses to the line at infinity, so line-side altitudes degenerate.

func TestPerspTriangle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tri := [3]PerspPoint[int64]{PsPt[int64](13, 23, 32), PsPt[int64](44, -34, 2), PsPt[int64](-2, 12, 23)}
	checkCKPlane[PerspPoint[int64], PerspLine[int64], int64](t, tri)
}

// The line-triangle variant is skipped for the same reason as Euclid's.

func TestEllipticPerpendicularity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := ElPt[int64](1, 2, 3)
	assert.False(t, p.IsPerpendicular(ElLn[int64](1, 2, 3))) // dot = 14
	assert.True(t, p.IsPerpendicular(ElLn[int64](1, 1, -1)))
}

func TestEllipticReflect(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mirror := ElLn[int64](1, 2, 3)
	p := ElPt[int64](3, 1, 4)
	q := Reflect[EllipticPoint[int64], EllipticLine[int64], int64](mirror, p)
	r := Reflect[EllipticPoint[int64], EllipticLine[int64], int64](mirror, q)
	if !r.Equal(p) {
		t.Errorf("reflecting twice = %v, expected %v", r, p)
	}
}

func TestEuclidAltitude(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := EuPt[int64](1, 1, 1)
	xaxis := EuLn[int64](0, 1, 0)
	alt := Altitude[EuclidPoint[int64], EuclidLine[int64], int64](v, xaxis)
	assert.True(t, alt.Equal(EuLn[int64](1, 0, -1)), "altitude should be the vertical x=1, got %v", alt)
}

func TestEuclidMidpoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := EuPt[int64](0, 0, 1).Midpoint(EuPt[int64](2, 4, 1))
	assert.True(t, m.Equal(EuPt[int64](1, 2, 1)), "midpoint = %v", m)
	// weighted representatives
	m = EuPt[int64](0, 0, 2).Midpoint(EuPt[int64](6, 12, 3))
	assert.True(t, m.Equal(EuPt[int64](1, 2, 1)), "midpoint = %v", m)
}

func TestEuclidParallelism(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := EuLn[int64](1, 2, 3)
	assert.True(t, l.IsParallel(EuLn[int64](2, 4, -1)))
	assert.False(t, l.IsParallel(EuLn[int64](2, -1, 5)))
	assert.True(t, l.IsOrthogonal(EuLn[int64](2, -1, 5)))
	assert.True(t, l.IsOrthogonal(l.Rot90()))
	assert.True(t, l.Rot90().Equal(EuLn[int64](-2, 1, 3)))
}

func TestPerspParallelism(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// both lines pass through (5, 1, 1), which lies at infinity here
	assert.True(t, PsLn[int64](0, 1, -1).IsParallel(PsLn[int64](-1, 0, 5)))
	assert.False(t, PsLn[int64](1, 0, 0).IsParallel(PsLn[int64](0, 1, 0)))
}

func TestPerspMidpoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := PsPt[int64](0, 0, 1)
	q := PsPt[int64](2, 4, 1)
	m := p.Midpoint(q)
	assert.True(t, projgeom.Coincident[PerspPoint[int64], PerspLine[int64]](p, q, m))
	assert.True(t, m.Equal(PsPt[int64](2, 4, -2)), "midpoint = %v", m)
}
