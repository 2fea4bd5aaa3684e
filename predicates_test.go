package projgeom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		in, out Coord3[int64]
	}{
		{Coord3[int64]{2, 4, 6}, Coord3[int64]{1, 2, 3}},
		{Coord3[int64]{-2, -4, -6}, Coord3[int64]{1, 2, 3}},
		{Coord3[int64]{4, -6, 0}, Coord3[int64]{-2, 3, 0}},
		{Coord3[int64]{0, 0, -5}, Coord3[int64]{0, 0, 1}},
		{Coord3[int64]{0, 0, 0}, Coord3[int64]{0, 0, 0}},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.out {
			t.Errorf("Normalize(%v) = %v, expected %v", c.in, got, c.out)
		}
	}
}

func TestOrientation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Pt[int64](0, 0, 1)
	b := Pt[int64](1, 0, 1)
	c := Pt[int64](0, 1, 1)
	assert.Equal(t, CounterClockwise, Orientation(a, b, c))
	assert.Equal(t, Clockwise, Orientation(a, c, b))
	assert.Equal(t, Collinear, Orientation(a, b, Pt[int64](2, 0, 1)))
}

func TestOrientationRepresentatives(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// scaling a point by -1 must not flip the classification
	a := Pt[int64](0, 0, -1)
	b := Pt[int64](1, 0, 1)
	c := Pt[int64](0, 1, 1)
	assert.Equal(t, CounterClockwise, Orientation(a, b, c))
}

func TestOrientationAtInfinity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// a point at infinity has no chart position, even when the
	// projective determinant of the triple is nonzero
	a := Pt[int64](1, 0, 0)
	b := Pt[int64](1, 0, 1)
	c := Pt[int64](0, 1, 1)
	if d := Dot(Cross(a.Coord, b.Coord), c.Coord); d == 0 {
		t.Fatalf("test triple must not be projectively collinear, det = %d", d)
	}
	assert.Equal(t, Collinear, Orientation(a, b, c))
}

func TestSideOf(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := Ln[int64](0, 1, 0) // the x-axis, directed along +x
	assert.Equal(t, LeftOf, SideOf(Pt[int64](0, 1, 1), l))
	assert.Equal(t, RightOf, SideOf(Pt[int64](0, -1, 1), l))
	assert.Equal(t, OnLine, SideOf(Pt[int64](7, 0, 1), l))
	// antipodal representative of the same point
	assert.Equal(t, LeftOf, SideOf(Pt[int64](0, -1, -1), l))
}
