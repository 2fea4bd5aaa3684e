package viz

import (
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/projgeom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSVGStructure(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := NewRenderer[int64](400, 300, 20)
	var sb strings.Builder
	sb.WriteString(r.Start())
	sb.WriteString(r.DrawAxes("gray", 1))
	sb.WriteString(r.DrawPoint(projgeom.Pt[int64](1, 2, 1), "red", 3))
	sb.WriteString(r.DrawLine(projgeom.Ln[int64](1, -1, 1), "blue", 1.5))
	sb.WriteString(r.End())
	svg := sb.String()
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, "<circle")
	assert.Contains(t, svg, "<line")
	assert.Contains(t, svg, `width="400"`)
}

func TestPointAtInfinity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := NewRenderer[int64](400, 300, 20)
	assert.Equal(t, "", r.DrawPoint(projgeom.Pt[int64](1, 2, 0), "red", 3))
	assert.Equal(t, "", r.DrawSegment(projgeom.Pt[int64](0, 0, 1), projgeom.Pt[int64](1, 0, 0), "red", 1))
	assert.Equal(t, "", r.DrawLine(projgeom.Ln[int64](0, 0, 1), "red", 1))
}

func TestDrawPointPlacement(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := NewRenderer[int64](400, 300, 20)
	// world origin maps to the canvas center, y axis points up
	assert.Contains(t, r.DrawPoint(projgeom.Pt[int64](0, 0, 1), "red", 3), `cx="200.00" cy="150.00"`)
	assert.Contains(t, r.DrawPoint(projgeom.Pt[int64](1, 1, 1), "red", 3), `cx="220.00" cy="130.00"`)
	// a non-canonical representative lands on the same pixel
	assert.Contains(t, r.DrawPoint(projgeom.Pt[int64](-2, -2, -2), "red", 3), `cx="220.00" cy="130.00"`)
}

func TestDrawTriangleClipped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := NewRenderer[int64](400, 300, 20)
	// one vertex far beyond the right canvas border
	tri := [3]projgeom.Point[int64]{
		projgeom.Pt[int64](-2, -2, 1),
		projgeom.Pt[int64](1000, 0, 1),
		projgeom.Pt[int64](-2, 2, 1),
	}
	svg := r.DrawTriangle(tri, "none", "black", 1)
	assert.Contains(t, svg, "<polygon")
	// all emitted coordinates stay within the canvas
	for _, pair := range strings.Split(extractPoints(svg), " ") {
		xy := strings.Split(pair, ",")
		if len(xy) != 2 {
			continue
		}
		assertInRange(t, xy[0], 0, 400)
		assertInRange(t, xy[1], 0, 300)
	}
}

func TestDrawTriangleOutside(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := NewRenderer[int64](400, 300, 20)
	tri := [3]projgeom.Point[int64]{
		projgeom.Pt[int64](100, 100, 1),
		projgeom.Pt[int64](101, 100, 1),
		projgeom.Pt[int64](100, 101, 1),
	}
	assert.Equal(t, "", r.DrawTriangle(tri, "none", "black", 1))
	// a vertex at infinity cannot be projected at all
	tri[1] = projgeom.Pt[int64](1, 0, 0)
	assert.Equal(t, "", r.DrawTriangle(tri, "none", "black", 1))
}

func TestDrawGrid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := NewRenderer[int64](100, 100, 10)
	svg := r.DrawGrid(1, "lightgray", 0.5)
	assert.True(t, strings.Count(svg, "<line") >= 10)
	assert.Equal(t, "", r.DrawGrid(0, "lightgray", 0.5))
}

func extractPoints(svg string) string {
	start := strings.Index(svg, `points="`)
	if start < 0 {
		return ""
	}
	start += len(`points="`)
	end := strings.Index(svg[start:], `"`)
	if end < 0 {
		return ""
	}
	return svg[start : start+end]
}

func assertInRange(t *testing.T, s string, lo, hi float64) {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Errorf("cannot parse coordinate %q", s)
		return
	}
	if v < lo-0.01 || v > hi+0.01 {
		t.Errorf("coordinate %v outside [%v, %v]", v, lo, hi)
	}
}
