/*
Package viz renders projective configurations as SVG fragments, for
visual inspection of constructions built with package projgeom. The
exact homogeneous world is projected onto an affine canvas here, so this
is the one package of the module that leaves integer arithmetic.

Points at infinity have no canvas position; drawing one yields an empty
fragment and a debug trace. Triangles are clipped against the viewport
before emitting, so far-away vertices do not produce degenerate SVG.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/projgeom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Renderer maps world coordinates onto an SVG canvas of fixed pixel
// size. World origin sits at the canvas center, the y axis points up,
// and one world unit covers Scale pixels.
type Renderer[T projgeom.Scalar] struct {
	Width   int
	Height  int
	Scale   float64
	offsetX float64
	offsetY float64
}

// NewRenderer creates a renderer for a canvas of width x height pixels
// with the given world-to-pixel scale.
func NewRenderer[T projgeom.Scalar](width, height int, scale float64) *Renderer[T] {
	return &Renderer[T]{
		Width:   width,
		Height:  height,
		Scale:   scale,
		offsetX: float64(width) / 2,
		offsetY: float64(height) / 2,
	}
}

// affine projects a point onto canvas coordinates. ok is false for
// points at infinity and for the degenerate zero element.
func (r *Renderer[T]) affine(p projgeom.Point[T]) (x, y float64, ok bool) {
	if p.Coord[2] == 0 {
		tracer().Debugf("point %v has no canvas position", p)
		return 0, 0, false
	}
	z := float64(p.Coord[2])
	wx := float64(p.Coord[0]) / z
	wy := float64(p.Coord[1]) / z
	return r.offsetX + wx*r.Scale, r.offsetY - wy*r.Scale, true
}

// Start returns the opening SVG element.
func (r *Renderer[T]) Start() string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		r.Width, r.Height, r.Width, r.Height)
}

// End returns the closing SVG element.
func (r *Renderer[T]) End() string {
	return "</svg>"
}

// DrawPoint emits a filled circle marker for a point.
func (r *Renderer[T]) DrawPoint(p projgeom.Point[T], color string, radius float64) string {
	x, y, ok := r.affine(p)
	if !ok {
		return ""
	}
	return fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" />`, x, y, radius, color)
}

// DrawLine emits a full line, spanning the whole canvas. The line at
// infinity has no canvas image and yields an empty fragment.
func (r *Renderer[T]) DrawLine(l projgeom.Line[T], color string, strokeWidth float64) string {
	a := float64(l.Coord[0])
	b := float64(l.Coord[1])
	c := float64(l.Coord[2])
	if a == 0 && b == 0 {
		tracer().Debugf("line %v has no canvas image", l)
		return ""
	}
	// base point of a*x+b*y+c=0, via the larger coefficient
	var bx, by float64
	if math.Abs(b) >= math.Abs(a) {
		bx, by = 0, -c/b
	} else {
		bx, by = -c/a, 0
	}
	// direction (-b, a), stretched past the canvas diagonal
	norm := math.Hypot(a, b)
	ext := (float64(r.Width) + float64(r.Height)) / r.Scale
	dx := -b / norm * ext
	dy := a / norm * ext
	x1 := r.offsetX + (bx-dx)*r.Scale
	y1 := r.offsetY - (by-dy)*r.Scale
	x2 := r.offsetX + (bx+dx)*r.Scale
	y2 := r.offsetY - (by+dy)*r.Scale
	return fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" />`,
		x1, y1, x2, y2, color, strokeWidth)
}

// DrawSegment emits the segment between two finite points.
func (r *Renderer[T]) DrawSegment(p1, p2 projgeom.Point[T], color string, strokeWidth float64) string {
	x1, y1, ok1 := r.affine(p1)
	x2, y2, ok2 := r.affine(p2)
	if !ok1 || !ok2 {
		return ""
	}
	return fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" />`,
		x1, y1, x2, y2, color, strokeWidth)
}

// viewport returns the canvas rectangle as a clip polygon.
func (r *Renderer[T]) viewport() polyclip.Polygon {
	w := float64(r.Width)
	h := float64(r.Height)
	return polyclip.Polygon{{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h},
	}}
}

// DrawTriangle emits a triangle, clipped against the viewport. Vertices
// far outside the canvas are cut off at the border; a triangle entirely
// outside (or with a vertex at infinity) yields an empty fragment.
func (r *Renderer[T]) DrawTriangle(vertices [3]projgeom.Point[T], fill, stroke string, strokeWidth float64) string {
	var contour polyclip.Contour
	for _, v := range vertices {
		x, y, ok := r.affine(v)
		if !ok {
			return ""
		}
		contour = append(contour, polyclip.Point{X: x, Y: y})
	}
	clipped := polyclip.Polygon{contour}.Construct(polyclip.INTERSECTION, r.viewport())
	if len(clipped) == 0 {
		tracer().Debugf("triangle %v lies outside the viewport", vertices)
		return ""
	}
	var sb strings.Builder
	for _, ct := range clipped {
		var pts strings.Builder
		for _, pt := range ct {
			fmt.Fprintf(&pts, "%.2f,%.2f ", pt.X, pt.Y)
		}
		fmt.Fprintf(&sb, `<polygon points="%s" fill="%s" stroke="%s" stroke-width="%.2f" />`,
			strings.TrimSpace(pts.String()), fill, stroke, strokeWidth)
	}
	return sb.String()
}

// DrawCircle emits a circle of the given world radius around a center.
func (r *Renderer[T]) DrawCircle(center projgeom.Point[T], radius float64, fill, stroke string, strokeWidth float64) string {
	cx, cy, ok := r.affine(center)
	if !ok {
		return ""
	}
	return fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%.2f" />`,
		cx, cy, radius*r.Scale, fill, stroke, strokeWidth)
}

// DrawText emits a text label anchored at a point.
func (r *Renderer[T]) DrawText(p projgeom.Point[T], text, color string, fontSize float64) string {
	x, y, ok := r.affine(p)
	if !ok {
		return ""
	}
	return fmt.Sprintf(`<text x="%.2f" y="%.2f" fill="%s" font-size="%.2f">%s</text>`,
		x, y, color, fontSize, text)
}

// DrawAxes emits the two coordinate axes.
func (r *Renderer[T]) DrawAxes(color string, strokeWidth float64) string {
	return r.DrawLine(projgeom.Ln[T](0, 1, 0), color, strokeWidth) +
		r.DrawLine(projgeom.Ln[T](1, 0, 0), color, strokeWidth)
}

// DrawGrid emits grid lines with the given world-unit spacing, covering
// the visible part of the plane.
func (r *Renderer[T]) DrawGrid(spacing T, color string, strokeWidth float64) string {
	if spacing <= 0 {
		return ""
	}
	ext := (r.offsetX + r.offsetY) / r.Scale
	n := int(ext/float64(spacing)) + 1
	var sb strings.Builder
	for i := -n; i <= n; i++ {
		d := T(i) * spacing
		// vertical line x = d and horizontal line y = d
		sb.WriteString(r.DrawLine(projgeom.Ln[T](1, 0, -d), color, strokeWidth))
		sb.WriteString(r.DrawLine(projgeom.Ln[T](0, 1, -d), color, strokeWidth))
	}
	return sb.String()
}
