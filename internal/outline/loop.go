// Package outline reconstructs closed part outlines from unordered segment
// soup: loop assembly via tolerance-based endpoint matching, outer/hole
// classification, and orientation normalization.
package outline

import "github.com/Clinery1/laser-cam/internal/geom"

// Loop is a closed, oriented sequence of vertices. The last vertex
// implicitly connects back to the first. Consecutive vertices are never
// coincident within the assembly epsilon, and assembled loops are simple.
type Loop []geom.Point2

// SignedArea returns the shoelace area; positive means counter-clockwise.
func (l Loop) SignedArea() float64 {
	return geom.SignedArea(l)
}

// IsCCW reports whether the loop winds counter-clockwise.
func (l Loop) IsCCW() bool {
	return l.SignedArea() > 0
}

// Reversed returns the loop with the opposite winding, keeping the same
// start vertex.
func (l Loop) Reversed() Loop {
	n := len(l)
	out := make(Loop, n)
	if n == 0 {
		return out
	}
	out[0] = l[0]
	for i := 1; i < n; i++ {
		out[i] = l[n-i]
	}
	return out
}

// Oriented returns the loop wound counter-clockwise if ccw is true, else
// clockwise. The receiver is returned unchanged when already correct.
func (l Loop) Oriented(ccw bool) Loop {
	if l.IsCCW() == ccw {
		return l
	}
	return l.Reversed()
}

// Centroid returns the vertex average of the loop.
func (l Loop) Centroid() geom.Point2 {
	return geom.Centroid(l)
}

// Contains tests whether p lies inside the loop.
func (l Loop) Contains(p geom.Point2) bool {
	return geom.PointInPolygon(p, l)
}
