package geom

// SignedArea computes the signed area of a closed polygon using the shoelace
// formula. Positive for counter-clockwise winding in the Y-up frame.
func SignedArea(pts []Point2) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i].X * pts[j].Y
		area -= pts[j].X * pts[i].Y
	}
	return area / 2
}

// Centroid returns the vertex average of the polygon. This is not the area
// centroid, but it is cheap and always lies near the polygon for the convex
// and mildly concave outlines we deal with.
func Centroid(pts []Point2) Point2 {
	if len(pts) == 0 {
		return Point2{}
	}
	var c Point2
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(pts))
	c.Y /= float64(len(pts))
	return c
}

// PointInPolygon tests containment with a standard ray cast along +X.
// Points exactly on an edge may report either side; callers that care use
// DistanceToPolygon to detect the boundary case first.
func PointInPolygon(p Point2, poly []Point2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// DistanceToPolygon returns the shortest distance from p to any edge of the
// closed polygon.
func DistanceToPolygon(p Point2, poly []Point2) float64 {
	n := len(poly)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return p.Dist(poly[0])
	}
	best := DistanceToSegment(p, poly[n-1], poly[0])
	for i := 0; i < n-1; i++ {
		if d := DistanceToSegment(p, poly[i], poly[i+1]); d < best {
			best = d
		}
	}
	return best
}

// BoundingBox returns the min and max corners of the point set.
func BoundingBox(pts []Point2) (min, max Point2) {
	if len(pts) == 0 {
		return Point2{}, Point2{}
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// PathLength returns the perimeter of the closed polygon.
func PathLength(pts []Point2) float64 {
	n := len(pts)
	if n < 2 {
		return 0
	}
	total := pts[n-1].Dist(pts[0])
	for i := 0; i < n-1; i++ {
		total += pts[i].Dist(pts[i+1])
	}
	return total
}
