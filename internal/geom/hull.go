package geom

import "sort"

// ConvexHull computes the minimal convex polygon enclosing the point set
// using Andrew's monotone chain. The result is ordered counter-clockwise
// with collinear interior points removed. Fewer than 3 distinct input
// points yield the distinct points sorted by (X, Y).
func ConvexHull(pts []Point2) []Point2 {
	sorted := make([]Point2, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	// Drop exact duplicates so degenerate input cannot stall the chains.
	dedup := sorted[:0]
	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			dedup = append(dedup, p)
		}
	}
	sorted = dedup

	n := len(sorted)
	if n < 3 {
		out := make([]Point2, n)
		copy(out, sorted)
		return out
	}

	hull := make([]Point2, 0, 2*n)

	// Lower chain
	for _, p := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper chain
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// The last point repeats the first.
	return hull[:len(hull)-1]
}

// cross returns the z component of (b-a) x (c-a).
func cross(a, b, c Point2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
