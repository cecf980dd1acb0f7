package outline

import (
	"fmt"
	"math"
	"sort"

	"github.com/Clinery1/laser-cam/internal/geom"
)

// Group is one classified part outline: an outer boundary wound
// counter-clockwise and its holes wound clockwise.
type Group struct {
	Outer Loop
	Holes []Loop
}

// Classify splits a set of assembled loops into groups of one outer boundary
// plus holes. The loop with the largest enclosed area seeds the first group;
// every other loop becomes a hole of the first group whose outer contains
// its representative point, or seeds a new group otherwise.
//
// The representative point is the loop's centroid. If it falls within
// epsilon of a candidate boundary the point is nudged toward the loop's
// first vertex and retried once; if still within epsilon the loop is kept
// as its own group rather than guessed into a hole.
func Classify(loops []Loop, epsilon float64) ([]Group, []string) {
	if len(loops) == 0 {
		return nil, nil
	}

	order := make([]int, len(loops))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(loops[order[a]].SignedArea()) > math.Abs(loops[order[b]].SignedArea())
	})

	var warnings []string
	groups := []Group{{Outer: loops[order[0]].Oriented(true)}}

	for _, li := range order[1:] {
		loop := loops[li]
		placed := false
		wasAmbiguous := false
		for gi := range groups {
			inside, ambiguous := containsRepresentative(groups[gi].Outer, loop, epsilon)
			if ambiguous {
				wasAmbiguous = true
				continue
			}
			if inside {
				groups[gi].Holes = append(groups[gi].Holes, loop.Oriented(false))
				placed = true
				break
			}
		}
		if !placed {
			if wasAmbiguous {
				c := loop.Centroid()
				warnings = append(warnings, fmt.Sprintf(
					"loop near (%.3f, %.3f) sits on a boundary; keeping it as a separate part",
					c.X, c.Y))
			}
			groups = append(groups, Group{Outer: loop.Oriented(true)})
		}
	}
	return groups, warnings
}

// containsRepresentative tests whether loop's representative point lies
// inside outer. ambiguous is true when the point could not be moved off the
// outer boundary.
func containsRepresentative(outer, loop Loop, epsilon float64) (inside, ambiguous bool) {
	rep := loop.Centroid()
	if geom.DistanceToPolygon(rep, outer) > epsilon {
		return outer.Contains(rep), false
	}

	// Nudge toward the loop's first vertex and retry once.
	dir := loop[0].Sub(rep)
	length := math.Hypot(dir.X, dir.Y)
	if length > 1e-12 {
		rep = geom.Point2{
			X: rep.X + dir.X/length*2*epsilon,
			Y: rep.Y + dir.Y/length*2*epsilon,
		}
		if geom.DistanceToPolygon(rep, outer) > epsilon {
			return outer.Contains(rep), false
		}
	}
	return false, true
}
