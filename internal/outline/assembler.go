package outline

import (
	"fmt"
	"math"

	"github.com/Clinery1/laser-cam/internal/geom"
)

// Diagnostics collects per-contour problems found during assembly. Nothing
// in here aborts an import; dropped geometry is reported and the rest of the
// input is still processed.
type Diagnostics struct {
	Errors   []string
	Warnings []string
}

// Assemble groups an unordered multiset of segments into closed loops.
// Segments may arrive in any order and either direction; endpoints within
// epsilon are coincident. Duplicate segments (same endpoints, either
// direction) collapse to a single traversal edge. Connected groups that
// never close are reported as open contours and dropped, as are loops with
// fewer than 3 distinct vertices or near-zero area.
//
// Output order is deterministic for a fixed input order: loops are emitted
// in order of their lowest segment index, and walks always continue along
// the lowest-indexed unvisited segment.
func Assemble(segs []geom.Segment, epsilon float64) ([]Loop, Diagnostics) {
	var diags Diagnostics
	if len(segs) == 0 {
		return nil, diags
	}

	idx := newEndpointIndex(segs, epsilon)
	visited := make([]bool, len(segs))

	// Zero-length segments can never contribute an edge.
	zeroLength := 0
	for i, s := range segs {
		if s.Start.Near(s.End, epsilon) {
			visited[i] = true
			zeroLength++
		}
	}
	if zeroLength > 0 {
		diags.Warnings = append(diags.Warnings,
			fmt.Sprintf("dropped %d zero-length segments", zeroLength))
	}

	// Collapse duplicates: a segment matching an earlier one in either
	// direction is consumed without contributing an edge.
	duplicates := 0
	for i, s := range segs {
		if visited[i] {
			continue
		}
		for _, ref := range idx.near(s.Start) {
			if ref.seg >= i || visited[ref.seg] {
				continue
			}
			other := segOther(segs[ref.seg], ref.start)
			if other.Near(s.End, epsilon) {
				visited[i] = true
				duplicates++
				break
			}
		}
	}
	if duplicates > 0 {
		diags.Warnings = append(diags.Warnings,
			fmt.Sprintf("collapsed %d duplicate segments", duplicates))
	}

	var loops []Loop
	for start := range segs {
		if visited[start] {
			continue
		}
		visited[start] = true
		chain := Loop{segs[start].Start, segs[start].End}

		closed := false
		for {
			tail := chain[len(chain)-1]
			next, ok := nextUnvisited(idx, visited, tail)
			if !ok {
				break
			}
			visited[next.seg] = true
			other := segOther(segs[next.seg], next.start)
			if other.Near(chain[0], epsilon) {
				closed = true
				break
			}
			chain = append(chain, other)
		}

		if !closed {
			diags.Errors = append(diags.Errors, fmt.Sprintf(
				"open contour with %d vertices near (%.3f, %.3f) could not be closed",
				len(chain), chain[0].X, chain[0].Y))
			continue
		}

		loop := dedupVertices(chain, epsilon)
		if len(loop) < 3 || math.Abs(loop.SignedArea()) <= epsilon*epsilon {
			diags.Warnings = append(diags.Warnings, fmt.Sprintf(
				"dropped degenerate loop near (%.3f, %.3f)", chain[0].X, chain[0].Y))
			continue
		}
		loops = append(loops, loop)
	}
	return loops, diags
}

// nextUnvisited finds the continuation segment whose endpoint matches tail,
// preferring the lowest input index.
func nextUnvisited(idx *endpointIndex, visited []bool, tail geom.Point2) (endpointRef, bool) {
	for _, ref := range idx.near(tail) {
		if !visited[ref.seg] {
			return ref, true
		}
	}
	return endpointRef{}, false
}

// segOther returns the endpoint opposite the one the walk arrived on.
func segOther(s geom.Segment, arrivedAtStart bool) geom.Point2 {
	if arrivedAtStart {
		return s.End
	}
	return s.Start
}

// dedupVertices removes consecutive vertices that coincide within epsilon,
// including a trailing vertex that coincides with the first.
func dedupVertices(chain Loop, epsilon float64) Loop {
	out := make(Loop, 0, len(chain))
	for _, p := range chain {
		if len(out) == 0 || !out[len(out)-1].Near(p, epsilon) {
			out = append(out, p)
		}
	}
	for len(out) > 1 && out[len(out)-1].Near(out[0], epsilon) {
		out = out[:len(out)-1]
	}
	return out
}
