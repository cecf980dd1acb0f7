package outline

import (
	"sort"

	"github.com/asim/quadtree"

	"github.com/Clinery1/laser-cam/internal/geom"
)

// endpointRef identifies one endpoint of an input segment.
type endpointRef struct {
	seg   int  // index into the input segment slice
	start bool // true = segment start, false = segment end
}

// endpointIndex answers "which segment endpoints lie within epsilon of this
// point" without scanning every segment. Backed by a quadtree over all
// endpoint positions.
type endpointIndex struct {
	tree    *quadtree.QuadTree
	epsilon float64
}

func newEndpointIndex(segs []geom.Segment, epsilon float64) *endpointIndex {
	var pts []geom.Point2
	for _, s := range segs {
		pts = append(pts, s.Start, s.End)
	}
	min, max := geom.BoundingBox(pts)

	midX := (min.X + max.X) / 2
	midY := (min.Y + max.Y) / 2
	// Margin so endpoints on the bounding box edge are never dropped.
	halfW := (max.X-min.X)/2 + epsilon + 1
	halfH := (max.Y-min.Y)/2 + epsilon + 1

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfW, halfH, nil))

	idx := &endpointIndex{
		tree:    quadtree.New(aabb, 0, nil),
		epsilon: epsilon,
	}
	for i, s := range segs {
		idx.insert(s.Start, endpointRef{seg: i, start: true})
		idx.insert(s.End, endpointRef{seg: i, start: false})
	}
	return idx
}

func (idx *endpointIndex) insert(p geom.Point2, ref endpointRef) {
	idx.tree.Insert(quadtree.NewPoint(p.X, p.Y, ref))
}

// near returns every endpoint within epsilon of p, ordered by segment input
// index so walks are deterministic for a fixed input order.
func (idx *endpointIndex) near(p geom.Point2) []endpointRef {
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(p.X, p.Y, nil),
		quadtree.NewPoint(idx.epsilon, idx.epsilon, nil))

	var refs []endpointRef
	for _, qp := range idx.tree.Search(aabb) {
		x, y := qp.Coordinates()
		if p.Near(geom.Point2{X: x, Y: y}, idx.epsilon) {
			refs = append(refs, qp.Data().(endpointRef))
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].seg != refs[j].seg {
			return refs[i].seg < refs[j].seg
		}
		return refs[i].start && !refs[j].start
	})
	return refs
}
