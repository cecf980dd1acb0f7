// Package geom provides the 2D primitives shared by the import pipeline,
// the sheet model, and the GCode compiler. All coordinates are in mm in a
// Y-up frame; FrameAdapter converts to and from Y-down frames at the edges.
package geom

import "math"

// Point2 represents a 2D coordinate in mm.
type Point2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p shifted by q.
func (p Point2) Add(q Point2) Point2 {
	return Point2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point2) Sub(q Point2) Point2 {
	return Point2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Point2) Dist(q Point2) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Near reports whether p and q are within tolerance of each other.
func (p Point2) Near(q Point2, tolerance float64) bool {
	return p.Dist(q) <= tolerance
}

// Segment is an ordered pair of endpoints.
type Segment struct {
	Start Point2
	End   Point2
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Start.Dist(s.End)
}

// Reversed returns the segment with its endpoints swapped.
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// DistanceToSegment returns the shortest distance from p to the segment ab.
func DistanceToSegment(p, a, b Point2) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq < 1e-18 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Dist(Point2{X: a.X + ab.X*t, Y: a.Y + ab.Y*t})
}
