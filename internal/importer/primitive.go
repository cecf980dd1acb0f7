package importer

import (
	"math"

	"github.com/Clinery1/laser-cam/internal/geom"
)

// Primitive is a raw drawing primitive from an exchange file. The closed set
// of implementations is LinePrimitive and ArcPrimitive; unsupported file
// entities never reach this type.
type Primitive interface {
	tessellate(tol float64) []geom.Segment
}

// LinePrimitive is a straight segment between two points.
type LinePrimitive struct {
	Start geom.Point2
	End   geom.Point2
}

func (l LinePrimitive) tessellate(float64) []geom.Segment {
	return []geom.Segment{{Start: l.Start, End: l.End}}
}

// ArcPrimitive is a circular arc. Angles are radians; the sweep runs from
// StartAngle to EndAngle counter-clockwise unless Clockwise is set.
type ArcPrimitive struct {
	Center     geom.Point2
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// tessellate steps the angular span so that the worst-case chord deviation
// stays within tol (sagitta: r*(1-cos(step/2))), emitting at least 2 segments.
func (a ArcPrimitive) tessellate(tol float64) []geom.Segment {
	if a.Radius <= 0 {
		return nil
	}

	span := a.EndAngle - a.StartAngle
	if a.Clockwise {
		for span >= 0 {
			span -= 2 * math.Pi
		}
	} else {
		for span <= 0 {
			span += 2 * math.Pi
		}
	}

	steps := SegmentsForArc(a.Radius, math.Abs(span), tol)
	segs := make([]geom.Segment, 0, steps)
	prev := a.pointAt(a.StartAngle)
	for i := 1; i <= steps; i++ {
		next := a.pointAt(a.StartAngle + span*float64(i)/float64(steps))
		segs = append(segs, geom.Segment{Start: prev, End: next})
		prev = next
	}
	return segs
}

func (a ArcPrimitive) pointAt(angle float64) geom.Point2 {
	return geom.Point2{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// SegmentsForArc returns the minimum segment count for which the sagitta of
// each chord stays within tol, never fewer than 2.
func SegmentsForArc(radius, span, tol float64) int {
	if tol >= radius {
		return 2
	}
	// Largest chord angle with sagitta <= tol.
	maxStep := 2 * math.Acos(1-tol/radius)
	steps := int(math.Ceil(span / maxStep))
	if steps < 2 {
		steps = 2
	}
	return steps
}

// CirclePrimitive builds a full-circle arc. A circle is just an arc with a
// 360 degree sweep; keeping one primitive type keeps the pipeline uniform.
func CirclePrimitive(center geom.Point2, radius float64) ArcPrimitive {
	return ArcPrimitive{
		Center:     center,
		Radius:     radius,
		StartAngle: 0,
		EndAngle:   2 * math.Pi,
	}
}
