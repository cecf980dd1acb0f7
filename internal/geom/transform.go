package geom

import "math"

// Transform places model-space geometry on the sheet. Apply order is fixed:
// non-uniform scale about the origin, rotation about the origin, then
// translation.
type Transform struct {
	Translation Point2  `json:"translation"`
	Rotation    float64 `json:"rotation"` // radians, counter-clockwise
	ScaleX      float64 `json:"scale_x"`
	ScaleY      float64 `json:"scale_y"`
}

// Identity returns the no-op transform.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Translated returns the identity transform shifted by dx, dy.
func Translated(dx, dy float64) Transform {
	t := Identity()
	t.Translation = Point2{X: dx, Y: dy}
	return t
}

// Apply maps a model-space point to sheet space.
func (t Transform) Apply(p Point2) Point2 {
	x := p.X * t.ScaleX
	y := p.Y * t.ScaleY
	sin, cos := math.Sincos(t.Rotation)
	return Point2{
		X: x*cos - y*sin + t.Translation.X,
		Y: x*sin + y*cos + t.Translation.Y,
	}
}

// ApplyAll maps a slice of points, returning a new slice.
func (t Transform) ApplyAll(pts []Point2) []Point2 {
	out := make([]Point2, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return out
}
