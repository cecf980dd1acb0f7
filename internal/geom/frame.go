package geom

// FrameAdapter converts points between the internal Y-up frame and a Y-down
// frame of the given height (DXF viewers, PDF pages, screen space). The map
// is a pure Y flip plus translate, so applying it twice is the identity.
type FrameAdapter struct {
	Height float64
}

// Convert flips a point between Y-up and Y-down.
func (f FrameAdapter) Convert(p Point2) Point2 {
	return Point2{X: p.X, Y: f.Height - p.Y}
}

// ConvertAll flips a slice of points, returning a new slice.
func (f FrameAdapter) ConvertAll(pts []Point2) []Point2 {
	out := make([]Point2, len(pts))
	for i, p := range pts {
		out[i] = f.Convert(p)
	}
	return out
}
