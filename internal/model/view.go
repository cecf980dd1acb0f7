package model

import "github.com/Clinery1/laser-cam/internal/geom"

// View is the editor's pan/zoom state. It maps sheet coordinates to screen
// coordinates and deliberately holds no entity references: panning and
// zooming must never invalidate any entity's geometry cache, which is what
// keeps editing responsive with hundreds of placed entities.
type View struct {
	Offset geom.Point2
	Scale  float64
}

// NewView returns a 1:1 view anchored at the sheet origin.
func NewView() *View {
	return &View{Scale: 1}
}

// Pan shifts the view by a screen-space delta.
func (v *View) Pan(delta geom.Point2) {
	v.Offset = v.Offset.Add(delta)
}

// ZoomAt scales the view by factor, keeping the screen point p fixed.
func (v *View) ZoomAt(p geom.Point2, factor float64) {
	offset := v.Offset.Sub(p)
	v.Offset = p.Add(geom.Point2{X: offset.X * factor, Y: offset.Y * factor})
	v.Scale *= factor
}

// Project maps a sheet-space point to screen space.
func (v *View) Project(p geom.Point2) geom.Point2 {
	return geom.Point2{X: p.X*v.Scale + v.Offset.X, Y: p.Y*v.Scale + v.Offset.Y}
}

// Unproject maps a screen-space point to sheet space.
func (v *View) Unproject(p geom.Point2) geom.Point2 {
	return geom.Point2{X: (p.X - v.Offset.X) / v.Scale, Y: (p.Y - v.Offset.Y) / v.Scale}
}
