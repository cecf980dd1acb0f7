// Package model holds the sheet-side domain types: immutable part models,
// placed entities with cached transformed geometry, sheets, and hit testing.
package model

import (
	"github.com/Clinery1/laser-cam/internal/geom"
	"github.com/Clinery1/laser-cam/internal/outline"
)

// Model is a reusable, immutable part definition: one outer loop, zero or
// more holes guaranteed inside it, and a precomputed convex hull over all
// vertices. Models are shared by reference; entities never copy them and a
// model is only ever replaced wholesale by reloading its source file.
type Model struct {
	name  string
	outer outline.Loop
	holes []outline.Loop
	hull  []geom.Point2
	min   geom.Point2
	max   geom.Point2
}

// New builds a Model from a classified loop group. The hull covers the
// vertices of the outer loop and every hole.
func New(name string, outer outline.Loop, holes []outline.Loop) *Model {
	all := make([]geom.Point2, 0, len(outer))
	all = append(all, outer...)
	for _, h := range holes {
		all = append(all, h...)
	}
	min, max := geom.BoundingBox(all)
	return &Model{
		name:  name,
		outer: outer,
		holes: holes,
		hull:  geom.ConvexHull(all),
		min:   min,
		max:   max,
	}
}

// Name returns the model's display name.
func (m *Model) Name() string { return m.name }

// Outer returns the outer boundary loop. Callers must not mutate it.
func (m *Model) Outer() outline.Loop { return m.outer }

// Holes returns the hole loops. Callers must not mutate them.
func (m *Model) Holes() []outline.Loop { return m.holes }

// Hull returns the convex hull of all model vertices, counter-clockwise.
func (m *Model) Hull() []geom.Point2 { return m.hull }

// Bounds returns the model-space bounding box.
func (m *Model) Bounds() (min, max geom.Point2) { return m.min, m.max }

// PathLength returns the total cut length: outer perimeter plus all holes.
func (m *Model) PathLength() float64 {
	total := geom.PathLength(m.outer)
	for _, h := range m.holes {
		total += geom.PathLength(h)
	}
	return total
}

// Area returns the enclosed area of the outer loop minus the holes.
func (m *Model) Area() float64 {
	area := m.outer.SignedArea() // outer is CCW, positive
	for _, h := range m.holes {
		area += h.SignedArea() // holes are CW, negative
	}
	return area
}
