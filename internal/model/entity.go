package model

import (
	"github.com/google/uuid"

	"github.com/Clinery1/laser-cam/internal/geom"
	"github.com/Clinery1/laser-cam/internal/outline"
)

// TransformedGeometry is an entity's model geometry mapped into sheet
// coordinates. It is owned by the entity's cache; callers get a read-only
// view that stays valid until the entity's transform next changes.
type TransformedGeometry struct {
	Outer outline.Loop
	Holes []outline.Loop
	Hull  []geom.Point2
}

// PathLength returns the total cut length of the transformed outline.
func (g *TransformedGeometry) PathLength() float64 {
	total := geom.PathLength(g.Outer)
	for _, h := range g.Holes {
		total += geom.PathLength(h)
	}
	return total
}

// Entity is one placement of a model on a sheet: a transform, a laser
// condition reference, and a lazily cached copy of the transformed geometry.
// The cache is entity-local; moving one entity never touches another's.
type Entity struct {
	ID string
	// ConditionID names the laser condition used to cut this entity. The
	// condition may have been deleted since; the compiler falls back to the
	// default condition in that case.
	ConditionID string

	model     *Model
	transform geom.Transform
	cache     *TransformedGeometry
}

// NewEntity places a model with the given transform.
func NewEntity(m *Model, t geom.Transform) *Entity {
	return &Entity{
		ID:        uuid.New().String()[:8],
		model:     m,
		transform: t,
	}
}

// Model returns the referenced model.
func (e *Entity) Model() *Model { return e.model }

// Transform returns the current transform.
func (e *Entity) Transform() geom.Transform { return e.transform }

// SetTransform replaces the transform and invalidates this entity's cached
// geometry. Nothing else is touched: not other entities, not view state.
func (e *Entity) SetTransform(t geom.Transform) {
	if e.transform == t {
		return
	}
	e.transform = t
	e.cache = nil
}

// Geometry returns the entity's geometry in sheet coordinates, recomputing
// it only if the transform changed since the last call.
func (e *Entity) Geometry() *TransformedGeometry {
	if e.cache == nil {
		e.cache = e.computeGeometry()
	}
	return e.cache
}

func (e *Entity) computeGeometry() *TransformedGeometry {
	g := &TransformedGeometry{
		Outer: outline.Loop(e.transform.ApplyAll(e.model.Outer())),
		Hull:  e.transform.ApplyAll(e.model.Hull()),
	}
	for _, h := range e.model.Holes() {
		g.Holes = append(g.Holes, outline.Loop(e.transform.ApplyAll(h)))
	}
	return g
}
