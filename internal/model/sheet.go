package model

import "github.com/Clinery1/laser-cam/internal/geom"

// Sheet is the rectangular work area. Entities are kept in cut order; the
// compiler traces them exactly in this order. Z-order for selection is the
// reverse of placement order (the most recently placed entity is on top)
// and is independent of cut order.
type Sheet struct {
	Width  float64
	Height float64

	entities []*Entity
}

// NewSheet returns an empty sheet of the given size in mm.
func NewSheet(width, height float64) *Sheet {
	return &Sheet{Width: width, Height: height}
}

// Place creates an entity for the model and appends it at the end of the
// cut order.
func (s *Sheet) Place(m *Model, t geom.Transform) *Entity {
	e := NewEntity(m, t)
	s.entities = append(s.entities, e)
	return e
}

// Entities returns the entities in cut order. Callers must not reorder the
// returned slice directly; use MoveCutOrder.
func (s *Sheet) Entities() []*Entity {
	return s.entities
}

// Find returns the entity with the given ID, or nil.
func (s *Sheet) Find(id string) *Entity {
	for _, e := range s.entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Remove deletes the entity with the given ID. Reports whether an entity
// was removed.
func (s *Sheet) Remove(id string) bool {
	for i, e := range s.entities {
		if e.ID == id {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return true
		}
	}
	return false
}

// MoveCutOrder moves the entity at index from to index to, shifting the
// others. Out-of-range indices are ignored.
func (s *Sheet) MoveCutOrder(from, to int) {
	n := len(s.entities)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}
	e := s.entities[from]
	rest := append(s.entities[:from], s.entities[from+1:]...)
	s.entities = append(rest[:to], append([]*Entity{e}, rest[to:]...)...)
}

// zOrdered returns entities front-most first for hit testing.
func (s *Sheet) zOrdered() []*Entity {
	out := make([]*Entity, len(s.entities))
	for i, e := range s.entities {
		out[len(s.entities)-1-i] = e
	}
	return out
}
