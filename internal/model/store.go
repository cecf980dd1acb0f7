package model

// Handle addresses a Model inside a Store.
type Handle int

// Store is an append-only collection of immutable models. Handles stay valid
// until the whole store is discarded; models are never removed one at a
// time, only replaced wholesale by reloading the source document.
type Store struct {
	models []*Model
}

// NewStore returns an empty model store.
func NewStore() *Store {
	return &Store{}
}

// Add stores a model and returns its handle.
func (s *Store) Add(m *Model) Handle {
	s.models = append(s.models, m)
	return Handle(len(s.models) - 1)
}

// Get returns the model for a handle, or nil for an unknown handle.
func (s *Store) Get(h Handle) *Model {
	if h < 0 || int(h) >= len(s.models) {
		return nil
	}
	return s.models[h]
}

// Len returns the number of stored models.
func (s *Store) Len() int { return len(s.models) }

// All returns the stored models in insertion order.
func (s *Store) All() []*Model {
	out := make([]*Model, len(s.models))
	copy(out, s.models)
	return out
}
