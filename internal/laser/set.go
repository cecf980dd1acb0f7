package laser

// Set is an ordered collection of conditions plus the ID of the default
// condition used when an entity's reference cannot be resolved. The order is
// the save order and is preserved across persistence round trips.
type Set struct {
	conditions []*Condition
	defaultID  string
}

// NewSet returns a set seeded with one built-in default condition.
func NewSet() *Set {
	def := NewCondition("Default")
	def.Dirty = false
	return &Set{
		conditions: []*Condition{def},
		defaultID:  def.ID,
	}
}

// NewSetFrom builds a set from an ordered condition list, renumbering
// SaveOrder to match. When defaultID does not name a listed condition the
// first condition becomes the default; an empty list gets the built-in one.
// Conditions with an empty pass sequence get the default sequence back and
// are marked dirty so the repair is written out on the next save.
func NewSetFrom(conditions []*Condition, defaultID string) *Set {
	if len(conditions) == 0 {
		return NewSet()
	}
	s := &Set{conditions: conditions}
	for i, c := range conditions {
		c.SaveOrder = i
		// A condition with no sequence steps would compile to laser-on,
		// laser-off and nothing in between. Restore the built-in step.
		if len(c.Sequence) == 0 {
			c.Sequence = defaultSequence()
			c.Dirty = true
		}
	}
	s.defaultID = defaultID
	if _, ok := s.Get(defaultID); !ok {
		s.defaultID = conditions[0].ID
	}
	return s
}

// All returns the conditions in save order.
func (s *Set) All() []*Condition {
	return s.conditions
}

// Get returns the condition with the given ID.
func (s *Set) Get(id string) (*Condition, bool) {
	for _, c := range s.conditions {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// GetByName returns the first condition with the given name.
func (s *Set) GetByName(name string) (*Condition, bool) {
	for _, c := range s.conditions {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Default returns the default condition. A set always has one.
func (s *Set) Default() *Condition {
	if c, ok := s.Get(s.defaultID); ok {
		return c
	}
	return s.conditions[0]
}

// SetDefault marks the condition with the given ID as the default.
// Unknown IDs are ignored.
func (s *Set) SetDefault(id string) {
	if _, ok := s.Get(id); ok {
		s.defaultID = id
	}
}

// Resolve returns the condition for an entity's reference, falling back to
// the default when the reference is empty or the condition was deleted.
// The second result reports whether the fallback was taken.
func (s *Set) Resolve(id string) (*Condition, bool) {
	if c, ok := s.Get(id); ok {
		return c, false
	}
	return s.Default(), id != ""
}

// Add appends a condition at the end of the save order.
func (s *Set) Add(c *Condition) {
	c.SaveOrder = len(s.conditions)
	s.conditions = append(s.conditions, c)
}

// Remove deletes the condition with the given ID. The default falls back to
// the first remaining condition; the last condition cannot be removed.
func (s *Set) Remove(id string) bool {
	if len(s.conditions) <= 1 {
		return false
	}
	for i, c := range s.conditions {
		if c.ID == id {
			s.conditions = append(s.conditions[:i], s.conditions[i+1:]...)
			for j, rest := range s.conditions {
				rest.SaveOrder = j
			}
			if s.defaultID == id {
				s.defaultID = s.conditions[0].ID
			}
			return true
		}
	}
	return false
}

// DefaultID returns the ID of the default condition.
func (s *Set) DefaultID() string { return s.defaultID }

// ClearDirty clears every condition's dirty flag. Called after a
// successful save.
func (s *Set) ClearDirty() {
	for _, c := range s.conditions {
		c.Dirty = false
	}
}
