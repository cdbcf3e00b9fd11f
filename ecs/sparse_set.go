package ecs

// SparseSet stores one component kind keyed by entity slot. Values are kept
// densely in insertion order; Remove shifts later entries down rather than
// swapping, so iteration order survives removals.
type SparseSet struct {
	dense  []Entity
	values []any
	// sparse maps slot id-1 to dense index+1; zero means absent.
	sparse []int
}

func (s *SparseSet) index(e Entity) (int, bool) {
	if s == nil || !e.Valid() {
		return 0, false
	}
	id := int(e.id())
	if id > len(s.sparse) || s.sparse[id-1] == 0 {
		return 0, false
	}
	idx := s.sparse[id-1] - 1
	if s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

// Has reports whether e has a value in the set. Stale handles miss.
func (s *SparseSet) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

// Get returns e's value, or nil.
func (s *SparseSet) Get(e Entity) any {
	idx, ok := s.index(e)
	if !ok {
		return nil
	}
	return s.values[idx]
}

// Set inserts or replaces e's value. New entries go to the end.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	if idx, ok := s.index(e); ok {
		s.values[idx] = v
		return
	}
	id := int(e.id())
	if id > len(s.sparse) {
		s.sparse = append(s.sparse, make([]int, id-len(s.sparse))...)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense)
}

// Remove deletes e's value and reports whether it was present.
func (s *SparseSet) Remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	s.sparse[e.id()-1] = 0
	copy(s.dense[idx:], s.dense[idx+1:])
	copy(s.values[idx:], s.values[idx+1:])
	last := len(s.dense) - 1
	s.dense = s.dense[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	for i := idx; i < last; i++ {
		s.sparse[s.dense[i].id()-1] = i + 1
	}
	return true
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// Entities returns the dense entity list. Callers must not modify it.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.dense
}

// Values returns the dense value list, parallel to Entities.
func (s *SparseSet) Values() []any {
	if s == nil {
		return nil
	}
	return s.values
}
