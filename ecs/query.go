package ecs

import (
	"slices"

	"github.com/milk9111/breakout/ecs/component"
)

// IntersectEntities returns the entities of a that are also in every set of
// rest, in a's order.
func IntersectEntities(a *SparseSet, rest ...*SparseSet) []Entity {
	if a == nil {
		return nil
	}
	out := make([]Entity, 0, a.Len())
next:
	for _, e := range a.Entities() {
		for _, s := range rest {
			if !s.Has(e) {
				continue next
			}
		}
		out = append(out, e)
	}
	return out
}

// ForEach calls fn for every entity with a component of kind, in insertion
// order. fn may create or destroy entities; ones destroyed before their turn
// are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, v *T)) {
	s := w.storage(kind.ID(), false)
	for _, e := range slices.Clone(s.Entities()) {
		if v, ok := s.Get(e).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every entity that has both kinds, ordered by the
// first.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	sa, sb := w.storage(ka.ID(), false), w.storage(kb.ID(), false)
	for _, e := range IntersectEntities(sa, sb) {
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(e Entity, a *A, b *B, c *C)) {
	sa, sb, sc := w.storage(ka.ID(), false), w.storage(kb.ID(), false), w.storage(kc.ID(), false)
	for _, e := range IntersectEntities(sa, sb, sc) {
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		c, okC := sc.Get(e).(*C)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

// First returns the oldest entity with a component of kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	s := w.storage(kind.ID(), false)
	if s.Len() == 0 {
		return 0, nil, false
	}
	e := s.Entities()[0]
	v, ok := s.Get(e).(*T)
	return e, v, ok
}

// Entities lists every entity with a component of kind, in insertion order.
func Entities[T any](w *World, kind component.ComponentKind[T]) []Entity {
	return slices.Clone(w.storage(kind.ID(), false).Entities())
}

func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return w.storage(kind.ID(), false).Len()
}
