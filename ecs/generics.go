package ecs

import "github.com/milk9111/breakout/ecs/component"

// Add stores a copy of value as e's component of the given kind, replacing
// any earlier one.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	v := value
	w.storage(kind.ID(), true).Set(e, &v)
	return nil
}

// Get returns a pointer to e's component. Writes through it are seen by
// every later query.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	v, ok := w.storage(kind.ID(), false).Get(e).(*T)
	return v, ok
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.storage(kind.ID(), false).Has(e)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.storage(kind.ID(), false).Remove(e)
}
