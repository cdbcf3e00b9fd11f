package ecs

// Scheduler is an ordered list of systems. Nil systems are dropped on Add.
type Scheduler []System

func (s *Scheduler) Add(systems ...System) {
	for _, sys := range systems {
		if sys != nil {
			*s = append(*s, sys)
		}
	}
}

// Update runs every system once, in insertion order.
func (s Scheduler) Update(w *World) {
	for _, sys := range s {
		sys.Update(w)
	}
}

func (s Scheduler) Len() int { return len(s) }
