package ecs

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// EntitySet is the membership set of a system. Insert, erase, and lookup
// are O(1); iteration walks a dense slice whose order is insertion order
// perturbed by swap-removal.
type EntitySet struct {
	dense []Entity
	index *intmap.Map[Entity, int]
}

func newEntitySet() *EntitySet {
	return &EntitySet{
		dense: make([]Entity, 0, 64),
		index: intmap.New[Entity, int](64),
	}
}

func (s *EntitySet) insert(e Entity) {
	if _, ok := s.index.Get(e); ok {
		return
	}
	s.index.Put(e, len(s.dense))
	s.dense = append(s.dense, e)
}

func (s *EntitySet) erase(e Entity) {
	idx, ok := s.index.Get(e)
	if !ok {
		return
	}
	last := len(s.dense) - 1
	if idx != last {
		moved := s.dense[last]
		s.dense[idx] = moved
		s.index.Put(moved, idx)
	}
	s.dense = s.dense[:last]
	s.index.Del(e)
}

func (s *EntitySet) clear() {
	s.dense = s.dense[:0]
	s.index.Clear()
}

func (s *EntitySet) Contains(e Entity) bool {
	_, ok := s.index.Get(e)
	return ok
}

func (s *EntitySet) Len() int {
	return len(s.dense)
}

// Iter yields every member. Membership changes made while iterating may be
// observed or skipped.
func (s *EntitySet) Iter() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := 0; i < len(s.dense); i++ {
			if !yield(s.dense[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the members in iteration order.
func (s *EntitySet) Slice() []Entity {
	return slices.Clone(s.dense)
}

// Sorted returns a copy of the members in ascending id order.
func (s *EntitySet) Sorted() []Entity {
	out := slices.Clone(s.dense)
	slices.Sort(out)
	return out
}
