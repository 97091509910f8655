package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// DefaultMaxComponents is the per-type component capacity used unless a
// scene is configured otherwise.
const DefaultMaxComponents = 5000

// ComponentStore holds every instance of one component type in a dense,
// hole-free slice. entityToIndex and indexToEntity are kept as exact
// inverses so insert, remove, and lookup are all O(1).
type ComponentStore[T any] struct {
	typ           reflect.Type
	capacity      int
	dense         []T
	indexToEntity []Entity
	entityToIndex *intmap.Map[Entity, int]
}

// NewComponentStore creates an empty store holding at most capacity values.
func NewComponentStore[T any](capacity int) *ComponentStore[T] {
	initial := min(capacity, 64)
	return &ComponentStore[T]{
		typ:           reflect.TypeFor[T](),
		capacity:      capacity,
		dense:         make([]T, 0, initial),
		indexToEntity: make([]Entity, 0, initial),
		entityToIndex: intmap.New[Entity, int](initial),
	}
}

// Insert stores value for e in the next dense slot. It fails without
// mutating the store when e already holds a value or the store is full.
func (cs *ComponentStore[T]) Insert(e Entity, value T) error {
	if _, ok := cs.entityToIndex.Get(e); ok {
		return &ComponentError{Op: "add", Entity: e, Type: cs.typ, Err: ErrDuplicateComponent}
	}
	if len(cs.dense) >= cs.capacity {
		return &ComponentError{Op: "add", Entity: e, Type: cs.typ, Err: ErrStoreFull}
	}

	cs.entityToIndex.Put(e, len(cs.dense))
	cs.indexToEntity = append(cs.indexToEntity, e)
	cs.dense = append(cs.dense, value)
	return nil
}

// Remove deletes e's value by moving the last dense value into its slot.
func (cs *ComponentStore[T]) Remove(e Entity) error {
	removed, ok := cs.entityToIndex.Get(e)
	if !ok {
		return &ComponentError{Op: "remove", Entity: e, Type: cs.typ, Err: ErrComponentNotFound}
	}

	last := len(cs.dense) - 1
	if removed != last {
		moved := cs.indexToEntity[last]
		cs.dense[removed] = cs.dense[last]
		cs.indexToEntity[removed] = moved
		cs.entityToIndex.Put(moved, removed)
	}

	var zero T
	cs.dense[last] = zero
	cs.dense = cs.dense[:last]
	cs.indexToEntity = cs.indexToEntity[:last]
	cs.entityToIndex.Del(e)
	return nil
}

// Get returns a pointer into the dense slice. It stays valid until the next
// Insert or Remove on this store.
func (cs *ComponentStore[T]) Get(e Entity) (*T, error) {
	idx, ok := cs.entityToIndex.Get(e)
	if !ok {
		return nil, &ComponentError{Op: "get", Entity: e, Type: cs.typ, Err: ErrComponentNotFound}
	}
	return &cs.dense[idx], nil
}

func (cs *ComponentStore[T]) Has(e Entity) bool {
	_, ok := cs.entityToIndex.Get(e)
	return ok
}

func (cs *ComponentStore[T]) GetAny(e Entity) (any, bool) {
	idx, ok := cs.entityToIndex.Get(e)
	if !ok {
		return nil, false
	}
	return &cs.dense[idx], true
}

// EntityDestroyed drops e's value if it has one.
func (cs *ComponentStore[T]) EntityDestroyed(e Entity) {
	if cs.Has(e) {
		_ = cs.Remove(e)
	}
}

// IndexOf returns e's position in the dense slice.
func (cs *ComponentStore[T]) IndexOf(e Entity) (int, bool) {
	return cs.entityToIndex.Get(e)
}

// EntityAt returns the entity owning dense slot i.
func (cs *ComponentStore[T]) EntityAt(i int) (Entity, bool) {
	if i < 0 || i >= len(cs.indexToEntity) {
		return Null, false
	}
	return cs.indexToEntity[i], true
}

func (cs *ComponentStore[T]) Type() reflect.Type {
	return cs.typ
}

func (cs *ComponentStore[T]) Len() int {
	return len(cs.dense)
}

func (cs *ComponentStore[T]) Cap() int {
	return cs.capacity
}

// Entities yields the owners of each dense slot in slot order.
func (cs *ComponentStore[T]) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range cs.indexToEntity {
			if !yield(e) {
				return
			}
		}
	}
}

// All yields every entity with a pointer to its value in dense order.
// Removing from this store while iterating is not supported.
func (cs *ComponentStore[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := range cs.dense {
			if !yield(cs.indexToEntity[i], &cs.dense[i]) {
				return
			}
		}
	}
}
