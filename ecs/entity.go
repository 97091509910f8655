package ecs

import "iter"

// Entity identifies a game object. It carries no data of its own; the
// registry tracks whether it is alive and which components it holds.
type Entity uint32

// Null is never issued by a registry and is always invalid.
const Null Entity = 0

// DefaultMaxEntities is the number of concurrently alive entities a scene
// supports unless configured otherwise.
const DefaultMaxEntities = 5000

// EntityRegistry issues and recycles entity ids and owns the per-entity
// signature. It holds no component data.
type EntityRegistry struct {
	signatures []Signature
	alive      []bool

	// free is a ring buffer of ids waiting to be issued.
	free     []Entity
	freeHead int
	freeLen  int

	living uint32
}

// NewEntityRegistry creates a registry able to hold capacity live entities,
// with ids 1 through capacity.
func NewEntityRegistry(capacity uint32) *EntityRegistry {
	r := &EntityRegistry{
		signatures: make([]Signature, capacity+1),
		alive:      make([]bool, capacity+1),
		free:       make([]Entity, capacity),
		freeLen:    int(capacity),
	}
	for i := range r.free {
		r.free[i] = Entity(i + 1)
	}
	return r
}

// Create issues the least recently freed id with an empty signature.
func (r *EntityRegistry) Create() (Entity, error) {
	if r.freeLen == 0 {
		return Null, &EntityError{Op: "create", Err: ErrCapacityExceeded}
	}

	e := r.free[r.freeHead]
	r.freeHead = (r.freeHead + 1) % len(r.free)
	r.freeLen--

	r.signatures[e] = 0
	r.alive[e] = true
	r.living++
	return e, nil
}

// Destroy returns e to the free pool and clears its signature. It does not
// touch component stores or system membership.
func (r *EntityRegistry) Destroy(e Entity) error {
	if !r.Alive(e) {
		return &EntityError{Op: "destroy", Entity: e, Err: ErrInvalidEntity}
	}

	r.signatures[e] = 0
	r.alive[e] = false
	r.living--

	tail := (r.freeHead + r.freeLen) % len(r.free)
	r.free[tail] = e
	r.freeLen++
	return nil
}

// SetSignature replaces the signature of a live entity.
func (r *EntityRegistry) SetSignature(e Entity, sig Signature) error {
	if !r.Alive(e) {
		return &EntityError{Op: "set signature", Entity: e, Err: ErrInvalidEntity}
	}
	r.signatures[e] = sig
	return nil
}

// Signature returns the signature of a live entity.
func (r *EntityRegistry) Signature(e Entity) (Signature, error) {
	if !r.Alive(e) {
		return 0, &EntityError{Op: "get signature", Entity: e, Err: ErrInvalidEntity}
	}
	return r.signatures[e], nil
}

// Alive reports whether e has been created and not yet destroyed.
func (r *EntityRegistry) Alive(e Entity) bool {
	return e != Null && int(e) < len(r.alive) && r.alive[e]
}

func (r *EntityRegistry) LivingCount() uint32 {
	return r.living
}

func (r *EntityRegistry) Capacity() uint32 {
	return uint32(len(r.free))
}

// Each yields every live entity in ascending id order.
func (r *EntityRegistry) Each() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for id := 1; id < len(r.alive); id++ {
			if !r.alive[id] {
				continue
			}
			if !yield(Entity(id)) {
				return
			}
		}
	}
}
