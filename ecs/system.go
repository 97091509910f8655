package ecs

// System is per-frame logic run over the entities whose signature contains
// the system's required signature. Embed SystemBase to receive the
// membership set when the system is registered.
type System interface {
	Update(frame *UpdateFrame)
}

// Renderer is implemented by systems that also draw each frame.
type Renderer interface {
	Render(frame *RenderFrame)
}

// SystemBase gives a system access to its live membership set.
type SystemBase struct {
	entities *EntitySet
}

// Entities returns the members of the system. It is nil until the system
// has been registered with a scene.
func (b *SystemBase) Entities() *EntitySet {
	return b.entities
}

func (b *SystemBase) bindEntities(set *EntitySet) {
	b.entities = set
}

type membershipBinder interface {
	bindEntities(set *EntitySet)
}
