package systems

import (
	"github.com/plus3/scene2d/components"
	"github.com/plus3/scene2d/ecs"
)

// Gravity is the downward acceleration applied to bodies with UseGravity,
// in pixels per second squared.
const Gravity = 980.0

// PhysicsSystem integrates every entity with a Transform and a RigidBody.
type PhysicsSystem struct {
	ecs.SystemBase
}

func RegisterPhysics(scene *ecs.Scene) (*PhysicsSystem, error) {
	s := &PhysicsSystem{}
	err := register(scene, s,
		ecs.ComponentType[components.Transform],
		ecs.ComponentType[components.RigidBody],
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PhysicsSystem) Update(frame *ecs.UpdateFrame) {
	dt := float32(frame.DeltaTime)
	ecs.Each2(frame.Scene, s.Entities(), func(_ ecs.Entity, t *components.Transform, rb *components.RigidBody) {
		if rb.UseGravity {
			rb.Acceleration.Y += Gravity * dt
		}
		rb.Velocity = rb.Velocity.Add(rb.Acceleration.Scale(dt))
		rb.Velocity = rb.Velocity.Scale(rb.Drag)
		t.Position = t.Position.Add(rb.Velocity.Scale(dt))
		rb.Acceleration = components.Vector2{}
	})
}
