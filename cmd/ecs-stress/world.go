package main

import (
	"image/color"
	"math/rand"

	"github.com/plus3/scene2d/components"
	"github.com/plus3/scene2d/ecs"
	"github.com/plus3/scene2d/systems"
)

// spawnBody creates an entity with a Transform, a RigidBody, and a random
// mix of the optional components, so membership churns across systems.
func spawnBody(scene *ecs.Scene, rng *rand.Rand) error {
	e, err := scene.CreateEntity()
	if err != nil {
		return err
	}

	if err := ecs.AddComponent(scene, e, components.NewTransform(rng.Float32()*1280, rng.Float32()*720)); err != nil {
		return err
	}

	rb := components.NewRigidBody()
	rb.Velocity = components.Vec2(rng.Float32()*200-100, rng.Float32()*200-100)
	rb.UseGravity = rng.Intn(2) == 0
	if err := ecs.AddComponent(scene, e, rb); err != nil {
		return err
	}

	if rng.Intn(3) != 0 {
		sprite := components.NewSprite("", 4, 4)
		sprite.Layer = rng.Intn(4)
		sprite.Tint = color.RGBA{R: uint8(rng.Intn(256)), G: 180, B: 220, A: 255}
		if err := ecs.AddComponent(scene, e, sprite); err != nil {
			return err
		}
	}
	if rng.Intn(4) == 0 {
		if err := ecs.AddComponent(scene, e, components.NewCollider(4, 4)); err != nil {
			return err
		}
	}
	if rng.Intn(8) == 0 {
		if err := ecs.AddComponent(scene, e, components.NewProceduralGenerated(components.DirectGenerated)); err != nil {
			return err
		}
	}
	return nil
}

// churnSystem destroys a fraction of its members each frame through the
// command buffer and respawns the same number once the buffer is flushed.
type churnSystem struct {
	ecs.SystemBase
	rate float64
	rng  *rand.Rand

	destroyed int64
	respawned int64
}

func (s *churnSystem) Update(frame *ecs.UpdateFrame) {
	members := s.Entities()
	n := int(float64(members.Len()) * s.rate)
	if n == 0 {
		return
	}

	for e := range members.Iter() {
		if n == 0 {
			break
		}
		if s.rng.Float64() < s.rate {
			frame.Commands.Destroy(e)
			s.destroyed++
			n--
		}
	}

	queued := int(s.destroyed - s.respawned)
	scene := frame.Scene
	frame.Commands.Defer(func() {
		for i := 0; i < queued; i++ {
			if spawnBody(scene, s.rng) == nil {
				s.respawned++
			}
		}
	})
}

type countingDrawer struct {
	calls int64
}

func (d *countingDrawer) Draw(systems.DrawCommand) {
	d.calls++
}
