package main

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/plus3/scene2d/components"
	"github.com/plus3/scene2d/internal/config"
	"github.com/plus3/scene2d/ecs"
)

const (
	bodySize  = 12
	wallWidth = 16
)

var (
	bodyTint = color.RGBA{R: 100, G: 180, B: 230, A: 255}
	wallTint = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// spawnWorld creates the static walls and cfg.Bodies falling boxes inside
// bounds.
func spawnWorld(scene *ecs.Scene, cfg config.DemoConfig, bounds components.Rect, rng *rand.Rand) error {
	if cfg.Walls {
		walls := []components.Rect{
			{X: bounds.X, Y: bounds.Y + bounds.Height - wallWidth, Width: bounds.Width, Height: wallWidth},
			{X: bounds.X, Y: bounds.Y, Width: wallWidth, Height: bounds.Height},
			{X: bounds.X + bounds.Width - wallWidth, Y: bounds.Y, Width: wallWidth, Height: bounds.Height},
		}
		for i, r := range walls {
			if _, err := spawnWall(scene, r, fmt.Sprintf("wall-%d", i)); err != nil {
				return err
			}
		}
	}
	for i := 0; i < cfg.Bodies; i++ {
		if _, err := spawnBody(scene, cfg.Gravity, bounds, rng); err != nil {
			return fmt.Errorf("spawn body %d: %w", i, err)
		}
	}
	return nil
}

func spawnWall(scene *ecs.Scene, r components.Rect, name string) (ecs.Entity, error) {
	e, err := scene.CreateEntity()
	if err != nil {
		return e, err
	}
	if err := scene.SetEntityName(e, name); err != nil {
		return e, err
	}

	collider := components.NewCollider(r.Width, r.Height)
	collider.IsStatic = true
	sprite := components.NewSprite("", r.Width, r.Height)
	sprite.Tint = wallTint

	if err := ecs.AddComponent(scene, e, components.NewTransform(r.X, r.Y)); err != nil {
		return e, err
	}
	if err := ecs.AddComponent(scene, e, collider); err != nil {
		return e, err
	}
	return e, ecs.AddComponent(scene, e, sprite)
}

func spawnBody(scene *ecs.Scene, gravity bool, bounds components.Rect, rng *rand.Rand) (ecs.Entity, error) {
	e, err := scene.CreateEntity()
	if err != nil {
		return e, err
	}

	x := bounds.X + wallWidth + rng.Float32()*(bounds.Width-2*wallWidth-bodySize)
	y := bounds.Y + rng.Float32()*bounds.Height/2
	rb := components.NewRigidBody()
	rb.UseGravity = gravity
	rb.Velocity = components.Vec2(rng.Float32()*200-100, 0)

	sprite := components.NewSprite("", bodySize, bodySize)
	sprite.Tint = bodyTint
	sprite.Layer = 1

	if err := ecs.AddComponent(scene, e, components.NewTransform(x, y)); err != nil {
		return e, err
	}
	if err := ecs.AddComponent(scene, e, rb); err != nil {
		return e, err
	}
	if err := ecs.AddComponent(scene, e, components.NewCollider(bodySize, bodySize)); err != nil {
		return e, err
	}
	return e, ecs.AddComponent(scene, e, sprite)
}

// respawnSystem destroys bodies that leave the world bounds and spawns a
// replacement at the top once the frame's commands are flushed.
type respawnSystem struct {
	ecs.SystemBase
	bounds components.Rect
	rng    *rand.Rand

	respawned int
}

func registerRespawn(scene *ecs.Scene, bounds components.Rect, rng *rand.Rand) (*respawnSystem, error) {
	transform, err := ecs.ComponentType[components.Transform](scene)
	if err != nil {
		return nil, err
	}
	body, err := ecs.ComponentType[components.RigidBody](scene)
	if err != nil {
		return nil, err
	}

	s := &respawnSystem{bounds: bounds, rng: rng}
	if err := scene.RegisterSystem(s); err != nil {
		return nil, err
	}
	return s, ecs.SetSystemSignature[*respawnSystem](scene, ecs.SignatureOf(transform, body))
}

func (s *respawnSystem) Update(frame *ecs.UpdateFrame) {
	scene := frame.Scene
	ecs.Each2(scene, s.Entities(), func(e ecs.Entity, t *components.Transform, rb *components.RigidBody) {
		if s.bounds.Intersects(components.Rect{X: t.Position.X, Y: t.Position.Y, Width: bodySize, Height: bodySize}) {
			return
		}
		gravity := rb.UseGravity
		frame.Commands.Destroy(e)
		frame.Commands.Defer(func() {
			if _, err := spawnBody(scene, gravity, s.bounds, s.rng); err == nil {
				s.respawned++
			}
		})
	})
}
