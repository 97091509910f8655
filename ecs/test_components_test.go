package ecs_test

import "github.com/plus3/scene2d/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current int
	Max     int
}

type Transform struct {
	X, Y float32
}

type Sprite struct {
	Layer int
}

type Collider struct {
	W, H float32
}

type PlayerController struct{}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string

type Inventory struct {
	Items []string
}

func newTestScene(opts ...ecs.Option) *ecs.Scene {
	scene := ecs.NewScene(opts...)
	ecs.RegisterComponent[Position](scene)
	ecs.RegisterComponent[Velocity](scene)
	ecs.RegisterComponent[Health](scene)
	ecs.RegisterComponent[Transform](scene)
	ecs.RegisterComponent[Sprite](scene)
	ecs.RegisterComponent[Collider](scene)
	ecs.RegisterComponent[PlayerController](scene)
	ecs.RegisterComponent[Score](scene)
	ecs.RegisterComponent[Tag](scene)
	ecs.RegisterComponent[Inventory](scene)
	return scene
}

// mustTypeID resolves T against scene. It panics on
// unregistered types so test setup mistakes fail loudly.
func mustTypeID[T any](scene *ecs.Scene) ecs.ComponentTypeID {
	id, err := ecs.ComponentType[T](scene)
	if err != nil {
		panic(err)
	}
	return id
}
