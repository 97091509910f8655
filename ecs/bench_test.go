package ecs_test

import (
	"testing"

	"github.com/plus3/scene2d/ecs"
)

func BenchmarkCreateDestroy(b *testing.B) {
	scene := newTestScene()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := scene.CreateEntity()
		if err != nil {
			b.Fatal(err)
		}
		_ = scene.DestroyEntity(e)
	}
}

func BenchmarkAddRemoveComponent(b *testing.B) {
	scene := newTestScene()
	e, _ := scene.CreateEntity()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.AddComponent(scene, e, Position{X: 1, Y: 2})
		_ = ecs.RemoveComponent[Position](scene, e)
	}
}

func BenchmarkAddComponentWithSystems(b *testing.B) {
	scene := newTestScene()
	_ = scene.RegisterSystem(&MovementSystem{})
	_ = scene.RegisterSystem(&HealthSystem{})
	_ = scene.RegisterSystem(&RenderSystem{})
	_ = ecs.SetSystemSignature[*MovementSystem](scene,
		ecs.SignatureOf(mustTypeID[Position](scene), mustTypeID[Velocity](scene)))
	_ = ecs.SetSystemSignature[*HealthSystem](scene, ecs.SignatureOf(mustTypeID[Health](scene)))
	e, _ := scene.CreateEntity()
	_ = ecs.AddComponent(scene, e, Velocity{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.AddComponent(scene, e, Position{})
		_ = ecs.RemoveComponent[Position](scene, e)
	}
}

func BenchmarkGetComponent(b *testing.B) {
	scene := newTestScene()
	e, _ := scene.CreateEntity()
	_ = ecs.AddComponent(scene, e, Position{X: 1, Y: 2})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ecs.GetComponent[Position](scene, e)
	}
}

func BenchmarkStoreAll(b *testing.B) {
	scene := newTestScene()
	for i := 0; i < 1000; i++ {
		e, _ := scene.CreateEntity()
		_ = ecs.AddComponent(scene, e, Position{X: float32(i)})
	}
	store, _ := ecs.StoreOf[Position](scene.Catalog())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, pos := range store.All() {
			pos.X++
		}
	}
}

func BenchmarkSystemUpdate(b *testing.B) {
	scene := newTestScene()
	_ = scene.RegisterSystem(&MovementSystem{})
	_ = ecs.SetSystemSignature[*MovementSystem](scene,
		ecs.SignatureOf(mustTypeID[Position](scene), mustTypeID[Velocity](scene)))
	for i := 0; i < 1000; i++ {
		e, _ := scene.CreateEntity()
		_ = ecs.AddComponent(scene, e, Position{})
		_ = ecs.AddComponent(scene, e, Velocity{DX: 1, DY: 1})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = scene.Update(0.016)
	}
}
