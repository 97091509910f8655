package systems_test

import (
	"testing"

	"github.com/plus3/scene2d/components"
	"github.com/plus3/scene2d/ecs"
	"github.com/plus3/scene2d/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScene(t *testing.T) *ecs.Scene {
	t.Helper()
	scene := ecs.NewScene()
	require.NoError(t, components.Register(scene))
	return scene
}

func spawn(t *testing.T, scene *ecs.Scene, values ...func(ecs.Entity) error) ecs.Entity {
	t.Helper()
	e, err := scene.CreateEntity()
	require.NoError(t, err)
	for _, add := range values {
		require.NoError(t, add(e))
	}
	return e
}

func with[T any](scene *ecs.Scene, v T) func(ecs.Entity) error {
	return func(e ecs.Entity) error {
		return ecs.AddComponent(scene, e, v)
	}
}

func TestRegisterRequiresComponents(t *testing.T) {
	scene := ecs.NewScene()
	_, err := systems.RegisterPhysics(scene)
	assert.ErrorIs(t, err, ecs.ErrUnregisteredType)
	assert.Equal(t, 0, scene.Systems().Len())
}

func TestPhysicsIntegration(t *testing.T) {
	scene := newScene(t)
	physics, err := systems.RegisterPhysics(scene)
	require.NoError(t, err)

	rb := components.NewRigidBody()
	rb.Drag = 1
	rb.Velocity = components.Vec2(10, 0)
	mover := spawn(t, scene, with(scene, components.NewTransform(0, 0)), with(scene, rb))

	falling := components.NewRigidBody()
	falling.Drag = 1
	falling.UseGravity = true
	faller := spawn(t, scene, with(scene, components.NewTransform(0, 0)), with(scene, falling))

	static := spawn(t, scene, with(scene, components.NewTransform(5, 5)))

	require.NoError(t, scene.Update(0.5))
	assert.Equal(t, 2, physics.Entities().Len())

	tr, _ := ecs.GetComponent[components.Transform](scene, mover)
	assert.InDelta(t, 5, tr.Position.X, 1e-4)

	body, _ := ecs.GetComponent[components.RigidBody](scene, faller)
	assert.InDelta(t, 245, body.Velocity.Y, 1e-3)
	assert.Equal(t, components.Vector2{}, body.Acceleration, "acceleration resets every step")
	tr, _ = ecs.GetComponent[components.Transform](scene, faller)
	assert.InDelta(t, 122.5, tr.Position.Y, 1e-3)

	tr, _ = ecs.GetComponent[components.Transform](scene, static)
	assert.Equal(t, components.Vec2(5, 5), tr.Position)
}

func TestPhysicsDrag(t *testing.T) {
	scene := newScene(t)
	_, err := systems.RegisterPhysics(scene)
	require.NoError(t, err)

	rb := components.NewRigidBody()
	rb.Velocity = components.Vec2(100, 0)
	e := spawn(t, scene, with(scene, components.NewTransform(0, 0)), with(scene, rb))

	require.NoError(t, scene.Update(1))
	body, _ := ecs.GetComponent[components.RigidBody](scene, e)
	assert.InDelta(t, 98, body.Velocity.X, 1e-4)
}

func TestCollisionSeparatesSolidBodies(t *testing.T) {
	scene := newScene(t)
	collision, err := systems.RegisterCollision(scene)
	require.NoError(t, err)

	rb := components.NewRigidBody()
	rb.Velocity = components.Vec2(-20, 3)
	right := spawn(t, scene,
		with(scene, components.NewTransform(8, 0)),
		with(scene, components.NewCollider(10, 10)),
		with(scene, rb))
	wall := components.NewCollider(10, 10)
	wall.IsStatic = true
	left := spawn(t, scene,
		with(scene, components.NewTransform(0, 0)),
		with(scene, wall))

	require.NoError(t, scene.Update(0.016))

	contacts := collision.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, right, contacts[0].A)
	assert.Equal(t, left, contacts[0].B)
	assert.Equal(t, components.Vec2(1, 0), contacts[0].Normal)
	assert.False(t, contacts[0].Trigger)

	tr, _ := ecs.GetComponent[components.Transform](scene, right)
	assert.Equal(t, float32(10), tr.Position.X, "pushed away from the wall")
	tr, _ = ecs.GetComponent[components.Transform](scene, left)
	assert.Equal(t, float32(0), tr.Position.X, "static colliders never move")

	body, _ := ecs.GetComponent[components.RigidBody](scene, right)
	assert.Equal(t, components.Vec2(10, 3), body.Velocity)
}

func TestCollisionMovableVsMovable(t *testing.T) {
	scene := newScene(t)
	_, err := systems.RegisterCollision(scene)
	require.NoError(t, err)

	top := spawn(t, scene,
		with(scene, components.NewTransform(0, 0)),
		with(scene, components.NewCollider(10, 10)))
	bottom := spawn(t, scene,
		with(scene, components.NewTransform(1, 9)),
		with(scene, components.NewCollider(10, 10)))

	require.NoError(t, scene.Update(0.016))

	tr, _ := ecs.GetComponent[components.Transform](scene, top)
	assert.Equal(t, float32(-1), tr.Position.Y)
	tr, _ = ecs.GetComponent[components.Transform](scene, bottom)
	assert.Equal(t, float32(10), tr.Position.Y)
}

func TestCollisionTriggersAreReportedOnly(t *testing.T) {
	scene := newScene(t)
	collision, err := systems.RegisterCollision(scene)
	require.NoError(t, err)

	trigger := components.NewCollider(10, 10)
	trigger.IsTrigger = true
	spawn(t, scene, with(scene, components.NewTransform(0, 0)), with(scene, trigger))
	e := spawn(t, scene, with(scene, components.NewTransform(5, 5)), with(scene, components.NewCollider(10, 10)))
	spawn(t, scene, with(scene, components.NewTransform(100, 100)), with(scene, components.NewCollider(10, 10)))

	require.NoError(t, scene.Update(0.016))

	require.Len(t, collision.Contacts(), 1)
	assert.True(t, collision.Contacts()[0].Trigger)
	tr, _ := ecs.GetComponent[components.Transform](scene, e)
	assert.Equal(t, components.Vec2(5, 5), tr.Position)
}

type recordingDrawer struct {
	cmds []systems.DrawCommand
}

func (d *recordingDrawer) Draw(cmd systems.DrawCommand) {
	d.cmds = append(d.cmds, cmd)
}

func TestRenderLayerOrder(t *testing.T) {
	scene := newScene(t)
	_, err := systems.RegisterRender(scene)
	require.NoError(t, err)

	sprite := func(layer int, visible bool) components.Sprite {
		s := components.NewSprite("", 8, 4)
		s.Layer = layer
		s.Visible = visible
		return s
	}

	top := spawn(t, scene, with(scene, components.NewTransform(0, 0)), with(scene, sprite(2, true)))
	bottomA := spawn(t, scene, with(scene, components.NewTransform(0, 0)), with(scene, sprite(0, true)))
	spawn(t, scene, with(scene, components.NewTransform(0, 0)), with(scene, sprite(0, false)))
	bottomB := spawn(t, scene, with(scene, components.NewTransform(0, 0)), with(scene, sprite(0, true)))

	scaled := components.NewTransform(10, 20)
	scaled.Scale = components.Vec2(2, 3)
	mid := spawn(t, scene, with(scene, scaled), with(scene, sprite(1, true)))

	drawer := &recordingDrawer{}
	scene.Render(drawer)

	var order []ecs.Entity
	for _, cmd := range drawer.cmds {
		order = append(order, cmd.Entity)
	}
	assert.Equal(t, []ecs.Entity{bottomA, bottomB, mid, top}, order)

	midCmd := drawer.cmds[2]
	assert.Equal(t, components.Rect{X: 10, Y: 20, Width: 16, Height: 12}, midCmd.Dest)
	assert.Equal(t, components.Vec2(8, 6), midCmd.Origin)
}

func TestRenderIgnoresForeignTargets(t *testing.T) {
	scene := newScene(t)
	_, err := systems.RegisterRender(scene)
	require.NoError(t, err)
	spawn(t, scene, with(scene, components.NewTransform(0, 0)), with(scene, components.NewSprite("", 1, 1)))

	assert.NotPanics(t, func() { scene.Render("not a drawer") })
}
