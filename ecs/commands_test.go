package ecs_test

import (
	"testing"

	"github.com/plus3/scene2d/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commandSystem struct {
	queue func(c *ecs.Commands)
}

func (s *commandSystem) Update(frame *ecs.UpdateFrame) {
	s.queue(frame.Commands)
}

func TestCommandsFlushOrder(t *testing.T) {
	scene := newTestScene()
	e, _ := scene.CreateEntity()
	require.NoError(t, ecs.AddComponent(scene, e, Velocity{DX: 1}))

	var deferred []string
	require.NoError(t, scene.RegisterSystem(&commandSystem{queue: func(c *ecs.Commands) {
		c.Defer(func() {
			deferred = append(deferred, "defer")
			assert.True(t, ecs.HasComponent[Health](scene, e), "defers run after adds")
		})
		ecs.QueueAdd(c, e, Health{Current: 10})
		ecs.QueueRemove[Velocity](c, e)
		assert.Equal(t, 3, c.Len())
	}}))

	assert.False(t, ecs.HasComponent[Health](scene, e))
	require.NoError(t, scene.Update(0.016))

	assert.True(t, ecs.HasComponent[Health](scene, e))
	assert.False(t, ecs.HasComponent[Velocity](scene, e))
	assert.Equal(t, []string{"defer"}, deferred)
}

func TestCommandsSkipDestroyedEntities(t *testing.T) {
	scene := newTestScene()
	e, _ := scene.CreateEntity()
	require.NoError(t, ecs.AddComponent(scene, e, Velocity{}))

	require.NoError(t, scene.RegisterSystem(&commandSystem{queue: func(c *ecs.Commands) {
		ecs.QueueAdd(c, e, Health{})
		ecs.QueueRemove[Velocity](c, e)
		c.Destroy(e)
		c.Destroy(e)
	}}))

	require.NoError(t, scene.Update(0.016), "commands for an entity destroyed in the same flush are dropped")
	assert.False(t, scene.Alive(e))
	assert.Equal(t, uint32(0), scene.LivingCount())
}

func TestCommandsJoinErrors(t *testing.T) {
	scene := newTestScene()
	e, _ := scene.CreateEntity()

	require.NoError(t, scene.RegisterSystem(&commandSystem{queue: func(c *ecs.Commands) {
		ecs.QueueRemove[Velocity](c, e)
		c.Destroy(ecs.Entity(4999))
		ecs.QueueAdd(c, e, Position{X: 3})
	}}))

	err := scene.Update(0.016)
	require.Error(t, err)
	assert.ErrorIs(t, err, ecs.ErrInvalidEntity)
	assert.ErrorIs(t, err, ecs.ErrComponentNotFound)

	pos, getErr := ecs.GetComponent[Position](scene, e)
	require.NoError(t, getErr, "one failing command does not stop the rest")
	assert.Equal(t, float32(3), pos.X)
}

func TestCommandsResetBetweenFrames(t *testing.T) {
	scene := newTestScene()
	calls := 0
	require.NoError(t, scene.RegisterSystem(&commandSystem{queue: func(c *ecs.Commands) {
		assert.Equal(t, 0, c.Len())
		c.Defer(func() { calls++ })
	}}))

	for i := 0; i < 3; i++ {
		require.NoError(t, scene.Update(0.016))
	}
	assert.Equal(t, 3, calls)
}
