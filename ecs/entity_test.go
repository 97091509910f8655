package ecs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/plus3/scene2d/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityRegistryCreate(t *testing.T) {
	registry := ecs.NewEntityRegistry(3)

	assert.Equal(t, uint32(3), registry.Capacity())
	assert.Equal(t, uint32(0), registry.LivingCount())

	seen := map[ecs.Entity]bool{}
	for i := 0; i < 3; i++ {
		e, err := registry.Create()
		require.NoError(t, err)
		assert.NotEqual(t, ecs.Null, e)
		assert.False(t, seen[e], "id %d issued twice", e)
		seen[e] = true

		sig, err := registry.Signature(e)
		require.NoError(t, err)
		assert.True(t, sig.IsEmpty())
	}
	assert.Equal(t, uint32(3), registry.LivingCount())

	_, err := registry.Create()
	assert.ErrorIs(t, err, ecs.ErrCapacityExceeded)
	assert.Equal(t, uint32(3), registry.LivingCount())
}

func TestEntityRegistryFIFOReuse(t *testing.T) {
	registry := ecs.NewEntityRegistry(3)
	e1, _ := registry.Create()
	e2, _ := registry.Create()
	e3, _ := registry.Create()

	require.NoError(t, registry.Destroy(e2))
	require.NoError(t, registry.Destroy(e1))

	next, err := registry.Create()
	require.NoError(t, err)
	assert.Equal(t, e2, next, "least recently freed id is reused first")

	next, err = registry.Create()
	require.NoError(t, err)
	assert.Equal(t, e1, next)

	assert.True(t, registry.Alive(e3))
}

func TestEntityRegistryDestroyInvalid(t *testing.T) {
	registry := ecs.NewEntityRegistry(4)
	e, _ := registry.Create()

	tests := []struct {
		name   string
		entity ecs.Entity
	}{
		{"null", ecs.Null},
		{"out of range", ecs.Entity(99)},
		{"never created", ecs.Entity(4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := registry.Destroy(tt.entity)
			assert.ErrorIs(t, err, ecs.ErrInvalidEntity)

			var entityErr *ecs.EntityError
			require.True(t, errors.As(err, &entityErr))
			assert.Equal(t, tt.entity, entityErr.Entity)
		})
	}

	require.NoError(t, registry.Destroy(e))
	assert.ErrorIs(t, registry.Destroy(e), ecs.ErrInvalidEntity, "double destroy")
	assert.Equal(t, uint32(0), registry.LivingCount())
}

func TestEntityRegistrySignature(t *testing.T) {
	registry := ecs.NewEntityRegistry(2)
	e, _ := registry.Create()

	sig := ecs.SignatureOf(1, 4)
	require.NoError(t, registry.SetSignature(e, sig))
	got, err := registry.Signature(e)
	require.NoError(t, err)
	assert.Equal(t, sig, got)

	assert.ErrorIs(t, registry.SetSignature(ecs.Null, sig), ecs.ErrInvalidEntity)
	_, err = registry.Signature(ecs.Entity(2))
	assert.ErrorIs(t, err, ecs.ErrInvalidEntity)

	require.NoError(t, registry.Destroy(e))
	_, err = registry.Signature(e)
	assert.ErrorIs(t, err, ecs.ErrInvalidEntity)
}

func TestEntityRegistryEach(t *testing.T) {
	registry := ecs.NewEntityRegistry(5)
	var ids []ecs.Entity
	for i := 0; i < 5; i++ {
		e, _ := registry.Create()
		ids = append(ids, e)
	}
	require.NoError(t, registry.Destroy(ids[1]))
	require.NoError(t, registry.Destroy(ids[3]))

	var alive []ecs.Entity
	for e := range registry.Each() {
		alive = append(alive, e)
	}
	assert.Equal(t, []ecs.Entity{ids[0], ids[2], ids[4]}, alive)
}

func TestEntityRegistryUniqueUnderChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	registry := ecs.NewEntityRegistry(64)
	live := map[ecs.Entity]bool{}
	var order []ecs.Entity

	for step := 0; step < 5000; step++ {
		if len(order) > 0 && (rng.Intn(2) == 0 || len(order) == 64) {
			i := rng.Intn(len(order))
			e := order[i]
			order[i] = order[len(order)-1]
			order = order[:len(order)-1]
			require.NoError(t, registry.Destroy(e))
			delete(live, e)
			continue
		}

		e, err := registry.Create()
		require.NoError(t, err)
		require.False(t, live[e], "id %d handed out while alive", e)
		live[e] = true
		order = append(order, e)
		require.Equal(t, uint32(len(live)), registry.LivingCount())
	}
}
