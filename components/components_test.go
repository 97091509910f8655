package components_test

import (
	"testing"

	"github.com/plus3/scene2d/components"
	"github.com/plus3/scene2d/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	scene := ecs.NewScene()
	require.NoError(t, components.Register(scene))

	id, err := ecs.ComponentType[components.Transform](scene)
	require.NoError(t, err)
	assert.Equal(t, ecs.ComponentTypeID(1), id, "Name is always registered first")

	id, err = ecs.ComponentType[components.LightSource](scene)
	require.NoError(t, err)
	assert.Equal(t, ecs.ComponentTypeID(10), id)

	require.NoError(t, components.Register(scene), "registration is idempotent")
	assert.Equal(t, 11, scene.Catalog().Len())
}

func TestColliderBounds(t *testing.T) {
	c := components.NewCollider(10, 20)
	c.Offset = components.Vec2(-5, -10)

	assert.Equal(t, components.Rect{X: 95, Y: 40, Width: 10, Height: 20}, c.Bounds(components.Vec2(100, 50)))
}

func TestRectIntersects(t *testing.T) {
	a := components.Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name string
		b    components.Rect
		want bool
	}{
		{"overlap", components.Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", components.Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching edge", components.Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"apart", components.Rect{X: 30, Y: 30, Width: 1, Height: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(a))
		})
	}
	assert.Equal(t, components.Vec2(5, 5), a.Center())
}

func TestRigidBodyAddForce(t *testing.T) {
	rb := components.NewRigidBody()
	rb.Mass = 2
	rb.AddForce(components.Vec2(10, -4))
	rb.AddForce(components.Vec2(2, 0))
	assert.Equal(t, components.Vec2(6, -2), rb.Acceleration)

	massless := components.RigidBody{}
	massless.AddForce(components.Vec2(1, 1))
	assert.Equal(t, components.Vec2(1, 1), massless.Acceleration)
}

func TestDefaults(t *testing.T) {
	tr := components.NewTransform(3, 4)
	assert.Equal(t, components.Vec2(1, 1), tr.Scale)

	s := components.NewSprite("hero.png", 16, 24)
	assert.True(t, s.Visible)
	assert.Equal(t, uint8(255), s.Tint.A)

	p := components.NewProceduralGenerated(components.ConvertedTile)
	assert.Equal(t, -1, p.TileX)
	assert.Equal(t, "ConvertedTile", p.Type.String())

	a := components.NewAudioSource("hit.wav")
	a.Play()
	assert.True(t, a.Playing)
	a.Stop()
	assert.False(t, a.Playing)

	assert.True(t, components.NewAudioListener().Active)
	assert.Equal(t, float32(64), components.NewPointLight(64).Range)
	assert.Equal(t, float32(5), components.Vec2(3, 4).Length())
}
