// Package components defines the standard component records shared by the
// engine's gameplay systems and editor panels.
package components

import (
	"image/color"

	"github.com/plus3/scene2d/ecs"
)

// Transform places an entity in the world. Every visible or colliding
// entity carries one.
type Transform struct {
	Position Vector2
	Scale    Vector2
	Rotation float32
}

// NewTransform returns a Transform at (x, y) with unit scale.
func NewTransform(x, y float32) Transform {
	return Transform{
		Position: Vector2{X: x, Y: y},
		Scale:    Vector2{X: 1, Y: 1},
	}
}

// Rotation is an angle in degrees, kept apart from Transform for tools
// that edit it separately.
type Rotation struct {
	Angle float32
}

// Scale holds per-axis scale factors, kept apart from Transform for tools
// that edit it separately.
type Scale struct {
	Factor Vector2
}

func UniformScale(f float32) Scale {
	return Scale{Factor: Vector2{X: f, Y: f}}
}

// Sprite draws a region of a texture. Texture is an asset key resolved by
// the render back end; an empty key draws a filled rectangle of SourceRect
// size in Tint.
type Sprite struct {
	Texture    string
	SourceRect Rect
	Tint       color.RGBA
	Visible    bool
	Layer      int
}

// NewSprite returns a visible, untinted sprite of the given size.
func NewSprite(texture string, width, height float32) Sprite {
	return Sprite{
		Texture:    texture,
		SourceRect: Rect{Width: width, Height: height},
		Tint:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Visible:    true,
	}
}

// Collider is an axis-aligned box relative to the entity's position.
type Collider struct {
	Offset    Vector2
	Size      Vector2
	IsTrigger bool
	IsStatic  bool
}

// NewCollider returns a solid, movable box collider.
func NewCollider(width, height float32) Collider {
	return Collider{Size: Vector2{X: width, Y: height}}
}

// Bounds returns the collider's world rectangle for an entity at position.
func (c Collider) Bounds(position Vector2) Rect {
	return Rect{
		X:      position.X + c.Offset.X,
		Y:      position.Y + c.Offset.Y,
		Width:  c.Size.X,
		Height: c.Size.Y,
	}
}

// RigidBody gives an entity velocity integrated by the physics system.
type RigidBody struct {
	Velocity     Vector2
	Acceleration Vector2
	Drag         float32
	Mass         float32
	UseGravity   bool
}

// NewRigidBody returns a unit-mass body with the default damping.
func NewRigidBody() RigidBody {
	return RigidBody{Drag: 0.98, Mass: 1}
}

// AddForce accumulates force/mass into this frame's acceleration.
func (rb *RigidBody) AddForce(force Vector2) {
	mass := rb.Mass
	if mass == 0 {
		mass = 1
	}
	rb.Acceleration = rb.Acceleration.Add(force.Scale(1 / mass))
}

type GenerationType uint8

const (
	DirectGenerated GenerationType = iota
	ConvertedTile
	GameplayElement
)

func (t GenerationType) String() string {
	switch t {
	case ConvertedTile:
		return "ConvertedTile"
	case GameplayElement:
		return "GameplayElement"
	default:
		return "DirectGenerated"
	}
}

// ProceduralGenerated marks entities created by a level generator. TileX
// and TileY are -1 unless the entity was converted from a tile.
type ProceduralGenerated struct {
	Type  GenerationType
	TileX int
	TileY int
}

func NewProceduralGenerated(t GenerationType) ProceduralGenerated {
	return ProceduralGenerated{Type: t, TileX: -1, TileY: -1}
}

// AudioSource describes a sound attached to an entity. Playback itself is
// owned by the audio back end.
type AudioSource struct {
	AudioFile     string
	Volume        float32
	Pitch         float32
	Loop          bool
	PlayOnStart   bool
	Is3D          bool
	Playing       bool
	MinDistance   float32
	MaxDistance   float32
	RolloffFactor float32
}

func NewAudioSource(file string) AudioSource {
	return AudioSource{
		AudioFile:     file,
		Volume:        1,
		Pitch:         1,
		MinDistance:   10,
		MaxDistance:   100,
		RolloffFactor: 1,
	}
}

func (a *AudioSource) Play() { a.Playing = true }
func (a *AudioSource) Stop() { a.Playing = false }

// AudioListener is the point sound is heard from, usually the camera or
// the player.
type AudioListener struct {
	Forward      Vector2
	Up           Vector2
	MasterVolume float32
	Active       bool
}

func NewAudioListener() AudioListener {
	return AudioListener{
		Forward:      Vector2{X: 0, Y: -1},
		Up:           Vector2{X: 0, Y: 1},
		MasterVolume: 1,
		Active:       true,
	}
}

type LightType uint8

const (
	PointLight LightType = iota
	DirectionalLight
	SpotLight
)

type LightSource struct {
	Type             LightType
	Color            color.RGBA
	Intensity        float32
	Range            float32
	Direction        Vector2
	SpotAngle        float32
	CastShadows      bool
	Enabled          bool
	Flicker          bool
	FlickerSpeed     float32
	FlickerIntensity float32
}

func NewPointLight(radius float32) LightSource {
	return LightSource{
		Type:             PointLight,
		Color:            color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Intensity:        1,
		Range:            radius,
		Direction:        Vector2{X: 0, Y: -1},
		SpotAngle:        45,
		Enabled:          true,
		FlickerSpeed:     5,
		FlickerIntensity: 0.2,
	}
}

// Register registers every standard component with scene in a fixed
// order, so type IDs are stable across runs.
func Register(scene *ecs.Scene) error {
	registrations := []func(*ecs.Scene) (ecs.ComponentTypeID, error){
		ecs.RegisterComponent[Transform],
		ecs.RegisterComponent[Rotation],
		ecs.RegisterComponent[Scale],
		ecs.RegisterComponent[Sprite],
		ecs.RegisterComponent[Collider],
		ecs.RegisterComponent[RigidBody],
		ecs.RegisterComponent[ProceduralGenerated],
		ecs.RegisterComponent[AudioSource],
		ecs.RegisterComponent[AudioListener],
		ecs.RegisterComponent[LightSource],
	}
	for _, register := range registrations {
		if _, err := register(scene); err != nil {
			return err
		}
	}
	return nil
}
