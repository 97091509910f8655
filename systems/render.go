package systems

import (
	"image/color"
	"slices"

	"github.com/plus3/scene2d/components"
	"github.com/plus3/scene2d/ecs"
)

// DrawCommand is one sprite ready for the back end. Dest is the sprite's
// source size scaled by its Transform and placed at its position; Origin is
// the rotation pivot relative to Dest.
type DrawCommand struct {
	Entity   ecs.Entity
	Texture  string
	Source   components.Rect
	Dest     components.Rect
	Rotation float32
	Origin   components.Vector2
	Tint     color.RGBA
	Layer    int
}

// Drawer is implemented by render back ends. Scene.Render must be given a
// Drawer as its target for RenderSystem to draw anything.
type Drawer interface {
	Draw(cmd DrawCommand)
}

// RenderSystem draws every visible Transform+Sprite entity, lower layers
// first. Sprites on the same layer draw in entity id order.
type RenderSystem struct {
	ecs.SystemBase
	queue []DrawCommand
}

func RegisterRender(scene *ecs.Scene) (*RenderSystem, error) {
	s := &RenderSystem{}
	err := register(scene, s,
		ecs.ComponentType[components.Transform],
		ecs.ComponentType[components.Sprite],
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *RenderSystem) Update(*ecs.UpdateFrame) {}

func (s *RenderSystem) Render(frame *ecs.RenderFrame) {
	drawer, ok := frame.Target.(Drawer)
	if !ok {
		return
	}
	for _, cmd := range s.Queue(frame.Scene) {
		drawer.Draw(cmd)
	}
}

// Queue builds the frame's draw list in draw order. The slice is reused by
// the next call.
func (s *RenderSystem) Queue(scene *ecs.Scene) []DrawCommand {
	s.queue = s.queue[:0]

	for _, e := range s.Entities().Sorted() {
		t, err := ecs.GetComponent[components.Transform](scene, e)
		if err != nil {
			continue
		}
		sprite, err := ecs.GetComponent[components.Sprite](scene, e)
		if err != nil || !sprite.Visible {
			continue
		}

		dest := components.Rect{
			X:      t.Position.X,
			Y:      t.Position.Y,
			Width:  sprite.SourceRect.Width * t.Scale.X,
			Height: sprite.SourceRect.Height * t.Scale.Y,
		}
		s.queue = append(s.queue, DrawCommand{
			Entity:   e,
			Texture:  sprite.Texture,
			Source:   sprite.SourceRect,
			Dest:     dest,
			Rotation: t.Rotation,
			Origin:   components.Vector2{X: dest.Width / 2, Y: dest.Height / 2},
			Tint:     sprite.Tint,
			Layer:    sprite.Layer,
		})
	}

	slices.SortStableFunc(s.queue, func(a, b DrawCommand) int {
		return a.Layer - b.Layer
	})
	return s.queue
}
