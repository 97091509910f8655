package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/scene2d/ecs"
	"github.com/plus3/scene2d/systems"
)

// screenDrawer fills each sprite's destination rectangle with its tint.
// Rotation is ignored; the demo only draws axis-aligned boxes.
type screenDrawer struct {
	screen *ebiten.Image
}

func (d *screenDrawer) Draw(cmd systems.DrawCommand) {
	r := cmd.Dest
	vector.DrawFilledRect(d.screen, r.X, r.Y, r.Width, r.Height, cmd.Tint, false)
}

func drawHUD(screen *ebiten.Image, scene *ecs.Scene, contacts int) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("entities: %d/%d  contacts: %d  tps: %0.1f\nQ/Esc to quit",
		scene.LivingCount(), scene.Capacity(), contacts, ebiten.ActualTPS()))
}
