package ecs

// UpdateFrame is the context handed to every system during Scene.Update.
type UpdateFrame struct {
	DeltaTime float64
	Scene     *Scene
	Commands  *Commands
}

// RenderFrame is the context handed to every Renderer during Scene.Render.
// Target is the back-end surface supplied by the caller, for example an
// *ebiten.Image.
type RenderFrame struct {
	Scene  *Scene
	Target any
}

func newUpdateFrame(dt float64, scene *Scene) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Scene:     scene,
		Commands:  newCommands(),
	}
}
