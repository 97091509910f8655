package debugui

import "github.com/plus3/scene2d/ecs"

// Panels holds the debug panel state spawned into a scene.
type Panels struct {
	Browser    *EntityBrowserComponent
	Inspector  *ComponentInspectorComponent
	Components *ComponentViewerComponent
	Systems    *SystemViewerComponent
	Query      *QueryDebuggerComponent
}

// RegisterDebugUIComponents registers the panel component types.
func RegisterDebugUIComponents(scene *ecs.Scene) error {
	registrations := []func(*ecs.Scene) (ecs.ComponentTypeID, error){
		ecs.RegisterComponent[EntityBrowserComponent],
		ecs.RegisterComponent[ComponentInspectorComponent],
		ecs.RegisterComponent[ComponentViewerComponent],
		ecs.RegisterComponent[SystemViewerComponent],
		ecs.RegisterComponent[QueryDebuggerComponent],
	}
	for _, register := range registrations {
		if _, err := register(scene); err != nil {
			return err
		}
	}
	return nil
}

// SpawnDebugUI creates one entity per panel plus a single ImguiItem entity
// that draws them all in a fixed order. Register must have been called.
func SpawnDebugUI(scene *ecs.Scene) (*Panels, error) {
	if err := RegisterDebugUIComponents(scene); err != nil {
		return nil, err
	}

	panels := &Panels{}
	var err error
	if panels.Browser, err = spawnPanel(scene, NewEntityBrowserComponent(100)); err != nil {
		return nil, err
	}
	if panels.Inspector, err = spawnPanel(scene, NewComponentInspectorComponent()); err != nil {
		return nil, err
	}
	if panels.Components, err = spawnPanel(scene, NewComponentViewerComponent()); err != nil {
		return nil, err
	}
	if panels.Systems, err = spawnPanel(scene, NewSystemViewerComponent(120)); err != nil {
		return nil, err
	}
	if panels.Query, err = spawnPanel(scene, NewQueryDebuggerComponent()); err != nil {
		return nil, err
	}

	ecs.SetResource(scene, NewFrameTimer())

	e, err := scene.CreateEntity()
	if err != nil {
		return nil, err
	}
	if err := scene.SetEntityName(e, "debugui"); err != nil {
		return nil, err
	}
	err = ecs.AddComponent(scene, e, ImguiItem{Render: func() {
		panels.render(scene)
	}})
	if err != nil {
		return nil, err
	}
	return panels, nil
}

// spawnPanel stores panel on a new entity and returns a pointer into the
// store. No other entity holds a T, so the pointer stays valid.
func spawnPanel[T any](scene *ecs.Scene, panel T) (*T, error) {
	e, err := scene.CreateEntity()
	if err != nil {
		return nil, err
	}
	if err := ecs.AddComponent(scene, e, panel); err != nil {
		return nil, err
	}
	return ecs.GetComponent[T](scene, e)
}

func (p *Panels) render(scene *ecs.Scene) {
	var dt float32
	if timer, ok := ecs.Resource[FrameTimer](scene); ok {
		dt = timer.DeltaTime()
	}

	p.Browser.Render(scene)
	p.Inspector.Render(scene, p.Browser.SelectedEntity(scene))
	if id := p.Components.Render(scene); id != nil {
		p.Browser.RequireType(*id)
	}
	p.Systems.Render(scene, dt)
	p.Query.Render(scene)
}
