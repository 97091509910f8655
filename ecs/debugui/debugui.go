// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// Panels are ordinary entities carrying an ImguiItem and only read the Scene API.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scene2d/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a scene resource.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every ImguiItem entity and
// refreshes the ImguiInputState resource.
type ImguiSystem struct {
	ecs.SystemBase
}

// Register registers ImguiItem and adds an ImguiSystem to scene.
func Register(scene *ecs.Scene) (*ImguiSystem, error) {
	id, err := ecs.RegisterComponent[ImguiItem](scene)
	if err != nil {
		return nil, err
	}
	s := &ImguiSystem{}
	if err := scene.RegisterSystem(s); err != nil {
		return nil, err
	}
	if err := ecs.SetSystemSignature[*ImguiSystem](scene, ecs.SignatureOf(id)); err != nil {
		return nil, err
	}
	ecs.SetResource(scene, ImguiInputState{})
	return s, nil
}

// Update queues all ImGui render functions for execution after the frame's
// structural changes are applied.
func (i *ImguiSystem) Update(frame *ecs.UpdateFrame) {
	if state, ok := ecs.Resource[ImguiInputState](frame.Scene); ok {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	ecs.Each1(frame.Scene, i.Entities(), func(_ ecs.Entity, item *ImguiItem) {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	})
}
