// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/scene2d/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Store it as a scene resource so systems and the host loop share it.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend window and disables imgui.ini.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}

// Host runs a scene inside an ebiten.Game with an ImGui overlay. ImGui
// frames bracket Scene.Update so ImguiItem render functions deferred by
// the ImguiSystem run inside the frame. A zero Backend runs the scene
// without the overlay.
type Host struct {
	Scene   *ecs.Scene
	Backend ImguiBackend
	// DrawScene is called before the overlay with the screen image.
	DrawScene func(screen *ebiten.Image)
	// OnUpdateError is called with any command flush error. Nil ignores it.
	OnUpdateError func(error)
}

func (h *Host) overlay() bool {
	return h.Backend.EbitenBackend != nil
}

func (h *Host) Update() error {
	if h.overlay() {
		h.Backend.BeginFrame()
		defer h.Backend.EndFrame()
	}
	if err := h.Scene.Update(1.0 / float64(ebiten.TPS())); err != nil && h.OnUpdateError != nil {
		h.OnUpdateError(err)
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	if h.DrawScene != nil {
		h.DrawScene(screen)
	}
	if h.overlay() {
		h.Backend.Draw(screen)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.overlay() {
		h.Backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
