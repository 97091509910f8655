package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scene2d/ecs"
)

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selected: make(map[ecs.ComponentTypeID]bool),
	}
}

// Signature returns the signature built from the checked component types.
func (qd *QueryDebuggerComponent) Signature() ecs.Signature {
	var sig ecs.Signature
	for id, on := range qd.selected {
		if on {
			sig = sig.Set(id)
		}
	}
	return sig
}

// Render lets the user compose a signature and shows which entities and
// systems it matches.
func (qd *QueryDebuggerComponent) Render(scene *ecs.Scene) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		clear(qd.selected)
	}

	for _, info := range scene.Catalog().Types() {
		selected := qd.selected[info.ID]
		if imgui.Checkbox(info.Type.String(), &selected) {
			if selected {
				qd.selected[info.ID] = true
			} else {
				delete(qd.selected, info.ID)
			}
		}
	}

	imgui.Separator()

	sig := qd.Signature()
	if sig.IsEmpty() {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Signature: %s", sig))
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(scene.EntitiesWith(sig))))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QuerySystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Signature")
			imgui.TableSetupColumn("Members")
			imgui.TableSetupColumn("Covered")
			imgui.TableHeadersRow()

			for _, m := range matchSystems(scene, sig) {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(m.Name)

				imgui.TableSetColumnIndex(1)
				imgui.Text(fmt.Sprintf("0x%08X", uint32(m.Signature)))

				imgui.TableSetColumnIndex(2)
				imgui.Text(fmt.Sprintf("%d", m.Members))

				imgui.TableSetColumnIndex(3)
				if m.Covers {
					imgui.Text("yes")
				} else {
					imgui.Text("no")
				}
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
