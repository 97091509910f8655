package debugui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scene2d/ecs"
)

func NewComponentViewerComponent() ComponentViewerComponent {
	return ComponentViewerComponent{
		sortColumn:    0,
		sortAscending: true,
	}
}

// Render lists every registered component type with its store occupancy.
// It returns the type ID clicked this frame, or nil.
func (cv *ComponentViewerComponent) Render(scene *ecs.Scene) *ecs.ComponentTypeID {
	if !imgui.BeginV("Component Stores", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	infos := scene.Catalog().Types()
	sortComponentInfos(infos, cv.sortColumn, cv.sortAscending)
	imgui.Text(fmt.Sprintf("Registered types: %d / %d", len(infos), ecs.MaxComponentTypes))

	var clicked *ecs.ComponentTypeID

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ComponentTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Type ID")
		imgui.TableSetupColumn("Type")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("Capacity")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			cv.sortColumn = int(spec.ColumnIndex())
			cv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortComponentInfos(infos, cv.sortColumn, cv.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, info := range infos {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := cv.selectedType != nil && *cv.selectedType == info.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				id := info.ID
				clicked = &id
				cv.selectedType = &id
			}

			imgui.TableNextColumn()
			imgui.Text(info.Type.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Count))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Capacity))

			if info.Capacity > 0 {
				barWidth := float32(info.Count) / float32(info.Capacity) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

// sortComponentInfos orders by column: 0 id, 1 type name, 2 count,
// 3 capacity.
func sortComponentInfos(infos []ecs.ComponentInfo, column int, ascending bool) {
	slices.SortStableFunc(infos, func(a, b ecs.ComponentInfo) int {
		var c int
		switch column {
		case 1:
			c = strings.Compare(a.Type.String(), b.Type.String())
		case 2:
			c = a.Count - b.Count
		case 3:
			c = a.Capacity - b.Capacity
		default:
			c = int(a.ID) - int(b.ID)
		}
		if !ascending {
			return -c
		}
		return c
	})
}
