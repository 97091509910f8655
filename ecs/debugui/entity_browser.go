package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scene2d/ecs"
)

func NewEntityBrowserComponent(maxEntitiesPerPage int) EntityBrowserComponent {
	return EntityBrowserComponent{
		sortAscending:      true,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

// Render draws the browser. The entity list is rebuilt every frame because
// any add or remove may change a row.
func (eb *EntityBrowserComponent) Render(scene *ecs.Scene) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rows = collectEntities(scene)
	sortEntities(eb.rows, eb.sortColumn, eb.sortAscending)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterSignature = 0
	}
	if !eb.filterSignature.IsEmpty() {
		imgui.Text(fmt.Sprintf("Requiring signature %s", eb.filterSignature))
	}

	filtered := filterEntities(eb.rows, eb.filterText, eb.filterSignature)
	totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
	if eb.currentPage >= totalPages {
		eb.currentPage = max(totalPages-1, 0)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortEntities(filtered, eb.sortColumn, eb.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filtered))

		for i := startIdx; i < endIdx; i++ {
			row := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntity == row.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntity = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(row.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%08X", uint32(row.Signature)))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(row.ComponentTypes)))
		}

		imgui.EndTable()
	}

	if totalPages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d / %d entities", len(filtered), scene.Capacity()))
	}

	imgui.End()
}

// SelectedEntity returns the entity last clicked, or ecs.Null. A selection
// that has since been destroyed is cleared.
func (eb *EntityBrowserComponent) SelectedEntity(scene *ecs.Scene) ecs.Entity {
	if !scene.Alive(eb.selectedEntity) {
		eb.selectedEntity = ecs.Null
	}
	return eb.selectedEntity
}

// RequireType limits the list to entities holding the given component type.
func (eb *EntityBrowserComponent) RequireType(id ecs.ComponentTypeID) {
	eb.filterSignature = ecs.SignatureOf(id)
	eb.currentPage = 0
}
