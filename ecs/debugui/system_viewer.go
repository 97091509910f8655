package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scene2d/ecs"
)

func NewSystemViewerComponent(historyFrames int) SystemViewerComponent {
	return SystemViewerComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// Render shows scene occupancy, a frame time graph, and per-system
// membership and timings in dispatch order.
func (sv *SystemViewerComponent) Render(scene *ecs.Scene, deltaTime float32) {
	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sv.record(deltaTime)
	stats := scene.CollectStats()

	imgui.Text(fmt.Sprintf("Living Entities: %d / %d", stats.LivingEntities, stats.Capacity))
	imgui.Text(fmt.Sprintf("Component Types: %d", len(stats.Components)))
	imgui.Text(fmt.Sprintf("Resources: %d", stats.ResourceCount))

	avgFrameTime := sv.averageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &sv.frameHistory[0], int32(len(sv.frameHistory)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Members")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%08X", uint32(sys.Signature)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.Members))
			imgui.TableNextColumn()
			imgui.Text(formatDuration(sys.LastDuration))
			imgui.TableNextColumn()
			imgui.Text(formatDuration(sys.AvgDuration))
			imgui.TableNextColumn()
			imgui.Text(formatDuration(sys.MaxDuration))
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Total executions: %d", stats.Systems.TotalExecutions))

	imgui.End()
}

func (sv *SystemViewerComponent) record(deltaTime float32) {
	if sv.historyFrames == 0 {
		return
	}
	sv.frameHistory[sv.frameIndex] = deltaTime * 1000.0
	sv.frameIndex = (sv.frameIndex + 1) % sv.historyFrames
}

func (sv *SystemViewerComponent) averageFrameTime() float32 {
	if sv.historyFrames == 0 {
		return 0
	}
	var total float32
	for _, ft := range sv.frameHistory {
		total += ft
	}
	return total / float32(sv.historyFrames)
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}

// FrameTimer measures wall time between calls. Store it as a scene
// resource to feed the system viewer.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() FrameTimer {
	return FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) DeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
