package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/sched"
)

// frameHistory is a ring of frame times in milliseconds.
type frameHistory struct {
	samples []float32
	index   int
	filled  int
}

func newFrameHistory(size int) *frameHistory {
	if size < 1 {
		size = 1
	}
	return &frameHistory{samples: make([]float32, size)}
}

func (h *frameHistory) Push(ms float32) {
	h.samples[h.index] = ms
	h.index = (h.index + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Average is taken over the samples pushed so far.
func (h *frameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples {
		sum += v
	}
	return sum / float32(h.filled)
}

// PerformanceStats renders scheduler timing in an ImGui window.
type PerformanceStats struct {
	scheduler *sched.Scheduler
	history   *frameHistory
}

func NewPerformanceStats(scheduler *sched.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		history:   newFrameHistory(historyFrames),
	}
}

// Record adds one frame's delta time in seconds to the graph.
func (ps *PerformanceStats) Record(deltaTime float64) {
	ps.history.Push(float32(deltaTime * 1000.0))
}

// Item returns the panel for Add.
func (ps *PerformanceStats) Item() ImguiItem {
	return ImguiItem{Name: "Performance Stats", Render: ps.Render}
}

func (ps *PerformanceStats) Render() {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	avg := ps.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history.samples[0], int32(len(ps.history.samples)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, row := range systemRows(stats) {
				imgui.TableNextRow()
				for _, cell := range row {
					imgui.TableNextColumn()
					imgui.Text(cell)
				}
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Resources") {
		for _, name := range ps.scheduler.Resources().Names() {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func systemRows(stats *sched.SchedulerStats) [][]string {
	rows := make([][]string, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%d", s.ExecutionCount),
			s.LastDuration.String(),
			s.AvgDuration.String(),
			s.MaxDuration.String(),
		})
	}
	return rows
}
