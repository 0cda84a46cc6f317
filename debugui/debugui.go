// Package debugui provides a Dear ImGui overlay for a running game. Panels
// are stored as a scheduler resource and rendered by ImguiSystem.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/sched"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// Panels is the resource listing every ImguiItem to render each frame.
type Panels struct {
	Items []ImguiItem
}

// ImguiInputState tracks Dear ImGui's input capture state. Frontends use it
// to keep typing in an overlay window from moving the piece.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// RegisterResources registers the overlay resource types.
func RegisterResources(registry *sched.ResourceRegistry) {
	sched.RegisterResource[Panels](registry)
	sched.RegisterResource[ImguiInputState](registry)
}

// Add appends a panel, creating the Panels resource if needed.
func Add(resources *sched.Resources, item ImguiItem) {
	panels := sched.NewSingleton[Panels](resources).Get()
	panels.Items = append(panels.Items, item)
}

// ImguiSystem updates ImguiInputState and defers every panel's render
// function to the end of the frame.
type ImguiSystem struct {
	Panels     sched.Singleton[Panels]
	InputState sched.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *sched.UpdateFrame) {
	if !i.InputState.Exists() {
		sched.Insert(frame.Resources, ImguiInputState{})
	}
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	panels := i.Panels.Get()
	if panels == nil {
		return
	}
	for _, item := range panels.Items {
		frame.Commands.Defer(item.Render)
	}
}

// KeyboardCaptured reports whether the overlay currently wants key input.
func KeyboardCaptured(resources *sched.Resources) bool {
	state := sched.Get[ImguiInputState](resources)
	return state != nil && state.WantCaptureKeyboard
}
