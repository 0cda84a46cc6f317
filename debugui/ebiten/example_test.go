package ebiten_test

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/systems"
)

// Game implements ebiten.Game and draws the overlay over a running world.
type Game struct {
	world   *systems.World
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.backend.Frame(func() {
		g.world.Step(time.Second / 60)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the playfield here, then the overlay on top.
	g.backend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("blockfall debug", 1280, 720)

	world := systems.NewWorld(systems.Options{
		Register: debugui.RegisterResources,
	})
	world.Scheduler.Register(&debugui.ImguiSystem{})
	debugui.Add(world.Resources, debugui.NewGameInspector(world.Game).Item())
	debugui.Add(world.Resources, debugui.NewPerformanceStats(world.Scheduler, 120).Item())

	if err := ebiten.RunGame(&Game{world: world, backend: backend}); err != nil {
		panic(err)
	}
}
