package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

/**
 * @file view_ebiten.go
 * @brief Graphical User Interface (GUI) viewer, the external "viewer"
 * collaborator, implemented as a pull interface: Draw calls
 * Simulator.Paint each frame rather than Simulator pushing frames at it.
 *
 * Structurally this is teacher's view_ebiten.go unchanged: an ebiten.Game
 * whose Update advances the simulation and whose Draw renders a block of
 * pixelScale x pixelScale pixels per occupied cell.
 */

const pixelScale = 5 // Pixels per cell, increase for better visibility.

var colAgent = color.RGBA{255, 230, 120, 255}
var colBg = color.RGBA{20, 40, 90, 255}

// game implements ebiten.Game, driving one Simulator tick per frame.
type game struct {
	sim *Simulator
}

// Update advances the simulation by one tick, unless MaxSteps has already
// been reached.
func (g *game) Update() error {
	if g.sim.GetTickCount() >= g.sim.MaxSteps {
		return nil
	}
	g.sim.Tick()
	return nil
}

// Draw reads current positions via Simulator.Paint and renders one
// pixelScale-sized block per agent.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colBg)
	for _, p := range g.sim.Paint() {
		for dy := 0; dy < pixelScale; dy++ {
			for dx := 0; dx < pixelScale; dx++ {
				screen.Set(p.X*pixelScale+dx, p.Y*pixelScale+dy, colAgent)
			}
		}
	}
}

// Layout reports the logical screen size, derived from the region backend's
// configured world dimensions (or a fixed fallback when none is set).
func (g *game) Layout(outW, outH int) (int, int) {
	w, h := 200, 200
	if g.sim.Engine.Regions != nil {
		w, h = g.sim.Engine.Regions.Width, g.sim.Engine.Regions.Height
	}
	return w * pixelScale, h * pixelScale
}

// runGUI sets up the window and runs the ebiten game loop, driving sim one
// tick per frame until MaxSteps is reached.
func runGUI(sim *Simulator) error {
	g := &game{sim: sim}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf(
		"Pedestrian Simulator | agents=%d backend=%s maxSteps=%d",
		len(sim.Agents), sim.Engine.Backend, sim.MaxSteps,
	))
	return ebiten.RunGame(g)
}
