package game

import (
	"image/color"
	"log"

	"chosenoffset.com/tennisfortwo/internal/render"
)

// State is the session state around the match.
type State int

const (
	StatePlaying State = iota
	StatePaused
)

// Manager owns the session: it forwards frames to the game while playing,
// holds the match still while paused and ends the loop on Escape.
type Manager struct {
	State    State
	Game     *Game
	Renderer render.Renderer
	InputMgr render.InputManager
}

// NewManager creates a new session manager around g.
func NewManager(g *Game) *Manager {
	return &Manager{
		State:    StatePlaying,
		Game:     g,
		Renderer: g.Renderer,
		InputMgr: g.InputMgr,
	}
}

// Update updates the session state.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Println("Quitting")
		return render.ErrQuit
	}

	if m.InputMgr.IsKeyJustPressed(render.KeyP) {
		switch m.State {
		case StatePlaying:
			m.State = StatePaused
			log.Println("Paused")
		case StatePaused:
			m.State = StatePlaying
			m.Game.Freeze()
			log.Println("Resumed")
		}
	}

	if m.State == StatePlaying {
		return m.Game.Update()
	}
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	m.Game.Draw(screen)
	if m.State == StatePaused {
		label := "PAUSED (P to resume)"
		w, h := m.Renderer.MeasureText(label, 1.5)
		sw, sh := screen.Size()
		x := (sw - w) / 2
		y := (sh - h) / 2
		m.Renderer.DrawText(screen, label, x, y, color.RGBA{255, 255, 255, 255}, 1.5)
	}
}

// Layout handles window resize. The logical size never changes; the engine
// scales it to the window.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.Game.Layout(outsideWidth, outsideHeight)
}
