package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"chosenoffset.com/tennisfortwo/internal/physics"
	"chosenoffset.com/tennisfortwo/internal/render"
	"chosenoffset.com/tennisfortwo/internal/simulation"
)

// flashDuration is how long the SCORE! message stays up, in seconds.
const flashDuration = 1.0

// Game drives one match: each Update samples the keyboard, ticks the match
// and ages the on-screen messages. Draw only reads match state.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	PanelWidth   int // Width of each player's input panel
	HeaderHeight int // Score and instructions row above the court
	CourtWidth   float64
	CourtHeight  float64

	Match    *physics.Match
	Renderer render.Renderer
	InputMgr render.InputManager
	Bindings Bindings
	Clock    Clock
	MaxDelta float64

	// Score flashes per side
	LeftMessages  []Message
	RightMessages []Message

	// Instructions shown above each panel
	LeftHelp  [2]string
	RightHelp [2]string

	LastResult physics.TickResult

	// Debug
	Debug      bool
	FrameCount int

	lastFrame time.Time
	hasFrame  bool

	// held is this frame's key snapshot. blocked keeps the controls that
	// were down when the last point was scored; each is ignored until its
	// key goes up, so a held strike does not serve again.
	held    physics.Controls
	blocked physics.Controls
}

// NewGame builds a match from cfg and wires it to the renderer and input.
func NewGame(cfg *simulation.Config, r render.Renderer, input render.InputManager, clock Clock) (*Game, error) {
	match, err := physics.NewMatch(cfg)
	if err != nil {
		return nil, err
	}
	bindings, err := NewBindings(cfg.Controls)
	if err != nil {
		return nil, fmt.Errorf("failed to bind controls: %w", err)
	}

	panelWidth := int(cfg.Court.Width / 4)
	headerHeight := 64
	g := &Game{
		ScreenWidth:  int(cfg.Court.Width) + 2*panelWidth,
		ScreenHeight: int(cfg.Court.Height) + headerHeight,
		PanelWidth:   panelWidth,
		HeaderHeight: headerHeight,
		CourtWidth:   cfg.Court.Width,
		CourtHeight:  cfg.Court.Height,
		Match:        match,
		Renderer:     r,
		InputMgr:     input,
		Bindings:     bindings,
		Clock:        clock,
		MaxDelta:     cfg.Physics.MaxDelta,
		LeftHelp:     helpText(cfg.Controls.Left),
		RightHelp:    helpText(cfg.Controls.Right),
	}
	match.OnScore = g.onScore
	return g, nil
}

func helpText(c simulation.SideControls) [2]string {
	return [2]string{
		fmt.Sprintf("%s/%s to move", c.Raise, c.Lower),
		fmt.Sprintf("%s to strike", c.Strike),
	}
}

// Update samples input and advances the match by the time since the last frame.
func (g *Game) Update() error {
	now := g.Clock.Now()
	var dt float64
	if g.hasFrame {
		dt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now
	g.hasFrame = true

	g.held = g.Bindings.Held(g.InputMgr)
	g.blocked &= g.held
	g.Match.SampleInput(g.held&^g.blocked, now)

	res, err := g.Match.Tick(dt)
	if errors.Is(err, physics.ErrInvalidDelta) {
		// A stalled window can hand us a huge frame; replay it at the limit.
		log.Printf("Rejected tick of %.3fs, retrying with %.3fs", dt, g.MaxDelta)
		dt = g.MaxDelta
		res, err = g.Match.Tick(dt)
	}
	if err != nil {
		return fmt.Errorf("tick failed: %w", err)
	}
	g.LastResult = res

	g.updateMessages(dt)
	g.FrameCount++
	return nil
}

// Freeze forgets the last frame time. Call it when resuming after a pause so
// the paused time is not simulated.
func (g *Game) Freeze() {
	g.hasFrame = false
	g.Match.RestartInputClock()
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) onScore(winner physics.Side, score physics.Score) {
	log.Printf("Point to %s (%d-%d)", winner, score.Left, score.Right)
	g.blocked = g.held
	g.ShowMessage(winner, "SCORE!")
}

// ShowMessage adds a fading message above a side's panel.
func (g *Game) ShowMessage(side physics.Side, text string) {
	msg := Message{
		Text:     text,
		TimeLeft: flashDuration,
		MaxTime:  flashDuration,
	}
	switch side {
	case physics.Left:
		g.LeftMessages = append(g.LeftMessages, msg)
	case physics.Right:
		g.RightMessages = append(g.RightMessages, msg)
	}
}

func (g *Game) updateMessages(dt float64) {
	g.LeftMessages = ageMessages(g.LeftMessages, dt)
	g.RightMessages = ageMessages(g.RightMessages, dt)
}

func ageMessages(msgs []Message, dt float64) []Message {
	var active []Message
	for _, msg := range msgs {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	return active
}
