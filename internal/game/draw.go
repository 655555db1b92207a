package game

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/tennisfortwo/internal/core/geom"
	"chosenoffset.com/tennisfortwo/internal/physics"
	"chosenoffset.com/tennisfortwo/internal/render"
)

var (
	fieldColour    = color.RGBA{0x44, 0x44, 0x44, 0xff}
	courtColour    = color.RGBA{0xa0, 0xb0, 0xc0, 0xff}
	inputBoxColour = color.RGBA{0x22, 0x22, 0x22, 0xff}
	limitColour    = color.RGBA{0x55, 0x5a, 0x60, 0xff}
)

const textScale = 1.0

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(inputBoxColour)

	g.drawField(screen)
	g.drawBall(screen)
	g.drawPanel(screen, physics.Left)
	g.drawPanel(screen, physics.Right)
	g.drawUI(screen)

	if g.Debug {
		g.drawDebug(screen)
	}
}

// toScreen converts field coordinates to screen coordinates.
func (g *Game) toScreen(p geom.Vec2) (float32, float32) {
	return float32(p.X) + float32(g.PanelWidth), float32(p.Y) + float32(g.HeaderHeight)
}

func (g *Game) fillRect(screen render.Image, r geom.Rect, clr color.Color) {
	x, y := g.toScreen(r.Min)
	g.Renderer.FillRect(screen, x, y, float32(r.Width()), float32(r.Height()), clr)
}

func (g *Game) drawField(screen render.Image) {
	g.fillRect(screen, geom.NewRect(0, 0, g.CourtWidth, g.CourtHeight), fieldColour)

	geo := g.Match.Geometry()
	g.fillRect(screen, geo.Court, courtColour)
	g.fillRect(screen, geo.Net, courtColour)
}

func (g *Game) drawBall(screen render.Image) {
	x, y := g.toScreen(g.Match.Ball().Position)
	g.Renderer.FillCircle(screen, x, y, float32(g.Match.BallRadius()), courtColour)
}

// panelOrigin returns the top-left corner of a side's input panel.
func (g *Game) panelOrigin(side physics.Side) (float64, float64) {
	if side == physics.Left {
		return 0, float64(g.HeaderHeight)
	}
	return float64(g.PanelWidth) + g.CourtWidth, float64(g.HeaderHeight)
}

// drawPanel draws the aim indicator: a needle pivoting on the court-side
// edge of the panel, plus faint lines at the ends of the legal range.
func (g *Game) drawPanel(screen render.Image, side physics.Side) {
	px, py := g.panelOrigin(side)
	pivotX, pivotY := px, py+g.CourtHeight/2
	lo, hi := g.Match.Resolver().LeftRange()
	angle := g.Match.Aim().Left
	if side == physics.Right {
		pivotX = px + float64(g.PanelWidth)
		lo, hi = g.Match.Resolver().RightRange()
		angle = g.Match.Aim().Right
	}
	length := 0.9 * float64(g.PanelWidth)

	needle := func(deg float64, width float32, clr color.Color) {
		rad := geom.Radians(deg)
		ex := pivotX + length*math.Cos(rad)
		ey := pivotY - length*math.Sin(rad)
		g.Renderer.StrokeLine(screen, float32(pivotX), float32(pivotY), float32(ex), float32(ey), width, clr)
	}
	needle(lo, 1, limitColour)
	needle(hi, 1, limitColour)
	needle(angle, 4, courtColour)
}

func (g *Game) drawUI(screen render.Image) {
	score := g.Match.Score()
	g.drawHeader(screen, physics.Left, score.Left, g.LeftHelp)
	g.drawHeader(screen, physics.Right, score.Right, g.RightHelp)

	g.drawMessages(screen, physics.Left, g.LeftMessages)
	g.drawMessages(screen, physics.Right, g.RightMessages)
}

func (g *Game) drawHeader(screen render.Image, side physics.Side, points int, help [2]string) {
	px, _ := g.panelOrigin(side)
	x := int(px) + 8
	white := color.RGBA{255, 255, 255, 255}
	g.Renderer.DrawText(screen, fmt.Sprintf("Score: %d", points), x, 4, white, textScale)
	g.Renderer.DrawText(screen, help[0], x, 24, courtColour, textScale)
	g.Renderer.DrawText(screen, help[1], x, 42, courtColour, textScale)
}

func (g *Game) drawMessages(screen render.Image, side physics.Side, msgs []Message) {
	px, py := g.panelOrigin(side)
	y := int(py) + 10
	for _, msg := range msgs {
		w, h := g.Renderer.MeasureText(msg.Text, textScale)
		x := int(px) + (g.PanelWidth-w)/2
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, x, y, color.NRGBA{0xa0, 0xb0, 0xc0, alpha}, textScale)
		y += h + 4
	}
}

func (g *Game) drawDebug(screen render.Image) {
	b := g.Match.Ball()
	info := fmt.Sprintf("phase: %s\nball: (%.0f, %.0f) v=(%.0f, %.0f)\nstriker: %s bounces: %d\nrallies: %d frame: %d",
		g.Match.Phase(), b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y,
		b.LastStriker, b.Bounces, g.Match.Rallies(), g.FrameCount)
	g.Renderer.DebugText(screen, info, g.PanelWidth+4, g.HeaderHeight+4)
}
