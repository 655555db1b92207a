package render

import (
	"errors"
	"image/color"
	"strings"
)

// ErrQuit is returned from Game.Update to end the game loop normally.
var ErrQuit = errors.New("quit requested")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Game logic only ever draws through it.
type Renderer interface {
	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)

	// DebugText prints with the backend's built-in debug font.
	DebugText(dst Image, text string, x, y int)
}

// Image represents a renderable image surface that can be drawn to.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
}

// InputManager handles keyboard input.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game can be bound to
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
)

// keyNames lists every key a config may bind. A, Right, Space and Enter are
// not used by the default controls but can be chosen in tennis.json.
var keyNames = map[string]Key{
	"w":      KeyW,
	"a":      KeyA,
	"s":      KeyS,
	"d":      KeyD,
	"p":      KeyP,
	"up":     KeyUp,
	"down":   KeyDown,
	"left":   KeyLeft,
	"right":  KeyRight,
	"space":  KeySpace,
	"enter":  KeyEnter,
	"escape": KeyEscape,
}

// KeyByName looks up a key by its config name, ignoring case.
func KeyByName(name string) (Key, bool) {
	k, ok := keyNames[strings.ToLower(name)]
	return k, ok
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// SetTPS sets how many times per second Update is called.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
