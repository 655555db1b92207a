package game

import (
	"image/color"
	"testing"
	"time"

	"chosenoffset.com/tennisfortwo/internal/render"
	"chosenoffset.com/tennisfortwo/internal/simulation"
)

type fakeInput struct {
	pressed     map[render.Key]bool
	justPressed map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{pressed: map[render.Key]bool{}, justPressed: map[render.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(key render.Key) bool { return f.pressed[key] }
func (f *fakeInput) IsKeyJustPressed(key render.Key) bool { return f.justPressed[key] }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeImage struct {
	w, h int
}

func (i *fakeImage) Size() (int, int) { return i.w, i.h }
func (i *fakeImage) Fill(color.Color) {}

type fakeRenderer struct {
	texts   []string
	lastX   int
	lastY   int
	rects   int
	circles int
	lines   int
}

func (r *fakeRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {
	r.rects++
}
func (r *fakeRenderer) FillCircle(render.Image, float32, float32, float32, color.Color) {
	r.circles++
}
func (r *fakeRenderer) StrokeLine(render.Image, float32, float32, float32, float32, float32, color.Color) {
	r.lines++
}
func (r *fakeRenderer) DrawText(_ render.Image, text string, x, y int, _ color.Color, _ float64) {
	r.texts = append(r.texts, text)
	r.lastX, r.lastY = x, y
}
func (r *fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len(text)*8) * scale), int(16 * scale)
}
func (r *fakeRenderer) DebugText(_ render.Image, text string, _, _ int) {
	r.texts = append(r.texts, text)
}

func newTestGame(t *testing.T) (*Game, *fakeInput, *fakeClock, *fakeRenderer) {
	t.Helper()
	input := newFakeInput()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	r := &fakeRenderer{}
	g, err := NewGame(simulation.DefaultConfig(), r, input, clock)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	return g, input, clock, r
}
