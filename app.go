package panel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Background fills the screen before each frame.
	Background Color
	// ShowFPS draws the actual FPS and TPS in the top-left corner.
	ShowFPS bool
	// Font overrides the default canvas font.
	Font *Font
	// Margin insets the panel from the window edges.
	Margin float64
	// ScreenshotDir receives PNGs from Screenshot and "screenshot" script
	// steps. Empty uses "screenshots".
	ScreenshotDir string
	// Script drives the pointer from a JSON test script instead of the mouse.
	Script *TestRunner
	// ExitOnScriptEnd stops Run once Script has finished.
	ExitOnScriptEnd bool
}

// App is an ebiten.Game that redraws one immediate-mode panel every frame.
// It is what Run executes; embed it or call its methods from your own game
// for full control.
//
// The draw func runs in two passes. Update runs it against a canvas with no
// target, and that is the only pass that sees the tick's clicks, drops and
// wheel. Draw runs it with a passive Input that reports the pointer and the
// active drag but never a click or a drop, however often ebiten draws.
type App struct {
	Canvas  *Canvas
	Pointer *Pointer

	cfg             RunConfig
	draw            func(c *Canvas, in Input)
	update          func(dt float32) error
	screenshotQueue []string
	fps             fpsCounter
	width, height   int
}

// NewApp creates an app that calls draw with a freshly begun canvas.
func NewApp(cfg RunConfig, draw func(c *Canvas, in Input)) *App {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	a := &App{
		Canvas:  NewCanvas(cfg.Font),
		Pointer: NewPointer(),
		cfg:     cfg,
		draw:    draw,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	if cfg.Script != nil {
		a.Pointer.SetTestRunner(cfg.Script)
	}
	return a
}

// SetUpdateFunc registers fn to run each tick after input is handled. dt is
// the fixed tick length in seconds; advance ScrollView and ReorderList
// animations from here.
func (a *App) SetUpdateFunc(fn func(dt float32) error) { a.update = fn }

// Update polls the pointer, runs the interactive pass of the draw func and
// then the update func.
func (a *App) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	a.Pointer.Update()
	a.fps.update(float64(dt))
	if r := a.cfg.Script; r != nil {
		a.screenshotQueue = append(a.screenshotQueue, r.takeScreenshots()...)
	}
	a.Canvas.Begin(nil, a.bounds(a.width, a.height))
	if a.draw != nil {
		a.draw(a.Canvas, a.Pointer)
	}
	if a.update != nil {
		if err := a.update(dt); err != nil {
			return err
		}
	}
	if a.cfg.ExitOnScriptEnd && a.cfg.Script != nil && a.cfg.Script.Done() && len(a.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the panel into screen.
func (a *App) Draw(screen *ebiten.Image) {
	if a.cfg.Background.A > 0 {
		screen.Fill(a.cfg.Background)
	}
	b := screen.Bounds()
	a.render(screen, a.bounds(b.Dx(), b.Dy()))
	if a.cfg.ShowFPS {
		a.fps.draw(screen)
	}
	a.flushScreenshots(screen)
}

// render is the display pass of Draw.
func (a *App) render(dst *ebiten.Image, bounds Rect) {
	a.Canvas.Begin(dst, bounds)
	if a.draw != nil {
		a.draw(a.Canvas, a.Pointer.Passive())
	}
}

func (a *App) bounds(w, h int) Rect {
	r := Rect{X: 0, Y: 0, Width: float64(w), Height: float64(h)}
	if m := a.cfg.Margin; m > 0 {
		r = r.ContractedBy(m, m)
	}
	return r
}

// Layout keeps a 1:1 mapping between window and screen pixels.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Passive returns an Input that reports where the pointer is and what is
// being dragged but never clicks, drops, scrolls or starts a drag. Hand it to
// renders that only display, such as Draw after Update already handled input.
func (p *Pointer) Passive() Input { return passiveInput{p} }

// passiveInput shows pointer state without delivering actions.
type passiveInput struct {
	p *Pointer
}

func (in passiveInput) Pointer() Vec2 { return in.p.Pointer() }
func (in passiveInput) Over(r Rect) bool { return in.p.Over(r) }
func (passiveInput) Clicked(Rect) (MouseButton, bool) { return 0, false }
func (passiveInput) Draggable(DragGroup, Rect, any) {}
func (passiveInput) Drop(DragGroup, Rect) (any, bool) { return nil, false }
func (passiveInput) Wheel() float64 { return 0 }

// Dragging hides a drag on its release tick; the interactive pass has
// already dropped it.
func (in passiveInput) Dragging(group DragGroup) (any, bool) {
	if in.p.dropFrame {
		return nil, false
	}
	return in.p.Dragging(group)
}

// Run opens a window and runs app until it is closed or returns an error.
func Run(app *App) error {
	cfg := app.cfg
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("panel: run: %w", err)
	}
	return nil
}
