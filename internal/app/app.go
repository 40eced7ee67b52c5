//go:build ebiten

package app

import (
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/engine"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/go-kit/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const intervalStep = 10 * time.Millisecond

// Game adapts the engine to the ebiten.Game interface. Ebiten's update loop
// is the single logical thread: input, frame dispatch and drawing all happen
// on it.
type Game struct {
	eng     *engine.Engine
	frames  *core.FrameQueue
	hud     *ui.HUD
	overlay *ui.Overlay

	cellSize int
	hudWidth int
	outW     int
	outH     int

	touchID  ebiten.TouchID
	touching bool
	seeded   bool
	density  float64
}

// New constructs a Game from the parsed flags.
func New(cfg *Config, logger log.Logger) *Game {
	frames := core.NewFrameQueue()
	ec := cfg.EngineConfig()
	eng := engine.New(ec, frames,
		engine.WithLogger(logger),
		engine.WithAllocator(render.AllocEbitenSurface),
	)
	return &Game{
		eng:      eng,
		frames:   frames,
		hud:      ui.NewHUD(eng, max(cfg.HUDWidth, 0)),
		overlay:  ui.NewOverlay(eng),
		cellSize: ec.CellSize,
		hudWidth: max(cfg.HUDWidth, 0),
		density:  ec.Density,
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *engine.Engine { return g.eng }

// Update handles input and dispatches the frame callback that drives the
// simulation loop.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.eng.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.eng.RandomizeDefault()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.eng.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.eng.Stop()
		g.eng.Tick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.eng.SetInterval(g.eng.Interval() - intervalStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.eng.SetInterval(g.eng.Interval() + intervalStep)
	}

	g.updatePointer()
	g.updateTouch()

	if g.hud != nil {
		g.hud.Update(g.simWidth())
	}
	if g.overlay != nil {
		g.overlay.Update()
	}

	g.frames.Dispatch(time.Now())
	return nil
}

func (g *Game) updatePointer() {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && mx < g.simWidth() {
		g.eng.BeginStroke(float64(mx), float64(my), ebiten.IsKeyPressed(ebiten.KeyShift))
		return
	}
	if !g.eng.Stroking() || g.touching {
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.eng.EndStroke()
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.eng.ContinueStroke(float64(mx), float64(my))
	}
}

func (g *Game) updateTouch() {
	if g.touching {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.touching = false
			g.eng.EndStroke()
			return
		}
		x, y := ebiten.TouchPosition(g.touchID)
		g.eng.ContinueStroke(float64(x), float64(y))
		return
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if x >= g.simWidth() {
			continue
		}
		g.touchID = id
		g.touching = true
		g.eng.BeginStroke(float64(x), float64(y), false)
		return
	}
}

// Draw composites the engine surface, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if surf, ok := g.eng.Surface().(*render.EbitenSurface); ok {
		screen.DrawImage(surf.Image(), nil)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.simWidth())
	}
}

// Layout resizes the grid whenever the window size changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		g.eng.Resize(g.simWidth(), outsideHeight, g.cellSize)
		if !g.seeded {
			g.eng.Randomize(g.density)
			g.seeded = true
		}
	}
	return outsideWidth, outsideHeight
}

func (g *Game) simWidth() int {
	w := g.outW - g.hudWidth
	if w < 1 {
		return max(g.outW, 1)
	}
	return w
}
