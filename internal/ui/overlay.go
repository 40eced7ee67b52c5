//go:build ebiten

package ui

import (
	"fmt"

	"lifegrid/internal/core"
	"lifegrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Stats is what the overlay reports on.
type Stats interface {
	Size() core.Size
	Generation() uint64
	LastRender() render.Stats
}

// Overlay prints frame and render statistics over the grid. D toggles it.
type Overlay struct {
	stats Stats
	show  bool

	fullPasses int
	lastCells  int
	lastGen    uint64
}

// NewOverlay constructs a hidden overlay.
func NewOverlay(stats Stats) *Overlay {
	return &Overlay{stats: stats}
}

// Update handles the toggle key and samples render statistics.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
	st := o.stats.LastRender()
	if gen := o.stats.Generation(); gen != o.lastGen {
		o.lastGen = gen
		o.lastCells = st.Cells
		if st.Full {
			o.fullPasses++
		}
	}
}

// Draw renders the statistics in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	size := o.stats.Size()
	msg := fmt.Sprintf("FPS %0.1f  TPS %0.1f\ngrid %dx%d  gen %d\nlast pass %d cells (full=%v)",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		size.W, size.H, o.lastGen,
		o.lastCells, o.stats.LastRender().Full)
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
