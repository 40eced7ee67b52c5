package engine

import (
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/sims/life"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// MaxInterval is the longest tick interval the engine accepts.
const MaxInterval = time.Minute

// Engine owns the grid, renderer, surface and scheduler and exposes the
// command surface used by UI glue. It is not safe for concurrent use: every
// method must be called from the goroutine that dispatches frames.
type Engine struct {
	cfg      Config
	life     *life.Life
	renderer *render.Renderer
	sched    *core.Scheduler
	rng      *core.RNG
	alloc    render.Allocator
	surface  render.Surface
	logger   log.Logger

	density  float64
	cellSize int

	stroking  bool
	strokeVal uint8

	lastRender render.Stats
}

// Option customises an Engine.
type Option func(*Engine)

// WithLogger routes engine events to logger.
func WithLogger(logger log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithAllocator sets how render surfaces are created on resize. The default
// allocates in-memory RGBA images.
func WithAllocator(alloc render.Allocator) Option {
	return func(e *Engine) {
		if alloc != nil {
			e.alloc = alloc
		}
	}
}

// New builds a stopped engine with a 1x1 grid. Call Resize to size the grid
// and allocate a surface. frames delivers the display-refresh callbacks that
// drive the scheduler.
func New(cfg Config, frames core.FrameRequester, opts ...Option) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:      cfg,
		life:     life.New(1, 1),
		renderer: render.NewRenderer(cfg.Foreground, cfg.Background, cfg.Gap),
		rng:      core.NewRNG(cfg.Seed),
		alloc:    render.AllocImageSurface,
		logger:   log.NewNopLogger(),
		density:  cfg.Density,
		cellSize: cfg.CellSize,
	}
	e.sched = core.NewScheduler(frames, cfg.Interval, e.Tick)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resize recomputes the grid for a width*height pixel surface using
// cellSizeHint pixels per cell (the configured size when the hint is not
// positive). Live cells in the overlapping region survive and the next render
// is a full redraw.
func (e *Engine) Resize(width, height, cellSizeHint int) {
	e.Stop()
	if cellSizeHint > 0 {
		e.cellSize = cellSizeHint
	} else {
		e.cellSize = e.cfg.CellSize
	}
	width = max(width, 1)
	height = max(height, 1)
	cols := max(width/e.cellSize, 1)
	rows := max(height/e.cellSize, 1)

	if e.surface == nil || e.surface.Bounds().Dx() != width || e.surface.Bounds().Dy() != height {
		e.surface = e.alloc(width, height)
		e.renderer.Invalidate()
	}
	e.life.Resize(cols, rows)
	level.Debug(e.logger).Log("msg", "resize", "width", width, "height", height, "cell", e.cellSize, "cols", cols, "rows", rows)
	e.Render(false)
}

// Step advances the grid by one generation without painting.
func (e *Engine) Step() { e.life.Step() }

// Tick advances one generation and paints the cells that changed. The
// scheduler calls it once per elapsed interval.
func (e *Engine) Tick() {
	e.life.Step()
	e.Render(false)
}

// Render paints the grid onto the surface, repainting everything when
// forceFull is set or a grid-wide change is pending. It is a no-op before the
// first Resize.
func (e *Engine) Render(forceFull bool) render.Stats {
	if e.surface == nil {
		return render.Stats{}
	}
	e.lastRender = e.renderer.Render(e.surface, e.life.Grid(), e.life.Dirty(), forceFull)
	return e.lastRender
}

// Randomize stops the loop and fills the grid at the given density.
func (e *Engine) Randomize(density float64) {
	e.Stop()
	e.life.Randomize(e.rng, core.ClampUnit(density))
	e.Render(false)
}

// Reseed replaces the random source used by Randomize.
func (e *Engine) Reseed(seed int64) { e.rng = core.NewRNG(seed) }

// Clear stops the loop and kills every cell.
func (e *Engine) Clear() {
	e.Stop()
	e.life.Clear()
	e.Render(false)
}

// SetCell stops the loop and writes v at (x, y); coordinates are clamped
// onto the grid. Writing a cell's current value does nothing.
func (e *Engine) SetCell(x, y int, v uint8) {
	e.Stop()
	if e.life.SetCell(x, y, v) {
		e.Render(false)
	}
}

// Start runs the simulation loop. It is a no-op when already running.
func (e *Engine) Start() {
	if e.sched.Running() {
		return
	}
	e.sched.Start()
	level.Debug(e.logger).Log("msg", "start", "interval", e.sched.Interval())
}

// Stop pauses the simulation loop and cancels its pending frame.
func (e *Engine) Stop() {
	if !e.sched.Running() {
		return
	}
	e.sched.Stop()
	level.Debug(e.logger).Log("msg", "stop", "generation", e.life.Generation())
}

// Toggle flips between running and stopped.
func (e *Engine) Toggle() {
	if e.sched.Running() {
		e.Stop()
		return
	}
	e.Start()
}

// Running reports whether the loop is active.
func (e *Engine) Running() bool { return e.sched.Running() }

// SetInterval changes the tick interval, clamped to
// [core.MinInterval, MaxInterval]. A running loop keeps running and measures
// the next tick from the next frame.
func (e *Engine) SetInterval(d time.Duration) {
	d = min(max(d, core.MinInterval), MaxInterval)
	e.sched.SetInterval(d)
	level.Debug(e.logger).Log("msg", "interval", "interval", d)
}

// SetIntervalString applies a raw millisecond value, ignoring malformed input.
func (e *Engine) SetIntervalString(s string) {
	if d, ok := ParseInterval(s); ok {
		e.SetInterval(d)
	}
}

// Interval returns the tick interval.
func (e *Engine) Interval() time.Duration { return e.sched.Interval() }

// SetDensity sets the density used by RandomizeDefault, clamped into [0, 1].
func (e *Engine) SetDensity(d float64) { e.density = core.ClampUnit(d) }

// SetDensityString applies a raw slider value; malformed input means 0.
func (e *Engine) SetDensityString(s string) { e.density = ParseDensity(s) }

// Density returns the current randomize density.
func (e *Engine) Density() float64 { return e.density }

// RandomizeDefault randomizes at the current density.
func (e *Engine) RandomizeDefault() { e.Randomize(e.density) }

// CellAt maps a surface-local pixel offset to a grid coordinate, clamped onto
// the grid.
func (e *Engine) CellAt(px, py float64) (int, int) {
	if e.surface == nil {
		return 0, 0
	}
	s := e.life.Size()
	return render.NewGeometry(s.W, s.H, e.surface.Bounds()).CellAt(px, py)
}

// BeginStroke starts a pointer stroke at (px, py). The stroke paints the
// inverse of the first cell's value, or dead cells when erase is set.
func (e *Engine) BeginStroke(px, py float64, erase bool) {
	e.Stop()
	x, y := e.CellAt(px, py)
	e.strokeVal = 1
	if erase || e.life.Get(x, y) != 0 {
		e.strokeVal = 0
	}
	e.stroking = true
	e.SetCell(x, y, e.strokeVal)
}

// ContinueStroke paints the stroke value under (px, py) while a stroke is
// active.
func (e *Engine) ContinueStroke(px, py float64) {
	if !e.stroking {
		return
	}
	x, y := e.CellAt(px, py)
	e.SetCell(x, y, e.strokeVal)
}

// EndStroke finishes the active stroke.
func (e *Engine) EndStroke() { e.stroking = false }

// Stroking reports whether a pointer stroke is active.
func (e *Engine) Stroking() bool { return e.stroking }

// Sim exposes the grid store as a core.Sim.
func (e *Engine) Sim() core.Sim { return e.life }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.life.Size() }

// Grid returns the current generation buffer.
func (e *Engine) Grid() *core.ByteGrid { return e.life.Grid() }

// Generation returns the number of steps since the last grid-wide reset.
func (e *Engine) Generation() uint64 { return e.life.Generation() }

// Population counts live cells.
func (e *Engine) Population() int { return e.life.Population() }

// Surface returns the render surface, nil before the first Resize.
func (e *Engine) Surface() render.Surface { return e.surface }

// CellSize returns the cell size used by the last Resize.
func (e *Engine) CellSize() int { return e.cellSize }

// LastRender describes the most recent render pass.
func (e *Engine) LastRender() render.Stats { return e.lastRender }
