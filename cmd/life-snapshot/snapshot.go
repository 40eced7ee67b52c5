package main

import (
	"fmt"
	"image/png"
	"io"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/engine"
	"lifegrid/internal/render"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type options struct {
	Width    int
	Height   int
	CellSize int
	Engine   engine.Config
	FPS      int
	Duration time.Duration
}

type summary struct {
	Frames       int
	Generations  uint64
	Population   int
	FullPasses   int
	CellsPainted int
}

// simulate drives the engine with a synthetic display clock at opts.FPS for
// opts.Duration and returns the final engine.
func simulate(opts options, logger log.Logger) (*engine.Engine, summary, error) {
	if opts.FPS <= 0 {
		return nil, summary{}, fmt.Errorf("fps must be positive, got %d", opts.FPS)
	}
	frames := core.NewFrameQueue()
	eng := engine.New(opts.Engine, frames, engine.WithLogger(logger))
	eng.Resize(opts.Width, opts.Height, opts.CellSize)
	eng.Randomize(opts.Engine.Density)
	eng.Start()

	var sum summary
	period := time.Second / time.Duration(opts.FPS)
	start := time.Unix(0, 0)
	var lastGen uint64
	for now := start; now.Sub(start) <= opts.Duration; now = now.Add(period) {
		frames.Dispatch(now)
		sum.Frames++
		if gen := eng.Generation(); gen != lastGen {
			lastGen = gen
			st := eng.LastRender()
			sum.CellsPainted += st.Cells
			if st.Full {
				sum.FullPasses++
			}
		}
	}
	eng.Stop()

	sum.Generations = eng.Generation()
	sum.Population = eng.Population()
	level.Info(logger).Log(
		"msg", "simulated",
		"frames", sum.Frames,
		"generations", sum.Generations,
		"population", sum.Population,
		"cells_painted", sum.CellsPainted,
	)
	return eng, sum, nil
}

// writePNG encodes the engine's surface as PNG.
func writePNG(w io.Writer, eng *engine.Engine) error {
	surf, ok := eng.Surface().(*render.ImageSurface)
	if !ok {
		return fmt.Errorf("surface %T is not an image surface", eng.Surface())
	}
	if err := png.Encode(w, surf.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
