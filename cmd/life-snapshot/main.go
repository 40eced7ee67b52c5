package main

import (
	"fmt"
	"os"
	"time"

	"lifegrid/internal/engine"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	def := engine.DefaultConfig()
	app := cli.NewApp()
	app.Name = "life-snapshot"
	app.Usage = "run the grid headless against a simulated display clock and save the final frame"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "width", Value: 640, Usage: "surface width in pixels"},
		cli.IntFlag{Name: "height", Value: 480, Usage: "surface height in pixels"},
		cli.IntFlag{Name: "cell", Value: def.CellSize, Usage: "cell size in pixels"},
		cli.IntFlag{Name: "gap", Value: def.Gap, Usage: "inset in pixels between live cells"},
		cli.IntFlag{Name: "fps", Value: 60, Usage: "simulated display refresh rate"},
		cli.DurationFlag{Name: "interval", Value: def.Interval, Usage: "time between generations"},
		cli.DurationFlag{Name: "duration", Value: 10 * time.Second, Usage: "simulated run time"},
		cli.Float64Flag{Name: "density", Value: def.Density, Usage: "initial alive probability (0..1)"},
		cli.Int64Flag{Name: "seed", Value: def.Seed, Usage: "random seed"},
		cli.StringFlag{Name: "out, o", Value: "life.png", Usage: "output PNG path"},
		cli.BoolFlag{Name: "debug", Usage: "log engine events"},
	}
	app.Action = func(c *cli.Context) error {
		if c.Bool("debug") {
			logger = level.NewFilter(logger, level.AllowDebug())
		} else {
			logger = level.NewFilter(logger, level.AllowInfo())
		}

		ec := def
		ec.CellSize = c.Int("cell")
		ec.Gap = c.Int("gap")
		ec.Interval = c.Duration("interval")
		ec.Density = c.Float64("density")
		ec.Seed = c.Int64("seed")

		eng, _, err := simulate(options{
			Width:    c.Int("width"),
			Height:   c.Int("height"),
			CellSize: c.Int("cell"),
			Engine:   ec,
			FPS:      c.Int("fps"),
			Duration: c.Duration("duration"),
		}, logger)
		if err != nil {
			return err
		}

		path := c.String("out")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := writePNG(f, eng); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
		level.Info(logger).Log("msg", "wrote snapshot", "path", path)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}
