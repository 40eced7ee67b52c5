//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"lifegrid/internal/app"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if cfg.Debug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	game := app.New(cfg, logger)

	ebiten.SetWindowTitle("lifegrid")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	level.Info(logger).Log("msg", "starting", "cell", cfg.CellSize, "interval_ms", cfg.IntervalMS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		level.Error(logger).Log("msg", "game loop failed", "err", err)
		os.Exit(1)
	}
}
