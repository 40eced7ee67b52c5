package app

import (
	"flag"
	"time"

	"lifegrid/internal/engine"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width      int
	Height     int
	CellSize   int
	Gap        int
	IntervalMS int
	Density    float64
	Seed       int64
	HUDWidth   int
	Foreground string
	Background string
	Debug      bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := engine.DefaultConfig()
	return &Config{
		Width:      960,
		Height:     640,
		CellSize:   d.CellSize,
		Gap:        d.Gap,
		IntervalMS: int(d.Interval / time.Millisecond),
		Density:    d.Density,
		Seed:       d.Seed,
		HUDWidth:   220,
		Foreground: "#ffffff",
		Background: "#000000",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Gap, "gap", c.Gap, "inset in pixels between live cells")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "milliseconds between generations")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability used by randomize (0..1)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.StringVar(&c.Foreground, "fg", c.Foreground, "live cell colour (#rrggbb)")
	fs.StringVar(&c.Background, "bg", c.Background, "background colour (#rrggbb)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log engine events at debug level")
}

// EngineConfig converts the flags into an engine configuration. Invalid
// values fall back to the engine defaults.
func (c *Config) EngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	if c.CellSize > 0 {
		cfg.CellSize = c.CellSize
	}
	if c.Gap >= 0 {
		cfg.Gap = c.Gap
	}
	if c.IntervalMS > 0 {
		cfg.Interval = time.Duration(c.IntervalMS) * time.Millisecond
	}
	cfg.Density = c.Density
	cfg.Seed = c.Seed
	if fg, ok := engine.ParseHexColor(c.Foreground); ok {
		cfg.Foreground = fg
	}
	if bg, ok := engine.ParseHexColor(c.Background); ok {
		cfg.Background = bg
	}
	return cfg
}
