package engine

import (
	"image/color"
	"strconv"
	"strings"
	"time"

	"lifegrid/internal/core"
)

// Config holds the engine defaults. Zero values are replaced by
// DefaultConfig's when the engine is built.
type Config struct {
	CellSize int
	Gap      int
	Interval time.Duration
	Density  float64
	Seed     int64

	Foreground color.RGBA
	Background color.RGBA
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CellSize:   12,
		Gap:        1,
		Interval:   120 * time.Millisecond,
		Density:    0.18,
		Seed:       42,
		Foreground: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Background: color.RGBA{A: 255},
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["gap"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Gap = parsed
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Density = core.ClampUnit(parsed)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fg"]; ok {
		if parsed, ok := ParseHexColor(v); ok {
			c.Foreground = parsed
		}
	}
	if v, ok := cfg["bg"]; ok {
		if parsed, ok := ParseHexColor(v); ok {
			c.Background = parsed
		}
	}
	return c
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.CellSize <= 0 {
		c.CellSize = d.CellSize
	}
	if c.Gap < 0 {
		c.Gap = 0
	}
	if c.Interval <= 0 {
		c.Interval = d.Interval
	}
	c.Density = core.ClampUnit(c.Density)
	if c.Foreground == (color.RGBA{}) && c.Background == (color.RGBA{}) {
		c.Foreground, c.Background = d.Foreground, d.Background
	}
	return c
}

// ParseDensity converts a raw slider value into a density in [0, 1].
// Non-numeric input yields 0.
func ParseDensity(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return core.ClampUnit(v)
}

// ParseInterval converts a raw millisecond value into a duration. Non-numeric
// or non-positive input reports ok=false so the caller keeps its interval.
func ParseInterval(s string) (time.Duration, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(v > 0) {
		return 0, false
	}
	if v > float64(MaxInterval/time.Millisecond) {
		return MaxInterval, true
	}
	return time.Duration(v * float64(time.Millisecond)), true
}

// ParseHexColor parses "#rgb" or "#rrggbb" (leading '#' optional) into an
// opaque colour.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}
