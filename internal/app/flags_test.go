package app

import (
	"flag"
	"image/color"
	"testing"
	"time"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("lifegrid", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-cell", "8", "-interval", "50", "-density", "0.4", "-fg", "#ff0000"}); err != nil {
		t.Fatal(err)
	}

	ec := cfg.EngineConfig()
	if ec.CellSize != 8 || ec.Interval != 50*time.Millisecond || ec.Density != 0.4 {
		t.Fatalf("unexpected engine config %+v", ec)
	}
	if ec.Foreground != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("unexpected foreground %v", ec.Foreground)
	}
}

func TestEngineConfigIgnoresInvalidValues(t *testing.T) {
	cfg := NewConfig()
	cfg.CellSize = 0
	cfg.IntervalMS = -1
	cfg.Background = "not-a-colour"

	ec := cfg.EngineConfig()
	if ec.CellSize != 12 || ec.Interval != 120*time.Millisecond {
		t.Fatalf("invalid values should fall back to defaults, got %+v", ec)
	}
	if ec.Background != (color.RGBA{A: 255}) {
		t.Fatalf("unexpected background %v", ec.Background)
	}
}
