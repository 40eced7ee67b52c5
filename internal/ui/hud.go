//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Controls is what the HUD reads from and writes to.
type Controls interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
	Running() bool
	Population() int
}

var (
	panelColor   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	runningColor = color.RGBA{R: 110, G: 200, B: 120, A: 255}
)

var keyHelp = []string{
	"space  run / pause",
	"n      step once",
	"r      randomize",
	"c      clear",
	"up/dn  speed",
	"shift  erase stroke",
	"d      stats",
}

// HUD renders the control panel to the right of the grid.
type HUD struct {
	ctl   Controls
	width int

	snapshot     core.ParameterSnapshot
	controls     []hudControlState
	panelOffsetX int
}

// NewHUD constructs a HUD of the given panel width. A width of zero disables
// it.
func NewHUD(ctl Controls, width int) *HUD {
	if width <= 0 || ctl == nil {
		return nil
	}
	h := &HUD{ctl: ctl, width: width}
	for _, c := range ctl.ParameterControls() {
		h.controls = append(h.controls, hudControlState{control: c, value: "--"})
	}
	h.layoutControls()
	return h
}

// Update refreshes the parameter snapshot and handles button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.ctl.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel starting at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil {
		return
	}
	height := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, float32(offsetX), 0, float32(h.width), float32(height), panelColor, false)

	face := basicfont.Face7x13
	x := offsetX + panelPadding
	y := panelPadding + headerBaseline
	text.Draw(screen, "Life", face, x, y, titleColor)
	state, stateColor := "PAUSED", mutedColor
	if h.ctl.Running() {
		state, stateColor = "RUNNING", runningColor
	}
	text.Draw(screen, state, face, offsetX+h.width-panelPadding-text.BoundString(face, state).Dx(), y, stateColor)

	for i := range h.controls {
		h.drawControl(screen, offsetX, &h.controls[i])
	}

	y = controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if h.isControl(p.Key) {
				continue
			}
			text.Draw(screen, fmt.Sprintf("%-11s %s", p.Label, p.Value), face, x, y, mutedColor)
			y += textLine
		}
	}
	text.Draw(screen, fmt.Sprintf("%-11s %d", "Population", h.ctl.Population()), face, x, y, mutedColor)
	y += textLine * 2
	for _, line := range keyHelp {
		if y > height-panelPadding {
			break
		}
		text.Draw(screen, line, face, x, y, mutedColor)
		y += textLine
	}
}

func (h *HUD) isControl(key string) bool {
	for i := range h.controls {
		if h.controls[i].control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		state.hasValue = false
		state.value = "--"
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	pt := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case pt.In(state.minusRect):
			h.adjust(state, -1)
			return
		case pt.In(state.plusRect):
			h.adjust(state, 1)
			return
		}
	}
}

// target returns the value one step away in direction, clamped to the
// control's bounds.
func (s *hudControlState) target(direction int) float64 {
	step := s.control.Step
	if step <= 0 {
		step = 1
		if s.control.Type == core.ParamTypeFloat {
			step = 0.05
		}
	}
	v := s.floatValue + float64(direction)*step
	if s.control.HasMin {
		v = math.Max(v, s.control.Min)
	}
	if s.control.HasMax {
		v = math.Min(v, s.control.Max)
	}
	if s.control.Type == core.ParamTypeInt {
		v = math.Round(v)
	}
	return v
}

func (s *hudControlState) canAdjust(direction int) bool {
	return s.hasValue && math.Abs(s.target(direction)-s.floatValue) > 1e-9
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	if !state.canAdjust(direction) {
		return
	}
	v := state.target(direction)
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.ctl.SetIntParameter(state.control.Key, int(v)) {
			state.intValue = int(v)
			state.floatValue = v
			state.value = strconv.Itoa(int(v))
		}
	case core.ParamTypeFloat:
		if h.ctl.SetFloatParameter(state.control.Key, v) {
			state.floatValue = v
			state.value = formatFloat(state.control, v)
		}
	}
}

func (h *HUD) drawControl(screen *ebiten.Image, offsetX int, state *hudControlState) {
	face := basicfont.Face7x13
	baseline := state.top + labelBaseline
	text.Draw(screen, state.control.Label, face, offsetX+panelPadding, baseline, labelColor)

	valueColor := labelColor
	if !state.hasValue {
		valueColor = mutedColor
	}
	valueX := offsetX + state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
	text.Draw(screen, state.value, face, valueX, baseline, valueColor)

	drawButton(screen, state.minusRect.Add(image.Pt(offsetX, 0)), "-", state.canAdjust(-1))
	drawButton(screen, state.plusRect.Add(image.Pt(offsetX, 0)), "+", state.canAdjust(1))
}

func drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 12
	textLine       = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
