//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"ising/internal/core"
)

const lineHeight = 16

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 240, G: 200, B: 120, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// HUD renders the parameter panel to the right of the lattice view. Up and
// Down nudge the first float control (the temperature) by its step.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	control  *core.ParameterControl
	setter   core.FloatParameterSetter
	value    float64
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type == core.ParamTypeFloat {
				c := ctrl
				h.control = &c
				break
			}
		}
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes the snapshot and applies key presses to the control.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	if h.control == nil || h.setter == nil {
		return
	}
	h.value = h.currentValue()
	delta := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		delta = h.control.Step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		delta = -h.control.Step
	}
	if delta != 0 {
		next := h.control.Clamp(h.value + delta)
		if h.setter.SetFloatParameter(h.control.Key, next) {
			h.value = next
		}
	}
}

func (h *HUD) currentValue() float64 {
	for _, g := range h.snapshot.Groups {
		for _, p := range g.Params {
			if p.Key != h.control.Key {
				continue
			}
			if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
				return v
			}
		}
	}
	return h.value
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := lineHeight
	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, face, 8, y, titleColor)
		y += lineHeight
		for _, p := range g.Params {
			text.Draw(h.panel, fmt.Sprintf("%-14s %s", p.Label, p.Value), face, 12, y, textColor)
			y += lineHeight
		}
		y += lineHeight / 2
	}
	if h.control != nil {
		text.Draw(h.panel, fmt.Sprintf("Up/Down: %s ±%.2f", h.control.Label, h.control.Step), face, 8, y, textColor)
		y += lineHeight
	}
	text.Draw(h.panel, "Space pause  N step  R reset", face, 8, y, textColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
