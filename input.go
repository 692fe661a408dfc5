package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"uvscope/states"
)

var dragButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// InputSystem translates raw ebiten input into viewer actions and drag
// gestures. One drag state is active at a time.
type InputSystem struct {
	viewer *Viewer
	active states.State
}

func NewInputSystem(v *Viewer) *InputSystem {
	return &InputSystem{viewer: v}
}

// Update processes one frame of input.
func (in *InputSystem) Update() {
	in.handleControlKeys()
	in.handleWheelZoom()
	in.handleDrag()
}

func (in *InputSystem) handleControlKeys() {
	v := in.viewer

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.FrameAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		v.showGrid = !v.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		v.showBoundaries = !v.showBoundaries
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		v.showTexture = !v.showTexture
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.NextUVSet()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		v.exportRequested = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		mx, my := ebiten.CursorPosition()
		wx, wy := v.cam.ScreenToWorld(float64(mx), float64(my))
		if err := clipboard.WriteAll(fmt.Sprintf("%.6f, %.6f", wx, wy)); err != nil {
			slog.Warn("clipboard", "error", err)
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := SaveSession(v, v.sessionPath); err != nil {
			slog.Error("save session", "error", err)
		} else {
			slog.Info("session saved", "path", v.sessionPath)
		}
	}
}

func (in *InputSystem) handleWheelZoom() {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	v := in.viewer
	mx, my := ebiten.CursorPosition()
	wx, wy := v.cam.ScreenToWorld(float64(mx), float64(my))
	amount := math.Pow(1+v.settings.ZoomSpeed, dy)
	v.cam.Zoom(wx, wy, amount)
}

func currentModifiers() states.Modifiers {
	return states.Modifiers{
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
	}
}

func (in *InputSystem) handleDrag() {
	v := in.viewer
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if in.active == nil {
		mods := currentModifiers()
		for _, button := range dragButtons {
			if !inpututil.IsMouseButtonJustPressed(button) {
				continue
			}
			ev := states.MouseEvent{X: x, Y: y, Button: button, Mods: mods}
			if s := states.FromEvent(ev, v.cam, v.bindings); s != nil {
				in.active = s
				return
			}
		}
		return
	}

	for _, button := range dragButtons {
		if inpututil.IsMouseButtonJustReleased(button) && in.active.Done(button) {
			in.active = nil
			return
		}
	}

	in.active.Update(states.MouseEvent{X: x, Y: y, Mods: currentModifiers()})
}
