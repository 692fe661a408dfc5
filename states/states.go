// Package states implements the drag gestures that manipulate the viewer
// camera. A gesture begins on a mouse press matching a binding's button and
// modifier set, snapshots the camera at that instant, and on every move
// recomputes an absolute delta from the snapshot. Working from the start
// snapshot rather than per-frame deltas keeps long drags free of
// accumulated floating-point error.
package states

import (
	"github.com/hajimehoshi/ebiten/v2"

	"uvscope/camera"
)

// Modifiers is the set of modifier keys held during a mouse event.
type Modifiers struct {
	Alt, Ctrl, Shift bool
}

// MouseEvent is a mouse press or move in screen pixels.
type MouseEvent struct {
	X, Y   float64
	Button ebiten.MouseButton
	Mods   Modifiers
}

// Trigger is the button and exact modifier set that starts a gesture.
type Trigger struct {
	Button ebiten.MouseButton
	Mods   Modifiers
}

// State is an active drag gesture.
type State interface {
	// Update recomputes the gesture from its start snapshot and applies it
	// to the camera. Reports whether the camera changed.
	Update(ev MouseEvent) bool

	// Done reports whether releasing button ends the gesture. Only the
	// button is compared: releasing the modifier mid-drag must not cancel.
	Done(button ebiten.MouseButton) bool
}

// Binding pairs a trigger with the gesture it starts.
type Binding struct {
	Trigger Trigger
	New     func(ev MouseEvent, cam *camera.Camera2D) State
}

// DefaultBindings returns the stock gesture set: Alt+middle pans,
// Alt+right drag zooms.
func DefaultBindings() []Binding {
	return []Binding{
		{
			Trigger: Trigger{Button: ebiten.MouseButtonMiddle, Mods: Modifiers{Alt: true}},
			New: func(ev MouseEvent, cam *camera.Camera2D) State {
				return NewPanState(ev, cam)
			},
		},
		{
			Trigger: Trigger{Button: ebiten.MouseButtonRight, Mods: Modifiers{Alt: true}},
			New: func(ev MouseEvent, cam *camera.Camera2D) State {
				return NewZoomState(ev, cam)
			},
		},
	}
}

// FromEvent returns the gesture matching a press event, or nil when no
// binding matches. The pressed modifier set must equal the trigger's
// exactly.
func FromEvent(ev MouseEvent, cam *camera.Camera2D, bindings []Binding) State {
	for _, b := range bindings {
		if ev.Button == b.Trigger.Button && ev.Mods == b.Trigger.Mods {
			return b.New(ev, cam)
		}
	}
	return nil
}

// baseState is the gesture-start snapshot shared by all gestures.
type baseState struct {
	cam    *camera.Camera2D
	button ebiten.MouseButton

	initProj   camera.Matrix4
	initNDCX   float64
	initNDCY   float64
	initXScale float64
	initYScale float64
}

func newBaseState(ev MouseEvent, cam *camera.Camera2D) baseState {
	proj := cam.Projection()
	nx, ny := cam.ScreenToNDC(ev.X, ev.Y)
	return baseState{
		cam:        cam,
		button:     ev.Button,
		initProj:   proj,
		initNDCX:   nx,
		initNDCY:   ny,
		initXScale: proj.ScaleX(),
		initYScale: proj.ScaleY(),
	}
}

func (s *baseState) Done(button ebiten.MouseButton) bool {
	return button == s.button
}

// PanState drags the world with the cursor.
type PanState struct {
	baseState
}

// NewPanState starts a pan gesture at ev.
func NewPanState(ev MouseEvent, cam *camera.Camera2D) *PanState {
	return &PanState{baseState: newBaseState(ev, cam)}
}

// Update translates the start matrix by the NDC delta converted into world
// units through the start scales.
func (s *PanState) Update(ev MouseEvent) bool {
	nx, ny := s.cam.ScreenToNDC(ev.X, ev.Y)
	move := camera.NewTranslationMatrix(
		(nx-s.initNDCX)/s.initXScale,
		(ny-s.initNDCY)/s.initYScale,
	)
	s.cam.SetProjection(s.initProj.Mul(move), true)
	return true
}

// ZoomState scales the view around the world point under the cursor at
// gesture start; dragging right or up zooms in.
type ZoomState struct {
	baseState
	initWorldX float64
	initWorldY float64
}

// NewZoomState starts a zoom gesture at ev.
func NewZoomState(ev MouseEvent, cam *camera.Camera2D) *ZoomState {
	s := &ZoomState{baseState: newBaseState(ev, cam)}
	s.initWorldX, s.initWorldY = cam.NDCToWorld(s.initNDCX, s.initNDCY)
	return s
}

// Update rescales the start matrix around the start world point by an
// amount derived from the combined x and y NDC deltas.
func (s *ZoomState) Update(ev MouseEvent) bool {
	nx, ny := s.cam.ScreenToNDC(ev.X, ev.Y)
	xZoom := nx - s.initNDCX
	yZoom := s.initNDCY - ny
	amount := 1.0 + (xZoom+yZoom)/2.0
	if amount < camera.MinScale {
		amount = camera.MinScale
	}
	scaled := s.cam.ScaleAroundPoint(s.initProj, amount, amount, s.initWorldX, s.initWorldY)
	s.cam.SetProjection(scaled, true)
	return true
}
