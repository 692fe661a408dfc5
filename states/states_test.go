package states

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uvscope/camera"
)

const tol = 1e-9

func newTestCamera(t *testing.T) *camera.Camera2D {
	t.Helper()
	cam, err := camera.New(100, 100)
	require.NoError(t, err)
	require.NoError(t, cam.FocusWithBuffer(0, 1, 1, 0, 0))
	return cam
}

func altMiddle(x, y float64) MouseEvent {
	return MouseEvent{X: x, Y: y, Button: ebiten.MouseButtonMiddle, Mods: Modifiers{Alt: true}}
}

func altRight(x, y float64) MouseEvent {
	return MouseEvent{X: x, Y: y, Button: ebiten.MouseButtonRight, Mods: Modifiers{Alt: true}}
}

func TestFromEventMatchesTriggers(t *testing.T) {
	cam := newTestCamera(t)
	bindings := DefaultBindings()

	assert.IsType(t, &PanState{}, FromEvent(altMiddle(50, 50), cam, bindings))
	assert.IsType(t, &ZoomState{}, FromEvent(altRight(50, 50), cam, bindings))

	// Wrong button, missing modifier, or extra modifier: no gesture.
	assert.Nil(t, FromEvent(MouseEvent{Button: ebiten.MouseButtonLeft, Mods: Modifiers{Alt: true}}, cam, bindings))
	assert.Nil(t, FromEvent(MouseEvent{Button: ebiten.MouseButtonMiddle}, cam, bindings))
	assert.Nil(t, FromEvent(MouseEvent{Button: ebiten.MouseButtonMiddle, Mods: Modifiers{Alt: true, Shift: true}}, cam, bindings))
}

func TestDoneComparesButtonOnly(t *testing.T) {
	cam := newTestCamera(t)
	s := NewPanState(altMiddle(50, 50), cam)

	// Modifier released mid-drag: still ends on the middle button.
	assert.True(t, s.Done(ebiten.MouseButtonMiddle))
	assert.False(t, s.Done(ebiten.MouseButtonRight))
}

func TestPanDragsWorldWithCursor(t *testing.T) {
	cam := newTestCamera(t)
	s := NewPanState(altMiddle(50, 50), cam)

	// 10px right and 10px up on a 100px screen over a unit region: the
	// content follows the cursor by +0.1 on both axes, so the visible
	// region shifts by -0.1.
	assert.True(t, s.Update(altMiddle(60, 40)))
	r := cam.Region()
	assert.InDelta(t, -0.1, r.Left, tol)
	assert.InDelta(t, 0.9, r.Right, tol)
	assert.InDelta(t, 0.9, r.Top, tol)
	assert.InDelta(t, -0.1, r.Bottom, tol)
}

func TestPanDeltaIsAbsoluteFromStart(t *testing.T) {
	cam := newTestCamera(t)
	s := NewPanState(altMiddle(50, 50), cam)

	// Wandering off and returning to the press point restores the exact
	// starting matrix: deltas are measured from the gesture start, not the
	// previous frame.
	before := cam.Projection()
	s.Update(altMiddle(90, 10))
	s.Update(altMiddle(13, 77))
	s.Update(altMiddle(50, 50))
	assert.Equal(t, before, cam.Projection())
}

func TestZoomKeepsStartPointFixed(t *testing.T) {
	cam := newTestCamera(t)
	s := NewZoomState(altRight(25, 25), cam)

	wx, wy := cam.ScreenToWorld(25, 25)
	s.Update(altRight(45, 25))

	sx, sy := cam.WorldToScreen(wx, wy)
	assert.InDelta(t, 25, sx, tol)
	assert.InDelta(t, 25, sy, tol)

	// Dragging right zooms in: the visible region shrinks.
	assert.Less(t, cam.Region().Width(), 1.0)
}

func TestZoomDragLeftZoomsOut(t *testing.T) {
	cam := newTestCamera(t)
	s := NewZoomState(altRight(50, 50), cam)

	s.Update(altRight(30, 50))
	assert.Greater(t, cam.Region().Width(), 1.0)
}

func TestZoomAmountFloorsAtMinScale(t *testing.T) {
	cam := newTestCamera(t)
	s := NewZoomState(altRight(50, 50), cam)

	// An extreme drag toward the top-left corner drives the amount to zero
	// and below; it floors instead of flipping the view.
	s.Update(altRight(0, 0))
	r := cam.Region()
	assert.Greater(t, r.Width(), 0.0)
	assert.Greater(t, r.Height(), 0.0)
}

func TestZoomUpdatesFromSnapshot(t *testing.T) {
	cam := newTestCamera(t)
	before := cam.Projection()
	s := NewZoomState(altRight(50, 50), cam)

	// Returning to the press point restores the start matrix exactly.
	s.Update(altRight(70, 30))
	s.Update(altRight(50, 50))
	assert.Equal(t, before, cam.Projection())
}
