// Package camera implements the 2D orthographic camera that drives the UV
// viewport: a projection matrix and its inverse under focus/pan/zoom/resize,
// plus bidirectional mapping between screen, NDC and world coordinates.
//
// Conventions: screen coordinates are pixels with the origin top-left and y
// down. NDC is the [-1,1] square with y up. World is UV space, y up.
package camera

import "errors"

var (
	// ErrInvalidRegion is returned when a focus region has zero width or
	// height. Projecting such a region would divide by zero.
	ErrInvalidRegion = errors.New("camera: degenerate focus region")

	// ErrInvalidScreenSize is returned for non-positive screen dimensions.
	ErrInvalidScreenSize = errors.New("camera: invalid screen size")
)

const (
	// DefaultBufferScale is the fractional margin Focus adds around the
	// requested region.
	DefaultBufferScale = 0.1

	// MinScale is the smallest projection scale Zoom will produce. Requests
	// below it clamp instead of failing; wheel spam is not an error.
	MinScale = 0.01
)

// Region is a world-space rectangle described the way the camera talks
// about it: left/right on x, top/bottom on y with top > bottom.
type Region struct {
	Left, Right, Top, Bottom float64
}

// Width returns the horizontal extent of the region.
func (r Region) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the region.
func (r Region) Height() float64 { return r.Top - r.Bottom }

// Camera2D generates and manipulates an orthographic projection matrix for
// a single view. The matrix and its inverse are recomputed together by
// every mutator, so they are never observable out of sync.
type Camera2D struct {
	screenWidth  float64
	screenHeight float64
	screenAspect float64

	proj    Matrix4
	invProj Matrix4

	// Focus region cached on the first Resize and reused by consecutive
	// resizes, so a resize never compounds letterboxing drift from the
	// previous resize's output. Cleared by any other mutation.
	resizeRegion *Region

	bufferScale float64
}

// New returns a camera for the given screen size, focused on the unit
// square with the default buffer.
func New(width, height float64) (*Camera2D, error) {
	c := &Camera2D{bufferScale: DefaultBufferScale}
	if err := c.setScreenSize(width, height); err != nil {
		return nil, err
	}
	if err := c.Focus(0, 1, 1, 0); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Camera2D) setScreenSize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidScreenSize
	}
	c.screenWidth = width
	c.screenHeight = height
	c.screenAspect = width / height
	return nil
}

// ScreenSize returns the current screen dimensions in pixels.
func (c *Camera2D) ScreenSize() (float64, float64) {
	return c.screenWidth, c.screenHeight
}

// AspectRatio returns width/height of the screen.
func (c *Camera2D) AspectRatio() float64 { return c.screenAspect }

// Focus frames the given world-space region, letterboxed to the screen
// aspect ratio and padded by the default buffer scale.
func (c *Camera2D) Focus(left, right, top, bottom float64) error {
	return c.focus(left, right, top, bottom, c.bufferScale, true)
}

// FocusWithBuffer is Focus with an explicit buffer scale. A bufferScale of
// 0.1 pads every edge outward by 10% of the letterboxed span.
func (c *Camera2D) FocusWithBuffer(left, right, top, bottom, bufferScale float64) error {
	return c.focus(left, right, top, bottom, bufferScale, true)
}

func (c *Camera2D) focus(left, right, top, bottom, bufferScale float64, clearResizeCache bool) error {
	width := right - left
	height := top - bottom
	if width == 0 || height == 0 {
		return ErrInvalidRegion
	}
	aspect := width / height

	// Letterbox: expand the region along one axis around its midpoint so it
	// fits the screen without distortion.
	if c.screenAspect >= aspect {
		halfWidth := width / 2.0
		xMid := left + halfWidth
		scaledHalfWidth := abs(c.screenAspect / aspect * halfWidth)
		left = xMid - scaledHalfWidth
		right = xMid + scaledHalfWidth
	} else {
		halfHeight := height / 2.0
		yMid := bottom + halfHeight
		scaledHalfHeight := abs(aspect / c.screenAspect * halfHeight)
		top = yMid + scaledHalfHeight
		bottom = yMid - scaledHalfHeight
	}

	if bufferScale != 0 {
		xBuffer := (right - left) * bufferScale
		yBuffer := (top - bottom) * bufferScale
		left -= xBuffer
		right += xBuffer
		top += yBuffer
		bottom -= yBuffer
	}

	c.setProjection(NewProjectionMatrix(left, right, top, bottom), clearResizeCache)
	return nil
}

// Region recovers the focus region from the current projection matrix. It
// is the exact algebraic inverse of NewProjectionMatrix.
func (c *Camera2D) Region() Region {
	xScale := c.proj[0]
	yScale := c.proj[5]
	xTrans := c.proj[3]
	yTrans := c.proj[7]
	return Region{
		Left:   -(1.0 + xTrans) / xScale,
		Right:  (1.0 - xTrans) / xScale,
		Top:    (1.0 - yTrans) / yScale,
		Bottom: -(1.0 + yTrans) / yScale,
	}
}

// Pan translates the visible region by (dx, dy) world units. Positive dx
// moves the region right, so content appears to move left.
func (c *Camera2D) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	c.SetProjection(c.proj.Mul(NewTranslationMatrix(-dx, -dy)), true)
}

// Zoom scales the view uniformly by amount around the world point
// (wx, wy), which stays fixed on screen. An amount of 1 is a no-op.
func (c *Camera2D) Zoom(wx, wy, amount float64) {
	if amount == 1.0 {
		return
	}
	c.SetProjection(c.ScaleAroundPoint(c.proj, amount, amount, wx, wy), true)
}

// ScaleAroundPoint scales a projection matrix by (xScale, yScale) around
// the world point (wx, wy). The resulting scale is clamped at MinScale to
// prevent the view collapsing or flipping; on clamp the y scale keeps the
// screen aspect so pixels stay square. The matrix's existing translation
// is honored by composing translate-scale-translate rather than editing
// the diagonal alone.
func (c *Camera2D) ScaleAroundPoint(m Matrix4, xScale, yScale, wx, wy float64) Matrix4 {
	curX := m.ScaleX()
	curY := m.ScaleY()
	if (xScale == 1.0 && yScale == 1.0) || curX <= MinScale || curY <= MinScale {
		return m
	}

	newX := curX * xScale
	newY := curY * yScale
	if newX <= MinScale || newY <= MinScale {
		newX = MinScale
		newY = MinScale * c.screenAspect
	}

	// Closed form of T(wx,wy) conjugation: diagonal replaced, translation
	// shifted so (wx, wy) maps to the same NDC point as before.
	r := m
	r[0] = newX
	r[5] = newY
	r[3] = m[3] + (curX-newX)*wx
	r[7] = m[7] + (curY-newY)*wy
	return r
}

// Resize updates the screen dimensions and reflows the view: the
// horizontal world extent of the focus region set before any resize is
// kept and the vertical extent is re-derived for the new aspect ratio.
// The pre-resize region is cached so repeated resizes always derive from
// the same baseline instead of compounding rounding drift.
func (c *Camera2D) Resize(width, height float64) error {
	if c.resizeRegion == nil {
		r := c.Region()
		c.resizeRegion = &r
	}
	r := *c.resizeRegion

	if err := c.setScreenSize(width, height); err != nil {
		return err
	}

	halfHeight := r.Height() / 2.0
	yMid := r.Bottom + halfHeight
	scaledHalfHeight := halfHeight / c.screenAspect
	bottom := yMid - scaledHalfHeight
	top := yMid + scaledHalfHeight

	return c.focus(r.Left, r.Right, top, bottom, 0, false)
}

// SetProjection installs a projection matrix and recomputes the cached
// inverse. clearResizeCache drops the cached pre-resize region; Resize is
// the only caller that passes false.
func (c *Camera2D) SetProjection(m Matrix4, clearResizeCache bool) {
	c.setProjection(m, clearResizeCache)
}

func (c *Camera2D) setProjection(m Matrix4, clearResizeCache bool) {
	c.proj = m
	c.invProj = m.Inverse()
	if clearResizeCache {
		c.resizeRegion = nil
	}
}

// Projection returns the current projection matrix.
func (c *Camera2D) Projection() Matrix4 { return c.proj }

// GLProjection returns the projection matrix flattened column-major for a
// graphics-API uniform.
func (c *Camera2D) GLProjection() [16]float32 { return c.proj.GL() }

// ScreenToNDC maps a screen pixel coordinate to NDC. Pure affine in the
// screen dimensions; the projection matrix is not involved.
func (c *Camera2D) ScreenToNDC(x, y float64) (float64, float64) {
	return x/c.screenWidth*2.0 - 1.0, (y/c.screenHeight - 0.5) * -2.0
}

// NDCToScreen maps an NDC coordinate to screen pixels.
func (c *Camera2D) NDCToScreen(x, y float64) (float64, float64) {
	return (x/2.0 + 0.5) * c.screenWidth, (y/-2.0 + 0.5) * c.screenHeight
}

// NDCToWorld maps an NDC coordinate to world space through the inverse
// projection matrix.
func (c *Camera2D) NDCToWorld(x, y float64) (float64, float64) {
	return c.invProj.Apply(x, y)
}

// WorldToNDC maps a world coordinate to NDC through the projection matrix.
func (c *Camera2D) WorldToNDC(x, y float64) (float64, float64) {
	return c.proj.Apply(x, y)
}

// ScreenToWorld maps a screen pixel coordinate to world space.
func (c *Camera2D) ScreenToWorld(x, y float64) (float64, float64) {
	return c.NDCToWorld(c.ScreenToNDC(x, y))
}

// WorldToScreen maps a world coordinate to screen pixels.
func (c *Camera2D) WorldToScreen(x, y float64) (float64, float64) {
	return c.NDCToScreen(c.WorldToNDC(x, y))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
