package main

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"uvscope/camera"
	"uvscope/mesh"
	"uvscope/states"

	_ "image/jpeg"
	_ "image/png"
)

// Viewer is the application object: one camera, one mesh, the currently
// displayed UV set, and the display toggles. It implements ebiten.Game.
type Viewer struct {
	cam      *camera.Camera2D
	settings Settings
	bindings []states.Binding
	input    *InputSystem
	face     font.Face

	extractor *mesh.Extractor
	uvSet     string
	data      *mesh.UVData

	texture     *ebiten.Image
	texturePath string

	screenWidth  int
	screenHeight int

	showGrid       bool
	showBoundaries bool
	showTexture    bool

	sessionPath     string
	exportRequested bool
}

// NewViewer builds a viewer with an empty canvas framed on the unit square.
func NewViewer(settings Settings) (*Viewer, error) {
	cam, err := camera.New(float64(settings.WindowWidth), float64(settings.WindowHeight))
	if err != nil {
		return nil, err
	}
	v := &Viewer{
		cam:            cam,
		settings:       settings,
		bindings:       states.DefaultBindings(),
		face:           LoadUIFont(settings.FontPath),
		screenWidth:    settings.WindowWidth,
		screenHeight:   settings.WindowHeight,
		showGrid:       settings.ShowGrid,
		showBoundaries: settings.ShowBoundaries,
		sessionPath:    DefaultSessionFile,
	}
	v.input = NewInputSystem(v)
	return v, nil
}

// LoadMesh loads an OBJ file, selects a UV set (the first one when name is
// empty) and frames the layout.
func (v *Viewer) LoadMesh(path, uvSet string) error {
	m, err := mesh.LoadOBJ(path)
	if err != nil {
		return err
	}
	v.extractor = mesh.NewExtractor(m)

	names := m.UVSetNames()
	if uvSet == "" && len(names) > 0 {
		uvSet = names[0]
	}
	v.SetUVSet(uvSet)
	if v.data == nil && uvSet != "" {
		slog.Warn("no uv data", "mesh", path, "uvSet", uvSet, "valid", names)
	}
	v.FrameAll()
	slog.Info("mesh loaded", "mesh", path, "uvSets", names)
	return nil
}

// SetUVSet switches the displayed UV set. Unknown names leave the viewer
// with an empty wireframe; probing is not an error.
func (v *Viewer) SetUVSet(name string) {
	v.uvSet = name
	v.data = nil
	if v.extractor != nil && name != "" {
		v.data = v.extractor.Data(name)
	}
}

// NextUVSet cycles to the next UV set on the mesh.
func (v *Viewer) NextUVSet() {
	if v.extractor == nil {
		return
	}
	names := v.extractor.Mesh().UVSetNames()
	if len(names) < 2 {
		return
	}
	for i, name := range names {
		if name == v.uvSet {
			v.SetUVSet(names[(i+1)%len(names)])
			return
		}
	}
	v.SetUVSet(names[0])
}

// LoadTexture decodes an image file and shows it under the wireframe,
// covering the unit square.
func (v *Viewer) LoadTexture(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load texture: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("load texture %s: %w", path, err)
	}
	v.texture = ebiten.NewImageFromImage(img)
	v.texturePath = path
	v.showTexture = true
	return nil
}

// dataRegion returns the framing region for uv data: its bounds, padded
// when degenerate, or the unit square when there is nothing to frame.
func dataRegion(data *mesh.UVData) (left, right, top, bottom float64) {
	left, right, top, bottom, ok := data.Bounds()
	if !ok {
		return 0, 1, 1, 0
	}
	// A layout collapsed onto a line or point still needs a valid region.
	if left == right {
		left -= 0.5
		right += 0.5
	}
	if top == bottom {
		top += 0.5
		bottom -= 0.5
	}
	return left, right, top, bottom
}

// FrameAll focuses the camera on the whole layout.
func (v *Viewer) FrameAll() {
	left, right, top, bottom := dataRegion(v.data)
	if err := v.cam.Focus(left, right, top, bottom); err != nil {
		slog.Warn("frame all", "error", err)
	}
}

// Update handles input and deferred one-shot actions.
func (v *Viewer) Update() error {
	v.input.Update()

	if v.exportRequested {
		v.exportRequested = false
		if err := ExportPNG(v.data, ExportFileName, ExportWidth, ExportHeight); err != nil {
			slog.Error("export", "error", err)
		} else {
			slog.Info("export written", "path", ExportFileName)
		}
	}
	return nil
}

// Draw renders texture, grid, wireframe and HUD back to front.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	if v.showTexture && v.texture != nil {
		v.drawTexture(screen)
	}
	if v.showGrid {
		v.drawGrid(screen)
	}
	v.drawEdges(screen)
	v.drawHUD(screen)
}

func (v *Viewer) drawTexture(screen *ebiten.Image) {
	// The texture covers world [0,1]². World y is up and image y is down,
	// so the image's top-left goes to world (0,1).
	x0, y0 := v.cam.WorldToScreen(0, 1)
	x1, y1 := v.cam.WorldToScreen(1, 0)

	bounds := v.texture.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale((x1-x0)/float64(bounds.Dx()), (y1-y0)/float64(bounds.Dy()))
	op.GeoM.Translate(x0, y0)
	screen.DrawImage(v.texture, op)
}

func (v *Viewer) drawGrid(screen *ebiten.Image) {
	r := v.cam.Region()
	pxPerUnit := float64(v.screenWidth) / r.Width()

	if GridStep*pxPerUnit >= GridMinPixelStep {
		startX := math.Floor(r.Left/GridStep) * GridStep
		for wx := startX; wx <= r.Right; wx += GridStep {
			sx, _ := v.cam.WorldToScreen(wx, 0)
			vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(v.screenHeight), 1, ColorGridLine, false)
		}
		startY := math.Floor(r.Bottom/GridStep) * GridStep
		for wy := startY; wy <= r.Top; wy += GridStep {
			_, sy := v.cam.WorldToScreen(0, wy)
			vector.StrokeLine(screen, 0, float32(sy), float32(v.screenWidth), float32(sy), 1, ColorGridLine, false)
		}
	}

	// The unit square is the reference frame of every UV layout.
	x0, y0 := v.cam.WorldToScreen(0, 1)
	x1, y1 := v.cam.WorldToScreen(1, 0)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), UnitSquareWidth, ColorUnitSquare, false)

	// Origin marker.
	ox, oy := v.cam.WorldToScreen(0, 0)
	vector.StrokeLine(screen, float32(ox-8), float32(oy), float32(ox+8), float32(oy), 2, ColorOriginMark, false)
	vector.StrokeLine(screen, float32(ox), float32(oy-8), float32(ox), float32(oy+8), 2, ColorOriginMark, false)
}

func (v *Viewer) drawEdges(screen *ebiten.Image) {
	if v.data == nil {
		return
	}
	for _, e := range v.data.Edges {
		a := v.data.Positions[e.A]
		b := v.data.Positions[e.B]
		x0, y0 := v.cam.WorldToScreen(a[0], a[1])
		x1, y1 := v.cam.WorldToScreen(b[0], b[1])
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), EdgeLineWidth, ColorEdge, true)
	}
	if !v.showBoundaries {
		return
	}
	for _, e := range v.data.Boundary {
		a := v.data.Positions[e.A]
		b := v.data.Positions[e.B]
		x0, y0 := v.cam.WorldToScreen(a[0], a[1])
		x1, y1 := v.cam.WorldToScreen(b[0], b[1])
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), BoundaryLineWidth, ColorBoundary, true)
	}
}

func (v *Viewer) drawHUD(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	wx, wy := v.cam.ScreenToWorld(float64(mx), float64(my))

	header := "no mesh loaded"
	if v.data != nil {
		header = fmt.Sprintf("%s  edges: %d  boundary: %d", v.data.Identifier(), len(v.data.Edges), len(v.data.Boundary))
	} else if v.extractor != nil {
		header = fmt.Sprintf("%s  (no uv data)", v.extractor.Mesh().Name)
	}

	msg := fmt.Sprintf("%s\nuv: %.4f, %.4f", header, wx, wy)
	DrawTextLines(screen, v.face, msg, 8, 8, ColorHUDText)
}

// Layout reports the render size and reflows the camera when the window
// size changes.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != v.screenWidth || outsideHeight != v.screenHeight) {
		v.screenWidth = outsideWidth
		v.screenHeight = outsideHeight
		if err := v.cam.Resize(float64(outsideWidth), float64(outsideHeight)); err != nil {
			slog.Warn("resize", "error", err)
		}
	}
	return v.screenWidth, v.screenHeight
}
