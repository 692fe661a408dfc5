package main

import (
	"errors"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"uvscope/camera"
	"uvscope/mesh"
)

// ExportPNG renders a UV layout to a standalone PNG snapshot. The image
// uses its own camera framed on the layout, independent of the viewer.
func ExportPNG(data *mesh.UVData, path string, width, height int) error {
	if data == nil {
		return errors.New("export: no uv data")
	}

	cam, err := camera.New(float64(width), float64(height))
	if err != nil {
		return err
	}
	left, right, top, bottom := dataRegion(data)
	if err := cam.FocusWithBuffer(left, right, top, bottom, 0.05); err != nil {
		return err
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(ColorExportBackground)
	dc.Clear()

	// Unit square reference.
	dc.SetColor(ColorExportSquare)
	dc.SetLineWidth(1)
	x0, y0 := cam.WorldToScreen(0, 1)
	x1, y1 := cam.WorldToScreen(1, 0)
	dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	dc.Stroke()

	dc.SetColor(ColorExportEdge)
	dc.SetLineWidth(1)
	for _, e := range data.Edges {
		a := data.Positions[e.A]
		b := data.Positions[e.B]
		ax, ay := cam.WorldToScreen(a[0], a[1])
		bx, by := cam.WorldToScreen(b[0], b[1])
		dc.DrawLine(ax, ay, bx, by)
	}
	dc.Stroke()

	dc.SetColor(ColorExportBoundary)
	dc.SetLineWidth(2)
	for _, e := range data.Boundary {
		a := data.Positions[e.A]
		b := data.Positions[e.B]
		ax, ay := cam.WorldToScreen(a[0], a[1])
		bx, by := cam.WorldToScreen(b[0], b[1])
		dc.DrawLine(ax, ay, bx, by)
	}
	dc.Stroke()

	if f, err := truetype.Parse(gomono.TTF); err == nil {
		dc.SetFontFace(truetype.NewFace(f, &truetype.Options{
			Size:    14,
			DPI:     72,
			Hinting: font.HintingFull,
		}))
		dc.SetColor(ColorExportLabel)
		dc.DrawString(data.Identifier(), 10, float64(height)-10)
	}

	return dc.SavePNG(path)
}
