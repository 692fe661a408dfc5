package main

import "image/color"

const (
	// --- Window ---
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768

	// --- Camera & Interaction ---
	DefaultZoomSpeed = 0.1 // wheel zoom step per notch

	// --- Grid ---
	GridStep         = 0.1
	GridMinPixelStep = 4.0 // hide grid lines below this on-screen spacing

	// --- Wireframe ---
	EdgeLineWidth     = 1.0
	BoundaryLineWidth = 2.5
	UnitSquareWidth   = 1.5

	// --- Export ---
	ExportFileName = "uvscope_export.png"
	ExportWidth    = 1024
	ExportHeight   = 1024

	// --- Files ---
	DefaultSessionFile  = "uvscope_session.yaml"
	DefaultSettingsFile = "uvscope.yaml"
)

var (
	// --- Colors ---
	ColorBackground = color.RGBA{30, 30, 35, 255}
	ColorGridLine   = color.RGBA{255, 255, 255, 20}
	ColorUnitSquare = color.RGBA{255, 255, 255, 70}
	ColorOriginMark = color.RGBA{255, 100, 100, 150}
	ColorEdge       = color.RGBA{200, 200, 200, 255}
	ColorBoundary   = color.RGBA{255, 140, 0, 255}
	ColorHUDText    = color.RGBA{220, 220, 220, 255}

	// Export renders on paper white.
	ColorExportBackground = color.RGBA{255, 255, 255, 255}
	ColorExportEdge       = color.RGBA{40, 40, 40, 255}
	ColorExportBoundary   = color.RGBA{220, 90, 0, 255}
	ColorExportSquare     = color.RGBA{170, 170, 170, 255}
	ColorExportLabel      = color.RGBA{120, 120, 120, 255}
)
