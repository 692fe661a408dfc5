package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	meshPath := flag.String("mesh", "", "OBJ file to load")
	uvSet := flag.String("uv", "", "UV set to display (default: first on the mesh)")
	texturePath := flag.String("texture", "", "texture image to show under the layout")
	sessionPath := flag.String("session", DefaultSessionFile, "session file to restore and save")
	settingsPath := flag.String("settings", DefaultSettingsFile, "settings file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))

	settings, err := LoadSettings(*settingsPath)
	if err != nil {
		slog.Error("settings", "error", err)
		os.Exit(1)
	}

	viewer, err := NewViewer(settings)
	if err != nil {
		slog.Error("viewer", "error", err)
		os.Exit(1)
	}
	viewer.sessionPath = *sessionPath

	switch {
	case *meshPath != "":
		if err := viewer.LoadMesh(*meshPath, *uvSet); err != nil {
			slog.Error("load mesh", "path", *meshPath, "error", err)
			os.Exit(1)
		}
	default:
		if _, err := os.Stat(*sessionPath); err == nil {
			if err := LoadSession(viewer, *sessionPath); err != nil {
				slog.Warn("restore session", "path", *sessionPath, "error", err)
			}
		}
	}

	if *texturePath != "" {
		if err := viewer.LoadTexture(*texturePath); err != nil {
			slog.Warn("load texture", "path", *texturePath, "error", err)
		}
	}

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("uvscope")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil {
		slog.Error("run", "error", err)
		os.Exit(1)
	}
}
