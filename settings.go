package main

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Settings are the tool preferences: yaml file first, then UVSCOPE_*
// environment variables on top.
type Settings struct {
	WindowWidth    int     `yaml:"window_width" envconfig:"WINDOW_WIDTH"`
	WindowHeight   int     `yaml:"window_height" envconfig:"WINDOW_HEIGHT"`
	ZoomSpeed      float64 `yaml:"zoom_speed" envconfig:"ZOOM_SPEED"`
	FontPath       string  `yaml:"font_path" envconfig:"FONT_PATH"`
	ShowGrid       bool    `yaml:"show_grid" envconfig:"SHOW_GRID"`
	ShowBoundaries bool    `yaml:"show_boundaries" envconfig:"SHOW_BOUNDARIES"`
}

// DefaultSettings returns the stock preferences.
func DefaultSettings() Settings {
	return Settings{
		WindowWidth:    DefaultWindowWidth,
		WindowHeight:   DefaultWindowHeight,
		ZoomSpeed:      DefaultZoomSpeed,
		ShowGrid:       true,
		ShowBoundaries: true,
	}
}

// LoadSettings reads the settings file if it exists and applies UVSCOPE_*
// environment overrides. A missing file is not an error; a malformed one is.
func LoadSettings(filename string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("settings %s: %w", filename, err)
		}
	} else if !os.IsNotExist(err) {
		return s, fmt.Errorf("settings %s: %w", filename, err)
	}

	if err := envconfig.Process("uvscope", &s); err != nil {
		return s, fmt.Errorf("settings env: %w", err)
	}

	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return s, fmt.Errorf("settings: window size %dx%d", s.WindowWidth, s.WindowHeight)
	}
	if s.ZoomSpeed <= 0 {
		s.ZoomSpeed = DefaultZoomSpeed
	}
	return s, nil
}
