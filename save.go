package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"uvscope/camera"
)

// RegionState is the yaml form of the visible world region.
type RegionState struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// SessionState is everything needed to restore a viewing session.
type SessionState struct {
	MeshPath       string      `yaml:"mesh_path"`
	UVSet          string      `yaml:"uv_set"`
	Camera         RegionState `yaml:"camera"`
	ShowGrid       bool        `yaml:"show_grid"`
	ShowBoundaries bool        `yaml:"show_boundaries"`
	ShowTexture    bool        `yaml:"show_texture"`
	TexturePath    string      `yaml:"texture_path,omitempty"`
}

// SaveSession writes the viewer's current state to a yaml file.
func SaveSession(v *Viewer, filename string) error {
	r := v.cam.Region()
	state := SessionState{
		UVSet: v.uvSet,
		Camera: RegionState{
			Left:   r.Left,
			Right:  r.Right,
			Top:    r.Top,
			Bottom: r.Bottom,
		},
		ShowGrid:       v.showGrid,
		ShowBoundaries: v.showBoundaries,
		ShowTexture:    v.showTexture,
		TexturePath:    v.texturePath,
	}
	if v.extractor != nil {
		state.MeshPath = v.extractor.Mesh().Path
	}

	data, err := yaml.Marshal(&state)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadSession restores a previously saved session into the viewer. The mesh
// is reloaded from its recorded path; a missing texture only logs a warning
// so a session moved between machines still opens.
func LoadSession(v *Viewer, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	var state SessionState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("load session %s: %w", filename, err)
	}

	if state.MeshPath != "" {
		if err := v.LoadMesh(state.MeshPath, state.UVSet); err != nil {
			return err
		}
	}

	if state.Camera.Left != state.Camera.Right && state.Camera.Top != state.Camera.Bottom {
		proj := camera.NewProjectionMatrix(
			state.Camera.Left, state.Camera.Right,
			state.Camera.Top, state.Camera.Bottom,
		)
		v.cam.SetProjection(proj, true)
	}

	v.showGrid = state.ShowGrid
	v.showBoundaries = state.ShowBoundaries
	v.showTexture = state.ShowTexture
	if state.TexturePath != "" {
		if err := v.LoadTexture(state.TexturePath); err != nil {
			slog.Warn("session texture", "path", state.TexturePath, "error", err)
			v.showTexture = false
		} else {
			v.showTexture = state.ShowTexture
		}
	}
	return nil
}
