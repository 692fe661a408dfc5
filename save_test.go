package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uvscope/camera"
)

const tol = 1e-9

func newTestViewer(t *testing.T) *Viewer {
	t.Helper()
	v, err := NewViewer(DefaultSettings())
	require.NoError(t, err)
	return v
}

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")

	v := newTestViewer(t)
	require.NoError(t, v.LoadMesh("mesh/testdata/cube.obj", ""))
	v.cam.SetProjection(camera.NewProjectionMatrix(-0.25, 1.75, 1.5, -0.5), true)
	v.showGrid = false
	v.showBoundaries = true
	require.NoError(t, SaveSession(v, path))

	restored := newTestViewer(t)
	require.NoError(t, LoadSession(restored, path))

	assert.Equal(t, "st", restored.uvSet)
	require.NotNil(t, restored.data)
	assert.Len(t, restored.data.Edges, 19)

	r := restored.cam.Region()
	assert.InDelta(t, -0.25, r.Left, tol)
	assert.InDelta(t, 1.75, r.Right, tol)
	assert.InDelta(t, 1.5, r.Top, tol)
	assert.InDelta(t, -0.5, r.Bottom, tol)

	assert.False(t, restored.showGrid)
	assert.True(t, restored.showBoundaries)
}

func TestSessionRoundTripNoMesh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")

	v := newTestViewer(t)
	v.showGrid = false
	require.NoError(t, SaveSession(v, path))

	restored := newTestViewer(t)
	require.NoError(t, LoadSession(restored, path))
	assert.Nil(t, restored.extractor)
	assert.False(t, restored.showGrid)
}

func TestLoadSessionMissingFile(t *testing.T) {
	v := newTestViewer(t)
	err := LoadSession(v, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSessionMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("camera: [not a map\n"), 0644))

	v := newTestViewer(t)
	assert.Error(t, LoadSession(v, path))
}
