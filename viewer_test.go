package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uvscope/mesh"
)

func twoSetMesh() *mesh.Mesh {
	quad := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	return &mesh.Mesh{
		Name:              "quad",
		Path:              "/memory/quad",
		FaceVertexCounts:  []int{4},
		FaceVertexIndices: []int{0, 1, 2, 3},
		UVSets: map[string]mesh.UVSet{
			"st":  {Values: quad, Interpolation: mesh.FaceVarying},
			"map": {Values: quad, Interpolation: mesh.FaceVarying},
		},
	}
}

func TestViewerLoadMesh(t *testing.T) {
	v := newTestViewer(t)
	require.NoError(t, v.LoadMesh("mesh/testdata/cube.obj", ""))

	assert.Equal(t, "st", v.uvSet)
	require.NotNil(t, v.data)
	assert.Len(t, v.data.Edges, 19)
	assert.Len(t, v.data.Boundary, 14)

	// The framed region covers the whole layout.
	left, right, top, bottom, ok := v.data.Bounds()
	require.True(t, ok)
	r := v.cam.Region()
	assert.LessOrEqual(t, r.Left, left)
	assert.GreaterOrEqual(t, r.Right, right)
	assert.GreaterOrEqual(t, r.Top, top)
	assert.LessOrEqual(t, r.Bottom, bottom)
}

func TestViewerLoadMeshMissing(t *testing.T) {
	v := newTestViewer(t)
	assert.Error(t, v.LoadMesh("mesh/testdata/nope.obj", ""))
}

func TestViewerSetUVSetUnknown(t *testing.T) {
	v := newTestViewer(t)
	require.NoError(t, v.LoadMesh("mesh/testdata/cube.obj", ""))

	v.SetUVSet("nope")
	assert.Equal(t, "nope", v.uvSet)
	assert.Nil(t, v.data)
}

func TestViewerNextUVSet(t *testing.T) {
	v := newTestViewer(t)
	v.extractor = mesh.NewExtractor(twoSetMesh())
	v.SetUVSet("map")

	v.NextUVSet()
	assert.Equal(t, "st", v.uvSet)
	require.NotNil(t, v.data)

	v.NextUVSet()
	assert.Equal(t, "map", v.uvSet)
}

func TestViewerNextUVSetSingle(t *testing.T) {
	v := newTestViewer(t)
	require.NoError(t, v.LoadMesh("mesh/testdata/cube.obj", ""))

	v.NextUVSet()
	assert.Equal(t, "st", v.uvSet)
}

func TestViewerFrameAllEmpty(t *testing.T) {
	v := newTestViewer(t)
	v.FrameAll()

	r := v.cam.Region()
	assert.LessOrEqual(t, r.Left, 0.0)
	assert.GreaterOrEqual(t, r.Right, 1.0)
	assert.GreaterOrEqual(t, r.Top, 1.0)
	assert.LessOrEqual(t, r.Bottom, 0.0)
}

func TestViewerLayoutResize(t *testing.T) {
	v := newTestViewer(t)

	w, h := v.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	before := v.cam.Region()
	w, h = v.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, before, v.cam.Region())
}
