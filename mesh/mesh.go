// Package mesh supplies UV layout data to the viewer: a mesh model with
// named UV sets, and an extractor that turns a set into positions plus
// wireframe and boundary edges, cached per set name.
package mesh

import (
	"log/slog"
	"sort"

	"uvscope/topology"
)

// Interpolation describes how a UV set's values bind to the mesh.
type Interpolation string

const (
	// FaceVarying binds one UV per face corner; the same vertex can carry
	// different UVs on adjacent faces, which is what makes seams possible.
	FaceVarying Interpolation = "faceVarying"

	// Vertex binds one UV per vertex, shared by every incident face.
	Vertex Interpolation = "vertex"
)

// UVSet is one named UV attribute on a mesh. Indices is optional: a
// face-varying set without indices is read positionally, one value per
// corner in raw corner order.
type UVSet struct {
	Values        [][2]float64
	Indices       []int
	Interpolation Interpolation
}

// Mesh is the topology and UV attributes of a single polygon mesh.
type Mesh struct {
	Name string
	Path string

	// FaceVertexCounts holds the corner count of each face; the counts sum
	// to len(FaceVertexIndices).
	FaceVertexCounts []int

	// FaceVertexIndices maps raw corner order to vertex indices.
	FaceVertexIndices []int

	UVSets map[string]UVSet
}

// Valid reports whether the mesh has the topology attributes edge
// extraction needs.
func (m *Mesh) Valid() bool {
	return m != nil && len(m.FaceVertexCounts) > 0 && len(m.FaceVertexIndices) > 0
}

// UVSetNames returns the mesh's UV set names, sorted for stable cycling.
func (m *Mesh) UVSetNames() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.UVSets))
	for name := range m.UVSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UVData is the immutable extraction result for one UV set on one mesh.
type UVData struct {
	Name     string
	MeshPath string

	// Positions holds the 2D coordinates, one per unique UV index.
	Positions [][2]float64

	// Edges is the deduplicated wireframe in first-seen order; Boundary is
	// the subset referenced by exactly one face traversal.
	Edges    []topology.Edge
	Boundary []topology.Edge
}

// Identifier keys this result for session caching.
func (d *UVData) Identifier() string {
	return d.MeshPath + "/" + d.Name
}

// Bounds returns the extent of the positions as (left, right, top, bottom).
// ok is false for an empty layout.
func (d *UVData) Bounds() (left, right, top, bottom float64, ok bool) {
	if d == nil || len(d.Positions) == 0 {
		return 0, 0, 0, 0, false
	}
	left, right = d.Positions[0][0], d.Positions[0][0]
	bottom, top = d.Positions[0][1], d.Positions[0][1]
	for _, p := range d.Positions[1:] {
		if p[0] < left {
			left = p[0]
		}
		if p[0] > right {
			right = p[0]
		}
		if p[1] < bottom {
			bottom = p[1]
		}
		if p[1] > top {
			top = p[1]
		}
	}
	return left, right, top, bottom, true
}

// Extractor extracts and caches UV layout data from a single mesh.
// Probing for a UV set that does not exist or cannot be extracted is a
// routine query: Data answers nil and logs at debug level, never errors.
type Extractor struct {
	mesh  *Mesh
	cache map[string]*UVData
}

// NewExtractor returns an extractor for the given mesh.
func NewExtractor(m *Mesh) *Extractor {
	return &Extractor{mesh: m, cache: make(map[string]*UVData)}
}

// Mesh returns the mesh this extractor reads.
func (e *Extractor) Mesh() *Mesh { return e.mesh }

// Valid reports whether the mesh can yield any UV data.
func (e *Extractor) Valid() bool { return e.mesh.Valid() }

// Refresh drops all cached extraction results.
func (e *Extractor) Refresh() {
	e.cache = make(map[string]*UVData)
}

// Data returns the layout for the named UV set, extracting on first use.
// A cached nil is remembered too, so repeated probes of a missing set stay
// cheap.
func (e *Extractor) Data(name string) *UVData {
	if data, ok := e.cache[name]; ok {
		return data
	}

	data := e.extract(name)
	e.cache[name] = data
	return data
}

func (e *Extractor) extract(name string) *UVData {
	if !e.Valid() {
		slog.Debug("mesh has no face topology", "mesh", e.mesh.Name)
		return nil
	}
	set, ok := e.mesh.UVSets[name]
	if !ok {
		slog.Debug("no such uv set", "mesh", e.mesh.Name, "uvSet", name, "valid", e.mesh.UVSetNames())
		return nil
	}
	if len(set.Values) == 0 {
		slog.Debug("uv set has no values", "mesh", e.mesh.Name, "uvSet", name)
		return nil
	}

	var (
		edges    []topology.Edge
		boundary []topology.Edge
		err      error
	)
	switch set.Interpolation {
	case FaceVarying:
		if len(set.Indices) == 0 {
			// One value per raw corner: no index array means matching
			// traversals cannot be detected, so no boundary is reported.
			edges = topology.ExtractEdgesDirect(e.mesh.FaceVertexCounts)
		} else {
			edges, boundary, err = topology.ExtractEdges(e.mesh.FaceVertexCounts, set.Indices)
		}
	case Vertex:
		maps := [][]int{e.mesh.FaceVertexIndices}
		if len(set.Indices) > 0 {
			maps = append(maps, set.Indices)
		}
		edges, boundary, err = topology.ExtractEdges(e.mesh.FaceVertexCounts, maps...)
	default:
		slog.Debug("unsupported uv interpolation", "mesh", e.mesh.Name, "uvSet", name, "interpolation", set.Interpolation)
		return nil
	}
	if err != nil {
		slog.Debug("uv extraction failed", "mesh", e.mesh.Name, "uvSet", name, "error", err)
		return nil
	}
	if len(edges) == 0 {
		slog.Debug("uv set produced no edges", "mesh", e.mesh.Name, "uvSet", name)
		return nil
	}

	return &UVData{
		Name:      name,
		MeshPath:  e.mesh.Path,
		Positions: set.Values,
		Edges:     edges,
		Boundary:  boundary,
	}
}
