// Package topology converts per-face mesh index data into the deduplicated
// undirected edge list a wireframe renderer draws, and identifies the open
// edges that bound the layout.
package topology

import "fmt"

// Edge is an undirected edge between two coordinate indices, stored in
// canonical order with A <= B. Canonical ordering is what lets the two
// traversals of a shared edge (which adjacent faces walk in opposite
// directions) collapse into one entry, so multiplicity counting can tell
// interior edges from boundaries.
type Edge struct {
	A, B int
}

// NewEdge returns the canonical edge for an index pair.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// ExtractEdges walks faces corner by corner, forming an edge from each
// consecutive corner pair (wrapping last back to first). Both corner
// indices are remapped through every index map in order, composing the
// indirection chain, before canonicalization. The returned edge list is
// deduplicated in first-seen order; the boundary list is the subset of
// edges referenced by exactly one face traversal, also in first-seen order.
//
// A UV seam shows up as multiplicity-1 edges on both sides of the cut and
// is reported as boundary; that is intended, a seam looks open in UV space.
func ExtractEdges(faceVertexCounts []int, indexMaps ...[]int) (edges, boundary []Edge, err error) {
	corners := 0
	for _, n := range faceVertexCounts {
		corners += n
	}
	if len(indexMaps) > 0 && len(indexMaps[0]) < corners {
		return nil, nil, fmt.Errorf("topology: index map covers %d of %d corners", len(indexMaps[0]), corners)
	}

	counts := make(map[Edge]int)
	consumed := 0
	for _, faceVertexCount := range faceVertexCounts {
		for i := 0; i < faceVertexCount; i++ {
			first := consumed + i
			second := first + 1
			if i == faceVertexCount-1 {
				second = consumed
			}
			for level, indexMap := range indexMaps {
				if first >= len(indexMap) || second >= len(indexMap) || first < 0 || second < 0 {
					return nil, nil, fmt.Errorf("topology: index %d out of range for map %d (len %d)", max(first, second), level, len(indexMap))
				}
				first = indexMap[first]
				second = indexMap[second]
			}
			edge := NewEdge(first, second)
			if _, seen := counts[edge]; !seen {
				edges = append(edges, edge)
			}
			counts[edge]++
		}
		consumed += faceVertexCount
	}

	// Walking the deduplicated list keeps the boundary in first-seen order.
	for _, edge := range edges {
		if counts[edge] == 1 {
			boundary = append(boundary, edge)
		}
	}
	return edges, boundary, nil
}

// ExtractEdgesDirect generates edges for coordinate values indexed directly
// by raw face-corner order, i.e. a primvar with no index array. Every
// corner has its own coordinate entry, so matching traversals from
// neighbouring faces cannot be detected and no boundary can be reliably
// determined; callers get the full edge list and an empty boundary rather
// than a wrong one.
func ExtractEdgesDirect(faceVertexCounts []int) []Edge {
	var edges []Edge
	consumed := 0
	for _, faceVertexCount := range faceVertexCounts {
		for i := 0; i < faceVertexCount; i++ {
			first := consumed + i
			second := first + 1
			if i == faceVertexCount-1 {
				second = consumed
			}
			edges = append(edges, NewEdge(first, second))
		}
		consumed += faceVertexCount
	}
	return edges
}
