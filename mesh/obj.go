package mesh

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultUVSetName is the name given to the texture coordinates of an OBJ
// file, which can carry only one set.
const DefaultUVSetName = "st"

// LoadOBJ reads a Wavefront OBJ file into a Mesh. Positions are only
// counted, for index validation; the viewer works purely in UV space.
// When every face corner carries a vt reference the texture coordinates
// become a face-varying UV set named DefaultUVSetName; a file without vt
// data yields a mesh with no UV sets.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load obj: %w", err)
	}
	defer file.Close()

	m := &Mesh{
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:   path,
		UVSets: map[string]UVSet{},
	}

	var (
		vertexCount int
		uvs         [][2]float64
		uvIndices   []int
		cornersSeen int
		cornersUV   int
	)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			vertexCount++
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("load obj: line %d: vt needs two values", lineNo)
			}
			u, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("load obj: line %d: %w", lineNo, err)
			}
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("load obj: line %d: %w", lineNo, err)
			}
			uvs = append(uvs, [2]float64{u, v})
		case "f":
			corners := fields[1:]
			if len(corners) < 3 {
				return nil, fmt.Errorf("load obj: line %d: face needs at least 3 corners", lineNo)
			}
			m.FaceVertexCounts = append(m.FaceVertexCounts, len(corners))
			for _, corner := range corners {
				pos, uv, hasUV, err := parseCorner(corner)
				if err != nil {
					return nil, fmt.Errorf("load obj: line %d: %w", lineNo, err)
				}
				if pos < 1 || pos > vertexCount {
					return nil, fmt.Errorf("load obj: line %d: vertex index %d out of range", lineNo, pos)
				}
				m.FaceVertexIndices = append(m.FaceVertexIndices, pos-1)
				cornersSeen++
				if hasUV {
					if uv < 1 || uv > len(uvs) {
						return nil, fmt.Errorf("load obj: line %d: uv index %d out of range", lineNo, uv)
					}
					uvIndices = append(uvIndices, uv-1)
					cornersUV++
				}
			}
		}
		// Groups, materials, normals and the rest are irrelevant here.
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load obj: %w", err)
	}

	if cornersUV > 0 {
		if cornersUV != cornersSeen {
			return nil, fmt.Errorf("load obj: %d of %d corners have uv references", cornersUV, cornersSeen)
		}
		m.UVSets[DefaultUVSetName] = UVSet{
			Values:        uvs,
			Indices:       uvIndices,
			Interpolation: FaceVarying,
		}
	}
	return m, nil
}

// parseCorner splits an OBJ face corner: "pos", "pos/uv", "pos//normal" or
// "pos/uv/normal", all 1-based.
func parseCorner(corner string) (pos, uv int, hasUV bool, err error) {
	parts := strings.Split(corner, "/")
	pos, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false, fmt.Errorf("bad corner %q: %w", corner, err)
	}
	if pos < 0 {
		return 0, 0, false, fmt.Errorf("bad corner %q: relative indices not supported", corner)
	}
	if len(parts) > 1 && parts[1] != "" {
		uv, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, false, fmt.Errorf("bad corner %q: %w", corner, err)
		}
		hasUV = true
	}
	return pos, uv, hasUV, nil
}
