// Package loader reads the restricted OBJ subset the core raytracer
// consumes: v/f/s lines only, split on spaces. Lines of any other kind
// (comments, vn, vt, g, o, mtllib, usemtl, ...) are ignored. Within v/f/s
// lines, multi-index face tokens, negative or zero indices, and non-numeric
// components are parse errors, not silent approximations.
package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorender/raytracer/geom"
	"github.com/gorender/raytracer/raytracer"
)

// ByteReader is the loader's only external dependency: a way to fetch a
// file's raw bytes given a path.
type ByteReader interface {
	ReadFile(path string) ([]byte, error)
}

// ParseError reports a malformed OBJ line. Line is 1-based.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("loader: line %d: %s: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads path through reader and parses it into a Mesh positioned at
// position, building its BVH before returning. Any malformed line is
// fatal: a slash-delimited face token is rejected outright rather than
// truncated down to its leading integer.
func Load(reader ByteReader, path string, position geom.Vector) (*raytracer.Mesh, error) {
	data, err := reader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}

	var vertices []geom.Vector
	var faces [][3]int
	shading := raytracer.Flat

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		fields := strings.Split(line, " ")
		if len(fields) == 0 || fields[0] == "" {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: i + 1, Text: line, Err: err}
			}
			vertices = append(vertices, v)

		case "f":
			f, err := parseFace(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: i + 1, Text: line, Err: err}
			}
			faces = append(faces, f)

		case "s":
			s, err := parseShading(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: i + 1, Text: line, Err: err}
			}
			shading = s

		default:
			// Unrecognized line kind: ignored, per the OBJ subset this
			// loader consumes.
		}
	}

	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("loader: face %d references out-of-range vertex index %d (have %d vertices)", i, idx, len(vertices))
			}
		}
	}

	mesh := raytracer.NewMesh(vertices, faces, position)
	mesh.Shading = shading
	return mesh, nil
}

func parseVertex(fields []string) (geom.Vector, error) {
	if len(fields) < 3 {
		return geom.Vector{}, fmt.Errorf("vertex line needs 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geom.Vector{}, fmt.Errorf("x component: %w", err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Vector{}, fmt.Errorf("y component: %w", err)
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return geom.Vector{}, fmt.Errorf("z component: %w", err)
	}
	return geom.Vector{X: x, Y: y, Z: z}, nil
}

// parseFace reads the first three fields, each of which must be a bare,
// positive, 1-based integer; fields after the third are ignored.
// Slash-delimited v/vt/vn tokens are a parse error here, not a
// silently-truncated index.
func parseFace(fields []string) ([3]int, error) {
	if len(fields) < 3 {
		return [3]int{}, fmt.Errorf("face line needs 3 indices, got %d", len(fields))
	}

	var indices [3]int
	for i := 0; i < 3; i++ {
		if strings.ContainsAny(fields[i], "/") {
			return [3]int{}, fmt.Errorf("unsupported multi-index face token %q", fields[i])
		}
		idx, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return [3]int{}, fmt.Errorf("face index %d: %w", i, err)
		}
		if idx == 0 {
			return [3]int{}, fmt.Errorf("face index %d is zero (indices are 1-based)", i)
		}
		indices[i] = int(idx) - 1
	}
	return indices, nil
}

func parseShading(fields []string) (raytracer.Shading, error) {
	if len(fields) < 1 {
		return 0, fmt.Errorf("shading line needs 1 value, got 0")
	}
	value, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("shading value: %w", err)
	}
	if value != 0 {
		return raytracer.Smooth, nil
	}
	return raytracer.Flat, nil
}
