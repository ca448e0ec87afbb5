package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-portable-raytracer/pkg/core"
)

// ErrInvalidMesh is returned for malformed index lists
var ErrInvalidMesh = errors.New("invalid mesh")

// NewMesh expands an indexed triangle list into triangle primitives that all share one
// material. Every three indices form one triangle.
func NewMesh(vertices []core.Vec3, faces []int, material int) ([]Primitive, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("%w: %d face indices is not a multiple of 3", ErrInvalidMesh, len(faces))
	}

	triangles := make([]Primitive, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, idx := range [3]int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidMesh, i/3, idx, len(vertices))
			}
		}
		triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2], material))
	}
	return triangles, nil
}

// NewQuad returns the two triangles covering the parallelogram corner, corner+u, corner+u+v, corner+v.
// The normal follows u × v.
func NewQuad(corner, u, v core.Vec3, material int) [2]Primitive {
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)
	return [2]Primitive{
		NewTriangle(corner, p1, p2, material),
		NewTriangle(corner, p2, p3, material),
	}
}
