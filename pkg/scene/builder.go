package scene

import (
	"fmt"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/material"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// Builder collects primitives and materials and produces an immutable Scene.
// Add methods never fail; every problem is reported once by Build.
type Builder struct {
	prims     []geometry.Primitive
	materials []material.Material
	err       error

	background core.Vec3
	camera     geometry.CameraConfig
	sampling   SamplingConfig
}

// NewBuilder creates an empty builder with a black background
func NewBuilder() *Builder {
	return &Builder{}
}

// AddMaterial registers a material and returns its index
func (b *Builder) AddMaterial(m material.Material) int {
	b.materials = append(b.materials, m)
	return len(b.materials) - 1
}

// AddSphere adds a sphere; a negative radius makes a hollow surface
func (b *Builder) AddSphere(center core.Vec3, radius numeric.Real, mat int) {
	if radius == 0 || !numeric.IsFinite(radius) || !center.IsFinite() {
		b.fail(fmt.Errorf("%w: sphere at %v with radius %v", ErrInvalidPrimitive, center, radius))
		return
	}
	b.prims = append(b.prims, geometry.NewSphere(center, radius, mat))
}

// AddMovingSphere adds a sphere moving from center0 at time0 to center1 at time1
func (b *Builder) AddMovingSphere(center0, center1 core.Vec3, time0, time1, radius numeric.Real, mat int) {
	if radius == 0 || !numeric.IsFinite(radius) || !center0.IsFinite() || !center1.IsFinite() {
		b.fail(fmt.Errorf("%w: moving sphere with radius %v", ErrInvalidPrimitive, radius))
		return
	}
	b.prims = append(b.prims, geometry.NewMovingSphere(center0, center1, time0, time1, radius, mat))
}

// AddTriangle adds a single triangle
func (b *Builder) AddTriangle(v0, v1, v2 core.Vec3, mat int) {
	if !allFinite(v0, v1, v2) {
		b.fail(fmt.Errorf("%w: triangle %v %v %v", ErrInvalidPrimitive, v0, v1, v2))
		return
	}
	b.prims = append(b.prims, geometry.NewTriangle(v0, v1, v2, mat))
}

// AddQuad adds a parallelogram as two triangles
func (b *Builder) AddQuad(corner, u, v core.Vec3, mat int) {
	if !allFinite(corner, u, v) {
		b.fail(fmt.Errorf("%w: quad at %v spanning %v %v", ErrInvalidPrimitive, corner, u, v))
		return
	}
	quad := geometry.NewQuad(corner, u, v, mat)
	b.prims = append(b.prims, quad[0], quad[1])
}

// AddMesh adds an indexed triangle mesh
func (b *Builder) AddMesh(vertices []core.Vec3, faces []int, mat int) {
	if !allFinite(vertices...) {
		b.fail(fmt.Errorf("%w: mesh with non-finite vertices", ErrInvalidPrimitive))
		return
	}
	tris, err := geometry.NewMesh(vertices, faces, mat)
	if err != nil {
		b.fail(err)
		return
	}
	b.prims = append(b.prims, tris...)
}

// AddBox adds a solid axis-aligned box between two corners
func (b *Builder) AddBox(a, c core.Vec3, mat int) {
	if !allFinite(a, c) {
		b.fail(fmt.Errorf("%w: box between %v and %v", ErrInvalidPrimitive, a, c))
		return
	}
	b.prims = append(b.prims, geometry.NewBox(a, c, mat))
}

// SetBackground sets the radiance of rays that miss everything
func (b *Builder) SetBackground(color core.Vec3) {
	b.background = color
}

// SetCamera sets the scene's recommended camera
func (b *Builder) SetCamera(config geometry.CameraConfig) {
	b.camera = config
}

// SetSampling sets the scene's recommended sampling configuration
func (b *Builder) SetSampling(config SamplingConfig) {
	b.sampling = config
}

func allFinite(points ...core.Vec3) bool {
	for _, p := range points {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build validates the collected data and constructs the BVH
func (b *Builder) Build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.prims) == 0 {
		return nil, ErrEmptyScene
	}
	for i := range b.materials {
		if err := b.materials[i].Validate(); err != nil {
			return nil, fmt.Errorf("material %d: %w", i, err)
		}
	}
	for i := range b.prims {
		if m := b.prims[i].Material; m < 0 || m >= len(b.materials) {
			return nil, fmt.Errorf("%w: %s %d references material %d of %d",
				ErrUnknownMaterial, b.prims[i].Kind, i, m, len(b.materials))
		}
	}

	return &Scene{
		BVH:            geometry.NewBVH(b.prims),
		Materials:      append([]material.Material(nil), b.materials...),
		Background:     b.background,
		SamplingConfig: b.sampling,
		CameraConfig:   b.camera,
	}, nil
}
