package scene

import (
	"errors"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/material"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

var (
	// ErrEmptyScene is returned when a scene has no geometry to render
	ErrEmptyScene = errors.New("scene has no primitives")
	// ErrUnknownMaterial is returned when a primitive references a material that does not exist
	ErrUnknownMaterial = errors.New("unknown material")
	// ErrInvalidPrimitive is returned for primitives with degenerate or non-finite parameters
	ErrInvalidPrimitive = errors.New("invalid primitive")
	// ErrUnknownScene is returned by ByName for unregistered scene names
	ErrUnknownScene = errors.New("unknown scene")
)

// Scene contains all the elements needed for rendering. Once built it is never
// modified, so renders on any number of goroutines can share it.
type Scene struct {
	BVH            *geometry.BVH       // Acceleration structure for ray-object intersection
	Materials      []material.Material // Indexed by Primitive.Material
	Background     core.Vec3           // Radiance returned for rays that escape the scene
	SamplingConfig SamplingConfig
	CameraConfig   geometry.CameraConfig
}

// SamplingConfig contains the scene's recommended rendering configuration
type SamplingConfig struct {
	Width                     int // Image width
	Height                    int // Image height
	SamplesPerPixel           int // Number of rays per pixel
	MaxDepth                  int // Maximum ray bounce depth
	RussianRouletteMinBounces int // Minimum bounces before Russian Roulette can activate, 0 disables it
}

// Hit finds the closest intersection with the scene geometry
func (s *Scene) Hit(ray core.Ray, tMin, tMax numeric.Real, rec *core.HitRecord) bool {
	return s.BVH.Hit(ray, tMin, tMax, rec)
}

// Material returns the material with the given index
func (s *Scene) Material(id int) *material.Material {
	return &s.Materials[id]
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.BVH.Len()
}
