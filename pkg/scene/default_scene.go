package scene

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/material"
)

// SkyBackground is the flat sky color used by the outdoor scenes
var SkyBackground = core.NewVec3(0.7, 0.8, 1.0)

// NewDefaultScene creates the minimal two-sphere scene: a diffuse sphere of radius 0.5
// resting on a large ground sphere, viewed from the origin down -z under a flat sky
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}

	// Apply any overrides using the reusable merge function
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	b := NewBuilder()
	b.SetCamera(cameraConfig)
	b.SetBackground(SkyBackground)
	b.SetSampling(SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 50,
		MaxDepth:        20,
	})

	center := b.AddMaterial(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	ground := b.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))

	b.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	b.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)

	return b.Build()
}
