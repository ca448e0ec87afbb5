package scene

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/material"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// MaterialsNoiseSeed fixes the noise tables of the marble sphere in the materials scene
const MaterialsNoiseSeed = 7

// NewMaterialsScene shows every material side by side: diffuse, mirror, fuzzy gold,
// solid glass, a hollow glass shell around a diffuse core and a small marble
// sphere, lit by a large emissive sphere and the sky
func NewMaterialsScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:        core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:            core.NewVec3(0, 1, 0),    // Standard up direction
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0, // Narrower field of view for focus effect
		Aperture:      0.05, // Strong depth of field blur
		FocusDistance: 0.0,  // Auto-calculate focus distance
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	b := NewBuilder()
	b.SetCamera(cameraConfig)
	b.SetBackground(SkyBackground)
	b.SetSampling(SamplingConfig{
		Width:                     400,
		Height:                    225,
		SamplesPerPixel:           200,
		MaxDepth:                  50,
		RussianRouletteMinBounces: 20, // Need a lot of bounces for complex glass
	})

	lambertianGreen := b.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6)))
	lambertianBlue := b.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	lambertianRed := b.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2)))
	metalSilver := b.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0))
	metalGold := b.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))
	glass := b.AddMaterial(material.NewDielectric(1.5))
	light := b.AddMaterial(material.NewEmissive(core.NewVec3(15.0, 14.0, 13.0)))

	rng := numeric.NewRand(MaterialsNoiseSeed)
	marble := b.AddMaterial(material.NewTexturedLambertian(material.NewNoiseTexture(8, material.NewPerlin(&rng))))

	b.AddSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed)
	b.AddSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	b.AddSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	b.AddSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass)

	// Hollow glass sphere with a blue sphere inside
	b.AddSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass)
	b.AddSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, glass)
	b.AddSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue)

	b.AddSphere(core.NewVec3(0, 0.15, -0.35), 0.15, marble)

	// Large but finite ground quad
	addGroundQuad(b, core.NewVec3(0, 0, 0), 10000.0, lambertianGreen)

	b.AddSphere(core.NewVec3(30, 30.5, 15), 10, light)

	return b.Build()
}

// addGroundQuad adds a horizontal square centered at center with its normal pointing up.
// u × v = (size,0,0) × (0,0,size) points down, so the edges are given in the opposite order.
func addGroundQuad(b *Builder, center core.Vec3, size numeric.Real, mat int) {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	b.AddQuad(corner, u, v, mat)
}
