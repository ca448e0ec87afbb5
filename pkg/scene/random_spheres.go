package scene

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/material"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// RandomSpheresSeed fixes the layout of the random spheres scene
const RandomSpheresSeed = 1

// NewRandomSpheresScene creates the classic field of small bouncing spheres around
// three large ones on a checkered ground. Small spheres move upward during the
// shutter interval, so the scene exercises motion blur and depth of field.
func NewRandomSpheresScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
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
		SamplesPerPixel:           100,
		MaxDepth:                  50,
		RussianRouletteMinBounces: 8,
	})

	checker := material.NewCheckerTexture(10, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := b.AddMaterial(material.NewTexturedLambertian(checker))
	b.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)

	rng := numeric.NewRand(RandomSpheresSeed)
	glass := b.AddMaterial(material.NewDielectric(1.5))
	avoid := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for c := -11; c < 11; c++ {
			chooseMat := rng.Float()
			center := core.NewVec3(numeric.Real(a)+0.9*rng.Float(), 0.2, numeric.Real(c)+0.9*rng.Float())
			if center.Subtract(avoid).Length() <= 0.9 {
				continue
			}

			var mat int
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(&rng).MultiplyVec(randomColor(&rng))
				mat = b.AddMaterial(material.NewLambertian(albedo))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					core.RandomInRange(&rng, 0.5, 1),
					core.RandomInRange(&rng, 0.5, 1),
					core.RandomInRange(&rng, 0.5, 1),
				)
				mat = b.AddMaterial(material.NewMetal(albedo, core.RandomInRange(&rng, 0, 0.5)))
			default:
				mat = glass
			}

			center1 := center.Add(core.NewVec3(0, core.RandomInRange(&rng, 0, 0.5), 0))
			b.AddMovingSphere(center, center1, 0, 1, 0.2, mat)
		}
	}

	brown := b.AddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	bronze := b.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	b.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	b.AddSphere(core.NewVec3(0, 1, 0), -0.95, glass)
	b.AddSphere(core.NewVec3(-4, 1, 0), 1.0, brown)
	b.AddSphere(core.NewVec3(4, 1, 0), 1.0, bronze)

	return b.Build()
}

func randomColor(rng *numeric.Rand) core.Vec3 {
	return core.NewVec3(rng.Float(), rng.Float(), rng.Float())
}
