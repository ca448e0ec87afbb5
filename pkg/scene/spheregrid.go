package scene

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/material"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h numeric.Real) core.Vec3 {
	hRad := numeric.Radians(h)

	// OKLCH -> OKLAB
	a := c * numeric.Cos(hRad)
	b := c * numeric.Sin(hRad)

	// OKLAB -> LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS -> linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a scene with a 20x20 grid of metallic spheres
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(4.5, 6, 18),    // Position camera farther back and slightly lower
		LookAt:        core.NewVec3(4.5, 0.8, 4.5), // Look at center of grid, slightly lower
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.02, // Small depth of field for some focus variation
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
		Width:                     800,
		Height:                    450,
		SamplesPerPixel:           100,
		MaxDepth:                  40,
		RussianRouletteMinBounces: 12, // Moderate bounces for metallic reflections
	})

	// Sun-like light high and to the side
	sun := b.AddMaterial(material.NewEmissive(core.NewVec3(12.0, 11.5, 10.0)))
	b.AddSphere(core.NewVec3(20, 25, 20), 8, sun)

	ground := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	addGroundQuad(b, core.NewVec3(4.5, 0, 4.5), 1000, ground)

	gridSize := 20

	// Fit the grid into a roughly 9x9 area
	targetArea := numeric.Real(9.0)
	spacing := targetArea / numeric.Real(gridSize-1)
	sphereRadius := numeric.Clamp(spacing*0.35, 0.02, 0.35)

	baseLightness := numeric.Real(0.65)
	minChroma := numeric.Real(0.05)
	maxChroma := numeric.Real(0.25)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := numeric.Real(i)*spacing - targetArea/2.0 + 4.5
			z := numeric.Real(j)*spacing - targetArea/2.0 + 4.5

			// Hue varies across X, chroma across Z
			hue := (numeric.Real(i) / numeric.Real(gridSize-1)) * 360.0
			chroma := minChroma + (numeric.Real(j)/numeric.Real(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*numeric.Sin(numeric.Real(i+j)*0.5)

			roughness := 0.05 + 0.1*numeric.Real((i+j)%3)/2.0
			metal := b.AddMaterial(material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness))

			b.AddSphere(core.NewVec3(x, sphereRadius, z), sphereRadius, metal)
		}
	}

	return b.Build()
}
