package scene

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/material"
)

// NewCornellScene creates the classic Cornell box: five quad walls, a ceiling light
// and two rotated blocks, against a black background
func NewCornellScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:        core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   1.0, // Square aspect ratio for Cornell box
		VFov:          40.0,
		Aperture:      0.0, // No depth of field for Cornell box
		FocusDistance: 0.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	b := NewBuilder()
	b.SetCamera(cameraConfig)
	b.SetBackground(core.Vec3{}) // All light comes from the ceiling
	b.SetSampling(SamplingConfig{
		Width:                     400,
		Height:                    400,
		SamplesPerPixel:           150,
		MaxDepth:                  40,
		RussianRouletteMinBounces: 4,
	})

	red := b.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05)))
	white := b.AddMaterial(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	green := b.AddMaterial(material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15)))
	light := b.AddMaterial(material.NewEmissive(core.NewVec3(15.0, 15.0, 15.0)))

	// Standard 555x555x555 box
	const boxSize = 555.0

	b.AddQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green) // right wall
	b.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red)         // left wall
	b.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)       // floor
	b.AddQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white) // ceiling
	b.AddQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white) // back wall

	// Ceiling light, slightly below the ceiling
	b.AddQuad(core.NewVec3(213, boxSize-1, 227), core.NewVec3(130, 0, 0), core.NewVec3(0, 0, 105), light)

	// Tall block rotated 15°
	verts, faces := boxMesh(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165))
	verts = rotateY(verts, core.Vec3{}, 15)
	b.AddMesh(translate(verts, core.NewVec3(265, 0, 295)), faces, white)

	// Short block rotated -18°
	verts, faces = boxMesh(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165))
	verts = rotateY(verts, core.Vec3{}, -18)
	b.AddMesh(translate(verts, core.NewVec3(130, 0, 65)), faces, white)

	return b.Build()
}

func translate(vertices []core.Vec3, offset core.Vec3) []core.Vec3 {
	for i := range vertices {
		vertices[i] = vertices[i].Add(offset)
	}
	return vertices
}
