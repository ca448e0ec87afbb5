package scene

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/material"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// NewTriangleMeshScene creates a scene showcasing indexed triangle meshes next to an
// axis-aligned box pedestal
func NewTriangleMeshScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(0, 2, 6), // Position camera to see the meshes
		LookAt:        core.NewVec3(0, 1, 0), // Look at the center of the scene
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          45.0,
		Aperture:      0.02, // Slight depth of field
		FocusDistance: 0.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	b := NewBuilder()
	b.SetCamera(cameraConfig)
	b.SetBackground(SkyBackground)
	b.SetSampling(SamplingConfig{
		Width:                     600,
		Height:                    338,
		SamplesPerPixel:           150,
		MaxDepth:                  40,
		RussianRouletteMinBounces: 10,
	})

	// Warm key light and a cool fill light
	key := b.AddMaterial(material.NewEmissive(core.NewVec3(12.0, 11.0, 10.0)))
	fill := b.AddMaterial(material.NewEmissive(core.NewVec3(6.0, 7.0, 8.0)))
	b.AddSphere(core.NewVec3(2, 6, 3), 1.5, key)
	b.AddSphere(core.NewVec3(-3, 4, 2), 0.8, fill)

	ground := b.AddMaterial(material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7)))
	addGroundQuad(b, core.NewVec3(0, 0, 0), 1000, ground)

	redMetal := b.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.2, 0.2), 0.1))
	blueLambertian := b.AddMaterial(material.NewLambertian(core.NewVec3(0.2, 0.3, 0.8)))
	goldMetal := b.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.05))
	stone := b.AddMaterial(material.NewLambertian(core.NewVec3(0.45, 0.42, 0.4)))

	// Box rotated 30° to show multiple faces
	verts, faces := boxMesh(core.NewVec3(-2.5, 0, -0.5), core.NewVec3(-1.5, 1, 0.5))
	b.AddMesh(rotateY(verts, core.NewVec3(-2, 0.5, 0), 30), faces, redMetal)

	// Pyramid on a low axis-aligned pedestal
	b.AddBox(core.NewVec3(-0.9, 0, -0.9), core.NewVec3(0.9, 0.2, 0.9), stone)
	verts, faces = pyramidMesh(core.NewVec3(0, 1.2, 0), 1.5, 2.0)
	b.AddMesh(rotateY(verts, core.NewVec3(0, 1.2, 0), 45), faces, blueLambertian)

	verts, faces = icosahedronMesh(core.NewVec3(2, 0.8, 0), 0.8)
	b.AddMesh(rotateY(verts, core.NewVec3(2, 0.8, 0), 60), faces, goldMetal)

	return b.Build()
}

// rotateY rotates vertices around a vertical axis through pivot
func rotateY(vertices []core.Vec3, pivot core.Vec3, degrees numeric.Real) []core.Vec3 {
	theta := numeric.Radians(degrees)
	sinT, cosT := numeric.Sin(theta), numeric.Cos(theta)

	rotated := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		p := v.Subtract(pivot)
		rotated[i] = core.NewVec3(
			cosT*p.X+sinT*p.Z,
			p.Y,
			-sinT*p.X+cosT*p.Z,
		).Add(pivot)
	}
	return rotated
}

// boxMesh returns the 8 corners and 12 triangles of the box spanning min and max
func boxMesh(min, max core.Vec3) ([]core.Vec3, []int) {
	vertices := []core.Vec3{
		core.NewVec3(min.X, min.Y, min.Z), // 0: left-bottom-back
		core.NewVec3(max.X, min.Y, min.Z), // 1: right-bottom-back
		core.NewVec3(max.X, max.Y, min.Z), // 2: right-top-back
		core.NewVec3(min.X, max.Y, min.Z), // 3: left-top-back
		core.NewVec3(min.X, min.Y, max.Z), // 4: left-bottom-front
		core.NewVec3(max.X, min.Y, max.Z), // 5: right-bottom-front
		core.NewVec3(max.X, max.Y, max.Z), // 6: right-top-front
		core.NewVec3(min.X, max.Y, max.Z), // 7: left-top-front
	}

	faces := []int{
		0, 1, 2, 0, 2, 3, // back (Z-)
		4, 6, 5, 4, 7, 6, // front (Z+)
		0, 3, 7, 0, 7, 4, // left (X-)
		1, 5, 6, 1, 6, 2, // right (X+)
		0, 4, 5, 0, 5, 1, // bottom (Y-)
		3, 2, 6, 3, 6, 7, // top (Y+)
	}
	return vertices, faces
}

// pyramidMesh returns a square pyramid centered at center
func pyramidMesh(center core.Vec3, baseSize, height numeric.Real) ([]core.Vec3, []int) {
	halfBase := baseSize * 0.5
	halfHeight := height * 0.5

	vertices := []core.Vec3{
		center.Add(core.NewVec3(-halfBase, -halfHeight, -halfBase)), // 0: left-back
		center.Add(core.NewVec3(+halfBase, -halfHeight, -halfBase)), // 1: right-back
		center.Add(core.NewVec3(+halfBase, -halfHeight, +halfBase)), // 2: right-front
		center.Add(core.NewVec3(-halfBase, -halfHeight, +halfBase)), // 3: left-front
		center.Add(core.NewVec3(0, +halfHeight, 0)),                 // 4: apex
	}

	faces := []int{
		0, 2, 1, 0, 3, 2, // base
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
		3, 0, 4,
	}
	return vertices, faces
}

// icosahedronMesh returns a regular icosahedron whose vertices lie at radius from center
func icosahedronMesh(center core.Vec3, radius numeric.Real) ([]core.Vec3, []int) {
	phi := (1 + numeric.Sqrt(5)) / 2
	scale := radius / numeric.Sqrt(1+phi*phi)

	corners := []core.Vec3{
		core.NewVec3(-1, phi, 0), core.NewVec3(1, phi, 0),
		core.NewVec3(-1, -phi, 0), core.NewVec3(1, -phi, 0),
		core.NewVec3(0, -1, phi), core.NewVec3(0, 1, phi),
		core.NewVec3(0, -1, -phi), core.NewVec3(0, 1, -phi),
		core.NewVec3(phi, 0, -1), core.NewVec3(phi, 0, 1),
		core.NewVec3(-phi, 0, -1), core.NewVec3(-phi, 0, 1),
	}
	vertices := make([]core.Vec3, len(corners))
	for i, c := range corners {
		vertices[i] = center.Add(c.Multiply(scale))
	}

	faces := []int{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}
	return vertices, faces
}
