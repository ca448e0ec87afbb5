package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/material"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

const tolerance = 1e-4

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
		want  error
	}{
		{
			name:  "empty scene",
			build: func(b *Builder) { b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))) },
			want:  ErrEmptyScene,
		},
		{
			name:  "unknown material",
			build: func(b *Builder) { b.AddSphere(core.NewVec3(0, 0, 0), 1, 3) },
			want:  ErrUnknownMaterial,
		},
		{
			name: "zero radius",
			build: func(b *Builder) {
				m := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
				b.AddSphere(core.NewVec3(0, 0, 0), 0, m)
			},
			want: ErrInvalidPrimitive,
		},
		{
			name: "non-finite center",
			build: func(b *Builder) {
				m := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
				b.AddSphere(core.NewVec3(numeric.Inf(1), 0, 0), 1, m)
			},
			want: ErrInvalidPrimitive,
		},
		{
			name: "non-finite triangle vertex",
			build: func(b *Builder) {
				m := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
				nan := numeric.Inf(1) - numeric.Inf(1)
				b.AddTriangle(core.NewVec3(0, 0, nan), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), m)
			},
			want: ErrInvalidPrimitive,
		},
		{
			name: "non-finite box corner",
			build: func(b *Builder) {
				m := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
				nan := numeric.Inf(1) - numeric.Inf(1)
				b.AddBox(core.NewVec3(nan, 0, 0), core.NewVec3(1, 1, 1), m)
			},
			want: ErrInvalidPrimitive,
		},
		{
			name: "infinite quad edge",
			build: func(b *Builder) {
				m := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
				b.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(numeric.Inf(1), 0, 0), core.NewVec3(0, 0, 1), m)
			},
			want: ErrInvalidPrimitive,
		},
		{
			name: "non-finite mesh vertex",
			build: func(b *Builder) {
				m := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
				b.AddMesh([]core.Vec3{{}, {X: 1}, {Y: numeric.Inf(-1)}}, []int{0, 1, 2}, m)
			},
			want: ErrInvalidPrimitive,
		},
		{
			name: "bad mesh indices",
			build: func(b *Builder) {
				m := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
				b.AddMesh([]core.Vec3{{}, {X: 1}, {Y: 1}}, []int{0, 1, 5}, m)
			},
			want: geometry.ErrInvalidMesh,
		},
		{
			name: "invalid material",
			build: func(b *Builder) {
				m := b.AddMaterial(material.NewDielectric(0))
				b.AddSphere(core.NewVec3(0, 0, 0), 1, m)
			},
			want: material.ErrInvalidMaterial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			tt.build(b)
			s, err := b.Build()
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, s)
		})
	}
}

func TestBuilder_FirstErrorSticks(t *testing.T) {
	b := NewBuilder()
	m := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	b.AddSphere(core.NewVec3(0, 0, 0), 0, m)
	b.AddMesh(nil, []int{0, 1}, m)
	b.AddSphere(core.NewVec3(0, 0, 0), 1, m)

	_, err := b.Build()
	assert.ErrorIs(t, err, ErrInvalidPrimitive)
	assert.NotErrorIs(t, err, geometry.ErrInvalidMesh)
}

func TestBuilder_CopiesMaterials(t *testing.T) {
	b := NewBuilder()
	m := b.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	b.AddSphere(core.NewVec3(0, 0, 0), 1, m)
	s, err := b.Build()
	require.NoError(t, err)

	b.AddMaterial(material.NewMetal(core.NewVec3(1, 1, 1), 0))
	assert.Len(t, s.Materials, 1)
	assert.Equal(t, 1, s.GetPrimitiveCount())
}

func TestDefaultScene(t *testing.T) {
	s, err := NewDefaultScene()
	require.NoError(t, err)

	assert.Equal(t, 2, s.GetPrimitiveCount())
	assert.Equal(t, core.NewVec3(0.7, 0.8, 1.0), s.Background)
	assert.Equal(t, core.NewVec3(0, 0, 0), s.CameraConfig.Center)
	assert.Equal(t, core.NewVec3(0, 0, -1), s.CameraConfig.LookAt)

	// Straight down the view axis lands on the front of the small sphere
	var rec core.HitRecord
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	require.True(t, s.Hit(ray, 0.001, numeric.Inf(1), &rec))
	assert.InDelta(t, 0.5, float64(rec.T), tolerance)
	assert.Equal(t, material.KindLambertian, s.Material(rec.Material).Kind)

	// Straight up escapes
	up := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	assert.False(t, s.Hit(up, 0.001, numeric.Inf(1), &rec))

	// Straight down hits the ground sphere just below y = -0.5
	down := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	require.True(t, s.Hit(down, 0.001, numeric.Inf(1), &rec))
	assert.InDelta(t, 0.505, float64(rec.T), 1e-3)
}

func TestDefaultScene_CameraOverride(t *testing.T) {
	s, err := NewDefaultScene(geometry.CameraConfig{VFov: 30})
	require.NoError(t, err)
	assert.Equal(t, numeric.Real(30), s.CameraConfig.VFov)
	assert.Equal(t, core.NewVec3(0, 0, -1), s.CameraConfig.LookAt)
}

func TestRegistry_AllScenesBuild(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := ByName(info.ID)
			require.NoError(t, err)
			assert.Positive(t, s.GetPrimitiveCount())
			assert.NoError(t, s.BVH.Validate())

			cfg := s.SamplingConfig
			assert.Positive(t, cfg.Width)
			assert.Positive(t, cfg.Height)
			assert.Positive(t, cfg.SamplesPerPixel)

			_, err = geometry.NewCamera(s.CameraConfig)
			assert.NoError(t, err, "scene camera must be valid")
		})
	}
}

func TestRegistry_Listing(t *testing.T) {
	ids := SceneIDs()
	assert.IsIncreasing(t, ids)
	assert.Contains(t, ids, "default")
	assert.Contains(t, ids, "cornell-box")
	assert.Len(t, ListScenes(), len(ids))
}

func TestRegistry_ByName(t *testing.T) {
	s, err := ByName("Default", geometry.CameraConfig{AspectRatio: 1})
	require.NoError(t, err)
	assert.Equal(t, numeric.Real(1), s.CameraConfig.AspectRatio)

	_, err = ByName("no-such-scene")
	assert.ErrorIs(t, err, ErrUnknownScene)
	assert.Contains(t, err.Error(), "cornell-box")
}

func TestRandomSpheresScene_Deterministic(t *testing.T) {
	a, err := NewRandomSpheresScene()
	require.NoError(t, err)
	b, err := NewRandomSpheresScene()
	require.NoError(t, err)

	assert.Equal(t, a.GetPrimitiveCount(), b.GetPrimitiveCount())
	assert.Equal(t, a.BVH.Prims, b.BVH.Prims)
	assert.Equal(t, a.Materials, b.Materials)
}

func TestCornellScene_Enclosed(t *testing.T) {
	s, err := NewCornellScene()
	require.NoError(t, err)
	assert.Equal(t, core.Vec3{}, s.Background)

	// 5 walls and a light as two triangles each, two 12-triangle blocks
	assert.Equal(t, 6*2+2*12, s.GetPrimitiveCount())

	// A ray from inside the box toward the ceiling hits either the light or the ceiling
	var rec core.HitRecord
	ray := core.NewRay(core.NewVec3(278, 500, 278), core.NewVec3(0, 1, 0))
	require.True(t, s.Hit(ray, 0.001, numeric.Inf(1), &rec))
	assert.Equal(t, material.KindEmissive, s.Material(rec.Material).Kind)
	assert.InDelta(t, 54, float64(rec.T), tolerance)
}

func TestRotateY(t *testing.T) {
	out := rotateY([]core.Vec3{core.NewVec3(2, 5, 0)}, core.NewVec3(1, 0, 0), 90)
	assert.InDelta(t, 1, float64(out[0].X), tolerance)
	assert.InDelta(t, 5, float64(out[0].Y), tolerance)
	assert.InDelta(t, -1, float64(out[0].Z), tolerance)
}

func TestIcosahedronMesh(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	verts, faces := icosahedronMesh(center, 0.8)
	require.Len(t, verts, 12)
	assert.Len(t, faces, 60)
	for _, v := range verts {
		assert.InDelta(t, 0.8, float64(v.Subtract(center).Length()), tolerance)
	}
}

func TestOklchToRGB_InGamut(t *testing.T) {
	for h := numeric.Real(0); h < 360; h += 30 {
		c := oklchToRGB(0.65, 0.25, h)
		for i := 0; i < 3; i++ {
			assert.GreaterOrEqual(t, float64(c.Axis(i)), 0.0)
			assert.LessOrEqual(t, float64(c.Axis(i)), 1.0)
		}
	}
	gray := oklchToRGB(0.5, 0, 0)
	assert.InDelta(t, float64(gray.X), float64(gray.Y), tolerance)
	assert.InDelta(t, float64(gray.Y), float64(gray.Z), tolerance)
}
