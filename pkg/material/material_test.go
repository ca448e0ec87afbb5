package material

import (
	"testing"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func upHit() *core.HitRecord {
	return &core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1,
		FrontFace: true,
	}
}

func inUnitRange(c core.Vec3) bool {
	for i := 0; i < 3; i++ {
		if v := c.Axis(i); v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func TestScatter_AttenuationBounds(t *testing.T) {
	materials := map[string]Material{
		"lambertian":           NewLambertian(core.NewVec3(0.8, 0.3, 0.1)),
		"lambertian too bright": NewLambertian(core.NewVec3(1.5, -0.2, 2)),
		"checker":              NewTexturedLambertian(NewCheckerTexture(10, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(3, 3, 3))),
		"metal":                NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.3),
		"metal too bright":     NewMetal(core.NewVec3(4, 4, 4), 0),
	}

	for name, m := range materials {
		t.Run(name, func(t *testing.T) {
			rng := numeric.NewRand(21)
			for i := 0; i < 500; i++ {
				// Vary the incoming direction and the hit point
				dir := core.RandomUnitVector(&rng)
				if dir.Y > 0 {
					dir.Y = -dir.Y
				}
				hit := upHit()
				hit.Point = core.RandomInUnitSphere(&rng).Multiply(5)
				result, ok := m.Scatter(core.NewRay(core.NewVec3(0, 1, 0), dir), hit, &rng)
				if ok && !inUnitRange(result.Attenuation) {
					t.Fatalf("attenuation %v outside [0,1]", result.Attenuation)
				}
			}
		})
	}
}

func TestLambertian_Scatter(t *testing.T) {
	m := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	rng := numeric.NewRand(1)
	ray := core.NewRayAtTime(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1), 0.4)

	for i := 0; i < 200; i++ {
		result, ok := m.Scatter(ray, upHit(), &rng)
		require.True(t, ok, "lambertian always scatters")
		assert.GreaterOrEqual(t, float64(result.Scattered.Direction.Dot(core.NewVec3(0, 1, 0))), 0.0)
		assert.False(t, result.Scattered.Direction.NearZero())
		assert.Equal(t, numeric.Real(0.4), result.Scattered.Time, "scattered rays keep the incoming time")
		assert.Equal(t, core.NewVec3(0.5, 0.5, 0.5), result.Attenuation)
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	m := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0)
	rng := numeric.NewRand(1)
	untouched := numeric.NewRand(1)

	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	result, ok := m.Scatter(ray, upHit(), &rng)
	require.True(t, ok)

	expected := core.NewVec3(1, 1, 0).Normalize()
	assert.InDelta(t, 0, float64(result.Scattered.Direction.Subtract(expected).Length()), tolerance)
	assert.Equal(t, untouched.Float(), rng.Float(), "a perfect mirror draws no random numbers")
}

func TestMetal_FuzzClamp(t *testing.T) {
	assert.Equal(t, numeric.Real(1), NewMetal(core.Vec3{}, 3).Fuzz)
	assert.Equal(t, numeric.Real(0), NewMetal(core.Vec3{}, -1).Fuzz)
	assert.Equal(t, numeric.Real(0.5), NewMetal(core.Vec3{}, 0.5).Fuzz)
}

func TestMetal_GrazingFuzzAbsorbs(t *testing.T) {
	m := NewMetal(core.NewVec3(1, 1, 1), 1)
	rng := numeric.NewRand(2)

	// A nearly grazing ray reflects just above the surface; full fuzz pushes some
	// perturbed directions below it, and those must be absorbed
	ray := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	absorbed := 0
	for i := 0; i < 500; i++ {
		result, ok := m.Scatter(ray, upHit(), &rng)
		if !ok {
			absorbed++
			continue
		}
		require.Greater(t, float64(result.Scattered.Direction.Dot(core.NewVec3(0, 1, 0))), 0.0)
	}
	assert.Greater(t, absorbed, 0)
}

func TestDielectric_AttenuationIsExactlyOne(t *testing.T) {
	glass := NewDielectric(1.5)
	rng := numeric.NewRand(42)

	for i := 0; i < 500; i++ {
		dir := core.RandomUnitVector(&rng)
		hit := upHit()
		// Half the hits come from inside the glass
		hit.FrontFace = i%2 == 0
		if dir.Dot(hit.Normal) > 0 {
			dir = dir.Negate()
		}
		result, ok := glass.Scatter(core.NewRay(core.Vec3{}, dir), hit, &rng)
		require.True(t, ok, "dielectric always scatters")
		require.Equal(t, core.NewVec3(1, 1, 1), result.Attenuation)
		require.True(t, result.Scattered.Direction.IsFinite())
	}
}

func TestDielectric_ReflectAndRefract(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize())

	hasReflection, hasRefraction := false, false
	rng := numeric.NewRand(7)
	for i := 0; i < 2000; i++ {
		result, _ := glass.Scatter(ray, upHit(), &rng)
		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
			// Entering glass bends towards the normal
			assert.Less(t, float64(result.Scattered.Direction.Y), -0.7072)
		}
	}
	assert.True(t, hasReflection, "Schlick reflectance at 45 degrees is about 5%")
	assert.True(t, hasRefraction)
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	rng := numeric.NewRand(3)

	// Leaving glass at 60 degrees from the normal exceeds the ~41.8 degree critical angle
	hit := upHit()
	hit.FrontFace = false
	dir := core.NewVec3(numeric.Sin(numeric.Radians(60)), -numeric.Cos(numeric.Radians(60)), 0)

	for i := 0; i < 50; i++ {
		result, ok := glass.Scatter(core.NewRay(core.Vec3{}, dir), hit, &rng)
		require.True(t, ok)
		assert.Greater(t, float64(result.Scattered.Direction.Y), 0.0, "must reflect")
	}
}

func TestReflectance(t *testing.T) {
	// Normal incidence into glass: ((1-1.5)/(1+1.5))^2 = 0.04
	assert.InDelta(t, 0.04, float64(Reflectance(1, 1/1.5)), tolerance)
	// Grazing incidence reflects everything
	assert.InDelta(t, 1, float64(Reflectance(0, 1/1.5)), tolerance)
}

func TestEmissive(t *testing.T) {
	light := NewEmissive(core.NewVec3(4, 4, 4))
	rng := numeric.NewRand(1)

	_, ok := light.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), upHit(), &rng)
	assert.False(t, ok, "emissive materials never scatter")
	assert.Equal(t, core.NewVec3(4, 4, 4), light.Emitted(upHit()))

	diffuse := NewLambertian(core.NewVec3(1, 1, 1))
	assert.Equal(t, core.Vec3{}, diffuse.Emitted(upHit()))
}

func TestMaterial_Validate(t *testing.T) {
	inf := numeric.Inf(1)
	tests := []struct {
		name    string
		m       Material
		wantErr bool
	}{
		{"lambertian", NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), false},
		{"metal", NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0.1), false},
		{"glass", NewDielectric(1.5), false},
		{"light", NewEmissive(core.NewVec3(10, 10, 10)), false},
		{"zero refractive index", NewDielectric(0), true},
		{"negative refractive index", NewDielectric(-1.5), true},
		{"infinite albedo", NewLambertian(core.NewVec3(inf, 0, 0)), true},
		{"infinite emission", NewEmissive(core.NewVec3(0, inf, 0)), true},
		{"unknown kind", Material{Kind: Kind(99)}, true},
		{"marble", NewTexturedLambertian(NewNoiseTexture(4, newTestPerlin(1))), false},
		{"metal fuzz above one", Material{Kind: KindMetal, Albedo: NewSolidColor(core.NewVec3(0.5, 0.5, 0.5)), Fuzz: 50}, true},
		{"negative metal fuzz", Material{Kind: KindMetal, Albedo: NewSolidColor(core.NewVec3(0.5, 0.5, 0.5)), Fuzz: -0.1}, true},
		{"non-finite metal fuzz", Material{Kind: KindMetal, Albedo: NewSolidColor(core.NewVec3(0.5, 0.5, 0.5)), Fuzz: inf - inf}, true},
		{"unclamped fuzz on lambertian is ignored", Material{Kind: KindLambertian, Albedo: NewSolidColor(core.NewVec3(0.5, 0.5, 0.5)), Fuzz: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMaterial)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "lambertian", KindLambertian.String())
	assert.Equal(t, "metal", KindMetal.String())
	assert.Equal(t, "dielectric", KindDielectric.String())
	assert.Equal(t, "emissive", KindEmissive.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
