package geometry

import (
	"testing"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2,
	}
}

func TestCamera_GetRay(t *testing.T) {
	camera, err := NewCamera(defaultTestCameraConfig())
	require.NoError(t, err)

	rng := numeric.NewRand(1)

	center := camera.GetRay(0.5, 0.5, &rng)
	assert.Equal(t, core.NewVec3(0, 0, 0), center.Origin)
	assert.InDelta(t, 0, float64(center.Direction.Normalize().Subtract(core.NewVec3(0, 0, -1)).Length()), tolerance)

	// vfov 90 at focus distance 1 gives a viewport 2 high and 4 wide
	lowerLeft := camera.GetRay(0, 0, &rng)
	assert.InDelta(t, 0, float64(lowerLeft.Direction.Subtract(core.NewVec3(-2, -1, -1)).Length()), tolerance)

	upperRight := camera.GetRay(1, 1, &rng)
	assert.InDelta(t, 0, float64(upperRight.Direction.Subtract(core.NewVec3(2, 1, -1)).Length()), tolerance)
}

func TestCamera_PinholeConsumesNoRandomness(t *testing.T) {
	camera, err := NewCamera(defaultTestCameraConfig())
	require.NoError(t, err)

	used := numeric.NewRand(42)
	untouched := numeric.NewRand(42)
	for i := 0; i < 10; i++ {
		camera.GetRay(0.3, 0.7, &used)
	}
	assert.Equal(t, untouched.Float(), used.Float())
}

func TestCamera_Basis(t *testing.T) {
	config := defaultTestCameraConfig()
	config.Center = core.NewVec3(3, 2, 1)
	config.LookAt = core.NewVec3(-1, 0.5, -2)
	config.Up = core.NewVec3(0.1, 1, 0)

	camera, err := NewCamera(config)
	require.NoError(t, err)
	u, v, w := camera.Basis()

	for _, axis := range []core.Vec3{u, v, w} {
		assert.InDelta(t, 1, float64(axis.Length()), tolerance)
	}
	assert.InDelta(t, 0, float64(u.Dot(v)), tolerance)
	assert.InDelta(t, 0, float64(v.Dot(w)), tolerance)
	assert.InDelta(t, 0, float64(u.Dot(w)), tolerance)

	forward := config.LookAt.Subtract(config.Center).Normalize()
	assert.InDelta(t, 0, float64(camera.Forward().Subtract(forward).Length()), tolerance)
}

func TestCamera_DepthOfField(t *testing.T) {
	config := defaultTestCameraConfig()
	config.Aperture = 0.5
	config.FocusDistance = 4

	camera, err := NewCamera(config)
	require.NoError(t, err)
	assert.Equal(t, numeric.Real(0.25), camera.LensRadius())

	rng := numeric.NewRand(3)
	focus := core.NewVec3(0, 0, -4)
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, &rng)
		// Origins stay on the lens disk and every ray passes through the focus point
		assert.LessOrEqual(t, float64(ray.Origin.Length()), 0.25+tolerance)
		assert.InDelta(t, 0, float64(ray.Origin.Z), tolerance)
		assert.InDelta(t, 0, float64(ray.At(1).Subtract(focus).Length()), tolerance)
	}
}

func TestCamera_Shutter(t *testing.T) {
	config := defaultTestCameraConfig()
	config.ShutterOpen = 0.25
	config.ShutterClose = 0.75

	camera, err := NewCamera(config)
	require.NoError(t, err)

	rng := numeric.NewRand(4)
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, &rng)
		assert.GreaterOrEqual(t, float64(ray.Time), 0.25)
		assert.Less(t, float64(ray.Time), 0.75)
	}
}

func TestNewCamera_Errors(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*CameraConfig)
		expected error
	}{
		{"up parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }, ErrDegenerateCamera},
		{"up anti-parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, -3) }, ErrDegenerateCamera},
		{"zero up", func(c *CameraConfig) { c.Up = core.Vec3{} }, ErrDegenerateCamera},
		{"center equals look-at", func(c *CameraConfig) { c.LookAt = c.Center }, ErrDegenerateCamera},
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }, ErrInvalidCamera},
		{"fov of 180", func(c *CameraConfig) { c.VFov = 180 }, ErrInvalidCamera},
		{"negative aperture", func(c *CameraConfig) { c.Aperture = -1 }, ErrInvalidCamera},
		{"zero aspect", func(c *CameraConfig) { c.AspectRatio = 0 }, ErrInvalidCamera},
		{"negative focus distance", func(c *CameraConfig) { c.FocusDistance = -2 }, ErrInvalidCamera},
		{"shutter closes first", func(c *CameraConfig) { c.ShutterOpen, c.ShutterClose = 1, 0.5 }, ErrInvalidCamera},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaultTestCameraConfig()
			tt.modify(&config)
			camera, err := NewCamera(config)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, camera)
		})
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := defaultTestCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{VFov: 30, Aperture: 0.1})

	assert.Equal(t, numeric.Real(30), merged.VFov)
	assert.Equal(t, numeric.Real(0.1), merged.Aperture)
	assert.Equal(t, base.Center, merged.Center)
	assert.Equal(t, base.AspectRatio, merged.AspectRatio)
}
