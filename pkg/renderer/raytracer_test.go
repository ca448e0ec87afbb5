package renderer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/scene"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestRaytracer_Render(t *testing.T) {
	s, err := scene.NewDefaultScene()
	require.NoError(t, err)

	config := testConfig()
	logger := &recordingLogger{}
	rt, err := NewRaytracer(s, config, logger)
	require.NoError(t, err)

	frame, stats, err := rt.Render()
	require.NoError(t, err)
	assert.Equal(t, config.Width, frame.Width())
	assert.Equal(t, config.Height, frame.Height())
	assert.Equal(t, config.Width*config.Height*config.SamplesPerPixel, stats.TotalSamples)

	require.Len(t, logger.lines, 2)
	assert.Contains(t, logger.lines[0], "24x14")
	assert.Contains(t, logger.lines[1], "Render completed")
}

func TestRaytracer_SchedulersAgree(t *testing.T) {
	s, err := scene.NewMaterialsScene()
	require.NoError(t, err)
	config := testConfig()

	rt, err := NewRaytracer(s, config, nil)
	require.NoError(t, err)

	rt.SetScheduler(SequentialScheduler{})
	seq, _, err := rt.Render()
	require.NoError(t, err)

	rt.SetScheduler(ParallelScheduler{})
	par, _, err := rt.Render()
	require.NoError(t, err)

	assert.Equal(t, seq.Cells(), par.Cells())
}

func TestRaytracer_Camera(t *testing.T) {
	s, err := scene.NewDefaultScene()
	require.NoError(t, err)
	config := testConfig()
	rt, err := NewRaytracer(s, config, nil)
	require.NoError(t, err)

	camera := rt.Camera()
	require.NotNil(t, camera)
	want := s.CameraConfig.LookAt.Subtract(s.CameraConfig.Center).Normalize()
	forward := camera.Forward()
	assert.InDelta(t, float64(want.X), float64(forward.X), 1e-5)
	assert.InDelta(t, float64(want.Y), float64(forward.Y), 1e-5)
	assert.InDelta(t, float64(want.Z), float64(forward.Z), 1e-5)

	// Driving a scheduler directly with the raytracer's camera reproduces Render
	rt.SetScheduler(SequentialScheduler{})
	viaRaytracer, _, err := rt.Render()
	require.NoError(t, err)
	direct, _ := render(t, SequentialScheduler{}, s, camera, config)
	assert.Equal(t, viaRaytracer.Cells(), direct.Cells())
}

func TestRaytracer_RenderInto(t *testing.T) {
	s, err := scene.NewDefaultScene()
	require.NoError(t, err)
	config := testConfig()
	rt, err := NewRaytracer(s, config, core.NopLogger{})
	require.NoError(t, err)

	cells := make([]Cell, config.Width*config.Height)
	frame, err := NewFrameFromCells(config.Width, config.Height, cells)
	require.NoError(t, err)
	_, err = rt.RenderInto(frame)
	require.NoError(t, err)
	assert.Equal(t, uint32(config.SamplesPerPixel), cells[0].Samples)

	_, err = rt.RenderInto(NewFrame(1, 1))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewRaytracer_Errors(t *testing.T) {
	s, err := scene.NewDefaultScene()
	require.NoError(t, err)

	_, err = NewRaytracer(nil, testConfig(), nil)
	assert.ErrorIs(t, err, scene.ErrEmptyScene)

	bad := testConfig()
	bad.Width = 0
	_, err = NewRaytracer(s, bad, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	// Looking straight up with an up vector along the view direction
	s.CameraConfig.LookAt = core.NewVec3(0, 5, 0)
	_, err = NewRaytracer(s, testConfig(), nil)
	assert.ErrorIs(t, err, geometry.ErrDegenerateCamera)
}
