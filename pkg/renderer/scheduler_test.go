package renderer

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/integrator"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
	"github.com/df07/go-portable-raytracer/pkg/scene"
)

func testConfig() Config {
	c := DefaultConfig()
	c.Width = 24
	c.Height = 14
	c.SamplesPerPixel = 4
	c.MaxDepth = 8
	c.RussianRouletteMinBounces = 3
	c.TileSize = 5
	c.NumWorkers = 4
	c.Seed = 1234
	return c
}

func testSetup(t *testing.T, id string, config Config) (*scene.Scene, *geometry.Camera) {
	t.Helper()
	s, err := scene.ByName(id)
	require.NoError(t, err)
	cameraConfig := s.CameraConfig
	cameraConfig.AspectRatio = numeric.Real(config.Width) / numeric.Real(config.Height)
	camera, err := geometry.NewCamera(cameraConfig)
	require.NoError(t, err)
	return s, camera
}

func render(t *testing.T, scheduler Scheduler, s *scene.Scene, camera *geometry.Camera, config Config) (*Frame, RenderStats) {
	t.Helper()
	frame := NewFrame(config.Width, config.Height)
	stats, err := scheduler.Render(s, camera, frame, config)
	require.NoError(t, err)
	return frame, stats
}

func TestSequential_Deterministic(t *testing.T) {
	config := testConfig()
	s, camera := testSetup(t, "materials", config)

	a, _ := render(t, SequentialScheduler{}, s, camera, config)
	b, _ := render(t, SequentialScheduler{}, s, camera, config)
	assert.Equal(t, a.Cells(), b.Cells())

	config.Seed++
	c, _ := render(t, SequentialScheduler{}, s, camera, config)
	assert.NotEqual(t, a.Cells(), c.Cells(), "a different seed gives a different image")
}

func TestParallel_MatchesSequential(t *testing.T) {
	for _, id := range []string{"default", "random-spheres", "cornell-box"} {
		t.Run(id, func(t *testing.T) {
			config := testConfig()
			s, camera := testSetup(t, id, config)

			seq, seqStats := render(t, SequentialScheduler{}, s, camera, config)
			par, parStats := render(t, ParallelScheduler{}, s, camera, config)

			// Tiles own their generators, so scheduling order does not matter
			assert.Equal(t, seq.Cells(), par.Cells())
			assert.Equal(t, seqStats.TotalSamples, parStats.TotalSamples)
			assert.Equal(t, seqStats.Tiles, parStats.Tiles)
		})
	}
}

func TestParallel_WorkerCountDoesNotMatter(t *testing.T) {
	config := testConfig()
	s, camera := testSetup(t, "materials", config)

	config.NumWorkers = 1
	one, _ := render(t, ParallelScheduler{}, s, camera, config)
	config.NumWorkers = 7
	seven, _ := render(t, ParallelScheduler{}, s, camera, config)
	assert.Equal(t, one.Cells(), seven.Cells())
}

func TestScheduler_EverySampleTaken(t *testing.T) {
	config := testConfig()
	s, camera := testSetup(t, "default", config)

	for _, scheduler := range []Scheduler{SequentialScheduler{}, ParallelScheduler{}} {
		t.Run(scheduler.Name(), func(t *testing.T) {
			frame, stats := render(t, scheduler, s, camera, config)
			for y := 0; y < config.Height; y++ {
				for x := 0; x < config.Width; x++ {
					require.Equal(t, config.SamplesPerPixel, frame.Samples(x, y), "pixel %d,%d", x, y)
				}
			}
			assert.Equal(t, config.Width*config.Height, stats.TotalPixels)
			assert.Equal(t, config.Width*config.Height*config.SamplesPerPixel, stats.TotalSamples)
			assert.Equal(t, NewTileGrid(config.Width, config.Height, config.TileSize).Len(), stats.Tiles)
		})
	}
}

func TestScheduler_TwoSphereScene(t *testing.T) {
	config := testConfig()
	config.Width, config.Height = 32, 18
	config.SamplesPerPixel = 1
	config.MaxDepth = 1
	config.RussianRouletteMinBounces = 0
	s, camera := testSetup(t, "default", config)

	for _, scheduler := range []Scheduler{SequentialScheduler{}, ParallelScheduler{}} {
		t.Run(scheduler.Name(), func(t *testing.T) {
			frame, _ := render(t, scheduler, s, camera, config)

			assert.NotEqual(t, s.Background, frame.Color(16, 9), "center pixel sees the small sphere")
			assert.Equal(t, s.Background, frame.Color(0, 0), "top-left pixel sees only sky")
			assert.Equal(t, s.Background, frame.Color(config.Width-1, 0), "top-right pixel sees only sky")
		})
	}
}

func TestScheduler_Errors(t *testing.T) {
	config := testConfig()
	s, camera := testSetup(t, "default", config)

	tests := []struct {
		name   string
		camera *geometry.Camera
		frame  *Frame
		modify func(c *Config)
		want   error
	}{
		{"invalid config", camera, NewFrame(config.Width, config.Height), func(c *Config) { c.SamplesPerPixel = 0 }, ErrInvalidConfig},
		{"frame mismatch", camera, NewFrame(config.Width+1, config.Height), func(c *Config) {}, ErrInvalidConfig},
		{"nil frame", camera, nil, func(c *Config) {}, ErrInvalidConfig},
		{"nil camera", nil, NewFrame(config.Width, config.Height), func(c *Config) {}, ErrInvalidConfig},
	}

	for _, scheduler := range []Scheduler{SequentialScheduler{}, ParallelScheduler{}} {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/%s", scheduler.Name(), tt.name), func(t *testing.T) {
				c := config
				tt.modify(&c)
				_, err := scheduler.Render(s, tt.camera, tt.frame, c)
				assert.ErrorIs(t, err, tt.want)
				if tt.frame != nil {
					assert.Zero(t, tt.frame.Samples(0, 0), "nothing is rendered after a construction error")
				}
			})
		}

		t.Run(scheduler.Name()+"/nil scene", func(t *testing.T) {
			_, err := scheduler.Render(nil, camera, NewFrame(config.Width, config.Height), config)
			assert.ErrorIs(t, err, scene.ErrEmptyScene)
		})
	}
}

func TestTileRenderer_WritesOnlyItsTile(t *testing.T) {
	config := testConfig()
	s, camera := testSetup(t, "default", config)
	tracer, err := integrator.NewPathTracer(s, config.IntegratorConfig())
	require.NoError(t, err)

	frame := NewFrame(config.Width, config.Height)
	tr := NewTileRenderer(camera, tracer, frame, 2, true)
	grid := NewTileGrid(config.Width, config.Height, config.TileSize)
	tile := grid.Tile(3)

	rng := numeric.NewRand(9)
	stats := tr.RenderTile(tile, &rng)
	assert.Equal(t, tile.Bounds.Dx()*tile.Bounds.Dy(), stats.TotalPixels)

	for y := 0; y < config.Height; y++ {
		for x := 0; x < config.Width; x++ {
			want := 0
			if (image.Point{X: x, Y: y}).In(tile.Bounds) {
				want = 2
			}
			require.Equal(t, want, frame.Samples(x, y), "pixel %d,%d", x, y)
		}
	}
}
