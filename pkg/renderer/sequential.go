package renderer

import (
	"time"

	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
	"github.com/df07/go-portable-raytracer/pkg/scene"
)

// SequentialScheduler renders tiles one after another on the calling goroutine with
// a single generator reseeded per tile and the explicit-stack integrator. The pixel
// loop allocates nothing.
type SequentialScheduler struct{}

// Name implements Scheduler
func (SequentialScheduler) Name() string { return "sequential" }

// Render implements Scheduler
func (SequentialScheduler) Render(s *scene.Scene, camera *geometry.Camera, frame *Frame, config Config) (RenderStats, error) {
	start := time.Now()
	tracer, grid, err := prepare(s, camera, frame, config)
	if err != nil {
		return RenderStats{}, err
	}

	tr := NewTileRenderer(camera, tracer, frame, config.SamplesPerPixel, true)

	var stats RenderStats
	var rng numeric.Rand
	for i := 0; i < grid.Len(); i++ {
		rng.Seed(TileSeed(config.Seed, i))
		stats.Add(tr.RenderTile(grid.Tile(i), &rng))
	}
	stats.Duration = time.Since(start)
	return stats, nil
}
