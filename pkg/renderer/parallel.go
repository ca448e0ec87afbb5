package renderer

import (
	"time"

	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/scene"
)

// ParallelScheduler distributes tiles over a worker pool. Every tile owns a
// generator seeded from the base seed and its index, and writes only its own cells.
type ParallelScheduler struct{}

// Name implements Scheduler
func (ParallelScheduler) Name() string { return "parallel" }

// Render implements Scheduler
func (ParallelScheduler) Render(s *scene.Scene, camera *geometry.Camera, frame *Frame, config Config) (RenderStats, error) {
	start := time.Now()
	tracer, grid, err := prepare(s, camera, frame, config)
	if err != nil {
		return RenderStats{}, err
	}

	tr := NewTileRenderer(camera, tracer, frame, config.SamplesPerPixel, false)
	pool := NewWorkerPool(tr, config.NumWorkers, grid.Len())
	pool.Start()

	for i := 0; i < grid.Len(); i++ {
		pool.SubmitTask(TileTask{Tile: grid.Tile(i), Seed: TileSeed(config.Seed, i)})
	}
	if err := pool.Stop(); err != nil {
		return RenderStats{}, err
	}

	var stats RenderStats
	for result := range pool.Results() {
		stats.Add(result.Stats)
	}
	stats.Duration = time.Since(start)
	return stats, nil
}
