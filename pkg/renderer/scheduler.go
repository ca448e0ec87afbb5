package renderer

import (
	"fmt"

	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/integrator"
	"github.com/df07/go-portable-raytracer/pkg/scene"
)

// Scheduler drives every pixel and sample of a render through the integrator
type Scheduler interface {
	// Render fills frame. Configuration problems are reported before any pixel is traced.
	Render(s *scene.Scene, camera *geometry.Camera, frame *Frame, config Config) (RenderStats, error)
	// Name identifies the strategy in logs
	Name() string
}

// prepare validates a render request and builds the shared path tracer
func prepare(s *scene.Scene, camera *geometry.Camera, frame *Frame, config Config) (*integrator.PathTracer, TileGrid, error) {
	if err := config.Validate(); err != nil {
		return nil, TileGrid{}, err
	}
	if camera == nil {
		return nil, TileGrid{}, fmt.Errorf("%w: no camera", ErrInvalidConfig)
	}
	if frame == nil || frame.Width() != config.Width || frame.Height() != config.Height {
		return nil, TileGrid{}, fmt.Errorf("%w: frame does not match %dx%d", ErrInvalidConfig, config.Width, config.Height)
	}
	tracer, err := integrator.NewPathTracer(s, config.IntegratorConfig())
	if err != nil {
		return nil, TileGrid{}, err
	}
	return tracer, NewTileGrid(config.Width, config.Height, config.TileSize), nil
}
