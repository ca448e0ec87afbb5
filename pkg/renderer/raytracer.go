package renderer

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
	"github.com/df07/go-portable-raytracer/pkg/scene"
)

// Raytracer ties a scene, its camera and a scheduler together. All validation
// happens in NewRaytracer so a render never starts with a broken setup.
type Raytracer struct {
	scene     *scene.Scene
	camera    *geometry.Camera
	config    Config
	scheduler Scheduler
	logger    core.Logger
}

// NewRaytracer creates a raytracer for the scene. The camera comes from the scene's
// camera configuration with the aspect ratio taken from the image size.
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) (*Raytracer, error) {
	if s == nil {
		return nil, scene.ErrEmptyScene
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cameraConfig := s.CameraConfig
	cameraConfig.AspectRatio = numeric.Real(config.Width) / numeric.Real(config.Height)
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:     s,
		camera:    camera,
		config:    config,
		scheduler: DefaultScheduler(),
		logger:    logger,
	}, nil
}

// SetScheduler replaces the build's default scheduling strategy
func (rt *Raytracer) SetScheduler(scheduler Scheduler) {
	rt.scheduler = scheduler
}

// Camera returns the camera used for primary rays
func (rt *Raytracer) Camera() *geometry.Camera {
	return rt.camera
}

// Config returns the render configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Render allocates a frame and renders into it
func (rt *Raytracer) Render() (*Frame, RenderStats, error) {
	frame := NewFrame(rt.config.Width, rt.config.Height)
	stats, err := rt.RenderInto(frame)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return frame, stats, nil
}

// RenderInto renders into a caller-provided frame, which must match the configured size
func (rt *Raytracer) RenderInto(frame *Frame) (RenderStats, error) {
	rt.logger.Printf("Rendering %dx%d at %d samples/pixel, max depth %d (%s backend, %s scheduler, %d primitives)\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth,
		numeric.Backend, rt.scheduler.Name(), rt.scene.GetPrimitiveCount())

	stats, err := rt.scheduler.Render(rt.scene, rt.camera, frame, rt.config)
	if err != nil {
		return RenderStats{}, err
	}

	rt.logger.Printf("Render completed: %s\n", stats)
	return stats, nil
}
