package renderer

import (
	"errors"
	"fmt"

	"github.com/df07/go-portable-raytracer/pkg/integrator"
	"github.com/df07/go-portable-raytracer/pkg/scene"
)

// ErrInvalidConfig is returned for render settings that cannot produce an image
var ErrInvalidConfig = errors.New("invalid render configuration")

// Config contains everything a scheduler needs besides the scene and camera
type Config struct {
	Width                     int    // Image width in pixels
	Height                    int    // Image height in pixels
	SamplesPerPixel           int    // Number of rays per pixel
	MaxDepth                  int    // Maximum ray bounce depth
	RussianRouletteMinBounces int    // Minimum bounces before Russian Roulette can activate, 0 disables it
	TileSize                  int    // Size of each square tile
	NumWorkers                int    // Number of parallel workers (0 = use CPU count)
	Seed                      uint64 // Base seed; tile i renders with Seed+i
	BackgroundOnExhaustion    bool   // Paths that run out of depth return the background instead of black
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 50,
		MaxDepth:        50,
		TileSize:        64, // 64x64 tiles balance scheduling overhead against load balance
		NumWorkers:      0,  // Auto-detect CPU count
		Seed:            42,
	}
}

// ConfigFromSampling starts from the defaults and applies every non-zero field of a
// scene's recommended sampling configuration
func ConfigFromSampling(sc scene.SamplingConfig) Config {
	config := DefaultConfig()
	if sc.Width > 0 {
		config.Width = sc.Width
	}
	if sc.Height > 0 {
		config.Height = sc.Height
	}
	if sc.SamplesPerPixel > 0 {
		config.SamplesPerPixel = sc.SamplesPerPixel
	}
	if sc.MaxDepth > 0 {
		config.MaxDepth = sc.MaxDepth
	}
	if sc.RussianRouletteMinBounces > 0 {
		config.RussianRouletteMinBounces = sc.RussianRouletteMinBounces
	}
	return config
}

// Validate checks that the configuration describes a renderable image
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: %d samples per pixel", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0 || c.MaxDepth > integrator.MaxStackDepth:
		return fmt.Errorf("%w: max depth %d outside [0, %d]", ErrInvalidConfig, c.MaxDepth, integrator.MaxStackDepth)
	case c.RussianRouletteMinBounces < 0:
		return fmt.Errorf("%w: russian roulette min bounces %d", ErrInvalidConfig, c.RussianRouletteMinBounces)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// IntegratorConfig returns the path termination settings
func (c Config) IntegratorConfig() integrator.Config {
	return integrator.Config{
		MaxDepth:                  c.MaxDepth,
		RussianRouletteMinBounces: c.RussianRouletteMinBounces,
		BackgroundOnExhaustion:    c.BackgroundOnExhaustion,
	}
}
