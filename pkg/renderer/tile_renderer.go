package renderer

import (
	"github.com/df07/go-portable-raytracer/pkg/geometry"
	"github.com/df07/go-portable-raytracer/pkg/integrator"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator.
// It is shared read-only by all workers; each call writes only the cells of its tile.
type TileRenderer struct {
	camera    *geometry.Camera
	tracer    *integrator.PathTracer
	frame     *Frame
	samples   int
	iterative bool // Use the explicit-stack integrator instead of recursion
}

// NewTileRenderer creates a tile renderer writing into frame
func NewTileRenderer(camera *geometry.Camera, tracer *integrator.PathTracer, frame *Frame, samplesPerPixel int, iterative bool) *TileRenderer {
	return &TileRenderer{
		camera:    camera,
		tracer:    tracer,
		frame:     frame,
		samples:   samplesPerPixel,
		iterative: iterative,
	}
}

// RenderTile takes every sample of every pixel in tile, drawing all randomness from rng
func (tr *TileRenderer) RenderTile(tile Tile, rng *numeric.Rand) RenderStats {
	bounds := tile.Bounds
	width := numeric.Real(tr.frame.Width())
	height := numeric.Real(tr.frame.Height())
	top := tr.frame.Height() - 1

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			for sample := 0; sample < tr.samples; sample++ {
				// Jitter within the pixel; image row 0 is the top of the viewport
				s := (numeric.Real(x) + rng.Float()) / width
				t := (numeric.Real(top-y) + rng.Float()) / height

				ray := tr.camera.GetRay(s, t, rng)
				if tr.iterative {
					tr.frame.AddSample(x, y, tr.tracer.RayColorIterative(ray, rng))
				} else {
					tr.frame.AddSample(x, y, tr.tracer.RayColor(ray, rng))
				}
			}
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	return RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * tr.samples,
		Tiles:        1,
	}
}
