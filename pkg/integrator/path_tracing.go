package integrator

import (
	"fmt"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
	"github.com/df07/go-portable-raytracer/pkg/scene"
)

// PathTracer implements unidirectional path tracing over an immutable scene.
// It holds no mutable state; every random draw comes from the generator passed in.
type PathTracer struct {
	scene  *scene.Scene
	config Config
}

// NewPathTracer creates a path tracer for the scene
func NewPathTracer(s *scene.Scene, config Config) (*PathTracer, error) {
	if s == nil || s.BVH == nil {
		return nil, scene.ErrEmptyScene
	}
	if config.MaxDepth < 0 || config.MaxDepth > MaxStackDepth {
		return nil, fmt.Errorf("%w: max depth %d outside [0, %d]", ErrInvalidConfig, config.MaxDepth, MaxStackDepth)
	}
	if config.RussianRouletteMinBounces < 0 {
		return nil, fmt.Errorf("%w: russian roulette min bounces %d", ErrInvalidConfig, config.RussianRouletteMinBounces)
	}
	return &PathTracer{scene: s, config: config}, nil
}

// Config returns the tracer's configuration
func (pt *PathTracer) Config() Config {
	return pt.config
}

// RayColor computes the radiance arriving along ray using the recursive form
func (pt *PathTracer) RayColor(ray core.Ray, rng *numeric.Rand) core.Vec3 {
	return pt.rayColor(ray, pt.config.MaxDepth, core.NewVec3(1, 1, 1), 0, rng)
}

func (pt *PathTracer) rayColor(ray core.Ray, depth int, throughput core.Vec3, bounce int, rng *numeric.Rand) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return pt.exhausted()
	}

	var rec core.HitRecord
	if !pt.scene.Hit(ray, hitTMin, numeric.Inf(1), &rec) {
		return pt.scene.Background
	}

	mat := pt.scene.Material(rec.Material)
	emitted := mat.Emitted(&rec)

	scatter, didScatter := mat.Scatter(ray, &rec, rng)
	if !didScatter {
		return emitted
	}

	attenuation, throughput, survived := pt.russianRoulette(scatter.Attenuation, throughput, bounce, rng)
	if !survived {
		return emitted
	}

	next := offsetRay(scatter.Scattered, rec.Normal)
	return emitted.Add(attenuation.MultiplyVec(pt.rayColor(next, depth-1, throughput, bounce+1, rng)))
}

// RayColorIterative computes the same value as RayColor with an explicit loop over a
// fixed-size stack, so the call depth does not grow with the path length
func (pt *PathTracer) RayColorIterative(ray core.Ray, rng *numeric.Rand) core.Vec3 {
	return pt.TracePath(ray, rng).Color
}

// TracePath traces ray to termination and reports how the path ended
func (pt *PathTracer) TracePath(ray core.Ray, rng *numeric.Rand) PathResult {
	var stack [MaxStackDepth]pathFrame
	n := 0

	throughput := core.NewVec3(1, 1, 1)
	var tail core.Vec3
	reason := TerminationMaxDepth

	for depth := pt.config.MaxDepth; ; depth-- {
		if depth <= 0 {
			tail = pt.exhausted()
			reason = TerminationMaxDepth
			break
		}

		var rec core.HitRecord
		if !pt.scene.Hit(ray, hitTMin, numeric.Inf(1), &rec) {
			tail = pt.scene.Background
			reason = TerminationMiss
			break
		}

		mat := pt.scene.Material(rec.Material)
		emitted := mat.Emitted(&rec)

		scatter, didScatter := mat.Scatter(ray, &rec, rng)
		if !didScatter {
			tail = emitted
			reason = TerminationAbsorbed
			break
		}

		attenuation, nextThroughput, survived := pt.russianRoulette(scatter.Attenuation, throughput, n, rng)
		if !survived {
			tail = emitted
			reason = TerminationRussianRoulette
			break
		}

		stack[n] = pathFrame{emitted: emitted, attenuation: attenuation}
		n++
		throughput = nextThroughput
		ray = offsetRay(scatter.Scattered, rec.Normal)
	}

	// Fold from the end of the path back to the camera in the same order the
	// recursive form unwinds
	color := tail
	for i := n - 1; i >= 0; i-- {
		color = stack[i].emitted.Add(stack[i].attenuation.MultiplyVec(color))
	}

	return PathResult{Color: color, Bounces: n, Reason: reason}
}

// russianRoulette decides whether a path continues after the scattering event at
// bounce. Survivors get their attenuation divided by the survival probability.
func (pt *PathTracer) russianRoulette(attenuation, throughput core.Vec3, bounce int, rng *numeric.Rand) (core.Vec3, core.Vec3, bool) {
	throughput = throughput.MultiplyVec(attenuation)

	minBounces := pt.config.RussianRouletteMinBounces
	if minBounces <= 0 || bounce+1 < minBounces {
		return attenuation, throughput, true
	}

	survivalProb := numeric.Clamp(throughput.MaxComponent(), minSurvival, maxSurvival)
	if rng.Float() >= survivalProb {
		return core.Vec3{}, throughput, false
	}

	compensation := 1 / survivalProb
	return attenuation.Multiply(compensation), throughput.Multiply(compensation), true
}

func (pt *PathTracer) exhausted() core.Vec3 {
	if pt.config.BackgroundOnExhaustion {
		return pt.scene.Background
	}
	return core.Vec3{}
}

// offsetRay moves the ray origin off the surface on the side the ray travels into
func offsetRay(ray core.Ray, normal core.Vec3) core.Ray {
	offset := normal.Multiply(ShadowEpsilon)
	if ray.Direction.Dot(normal) < 0 {
		offset = offset.Negate()
	}
	ray.Origin = ray.Origin.Add(offset)
	return ray
}
