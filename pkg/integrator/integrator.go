package integrator

import (
	"errors"

	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// MaxStackDepth bounds the explicit path stack, and so the largest accepted MaxDepth
const MaxStackDepth = 64

const (
	// ShadowEpsilon offsets continuation rays off the surface they leave
	ShadowEpsilon numeric.Real = 1e-4
	// hitTMin rejects intersections closer than this along any ray
	hitTMin numeric.Real = 0.001

	minSurvival numeric.Real = 0.05
	maxSurvival numeric.Real = 0.95
)

// ErrInvalidConfig is returned by NewPathTracer for out-of-range settings
var ErrInvalidConfig = errors.New("invalid integrator configuration")

// Config controls path termination
type Config struct {
	MaxDepth                  int  // Maximum number of scattering events along a path
	RussianRouletteMinBounces int  // Bounces before Russian roulette can end a path, 0 disables it
	BackgroundOnExhaustion    bool // Return the background instead of black when MaxDepth runs out
}

// Termination records why a path stopped
type Termination int

const (
	TerminationMaxDepth Termination = iota
	TerminationAbsorbed
	TerminationMiss
	TerminationRussianRoulette
)

func (t Termination) String() string {
	switch t {
	case TerminationMaxDepth:
		return "max_depth"
	case TerminationAbsorbed:
		return "absorbed"
	case TerminationMiss:
		return "miss"
	case TerminationRussianRoulette:
		return "russian_roulette"
	default:
		return "unknown"
	}
}

// PathResult is the outcome of tracing one camera ray
type PathResult struct {
	Color   core.Vec3
	Bounces int // Number of scattering events before the path ended
	Reason  Termination
}

// pathFrame holds what one bounce contributes once the rest of the path is known:
// color = emitted + attenuation ⊙ (color of the continuation)
type pathFrame struct {
	emitted     core.Vec3
	attenuation core.Vec3
}
