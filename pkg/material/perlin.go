package material

import (
	"github.com/df07/go-portable-raytracer/pkg/core"
	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// perlinPoints is the lattice period of the noise tables
const perlinPoints = 256

// turbulenceDepth is the number of octaves summed by noise textures
const turbulenceDepth = 7

// Perlin holds gradient noise tables. The tables are fixed-size arrays so a
// Perlin never allocates after construction and is safe to share read-only
// between render workers.
type Perlin struct {
	gradients [perlinPoints]core.Vec3
	permX     [perlinPoints]uint8
	permY     [perlinPoints]uint8
	permZ     [perlinPoints]uint8
}

// NewPerlin builds noise tables from rng. The same generator state always
// yields the same tables.
func NewPerlin(rng *numeric.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = core.NewVec3(
			2*rng.Float()-1,
			2*rng.Float()-1,
			2*rng.Float()-1,
		).Normalize()
	}
	permute(&p.permX, rng)
	permute(&p.permY, rng)
	permute(&p.permZ, rng)
	return p
}

// permute fills perm with the identity and shuffles it (Fisher-Yates)
func permute(perm *[perlinPoints]uint8, rng *numeric.Rand) {
	for i := range perm {
		perm[i] = uint8(i)
	}
	for i := perlinPoints - 1; i > 0; i-- {
		target := int(rng.Uint64() % uint64(i))
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns smoothed gradient noise at point, roughly in [-1, 1].
// It is zero at every integer lattice point.
func (p *Perlin) Noise(point core.Vec3) numeric.Real {
	fx, fy, fz := numeric.Floor(point.X), numeric.Floor(point.Y), numeric.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	uu := smoothstep(u)
	vv := smoothstep(v)
	ww := smoothstep(w)

	var acc numeric.Real
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				hash := p.permX[(i+di)&(perlinPoints-1)] ^
					p.permY[(j+dj)&(perlinPoints-1)] ^
					p.permZ[(k+dk)&(perlinPoints-1)]
				offset := core.NewVec3(u-numeric.Real(di), v-numeric.Real(dj), w-numeric.Real(dk))
				acc += blend(uu, di) * blend(vv, dj) * blend(ww, dk) * p.gradients[hash].Dot(offset)
			}
		}
	}
	return acc
}

// Turbulence sums depth octaves of noise, halving the weight and doubling the
// frequency at each octave. The result is non-negative.
func (p *Perlin) Turbulence(point core.Vec3, depth int) numeric.Real {
	var acc numeric.Real
	weight := numeric.Real(1)
	for i := 0; i < depth; i++ {
		acc += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return numeric.Abs(acc)
}

// Hermite smoothing of a lattice fraction
func smoothstep(t numeric.Real) numeric.Real {
	return t * t * (3 - 2*t)
}

// blend weights a lattice corner: t for the far corner, 1-t for the near one
func blend(t numeric.Real, corner int) numeric.Real {
	if corner == 1 {
		return t
	}
	return 1 - t
}

// NewNoiseTexture creates a marble-like grey pattern: stripes along z,
// scaled by scale and distorted by turbulence from noise.
func NewNoiseTexture(scale numeric.Real, noise *Perlin) ColorSource {
	return ColorSource{
		Kind:      SourceNoise,
		Color:     core.NewVec3(1, 1, 1),
		Frequency: scale,
		Noise:     noise,
	}
}

func (c *ColorSource) evaluateNoise(point core.Vec3) core.Vec3 {
	if c.Noise == nil {
		return c.Color
	}
	phase := c.Frequency*point.Z + 10*c.Noise.Turbulence(point, turbulenceDepth)
	return c.Color.Multiply(0.5 * (1 + numeric.Sin(phase)))
}
