package numeric

import "math/rand/v2"

// pcgIncrement decorrelates the second PCG seed word from the first
const pcgIncrement = 0xda3e39cb94b95bdb

// PCG is the full-precision generator: PCG-DXSM with 128 bits of state.
// The zero value is usable but every PCG seeded through Seed is reproducible.
type PCG struct {
	src rand.PCG
}

// NewPCG returns a PCG seeded with seed
func NewPCG(seed uint64) PCG {
	var p PCG
	p.Seed(seed)
	return p
}

// Seed resets the generator state
func (p *PCG) Seed(seed uint64) {
	p.src.Seed(seed, seed^pcgIncrement)
}

// Uint64 returns 64 uniformly distributed bits
func (p *PCG) Uint64() uint64 {
	return p.src.Uint64()
}

// Float returns a uniform value in [0, 1)
func (p *PCG) Float() Real {
	return unitFloat(p.src.Uint64())
}

// XorShift is the small-state generator (xorshift64*) used on constrained targets
type XorShift struct {
	state uint64
}

// NewXorShift returns an XorShift seeded with seed
func NewXorShift(seed uint64) XorShift {
	var x XorShift
	x.Seed(seed)
	return x
}

// Seed resets the generator state. The seed is scrambled with splitmix64 so that
// consecutive seeds (base seed plus tile index) start far apart.
func (x *XorShift) Seed(seed uint64) {
	x.state = splitmix64(seed)
	if x.state == 0 {
		x.state = 0x9e3779b97f4a7c15
	}
}

// Uint64 returns 64 pseudo-random bits
func (x *XorShift) Uint64() uint64 {
	s := x.state
	s ^= s >> 12
	s ^= s << 25
	s ^= s >> 27
	x.state = s
	return s * 0x2545f4914f6cdd1d
}

// Float returns a uniform value in [0, 1)
func (x *XorShift) Float() Real {
	return unitFloat(x.Uint64())
}

// NewRand returns the build's generator seeded with seed
func NewRand(seed uint64) Rand {
	var r Rand
	r.Seed(seed)
	return r
}

func splitmix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
