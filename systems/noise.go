package systems

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/pthm-cable/slimemold/components"
	"github.com/pthm-cable/slimemold/config"
)

// NoiseSource produces the per-tick noise vector of a nucleus.
// Implementations keep no state shared between nuclei beyond what is keyed
// by the nucleus seed.
type NoiseSource interface {
	// Init prepares the noise state of a freshly spawned nucleus.
	Init(nuc components.Nucleus, n *components.Noise)
	// Sample returns this tick's noise values in [-1, 1].
	Sample(nuc components.Nucleus, n *components.Noise) (u, v float64)
}

// NewNoiseSource returns the noise model selected by mode.
func NewNoiseSource(mode string, step float64) NoiseSource {
	if mode == config.NoisePerlin {
		return NewPerlinNoise(step)
	}
	return ConstantNoise{}
}

// SeededUniform returns the first uniform draw in [0, 1) of a fresh random
// stream initialised with seed.
func SeededUniform(seed int) float64 {
	return rand.New(rand.NewSource(int64(seed))).Float64()
}

// ConstantNoise derives a fixed bias per nucleus: u from a stream seeded with
// seed, v from one seeded with seed+1, both remapped to [-1, 1). The same
// values come back every tick.
type ConstantNoise struct{}

// Init computes the bias once.
func (ConstantNoise) Init(nuc components.Nucleus, n *components.Noise) {
	n.U = SeededUniform(nuc.Seed)*2 - 1
	n.V = SeededUniform(nuc.Seed+1)*2 - 1
}

// Sample returns the stored bias.
func (ConstantNoise) Sample(_ components.Nucleus, n *components.Noise) (float64, float64) {
	return n.U, n.V
}

// PerlinNoise walks a per-seed Perlin field, advancing the sample
// coordinates by step on every call.
type PerlinNoise struct {
	step       float64
	generators map[int]*perlin.Perlin
}

// Offset between the u and v sample rows so the two axes decorrelate.
const perlinAxisOffset = 1000.5

// NewPerlinNoise creates an evolving noise source.
func NewPerlinNoise(step float64) *PerlinNoise {
	return &PerlinNoise{
		step:       step,
		generators: make(map[int]*perlin.Perlin),
	}
}

func (p *PerlinNoise) generator(seed int) *perlin.Perlin {
	g, ok := p.generators[seed]
	if !ok {
		g = perlin.NewPerlin(2, 2, 3, int64(seed))
		p.generators[seed] = g
	}
	return g
}

// Init resets the sampling coordinates.
func (p *PerlinNoise) Init(nuc components.Nucleus, n *components.Noise) {
	n.NU, n.NV = 0, 0
	n.U, n.V = 0, 0
	p.generator(nuc.Seed)
}

// Sample reads the field at the current coordinates and advances them.
func (p *PerlinNoise) Sample(nuc components.Nucleus, n *components.Noise) (float64, float64) {
	g := p.generator(nuc.Seed)
	n.U = clampUnit(g.Noise2D(n.NU, 0.5) * 2)
	n.V = clampUnit(g.Noise2D(n.NV+perlinAxisOffset, 0.5) * 2)
	n.NU += p.step
	n.NV += p.step
	return n.U, n.V
}

func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
